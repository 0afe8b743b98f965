// SPDX-License-Identifier: MIT

// Package batch applies transforms to slices of vectors in parallel.
//
// Input is split into contiguous chunks (WithChunkSize) processed by at most
// WithWorkers goroutines through an errgroup. Output order always matches
// input order and the input slice is never modified. Elements are
// independent, so results are identical to a sequential loop.
//
// Every entry point takes a context. A nil context yields ErrNilContext; a
// cancelled context stops scheduling new chunks and its error is returned.
package batch
