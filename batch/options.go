// SPDX-License-Identifier: MIT

package batch

import "runtime"

// DefaultChunkSize is the number of elements handed to one goroutine.
const DefaultChunkSize = 1024

const (
	panicWorkersInvalid   = "batch: WithWorkers: n must be >= 1"
	panicChunkSizeInvalid = "batch: WithChunkSize: n must be >= 1"
)

// Option configures a batch call.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	workers   int // >= 1; GOMAXPROCS by default
	chunkSize int // >= 1; DefaultChunkSize
}

// WithWorkers caps the number of concurrent goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithChunkSize sets how many elements one goroutine processes. Panics if n < 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic(panicChunkSizeInvalid)
	}

	return func(o *Options) { o.chunkSize = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: runtime.GOMAXPROCS(0), chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
