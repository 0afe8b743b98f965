// SPDX-License-Identifier: MIT

package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// chunked runs fn over [lo, hi) ranges covering n elements. At most
// o.workers calls run at once. Chunks not yet started when ctx is cancelled
// are skipped and ctx.Err() is returned.
func chunked(ctx context.Context, n int, o Options, fn func(lo, hi int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for lo := 0; lo < n; lo += o.chunkSize {
		lo := lo // per-iteration copy (pre-Go 1.22 loop semantics)
		hi := min(lo+o.chunkSize, n)
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(lo, hi)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

// mapSlice applies f to every element of in, preserving order.
func mapSlice[In, Out any](ctx context.Context, tag string, in []In, f func(In) Out, opts ...Option) ([]Out, error) {
	if ctx == nil {
		return nil, batchErrorf(tag, ErrNilContext)
	}

	out := make([]Out, len(in))
	err := chunked(ctx, len(in), gatherOptions(opts...), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = f(in[i])
		}
	})
	if err != nil {
		return nil, batchErrorf(tag, err)
	}

	return out, nil
}
