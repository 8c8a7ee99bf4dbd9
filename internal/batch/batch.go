// Package batch decodes many independent buffers concurrently. Since
// distinct decoders over distinct buffers share no state (see
// SPEC_FULL.md's concurrency model), batch decode is embarrassingly
// parallel; this package exists to bound that parallelism and aggregate
// per-buffer failures into one error a caller can inspect.
package batch

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of decoding one buffer.
type Result struct {
	Index     int
	Remaining int
	Frame     any
	Err       error
}

// DecodeFunc decodes one buffer, returning the decoded frame (typed by the
// caller's chosen revision), bytes consumed, and any error.
type DecodeFunc func(buf []byte) (frame any, remaining int, err error)

// DecodeAll runs decode over every buffer, bounded to maxParallel
// concurrent goroutines (maxParallel <= 0 means unbounded). It always
// returns one Result per input buffer in input order; the returned error is
// a multierr aggregate of every per-buffer failure, wrapped with its index,
// or nil if every buffer decoded cleanly.
func DecodeAll(ctx context.Context, buffers [][]byte, maxParallel int, decode DecodeFunc) ([]Result, error) {
	results := make([]Result, len(buffers))
	g, ctx := errgroup.WithContext(ctx)
	if maxParallel > 0 {
		g.SetLimit(maxParallel)
	}

	for i, buf := range buffers {
		i, buf := i, buf
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frame, remaining, err := decode(buf)
			results[i] = Result{Index: i, Remaining: remaining, Frame: frame, Err: err}
			return nil
		})
	}
	// g.Go never returns a non-nil error itself (failures are captured per
	// result, not propagated), so Wait only surfaces context cancellation.
	if err := g.Wait(); err != nil {
		return results, err
	}

	var agg error
	for _, r := range results {
		if r.Err != nil {
			agg = multierr.Append(agg, errors.Wrapf(r.Err, "buffer %d", r.Index))
		}
	}
	return results, agg
}

// Summary formats a one-line count of successes and failures, for CLI
// output.
func Summary(results []Result) string {
	ok, failed := 0, 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		} else {
			ok++
		}
	}
	return fmt.Sprintf("%d decoded, %d failed (of %d)", ok, failed, len(results))
}
