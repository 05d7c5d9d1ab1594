package solver

import (
	"context"

	"github.com/reusee/chrono/machine"
	"github.com/reusee/chrono/syncs"
	"gopkg.in/tomb.v2"
)

func (s *Solver) expand(
	ctx context.Context,
	frontier Frontier,
	digit uint8,
	b, c int64,
	prog machine.Program,
) (Frontier, error) {
	values := frontier.Sorted()
	if s.workers <= 1 || len(values) == 1 {
		next := NewFrontier()
		for _, v := range values {
			kept, err := predecessors(v, digit, b, c, prog)
			if err != nil {
				return nil, err
			}
			next.Add(kept...)
		}
		return next, nil
	}

	results := make([][]int64, len(values))
	sem := syncs.NewSemaphore(s.workers)
	t, tombCtx := tomb.WithContext(ctx)
	t.Go(func() error {
		for i, v := range values {
			if err := sem.Acquire(tombCtx); err != nil {
				return nil
			}
			if tombCtx.Err() != nil {
				// dying
				sem.Release()
				return nil
			}
			t.Go(func() error {
				defer sem.Release()
				kept, err := predecessors(v, digit, b, c, prog)
				if err != nil {
					return err
				}
				results[i] = kept
				return nil
			})
		}
		return nil
	})
	if err := t.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	next := NewFrontier()
	for _, kept := range results {
		next.Add(kept...)
	}
	return next, nil
}
