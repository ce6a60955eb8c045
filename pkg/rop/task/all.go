package task

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/fp3/pkg/rop"
	"github.com/ib-77/fp3/pkg/rop/core"
)

// All runs every computation and waits for all of them, even after a
// failure. Values keep the input order. Any failure makes the whole Task
// Err; see core.WithFailureOptions for how failures are reported and
// core.WithWorkerOptions for capping concurrency.
func All[T any](ctx context.Context, fns ...func(ctx context.Context) (T, error)) *Task[[]T] {
	return run(ctx, func(ctx context.Context) rop.Result[[]T] {
		values := make([]T, len(fns))
		errs := make([]error, len(fns))

		g := errgroup.Group{}
		if limit := core.GetWorkerMaxCount(ctx, 0); limit > 0 {
			g.SetLimit(limit)
		}

		for i, fn := range fns {
			g.Go(func() error {
				values[i], errs[i] = rop.Catch(func() (T, error) { return fn(ctx) })
				return errs[i]
			})
		}

		if err := g.Wait(); err != nil {
			return rop.Err[[]T](aggregate(ctx, errs))
		}
		return rop.Ok(values)
	})
}

// Collect waits for tasks that are already running. It follows the same
// rules as All.
func Collect[T any](ctx context.Context, tasks ...*Task[T]) *Task[[]T] {
	return run(ctx, func(ctx context.Context) rop.Result[[]T] {
		values := make([]T, len(tasks))
		errs := make([]error, len(tasks))
		failed := false

		for i, t := range tasks {
			if t == nil {
				errs[i] = ErrNilTask
			} else {
				values[i], errs[i] = t.wait().Get()
			}
			failed = failed || errs[i] != nil
		}

		if failed {
			return rop.Err[[]T](aggregate(ctx, errs))
		}
		return rop.Ok(values)
	})
}

func aggregate(ctx context.Context, errs []error) error {
	if core.IsJoinAllEnabled(ctx, true) {
		return errors.Join(errs...)
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
