package task

import (
	"context"
	"maps"

	"github.com/ib-77/fp3/pkg/rop"
	"github.com/ib-77/fp3/pkg/rop/solo"
)

// Dict is the record a pipeline builds up with BindTo and Bind.
type Dict = map[string]any

// then starts step once in has settled. Stages of one chain therefore run
// strictly in order.
func then[In, Out any](in *Task[In],
	step func(ctx context.Context, r rop.Result[In]) rop.Result[Out]) *Task[Out] {

	if in == nil {
		return Fail[Out](context.Background(), ErrNilTask)
	}
	return run(in.ctx, func(ctx context.Context) rop.Result[Out] {
		return step(ctx, in.wait())
	})
}

func Map[T, U any](f func(ctx context.Context, v T) U) func(*Task[T]) *Task[U] {
	return func(t *Task[T]) *Task[U] {
		return then(t, func(ctx context.Context, r rop.Result[T]) rop.Result[U] {
			return solo.Map(ctx, r, f)
		})
	}
}

// Try is Map for functions that can fail.
func Try[T, U any](f func(ctx context.Context, v T) (U, error)) func(*Task[T]) *Task[U] {
	return func(t *Task[T]) *Task[U] {
		return then(t, func(ctx context.Context, r rop.Result[T]) rop.Result[U] {
			return solo.Try(ctx, r, f)
		})
	}
}

func MapErr[T any](f func(ctx context.Context, err error) error) func(*Task[T]) *Task[T] {
	return func(t *Task[T]) *Task[T] {
		return then(t, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
			return solo.MapErr(ctx, r, f)
		})
	}
}

// FlatMap runs f on the value and waits for the Task it returns. The first
// Err, outer or inner, is the result.
func FlatMap[T, U any](f func(ctx context.Context, v T) *Task[U]) func(*Task[T]) *Task[U] {
	return func(t *Task[T]) *Task[U] {
		return then(t, func(ctx context.Context, r rop.Result[T]) rop.Result[U] {
			return solo.Switch(ctx, solo.Map(ctx, r, f),
				func(_ context.Context, inner *Task[U]) rop.Result[U] {
					if inner == nil {
						return rop.Err[U](ErrNilTask)
					}
					return inner.wait()
				})
		})
	}
}

func Flatten[T any](t *Task[*Task[T]]) *Task[T] {
	return FlatMap(func(_ context.Context, inner *Task[T]) *Task[T] { return inner })(t)
}

// Tap runs f for its side effect and keeps the original Result. The next
// stage starts only after f returns.
func Tap[T any](f func(ctx context.Context, v T)) func(*Task[T]) *Task[T] {
	return func(t *Task[T]) *Task[T] {
		return then(t, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
			return solo.Tee(ctx, r, f)
		})
	}
}

func TapErr[T any](f func(ctx context.Context, err error)) func(*Task[T]) *Task[T] {
	return func(t *Task[T]) *Task[T] {
		return then(t, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
			return solo.TeeErr(ctx, r, f)
		})
	}
}

// BindTo wraps the value into a Dict under key.
func BindTo[T any](key string) func(*Task[T]) *Task[Dict] {
	return Map(func(_ context.Context, v T) Dict {
		return Dict{key: v}
	})
}

// Bind computes f on the current Dict and stores the value under key in a
// copy of it.
func Bind[U any](key string, f func(ctx context.Context, d Dict) (U, error)) func(*Task[Dict]) *Task[Dict] {
	return Try(func(ctx context.Context, d Dict) (Dict, error) {
		v, err := f(ctx, d)
		if err != nil {
			return nil, err
		}
		out := make(Dict, len(d)+1)
		maps.Copy(out, d)
		out[key] = v
		return out, nil
	})
}

// FilterOrElse keeps values accepted by predicate and replaces the others
// with onFalse(value). The Task stays Ok either way.
func FilterOrElse[T any](predicate func(ctx context.Context, v T) bool,
	onFalse func(ctx context.Context, v T) T) func(*Task[T]) *Task[T] {

	return func(t *Task[T]) *Task[T] {
		return then(t, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
			return solo.FilterOrElse(ctx, r, predicate, onFalse)
		})
	}
}

// FilterOrFail settles as Err(onFalse(value)) when predicate rejects the value.
func FilterOrFail[T any](predicate func(ctx context.Context, v T) bool,
	onFalse func(ctx context.Context, v T) error) func(*Task[T]) *Task[T] {

	return func(t *Task[T]) *Task[T] {
		return then(t, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
			return solo.FilterOrFail(ctx, r, predicate, onFalse)
		})
	}
}

// Match waits for the Task and returns the branch for its outcome.
func Match[T, U any](onErr func(ctx context.Context, err error) U,
	onOk func(ctx context.Context, v T) U) func(*Task[T]) U {

	return func(t *Task[T]) U {
		return solo.Finally(t.Context(), t.Await(), onOk, onErr)
	}
}

// OrElse waits for the Task and returns its value, or onErr(err).
func OrElse[T any](onErr func(ctx context.Context, err error) T) func(*Task[T]) T {
	return func(t *Task[T]) T {
		return solo.OrElse(t.Context(), t.Await(), onErr)
	}
}

// GetOrElse waits for the Task and returns its value, or def(ctx) on Err.
func GetOrElse[T any](def func(ctx context.Context) T) func(*Task[T]) T {
	return OrElse(func(ctx context.Context, _ error) T {
		return def(ctx)
	})
}

// Fold waits for the Task and hands its failure back as a plain error.
func Fold[T any](t *Task[T]) (T, error) {
	return t.Await().Get()
}
