package task

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/ib-77/fp3/pkg/rop"
	"github.com/ib-77/fp3/pkg/rop/solo"
)

var (
	ErrNoResult = errors.New("channel closed without a result")
	ErrNilTask  = errors.New("nil task")
)

// Task is a Result that settles later. It is pending until its computation
// finishes, then holds the same Ok or Err forever.
type Task[T any] struct {
	ctx    context.Context
	done   chan struct{}
	result rop.Result[T]
}

var closedDone = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

func newTask[T any](ctx context.Context) *Task[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Task[T]{ctx: ctx, done: make(chan struct{})}
}

// run starts work in its own goroutine. work must not panic.
func run[T any](ctx context.Context, work func(ctx context.Context) rop.Result[T]) *Task[T] {
	t := newTask[T](ctx)
	go func() {
		defer close(t.done)
		t.result = work(t.ctx)
	}()
	return t
}

func settled[T any](ctx context.Context, r rop.Result[T]) *Task[T] {
	t := newTask[T](ctx)
	t.result = r
	close(t.done)
	return t
}

// From is a Task already settled as Ok(v).
func From[T any](ctx context.Context, v T) *Task[T] {
	return settled(ctx, rop.Ok(v))
}

// Fail is a Task already settled as Err(err).
func Fail[T any](ctx context.Context, err error) *Task[T] {
	return settled(ctx, rop.Err[T](err))
}

func FromResult[T any](ctx context.Context, r rop.Result[T]) *Task[T] {
	return settled(ctx, r)
}

// FromFunc runs fn and settles with its value or its error. A panic in fn
// settles the Task as Err carrying a *rop.PanicError.
func FromFunc[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	return TryCatch(ctx, fn, nil)
}

// TryCatch is FromFunc with onError applied to the failure before it is
// stored. A nil onError keeps the failure as is.
func TryCatch[T any](ctx context.Context, fn func(ctx context.Context) (T, error),
	onError func(err error) error) *Task[T] {

	return run(ctx, func(ctx context.Context) rop.Result[T] {
		v, err := rop.Catch(func() (T, error) { return fn(ctx) })
		res := rop.FromPair(v, err)
		if res.IsOk() {
			return res
		}
		zap.S().Debugw("task failed", "error", res.Err())
		if onError == nil {
			return res
		}
		return solo.MapErr(ctx, res, func(_ context.Context, err error) error {
			return onError(err)
		})
	})
}

// FromCallback hands settle to register; the first call settles the Task.
// A panic in register settles it as Err.
func FromCallback[T any](ctx context.Context, register func(settle func(v T, err error))) *Task[T] {
	t := newTask[T](ctx)
	once := sync.Once{}
	settle := func(v T, err error) {
		once.Do(func() {
			t.result = rop.FromPair(v, err)
			close(t.done)
		})
	}

	if _, err := rop.Catch(func() (struct{}, error) {
		register(settle)
		return struct{}{}, nil
	}); err != nil {
		var zero T
		settle(zero, err)
	}
	return t
}

// FromChan settles with the first Result received from ch, with ErrNoResult
// if ch closes first, or with the context error if ctx ends first.
func FromChan[T any](ctx context.Context, ch <-chan rop.Result[T]) *Task[T] {
	return run(ctx, func(ctx context.Context) rop.Result[T] {
		select {
		case r, ok := <-ch:
			if !ok {
				return rop.Err[T](ErrNoResult)
			}
			return r
		case <-ctx.Done():
			return rop.Err[T](ctx.Err())
		}
	})
}

// Done is closed once the Task has settled.
func (t *Task[T]) Done() <-chan struct{} {
	if t == nil {
		return closedDone
	}
	return t.done
}

// Context is the context the Task was built with, or Background for a
// nil Task.
func (t *Task[T]) Context() context.Context {
	if t == nil {
		return context.Background()
	}
	return t.ctx
}

// Await blocks until the Task settles or its context ends. In the latter
// case it returns Err(ctx.Err()) while the computation keeps running.
// A nil Task is Err(ErrNilTask).
func (t *Task[T]) Await() rop.Result[T] {
	if t == nil {
		return rop.Err[T](ErrNilTask)
	}
	select {
	case <-t.done:
		return t.result
	case <-t.ctx.Done():
		select {
		case <-t.done:
			return t.result
		default:
			return rop.Err[T](t.ctx.Err())
		}
	}
}

// wait blocks until settlement regardless of the context.
func (t *Task[T]) wait() rop.Result[T] {
	<-t.done
	return t.result
}

func Await[T any](t *Task[T]) rop.Result[T] {
	return t.Await()
}
