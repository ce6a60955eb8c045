package chain

import (
	"context"

	"github.com/ib-77/fp3/pkg/rop"
	"github.com/ib-77/fp3/pkg/rop/task"
)

// Chain wraps a task.Task to enable fluent chaining
type Chain[T any] struct {
	task *task.Task[T]
}

// Start creates a new chain from a running task
func Start[T any](t *task.Task[T]) *Chain[T] {
	return &Chain[T]{task: t}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(task.From(ctx, value))
}

// FromFunc creates a new chain from a computation that may fail
func FromFunc[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Chain[T] {
	return Start(task.FromFunc(ctx, fn))
}

// Task returns the underlying task
func (c *Chain[T]) Task() *task.Task[T] {
	return c.task
}

// Result waits for the chain to settle
func (c *Chain[T]) Result() rop.Result[T] {
	return c.task.Await()
}

// Then chains a function that returns another task
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) *task.Task[U]) *Chain[U] {
	return Start(task.FlatMap(onSuccess)(c.task))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(task.Try(tryOnSuccess)(c.task))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(task.Map(onSuccess)(c.task))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return Start(task.Tap(onSuccess)(c.task))
}

// Recover performs a side effect on failure without changing the result
func (c *Chain[T]) Recover(onFailure func(context.Context, error)) *Chain[T] {
	return Start(task.TapErr[T](onFailure)(c.task))
}

// Wrap rewrites the failure, if any
func (c *Chain[T]) Wrap(onFailure func(context.Context, error) error) *Chain[T] {
	return Start(task.MapErr[T](onFailure)(c.task))
}

// Fold waits for the chain and returns its value and error
func (c *Chain[T]) Fold() (T, error) {
	return task.Fold(c.task)
}

// Finally collapses the chain into a final value
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return task.Match(onFailure, onSuccess)(c.task)
}
