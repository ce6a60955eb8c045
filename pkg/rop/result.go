package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is either Ok with a value or Err with an error, never both.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isOk      bool
}

func Ok[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err builds a failed Result. A nil err is replaced by ErrEmptyResult.
func Err[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrEmptyResult
	}
	return Result[T]{
		err:       err,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromPair converts the usual (value, error) return into a Result.
func FromPair[T any](r T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(r)
}

// ErrFrom carries the failure of from over to another value type,
// keeping its id and creation time.
func ErrFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.Err(),
		isOk:      false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

// Err returns nil for Ok. The zero Result reports ErrEmptyResult.
func (r Result[T]) Err() error {
	if !r.isOk && r.err == nil {
		return ErrEmptyResult
	}
	return r.err
}

func (r Result[T]) IsOk() bool {
	return r.isOk
}

func (r Result[T]) IsErr() bool {
	return !r.isOk
}

// Get returns the value and error in Go's usual order.
func (r Result[T]) Get() (T, error) {
	return r.result, r.Err()
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
