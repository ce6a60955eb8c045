package opt

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ib-77/fp3/pkg/rop"
)

var ErrNoValue = errors.New("unwrap on absent value")

// UnwrapError is raised by GetOrThrow on None.
type UnwrapError struct {
	Msg string
}

func (e *UnwrapError) Error() string {
	if e.Msg == "" {
		return ErrNoValue.Error()
	}
	return fmt.Sprintf("%s: %s", ErrNoValue, e.Msg)
}

func (e *UnwrapError) Unwrap() error {
	return ErrNoValue
}

// Option is None or Some(value). The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Some wraps v as is, nil included.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// FromNullable is None for nil pointers, maps, slices, channels, funcs and
// interfaces, and Some for everything else, zero values included.
func FromNullable[T any](v T) Option[T] {
	if rop.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromExecution runs fn and gives None when it fails or panics.
// The failure itself is dropped.
func FromExecution[T any](fn func() (T, error)) Option[T] {
	v, err := rop.Catch(fn)
	if err != nil {
		zap.S().Debugw("execution discarded", "error", err)
		return None[T]()
	}
	return FromNullable(v)
}

// guard runs f and turns a panic into None.
func guard[U any](stage string, f func() Option[U]) Option[U] {
	out, err := rop.Catch(func() (Option[U], error) {
		return f(), nil
	})
	if err != nil {
		zap.S().Debugw("recovered panic", "stage", stage, "error", err)
		return None[U]()
	}
	return out
}

func FromPredicate[T any](predicate func(T) bool) func(T) Option[T] {
	return func(v T) Option[T] {
		return guard("fromPredicate", func() Option[T] {
			if predicate(v) {
				return Some(v)
			}
			return None[T]()
		})
	}
}

// FromResult keeps the value of Ok and forgets the error of Err.
func FromResult[T any](r rop.Result[T]) Option[T] {
	if r.IsOk() {
		return Some(r.Result())
	}
	return None[T]()
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) ToSlice() []T {
	if !o.some {
		return []T{}
	}
	return []T{o.value}
}

// ToResult turns None into Err(err).
func (o Option[T]) ToResult(err error) rop.Result[T] {
	if !o.some {
		return rop.Err[T](err)
	}
	return rop.Ok(o.value)
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

func IsSome[T any](o Option[T]) bool {
	return o.IsSome()
}

func IsNone[T any](o Option[T]) bool {
	return o.IsNone()
}
