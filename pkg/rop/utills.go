package rop

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
)

var (
	ErrEmptyResult = errors.New("result has neither value nor error")
)

// PanicError is a recovered panic turned into an error value.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was an error itself.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// ToError normalizes an arbitrary failure payload into an error.
func ToError(v any) error {
	if IsNil(v) {
		return nil
	}
	if err, ok := v.(error); ok {
		return err
	}
	return errors.New(fmt.Sprint(v))
}

// Catch runs f and returns its error, or a *PanicError if f panicked.
func Catch[T any](f func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return f()
}

// Recovered reports whether err came from a recovered panic.
func Recovered(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
