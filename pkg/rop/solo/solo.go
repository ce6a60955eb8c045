package solo

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ib-77/fp3/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Ok(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Err[T](err)
}

// guard runs f, turning a returned error or a panic into Err.
func guard[Out any](stage string, f func() (Out, error)) rop.Result[Out] {
	out, err := rop.Catch(f)
	if err != nil {
		if rop.Recovered(err) {
			zap.S().Debugw("recovered panic", "stage", stage, "error", err)
		}
		return rop.Err[Out](err)
	}
	return rop.Ok(out)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsErr() {
		return input
	}

	return guard("validate", func() (T, error) {
		if isValid, errMsg := validate(ctx, input.Result()); !isValid {
			return input.Result(), errors.New(errMsg)
		}
		return input.Result(), nil
	})
}

func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T]) rop.Result[T] {

			if current.IsErr() {
				e := rop.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if rop.IsNil(err) {
				return current
			}

			return rop.Err[T](err)
		},
		inputsF...,
	)
}

// Switch is the flatMap of Result: onSuccess itself returns a Result.
func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsErr() {
		return rop.ErrFrom[In, Out](input)
	}

	res := guard("switch", func() (rop.Result[Out], error) {
		return onSuccess(ctx, input.Result()), nil
	})
	if res.IsErr() {
		return rop.ErrFrom[rop.Result[Out], Out](res)
	}
	return res.Result()
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsErr() {
		return rop.ErrFrom[In, Out](input)
	}

	return guard("map", func() (Out, error) {
		return onSuccess(ctx, input.Result()), nil
	})
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsErr() {
		return rop.ErrFrom[In, Out](input)
	}

	return guard("try", func() (Out, error) {
		return onTryExecute(ctx, input.Result())
	})
}

// MapErr rewrites the error of a failed Result; Ok passes through.
func MapErr[T any](ctx context.Context, input rop.Result[T],
	onError func(ctx context.Context, err error) error) rop.Result[T] {

	if input.IsOk() {
		return input
	}

	mapped, err := rop.Catch(func() (error, error) {
		return onError(ctx, input.Err()), nil
	})
	if err != nil {
		zap.S().Debugw("recovered panic", "stage", "mapErr", "error", err)
		return rop.Err[T](err)
	}
	return rop.Err[T](mapped)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsErr() {
		return input
	}

	res := guard("tee", func() (T, error) {
		onSuccess(ctx, input.Result())
		return input.Result(), nil
	})
	if res.IsErr() {
		return res
	}
	return input
}

func TeeErr[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, err error)) rop.Result[T] {

	if input.IsOk() {
		return input
	}

	res := guard("teeErr", func() (T, error) {
		onError(ctx, input.Err())
		return input.Result(), nil
	})
	if res.IsErr() {
		return res
	}
	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsOk() && condition(ctx, input.Result()) {
		return Tee(ctx, input, onSuccessAndCondition)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Result[T] {

	if input.IsOk() {
		return Tee(ctx, input, onSuccess)
	}
	return TeeErr(ctx, input, onError)
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	return Try(ctx, input, func(ctx context.Context, in T) (T, error) {
		return in, maybeErr(ctx, in)
	})
}

// FilterOrElse replaces a value rejected by predicate with onFalse(value).
// The result stays Ok; use FilterOrFail to turn a rejection into Err.
func FilterOrElse[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, in T) bool,
	onFalse func(ctx context.Context, in T) T) rop.Result[T] {

	return Map(ctx, input, func(ctx context.Context, in T) T {
		if predicate(ctx, in) {
			return in
		}
		return onFalse(ctx, in)
	})
}

func FilterOrFail[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, in T) bool,
	onFalse func(ctx context.Context, in T) error) rop.Result[T] {

	return Try(ctx, input, func(ctx context.Context, in T) (T, error) {
		if predicate(ctx, in) {
			return in, nil
		}
		return in, onFalse(ctx, in)
	})
}

// OrElse unwraps Ok, or computes a replacement value from the error.
func OrElse[T any](ctx context.Context, input rop.Result[T],
	onError func(ctx context.Context, err error) T) T {

	if input.IsOk() {
		return input.Result()
	}
	return onError(ctx, input.Err())
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsOk() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}

func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsOk() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsErr() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
