package solo

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/fp3/pkg/rop"
)

// helper validators for int values that ignore prior result and validate captured value
func validateNonNegative(v int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		if v < 0 {
			return rop.Err[int](errors.New("negative"))
		}
		return rop.Ok(v)
	}
}

func validateEven(v int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		if v%2 != 0 {
			return rop.Err[int](errors.New("odd"))
		}
		return rop.Ok(v)
	}
}

func passThrough[T any]() func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
	return func(ctx context.Context, in rop.Result[T]) rop.Result[T] { return in }
}

func TestValidateAll_AllSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := 10
	res := ValidateAll[int](ctx, rop.Ok(v), true, validateNonNegative(v), validateEven(v))

	if !res.IsOk() {
		t.Fatalf("expected success, got error: %v", res.Err())
	}
	if res.Result() != v {
		t.Fatalf("expected result %d, got %d", v, res.Result())
	}
}

func TestValidateAll_FailBreakOnFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -1

	executed := 0
	v1 := func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		executed++
		return validateNonNegative(v)(ctx, in)
	}
	v2 := func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		executed++
		return validateEven(v)(ctx, in)
	}

	res := ValidateAll[int](ctx, rop.Ok(v), true, v1, v2)

	if res.IsOk() {
		t.Fatalf("expected failure, got success: %v", res.Result())
	}
	if executed != 1 {
		t.Fatalf("expected only first validator to execute, got %d", executed)
	}
	if res.Err() == nil || res.Err().Error() != "negative" {
		t.Fatalf("expected 'negative' error, got: %v", res.Err())
	}
}

func TestValidateAll_AccumulateErrors_NoBreak(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -3
	res := ValidateAll[int](ctx, rop.Ok(v), false, validateNonNegative(v), validateNonNegative(v), validateEven(v))

	if res.IsOk() {
		t.Fatalf("expected failure, got success: %v", res.Result())
	}

	errs := rop.GetErrors(res.Err())
	if len(errs) != 3 {
		t.Fatalf("expected 3 accumulated errors, got %d", len(errs))
	}
	if errs[0].Error() != "negative" || errs[1].Error() != "negative" || errs[2].Error() != "odd" {
		t.Fatalf("expected errors ['negative', 'negative', 'odd'], got ['%s','%s','%s']",
			errs[0].Error(), errs[1].Error(), errs[2].Error())
	}
}

func TestValidateAll_InitialInputFail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	res := ValidateAll[int](ctx, rop.Err[int](errors.New("initial")), true, passThrough[int]())

	if res.IsOk() {
		t.Fatalf("expected failure, got success")
	}
	if res.Err() == nil || res.Err().Error() != "initial" {
		t.Fatalf("expected initial error to pass through, got: %v", res.Err())
	}
}

func TestValidateAll_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := ValidateAll[int](ctx, rop.Ok(42), false, validateNonNegative(42), validateEven(42))

	if !res.IsOk() || res.Result() != 42 {
		t.Fatalf("expected untouched success 42, got: ok=%v, val=%v, err=%v", res.IsOk(), res.Result(), res.Err())
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	positive := func(ctx context.Context, in int) (bool, string) { return in > 0, "not positive" }

	if res := Validate(ctx, 3, positive); !res.IsOk() || res.Result() != 3 {
		t.Fatalf("expected Ok(3), got: ok=%v, err=%v", res.IsOk(), res.Err())
	}
	if res := Validate(ctx, -3, positive); res.IsOk() || res.Err().Error() != "not positive" {
		t.Fatalf("expected 'not positive', got: ok=%v, err=%v", res.IsOk(), res.Err())
	}
}

func TestMap_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	input := rop.Err[int](errors.New("oops"))

	called := false
	out := Map(ctx, input, func(ctx context.Context, v int) string {
		called = true
		return "x"
	})

	if called {
		t.Fatalf("onSuccess should not be called when input is Err")
	}
	if out.IsOk() || out.Err().Error() != "oops" {
		t.Fatalf("expected failure 'oops', got: ok=%v, err=%v", out.IsOk(), out.Err())
	}
	if out.Id() != input.Id() {
		t.Fatalf("expected failure to keep its id")
	}
}

func TestMap_RecoversPanic(t *testing.T) {
	t.Parallel()
	out := Map(context.Background(), rop.Ok(1), func(ctx context.Context, v int) int {
		panic("kaboom")
	})

	if out.IsOk() {
		t.Fatalf("expected Err from panicking map")
	}
	if !rop.Recovered(out.Err()) || out.Err().Error() != "panic: kaboom" {
		t.Fatalf("expected recovered panic error, got: %v", out.Err())
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Try(ctx, rop.Ok(4), func(ctx context.Context, v int) (int, error) { return v * v, nil })
	if !out.IsOk() || out.Result() != 16 {
		t.Fatalf("expected success with 16, got: ok=%v, val=%v, err=%v", out.IsOk(), out.Result(), out.Err())
	}

	out = Try(ctx, rop.Ok(4), func(ctx context.Context, v int) (int, error) { return 0, errors.New("try-error") })
	if out.IsOk() || out.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: ok=%v, err=%v", out.IsOk(), out.Err())
	}
}

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	half := func(ctx context.Context, v int) rop.Result[int] {
		if v%2 != 0 {
			return rop.Err[int](errors.New("odd"))
		}
		return rop.Ok(v / 2)
	}

	if out := Switch(ctx, rop.Ok(8), half); !out.IsOk() || out.Result() != 4 {
		t.Fatalf("expected Ok(4), got: ok=%v, val=%v", out.IsOk(), out.Result())
	}
	if out := Switch(ctx, rop.Ok(7), half); out.IsOk() || out.Err().Error() != "odd" {
		t.Fatalf("expected 'odd', got: ok=%v, err=%v", out.IsOk(), out.Err())
	}
	if out := Switch(ctx, rop.Err[int](errors.New("first")), half); out.Err().Error() != "first" {
		t.Fatalf("expected 'first', got: %v", out.Err())
	}
}

func TestMapErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	wrap := func(ctx context.Context, err error) error { return errors.Join(errors.New("wrapped"), err) }

	ok := MapErr(ctx, rop.Ok(1), wrap)
	if !ok.IsOk() || ok.Result() != 1 {
		t.Fatalf("expected Ok to pass through")
	}

	base := errors.New("base")
	failed := MapErr(ctx, rop.Err[int](base), wrap)
	if !errors.Is(failed.Err(), base) || len(rop.GetErrors(failed.Err())) != 2 {
		t.Fatalf("expected joined error, got: %v", failed.Err())
	}
}

func TestTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	in := rop.Ok(5)
	out := Tee(ctx, in, func(ctx context.Context, v int) { seen = v })
	if seen != 5 || out.Id() != in.Id() {
		t.Fatalf("expected side effect and same result, got seen=%d", seen)
	}

	failed := Tee(ctx, in, func(ctx context.Context, v int) { panic("tee") })
	if failed.IsOk() {
		t.Fatalf("expected panicking side effect to fail the result")
	}

	errSeen := false
	TeeErr(ctx, rop.Err[int](errors.New("e")), func(ctx context.Context, err error) { errSeen = true })
	if !errSeen {
		t.Fatalf("expected TeeErr to observe the error")
	}
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var okCalls, errCalls int
	onOk := func(ctx context.Context, v int) { okCalls++ }
	onErr := func(ctx context.Context, err error) { errCalls++ }

	DoubleTee(ctx, rop.Ok(1), onOk, onErr)
	DoubleTee(ctx, rop.Err[int](errors.New("e")), onOk, onErr)
	TeeIf(ctx, rop.Ok(1), func(ctx context.Context, v int) bool { return false }, onOk)

	if okCalls != 1 || errCalls != 1 {
		t.Fatalf("expected one call on each track, got ok=%d err=%d", okCalls, errCalls)
	}
}

func TestFilterOrElse_KeepsOkTrack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	big := func(ctx context.Context, v int) bool { return v > 10 }
	clamp := func(ctx context.Context, v int) int { return 10 }

	if out := FilterOrElse(ctx, rop.Ok(3), big, clamp); !out.IsOk() || out.Result() != 10 {
		t.Fatalf("expected Ok(10), got: ok=%v, val=%v", out.IsOk(), out.Result())
	}
	if out := FilterOrElse(ctx, rop.Ok(30), big, clamp); out.Result() != 30 {
		t.Fatalf("expected Ok(30), got: %v", out.Result())
	}
}

func TestFilterOrFail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	small := errors.New("too small")

	out := FilterOrFail(ctx, rop.Ok(3),
		func(ctx context.Context, v int) bool { return v > 10 },
		func(ctx context.Context, v int) error { return small })
	if !errors.Is(out.Err(), small) {
		t.Fatalf("expected 'too small', got: %v", out.Err())
	}
}

func TestFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FailOnError(ctx, rop.Ok("x"), func(ctx context.Context, in string) error { return errors.New("no") })
	if out.IsOk() || out.Err().Error() != "no" {
		t.Fatalf("expected failure 'no', got: %v", out.Err())
	}
}

func TestOrElseAndFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fallback := func(ctx context.Context, err error) int { return -1 }

	if v := OrElse(ctx, rop.Ok(2), fallback); v != 2 {
		t.Fatalf("expected 2, got %d", v)
	}
	if v := OrElse(ctx, rop.Err[int](errors.New("e")), fallback); v != -1 {
		t.Fatalf("expected -1, got %d", v)
	}

	describe := func(r rop.Result[int]) string {
		return Finally(ctx, r,
			func(ctx context.Context, v int) string { return "ok" },
			func(ctx context.Context, err error) string { return "err:" + err.Error() })
	}
	if describe(rop.Ok(1)) != "ok" || describe(rop.Err[int](errors.New("x"))) != "err:x" {
		t.Fatalf("unexpected Finally output")
	}
}
