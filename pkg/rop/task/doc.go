// Package task provides Task[T], a Result that settles later, and curried
// combinators over it.
//
// A Task starts running as soon as it is built and settles exactly once,
// as Ok or Err. Every combinator waits for its input to settle before it
// inspects it, so the stages of one chain run in order:
//
//	t := fn.Pipe3(
//		task.FromFunc(ctx, loadUser),
//		task.Map(func(ctx context.Context, u User) string { return u.Email }),
//		task.Tap(func(ctx context.Context, email string) { audit(email) }),
//		task.MapErr[string](func(ctx context.Context, err error) error { return fmt.Errorf("load: %w", err) }),
//	)
//	email, err := task.Fold(t)
//
// Failures, including panics in callbacks, travel on the Err track. Only
// Fold gives an error back to the caller; Match, OrElse and GetOrElse
// always return a plain value.
//
// Combinators never cancel work. The context a Task was built with is
// passed to every callback of its chain, and Await stops waiting (but not
// the work) when that context ends.
package task
