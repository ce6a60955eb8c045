// Package opt provides Option[T], a value that is either present (Some) or
// absent (None) without saying why.
//
// Combinators are curried so they compose with fn.Pipe and fn.Flow:
//
//	fn.Pipe2(opt.Some(5),
//		opt.Map(func(x int) int { return x * 2 }),
//		opt.Filter(func(x int) bool { return x > 5 }),
//	) // Some(10)
//
// GetOrThrow is the only function that panics.
package opt
