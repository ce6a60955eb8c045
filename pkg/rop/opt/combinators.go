package opt

// Map applies f to the value of Some. f is never called on None, and a
// panic in f gives None.
func Map[T, U any](f func(T) U) func(Option[T]) Option[U] {
	return func(o Option[T]) Option[U] {
		if !o.some {
			return None[U]()
		}
		return guard("map", func() Option[U] {
			return Some(f(o.value))
		})
	}
}

// FlatMap applies an Option-returning f without nesting the result.
func FlatMap[T, U any](f func(T) Option[U]) func(Option[T]) Option[U] {
	return func(o Option[T]) Option[U] {
		if !o.some {
			return None[U]()
		}
		return guard("flatMap", func() Option[U] {
			return f(o.value)
		})
	}
}

func Filter[T any](predicate func(T) bool) func(Option[T]) Option[T] {
	return func(o Option[T]) Option[T] {
		if !o.some {
			return None[T]()
		}
		return guard("filter", func() Option[T] {
			if !predicate(o.value) {
				return None[T]()
			}
			return o
		})
	}
}

func GetOrElse[T any](def func() T) func(Option[T]) T {
	return func(o Option[T]) T {
		if !o.some {
			return def()
		}
		return o.value
	}
}

// GetOrThrow panics with *UnwrapError carrying msg on None.
func GetOrThrow[T any](msg string) func(Option[T]) T {
	return func(o Option[T]) T {
		if !o.some {
			panic(&UnwrapError{Msg: msg})
		}
		return o.value
	}
}

// GetOrError is GetOrThrow that returns the *UnwrapError instead.
func GetOrError[T any](msg string) func(Option[T]) (T, error) {
	return func(o Option[T]) (T, error) {
		if !o.some {
			var zero T
			return zero, &UnwrapError{Msg: msg}
		}
		return o.value, nil
	}
}

func Match[T, U any](onSome func(T) U, onNone func() U) func(Option[T]) U {
	return func(o Option[T]) U {
		if !o.some {
			return onNone()
		}
		return onSome(o.value)
	}
}

// OrElse replaces None with the Option produced by alt. Some is returned
// unchanged and alt is not called.
func OrElse[T any](alt func() Option[T]) func(Option[T]) Option[T] {
	return func(o Option[T]) Option[T] {
		if o.some {
			return o
		}
		return guard("orElse", alt)
	}
}

// OrElseValue replaces None with Some(alt()).
func OrElseValue[T any](alt func() T) func(Option[T]) Option[T] {
	return func(o Option[T]) Option[T] {
		if o.some {
			return o
		}
		return guard("orElseValue", func() Option[T] {
			return Some(alt())
		})
	}
}

// Tap runs f on the value of Some and keeps o. A panic in f gives None.
func Tap[T any](f func(T)) func(Option[T]) Option[T] {
	return func(o Option[T]) Option[T] {
		if !o.some {
			return o
		}
		return guard("tap", func() Option[T] {
			f(o.value)
			return o
		})
	}
}
