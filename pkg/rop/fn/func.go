package fn

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/ib-77/fp3/pkg/rop"
)

// DefaultMemoSize is used by Memo when the requested size is not positive.
const DefaultMemoSize = 128

func Identity[T any](v T) T {
	return v
}

func Noop() {}

// Tap calls f with the value and returns the value.
func Tap[T any](f func(T)) func(T) T {
	return func(v T) T {
		f(v)
		return v
	}
}

// Log writes the value, or view(value) when view is set, to the global
// zap logger under label.
func Log[T any](label string, view func(T) any) func(T) T {
	return func(v T) T {
		var shown any = v
		if view != nil {
			shown = view(v)
		}
		zap.S().Infow(label, "value", shown)
		return v
	}
}

// Memo caches results of f in an LRU of at most size entries.
// The returned function is safe for concurrent use; concurrent misses on
// the same key may call f more than once.
func Memo[K comparable, V any](f func(K) V, size int) func(K) V {
	if size <= 0 {
		size = DefaultMemoSize
	}
	cache, err := lru.New[K, V](size)
	if err != nil {
		// only reachable with a non-positive size
		panic(err)
	}
	return func(k K) V {
		if v, ok := cache.Get(k); ok {
			return v
		}
		v := f(k)
		cache.Add(k, v)
		return v
	}
}

// TryCatch returns f(v), or onError(err, v) when f fails or panics.
// A nil onError yields the zero value.
func TryCatch[T, U any](f func(T) (U, error), onError func(err error, v T) U) func(T) U {
	return func(v T) U {
		out, err := rop.Catch(func() (U, error) { return f(v) })
		if err == nil {
			return out
		}
		if onError == nil {
			var zero U
			return zero
		}
		return onError(err, v)
	}
}
