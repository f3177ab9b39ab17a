package index

import (
	"iter"
	"slices"
)

// View derives index keys from a primary entry.
// It must be pure and deterministic: the same entry must always yield the same
// keys, because removals recompute them from the removed value.
// Yielding the same key more than once is allowed.
type View[K comparable, V any, I comparable] func(K, V) iter.Seq[I]

// Single returns a View that yields exactly one index key per entry.
func Single[K comparable, V any, I comparable](f func(K, V) I) View[K, V, I] {
	return func(k K, v V) iter.Seq[I] {
		return func(yield func(I) bool) {
			yield(f(k, v))
		}
	}
}

// Optional returns a View that yields the index key only when f reports ok.
func Optional[K comparable, V any, I comparable](f func(K, V) (I, bool)) View[K, V, I] {
	return func(k K, v V) iter.Seq[I] {
		return func(yield func(I) bool) {
			if i, ok := f(k, v); ok {
				yield(i)
			}
		}
	}
}

// Slice returns a View that yields every element of the slice returned by f.
func Slice[K comparable, V any, I comparable](f func(K, V) []I) View[K, V, I] {
	return func(k K, v V) iter.Seq[I] {
		return slices.Values(f(k, v))
	}
}

// Concat returns a View that yields the keys of all the given views in order.
func Concat[K comparable, V any, I comparable](views ...View[K, V, I]) View[K, V, I] {
	return func(k K, v V) iter.Seq[I] {
		return func(yield func(I) bool) {
			for _, view := range views {
				for i := range view(k, v) {
					if !yield(i) {
						return
					}
				}
			}
		}
	}
}
