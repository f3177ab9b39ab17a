package primary

import (
	"fmt"
	"iter"
	"maps"

	"github.com/karupanerura/indexed-map/internal/nilcheck"
)

// Store is a unique-key map from K to V.
// Nil keys and values are rejected with a panic.
type Store[K comparable, V any] struct {
	m          map[K]V
	isNilKey   func(any) bool
	isNilValue func(any) bool
}

// New creates a new Store seeded with the given entries.
// The seed map is copied, so later changes to it are not observed.
func New[K comparable, V any](seed map[K]V) *Store[K, V] {
	s := &Store[K, V]{
		m:          make(map[K]V, len(seed)),
		isNilKey:   nilcheck.GetOrCreate[K](),
		isNilValue: nilcheck.GetOrCreate[V](),
	}
	for k, v := range seed {
		s.Put(k, v)
	}
	return s
}

// Get returns the value associated with the key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	v, ok := s.m[key]
	return v, ok
}

// Put associates the value with the key, replacing in place.
// It returns the previous value if one existed.
func (s *Store[K, V]) Put(key K, value V) (V, bool) {
	s.MustValidKey(key)
	s.MustValidValue(value)

	prev, ok := s.m[key]
	s.m[key] = value
	return prev, ok
}

// Remove deletes the key and returns the removed value if one existed.
func (s *Store[K, V]) Remove(key K) (V, bool) {
	s.MustValidKey(key)

	prev, ok := s.m[key]
	if ok {
		delete(s.m, key)
	}
	return prev, ok
}

// ContainsKey reports whether the key is present.
func (s *Store[K, V]) ContainsKey(key K) bool {
	_, ok := s.m[key]
	return ok
}

// ContainsValue reports whether any value satisfies the predicate.
func (s *Store[K, V]) ContainsValue(match func(V) bool) bool {
	for _, v := range s.m {
		if match(v) {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (s *Store[K, V]) Len() int {
	return len(s.m)
}

// Clear removes all entries.
func (s *Store[K, V]) Clear() {
	clear(s.m)
}

// All returns an iterator over all entries. The order is unspecified.
// The store must not be mutated while iterating.
func (s *Store[K, V]) All() iter.Seq2[K, V] {
	return maps.All(s.m)
}

// Keys returns an iterator over all keys.
func (s *Store[K, V]) Keys() iter.Seq[K] {
	return maps.Keys(s.m)
}

// Values returns an iterator over all values.
func (s *Store[K, V]) Values() iter.Seq[V] {
	return maps.Values(s.m)
}

// Unwrap returns the backing map. Callers must treat it as read-only.
func (s *Store[K, V]) Unwrap() map[K]V {
	return s.m
}

// MustValidKey panics if the key is nil.
func (s *Store[K, V]) MustValidKey(key K) {
	if s.isNilKey(key) {
		panic(fmt.Sprintf("primary: nil key of type %s is not supported", nilcheck.TypeName[K]()))
	}
}

// MustValidValue panics if the value is nil.
func (s *Store[K, V]) MustValidValue(value V) {
	if s.isNilValue(value) {
		panic(fmt.Sprintf("primary: nil value of type %s is not supported", nilcheck.TypeName[V]()))
	}
}
