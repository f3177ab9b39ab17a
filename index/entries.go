package index

import (
	"iter"
	"maps"
)

// Entries is a read-only set of primary entries.
// It is returned by index lookups and snapshots and has no mutating methods;
// use ToMap to get a mutable copy.
type Entries[K comparable, V any] struct {
	m map[K]V
}

// Wrap returns Entries backed by m without copying it.
// The caller keeps ownership of m and decides whether it may change later.
func Wrap[K comparable, V any](m map[K]V) *Entries[K, V] {
	return &Entries[K, V]{m: m}
}

// Get returns the value associated with the key.
func (e *Entries[K, V]) Get(key K) (V, bool) {
	v, ok := e.m[key]
	return v, ok
}

// Len returns the number of entries.
func (e *Entries[K, V]) Len() int {
	return len(e.m)
}

// IsEmpty reports whether there are no entries.
func (e *Entries[K, V]) IsEmpty() bool {
	return len(e.m) == 0
}

// ContainsKey reports whether the key is present.
func (e *Entries[K, V]) ContainsKey(key K) bool {
	_, ok := e.m[key]
	return ok
}

// All returns an iterator over the entries. The order is unspecified.
func (e *Entries[K, V]) All() iter.Seq2[K, V] {
	return maps.All(e.m)
}

// Keys returns an iterator over the keys.
func (e *Entries[K, V]) Keys() iter.Seq[K] {
	return maps.Keys(e.m)
}

// Values returns an iterator over the values.
func (e *Entries[K, V]) Values() iter.Seq[V] {
	return maps.Values(e.m)
}

// Clone returns a detached copy.
func (e *Entries[K, V]) Clone() *Entries[K, V] {
	return &Entries[K, V]{m: maps.Clone(e.m)}
}

// CloneFunc returns a detached copy with every value passed through cloneValue.
func (e *Entries[K, V]) CloneFunc(cloneValue func(V) V) *Entries[K, V] {
	m := make(map[K]V, len(e.m))
	for k, v := range e.m {
		m[k] = cloneValue(v)
	}
	return &Entries[K, V]{m: m}
}

// ToMap returns a mutable copy of the entries.
func (e *Entries[K, V]) ToMap() map[K]V {
	m := make(map[K]V, len(e.m))
	maps.Copy(m, e.m)
	return m
}
