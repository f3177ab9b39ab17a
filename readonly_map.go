package indexedmap

import (
	"iter"

	"github.com/karupanerura/indexed-map/index"
)

// ReadOnlyIndexedMap exposes the reads of another IndexedMap.
// Every mutating method, AddIndex included, panics with an error wrapping
// ErrUnsupported. Mutations made through the wrapped map remain visible.
type ReadOnlyIndexedMap[K KeyConstraint, V ValueConstraint] struct {
	m IndexedMap[K, V]
}

var _ IndexedMap[uint8, struct{}] = (*ReadOnlyIndexedMap[uint8, struct{}])(nil)

// ReadOnly returns a read-only view of the map.
func ReadOnly[K KeyConstraint, V ValueConstraint](m IndexedMap[K, V]) *ReadOnlyIndexedMap[K, V] {
	if ro, ok := m.(*ReadOnlyIndexedMap[K, V]); ok {
		return ro
	}
	return &ReadOnlyIndexedMap[K, V]{m: m}
}

func (r *ReadOnlyIndexedMap[K, V]) Select(key K) (V, bool) { return r.m.Select(key) }
func (r *ReadOnlyIndexedMap[K, V]) Len() int               { return r.m.Len() }
func (r *ReadOnlyIndexedMap[K, V]) IsEmpty() bool          { return r.m.IsEmpty() }
func (r *ReadOnlyIndexedMap[K, V]) ContainsKey(key K) bool { return r.m.ContainsKey(key) }
func (r *ReadOnlyIndexedMap[K, V]) ContainsValue(v V) bool { return r.m.ContainsValue(v) }
func (r *ReadOnlyIndexedMap[K, V]) Keys() []K              { return r.m.Keys() }
func (r *ReadOnlyIndexedMap[K, V]) Values() []V            { return r.m.Values() }
func (r *ReadOnlyIndexedMap[K, V]) All() iter.Seq2[K, V]   { return r.m.All() }

// EntrySet returns the entries of the wrapped map.
func (r *ReadOnlyIndexedMap[K, V]) EntrySet() *index.Entries[K, V] {
	return r.m.EntrySet()
}

func (r *ReadOnlyIndexedMap[K, V]) Insert(K, V) (V, bool) {
	panic(unsupported("Insert"))
}

func (r *ReadOnlyIndexedMap[K, V]) Delete(K) (V, bool) {
	panic(unsupported("Delete"))
}

func (r *ReadOnlyIndexedMap[K, V]) DeleteAny(any) (V, bool) {
	panic(unsupported("DeleteAny"))
}

func (r *ReadOnlyIndexedMap[K, V]) Clear() {
	panic(unsupported("Clear"))
}

func (r *ReadOnlyIndexedMap[K, V]) PutAll([]Entry[K, V]) {
	panic(unsupported("PutAll"))
}

func (r *ReadOnlyIndexedMap[K, V]) ReplaceAll(func(K, V) V) {
	panic(unsupported("ReplaceAll"))
}

func (r *ReadOnlyIndexedMap[K, V]) Compute(K, func(V, bool) (V, bool)) (V, bool) {
	panic(unsupported("Compute"))
}

func (r *ReadOnlyIndexedMap[K, V]) PutIfAbsent(K, V) (V, bool) {
	panic(unsupported("PutIfAbsent"))
}

func (r *ReadOnlyIndexedMap[K, V]) emptyEntries() *index.Entries[K, V] {
	return r.m.emptyEntries()
}

func (r *ReadOnlyIndexedMap[K, V]) attachIndex(func(*index.Entries[K, V]) index.Maintainer[K, V]) readFunc[K, V] {
	panic(unsupported("AddIndex"))
}
