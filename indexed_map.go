package indexedmap

import (
	"iter"
	"slices"

	"github.com/karupanerura/indexed-map/index"
	"github.com/karupanerura/indexed-map/internal/panicutil"
	"github.com/karupanerura/indexed-map/primary"
)

// HashIndexedMap is an IndexedMap without any synchronization.
// It must not be used by multiple goroutines at once unless all of them only read.
//
// Index lookups and EntrySet return read-only views of live state: they observe
// later mutations of the map. A lookup result detaches for good once its index
// key loses its last entry; look the key up again after re-adding entries.
type HashIndexedMap[K KeyConstraint, V ValueConstraint] struct {
	primary *primary.Store[K, V]
	indices index.Set[K, V]
	empty   *index.Entries[K, V]
	hooks   Hooks[V]
	equal   func(a, b V) bool
}

var _ IndexedMap[uint8, struct{}] = (*HashIndexedMap[uint8, struct{}])(nil)

// NewHashIndexedMap creates a HashIndexedMap. The lock strategy and the value
// cloner options are ignored. Seed entries do not go through the hooks.
func NewHashIndexedMap[K KeyConstraint, V ValueConstraint](opts ...Option[K, V]) *HashIndexedMap[K, V] {
	return newHashIndexedMap(newOptions(opts))
}

func newHashIndexedMap[K KeyConstraint, V ValueConstraint](o *options[K, V]) *HashIndexedMap[K, V] {
	return &HashIndexedMap[K, V]{
		primary: primary.New(o.seed),
		empty:   index.Wrap[K, V](nil),
		hooks:   o.hooks,
		equal:   o.equal,
	}
}

// Select returns the value associated with the key.
func (m *HashIndexedMap[K, V]) Select(key K) (V, bool) {
	return m.primary.Get(key)
}

// Insert associates the value with the key and updates every index.
// The value passes through OnAdd or OnChange first.
// If storing the value or an index view panics, the map is restored to its
// state before the call, OnRollback is called on hooks implementing
// RollbackHooks, and the panic is propagated.
func (m *HashIndexedMap[K, V]) Insert(key K, value V) (V, bool) {
	m.primary.MustValidKey(key)
	m.primary.MustValidValue(value)

	prev, existed := m.primary.Get(key)
	if existed {
		value = m.hooks.OnChange(prev, value)
	} else {
		value = m.hooks.OnAdd(value)
	}

	panicutil.Atomic(func() {
		m.primary.Put(key, value)
		if existed {
			m.indices.Replaced(key, prev, value)
		} else {
			m.indices.Added(key, value)
		}
	}, func() {
		if existed {
			m.primary.Put(key, prev)
		} else {
			m.primary.Remove(key)
		}
		m.indices.Rebuild(m.primary.All())
		if rb, ok := m.hooks.(RollbackHooks[V]); ok {
			rb.OnRollback(value, existed)
		}
	})
	return prev, existed
}

// Delete removes the key and updates every index.
func (m *HashIndexedMap[K, V]) Delete(key K) (V, bool) {
	prev, existed := m.primary.Remove(key)
	if !existed {
		return prev, false
	}

	panicutil.Atomic(func() {
		m.indices.Removed(key, prev)
	}, func() {
		m.primary.Put(key, prev)
		m.indices.Rebuild(m.primary.All())
	})
	m.hooks.OnDelete(prev)
	return prev, true
}

// DeleteAny removes the key if it is a K.
func (m *HashIndexedMap[K, V]) DeleteAny(key any) (V, bool) {
	k, ok := key.(K)
	if !ok {
		var zero V
		return zero, false
	}
	return m.Delete(k)
}

// Clear removes every entry and empties every index.
// OnDelete is called for every removed value afterwards.
func (m *HashIndexedMap[K, V]) Clear() {
	removed := slices.Collect(m.primary.Values())
	m.primary.Clear()
	m.indices.Reset()
	for _, v := range removed {
		m.hooks.OnDelete(v)
	}
}

// PutAll inserts the entries in order. A later entry wins over an earlier one
// with the same key.
func (m *HashIndexedMap[K, V]) PutAll(entries []Entry[K, V]) {
	for _, e := range entries {
		m.Insert(e.Key, e.Value)
	}
}

// ReplaceAll replaces every value with the result of f through Insert.
func (m *HashIndexedMap[K, V]) ReplaceAll(f func(K, V) V) {
	for _, k := range slices.Collect(m.primary.Keys()) {
		v, _ := m.primary.Get(k)
		m.Insert(k, f(k, v))
	}
}

// Compute replaces the entry for the key with the result of f.
func (m *HashIndexedMap[K, V]) Compute(key K, f func(current V, ok bool) (V, bool)) (V, bool) {
	m.primary.MustValidKey(key)

	current, ok := m.primary.Get(key)
	next, keep := f(current, ok)
	if !keep {
		if ok {
			m.Delete(key)
		}
		var zero V
		return zero, false
	}

	m.Insert(key, next)
	return m.primary.Get(key)
}

// PutIfAbsent inserts the value unless the key is present.
func (m *HashIndexedMap[K, V]) PutIfAbsent(key K, value V) (V, bool) {
	m.primary.MustValidKey(key)
	if current, ok := m.primary.Get(key); ok {
		return current, true
	}

	m.Insert(key, value)
	stored, _ := m.primary.Get(key)
	return stored, false
}

// Len returns the number of entries.
func (m *HashIndexedMap[K, V]) Len() int {
	return m.primary.Len()
}

// IsEmpty reports whether there are no entries.
func (m *HashIndexedMap[K, V]) IsEmpty() bool {
	return m.primary.Len() == 0
}

// ContainsKey reports whether the key is present.
func (m *HashIndexedMap[K, V]) ContainsKey(key K) bool {
	return m.primary.ContainsKey(key)
}

// ContainsValue reports whether any entry holds a value equal to the value.
func (m *HashIndexedMap[K, V]) ContainsValue(value V) bool {
	return m.primary.ContainsValue(func(v V) bool {
		return m.equal(v, value)
	})
}

// Keys returns the keys in unspecified order.
func (m *HashIndexedMap[K, V]) Keys() []K {
	return slices.Collect(m.primary.Keys())
}

// Values returns the values in unspecified order.
func (m *HashIndexedMap[K, V]) Values() []V {
	return slices.Collect(m.primary.Values())
}

// EntrySet returns a read-only view of the entries.
func (m *HashIndexedMap[K, V]) EntrySet() *index.Entries[K, V] {
	return index.Wrap(m.primary.Unwrap())
}

// All returns an iterator over the entries.
// The map must not be mutated while iterating.
func (m *HashIndexedMap[K, V]) All() iter.Seq2[K, V] {
	return m.primary.All()
}

func (m *HashIndexedMap[K, V]) emptyEntries() *index.Entries[K, V] {
	return m.empty
}

func (m *HashIndexedMap[K, V]) attachIndex(newIndex func(*index.Entries[K, V]) index.Maintainer[K, V]) readFunc[K, V] {
	m.indices.Attach(newIndex(m.empty), m.primary.All())
	return func(lookup func() *index.Entries[K, V]) *index.Entries[K, V] {
		return lookup()
	}
}
