package indexedmap

import (
	"iter"

	"github.com/karupanerura/indexed-map/index"
)

// KeyConstraint is an interface for key constraints.
type KeyConstraint interface {
	comparable
}

// ValueConstraint is an interface for value constraints.
type ValueConstraint interface {
	any
}

// Entry is a key-value pair.
type Entry[K KeyConstraint, V ValueConstraint] struct {
	// Key is the key of the entry.
	Key K

	// Value is the value associated with the key.
	Value V
}

// IndexedMap is a unique-key map whose secondary indices are kept consistent
// with its entries on every mutation.
//
// Nil keys and values (nil pointers, maps, slices, funcs, chans and nil
// interfaces) are rejected: mutating methods panic when given one.
//
// The interface is implemented by HashIndexedMap, LockedIndexedMap and
// ReadOnlyIndexedMap only.
type IndexedMap[K KeyConstraint, V ValueConstraint] interface {
	// Select returns the value associated with the key.
	Select(K) (V, bool)

	// Insert associates the value with the key and updates every index.
	// It returns the previous value if one existed.
	Insert(K, V) (V, bool)

	// Delete removes the key and updates every index.
	// It returns the removed value if one existed.
	Delete(K) (V, bool)

	// DeleteAny is Delete for a key of unknown type.
	// A key that is not a K is never present.
	DeleteAny(any) (V, bool)

	// Clear removes every entry and empties every index.
	Clear()

	// PutAll inserts the entries in order.
	PutAll([]Entry[K, V])

	// ReplaceAll replaces every value with the result of the function.
	ReplaceAll(func(K, V) V)

	// Compute replaces the entry for the key with the result of the function
	// in a single mutation. The function receives the current value and
	// whether it exists, and returns the new value and whether to keep it.
	// Compute returns the stored value and whether the key is now present.
	Compute(K, func(V, bool) (V, bool)) (V, bool)

	// PutIfAbsent inserts the value unless the key is present.
	// It returns the stored value and true if the key was already present.
	PutIfAbsent(K, V) (V, bool)

	// Len returns the number of entries.
	Len() int

	// IsEmpty reports whether there are no entries.
	IsEmpty() bool

	// ContainsKey reports whether the key is present.
	ContainsKey(K) bool

	// ContainsValue reports whether any entry holds an equal value.
	ContainsValue(V) bool

	// Keys returns the keys in unspecified order.
	Keys() []K

	// Values returns the values in unspecified order.
	Values() []V

	// EntrySet returns the entries as a read-only set.
	EntrySet() *index.Entries[K, V]

	// All returns an iterator over the entries in unspecified order.
	All() iter.Seq2[K, V]

	attachIndex(func(empty *index.Entries[K, V]) index.Maintainer[K, V]) readFunc[K, V]
	emptyEntries() *index.Entries[K, V]
}

// readFunc runs an index lookup under the guard of the map it belongs to.
type readFunc[K KeyConstraint, V ValueConstraint] func(lookup func() *index.Entries[K, V]) *index.Entries[K, V]

// AddIndex attaches a secondary index built from the view to the map and
// returns its lookup function. The index is populated from every current entry
// and maintained by every later mutation of the map.
//
// Lookups of an index key without entries return the same empty Entries for
// every index of the map, so callers may compare results by identity.
func AddIndex[K KeyConstraint, V ValueConstraint, I comparable](m IndexedMap[K, V], view index.View[K, V, I]) index.Lookup[K, V, I] {
	if view == nil {
		panic("indexedmap: view must not be nil")
	}

	var idx *index.Index[K, V, I]
	read := m.attachIndex(func(empty *index.Entries[K, V]) index.Maintainer[K, V] {
		idx = index.New(view, empty)
		return idx
	})
	return func(i I) *index.Entries[K, V] {
		return read(func() *index.Entries[K, V] {
			return idx.Lookup(i)
		})
	}
}

// OrLookup combines two lookups of the map with index.OrLookup.
// Results without entries are the map's shared empty Entries.
func OrLookup[K KeyConstraint, V ValueConstraint, L comparable, R comparable](m IndexedMap[K, V], left index.Lookup[K, V, L], right index.Lookup[K, V, R]) index.Lookup[K, V, index.Keys[L, R]] {
	return index.OrLookup(m.emptyEntries(), left, right)
}

// AndLookup combines two lookups of the map with index.AndLookup.
// Results without entries are the map's shared empty Entries.
func AndLookup[K KeyConstraint, V ValueConstraint, L comparable, R comparable](m IndexedMap[K, V], left index.Lookup[K, V, L], right index.Lookup[K, V, R]) index.Lookup[K, V, index.Keys[L, R]] {
	return index.AndLookup(m.emptyEntries(), left, right)
}
