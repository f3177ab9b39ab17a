package index

// Maintainer is the part of an index the owning map drives on every mutation.
type Maintainer[K comparable, V any] interface {
	// Add associates the entry with every index key its view yields.
	Add(K, V)

	// Remove dissociates the entry from every index key its view yields.
	// The value must be the one that was added, not a replacement.
	Remove(K, V)

	// Reset drops every association.
	Reset()
}

// Lookup returns the entries associated with an index key.
type Lookup[K comparable, V any, I comparable] func(I) *Entries[K, V]

// Index is a secondary index from index keys of type I to primary entries.
type Index[K comparable, V any, I comparable] struct {
	view    View[K, V, I]
	mapping map[I]map[K]V
	empty   *Entries[K, V]
}

var _ Maintainer[uint8, struct{}] = (*Index[uint8, struct{}, uint8])(nil)

// New creates an empty Index.
// empty is returned by Lookup for index keys without entries; passing the same
// instance to every index of a map lets callers identity-check "no matches".
func New[K comparable, V any, I comparable](view View[K, V, I], empty *Entries[K, V]) *Index[K, V, I] {
	if view == nil {
		panic("index: view must not be nil")
	}
	mustEmpty(empty)
	return &Index[K, V, I]{
		view:    view,
		mapping: map[I]map[K]V{},
		empty:   empty,
	}
}

func (x *Index[K, V, I]) Add(key K, value V) {
	for i := range x.view(key, value) {
		m, ok := x.mapping[i]
		if !ok {
			m = map[K]V{}
			x.mapping[i] = m
		}
		m[key] = value
	}
}

func (x *Index[K, V, I]) Remove(key K, value V) {
	for i := range x.view(key, value) {
		m, ok := x.mapping[i]
		if !ok {
			// already dropped by a duplicate key earlier in this view
			continue
		}
		delete(m, key)
		if len(m) == 0 {
			delete(x.mapping, i)
		}
	}
}

func (x *Index[K, V, I]) Reset() {
	clear(x.mapping)
}

// Lookup returns the entries associated with the index key.
// The result is a read-only view of live index state: it reflects later
// mutations of the owning map until the key loses its last entry.
// Without any entry it returns the empty placeholder given to New.
func (x *Index[K, V, I]) Lookup(i I) *Entries[K, V] {
	if m, ok := x.mapping[i]; ok {
		return Wrap(m)
	}
	return x.empty
}

// Len returns the number of distinct index keys.
func (x *Index[K, V, I]) Len() int {
	return len(x.mapping)
}
