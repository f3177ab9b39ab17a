package index

import "iter"

// Set is an ordered collection of indices attached to one primary store.
type Set[K comparable, V any] struct {
	indices []Maintainer[K, V]
}

// Attach populates the index from the entries and appends it to the set.
// If populating panics the index is not attached.
func (s *Set[K, V]) Attach(m Maintainer[K, V], entries iter.Seq2[K, V]) {
	for k, v := range entries {
		m.Add(k, v)
	}
	s.indices = append(s.indices, m)
}

// Added notifies every index of a new entry.
func (s *Set[K, V]) Added(key K, value V) {
	for _, m := range s.indices {
		m.Add(key, value)
	}
}

// Removed notifies every index of a removed entry.
func (s *Set[K, V]) Removed(key K, value V) {
	for _, m := range s.indices {
		m.Remove(key, value)
	}
}

// Replaced notifies every index that the value for the key has changed.
// The old value is removed from all indices before the new one is added.
func (s *Set[K, V]) Replaced(key K, old, value V) {
	s.Removed(key, old)
	s.Added(key, value)
}

// Reset drops every association of every index.
func (s *Set[K, V]) Reset() {
	for _, m := range s.indices {
		m.Reset()
	}
}

// Rebuild resets every index and repopulates them from the entries.
func (s *Set[K, V]) Rebuild(entries iter.Seq2[K, V]) {
	s.Reset()
	for k, v := range entries {
		s.Added(k, v)
	}
}

// Len returns the number of attached indices.
func (s *Set[K, V]) Len() int {
	return len(s.indices)
}
