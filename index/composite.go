package index

// OrLookup combines two lookups with a logical OR.
// The result holds every entry associated with either present key.
// Results without entries are empty, which should be the placeholder the
// combined indices share, so identity checks keep working.
//
// Each side is looked up separately, so against a concurrently mutated map the
// two sides may observe different states.
func OrLookup[K comparable, V any, L comparable, R comparable](empty *Entries[K, V], left Lookup[K, V, L], right Lookup[K, V, R]) Lookup[K, V, Keys[L, R]] {
	mustEmpty(empty)
	return func(key Keys[L, R]) *Entries[K, V] {
		switch {
		case key.Left.Empty && key.Right.Empty:
			return empty
		case key.Right.Empty:
			return orEmpty(left(key.Left.Key), empty)
		case key.Left.Empty:
			return orEmpty(right(key.Right.Key), empty)
		}

		l, r := left(key.Left.Key), right(key.Right.Key)
		switch {
		case l.IsEmpty() && r.IsEmpty():
			return empty
		case r.IsEmpty():
			return l
		case l.IsEmpty():
			return r
		}

		m := make(map[K]V, l.Len()+r.Len())
		for k, v := range r.m {
			m[k] = v
		}
		// left wins when both sides hold the key
		for k, v := range l.m {
			m[k] = v
		}
		return Wrap(m)
	}
}

// AndLookup combines two lookups with a logical AND.
// The result holds the entries associated with both present keys.
// Results without entries are empty, which should be the placeholder the
// combined indices share, so identity checks keep working.
//
// Each side is looked up separately, so against a concurrently mutated map the
// two sides may observe different states.
func AndLookup[K comparable, V any, L comparable, R comparable](empty *Entries[K, V], left Lookup[K, V, L], right Lookup[K, V, R]) Lookup[K, V, Keys[L, R]] {
	mustEmpty(empty)
	return func(key Keys[L, R]) *Entries[K, V] {
		switch {
		case key.Left.Empty && key.Right.Empty:
			return empty
		case key.Right.Empty:
			return orEmpty(left(key.Left.Key), empty)
		case key.Left.Empty:
			return orEmpty(right(key.Right.Key), empty)
		}

		l := left(key.Left.Key)
		if l.IsEmpty() {
			return empty
		}
		r := right(key.Right.Key)
		if r.IsEmpty() {
			return empty
		}

		small, large := l.m, r.m
		if len(small) > len(large) {
			small, large = large, small
		}
		m := map[K]V{}
		for k := range small {
			if _, ok := large[k]; ok {
				m[k] = l.m[k]
			}
		}
		if len(m) == 0 {
			return empty
		}
		return Wrap(m)
	}
}

func mustEmpty[K comparable, V any](empty *Entries[K, V]) {
	if empty == nil || !empty.IsEmpty() {
		panic("index: empty placeholder must be a non-nil empty Entries")
	}
}

func orEmpty[K comparable, V any](e, empty *Entries[K, V]) *Entries[K, V] {
	if e.IsEmpty() {
		return empty
	}
	return e
}
