package index

// MaybeKey is a struct that contains a key and a flag that indicates whether the key is present.
type MaybeKey[I comparable] struct {
	// Key is the key.
	// If Empty is true, Key must be zero value.
	Key I

	// Empty is true if the key is not present.
	Empty bool
}

// Keys is a pair of index keys used by OrLookup and AndLookup.
//
// If both keys are present, the composite lookup queries both sides.
// If one key is missing, only the non-empty side is queried, so
// AndLookup({Left: 1, Right: None}) behaves like a lookup of left = 1.
// If both keys are missing, the result is empty.
type Keys[L comparable, R comparable] struct {
	Left  MaybeKey[L]
	Right MaybeKey[R]
}

// NewKeys returns Keys with both index keys present.
func NewKeys[L comparable, R comparable](left L, right R) Keys[L, R] {
	return Keys[L, R]{
		Left:  MaybeKey[L]{Key: left},
		Right: MaybeKey[R]{Key: right},
	}
}

// LeftKey returns Keys with the left index key only.
func LeftKey[L comparable, R comparable](left L) Keys[L, R] {
	return Keys[L, R]{
		Left:  MaybeKey[L]{Key: left},
		Right: MaybeKey[R]{Empty: true},
	}
}

// RightKey returns Keys with the right index key only.
func RightKey[L comparable, R comparable](right R) Keys[L, R] {
	return Keys[L, R]{
		Left:  MaybeKey[L]{Empty: true},
		Right: MaybeKey[R]{Key: right},
	}
}
