// Package primary provides the primary index of an indexed map: a plain
// unique-key store that is the source of truth for every secondary index.
//
// A Store has no side effects beyond its own storage and is not safe for
// concurrent use. Keeping secondary indices in sync is the job of the
// indexedmap package, which owns the Store exclusively.
package primary
