// Package index provides the secondary indices of an indexed map.
//
// An Index derives zero or more index keys from every primary entry through a
// View function and maps each index key to the read-only Entries producing it.
// A Set fans add and remove notifications out to every attached index, in
// attachment order.
//
// Indices are not safe for concurrent use on their own. The indexedmap package
// owns them and serializes every access, either by running on one goroutine or
// through its reader/writer lock.
//
// Lookups on different indices can be combined with OrLookup and AndLookup,
// keyed by Keys.
package index
