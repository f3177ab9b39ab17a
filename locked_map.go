package indexedmap

import (
	"context"
	"iter"

	"github.com/karupanerura/indexed-map/index"
	"github.com/karupanerura/indexed-map/internal/ctxsync"
)

// LockedIndexedMap is an IndexedMap guarded by a reader/writer lock.
//
// Reads hold the read lock and mutations hold the write lock for the whole
// operation, index maintenance included. Sequences of calls are not atomic;
// use Compute or PutIfAbsent for read-modify-write.
//
// Nothing it returns aliases its internal state: index lookups, Keys, Values,
// EntrySet and All are copies taken under the read lock, with every value
// passed through the configured ValueCloner.
type LockedIndexedMap[K KeyConstraint, V ValueConstraint] struct {
	inner  *HashIndexedMap[K, V]
	lock   RWLocker
	cloner ValueCloner[V]
}

var _ IndexedMap[uint8, struct{}] = (*LockedIndexedMap[uint8, struct{}])(nil)

// NewLockedIndexedMap creates a LockedIndexedMap, even for NoRWLock.
func NewLockedIndexedMap[K KeyConstraint, V ValueConstraint](opts ...Option[K, V]) *LockedIndexedMap[K, V] {
	return newLockedIndexedMap(newOptions(opts))
}

func newLockedIndexedMap[K KeyConstraint, V ValueConstraint](o *options[K, V]) *LockedIndexedMap[K, V] {
	return &LockedIndexedMap[K, V]{
		inner:  newHashIndexedMap(o),
		lock:   o.lock,
		cloner: o.cloner,
	}
}

func (m *LockedIndexedMap[K, V]) read(f func()) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	f()
}

func (m *LockedIndexedMap[K, V]) write(f func()) {
	m.lock.Lock()
	defer m.lock.Unlock()
	f()
}

func (m *LockedIndexedMap[K, V]) readCtx(ctx context.Context, f func()) error {
	l := ctxsync.CtxLocker{Locker: ctxsync.ReadLocker{RW: m.lock}}
	if err := l.LockCtx(ctx); err != nil {
		return err
	}
	defer m.lock.RUnlock()
	f()
	return nil
}

func (m *LockedIndexedMap[K, V]) writeCtx(ctx context.Context, f func()) error {
	l := ctxsync.CtxLocker{Locker: m.lock}
	if err := l.LockCtx(ctx); err != nil {
		return err
	}
	defer m.lock.Unlock()
	f()
	return nil
}

// clone copies the value if it was found.
func (m *LockedIndexedMap[K, V]) clone(v V, ok bool) (V, bool) {
	if ok {
		v = m.cloner.CloneValue(v)
	}
	return v, ok
}

// Select returns a copy of the value associated with the key.
func (m *LockedIndexedMap[K, V]) Select(key K) (v V, ok bool) {
	m.read(func() {
		v, ok = m.clone(m.inner.Select(key))
	})
	return
}

// SelectCtx is Select that gives up waiting for the lock when ctx is done.
func (m *LockedIndexedMap[K, V]) SelectCtx(ctx context.Context, key K) (v V, ok bool, err error) {
	err = m.readCtx(ctx, func() {
		v, ok = m.clone(m.inner.Select(key))
	})
	return
}

// Insert associates the value with the key and updates every index.
// It returns a copy of the previous value if one existed.
func (m *LockedIndexedMap[K, V]) Insert(key K, value V) (prev V, existed bool) {
	m.write(func() {
		prev, existed = m.clone(m.inner.Insert(key, value))
	})
	return
}

// InsertCtx is Insert that gives up waiting for the lock when ctx is done.
func (m *LockedIndexedMap[K, V]) InsertCtx(ctx context.Context, key K, value V) (prev V, existed bool, err error) {
	err = m.writeCtx(ctx, func() {
		prev, existed = m.clone(m.inner.Insert(key, value))
	})
	return
}

// Delete removes the key and updates every index.
func (m *LockedIndexedMap[K, V]) Delete(key K) (prev V, existed bool) {
	m.write(func() {
		prev, existed = m.clone(m.inner.Delete(key))
	})
	return
}

// DeleteCtx is Delete that gives up waiting for the lock when ctx is done.
func (m *LockedIndexedMap[K, V]) DeleteCtx(ctx context.Context, key K) (prev V, existed bool, err error) {
	err = m.writeCtx(ctx, func() {
		prev, existed = m.clone(m.inner.Delete(key))
	})
	return
}

// DeleteAny removes the key if it is a K.
func (m *LockedIndexedMap[K, V]) DeleteAny(key any) (prev V, existed bool) {
	m.write(func() {
		prev, existed = m.clone(m.inner.DeleteAny(key))
	})
	return
}

// Clear removes every entry and empties every index.
func (m *LockedIndexedMap[K, V]) Clear() {
	m.write(m.inner.Clear)
}

// PutAll inserts the entries in order under a single write lock.
func (m *LockedIndexedMap[K, V]) PutAll(entries []Entry[K, V]) {
	m.write(func() {
		m.inner.PutAll(entries)
	})
}

// ReplaceAll replaces every value with the result of f under a single write lock.
// f must not call methods of the map.
func (m *LockedIndexedMap[K, V]) ReplaceAll(f func(K, V) V) {
	m.write(func() {
		m.inner.ReplaceAll(f)
	})
}

// Compute replaces the entry for the key with the result of f under a single write lock.
// f must not call methods of the map.
func (m *LockedIndexedMap[K, V]) Compute(key K, f func(current V, ok bool) (V, bool)) (v V, ok bool) {
	m.write(func() {
		v, ok = m.clone(m.inner.Compute(key, f))
	})
	return
}

// PutIfAbsent inserts the value unless the key is present, under a single write lock.
func (m *LockedIndexedMap[K, V]) PutIfAbsent(key K, value V) (v V, loaded bool) {
	m.write(func() {
		v, loaded = m.inner.PutIfAbsent(key, value)
		v = m.cloner.CloneValue(v)
	})
	return
}

// Len returns the number of entries.
func (m *LockedIndexedMap[K, V]) Len() (n int) {
	m.read(func() {
		n = m.inner.Len()
	})
	return
}

// IsEmpty reports whether there are no entries.
func (m *LockedIndexedMap[K, V]) IsEmpty() (empty bool) {
	m.read(func() {
		empty = m.inner.IsEmpty()
	})
	return
}

// ContainsKey reports whether the key is present.
func (m *LockedIndexedMap[K, V]) ContainsKey(key K) (ok bool) {
	m.read(func() {
		ok = m.inner.ContainsKey(key)
	})
	return
}

// ContainsValue reports whether any entry holds a value equal to the value.
func (m *LockedIndexedMap[K, V]) ContainsValue(value V) (ok bool) {
	m.read(func() {
		ok = m.inner.ContainsValue(value)
	})
	return
}

// Keys returns a snapshot of the keys.
func (m *LockedIndexedMap[K, V]) Keys() (keys []K) {
	m.read(func() {
		keys = m.inner.Keys()
	})
	return
}

// Values returns a snapshot of the values.
func (m *LockedIndexedMap[K, V]) Values() (values []V) {
	m.read(func() {
		values = m.inner.Values()
		for i, v := range values {
			values[i] = m.cloner.CloneValue(v)
		}
	})
	return
}

// EntrySet returns a snapshot of the entries.
func (m *LockedIndexedMap[K, V]) EntrySet() (entries *index.Entries[K, V]) {
	m.read(func() {
		entries = m.inner.EntrySet().CloneFunc(m.cloner.CloneValue)
	})
	return
}

// All returns an iterator over a snapshot of the entries taken by this call.
func (m *LockedIndexedMap[K, V]) All() iter.Seq2[K, V] {
	return m.EntrySet().All()
}

func (m *LockedIndexedMap[K, V]) emptyEntries() *index.Entries[K, V] {
	return m.inner.empty
}

func (m *LockedIndexedMap[K, V]) attachIndex(newIndex func(*index.Entries[K, V]) index.Maintainer[K, V]) readFunc[K, V] {
	var inner readFunc[K, V]
	m.write(func() {
		inner = m.inner.attachIndex(newIndex)
	})
	return func(lookup func() *index.Entries[K, V]) (entries *index.Entries[K, V]) {
		m.read(func() {
			entries = inner(lookup)
			if entries != m.inner.empty {
				entries = entries.CloneFunc(m.cloner.CloneValue)
			}
		})
		return
	}
}
