package indexedmap

import (
	"sync"

	"github.com/karupanerura/indexed-map/internal/ctxsync"
)

// RWLocker is a reader/writer lock. *sync.RWMutex satisfies it.
type RWLocker interface {
	sync.Locker
	ctxsync.RWLocker
}

var (
	_ RWLocker = (*sync.RWMutex)(nil)
	_ RWLocker = NoRWLock{}
)

// NoRWLock is a RWLocker that never blocks.
// Passing it to WithLockStrategy makes New return an unguarded map for
// single-goroutine use.
type NoRWLock struct{}

func (NoRWLock) Lock()         {}
func (NoRWLock) Unlock()       {}
func (NoRWLock) RLock()        {}
func (NoRWLock) RUnlock()      {}
func (NoRWLock) TryLock() bool { return true }

func isNoRWLock(l RWLocker) bool {
	switch l.(type) {
	case NoRWLock, *NoRWLock:
		return true
	default:
		return false
	}
}
