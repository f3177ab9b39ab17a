package ctxsync

import (
	"context"
	"sync"
)

// CtxLocker is a wrapper of sync.Locker that can lock with context.
type CtxLocker struct {
	sync.Locker
}

// tryLocker is an interface for the TryLock method.
type tryLocker interface {
	TryLock() bool
}

// LockCtx tries to lock with context.
// If the context is canceled before the lock is acquired, it returns the context error
// and the lock is released as soon as the abandoned acquisition completes.
func (l *CtxLocker) LockCtx(ctx context.Context) error {
	if tl, ok := l.Locker.(tryLocker); ok && tl.TryLock() {
		return nil
	}

	lock := make(chan struct{})
	go func() {
		defer close(lock)
		l.Locker.Lock()
	}()

	select {
	case <-lock:
		return nil
	case <-ctx.Done():
		go func() {
			<-lock
			l.Unlock()
		}()
		return ctx.Err()
	}
}

// RWLocker is the read side of a reader/writer lock.
type RWLocker interface {
	RLock()
	RUnlock()
}

// ReadLocker adapts the read side of a reader/writer lock to sync.Locker.
type ReadLocker struct {
	RW RWLocker
}

var _ tryLocker = ReadLocker{}

func (r ReadLocker) Lock()   { r.RW.RLock() }
func (r ReadLocker) Unlock() { r.RW.RUnlock() }

// TryLock calls TryRLock when the lock supports it.
func (r ReadLocker) TryLock() bool {
	if tl, ok := r.RW.(interface{ TryRLock() bool }); ok {
		return tl.TryRLock()
	}
	return false
}
