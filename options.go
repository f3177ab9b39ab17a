package indexedmap

import (
	"sync"

	"github.com/goccy/go-reflect"
)

type options[K KeyConstraint, V ValueConstraint] struct {
	seed   map[K]V
	lock   RWLocker
	hooks  Hooks[V]
	cloner ValueCloner[V]
	equal  func(a, b V) bool
}

func newOptions[K KeyConstraint, V ValueConstraint](opts []Option[K, V]) *options[K, V] {
	o := &options[K, V]{
		lock:   &sync.RWMutex{},
		hooks:  NopHooks[V]{},
		cloner: NopValueCloner[V]{},
		equal: func(a, b V) bool {
			return reflect.DeepEqual(a, b)
		},
	}
	for _, opt := range opts {
		opt.apply(o)
	}
	return o
}

// Option is an option for New.
type Option[K KeyConstraint, V ValueConstraint] interface {
	apply(*options[K, V])
}

type optionFunc[K KeyConstraint, V ValueConstraint] func(*options[K, V])

func (f optionFunc[K, V]) apply(o *options[K, V]) {
	f(o)
}

// WithPrimary seeds the map with the entries. The map is copied.
func WithPrimary[K KeyConstraint, V ValueConstraint](seed map[K]V) Option[K, V] {
	return optionFunc[K, V](func(o *options[K, V]) {
		o.seed = seed
	})
}

// WithLockStrategy sets the lock guarding the map. The default is a *sync.RWMutex.
// With NoRWLock, New returns an unguarded *HashIndexedMap.
func WithLockStrategy[K KeyConstraint, V ValueConstraint](lock RWLocker) Option[K, V] {
	if lock == nil {
		panic("indexedmap: lock must not be nil")
	}
	return optionFunc[K, V](func(o *options[K, V]) {
		o.lock = lock
	})
}

// WithHooks sets the hooks called on every mutation.
func WithHooks[K KeyConstraint, V ValueConstraint](hooks Hooks[V]) Option[K, V] {
	if hooks == nil {
		panic("indexedmap: hooks must not be nil")
	}
	return optionFunc[K, V](func(o *options[K, V]) {
		o.hooks = hooks
	})
}

// WithValueCloner sets the cloner a LockedIndexedMap applies to every value it hands out.
func WithValueCloner[K KeyConstraint, V ValueConstraint](cloner ValueCloner[V]) Option[K, V] {
	if cloner == nil {
		panic("indexedmap: cloner must not be nil")
	}
	return optionFunc[K, V](func(o *options[K, V]) {
		o.cloner = cloner
	})
}

// WithValueEqual sets the equality used by ContainsValue. The default is reflect.DeepEqual.
func WithValueEqual[K KeyConstraint, V ValueConstraint](equal func(a, b V) bool) Option[K, V] {
	if equal == nil {
		panic("indexedmap: equal must not be nil")
	}
	return optionFunc[K, V](func(o *options[K, V]) {
		o.equal = equal
	})
}

// New creates an IndexedMap.
// It returns a *LockedIndexedMap unless the lock strategy is NoRWLock, in which
// case it returns a *HashIndexedMap.
func New[K KeyConstraint, V ValueConstraint](opts ...Option[K, V]) IndexedMap[K, V] {
	o := newOptions(opts)
	if isNoRWLock(o.lock) {
		return newHashIndexedMap(o)
	}
	return newLockedIndexedMap(o)
}
