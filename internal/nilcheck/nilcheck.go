package nilcheck

import (
	"sync"

	"github.com/goccy/go-reflect"
)

var (
	// checkersMutex is a mutex for the checkers.
	checkersMutex = sync.RWMutex{}

	// checkers caches nil checkers per type.
	checkers = map[reflect.Type]func(any) bool{}
)

// GetOrCreate returns a function that reports whether a boxed T is nil.
// Checkers are cached per type, so the reflection cost is paid once.
func GetOrCreate[T any]() func(any) bool {
	var zero T
	typ := reflect.TypeOf(&zero).Elem()

	checkersMutex.RLock()
	if f, ok := checkers[typ]; ok {
		checkersMutex.RUnlock()
		return f
	}

	checkersMutex.RUnlock()
	checkersMutex.Lock()
	defer checkersMutex.Unlock()
	if f, ok := checkers[typ]; ok {
		return f
	}

	f := createChecker(typ.Kind())
	checkers[typ] = f
	return f
}

// TypeName returns the name of T, for messages.
func TypeName[T any]() string {
	var zero T
	return reflect.TypeOf(&zero).Elem().String()
}

func createChecker(kind reflect.Kind) func(any) bool {
	switch kind {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return isNilValue
	case reflect.Interface:
		return func(v any) bool {
			if v == nil {
				return true
			}
			return isNilValue(v)
		}
	default:
		return neverNil
	}
}

func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

func neverNil(any) bool {
	return false
}
