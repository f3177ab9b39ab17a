package indexedmap

import (
	"fmt"

	"github.com/goccy/go-reflect"
)

// ValueCloner copies values handed out by a LockedIndexedMap, so that callers
// never share a mutable value with the map after the read lock is released.
// CloneValue should return a deep copy of the input value.
type ValueCloner[V ValueConstraint] interface {
	CloneValue(V) V
}

// ValueClonerFunc is a function type that implements the ValueCloner interface.
type ValueClonerFunc[V ValueConstraint] func(v V) V

// CloneValue calls the function.
func (f ValueClonerFunc[V]) CloneValue(v V) V {
	return f(v)
}

// NopValueCloner returns values as they are.
// It is the default, and fits immutable values or values never mutated after insertion.
type NopValueCloner[V ValueConstraint] struct{}

// CloneValue returns the input value.
func (NopValueCloner[V]) CloneValue(v V) V {
	return v
}

// DefaultValueCloner returns a cloner for values of type V.
// It uses the Clone or DeepCopy method of V when there is one, and
// NopValueCloner for scalar kinds. Any other type makes it panic.
func DefaultValueCloner[V ValueConstraint]() ValueCloner[V] {
	type cloner interface {
		Clone() V
	}
	type deepCopier interface {
		DeepCopy() V
	}

	var zero V
	switch any(zero).(type) {
	case cloner:
		return ValueClonerFunc[V](func(v V) V {
			return any(v).(cloner).Clone()
		})
	case deepCopier:
		return ValueClonerFunc[V](func(v V) V {
			return any(v).(deepCopier).DeepCopy()
		})
	}

	typ := reflect.TypeOf(&zero).Elem()
	if isScalarKind(typ.Kind()) {
		return NopValueCloner[V]{}
	}
	panic(fmt.Sprintf("indexedmap: %s has neither Clone nor DeepCopy method", typ.String()))
}

func isScalarKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	default:
		return false
	}
}
