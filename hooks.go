package indexedmap

// Hooks intercepts every mutation of a map.
// The map calls the hooks synchronously before the value is applied, except
// OnDelete which is called after the entry has been removed.
type Hooks[V ValueConstraint] interface {
	// OnAdd is called before a value is stored under a new key.
	// The returned value is stored instead.
	OnAdd(value V) V

	// OnChange is called before the current value of a key is replaced.
	// The returned value is stored instead of the replacement.
	OnChange(current, replacement V) V

	// OnDelete is called after a value has been removed, including by Clear.
	OnDelete(value V)
}

// RollbackHooks is implemented by Hooks that keep state about the values they see.
// OnRollback is called when a mutation is undone after OnAdd or OnChange ran
// for it. value is the value the hook returned and existed reports whether it
// was OnChange.
type RollbackHooks[V ValueConstraint] interface {
	Hooks[V]
	OnRollback(value V, existed bool)
}

// NopHooks is a Hooks that stores every value as given.
type NopHooks[V ValueConstraint] struct{}

var _ Hooks[struct{}] = NopHooks[struct{}]{}

func (NopHooks[V]) OnAdd(value V) V             { return value }
func (NopHooks[V]) OnChange(_, replacement V) V { return replacement }
func (NopHooks[V]) OnDelete(V)                  {}

// HooksFuncs is a Hooks built from functions.
// A nil function behaves like NopHooks.
type HooksFuncs[V ValueConstraint] struct {
	OnAddFunc    func(value V) V
	OnChangeFunc func(current, replacement V) V
	OnDeleteFunc func(value V)
}

var _ Hooks[struct{}] = HooksFuncs[struct{}]{}

// OnAdd calls OnAddFunc.
func (h HooksFuncs[V]) OnAdd(value V) V {
	if h.OnAddFunc == nil {
		return value
	}
	return h.OnAddFunc(value)
}

// OnChange calls OnChangeFunc.
func (h HooksFuncs[V]) OnChange(current, replacement V) V {
	if h.OnChangeFunc == nil {
		return replacement
	}
	return h.OnChangeFunc(current, replacement)
}

// OnDelete calls OnDeleteFunc.
func (h HooksFuncs[V]) OnDelete(value V) {
	if h.OnDeleteFunc != nil {
		h.OnDeleteFunc(value)
	}
}
