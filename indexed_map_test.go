package indexedmap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	indexedmap "github.com/karupanerura/indexed-map"
	"github.com/karupanerura/indexed-map/index"
	"github.com/karupanerura/indexed-map/indexedmaptest"
	"github.com/sourcegraph/conc/panics"
)

type Animal = indexedmaptest.Animal

func TestHashIndexedMap(t *testing.T) {
	t.Parallel()

	indexedmaptest.TestScenarios(t, func() indexedmap.IndexedMap[int, Animal] {
		return indexedmap.NewHashIndexedMap[int, Animal]()
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("default lock", func(t *testing.T) {
		t.Parallel()

		m := indexedmap.New[int, Animal]()
		if _, ok := m.(*indexedmap.LockedIndexedMap[int, Animal]); !ok {
			t.Errorf("expected *LockedIndexedMap, got %T", m)
		}
	})

	t.Run("NoRWLock", func(t *testing.T) {
		t.Parallel()

		for _, lock := range []indexedmap.RWLocker{indexedmap.NoRWLock{}, &indexedmap.NoRWLock{}} {
			m := indexedmap.New(indexedmap.WithLockStrategy[int, Animal](lock))
			if _, ok := m.(*indexedmap.HashIndexedMap[int, Animal]); !ok {
				t.Errorf("expected *HashIndexedMap for %T, got %T", lock, m)
			}
		}
	})

	t.Run("WithPrimary", func(t *testing.T) {
		t.Parallel()

		seed := map[int]Animal{
			1: {Name: "Dog", Legs: 4},
			2: {Name: "Bird", Legs: 2},
		}
		m := indexedmap.New(indexedmap.WithPrimary(seed))
		legs := indexedmap.AddIndex(m, indexedmaptest.ByLegs())

		seed[3] = Animal{Name: "Cat", Legs: 4}
		if m.ContainsKey(3) {
			t.Error("the seed map must be copied")
		}
		if df := cmp.Diff(map[int]Animal{1: {Name: "Dog", Legs: 4}}, legs(4).ToMap()); df != "" {
			t.Errorf("lookup(4) diff=%s", df)
		}
	})

	t.Run("nil options", func(t *testing.T) {
		t.Parallel()

		tests := map[string]func(){
			"WithLockStrategy": func() { indexedmap.WithLockStrategy[int, Animal](nil) },
			"WithHooks":        func() { indexedmap.WithHooks[int, Animal](nil) },
			"WithValueCloner":  func() { indexedmap.WithValueCloner[int, Animal](nil) },
			"WithValueEqual":   func() { indexedmap.WithValueEqual[int, Animal](nil) },
		}
		for name, f := range tests {
			func() {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("%s(nil) must panic", name)
					}
				}()
				f()
			}()
		}
	})
}

func TestWithValueEqual(t *testing.T) {
	t.Parallel()

	m := indexedmap.New(indexedmap.WithValueEqual[int](func(a, b Animal) bool {
		return a.Name == b.Name
	}))
	m.Insert(1, Animal{Name: "Dog", Legs: 4})
	if !m.ContainsValue(Animal{Name: "Dog"}) {
		t.Error("ContainsValue must use the configured equality")
	}
}

func TestNilPreconditions(t *testing.T) {
	t.Parallel()

	type node struct{ next *node }

	tests := []struct {
		name string
		f    func()
		want string
	}{
		{
			name: "Insert nil value",
			f: func() {
				indexedmap.NewHashIndexedMap[int, *node]().Insert(1, nil)
			},
			want: "nil value",
		},
		{
			name: "Insert nil key",
			f: func() {
				indexedmap.NewHashIndexedMap[any, int]().Insert(nil, 1)
			},
			want: "nil key",
		},
		{
			name: "Delete nil key",
			f: func() {
				indexedmap.NewHashIndexedMap[*node, int]().Delete(nil)
			},
			want: "nil key",
		},
		{
			name: "PutAll nil value",
			f: func() {
				indexedmap.New[int, []int]().PutAll([]indexedmap.Entry[int, []int]{{Key: 1, Value: []int{1}}, {Key: 2}})
			},
			want: "nil value",
		},
		{
			name: "ReplaceAll returning nil",
			f: func() {
				m := indexedmap.New(indexedmap.WithPrimary(map[int]map[string]int{1: {}}))
				m.ReplaceAll(func(int, map[string]int) map[string]int { return nil })
			},
			want: "nil value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				r := recover()
				msg, _ := r.(string)
				if !strings.Contains(msg, tt.want) {
					t.Errorf("expected panic with %q, got: %v", tt.want, r)
				}
			}()
			tt.f()
		})
	}
}

func TestNilPreconditions_NotApplied(t *testing.T) {
	t.Parallel()

	m := indexedmap.NewHashIndexedMap[int, *Animal]()
	legs := indexedmap.AddIndex(m, index.Single(func(_ int, a *Animal) int { return a.Legs }))
	func() {
		defer func() { _ = recover() }()
		m.Insert(1, nil)
	}()
	if m.Len() != 0 || !legs(0).IsEmpty() {
		t.Error("a rejected insert must not change the map")
	}
	if _, ok := m.Select(1); ok {
		t.Error("a rejected insert must not be stored")
	}
}

func TestPanickingView(t *testing.T) {
	t.Parallel()

	errBroken := errors.New("broken view")
	newMap := func() (*indexedmap.HashIndexedMap[int, Animal], index.Lookup[int, Animal, int], index.Lookup[int, Animal, string]) {
		m := indexedmap.NewHashIndexedMap[int, Animal]()
		legs := indexedmap.AddIndex(m, indexedmaptest.ByLegs())
		foods := indexedmap.AddIndex(m, index.Slice(func(_ int, a Animal) []string {
			if a.Name == "Broken" {
				panic(errBroken)
			}
			return a.Foods
		}))
		m.Insert(1, Animal{Name: "Dog", Legs: 4, Foods: []string{"biscuits"}})
		return m, legs, foods
	}
	expectPanic := func(t *testing.T, f func()) {
		t.Helper()
		defer func() {
			err, _ := recover().(error)
			var recovered *panics.ErrRecovered
			if !errors.As(err, &recovered) {
				t.Fatalf("expected *panics.ErrRecovered, got %T: %v", err, err)
			}
			if recovered.Value != errBroken {
				t.Errorf("unexpected panic value: %v", recovered.Value)
			}
		}()
		f()
	}

	t.Run("Insert new key", func(t *testing.T) {
		t.Parallel()

		m, legs, foods := newMap()
		expectPanic(t, func() {
			m.Insert(2, Animal{Name: "Broken", Legs: 4, Foods: []string{"fish"}})
		})
		if m.ContainsKey(2) {
			t.Error("key 2 must be rolled back")
		}
		indexedmaptest.AssertConsistent(t, m, indexedmaptest.ByLegs(), legs, 4)
		if df := cmp.Diff([]int{1}, m.Keys()); df != "" {
			t.Errorf("keys diff=%s", df)
		}
		if got := foods("biscuits").Len(); got != 1 {
			t.Errorf("lookup(biscuits).Len() = %d, want 1", got)
		}
		if got := foods("fish"); !got.IsEmpty() {
			t.Errorf("lookup(fish) must be empty, got %v", got.ToMap())
		}
	})

	t.Run("Insert replacement", func(t *testing.T) {
		t.Parallel()

		m, legs, foods := newMap()
		expectPanic(t, func() {
			m.Insert(1, Animal{Name: "Broken", Legs: 2})
		})
		got, _ := m.Select(1)
		if got.Name != "Dog" {
			t.Errorf("value must be rolled back, got %+v", got)
		}
		if !legs(2).IsEmpty() || legs(4).Len() != 1 {
			t.Error("legs index must be rolled back")
		}
		if got := foods("biscuits").Len(); got != 1 {
			t.Errorf("lookup(biscuits).Len() = %d, want 1", got)
		}
	})
}

func TestHashIndexedMap_LookupDetaches(t *testing.T) {
	t.Parallel()

	m := indexedmap.NewHashIndexedMap[int, Animal]()
	legs := indexedmap.AddIndex(m, indexedmaptest.ByLegs())
	m.Insert(1, Animal{Name: "Dog", Legs: 4})

	dogs := legs(4)
	m.Insert(2, Animal{Name: "Cat", Legs: 4})
	if got := dogs.Len(); got != 2 {
		t.Errorf("live lookup must observe later inserts, got len=%d", got)
	}

	m.Delete(1)
	m.Delete(2)
	m.Insert(3, Animal{Name: "Cow", Legs: 4})
	if !dogs.IsEmpty() {
		t.Errorf("lookup must stay detached after its key lost every entry, got %v", dogs.ToMap())
	}
	if got := legs(4).Len(); got != 1 {
		t.Errorf("a fresh lookup must see re-added entries, got len=%d", got)
	}
}
