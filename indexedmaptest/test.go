// indexedmaptest package provides generic test cases for IndexedMap implementations.
package indexedmaptest

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	indexedmap "github.com/karupanerura/indexed-map"
	"github.com/karupanerura/indexed-map/index"
	"golang.org/x/sync/errgroup"
)

// Animal is the value type used by the test cases.
type Animal struct {
	Name  string
	Legs  int
	Foods []string
}

// Clone returns a deep copy.
func (a Animal) Clone() Animal {
	a.Foods = slices.Clone(a.Foods)
	return a
}

// ByLegs indexes animals by the number of legs.
func ByLegs() index.View[int, Animal, int] {
	return index.Single(func(_ int, a Animal) int {
		return a.Legs
	})
}

// ByFoods indexes animals by every food they eat.
func ByFoods() index.View[int, Animal, string] {
	return index.Slice(func(_ int, a Animal) []string {
		return a.Foods
	})
}

// Provider creates an empty map for a test case.
type Provider func() indexedmap.IndexedMap[int, Animal]

// AssertConsistent fails the test unless the lookup returns, for every index key
// in universe and every index key the current entries produce, exactly the
// entries whose view yields that key.
func AssertConsistent[K comparable, V any, I comparable](tb testing.TB, m indexedmap.IndexedMap[K, V], view index.View[K, V, I], lookup index.Lookup[K, V, I], universe ...I) {
	tb.Helper()

	want := map[I]map[K]V{}
	for _, i := range universe {
		want[i] = map[K]V{}
	}
	for k, v := range m.All() {
		for i := range view(k, v) {
			if want[i] == nil {
				want[i] = map[K]V{}
			}
			want[i][k] = v
		}
	}

	for i, entries := range want {
		if df := cmp.Diff(entries, lookup(i).ToMap()); df != "" {
			tb.Errorf("lookup(%v) diff=%s", i, df)
		}
	}
}

// TestScenarios runs the behavioral test cases shared by every IndexedMap.
func TestScenarios(t *testing.T, provider Provider) {
	t.Run("Foods", func(t *testing.T) {
		t.Parallel()

		m := provider()
		dog := Animal{Name: "Dog", Legs: 4, Foods: []string{"biscuits", "water"}}
		cat := Animal{Name: "Cat", Legs: 4, Foods: []string{"fish", "biscuits"}}
		m.Insert(1, dog)
		m.Insert(2, cat)
		foods := indexedmap.AddIndex(m, ByFoods())

		if df := cmp.Diff(map[int]Animal{1: dog, 2: cat}, foods("biscuits").ToMap()); df != "" {
			t.Errorf("lookup(biscuits) diff=%s", df)
		}
		if df := cmp.Diff(map[int]Animal{2: cat}, foods("fish").ToMap()); df != "" {
			t.Errorf("lookup(fish) diff=%s", df)
		}

		m.Delete(1)
		if df := cmp.Diff(map[int]Animal{2: cat}, foods("biscuits").ToMap()); df != "" {
			t.Errorf("lookup(biscuits) after delete diff=%s", df)
		}
		if got := foods("water"); !got.IsEmpty() {
			t.Errorf("lookup(water) must be empty, got %v", got.ToMap())
		}
	})

	t.Run("EmptyIdentity", func(t *testing.T) {
		t.Parallel()

		m := provider()
		legs := indexedmap.AddIndex(m, ByLegs())
		foods := indexedmap.AddIndex(m, ByFoods())

		empty := legs(4)
		if !empty.IsEmpty() {
			t.Fatalf("lookup(4) must be empty, got %v", empty.ToMap())
		}
		if got := foods("fish"); got != empty {
			t.Error("every index of a map must share the empty result")
		}

		m.Insert(1, Animal{Name: "Dog", Legs: 4})
		if got := legs(4).Len(); got != 1 {
			t.Errorf("lookup(4).Len() = %d, want 1", got)
		}
		m.Delete(1)
		for range 2 {
			if got := legs(4); got != empty {
				t.Errorf("lookup(4) must return the same empty instance, got %v", got.ToMap())
			}
		}
	})

	t.Run("CompositeLookups", func(t *testing.T) {
		t.Parallel()

		m := provider()
		legs := indexedmap.AddIndex(m, ByLegs())
		foods := indexedmap.AddIndex(m, ByFoods())
		and := indexedmap.AndLookup(m, legs, foods)
		or := indexedmap.OrLookup(m, legs, foods)
		empty := legs(100)

		dog := Animal{Name: "Dog", Legs: 4, Foods: []string{"biscuits"}}
		bird := Animal{Name: "Bird", Legs: 2, Foods: []string{"seed"}}
		m.Insert(1, dog)
		m.Insert(2, bird)

		if df := cmp.Diff(map[int]Animal{1: dog}, and(index.NewKeys(4, "biscuits")).ToMap()); df != "" {
			t.Errorf("and(4, biscuits) diff=%s", df)
		}
		if df := cmp.Diff(map[int]Animal{1: dog, 2: bird}, or(index.NewKeys(4, "seed")).ToMap()); df != "" {
			t.Errorf("or(4, seed) diff=%s", df)
		}
		for name, got := range map[string]*index.Entries[int, Animal]{
			"and with disjoint results": and(index.NewKeys(4, "seed")),
			"and without matches":       and(index.NewKeys(6, "fish")),
			"or without matches":        or(index.NewKeys(6, "fish")),
			"or without keys":           or(index.Keys[int, string]{Left: index.MaybeKey[int]{Empty: true}, Right: index.MaybeKey[string]{Empty: true}}),
			"and with left key only":    and(index.LeftKey[int, string](6)),
		} {
			if got != empty {
				t.Errorf("%s: expected the shared empty result, got %v", name, got.ToMap())
			}
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		t.Parallel()

		m := provider()
		dog := Animal{Name: "Dog", Legs: 4}
		if _, existed := m.Insert(1, dog); existed {
			t.Error("Insert must report a new key")
		}
		if got, ok := m.Select(1); !ok {
			t.Error("Select(1) must be found")
		} else if df := cmp.Diff(dog, got); df != "" {
			t.Errorf("Select(1) diff=%s", df)
		}
		if prev, existed := m.Delete(1); !existed {
			t.Error("Delete(1) must report an existing key")
		} else if df := cmp.Diff(dog, prev); df != "" {
			t.Errorf("Delete(1) diff=%s", df)
		}
		if _, ok := m.Select(1); ok {
			t.Error("Select(1) must not be found after Delete")
		}
		if _, existed := m.Delete(1); existed {
			t.Error("Delete of an absent key must report false")
		}
	})

	t.Run("Replacement", func(t *testing.T) {
		t.Parallel()

		m := provider()
		legs := indexedmap.AddIndex(m, ByLegs())
		foods := indexedmap.AddIndex(m, ByFoods())

		v1 := Animal{Name: "Bird", Legs: 2, Foods: []string{"seed", "water"}}
		v2 := Animal{Name: "Dog", Legs: 4, Foods: []string{"biscuits", "water"}}
		m.Insert(1, v1)
		prev, existed := m.Insert(1, v2)
		if !existed {
			t.Error("Insert must report the replaced key")
		}
		if df := cmp.Diff(v1, prev); df != "" {
			t.Errorf("previous value diff=%s", df)
		}

		if !legs(2).IsEmpty() || !foods("seed").IsEmpty() {
			t.Error("keys derived from the old value only must be gone")
		}
		if df := cmp.Diff(map[int]Animal{1: v2}, foods("water").ToMap()); df != "" {
			t.Errorf("lookup(water) diff=%s", df)
		}
		if df := cmp.Diff(map[int]Animal{1: v2}, legs(4).ToMap()); df != "" {
			t.Errorf("lookup(4) diff=%s", df)
		}
		if got := m.Len(); got != 1 {
			t.Errorf("Len() = %d, want 1", got)
		}
	})

	t.Run("LateAttachment", func(t *testing.T) {
		t.Parallel()

		m := provider()
		early := indexedmap.AddIndex(m, ByFoods())
		m.PutAll([]indexedmap.Entry[int, Animal]{
			{Key: 1, Value: Animal{Name: "Dog", Legs: 4, Foods: []string{"biscuits"}}},
			{Key: 2, Value: Animal{Name: "Cat", Legs: 4, Foods: []string{"fish"}}},
			{Key: 3, Value: Animal{Name: "Bird", Legs: 2, Foods: []string{"seed", "fish"}}},
		})
		m.Delete(2)
		m.Insert(4, Animal{Name: "Snake", Foods: []string{"mouse"}})

		late := indexedmap.AddIndex(m, ByFoods())
		for _, food := range []string{"biscuits", "fish", "seed", "mouse", "grass"} {
			if df := cmp.Diff(early(food).ToMap(), late(food).ToMap()); df != "" {
				t.Errorf("lookup(%s) diff=%s", food, df)
			}
		}
		AssertConsistent(t, m, ByFoods(), late, "biscuits", "fish", "seed", "mouse")
	})

	t.Run("Clear", func(t *testing.T) {
		t.Parallel()

		m := provider()
		legs := indexedmap.AddIndex(m, ByLegs())
		m.Insert(1, Animal{Name: "Dog", Legs: 4})
		m.Insert(2, Animal{Name: "Bird", Legs: 2})
		empty := legs(8)

		m.Clear()
		if !m.IsEmpty() || m.Len() != 0 {
			t.Error("map must be empty after Clear")
		}
		for _, n := range []int{2, 4} {
			if got := legs(n); got != empty {
				t.Errorf("lookup(%d) must be the empty result after Clear", n)
			}
		}

		m.Insert(3, Animal{Name: "Cat", Legs: 4})
		AssertConsistent(t, m, ByLegs(), legs, 2, 4)
	})

	t.Run("Queries", func(t *testing.T) {
		t.Parallel()

		m := provider()
		dog := Animal{Name: "Dog", Legs: 4, Foods: []string{"biscuits"}}
		cat := Animal{Name: "Cat", Legs: 4, Foods: []string{"fish"}}
		m.PutAll([]indexedmap.Entry[int, Animal]{{Key: 1, Value: dog}, {Key: 2, Value: cat}})

		if !m.ContainsKey(1) || m.ContainsKey(3) {
			t.Error("unexpected ContainsKey result")
		}
		if !m.ContainsValue(Animal{Name: "Cat", Legs: 4, Foods: []string{"fish"}}) {
			t.Error("ContainsValue must compare values by equality")
		}
		if m.ContainsValue(Animal{Name: "Cat", Legs: 3, Foods: []string{"fish"}}) {
			t.Error("ContainsValue must not match a different value")
		}
		if df := cmp.Diff([]int{1, 2}, slices.Sorted(slices.Values(m.Keys()))); df != "" {
			t.Errorf("Keys() diff=%s", df)
		}
		names := []string{}
		for _, v := range m.Values() {
			names = append(names, v.Name)
		}
		slices.Sort(names)
		if df := cmp.Diff([]string{"Cat", "Dog"}, names); df != "" {
			t.Errorf("Values() diff=%s", df)
		}
		want := map[int]Animal{1: dog, 2: cat}
		if df := cmp.Diff(want, m.EntrySet().ToMap()); df != "" {
			t.Errorf("EntrySet() diff=%s", df)
		}
		if df := cmp.Diff(want, maps.Collect(m.All())); df != "" {
			t.Errorf("All() diff=%s", df)
		}
	})

	t.Run("ReplaceAll", func(t *testing.T) {
		t.Parallel()

		m := provider()
		legs := indexedmap.AddIndex(m, ByLegs())
		m.Insert(1, Animal{Name: "Dog", Legs: 4})
		m.Insert(2, Animal{Name: "Bird", Legs: 2})

		m.ReplaceAll(func(_ int, a Animal) Animal {
			a.Legs *= 2
			return a
		})
		if !legs(2).IsEmpty() {
			t.Error("lookup(2) must be empty after ReplaceAll")
		}
		AssertConsistent(t, m, ByLegs(), legs, 2, 4, 8)
		if got := legs(8).Len(); got != 1 {
			t.Errorf("lookup(8).Len() = %d, want 1", got)
		}
	})

	t.Run("ComputeAndPutIfAbsent", func(t *testing.T) {
		t.Parallel()

		m := provider()
		legs := indexedmap.AddIndex(m, ByLegs())

		v, ok := m.Compute(1, func(current Animal, ok bool) (Animal, bool) {
			if ok {
				t.Error("key 1 must be absent")
			}
			return Animal{Name: "Dog", Legs: 4}, true
		})
		if !ok || v.Name != "Dog" {
			t.Errorf("Compute = (%v, %t), want Dog", v, ok)
		}

		v, ok = m.Compute(1, func(current Animal, ok bool) (Animal, bool) {
			current.Legs = 3
			return current, ok
		})
		if !ok || v.Legs != 3 {
			t.Errorf("Compute = (%v, %t), want 3 legs", v, ok)
		}

		if _, ok := m.Compute(1, func(Animal, bool) (Animal, bool) { return Animal{}, false }); ok {
			t.Error("Compute returning false must delete the key")
		}
		if m.ContainsKey(1) {
			t.Error("key 1 must be deleted")
		}
		if _, ok := m.Compute(1, func(Animal, bool) (Animal, bool) { return Animal{}, false }); ok {
			t.Error("Compute returning false on an absent key must leave it absent")
		}

		got, loaded := m.PutIfAbsent(2, Animal{Name: "Cat", Legs: 4})
		if loaded || got.Name != "Cat" {
			t.Errorf("PutIfAbsent = (%v, %t), want stored Cat", got, loaded)
		}
		got, loaded = m.PutIfAbsent(2, Animal{Name: "Bird", Legs: 2})
		if !loaded || got.Name != "Cat" {
			t.Errorf("PutIfAbsent = (%v, %t), want existing Cat", got, loaded)
		}
		AssertConsistent(t, m, ByLegs(), legs, 2, 3, 4)
	})

	t.Run("DeleteAny", func(t *testing.T) {
		t.Parallel()

		m := provider()
		m.Insert(1, Animal{Name: "Dog", Legs: 4})

		if _, ok := m.DeleteAny("1"); ok {
			t.Error("DeleteAny with a key of another type must report false")
		}
		if _, ok := m.DeleteAny(int64(1)); ok {
			t.Error("DeleteAny with a key of another type must report false")
		}
		if _, ok := m.DeleteAny(nil); ok {
			t.Error("DeleteAny(nil) must report false")
		}
		if !m.ContainsKey(1) {
			t.Error("key 1 must still be present")
		}
		if _, ok := m.DeleteAny(1); !ok {
			t.Error("DeleteAny(1) must report true")
		}
		if m.ContainsKey(1) {
			t.Error("key 1 must be deleted")
		}
	})

	t.Run("RandomConsistency", func(t *testing.T) {
		t.Parallel()

		m := provider()
		rng := rand.New(rand.NewPCG(1, 2))
		legs := indexedmap.AddIndex(m, ByLegs())
		foods := indexedmap.AddIndex(m, ByFoods())
		for n := range 500 {
			switch op := rng.IntN(20); {
			case op < 12:
				m.Insert(rng.IntN(16), randomAnimal(rng))
			case op < 19:
				m.Delete(rng.IntN(16))
			default:
				m.Clear()
			}
			if n%50 == 0 {
				// late attachment in the middle of the sequence must agree with the rest
				foods = indexedmap.AddIndex(m, ByFoods())
			}
			AssertConsistent(t, m, ByLegs(), legs, legUniverse...)
			AssertConsistent(t, m, ByFoods(), foods, foodUniverse...)
			if t.Failed() {
				t.Fatalf("inconsistent after %d operations", n+1)
			}
		}
	})
}

var (
	legUniverse  = []int{0, 2, 4, 6}
	foodUniverse = []string{"biscuits", "fish", "seed", "water"}
)

func randomAnimal(rng *rand.Rand) Animal {
	a := Animal{
		Name: fmt.Sprintf("animal-%d", rng.IntN(1000)),
		Legs: legUniverse[rng.IntN(len(legUniverse))],
	}
	for _, food := range foodUniverse {
		if rng.IntN(2) == 0 {
			a.Foods = append(a.Foods, food)
		}
	}
	return a
}

// TestConcurrency runs randomized mutations and lookups from multiple
// goroutines and checks that every key ends with the value of its last
// writer and that every index is consistent with the entries.
func TestConcurrency(t *testing.T, provider Provider) {
	t.Run("Concurrency", func(t *testing.T) {
		t.Parallel()

		const (
			goroutines = 8
			keysPerG   = 16
			operations = 500
		)

		m := provider()
		legs := indexedmap.AddIndex(m, ByLegs())

		var eg errgroup.Group
		lasts := make([]map[int]*Animal, goroutines)
		for g := range goroutines {
			last := map[int]*Animal{}
			lasts[g] = last
			eg.Go(func() error {
				rng := rand.New(rand.NewPCG(uint64(g), 42))
				for range operations {
					key := g*keysPerG + rng.IntN(keysPerG)
					switch rng.IntN(4) {
					case 0, 1:
						a := randomAnimal(rng)
						m.Insert(key, a)
						last[key] = &a
					case 2:
						m.Delete(key)
						last[key] = nil
					case 3:
						for k, a := range legs(legUniverse[rng.IntN(len(legUniverse))]).All() {
							if k/keysPerG != g {
								continue
							}
							// the goroutine owning a key is its only writer
							if want := last[k]; want == nil || want.Legs != a.Legs {
								return fmt.Errorf("lookup returned stale entry for key %d: %+v", k, a)
							}
						}
					}
				}
				return nil
			})
		}

		// one more goroutine keeps attaching indices while the others run
		eg.Go(func() error {
			for range 10 {
				indexedmap.AddIndex(m, ByFoods())
			}
			return nil
		})
		if err := eg.Wait(); err != nil {
			t.Fatal(err)
		}

		for _, last := range lasts {
			for k, want := range last {
				got, ok := m.Select(k)
				switch {
				case want == nil && ok:
					t.Errorf("key %d must be deleted, got %+v", k, got)
				case want != nil && !ok:
					t.Errorf("key %d must hold %+v, but it is absent", k, *want)
				case want != nil:
					if df := cmp.Diff(*want, got); df != "" {
						t.Errorf("key %d diff=%s", k, df)
					}
				}
			}
		}
		AssertConsistent(t, m, ByLegs(), legs, legUniverse...)
		AssertConsistent(t, m, ByFoods(), indexedmap.AddIndex(m, ByFoods()), foodUniverse...)
	})
}
