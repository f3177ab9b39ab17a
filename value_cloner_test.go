package indexedmap_test

import (
	"testing"

	indexedmap "github.com/karupanerura/indexed-map"
)

type clonerStruct struct {
	Tags []string
}

func (s *clonerStruct) Clone() *clonerStruct {
	return &clonerStruct{Tags: append([]string(nil), s.Tags...)}
}

type deepCopierStruct struct {
	Tags []string
}

func (s deepCopierStruct) DeepCopy() deepCopierStruct {
	return deepCopierStruct{Tags: append([]string(nil), s.Tags...)}
}

func TestDefaultValueCloner(t *testing.T) {
	t.Parallel()

	t.Run("Clone method", func(t *testing.T) {
		t.Parallel()

		cloner := indexedmap.DefaultValueCloner[*clonerStruct]()
		original := &clonerStruct{Tags: []string{"a"}}
		cloned := cloner.CloneValue(original)
		if original == cloned {
			t.Fatal("expected a different pointer")
		}
		original.Tags[0] = "b"
		if cloned.Tags[0] != "a" {
			t.Errorf("clone must be deep, got %v", cloned.Tags)
		}
	})

	t.Run("DeepCopy method", func(t *testing.T) {
		t.Parallel()

		cloner := indexedmap.DefaultValueCloner[deepCopierStruct]()
		original := deepCopierStruct{Tags: []string{"a"}}
		cloned := cloner.CloneValue(original)
		original.Tags[0] = "b"
		if cloned.Tags[0] != "a" {
			t.Errorf("clone must be deep, got %v", cloned.Tags)
		}
	})

	t.Run("scalar kinds", func(t *testing.T) {
		t.Parallel()

		if _, ok := indexedmap.DefaultValueCloner[string]().(indexedmap.NopValueCloner[string]); !ok {
			t.Error("expected NopValueCloner for string")
		}
		if _, ok := indexedmap.DefaultValueCloner[int]().(indexedmap.NopValueCloner[int]); !ok {
			t.Error("expected NopValueCloner for int")
		}
		if _, ok := indexedmap.DefaultValueCloner[*clonerStruct]().(indexedmap.ValueClonerFunc[*clonerStruct]); !ok {
			t.Error("expected ValueClonerFunc for a type with Clone method")
		}
	})

	t.Run("unsupported types", func(t *testing.T) {
		t.Parallel()

		tests := map[string]func(){
			"struct pointer": func() { indexedmap.DefaultValueCloner[*struct{ V int }]() },
			"slice":          func() { indexedmap.DefaultValueCloner[[]int]() },
			"interface":      func() { indexedmap.DefaultValueCloner[any]() },
		}
		for name, f := range tests {
			func() {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("%s: expected panic", name)
					}
				}()
				f()
			}()
		}
	})
}
