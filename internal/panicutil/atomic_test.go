package panicutil_test

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/karupanerura/indexed-map/internal/panicutil"
	"github.com/sourcegraph/conc/panics"
)

func TestAtomic(t *testing.T) {
	t.Parallel()

	t.Run("Normal return", func(t *testing.T) {
		t.Parallel()

		var ran, undone bool
		panicutil.Atomic(func() {
			ran = true
		}, func() {
			undone = true
		})
		if !ran {
			t.Error("expected f to run")
		}
		if undone {
			t.Error("undo must not be called on normal return")
		}
	})

	t.Run("Panic", func(t *testing.T) {
		t.Parallel()

		var undone bool
		var err error
		func() {
			defer func() {
				err, _ = recover().(error)
			}()
			panicutil.Atomic(func() {
				panic("test panic")
			}, func() {
				undone = true
			})
		}()
		if !undone {
			t.Error("expected undo to be called")
		}
		var recoveredErr *panics.ErrRecovered
		if !errors.As(err, &recoveredErr) {
			t.Fatalf("expected error to be of type *panics.ErrRecovered, got: %T", err)
		}
		if recoveredErr.Value != "test panic" {
			t.Errorf("expected panic value 'test panic', got: %v", recoveredErr.Value)
		}
	})

	t.Run("Runtime.Goexit", func(t *testing.T) {
		t.Parallel()

		var wg sync.WaitGroup
		var undone, returned bool

		wg.Add(1)
		go func() {
			defer wg.Done()
			panicutil.Atomic(func() {
				runtime.Goexit()
			}, func() {
				undone = true
			})
			returned = true
		}()
		wg.Wait()

		if !undone {
			t.Error("expected undo to be called")
		}
		if returned {
			t.Error("Atomic must not return after runtime.Goexit")
		}
	})
}

func TestDoubleDeferSandwich_Invoke(t *testing.T) {
	t.Parallel()

	t.Run("Normal return", func(t *testing.T) {
		t.Parallel()

		var dds panicutil.DoubleDeferSandwich
		if r := dds.Invoke(func() {}); r != nil {
			t.Errorf("expected nil, got: %v", r)
		}
	})

	t.Run("Panic with error", func(t *testing.T) {
		t.Parallel()

		customErr := errors.New("custom error")
		var dds panicutil.DoubleDeferSandwich
		r := dds.Invoke(func() {
			panic(customErr)
		})
		if r == nil {
			t.Fatal("expected recovered value")
		}
		if r.Value != customErr {
			t.Errorf("expected panic value custom error, got: %v", r.Value)
		}
	})

	t.Run("Nested panic", func(t *testing.T) {
		t.Parallel()

		var outer, inner panicutil.DoubleDeferSandwich
		var innerRecovered *panics.Recovered
		r := outer.Invoke(func() {
			innerRecovered = inner.Invoke(func() {
				panic("inner panic")
			})
		})
		if r != nil {
			t.Errorf("outer must return normally, got: %v", r.Value)
		}
		if innerRecovered == nil || innerRecovered.Value != "inner panic" {
			t.Errorf("unexpected inner recovered value: %v", innerRecovered)
		}
	})
}
