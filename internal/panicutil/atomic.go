package panicutil

import (
	"github.com/sourcegraph/conc/panics"
)

// Atomic runs f and calls undo if f does not return normally.
// A panic is re-raised after undo as *panics.ErrRecovered, carrying the
// original value and stack. On runtime.Goexit, undo runs and the goroutine
// keeps exiting.
func Atomic(f func(), undo func()) {
	dds := DoubleDeferSandwich{OnGoexit: undo}
	if r := dds.Invoke(f); r != nil {
		undo()
		panic(r.AsError())
	}
}

// DoubleDeferSandwich tells apart normal returns, panics and runtime.Goexit.
type DoubleDeferSandwich struct {
	// OnGoexit is called when the function calls runtime.Goexit.
	OnGoexit func()
}

// Invoke runs f. It returns nil on a normal return and the recovered value
// on a panic. If f calls runtime.Goexit, OnGoexit is called and Invoke does
// not return.
func (dds *DoubleDeferSandwich) Invoke(f func()) *panics.Recovered {
	var (
		normalReturn bool
		recovered    bool
		panicValue   panics.Recovered
	)
	defer func() {
		if !normalReturn && !recovered && dds.OnGoexit != nil {
			dds.OnGoexit()
		}
	}()
	func() {
		defer func() {
			if !normalReturn {
				panicValue = panics.NewRecovered(2, recover())
			}
		}()
		f()
		normalReturn = true
	}()
	if normalReturn {
		return nil
	}
	recovered = true
	return &panicValue
}
