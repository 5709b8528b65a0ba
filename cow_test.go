// cow_test.go — concurrent copy-on-write safety for shared nodes.
//
// ErrorValue is plain immutable data after construction; sharing one base
// node across many goroutines that derive from it must never race and
// must never mutate the base.
package xgxcause

import (
	"fmt"
	"sync"
	"testing"
)

func TestConcurrent_DeriveFromSharedBase(t *testing.T) {
	t.Parallel()

	base := Custom("shared base")

	const n = 64
	var wg sync.WaitGroup
	derived := make([]*ErrorValue, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				derived[i] = base.With(fmt.Sprintf("k%d", i), i)
			} else {
				derived[i] = Wrap(base, KindValidation, fmt.Sprintf("layer %d", i))
			}
		}(i)
	}
	wg.Wait()

	// Base must remain untouched.
	if base.Fields() != nil {
		t.Fatalf("base grew attributes: %v", base.Fields())
	}
	if base.Source() != nil {
		t.Fatalf("base grew a cause")
	}

	// Every derivation must be isolated.
	for i, d := range derived {
		if d == nil {
			t.Fatalf("missing derivation %d", i)
		}
		if i%2 == 0 {
			if got := d.Fields()[fmt.Sprintf("k%d", i)]; got != i {
				t.Fatalf("derivation %d lost its attribute: %v", i, d.Fields())
			}
		} else if d.Source() != base {
			t.Fatalf("derivation %d lost its cause", i)
		}
	}
}

func TestConcurrent_SharedChainReaders(t *testing.T) {
	t.Parallel()

	ev := Wrap(Wrap(ParseAt("bad", "a.toml", 1, 2), KindValidation, "mid"), KindCustom, "top")
	want := ev.Render()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := ev.Render(); got != want {
				// t.Fatalf inside a goroutine is unsafe; record via Error.
				t.Errorf("concurrent render diverged:\n%s", got)
			}
			if ev.RootCause().Kind() != KindParse {
				t.Errorf("concurrent root walk diverged")
			}
			_ = ev.Fields()
			_ = ev.Chain()
		}()
	}
	wg.Wait()
}
