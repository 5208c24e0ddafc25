package core

import (
	"errors"
	"testing"
)

// emitUntil builds a sequence generator purely through the capability
// surface: suspend each step, flatMap the remainder onto the front. It never
// names the concrete carrier, which is the point of the contract.
func emitUntil[F any](eff Effect[F, []int], n, sentinel int) F {
	return eff.Suspend(func() F {
		if n == sentinel {
			return eff.Pure(nil)
		}
		return eff.FlatMap(emitUntil(eff, n+1, sentinel), func(rest []int) F {
			return eff.Pure(append([]int{n}, rest...))
		})
	})
}

func TestGeneratorThroughCapability(t *testing.T) {
	d := emitUntil[Deferred[[]int]](DeferredEffect[[]int]{}, 1, 5)

	res := d.Run()
	if !res.IsOk() {
		t.Fatalf("Run() failed: %v", res.Err())
	}
	want := []int{1, 2, 3, 4}
	got := res.Value()
	if len(got) != len(want) {
		t.Fatalf("Run() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %d, want %d", i, got[i], want[i])
		}
	}
}

// guarded raises through the capability and recovers through it too.
func guarded[F any](eff Effect[F, string], err error) F {
	return eff.HandleErrorWith(eff.RaiseError(err), func(e error) F {
		return eff.Pure("handled: " + e.Error())
	})
}

func TestErrorChannelThroughCapability(t *testing.T) {
	d := guarded[Deferred[string]](DeferredEffect[string]{}, errors.New("boom"))

	res := d.Run()
	if !res.IsOk() || res.Value() != "handled: boom" {
		t.Errorf("Run() = %v, want Ok(%q)", res, "handled: boom")
	}
}

// withResource brackets through the capability surface, never naming the
// concrete carrier.
func withResource[FR, FA, FU any](
	br Bracketer[FR, FA, FU, string],
	acquire FR,
	use func(string) FA,
	release func(string, Outcome) FU,
) FA {
	return br.BracketCase(acquire, use, release)
}

func TestBracketerThroughCapability(t *testing.T) {
	released := 0
	d := withResource[Deferred[string], Deferred[int], Deferred[Unit]](
		DeferredBracketer[string, int]{},
		Pure("conn"),
		func(resource string) Deferred[int] { return Pure(len(resource)) },
		func(string, Outcome) Deferred[Unit] {
			return FromFunc(func() Result[Unit] {
				released++
				return Ok(Unit{})
			})
		},
	)

	if got := d.Run().Value(); got != 4 {
		t.Errorf("Run() = %d, want 4", got)
	}
	if released != 1 {
		t.Errorf("release ran %d times, want 1", released)
	}
}

func TestLooperThroughCapability(t *testing.T) {
	var looper Looper[Deferred[Step[int, int]], Deferred[int], int, int] = DeferredLooper[int, int]{}
	eff := DeferredEffect[Step[int, int]]{}

	d := looper.TailRecM(0, func(n int) Deferred[Step[int, int]] {
		if n >= 50 {
			return eff.Pure(Done[int](n))
		}
		return eff.Pure(Continue[int, int](n + 5))
	})

	if got := d.Run().Value(); got != 50 {
		t.Errorf("Run() = %d, want 50", got)
	}
}
