package core

import (
	"errors"
	"testing"
)

func TestStepAccessors(t *testing.T) {
	cont := Continue[int, string](7)
	if cont.IsDone() {
		t.Error("Continue step reports done")
	}
	if cont.Next() != 7 {
		t.Errorf("Next() = %d, want 7", cont.Next())
	}

	done := Done[int]("finished")
	if !done.IsDone() {
		t.Error("Done step reports not done")
	}
	if done.Final() != "finished" {
		t.Errorf("Final() = %q, want %q", done.Final(), "finished")
	}
}

func TestTailRecMTerminatesWithFinalValue(t *testing.T) {
	d := TailRecM(1, func(n int) Deferred[Step[int, int]] {
		if n == 10 {
			return Pure(Done[int](n))
		}
		return Pure(Continue[int, int](n + 1))
	})

	res := d.Run()
	if !res.IsOk() || res.Value() != 10 {
		t.Errorf("Run() = %v, want Ok(10)", res)
	}
}

// 100k iterations would overflow the stack if the loop were recursive.
func TestTailRecMStackSafety(t *testing.T) {
	const iterations = 100_000

	d := TailRecM(1, func(n int) Deferred[Step[int, int]] {
		if n == iterations {
			return Pure(Done[int](n))
		}
		return Pure(Continue[int, int](n + 1))
	})

	res := d.Run()
	if !res.IsOk() || res.Value() != iterations {
		t.Errorf("Run() = %v, want Ok(%d)", res, iterations)
	}
}

func TestTailRecMStopsOnStepFailure(t *testing.T) {
	boom := errors.New("boom")
	steps := 0

	d := TailRecM(0, func(n int) Deferred[Step[int, int]] {
		steps++
		if n == 3 {
			return Fail[Step[int, int]](boom)
		}
		return Pure(Continue[int, int](n + 1))
	})

	res := d.Run()
	if !errors.Is(res.Err(), boom) {
		t.Errorf("Err() = %v, want %v", res.Err(), boom)
	}
	if steps != 4 {
		t.Errorf("step ran %d times, want 4 (failure stops the loop immediately)", steps)
	}
}

func TestTailRecMIsReRunnable(t *testing.T) {
	runs := 0
	d := TailRecM(0, func(n int) Deferred[Step[int, int]] {
		if n == 2 {
			runs++
			return Pure(Done[int](runs))
		}
		return Pure(Continue[int, int](n + 1))
	})

	if got := d.Run().Value(); got != 1 {
		t.Errorf("first run = %d, want 1", got)
	}
	if got := d.Run().Value(); got != 2 {
		t.Errorf("second run = %d, want 2 (loop restarts from the seed)", got)
	}
}
