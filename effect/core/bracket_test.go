package core

import (
	"errors"
	"testing"
)

// releaseRecorder tracks how a bracket's release phase was invoked.
type releaseRecorder struct {
	calls    int
	resource string
	outcome  Outcome
	fail     error
}

func (r *releaseRecorder) release(resource string, outcome Outcome) Deferred[Unit] {
	return FromFunc(func() Result[Unit] {
		r.calls++
		r.resource = resource
		r.outcome = outcome
		if r.fail != nil {
			return Err[Unit](r.fail)
		}
		return Ok(Unit{})
	})
}

func TestBracketCaseReleasesOnSuccess(t *testing.T) {
	rec := &releaseRecorder{}

	d := BracketCase(
		Pure("handle"),
		func(resource string) Deferred[int] { return Pure(len(resource)) },
		rec.release,
	)

	res := d.Run()
	if !res.IsOk() || res.Value() != 6 {
		t.Errorf("Run() = %v, want Ok(6)", res)
	}
	if rec.calls != 1 {
		t.Errorf("release ran %d times, want 1", rec.calls)
	}
	if rec.resource != "handle" {
		t.Errorf("release saw resource %q, want %q", rec.resource, "handle")
	}
	if rec.outcome != Completed {
		t.Errorf("release saw outcome %v, want %v", rec.outcome, Completed)
	}
}

func TestBracketCaseReleasesOnUseFailure(t *testing.T) {
	boom := errors.New("boom")
	rec := &releaseRecorder{}

	d := BracketCase(
		Pure("handle"),
		func(string) Deferred[int] { return Fail[int](boom) },
		rec.release,
	)

	res := d.Run()
	if !errors.Is(res.Err(), boom) {
		t.Errorf("Err() = %v, want %v (use failure surfaces after release)", res.Err(), boom)
	}
	if rec.calls != 1 {
		t.Errorf("release ran %d times, want 1", rec.calls)
	}
	if rec.outcome != Errored {
		t.Errorf("release saw outcome %v, want %v", rec.outcome, Errored)
	}
}

func TestBracketCaseAcquireFailureSkipsUseAndRelease(t *testing.T) {
	boom := errors.New("no resource")
	rec := &releaseRecorder{}
	useCalls := 0

	d := BracketCase(
		Fail[string](boom),
		func(string) Deferred[int] {
			useCalls++
			return Pure(0)
		},
		rec.release,
	)

	res := d.Run()
	if !errors.Is(res.Err(), boom) {
		t.Errorf("Err() = %v, want %v", res.Err(), boom)
	}
	if useCalls != 0 {
		t.Errorf("use ran %d times after acquire failed, want 0", useCalls)
	}
	if rec.calls != 0 {
		t.Errorf("release ran %d times after acquire failed, want 0", rec.calls)
	}
}

// Release is sequenced after use, so a release failure replaces use's
// outcome. Both directions of the precedence rule are pinned down here.
func TestBracketCaseReleaseFailurePrecedence(t *testing.T) {
	useErr := errors.New("use failed")
	releaseErr := errors.New("release failed")

	t.Run("release failure wins over use success", func(t *testing.T) {
		rec := &releaseRecorder{fail: releaseErr}
		d := BracketCase(
			Pure("handle"),
			func(string) Deferred[int] { return Pure(1) },
			rec.release,
		)
		if err := d.Run().Err(); !errors.Is(err, releaseErr) {
			t.Errorf("Err() = %v, want %v", err, releaseErr)
		}
	})

	t.Run("release failure wins over use failure", func(t *testing.T) {
		rec := &releaseRecorder{fail: releaseErr}
		d := BracketCase(
			Pure("handle"),
			func(string) Deferred[int] { return Fail[int](useErr) },
			rec.release,
		)
		if err := d.Run().Err(); !errors.Is(err, releaseErr) {
			t.Errorf("Err() = %v, want %v", err, releaseErr)
		}
		if rec.outcome != Errored {
			t.Errorf("release saw outcome %v, want %v", rec.outcome, Errored)
		}
	})
}

func TestBracketCaseReleasesWhenUsePanics(t *testing.T) {
	rec := &releaseRecorder{}

	d := BracketCase(
		Pure("handle"),
		func(string) Deferred[int] {
			return FromFunc(func() Result[int] {
				panic("use exploded")
			})
		},
		rec.release,
	)

	defer func() {
		if recovered := recover(); recovered != "use exploded" {
			t.Errorf("recovered %v, want the original panic value", recovered)
		}
		if rec.calls != 1 {
			t.Errorf("release ran %d times, want 1 even when use panics", rec.calls)
		}
		if rec.outcome != Errored {
			t.Errorf("release saw outcome %v, want %v", rec.outcome, Errored)
		}
	}()
	d.Run()
	t.Fatal("Run() returned; panic should have propagated")
}

func TestBracketCaseIsReRunnable(t *testing.T) {
	rec := &releaseRecorder{}
	acquires := 0

	d := BracketCase(
		FromFunc(func() Result[string] {
			acquires++
			return Ok("handle")
		}),
		func(string) Deferred[int] { return Pure(1) },
		rec.release,
	)

	d.Run()
	d.Run()
	if acquires != 2 {
		t.Errorf("acquire ran %d times over two runs, want 2", acquires)
	}
	if rec.calls != 2 {
		t.Errorf("release ran %d times over two runs, want 2", rec.calls)
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{Completed, "completed"},
		{Errored, "errored"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}
