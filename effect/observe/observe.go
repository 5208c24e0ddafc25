// Package observe provides observability combinators for deferred
// computations: typed run hooks and run metrics. Because a Deferred carries
// no context and no scheduler, observation works by wrapping the value —
// the instrumented Deferred is itself a Deferred and composes like any
// other.
package observe

import (
	"sync/atomic"
	"time"

	"github.com/lguimbarda/min-effect/effect/core"
)

// RunHooks holds typed observation callbacks for a deferred run.
// All fields are optional - nil means no observation for that event.
// Hooks are invoked synchronously around Run(), so they should be fast.
type RunHooks[A any] struct {
	OnStart    func()              // Run begins
	OnSuccess  func(A)             // Run produced a value
	OnError    func(error)         // Run produced a failure
	OnComplete func(time.Duration) // Run finished either way, with its duration
}

// Instrument wraps d so that every run invokes the given hooks. The wrapped
// value stays re-runnable; hooks fire once per run. Panics raised by d are
// not intercepted: OnComplete does not fire for a run that faults.
func Instrument[A any](d core.Deferred[A], hooks RunHooks[A]) core.Deferred[A] {
	return core.FromFunc(func() core.Result[A] {
		if hooks.OnStart != nil {
			hooks.OnStart()
		}
		start := time.Now()

		res := d.Run()

		if res.IsErr() {
			if hooks.OnError != nil {
				hooks.OnError(res.Err())
			}
		} else if hooks.OnSuccess != nil {
			hooks.OnSuccess(res.Value())
		}
		if hooks.OnComplete != nil {
			hooks.OnComplete(time.Since(start))
		}
		return res
	})
}

// RunMetrics holds live statistics about the runs of an instrumented
// deferred value. All counters are atomic and safe to read while runs are
// in flight on other goroutines.
type RunMetrics struct {
	runs      atomic.Int64
	successes atomic.Int64
	errors    atomic.Int64
	totalNs   atomic.Int64
	minNs     atomic.Int64
	maxNs     atomic.Int64
	lastRunNs atomic.Int64 // Unix nano of the last completed run
}

// Runs returns the number of completed runs.
func (m *RunMetrics) Runs() int64 { return m.runs.Load() }

// Successes returns the number of runs that produced a value.
func (m *RunMetrics) Successes() int64 { return m.successes.Load() }

// Errors returns the number of runs that produced a failure.
func (m *RunMetrics) Errors() int64 { return m.errors.Load() }

// TotalDuration returns the accumulated run time across all runs.
func (m *RunMetrics) TotalDuration() time.Duration {
	return time.Duration(m.totalNs.Load())
}

// MinDuration returns the shortest observed run, or 0 before any run.
func (m *RunMetrics) MinDuration() time.Duration {
	return time.Duration(m.minNs.Load())
}

// MaxDuration returns the longest observed run.
func (m *RunMetrics) MaxDuration() time.Duration {
	return time.Duration(m.maxNs.Load())
}

// LastRun returns the completion time of the most recent run, or the zero
// time before any run.
func (m *RunMetrics) LastRun() time.Time {
	ns := m.lastRunNs.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}

func (m *RunMetrics) record(d time.Duration, failed bool) {
	ns := d.Nanoseconds()
	m.runs.Add(1)
	if failed {
		m.errors.Add(1)
	} else {
		m.successes.Add(1)
	}
	m.totalNs.Add(ns)
	m.lastRunNs.Store(time.Now().UnixNano())

	for {
		current := m.minNs.Load()
		if current != 0 && current <= ns {
			break
		}
		if m.minNs.CompareAndSwap(current, ns) {
			break
		}
	}
	for {
		current := m.maxNs.Load()
		if current >= ns {
			break
		}
		if m.maxNs.CompareAndSwap(current, ns) {
			break
		}
	}
}

// Meter wraps d so that every run updates the given metrics.
func Meter[A any](d core.Deferred[A], metrics *RunMetrics) core.Deferred[A] {
	return core.FromFunc(func() core.Result[A] {
		start := time.Now()
		res := d.Run()
		metrics.record(time.Since(start), res.IsErr())
		return res
	})
}
