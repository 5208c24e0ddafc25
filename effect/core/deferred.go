// Package core defines the core abstractions for deferred, failable
// computations: the Result outcome carrier, the Deferred effect type and its
// combinators, the stack-safe loop and resource-bracketing primitives, and
// the capability interfaces a generic compile driver programs against.
//
// Deferred values are re-runnable, not memoized: every Run() invokes the
// wrapped function again, re-executing whatever effects it performs. Failures
// travel on the error channel of Result; panics raised inside a wrapped
// function are not intercepted by any combinator here and unwind to the
// caller of Run(). That split is deliberate: Recover handles modeled
// failures, faults stay faults.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other effect packages.
package core

// Deferred represents a computation that has not run yet and that, once run,
// either succeeds with an A or fails with an error. It is a plain function
// value; constructing one performs no work.
type Deferred[A any] func() Result[A]

// Pure creates a Deferred that always succeeds with the given value.
// The value is captured eagerly; only the success is deferred.
func Pure[A any](value A) Deferred[A] {
	return func() Result[A] {
		return Ok(value)
	}
}

// Fail creates a Deferred that always fails with the given error.
func Fail[A any](err error) Deferred[A] {
	return func() Result[A] {
		return Err[A](err)
	}
}

// FromFunc wraps an arbitrary outcome-producing function verbatim.
// The function runs once per Run() of the returned Deferred.
func FromFunc[A any](fn func() Result[A]) Deferred[A] {
	return fn
}

// Run executes the computation and returns its outcome. Run never fails on
// its own; if the wrapped function panics, the panic propagates to the
// caller uncaught.
func (d Deferred[A]) Run() Result[A] {
	return d()
}

// Suspend defers construction of the next Deferred until run time. The thunk
// is re-evaluated on every Run, which keeps composition lazy and allows
// self-referential definitions such as unbounded generators.
func Suspend[A any](thunk func() Deferred[A]) Deferred[A] {
	return func() Result[A] {
		return thunk()()
	}
}

// Map applies f to the successful outcome of d. A failed outcome passes
// through unchanged and f is never invoked for it.
func Map[A, B any](d Deferred[A], f func(A) B) Deferred[B] {
	return func() Result[B] {
		res := d()
		if res.IsErr() {
			return Err[B](res.Err())
		}
		return Ok(f(res.Value()))
	}
}

// FlatMap sequences two deferred computations: run d, and on success feed its
// value to f and run the Deferred f returns. On failure f is never invoked
// and the failure short-circuits. All other combinators reduce to this one.
func FlatMap[A, B any](d Deferred[A], f func(A) Deferred[B]) Deferred[B] {
	return func() Result[B] {
		res := d()
		if res.IsErr() {
			return Err[B](res.Err())
		}
		return f(res.Value())()
	}
}

// Recover intercepts a failed outcome: on failure, f receives the error and
// the Deferred it returns is run in place of the failure. A successful
// outcome passes through unchanged. Recover only sees errors carried on the
// Result channel; panics are not caught.
func (d Deferred[A]) Recover(f func(error) Deferred[A]) Deferred[A] {
	return func() Result[A] {
		res := d()
		if res.IsOk() {
			return res
		}
		return f(res.Err())()
	}
}

// Attempt converts the failure channel into an ordinary value: the returned
// Deferred always succeeds, yielding the original outcome (ok or err) as its
// value. Useful for inspecting a failure without terminating a sequence.
//
// Attempt is a package-level function rather than a method: a method
// returning Deferred[Result[A]] on Deferred[A] is rejected by the Go
// compiler as an instantiation cycle.
func Attempt[A any](d Deferred[A]) Deferred[Result[A]] {
	return func() Result[Result[A]] {
		return Ok(d())
	}
}
