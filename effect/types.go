// Package effect provides a deferred, failable effect type and the
// capability surface for compiling lazy sequences into single deferred
// results.
//
// This package is the primary user-facing API. Most users should only
// need to import this package. The effect/core subpackage contains
// low-level abstractions that are rarely needed directly.
package effect

import (
	"github.com/lguimbarda/min-effect/effect/core"
)

// Type aliases for core abstractions.
// These allow users to work with the library without importing core directly.
type (
	// Result represents the outcome of running a deferred computation:
	// a successful value or an error.
	Result[A any] = core.Result[A]

	// Deferred represents a not-yet-executed computation that either
	// succeeds with an A or fails with an error when run.
	Deferred[A any] = core.Deferred[A]

	// Step is the outcome of one iteration of a deferred loop.
	Step[S, B any] = core.Step[S, B]

	// Outcome tags how the use phase of a bracket finished.
	Outcome = core.Outcome

	// Unit is the empty value of effects run purely for their side effects.
	Unit = core.Unit
)

// Outcome tags, re-exported for call sites that only import this package.
const (
	Completed = core.Completed
	Errored   = core.Errored
)

// Result constructors - wrappers around core functions.

// Ok creates a successful Result containing the given value.
func Ok[A any](value A) Result[A] {
	return core.Ok(value)
}

// Err creates a failed Result carrying the given error.
func Err[A any](err error) Result[A] {
	return core.Err[A](err)
}

// Deferred constructors.

// Pure creates a Deferred that always succeeds with the given value.
func Pure[A any](value A) Deferred[A] {
	return core.Pure(value)
}

// Fail creates a Deferred that always fails with the given error.
func Fail[A any](err error) Deferred[A] {
	return core.Fail[A](err)
}

// FromFunc wraps an arbitrary outcome-producing function verbatim.
func FromFunc[A any](fn func() Result[A]) Deferred[A] {
	return core.FromFunc(fn)
}

// Suspend defers construction of the next Deferred until run time.
func Suspend[A any](thunk func() Deferred[A]) Deferred[A] {
	return core.Suspend(thunk)
}

// Combinators.

// Map applies f to the successful outcome of d.
func Map[A, B any](d Deferred[A], f func(A) B) Deferred[B] {
	return core.Map(d, f)
}

// FlatMap sequences d before the Deferred f builds from its value.
func FlatMap[A, B any](d Deferred[A], f func(A) Deferred[B]) Deferred[B] {
	return core.FlatMap(d, f)
}

// Attempt converts the failure channel into an ordinary value: the
// returned Deferred always succeeds, yielding the original outcome.
func Attempt[A any](d Deferred[A]) Deferred[Result[A]] {
	return core.Attempt(d)
}

// TailRecM runs step repeatedly from seed without growing the call stack.
func TailRecM[S, B any](seed S, step func(S) Deferred[Step[S, B]]) Deferred[B] {
	return core.TailRecM(seed, step)
}

// Continue creates a Step that keeps a loop going with the given state.
func Continue[S, B any](next S) Step[S, B] {
	return core.Continue[S, B](next)
}

// Done creates a Step that terminates a loop with the given final value.
func Done[S, B any](final B) Step[S, B] {
	return core.Done[S](final)
}

// BracketCase acquires a resource, uses it, and always releases it.
// See core.BracketCase for the full contract.
func BracketCase[R, A any](
	acquire Deferred[R],
	use func(R) Deferred[A],
	release func(R, Outcome) Deferred[Unit],
) Deferred[A] {
	return core.BracketCase(acquire, use, release)
}

// Bracket is BracketCase for releases that do not care how use finished.
func Bracket[R, A any](
	acquire Deferred[R],
	use func(R) Deferred[A],
	release func(R) Deferred[Unit],
) Deferred[A] {
	return core.BracketCase(acquire, use, func(resource R, _ Outcome) Deferred[Unit] {
		return release(resource)
	})
}
