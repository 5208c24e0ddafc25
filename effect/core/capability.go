package core

// The interfaces below are the contract a generic compile driver programs
// against. A driver handed implementations of them can fold a lazy sequence
// of steps into a single deferred aggregate without naming the concrete
// effect type. Go cannot abstract over type constructors, so each interface
// is parameterized by the concrete carrier instantiations a driver touches
// and implementations are wired explicitly at the call site.

// Effect is the operation set a driver requires from an effect carrier F of
// values of type A.
// Effect answers the question: "How do I build and sequence effects?".
type Effect[F, A any] interface {
	// Pure lifts a plain value into the carrier.
	Pure(value A) F
	// Suspend defers construction of the carrier until run time,
	// re-evaluating the thunk on every run.
	Suspend(thunk func() F) F
	// FlatMap sequences fa before the carrier f builds from its value.
	FlatMap(fa F, f func(A) F) F
	// RaiseError lifts an error into the carrier's failure channel.
	RaiseError(err error) F
	// HandleErrorWith recovers a failed carrier with the one handle builds
	// from the error.
	HandleErrorWith(fa F, handle func(error) F) F
}

// Looper is the stack-safe iteration primitive. FS carries Step[S, B] loop
// outcomes, FB carries the final B.
// Looper answers the question: "How do I repeat without growing the stack?".
type Looper[FS, FB, S, B any] interface {
	// TailRecM runs step from seed until it yields a Done step or fails,
	// without stack growth proportional to the iteration count.
	TailRecM(seed S, step func(S) FS) FB
}

// Bracketer is the resource-safety primitive. FR carries the resource R, FA
// the result of using it, FU the unit outcome of releasing it.
// Bracketer answers the question: "How do I guarantee teardown?".
type Bracketer[FR, FA, FU, R any] interface {
	// BracketCase acquires, uses, and always releases; see core.BracketCase
	// for the contract every implementation must honor.
	BracketCase(acquire FR, use func(R) FA, release func(R, Outcome) FU) FA
}

// DeferredEffect implements Effect for the Deferred carrier at value type A.
type DeferredEffect[A any] struct{}

func (DeferredEffect[A]) Pure(value A) Deferred[A] {
	return Pure(value)
}

func (DeferredEffect[A]) Suspend(thunk func() Deferred[A]) Deferred[A] {
	return Suspend(thunk)
}

func (DeferredEffect[A]) FlatMap(fa Deferred[A], f func(A) Deferred[A]) Deferred[A] {
	return FlatMap(fa, f)
}

func (DeferredEffect[A]) RaiseError(err error) Deferred[A] {
	return Fail[A](err)
}

func (DeferredEffect[A]) HandleErrorWith(fa Deferred[A], handle func(error) Deferred[A]) Deferred[A] {
	return fa.Recover(handle)
}

// DeferredLooper implements Looper for the Deferred carrier.
type DeferredLooper[S, B any] struct{}

func (DeferredLooper[S, B]) TailRecM(seed S, step func(S) Deferred[Step[S, B]]) Deferred[B] {
	return TailRecM(seed, step)
}

// DeferredBracketer implements Bracketer for the Deferred carrier.
type DeferredBracketer[R, A any] struct{}

func (DeferredBracketer[R, A]) BracketCase(
	acquire Deferred[R],
	use func(R) Deferred[A],
	release func(R, Outcome) Deferred[Unit],
) Deferred[A] {
	return BracketCase(acquire, use, release)
}

// Interface conformance checks for the Deferred adapters.
var _ Effect[Deferred[int], int] = DeferredEffect[int]{}
var _ Looper[Deferred[Step[int, string]], Deferred[string], int, string] = DeferredLooper[int, string]{}
var _ Bracketer[Deferred[int], Deferred[string], Deferred[Unit], int] = DeferredBracketer[int, string]{}
