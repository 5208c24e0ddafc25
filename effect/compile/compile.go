// Package compile translates a lazy pull sequence into a single value of an
// effect carrier. The driver is written entirely against the capability
// interfaces in effect/core: handed Effect, Looper and Bracketer
// implementations for any deferred type, it folds a sequence without ever
// naming the concrete carrier. The Deferred wiring in DeferredCaps is a
// convenience, not a dependency of the translation itself.
package compile

import (
	"github.com/lguimbarda/min-effect/effect/core"
	"github.com/lguimbarda/min-effect/effect/pull"
)

// State pairs the unconsumed remainder of a sequence with the running
// accumulator. It is the loop seed the driver threads through TailRecM.
type State[T, A any] struct {
	Rest pull.Pull[T]
	Acc  A
}

// Caps bundles the capability instantiations a fold needs: effect operations
// at the loop-step carrier, effect operations at the aggregate carrier, and
// the stack-safe loop connecting the two. Construct one per element and
// accumulator type pair and pass it explicitly; there is no implicit
// resolution.
type Caps[FS, FA, T, A any] struct {
	Step core.Effect[FS, core.Step[State[T, A], A]]
	Agg  core.Effect[FA, A]
	Loop core.Looper[FS, FA, State[T, A], A]
}

// DeferredCaps returns Caps wired to the Deferred carrier.
func DeferredCaps[T, A any]() Caps[
	core.Deferred[core.Step[State[T, A], A]],
	core.Deferred[A],
	T, A,
] {
	return Caps[
		core.Deferred[core.Step[State[T, A], A]],
		core.Deferred[A],
		T, A,
	]{
		Step: core.DeferredEffect[core.Step[State[T, A], A]]{},
		Agg:  core.DeferredEffect[A]{},
		Loop: core.DeferredLooper[State[T, A], A]{},
	}
}

// Fold compiles src into a single aggregate effect: starting from init, each
// element is combined into the accumulator in sequence order. Nothing runs
// at compile time; each uncons is suspended so the sequence is consumed only
// when the returned carrier is run, and consumed again on every rerun. A
// combine error aborts the fold through the carrier's failure channel, and
// the loop itself is stack-safe regardless of sequence length.
func Fold[FS, FA, T, A any](
	caps Caps[FS, FA, T, A],
	src pull.Pull[T],
	init A,
	combine func(A, T) (A, error),
) FA {
	seed := State[T, A]{Rest: src, Acc: init}
	return caps.Loop.TailRecM(seed, func(s State[T, A]) FS {
		return caps.Step.Suspend(func() FS {
			head, tail, ok := s.Rest()
			if !ok {
				return caps.Step.Pure(core.Done[State[T, A]](s.Acc))
			}
			acc, err := combine(s.Acc, head)
			if err != nil {
				return caps.Step.RaiseError(err)
			}
			return caps.Step.Pure(core.Continue[State[T, A], A](State[T, A]{Rest: tail, Acc: acc}))
		})
	})
}

// FoldOrElse compiles src like Fold, but recovers a failed fold into the
// aggregate fallback builds from the error. The recovery is attached through
// the aggregate carrier's error channel, so it sees combine failures as well
// as failures raised by effectful sources layered underneath.
func FoldOrElse[FS, FA, T, A any](
	caps Caps[FS, FA, T, A],
	src pull.Pull[T],
	init A,
	combine func(A, T) (A, error),
	fallback func(error) A,
) FA {
	return caps.Agg.HandleErrorWith(Fold(caps, src, init, combine), func(err error) FA {
		return caps.Agg.Pure(fallback(err))
	})
}

// ToSlice compiles src into an effect yielding all of its elements in order.
func ToSlice[FS, FA, T any](caps Caps[FS, FA, T, []T], src pull.Pull[T]) FA {
	return Fold(caps, src, nil, func(acc []T, value T) ([]T, error) {
		return append(acc, value), nil
	})
}

// Count compiles src into an effect yielding the number of elements.
func Count[FS, FA, T any](caps Caps[FS, FA, T, int], src pull.Pull[T]) FA {
	return Fold(caps, src, 0, func(n int, _ T) (int, error) {
		return n + 1, nil
	})
}

// Drain compiles src into an effect that consumes every element for its
// side effects and yields Unit.
func Drain[FS, FA, T any](caps Caps[FS, FA, T, core.Unit], src pull.Pull[T]) FA {
	return Fold(caps, src, core.Unit{}, func(u core.Unit, _ T) (core.Unit, error) {
		return u, nil
	})
}
