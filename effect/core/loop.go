package core

// Step is the outcome of one iteration of a deferred loop: either continue
// with the next loop state, or finish with the final value.
type Step[S, B any] struct {
	next   S
	final  B
	isDone bool
}

// Continue creates a Step that keeps the loop going with the given state.
func Continue[S, B any](next S) Step[S, B] {
	return Step[S, B]{next: next}
}

// Done creates a Step that terminates the loop with the given final value.
func Done[S, B any](final B) Step[S, B] {
	return Step[S, B]{final: final, isDone: true}
}

// IsDone reports whether this Step terminates the loop.
func (s Step[S, B]) IsDone() bool {
	return s.isDone
}

// Next returns the continuation state. Only meaningful when IsDone() is false.
func (s Step[S, B]) Next() S {
	return s.next
}

// Final returns the terminal value. Only meaningful when IsDone() is true.
func (s Step[S, B]) Final() B {
	return s.final
}

// TailRecM builds a Deferred that runs step repeatedly, starting from seed.
// Each iteration runs step(state) to completion: a Continue outcome feeds the
// next iteration, a Done outcome terminates the loop with its final value, and
// a failed outcome terminates the loop with that failure.
//
// The loop is an explicit for statement rather than recursion, so the call
// stack stays flat no matter how many iterations run. Drivers that repeat or
// unfold sequences atop Deferred rely on this.
func TailRecM[S, B any](seed S, step func(S) Deferred[Step[S, B]]) Deferred[B] {
	return func() Result[B] {
		state := seed
		for {
			res := step(state)()
			if res.IsErr() {
				return Err[B](res.Err())
			}
			st := res.Value()
			if st.IsDone() {
				return Ok(st.Final())
			}
			state = st.Next()
		}
	}
}
