// Package pull provides a lazy, synchronous, pull-based sequence type and
// the combinators a compile driver folds over. A Pull produces its elements
// one uncons at a time on the calling goroutine; there are no channels and
// no goroutines, so sequences are re-runnable and cheap to abandon.
package pull

// Pull is a lazy sequence of values. Invoking it either yields the head
// element plus the remainder of the sequence, or reports exhaustion with
// ok == false. A Pull value is immutable: invoking it repeatedly yields the
// same head, and traversing it from the start again replays the sequence.
type Pull[T any] func() (head T, tail Pull[T], ok bool)

// Empty creates a Pull that yields no elements.
func Empty[T any]() Pull[T] {
	return func() (T, Pull[T], bool) {
		var zero T
		return zero, nil, false
	}
}

// Cons prepends a head element to a sequence. The tail is not forced.
func Cons[T any](head T, tail Pull[T]) Pull[T] {
	return func() (T, Pull[T], bool) {
		return head, tail, true
	}
}

// Of creates a Pull that yields the given elements in order.
func Of[T any](items ...T) Pull[T] {
	return FromSlice(items)
}

// FromSlice creates a Pull that yields each element of the slice in order.
// The slice is not copied; callers should not mutate it while traversing.
func FromSlice[T any](items []T) Pull[T] {
	return fromSliceAt(items, 0)
}

func fromSliceAt[T any](items []T, index int) Pull[T] {
	return func() (T, Pull[T], bool) {
		if index >= len(items) {
			var zero T
			return zero, nil, false
		}
		return items[index], fromSliceAt(items, index+1), true
	}
}

// Range creates a Pull of integers from start (inclusive) to end (exclusive).
// If start >= end, an empty sequence is returned.
func Range(start, end int) Pull[int] {
	return func() (int, Pull[int], bool) {
		if start >= end {
			return 0, nil, false
		}
		return start, Range(start+1, end), true
	}
}

// Iterate creates an infinite Pull whose elements are init, f(init),
// f(f(init)), and so on. Bound it with Take or TakeWhile before folding.
func Iterate[T any](init T, f func(T) T) Pull[T] {
	return func() (T, Pull[T], bool) {
		return init, Iterate(f(init), f), true
	}
}

// Unfold creates a Pull by repeatedly applying step to a seed. Each step
// returns the next element, the next seed, and whether the sequence
// continues; returning ok == false ends the sequence without an element.
func Unfold[S, T any](seed S, step func(S) (T, S, bool)) Pull[T] {
	return func() (T, Pull[T], bool) {
		value, next, ok := step(seed)
		if !ok {
			var zero T
			return zero, nil, false
		}
		return value, Unfold(next, step), true
	}
}

// Repeat creates a Pull that yields the same value n times.
// If n is negative, the sequence repeats indefinitely.
func Repeat[T any](value T, n int) Pull[T] {
	return func() (T, Pull[T], bool) {
		if n == 0 {
			var zero T
			return zero, nil, false
		}
		next := n - 1
		if n < 0 {
			next = n
		}
		return value, Repeat(value, next), true
	}
}

// Cycle creates an infinite Pull that replays src from the start each time
// it is exhausted. Cycling an empty sequence yields an empty sequence rather
// than looping forever.
func Cycle[T any](src Pull[T]) Pull[T] {
	return cycleFrom(src, src)
}

func cycleFrom[T any](current, src Pull[T]) Pull[T] {
	return func() (T, Pull[T], bool) {
		head, tail, ok := current()
		if ok {
			return head, cycleFrom(tail, src), true
		}
		head, tail, ok = src()
		if !ok {
			var zero T
			return zero, nil, false
		}
		return head, cycleFrom(tail, src), true
	}
}
