package pull

// Map creates a Pull whose elements are f applied to each element of src.
// f runs lazily, once per uncons of the derived sequence.
func Map[T, U any](src Pull[T], f func(T) U) Pull[U] {
	return func() (U, Pull[U], bool) {
		head, tail, ok := src()
		if !ok {
			var zero U
			return zero, nil, false
		}
		return f(head), Map(tail, f), true
	}
}

// FlatMap creates a Pull that concatenates the sequences f produces for each
// element of src. Inner sequences are traversed to exhaustion before the
// next outer element is consumed.
func FlatMap[T, U any](src Pull[T], f func(T) Pull[U]) Pull[U] {
	return flatMapFrom(Empty[U](), src, f)
}

func flatMapFrom[T, U any](inner Pull[U], outer Pull[T], f func(T) Pull[U]) Pull[U] {
	return func() (U, Pull[U], bool) {
		currentInner, currentOuter := inner, outer
		for {
			head, tail, ok := currentInner()
			if ok {
				return head, flatMapFrom(tail, currentOuter, f), true
			}
			next, rest, ok := currentOuter()
			if !ok {
				var zero U
				return zero, nil, false
			}
			currentInner, currentOuter = f(next), rest
		}
	}
}

// Filter creates a Pull yielding only the elements of src for which the
// predicate returns true.
func Filter[T any](src Pull[T], predicate func(T) bool) Pull[T] {
	return func() (T, Pull[T], bool) {
		current := src
		for {
			head, tail, ok := current()
			if !ok {
				var zero T
				return zero, nil, false
			}
			if predicate(head) {
				return head, Filter(tail, predicate), true
			}
			current = tail
		}
	}
}

// Take creates a Pull yielding only the first n elements of src.
// If n <= 0, an empty sequence is returned.
func Take[T any](src Pull[T], n int) Pull[T] {
	return func() (T, Pull[T], bool) {
		if n <= 0 {
			var zero T
			return zero, nil, false
		}
		head, tail, ok := src()
		if !ok {
			var zero T
			return zero, nil, false
		}
		return head, Take(tail, n-1), true
	}
}

// TakeWhile creates a Pull yielding elements of src while the predicate
// returns true. The first failing element and everything after it are never
// consumed.
func TakeWhile[T any](src Pull[T], predicate func(T) bool) Pull[T] {
	return func() (T, Pull[T], bool) {
		head, tail, ok := src()
		if !ok || !predicate(head) {
			var zero T
			return zero, nil, false
		}
		return head, TakeWhile(tail, predicate), true
	}
}

// Concat creates a Pull that yields all elements of the given sequences in
// order.
func Concat[T any](sequences ...Pull[T]) Pull[T] {
	return concatFrom(Empty[T](), sequences)
}

func concatFrom[T any](current Pull[T], rest []Pull[T]) Pull[T] {
	return func() (T, Pull[T], bool) {
		head, tail, ok := current()
		if ok {
			return head, concatFrom(tail, rest), true
		}
		remaining := rest
		for len(remaining) > 0 {
			head, tail, ok = remaining[0]()
			if ok {
				return head, concatFrom(tail, remaining[1:]), true
			}
			remaining = remaining[1:]
		}
		var zero T
		return zero, nil, false
	}
}

// Append creates a Pull that yields all of src followed by the given
// elements.
func Append[T any](src Pull[T], items ...T) Pull[T] {
	return Concat(src, FromSlice(items))
}
