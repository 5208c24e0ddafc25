package pull

import "iter"

// Terminal functions consume a sequence eagerly. They are conveniences for
// tests and call sites that do not need the deferred compile discipline;
// folding through an effect carrier is the compile package's job.

// Collect traverses the sequence to exhaustion and returns its elements.
// Calling Collect on an unbounded sequence does not return.
func Collect[T any](src Pull[T]) []T {
	var items []T
	for head, tail, ok := src(); ok; head, tail, ok = tail() {
		items = append(items, head)
	}
	return items
}

// Count traverses the sequence to exhaustion and returns its length.
func Count[T any](src Pull[T]) int {
	count := 0
	for _, tail, ok := src(); ok; _, tail, ok = tail() {
		count++
	}
	return count
}

// All bridges a sequence to a Go 1.23+ iterator.
func All[T any](src Pull[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for head, tail, ok := src(); ok; head, tail, ok = tail() {
			if !yield(head) {
				return
			}
		}
	}
}
