package core

import (
	"fmt"
	"runtime"
	"strings"
)

// ErrPanic wraps a recovered panic value as an error.
// It is never produced by the core combinators themselves: map, flatMap and
// recover deliberately let panics unwind (see the package doc). It exists for
// callers that opt in to panic capture, such as effecterrors.Capture.
// It includes a cleaned-up stack trace that excludes internal min-effect frames.
type ErrPanic struct {
	Value any
	Stack string // Cleaned stack trace
}

func (e ErrPanic) Error() string {
	if e.Stack != "" {
		return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// NewPanicError creates an ErrPanic from a recovered value with a cleaned stack trace.
// It captures the current stack and removes internal min-effect frames to show only
// user code, making it easier to identify where the panic originated.
func NewPanicError(recovered any) ErrPanic {
	return ErrPanic{
		Value: recovered,
		Stack: cleanStack(captureStack(4)), // skip: runtime.Callers, captureStack, NewPanicError, defer func
	}
}

// captureStack returns the current stack trace as a string.
func captureStack(skip int) string {
	const maxFrames = 32
	var pcs [maxFrames]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder

	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}

	return sb.String()
}

// cleanStack removes internal min-effect frames from a stack trace.
// It keeps user code and standard library frames while filtering out
// github.com/lguimbarda/min-effect internal frames.
func cleanStack(stack string) string {
	lines := strings.Split(stack, "\n")
	var result []string
	var skipNext bool

	for _, line := range lines {
		// Skip empty lines
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Check if this is a function line (not a file:line)
		if !strings.HasPrefix(line, "\t") {
			// Skip internal min-effect frames
			if strings.Contains(line, "github.com/lguimbarda/min-effect/effect/") {
				skipNext = true
				continue
			}
			skipNext = false
		} else if skipNext {
			// Skip the file:line that follows a skipped function
			continue
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}

// Result represents the outcome of running a deferred computation.
// It exists in one of two states:
//   - Ok: the computation produced a value (IsOk() returns true)
//   - Err: the computation failed with an error (IsErr() returns true)
//
// A Result is a plain value; it carries no laziness of its own. Deferred is
// the lazy wrapper, Result is what running one yields.
type Result[A any] struct {
	value A
	err   error
}

// Ok creates a successful Result containing the given value.
func Ok[A any](value A) Result[A] {
	return Result[A]{value: value}
}

// Err creates a failed Result carrying the given error.
func Err[A any](err error) Result[A] {
	var zero A
	return Result[A]{value: zero, err: err}
}

// IsOk returns true if this Result contains a successful value.
func (r Result[A]) IsOk() bool {
	return r.err == nil
}

// IsErr returns true if this Result carries an error.
func (r Result[A]) IsErr() bool {
	return r.err != nil
}

// Value returns the contained value. Only meaningful when IsOk() is true;
// returns the zero value for a failed Result.
func (r Result[A]) Value() A {
	return r.value
}

// Err returns the carried error, or nil for a successful Result.
func (r Result[A]) Err() error {
	return r.err
}

// Unwrap returns the value and error together, in the usual Go shape.
func (r Result[A]) Unwrap() (A, error) {
	return r.value, r.err
}
