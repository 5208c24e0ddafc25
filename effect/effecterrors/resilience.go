// Package effecterrors provides error-handling and resilience combinators
// for deferred computations: error taps, fallbacks, retries with backoff,
// and opt-in panic capture.
package effecterrors

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lguimbarda/min-effect/effect/core"
)

// ErrMaxRetries is returned when the maximum number of retries has been exceeded.
// The last underlying error is wrapped and reachable through errors.Is/As.
var ErrMaxRetries = errors.New("max retries exceeded")

// OnError creates a Deferred that calls a handler function when d fails.
// The handler is called for side effects; the error still propagates.
func OnError[A any](d core.Deferred[A], handler func(error)) core.Deferred[A] {
	return d.Recover(func(err error) core.Deferred[A] {
		handler(err)
		return core.Fail[A](err)
	})
}

// Fallback creates a Deferred that runs fallback in place of a failure of d.
// The original error is discarded; use OnError first to observe it.
func Fallback[A any](d, fallback core.Deferred[A]) core.Deferred[A] {
	return d.Recover(func(error) core.Deferred[A] {
		return fallback
	})
}

// Retry creates a Deferred that re-runs d until it succeeds, up to maxRetries
// additional attempts after the first. If every attempt fails, the outcome is
// ErrMaxRetries wrapping the last error. The retry loop rides on TailRecM,
// so an arbitrarily large retry budget cannot grow the call stack.
func Retry[A any](maxRetries int, d core.Deferred[A]) core.Deferred[A] {
	return RetryWithBackoff(maxRetries, nil, d)
}

// BackoffStrategy defines how to calculate delay between retries.
type BackoffStrategy func(attempt int) time.Duration

// ConstantBackoff returns a BackoffStrategy that always waits the same duration.
func ConstantBackoff(delay time.Duration) BackoffStrategy {
	return func(attempt int) time.Duration {
		return delay
	}
}

// LinearBackoff returns a BackoffStrategy that increases delay linearly.
func LinearBackoff(initialDelay time.Duration) BackoffStrategy {
	return func(attempt int) time.Duration {
		return time.Duration(attempt+1) * initialDelay
	}
}

// ExponentialBackoff returns a BackoffStrategy that doubles delay each attempt.
// The delay is capped at maxDelay if provided (use 0 for no cap).
func ExponentialBackoff(initialDelay, maxDelay time.Duration) BackoffStrategy {
	return func(attempt int) time.Duration {
		delay := initialDelay * time.Duration(math.Pow(2, float64(attempt)))
		if maxDelay > 0 && delay > maxDelay {
			return maxDelay
		}
		return delay
	}
}

// RetryWithBackoff creates a Deferred that re-runs d with a delay between
// attempts determined by the backoff strategy. A nil backoff retries
// immediately. Sleeps happen synchronously on the running goroutine; there
// is no scheduler and no cancellation, so keep delays short or observable.
func RetryWithBackoff[A any](maxRetries int, backoff BackoffStrategy, d core.Deferred[A]) core.Deferred[A] {
	if maxRetries < 0 {
		maxRetries = 0
	}

	return core.TailRecM(0, func(attempt int) core.Deferred[core.Step[int, A]] {
		next := core.Map(d, func(value A) core.Step[int, A] {
			return core.Done[int](value)
		})
		return next.Recover(func(err error) core.Deferred[core.Step[int, A]] {
			if attempt >= maxRetries {
				return core.Fail[core.Step[int, A]](fmt.Errorf("%w: %w", ErrMaxRetries, err))
			}
			if backoff != nil {
				time.Sleep(backoff(attempt))
			}
			return core.Pure(core.Continue[int, A](attempt + 1))
		})
	})
}

// Capture converts panics raised while running d into failures on the error
// channel, wrapped as core.ErrPanic. This is the only place the library
// intercepts a panic on a caller's behalf; the core combinators never do.
func Capture[A any](d core.Deferred[A]) core.Deferred[A] {
	return core.FromFunc(func() (res core.Result[A]) {
		defer func() {
			if recovered := recover(); recovered != nil {
				res = core.Err[A](core.NewPanicError(recovered))
			}
		}()
		return d.Run()
	})
}
