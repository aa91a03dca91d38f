package promisex

import (
	"sync"
	"time"
)

// ─── All / Ignore ─────────────────────────────────────────────────────────────

// All waits for every promise to settle, then returns the first error in
// input order, or nil if all succeeded. It never abandons in-flight work:
// even when an early promise fails, the later ones are still awaited.
func All[T any](promises ...*Promise[T]) error {
	var first error
	for _, p := range promises {
		if _, err := p.Await(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// AllIgnoringErrors waits for every promise to settle and swallows all
// failures. Use it when partial failures are acceptable and the caller only
// needs a completion signal.
func AllIgnoringErrors[T any](promises ...*Promise[T]) {
	for _, p := range promises {
		_, _ = p.Await()
	}
}

// IgnoreErrors awaits p and absorbs its failure. On failure it returns
// fallback if given, else the zero value of T. The error is never re-raised
// and never logged here.
func IgnoreErrors[T any](p *Promise[T], fallback ...T) T {
	v, err := p.Await()
	if err == nil {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	var zero T
	return zero
}

// ─── Outcome Predicates ───────────────────────────────────────────────────────

// Fails awaits p and reports whether it failed. The failure itself is absorbed.
func Fails[T any](p *Promise[T]) bool {
	_, err := p.Await()
	return err != nil
}

// Works awaits p and reports whether it succeeded.
func Works[T any](p *Promise[T]) bool {
	return !Fails(p)
}

// ─── Timeout ──────────────────────────────────────────────────────────────────

// WithTimeout awaits p for at most d. If p settles first its outcome is
// returned unchanged, including failures. If the deadline elapses first the
// result is a timeout error recognizable with IsTimeout, and whatever p
// later settles with is discarded. Exactly one outcome is ever observed;
// the losing timer is always stopped.
//
// An already-settled promise wins unconditionally, even with d == 0.
func WithTimeout[T any](p *Promise[T], d time.Duration) (T, error) {
	if p.Settled() {
		return p.Await()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-p.Done():
		return p.Await()
	case <-timer.C:
		var zero T
		return zero, promiseErrors.New(ErrTimeout).WithDetail("timeout_ms", d.Milliseconds())
	}
}

// ─── Debounce ─────────────────────────────────────────────────────────────────

// Debounce wraps fn so it runs only after calls stop arriving for at least
// wait. Every call resets the timer, and only the argument of the latest
// call is forwarded. Return values are not propagated. Thread-safe.
func Debounce[T any](wait time.Duration, fn func(T)) func(T) {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	return func(arg T) {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, func() {
			fn(arg)
		})
	}
}

// Debounced is Debounce for argument-less functions.
func Debounced(wait time.Duration, fn func()) func() {
	inner := Debounce(wait, func(struct{}) { fn() })
	return func() { inner(struct{}{}) }
}
