package promisex

import "sync"

// Promise represents a value that will be available asynchronously.
// It settles exactly once; the result is cached and every Await returns it.
type Promise[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

func newPromise[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// settle records the outcome and releases waiters. Only the first call
// has effect.
func (p *Promise[T]) settle(val T, err error) {
	p.once.Do(func() {
		p.val = val
		p.err = err
		close(p.done)
	})
}

// Await blocks until the promise settles and returns its value and error.
// Safe to call from multiple goroutines and any number of times.
func (p *Promise[T]) Await() (T, error) {
	<-p.done
	return p.val, p.err
}

// Done returns a channel closed when the promise settles, for use in select.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Settled reports whether the promise has already settled, without blocking.
func (p *Promise[T]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Run executes fn in a goroutine and returns a Promise for its result.
// The goroutine starts immediately.
func Run[T any](fn func() (T, error)) *Promise[T] {
	p := newPromise[T]()
	go func() {
		v, err := fn()
		p.settle(v, err)
	}()
	return p
}

// Resolved returns a promise already settled with val.
func Resolved[T any](val T) *Promise[T] {
	p := newPromise[T]()
	p.settle(val, nil)
	return p
}

// Rejected returns a promise already settled with err.
func Rejected[T any](err error) *Promise[T] {
	p := newPromise[T]()
	var zero T
	p.settle(zero, err)
	return p
}

// Deferred is a promise whose outcome is decided externally, decoupling
// promise creation from the code that resolves it. Useful for adapting
// callback-style APIs.
type Deferred[T any] struct {
	p *Promise[T]
}

// Defer creates a pending promise with external resolve/reject controls.
func Defer[T any]() *Deferred[T] {
	return &Deferred[T]{p: newPromise[T]()}
}

// Promise returns the underlying promise.
func (d *Deferred[T]) Promise() *Promise[T] {
	return d.p
}

// Resolve settles the promise with val. Calls after the first settlement
// (resolve or reject) are no-ops.
func (d *Deferred[T]) Resolve(val T) {
	d.p.settle(val, nil)
}

// Reject settles the promise with err. Calls after the first settlement
// are no-ops. A nil err is replaced with a generic rejection error so the
// promise never settles successfully through Reject.
func (d *Deferred[T]) Reject(err error) {
	if err == nil {
		err = promiseErrors.New(ErrRejected)
	}
	var zero T
	d.p.settle(zero, err)
}
