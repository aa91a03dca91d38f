// Package promisex provides promise-style asynchronous task orchestration:
// settle-once futures with externally controlled outcomes, wait-for-all
// aggregation that never abandons in-flight work, ordered pipelines with
// selective barriers, deadline wrapping, and call debouncing.
//
// # Promises
//
// A [Promise] represents a value that will be computed asynchronously and
// settles exactly once. Use [Run] to start work immediately in a goroutine
// and [Promise.Await] to block until the result is ready. Await caches the
// outcome and is safe to call any number of times from any goroutine.
//
//	p := promisex.Run(func() (*Course, error) {
//	    return site.FetchCourse(id)
//	})
//
//	// ... do other work ...
//
//	course, err := p.Await()
//
// [Resolved] and [Rejected] build already-settled promises, and
// [Promise.Done] exposes a channel for select-based composition.
//
// # Deferred Promises
//
// [Defer] decouples promise creation from the code that decides its outcome,
// which is what callback-style APIs need. Only the first call to
// [Deferred.Resolve] or [Deferred.Reject] has effect; later calls are no-ops
// and the promise still settles exactly once.
//
//	d := promisex.Defer[string]()
//	scanner.OnResult(func(text string) { d.Resolve(text) })
//	scanner.OnCancel(func() { d.Reject(errScanCancelled) })
//	text, err := d.Promise().Await()
//
// # Aggregation
//
// [All] waits for every promise to settle and then reports the first error
// in input order. It deliberately does not fail fast: a failure in one
// promise never cuts short the others, so partial work always runs to
// completion and the caller still learns about the failure.
//
// [AllIgnoringErrors] has the same waiting behavior but always succeeds,
// and [IgnoreErrors] absorbs a single promise's failure, substituting an
// optional fallback value.
//
//	err := promisex.All(p1, p2, p3)         // first error, after all settle
//	v := promisex.IgnoreErrors(p, cached)   // best-effort with fallback
//
// [Fails] and [Works] turn a promise's eventual outcome into a plain bool
// without propagating the failure.
//
// # Ordered Pipelines
//
// [ExecuteOrdered] runs a list of [OrderedTask] as a pipeline with selective
// checkpoints. Blocking tasks form a serial chain, each waiting for the
// previous blocking task to settle before starting; non-blocking tasks fire
// as soon as they are reached. The call returns only after every task has
// settled, reporting the first task error in input order. A panicking task
// is logged and absorbed so the rest of the schedule still runs.
//
//	err := promisex.ExecuteOrdered([]promisex.OrderedTask{
//	    {Run: migrateSchema, Blocking: true},
//	    {Run: warmCache},
//	    {Run: loadPlugins, Blocking: true},
//	})
//
// # Timeouts
//
// [WithTimeout] bounds the wait on a promise. The promise's own outcome,
// success or failure, is returned unchanged when it settles in time; when
// the deadline elapses first the caller gets a timeout error recognizable
// with [IsTimeout] and the promise's later settlement is discarded. Exactly
// one outcome is observed either way, and the timer never leaks.
//
//	v, err := promisex.WithTimeout(p, 2*time.Second)
//	if promisex.IsTimeout(err) { ... }
//
// Note that a timeout only stops listening; it cannot abort the underlying
// work, which keeps running to settlement in its goroutine.
//
// # Debounce
//
// [Debounce] coalesces rapid repeated calls into a single delayed call
// carrying the latest argument. [Debounced] is the argument-less variant.
//
//	search := promisex.Debounce(300*time.Millisecond, func(q string) {
//	    results.Refresh(q)
//	})
package promisex
