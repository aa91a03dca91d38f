package promisex

import (
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/Danimarqz/moodleapp/pkg/logx"
)

// OrderedTask is one step of an ordered pipeline. Blocking steps act as
// barriers: the next blocking step starts only once this one has fully
// settled. Non-blocking steps fire as soon as they are reached and never
// hold anything back.
type OrderedTask struct {
	Run      func() error
	Blocking bool
}

type orderedOptions struct {
	logger *logx.Logger
	runID  string
}

// OrderedOption configures a single ExecuteOrdered run.
type OrderedOption func(*orderedOptions)

// WithLogger sets the logger used for diagnostics of absorbed task panics.
func WithLogger(logger *logx.Logger) OrderedOption {
	return func(o *orderedOptions) {
		o.logger = logger
	}
}

// WithRunID overrides the generated run id used to correlate log lines of
// one pipeline run.
func WithRunID(id string) OrderedOption {
	return func(o *orderedOptions) {
		o.runID = id
	}
}

// ExecuteOrdered runs the tasks as a pipeline with selective checkpoints.
// Blocking tasks execute serially among themselves, each waiting for the
// previous blocking task to settle (success or failure) before starting.
// Non-blocking tasks start immediately when reached, regardless of the
// flags around them.
//
// ExecuteOrdered returns only after every task has settled, with the first
// task error in input order, following the same wait-for-all rule as All.
// A panicking task is recovered, logged with the run id, and counts as
// settled without contributing to the returned error, so one broken step
// never aborts the remaining schedule. An empty task list returns nil.
func ExecuteOrdered(tasks []OrderedTask, opts ...OrderedOption) error {
	if len(tasks) == 0 {
		return nil
	}

	o := &orderedOptions{
		logger: logx.GetDefaultLogger(),
		runID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(o)
	}

	started := make([]*Promise[struct{}], len(tasks))
	barrier := Resolved(struct{}{}) // settlement of the latest blocking task

	for i, task := range tasks {
		i, task := i, task
		if task.Blocking {
			prev := barrier
			p := Run(func() (struct{}, error) {
				_, _ = prev.Await()
				return runOrderedTask(i, task, o)
			})
			barrier = p
			started[i] = p
		} else {
			started[i] = Run(func() (struct{}, error) {
				return runOrderedTask(i, task, o)
			})
		}
	}

	return All(started...)
}

func runOrderedTask(index int, task OrderedTask, o *orderedOptions) (_ struct{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.WithField("run_id", o.runID).
				WithField("task_index", index).
				WithField("stack", string(debug.Stack())).
				WithError(fmt.Errorf("panic: %v", r)).
				Error("ordered task panicked")
			// The panic is absorbed so the pipeline keeps its schedule.
			err = nil
		}
	}()

	if task.Run == nil {
		return struct{}{}, nil
	}
	err = task.Run()
	return
}
