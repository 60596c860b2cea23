package loader

import (
	"context"

	"github.com/amos-org/amos/pkg/stl"
)

// Task is a single in-flight load
type Task struct {
	path   string
	cancel context.CancelFunc
	done   chan struct{}

	// written once before done is closed
	model *stl.Model
	err   error
}

// Path returns the requested resource path
func (t *Task) Path() string { return t.path }

// Done is closed once the load has finished
func (t *Task) Done() <-chan struct{} { return t.done }

// Cancel aborts the load. A cancelled task finishes with context.Canceled
// unless it had already completed.
func (t *Task) Cancel() { t.cancel() }

// Wait blocks until the task finishes or ctx is done
func (t *Task) Wait(ctx context.Context) (*stl.Model, error) {
	select {
	case <-t.done:
		return t.model, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Result returns the outcome without blocking; done is false while pending
func (t *Task) Result() (model *stl.Model, done bool, err error) {
	select {
	case <-t.done:
		return t.model, true, t.err
	default:
		return nil, false, nil
	}
}
