package sdk

import (
	"context"
	"sync"
)

// Phase describes where a Resource is in its lifecycle. A resource starts
// Pending and settles exactly once, to Ready or Failed.
type Phase int

const (
	// Pending means the fetch has not settled yet.
	Pending Phase = iota
	// Failed means the fetch returned an error.
	Failed
	// Ready means the fetch produced a value.
	Ready
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Failed:
		return "failed"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Resource tracks a single asynchronous fetch as it moves from Pending to
// Ready or Failed. One Resource is one invocation: refreshing a view means
// creating a new Resource, never reusing a settled one. It is safe for
// concurrent use.
type Resource[T any] struct {
	mu     sync.Mutex
	phase  Phase
	data   T
	err    error
	closed bool
	done   chan struct{}
}

// Fetch starts fn in its own goroutine and returns the Pending resource
// tracking it. Exactly one fetch is in flight per resource; the error from
// fn becomes the Failed state, its value the Ready state.
func Fetch[T any](ctx context.Context, fn func(context.Context) (T, error)) *Resource[T] {
	r := &Resource[T]{done: make(chan struct{})}
	go func() {
		value, err := fn(ctx)
		r.settle(value, err)
	}()
	return r
}

func (r *Resource[T]) settle(value T, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.phase != Pending {
		// The view was torn down, or a settle already happened: the late
		// result must not touch the resource.
		return
	}
	if err != nil {
		r.phase = Failed
		r.err = err
	} else {
		r.phase = Ready
		r.data = value
	}
	close(r.done)
}

// Close tears the invocation down. A fetch that settles afterwards is
// discarded; the underlying call is not aborted, only its effect suppressed.
// Close is idempotent.
func (r *Resource[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	if r.phase == Pending {
		close(r.done)
	}
}

// Wait blocks until the resource settles or is closed, or until ctx is done.
func (r *Resource[T]) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Phase returns the current phase.
func (r *Resource[T]) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// Err returns the failure, or nil unless the resource is Failed.
func (r *Resource[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Render dispatches to exactly one callback for the current phase. Nil
// callbacks are skipped. The ready callback receives the fetched value
// verbatim and no prior state.
func (r *Resource[T]) Render(pending func(), failed func(error), ready func(T)) {
	r.mu.Lock()
	phase, err, data := r.phase, r.err, r.data
	r.mu.Unlock()

	switch phase {
	case Failed:
		if failed != nil {
			failed(err)
		}
	case Ready:
		if ready != nil {
			ready(data)
		}
	default:
		if pending != nil {
			pending()
		}
	}
}
