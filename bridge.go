// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "context"

// Bridge between native asynchronous primitives and effect completion.
// A bridge effect delegates its performance to an already-running
// primitive; awaiting it is the only point where a running computation's
// logical thread of control may block.

// Task is a one-shot future over a native asynchronous primitive.
// The zero Task is not usable; create one with [Go] or [Settled].
type Task[R any] struct {
	done   chan struct{}
	result R
	err    error
}

// Go starts fn in its own goroutine and returns the running task.
// The primitive is running from this point on, independent of whether
// any computation ever awaits it.
func Go[R any](fn func() (R, error)) *Task[R] {
	t := &Task[R]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.result, t.err = fn()
	}()
	return t
}

// Settled returns a task that already finished with the given outcome.
func Settled[R any](v R, err error) *Task[R] {
	t := &Task[R]{done: make(chan struct{}), result: v, err: err}
	close(t.done)
	return t
}

// Await blocks until the task finishes or ctx is done.
// Cancellation does not stop the primitive itself; ctx.Err() simply
// becomes the awaited outcome for this caller.
func (t *Task[R]) Await(ctx context.Context) (R, error) {
	select {
	case <-t.done:
		return t.result, t.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// Awaitable is the dispatch interface for bridge-style effects.
// The executor routes any effect satisfying Awaitable through
// [Handler.HandleAsync]; everything else goes through HandleSync.
type Awaitable interface {
	Effect
	// Await drives the wrapped primitive to completion or failure and
	// moves a successful outcome into the effect's own completion state.
	// A primitive failure is returned to the dispatcher, which records
	// it as the effect's failure after single-cause translation.
	Await(ctx context.Context) error
}

// KindBridge is the kind name of [BridgeEffect].
const KindBridge = "bridge"

// BridgeEffect wraps an already-running [Task].
// The task's eventual value or failure becomes the effect's own outcome.
type BridgeEffect[R any] struct {
	Op[R]
	task *Task[R]
}

// Bridge creates a bridge effect around a running task.
func Bridge[R any](t *Task[R]) *BridgeEffect[R] {
	return &BridgeEffect[R]{Op: NewOpAt[R](KindBridge, Here(1)), task: t}
}

// Await implements [Awaitable].
func (e *BridgeEffect[R]) Await(ctx context.Context) error {
	v, err := e.task.Await(ctx)
	if err != nil {
		return err
	}
	e.SetResult(v)
	return nil
}
