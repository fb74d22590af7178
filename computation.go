// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Computation is the inert representation of an effectful program.
// Computation[T] describes a program that, when driven by [Run],
// produces a value of type T or fails with an error.
//
// Computation is a closed tagged union with exactly one active variant:
// [Result], [Failure], [Deferred], or [Suspended]. All evaluation
// semantics live in the executor; the variants carry data only.
//
// A computation tree is owned by the call that runs it and must not be
// shared across concurrent runs.
type Computation[T any] interface {
	computation()
}

// Result is the terminal success variant.
type Result[T any] struct {
	Value T
}

func (Result[T]) computation() {}

// Failure is the terminal error variant.
// The error is propagated with its original identity and never rewrapped.
type Failure[T any] struct {
	Err error
}

func (Failure[T]) computation() {}

// Deferred is a not-yet-evaluated continuation.
// Invoking Thunk yields the next computation. Recursive and looping
// effectful logic goes through Deferred so the executor trampolines it
// in constant stack space.
type Deferred[T any] struct {
	// Thunk produces the next computation when the executor reaches this node.
	Thunk func() Computation[T]
}

func (*Deferred[T]) computation() {}

// Suspended pauses execution at an effect.
// The executor hands Effect to the handler, then resumes via Cont.
// Cont takes no argument: the effect's own completion state carries
// the outcome, and the continuation inspects it to decide its next step.
type Suspended[T any] struct {
	// Effect is the pending operation, owned by exactly this node.
	Effect Effect

	// Cont produces the computation that follows the effect.
	Cont func() Computation[T]

	// Frame references the suspension's lexical frame for diagnostics.
	// May be nil when no frame capture is wanted.
	Frame FrameRef
}

func (*Suspended[T]) computation() {}

// Pure lifts a value into a completed computation.
func Pure[T any](v T) Computation[T] {
	return Result[T]{Value: v}
}

// Fail lifts an error into a failed computation.
func Fail[T any](err error) Computation[T] {
	return Failure[T]{Err: err}
}

// Defer wraps a thunk producing the next computation.
func Defer[T any](thunk func() Computation[T]) Computation[T] {
	return &Deferred[T]{Thunk: thunk}
}

// Suspend pauses at an effect with an explicit continuation and frame.
// This is the primitive constructor; [Perform] is the usual way to build
// suspensions with typed result flow.
func Suspend[T any](e Effect, cont func() Computation[T], frame FrameRef) Computation[T] {
	return &Suspended[T]{Effect: e, Cont: cont, Frame: frame}
}
