// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eff provides an algebraic-effect interpreter in Go.
//
// Effectful programs are represented as inert data — a [Computation]
// tree — rather than executed immediately. A pluggable [Handler] decides
// how each atomic [Effect] is actually performed, optionally capturing
// diagnostic context (call site, live parameter and local values) and
// emitting structured log records. The core is the trampolined executor
// [Run], which drives a computation to completion while coordinating
// effect dispatch, diagnostic capture, logging, and error translation.
//
// # Data Model
//
// [Computation] is a closed tagged union with exactly one active variant:
//
//   - [Result]: terminal success
//   - [Failure]: terminal error, propagated with original identity
//   - [Deferred]: a not-yet-evaluated continuation, trampolined in
//     constant stack space
//   - [Suspended]: execution pauses, the effect goes to the handler,
//     then resumes via the node's continuation
//
// Constructors: [Pure], [Fail], [Defer], [Suspend].
//
// # Effects
//
// An [Effect] is a mutable completion cell plus fixed metadata. The
// completion state is tri-state — Pending, then Completed or Failed —
// with a single consuming transition; completing an effect twice panics,
// as does reading an outcome before completion. Concrete kinds embed the
// generic cell [Op]:
//
//   - [Op]: embeddable completion cell with typed result
//   - [NewOp], [NewOpAt], [NewCapturingOp]: cell constructors
//   - [CallSite], [Here]: construction-site metadata
//   - [Typed]: result-typed view of an effect, consumed by [Perform]
//
// Built-in kinds:
//
//   - [ClockEffect] / [ClockNow]: synchronous clock read
//   - [FuncEffect] / [Func]: caller-supplied synchronous operation
//   - [BridgeEffect] / [Bridge]: wraps an already-running native
//     asynchronous primitive ([Task], created by [Go] or [Settled])
//
// # Handlers
//
// [Handler] is the strategy interface integrators supply:
//
//   - HandleSync: performs recognized synchronous kinds, leaving
//     unrecognized ones untouched for the executor to detect
//   - HandleAsync: awaits an [Awaitable] bridge — the only point where
//     a running computation's logical thread may block
//   - Log: diagnostics sink, invoked by the executor in program order
//   - Options: four independent logging flags
//
// [SlogHandler] is the built-in handler logging through log/slog;
// [HandleSyncFunc] adapts a dispatch function for tests and small
// integrations.
//
// # Frame Snapshots
//
// A [Suspended] node may reference its lexical frame. [Snapshot]
// resolves named parameter and local values from it, either through an
// explicit [StateProvider] mapping ([StaticFrame]) or by structural
// reflection over a frame struct, with the per-type shape memoized in a
// race-tolerant insert-once cache. The frame-shape cache is the only
// structure shared across concurrent runs.
//
// # Execution
//
// [Run] is the single entry point. The trampoline inspects the current
// node: terminal variants stop the loop, [Deferred] thunks are flattened
// iteratively, and [Suspended] nodes go through capture, dispatch,
// completion check, finalization logging, and continuation. Dispatch
// errors — including composite failures from awaited primitives, reduced
// by [SingleCause] — become the effect's Failed state rather than
// aborting the run; a handler that leaves an effect pending aborts with
// [ProtocolViolationError].
//
// Failure taxonomy: [ErrInvalidArgument], [ProtocolViolationError],
// [UnsupportedComputationError]; effect-level failures propagate with
// original identity.
//
// # Combinators
//
// The binding layer that turns sequential code into computations is
// host-owned; the combinators here are its explicit form:
//
//   - [Bind], [Map], [Then]: monadic sequencing over [Computation]
//   - [Perform]: suspend on an effect and feed its typed outcome onward
//
// # Example
//
//	comp := eff.Perform(eff.ClockNow(), nil, func(t time.Time) eff.Computation[string] {
//	    return eff.Pure(t.Format(time.RFC3339))
//	})
//
//	h := eff.NewSlogHandler(nil, eff.Options{LogResults: true})
//	stamp, err := eff.Run(context.Background(), comp, h)
package eff
