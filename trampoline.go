// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "context"

// execute is the trampoline: a strictly sequential loop over the current
// computation node. Deferred nodes are flattened iteratively, so deep
// recursive effectful code evaluates in constant stack space. Side
// effects — handler dispatch and logging — happen in exactly the order
// Suspended nodes appear during evaluation.
func execute[T any](ctx context.Context, current Computation[T], h Handler) (T, error) {
	var zero T
	opts := h.Options()
	// logged tracks the failure most recently emitted by suspension
	// finalization, so a terminal Failure carrying the same error does
	// not produce a second ExceptionLog.
	var logged error
	for {
		switch c := current.(type) {
		case Result[T]:
			return c.Value, nil
		case Failure[T]:
			if opts.LogExceptions && c.Err != logged {
				h.Log(ctx, ExceptionLog{Exception: c.Err})
			}
			return zero, c.Err
		case *Deferred[T]:
			if c.Thunk == nil {
				return zero, &UnsupportedComputationError{Variant: variantName(c) + " with nil thunk"}
			}
			next := c.Thunk()
			if next == nil {
				return zero, &UnsupportedComputationError{Variant: "nil"}
			}
			current = next
		case *Suspended[T]:
			next, err := perform(ctx, c, h, opts, &logged)
			if err != nil {
				return zero, err
			}
			current = next
		default:
			return zero, &UnsupportedComputationError{Variant: variantName(current)}
		}
	}
}

// perform handles one suspension end to end: capture decision, frame
// snapshot, pre-dispatch state attachment, dispatch, completion check,
// finalization logging, continuation.
func perform[T any](ctx context.Context, s *Suspended[T], h Handler, opts Options, logged *error) (Computation[T], error) {
	e := s.Effect
	if e == nil || s.Cont == nil {
		return nil, &UnsupportedComputationError{Variant: variantName(s) + " with nil effect or continuation"}
	}

	// Capture decision. Each side is resolved only when its own flag or
	// the effect's capture bit asks for it; a log produced under a single
	// flag carries only that side.
	needParams := e.CaptureState() || opts.LogParameters
	needLocals := e.CaptureState() || opts.LogLocals
	var params, locals []Binding
	if needParams || needLocals {
		params, locals = Snapshot(s.Frame)
		if !needParams {
			params = nil
		}
		if !needLocals {
			locals = nil
		}
	}
	// The full snapshot is attached before dispatch so a capture-aware
	// handler observes pre-effect state.
	if e.CaptureState() {
		e.SetState(params, locals)
	}

	// Dispatch. An error surfacing here — including a composite failure
	// from an awaited primitive — is captured as the effect's own failure
	// after single-cause translation, never rethrown past this point.
	var err error
	if a, ok := e.(Awaitable); ok {
		err = h.HandleAsync(ctx, a)
	} else {
		err = h.HandleSync(e)
	}
	if err != nil && !e.Completed() {
		e.SetException(SingleCause(err))
	}

	// Completion check: a still-pending effect is a fatal protocol
	// violation and aborts the run without touching effect state.
	if !e.Completed() {
		return nil, &ProtocolViolationError{Kind: e.Kind()}
	}

	// Guaranteed-run finalization: emitted whatever the dispatch outcome,
	// using the values captured above.
	site := e.CallSite()
	if opts.LogExceptions && e.HasException() {
		*logged = e.Exception()
		h.Log(ctx, ExceptionLog{
			CallerMember: site.Member,
			CallerFile:   site.File,
			CallerLine:   site.Line,
			Exception:    e.Exception(),
			Parameters:   params,
			Locals:       locals,
		})
	}
	if opts.LogResults && e.HasResult() {
		h.Log(ctx, ResultLog{
			CallerMember: site.Member,
			CallerFile:   site.File,
			CallerLine:   site.Line,
			Result:       e.resultValue(),
			Parameters:   params,
			Locals:       locals,
		})
	}

	next := s.Cont()
	if next == nil {
		return nil, &UnsupportedComputationError{Variant: "nil"}
	}
	return next, nil
}
