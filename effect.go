// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "runtime"

// opStatus is the tri-state completion of an effect.
// Transitions are single-consuming: Pending → Completed or Pending → Failed,
// at most once. A double transition is a programming error and panics,
// in the same way an affine continuation panics on a second resume.
type opStatus uint8

const (
	statusPending opStatus = iota
	statusCompleted
	statusFailed
)

// CallSite identifies where an effect was constructed.
// It is fixed at construction and used only for diagnostics.
type CallSite struct {
	Member string
	File   string
	Line   int
}

// Here returns the call site skip stack frames above the caller.
// Here(0) is the caller of Here itself. Effect constructors that wrap
// [NewOpAt] pass their own depth so the recorded site is the user's line.
func Here(skip int) CallSite {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{}
	}
	site := CallSite{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Member = fn.Name()
	}
	return site
}

// Effect is the executor's view of one suspend-worthy operation:
// a mutable completion cell plus fixed metadata.
//
// Concrete effect kinds embed [Op] and add whatever input data their
// handler needs. The unexported method keeps the union closed over
// Op-backed cells; dispatch remains open because handlers switch on the
// concrete kind (or on structural interfaces such as [Awaitable]).
type Effect interface {
	// Kind names the concrete effect variant for dispatch and diagnostics.
	Kind() string

	// CallSite reports where the effect was constructed.
	CallSite() CallSite

	// CaptureState reports whether the executor must snapshot the
	// enclosing frame regardless of handler logging flags.
	CaptureState() bool

	// Completed reports whether the effect has left the Pending state.
	Completed() bool

	// HasResult reports whether the effect completed successfully.
	HasResult() bool

	// HasException reports whether the effect failed.
	HasException() bool

	// Exception returns the failure. Valid only after the effect failed;
	// calling it earlier is a usage error and panics.
	Exception() error

	// SetException moves the effect from Pending to Failed.
	SetException(err error)

	// SetState attaches a frame snapshot. Callable only while Pending.
	SetState(params, locals []Binding)

	// State returns whatever snapshot was attached via SetState.
	State() (params, locals []Binding)

	resultValue() any
}

// Op is the embeddable completion cell carried by every effect kind.
// Op[R] stores the typed result alongside the shared metadata.
//
// An Op is owned by exactly one [Suspended] node and never shared across
// runs, so its fields need no synchronization: completion always happens
// on the executing computation's logical thread.
type Op[R any] struct {
	kind    string
	site    CallSite
	capture bool
	status  opStatus
	result  R
	err     error
	params  []Binding
	locals  []Binding
}

// NewOp creates a completion cell of the given kind.
// The call site is fixed to the caller's location.
func NewOp[R any](kind string) Op[R] {
	return Op[R]{kind: kind, site: Here(1)}
}

// NewOpAt creates a completion cell with an explicit call site.
// Effect constructors use it together with [Here] to attribute the
// effect to their own caller.
func NewOpAt[R any](kind string, site CallSite) Op[R] {
	return Op[R]{kind: kind, site: site}
}

// NewCapturingOp creates a completion cell whose frame state is always
// captured by the executor, independent of handler flags.
func NewCapturingOp[R any](kind string) Op[R] {
	return Op[R]{kind: kind, site: Here(1), capture: true}
}

// Kind returns the effect's kind name.
func (o *Op[R]) Kind() string { return o.kind }

// CallSite returns the construction site.
func (o *Op[R]) CallSite() CallSite { return o.site }

// CaptureState reports whether frame capture is forced for this effect.
func (o *Op[R]) CaptureState() bool { return o.capture }

// EnableStateCapture forces frame capture for this effect.
func (o *Op[R]) EnableStateCapture() { o.capture = true }

// Completed reports whether the effect has left the Pending state.
func (o *Op[R]) Completed() bool { return o.status != statusPending }

// HasResult reports whether the effect completed successfully.
func (o *Op[R]) HasResult() bool { return o.status == statusCompleted }

// HasException reports whether the effect failed.
func (o *Op[R]) HasException() bool { return o.status == statusFailed }

// SetResult moves the effect from Pending to Completed with the given value.
// Panics if the effect already completed or failed.
func (o *Op[R]) SetResult(v R) {
	if o.status != statusPending {
		panic("eff: effect " + o.kind + " completed twice")
	}
	o.result = v
	o.status = statusCompleted
}

// SetException moves the effect from Pending to Failed with the given error.
// Panics if the effect already completed or failed.
func (o *Op[R]) SetException(err error) {
	if o.status != statusPending {
		panic("eff: effect " + o.kind + " completed twice")
	}
	o.err = err
	o.status = statusFailed
}

// Result returns the completed value.
// Panics if the effect has not completed successfully.
func (o *Op[R]) Result() R {
	if o.status != statusCompleted {
		panic("eff: result of effect " + o.kind + " read before completion")
	}
	return o.result
}

// Exception returns the failure.
// Panics if the effect has not failed.
func (o *Op[R]) Exception() error {
	if o.status != statusFailed {
		panic("eff: exception of effect " + o.kind + " read before failure")
	}
	return o.err
}

// SetState attaches a frame snapshot to the effect.
// Panics after completion; the executor attaches state strictly before dispatch.
func (o *Op[R]) SetState(params, locals []Binding) {
	if o.status != statusPending {
		panic("eff: state attached to completed effect " + o.kind)
	}
	o.params, o.locals = params, locals
}

// State returns the attached frame snapshot, if any.
func (o *Op[R]) State() (params, locals []Binding) { return o.params, o.locals }

func (o *Op[R]) resultValue() any { return o.Result() }

// Typed is the result-typed view of an effect. Every kind embedding
// Op[R] satisfies Typed[R]; [Perform] uses it to feed the completed
// value into a continuation without type erasure.
type Typed[R any] interface {
	Effect
	Result() R
}
