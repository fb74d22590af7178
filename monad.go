// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Binding-layer combinators over [Computation].
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept for readability at call sites.
// All combinators rebuild nodes lazily so the executor's trampoline keeps
// constant stack space across arbitrarily deep chains.

// Bind sequences two computations (monadic bind).
// It runs m, then passes the result to f to get the next computation.
// A Failure in m short-circuits f entirely.
func Bind[A, B any](m Computation[A], f func(A) Computation[B]) Computation[B] {
	switch c := m.(type) {
	case Result[A]:
		return &Deferred[B]{Thunk: func() Computation[B] { return f(c.Value) }}
	case Failure[A]:
		return Failure[B]{Err: c.Err}
	case *Deferred[A]:
		return &Deferred[B]{Thunk: func() Computation[B] { return Bind(c.Thunk(), f) }}
	case *Suspended[A]:
		return &Suspended[B]{
			Effect: c.Effect,
			Frame:  c.Frame,
			Cont:   func() Computation[B] { return Bind(c.Cont(), f) },
		}
	default:
		return Failure[B]{Err: &UnsupportedComputationError{Variant: variantName(m)}}
	}
}

// Map applies a pure function to the result of a computation.
func Map[A, B any](m Computation[A], f func(A) B) Computation[B] {
	return Bind(m, func(a A) Computation[B] { return Pure(f(a)) })
}

// Then sequences two computations, discarding the first result.
func Then[A, B any](m Computation[A], n Computation[B]) Computation[B] {
	return Bind(m, func(A) Computation[B] { return n })
}

// Perform suspends on an effect and feeds its typed outcome to k.
// The continuation follows the standard contract: a failed effect
// propagates as a [Failure] node with the original error, a completed
// effect hands its value to k.
//
// Example:
//
//	comp := eff.Perform(eff.ClockNow(), nil, func(t time.Time) eff.Computation[string] {
//	    return eff.Pure(t.Format(time.RFC3339))
//	})
func Perform[R, T any](e Typed[R], frame FrameRef, k func(R) Computation[T]) Computation[T] {
	return &Suspended[T]{
		Effect: e,
		Frame:  frame,
		Cont: func() Computation[T] {
			if e.HasException() {
				return Failure[T]{Err: e.Exception()}
			}
			return k(e.Result())
		},
	}
}
