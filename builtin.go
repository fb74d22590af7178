// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "time"

// Built-in synchronous effect kinds.
// Further kinds are defined by embedding [Op]; nothing in the executor
// needs to change for them.

// KindClock is the kind name of [ClockEffect].
const KindClock = "clock.now"

// ClockEffect reads the current time.
// Handled synchronously; [SlogHandler] completes it from its clock,
// which tests may fix via [SlogHandler.WithClock].
type ClockEffect struct {
	Op[time.Time]
}

// ClockNow creates a clock-read effect attributed to the caller's line.
func ClockNow() *ClockEffect {
	return &ClockEffect{Op: NewOpAt[time.Time](KindClock, Here(1))}
}

// FuncEffect wraps a caller-supplied synchronous operation.
// The Invoke method lets handlers run the operation without knowing the
// result type: dispatch goes through a structural assertion on
// interface{ Invoke() error }, the same way composed handlers assert
// per-family dispatch methods.
type FuncEffect[R any] struct {
	Op[R]
	fn func() (R, error)
}

// Func creates a synchronous effect of the given kind around fn.
func Func[R any](kind string, fn func() (R, error)) *FuncEffect[R] {
	return &FuncEffect[R]{Op: NewOpAt[R](kind, Here(1)), fn: fn}
}

// Invoke runs the wrapped operation and completes the effect.
// An operation error is returned to the dispatcher instead of being
// recorded here, so the executor applies its single-cause translation
// uniformly.
func (e *FuncEffect[R]) Invoke() error {
	v, err := e.fn()
	if err != nil {
		return err
	}
	e.SetResult(v)
	return nil
}
