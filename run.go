// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "context"

// Run drives a computation to completion under the given handler.
// It returns the computation's value, or the failure that terminated it
// with its original identity. A nil computation or handler fails with
// [ErrInvalidArgument] before any evaluation.
func Run[T any](ctx context.Context, c Computation[T], h Handler) (T, error) {
	if c == nil || h == nil {
		var zero T
		return zero, ErrInvalidArgument
	}
	return execute[T](ctx, c, h)
}

// RunPure drives a computation that must not suspend.
// Reaching a [Suspended] node fails with [ProtocolViolationError]
// naming the effect's kind, since no handler is available to complete it.
func RunPure[T any](c Computation[T]) (T, error) {
	if c == nil {
		var zero T
		return zero, ErrInvalidArgument
	}
	return execute[T](context.Background(), c, pureHandler{})
}

// pureHandler completes nothing; any suspension under it surfaces as a
// protocol violation in the executor's completion check.
type pureHandler struct{}

func (pureHandler) HandleSync(Effect) error                      { return nil }
func (pureHandler) HandleAsync(context.Context, Awaitable) error { return nil }
func (pureHandler) Log(context.Context, Record)                  {}
func (pureHandler) Options() Options                             { return Options{} }
