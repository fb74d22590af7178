// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import (
	"errors"
	"fmt"
)

// Failure taxonomy of the executor.
//
// Protocol and variant violations abort the run and are never converted
// into effect state. Effect-level failures are first captured as data on
// the effect, optionally logged, then propagate through the continuation
// chain with their original identity.

// ErrInvalidArgument reports a malformed [Run] call: a nil computation
// or handler. Checked before any evaluation.
var ErrInvalidArgument = errors.New("eff: nil computation or handler")

// ProtocolViolationError reports a handler that returned from dispatch
// without completing the effect. Always fatal, never retried.
type ProtocolViolationError struct {
	Kind string
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("eff: handler left effect %q pending", e.Kind)
}

// UnsupportedComputationError reports an unrecognized computation
// variant reaching the executor loop. Indicates a binding-layer bug.
type UnsupportedComputationError struct {
	Variant string
}

func (e *UnsupportedComputationError) Error() string {
	return fmt.Sprintf("eff: unsupported computation variant %s", e.Variant)
}

// SingleCause reduces a composite multi-cause failure to its first inner
// cause, repeatedly. Composites are anything exposing Unwrap() []error,
// which covers errors.Join and go.uber.org/multierr combiners. The
// executor applies SingleCause at the dispatch boundary so logs and
// callers always observe deterministic single-cause failures.
func SingleCause(err error) error {
	for err != nil {
		m, ok := err.(interface{ Unwrap() []error })
		if !ok {
			return err
		}
		causes := m.Unwrap()
		if len(causes) == 0 {
			return err
		}
		err = causes[0]
	}
	return err
}

// variantName names a computation variant for diagnostics.
func variantName(c any) string {
	if c == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", c)
}
