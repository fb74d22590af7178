// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"code.hybscloud.com/eff"
)

func TestSingleCausePlainError(t *testing.T) {
	boom := errors.New("boom")
	if got := eff.SingleCause(boom); got != boom {
		t.Errorf("SingleCause(plain) = %v, want identity", got)
	}
}

func TestSingleCauseNil(t *testing.T) {
	if got := eff.SingleCause(nil); got != nil {
		t.Errorf("SingleCause(nil) = %v, want nil", got)
	}
}

func TestSingleCauseJoined(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	if got := eff.SingleCause(errors.Join(first, second)); got != first {
		t.Errorf("SingleCause(joined) = %v, want %v", got, first)
	}
}

func TestSingleCauseMultierr(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	if got := eff.SingleCause(multierr.Append(first, second)); got != first {
		t.Errorf("SingleCause(multierr) = %v, want %v", got, first)
	}
}

func TestSingleCauseNestedComposite(t *testing.T) {
	inner := errors.New("inner")
	nested := errors.Join(errors.Join(inner, errors.New("a")), errors.New("b"))
	if got := eff.SingleCause(nested); got != inner {
		t.Errorf("SingleCause(nested) = %v, want %v", got, inner)
	}
}

func TestSingleCauseWrappedSingle(t *testing.T) {
	// fmt-wrapped errors expose Unwrap() error, not Unwrap() []error,
	// and must pass through untouched.
	base := errors.New("base")
	wrapped := errors.Join(base)
	if got := eff.SingleCause(wrapped); got != base {
		t.Errorf("SingleCause(join of one) = %v, want %v", got, base)
	}
}

func TestProtocolViolationErrorMessage(t *testing.T) {
	err := &eff.ProtocolViolationError{Kind: "test.ask"}
	if !strings.Contains(err.Error(), "test.ask") {
		t.Errorf("message %q does not name the kind", err.Error())
	}
}

func TestUnsupportedComputationErrorMessage(t *testing.T) {
	err := &eff.UnsupportedComputationError{Variant: "*eff.bogus[int]"}
	if !strings.Contains(err.Error(), "*eff.bogus[int]") {
		t.Errorf("message %q does not name the variant", err.Error())
	}
}

func TestErrInvalidArgumentIsSentinel(t *testing.T) {
	_, err := eff.RunPure[int](nil)
	if !errors.Is(err, eff.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}
