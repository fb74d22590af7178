// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Diagnostic log records emitted by the executor. Records are write-once
// data with no further lifecycle: built, handed to [Handler.Log], done.

// Record is the marker interface for diagnostic records.
type Record interface {
	record()
}

// ExceptionLog reports a failed effect, or a terminal [Failure] that was
// not produced by an effect (in which case the call-site fields are zero).
type ExceptionLog struct {
	CallerMember string
	CallerFile   string
	CallerLine   int
	Exception    error
	Parameters   []Binding
	Locals       []Binding
}

func (ExceptionLog) record() {}

// ResultLog reports a successfully completed effect.
type ResultLog struct {
	CallerMember string
	CallerFile   string
	CallerLine   int
	Result       any
	Parameters   []Binding
	Locals       []Binding
}

func (ResultLog) record() {}
