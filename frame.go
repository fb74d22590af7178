// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import (
	"reflect"
	"sync"
)

// Frame snapshots supply named live values at a suspension point, used
// only for diagnostics. Two resolution paths exist: an explicit
// [StateProvider] mapping passed at the suspension call site (the
// portable path), and structural reflection over a frame struct with a
// memoized per-type shape.

// FrameRef is an opaque reference to a suspension's lexical frame.
// A nil FrameRef resolves to no values.
type FrameRef = any

// Binding is one named captured value. Bindings preserve the order in
// which they were read from the frame.
type Binding struct {
	Name  string
	Value any
}

// StateProvider supplies frame values explicitly, bypassing reflection.
type StateProvider interface {
	FrameState() (params, locals []Binding)
}

// StaticFrame is a ready-made [StateProvider] for call sites that pass
// an explicit name→value mapping.
type StaticFrame struct {
	Params []Binding
	Locals []Binding
}

// FrameState implements [StateProvider].
func (f StaticFrame) FrameState() (params, locals []Binding) {
	return f.Params, f.Locals
}

// fieldBinding is one resolvable field of a memoized frame shape.
type fieldBinding struct {
	name  string
	index []int
	param bool
}

// frameShapes memoizes the (name, accessor) list per distinct frame type.
// Population is idempotent and race-tolerant: concurrent runs that lose
// an insert race recompute the same shape, which is harmless.
var frameShapes sync.Map // reflect.Type -> []fieldBinding

func shapeOf(t reflect.Type) []fieldBinding {
	if cached, ok := frameShapes.Load(t); ok {
		return cached.([]fieldBinding)
	}
	shape := make([]fieldBinding, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("eff")
		if tag == "-" {
			continue
		}
		shape = append(shape, fieldBinding{
			name:  f.Name,
			index: f.Index,
			param: tag == "param",
		})
	}
	actual, _ := frameShapes.LoadOrStore(t, shape)
	return actual.([]fieldBinding)
}

// Snapshot resolves the live parameter and local values of a frame.
//
// A [StateProvider] frame supplies its values directly. A struct frame
// (or pointer to one) is read by reflection: fields tagged `eff:"param"`
// are parameters, remaining exported fields are locals, and fields
// tagged `eff:"-"` are skipped. Anything else resolves to nothing.
func Snapshot(frame FrameRef) (params, locals []Binding) {
	switch f := frame.(type) {
	case nil:
		return nil, nil
	case StateProvider:
		return f.FrameState()
	}
	v := reflect.ValueOf(frame)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil
	}
	for _, fb := range shapeOf(v.Type()) {
		b := Binding{Name: fb.name, Value: v.FieldByIndex(fb.index).Interface()}
		if fb.param {
			params = append(params, b)
		} else {
			locals = append(locals, b)
		}
	}
	return params, locals
}
