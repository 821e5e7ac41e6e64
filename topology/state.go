/*
 *	Copyright 2024 TopoNet Authors
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package topology

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"

	"github.com/toponet/toponet/types/tensor"
)

// Registry tags for the stateful primitives.
const (
	ReadValueTag = "read_value"
	AssignTag    = "assign"
)

// VariableId names a persistent value read and written across graph
// invocations by a paired ReadValue/Assign.
type VariableId string

// ReadValue produces the current value of a state variable. It is a source
// node; Function pairs it with the Assign writing the same variable.
type ReadValue struct {
	Base

	// Variable read by this primitive.
	Variable VariableId

	// Layout is the declared extent of the variable's value. Must agree
	// with the paired Assign.
	Layout tensor.Tensor
}

// NewReadValue reads the state variable with the declared extent and
// element type.
func NewReadValue(id PrimitiveId, variable VariableId, layout tensor.Tensor, dtype dtypes.DType) *ReadValue {
	rv := &ReadValue{Base: NewBase(id), Variable: variable, Layout: layout}
	rv.OutputType = dtype
	return rv
}

// TypeTag implements Primitive.
func (rv *ReadValue) TypeTag() string { return ReadValueTag }

// Validate implements Primitive.
func (rv *ReadValue) Validate() error {
	if rv.Variable == "" {
		return errors.Wrapf(ErrInvalidConfiguration, "read_value %q: variable id is required", rv.ID)
	}
	if len(rv.InputIDs) > 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "read_value %q: source primitives take no inputs", rv.ID)
	}
	if rv.OutputType == dtypes.InvalidDType {
		return errors.Wrapf(ErrInvalidConfiguration, "read_value %q: element type is required", rv.ID)
	}
	return nil
}

// Assign stores its single input into a state variable at the end of an
// invocation. It has no consumers: Function lists assigns among its sinks.
type Assign struct {
	Base

	// Variable written by this primitive.
	Variable VariableId

	// Layout is the declared extent of the stored value. Must agree with
	// the paired ReadValue.
	Layout tensor.Tensor
}

// NewAssign stores input into the state variable with the declared extent
// and element type.
func NewAssign(id, input PrimitiveId, variable VariableId, layout tensor.Tensor, dtype dtypes.DType) *Assign {
	a := &Assign{Base: NewBase(id, input), Variable: variable, Layout: layout}
	a.OutputType = dtype
	return a
}

// TypeTag implements Primitive.
func (a *Assign) TypeTag() string { return AssignTag }

// Validate implements Primitive.
func (a *Assign) Validate() error {
	if a.Variable == "" {
		return errors.Wrapf(ErrInvalidConfiguration, "assign %q: variable id is required", a.ID)
	}
	if len(a.InputIDs) != 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "assign %q: exactly one input required, got %d", a.ID, len(a.InputIDs))
	}
	if a.OutputType == dtypes.InvalidDType {
		return errors.Wrapf(ErrInvalidConfiguration, "assign %q: element type is required", a.ID)
	}
	return nil
}
