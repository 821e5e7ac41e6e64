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

// Registry tags for the primitives in this file.
const (
	InputLayoutTag = "input_layout"
	ReorderTag     = "reorder"
)

// InputLayout is a source primitive: it declares the extent and element
// type of a network input, to be bound to user data at execution time. It
// has no inputs of its own.
type InputLayout struct {
	Base

	// Layout is the declared extent of the bound input data.
	Layout tensor.Tensor
}

// NewInputLayout declares a network input with the given extent and
// element type.
func NewInputLayout(id PrimitiveId, layout tensor.Tensor, dtype dtypes.DType) *InputLayout {
	in := &InputLayout{Base: NewBase(id), Layout: layout}
	in.OutputType = dtype
	return in
}

// TypeTag implements Primitive.
func (in *InputLayout) TypeTag() string { return InputLayoutTag }

// Validate implements Primitive.
func (in *InputLayout) Validate() error {
	if len(in.InputIDs) > 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "input_layout %q: source primitives take no inputs", in.ID)
	}
	if in.OutputType == dtypes.InvalidDType {
		return errors.Wrapf(ErrInvalidConfiguration, "input_layout %q: element type is required", in.ID)
	}
	return nil
}

// Reorder converts its single input to a different element type and/or
// output padding, leaving values otherwise untouched.
type Reorder struct {
	Base
}

// NewReorder converts input to the given element type.
func NewReorder(id, input PrimitiveId, dtype dtypes.DType) *Reorder {
	r := &Reorder{Base: NewBase(id, input)}
	r.OutputType = dtype
	return r
}

// TypeTag implements Primitive.
func (r *Reorder) TypeTag() string { return ReorderTag }

// Validate implements Primitive.
func (r *Reorder) Validate() error {
	if len(r.InputIDs) != 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "reorder %q: exactly one input required, got %d", r.ID, len(r.InputIDs))
	}
	if r.OutputType == dtypes.InvalidDType {
		return errors.Wrapf(ErrInvalidConfiguration, "reorder %q: target element type is required", r.ID)
	}
	return nil
}
