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

import "github.com/pkg/errors"

// ConcatenationTag identifies Concatenation primitives.
const ConcatenationTag = "concatenation"

// Axis indexes one of the four axes of the canonical (batch, feature, y, x)
// layout.
type Axis int

// Axes of the canonical layout.
const (
	AxisBatch Axis = iota
	AxisFeature
	AxisY
	AxisX

	numAxes
)

// Concatenation joins the outputs of two or more primitives along one
// axis. All inputs must agree on the remaining axes; that agreement is
// checked by shape inference, not here.
type Concatenation struct {
	Base

	// Axis along which the inputs are joined.
	Axis Axis
}

// NewConcatenation joins inputs along axis.
func NewConcatenation(id PrimitiveId, axis Axis, inputs ...PrimitiveId) *Concatenation {
	return &Concatenation{Base: NewBase(id, inputs...), Axis: axis}
}

// TypeTag implements Primitive.
func (c *Concatenation) TypeTag() string { return ConcatenationTag }

// Validate implements Primitive.
func (c *Concatenation) Validate() error {
	if len(c.InputIDs) == 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "concatenation %q: at least one input required", c.ID)
	}
	if c.Axis < 0 || c.Axis >= numAxes {
		return errors.Wrapf(ErrInvalidConfiguration, "concatenation %q: axis %d outside the 4-D layout", c.ID, c.Axis)
	}
	return nil
}
