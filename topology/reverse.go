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
	"github.com/pkg/errors"

	"github.com/toponet/toponet/types"
)

// ReverseTag identifies Reverse primitives.
const ReverseTag = "reverse"

// Reverse flips its single input along the given axes.
type Reverse struct {
	Base

	// Axes to reverse. At least one, no repeats.
	Axes []Axis
}

// NewReverse flips input along the given axes.
func NewReverse(id, input PrimitiveId, axes ...Axis) *Reverse {
	return &Reverse{Base: NewBase(id, input), Axes: axes}
}

// TypeTag implements Primitive.
func (r *Reverse) TypeTag() string { return ReverseTag }

// Validate implements Primitive.
func (r *Reverse) Validate() error {
	if len(r.InputIDs) != 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "reverse %q: exactly one input required, got %d", r.ID, len(r.InputIDs))
	}
	if len(r.Axes) == 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "reverse %q: at least one axis required", r.ID)
	}
	seen := types.MakeSet[Axis](len(r.Axes))
	for _, axis := range r.Axes {
		if axis < 0 || axis >= numAxes {
			return errors.Wrapf(ErrInvalidConfiguration, "reverse %q: axis %d outside the 4-D layout", r.ID, axis)
		}
		if seen.Has(axis) {
			return errors.Wrapf(ErrInvalidConfiguration, "reverse %q: axis %d repeated", r.ID, axis)
		}
		seen.Insert(axis)
	}
	return nil
}
