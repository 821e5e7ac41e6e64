// Package tensor defines the fixed-rank integer vectors used as opaque
// configuration values by the topology package: pooling window sizes,
// strides, offsets and paddings.
//
// A Tensor here carries no element data and has no identity -- it is a pure
// value describing extents over the canonical 4-D (batch, feature, y, x)
// layout. Shape inference and any arithmetic over these values belong to
// downstream collaborators.
package tensor

import "fmt"

// Tensor is a 4-D extent over the (batch, feature, y, x) layout.
// Pure value semantics: compare with ==, copy freely.
type Tensor struct {
	Batch, Feature, Y, X int32
}

// New returns a Tensor with the given per-axis extents.
func New(batch, feature, y, x int32) Tensor {
	return Tensor{Batch: batch, Feature: feature, Y: y, X: x}
}

// Zero is the all-zeros extent.
var Zero = Tensor{}

// Ones is the all-ones extent, the default stride.
var Ones = Tensor{Batch: 1, Feature: 1, Y: 1, X: 1}

// Spatial returns the spatial (y, x) components of the extent.
func (t Tensor) Spatial() (y, x int32) {
	return t.Y, t.X
}

// IsZero reports whether every axis extent is zero.
func (t Tensor) IsZero() bool {
	return t == Zero
}

// String implements fmt.Stringer.
func (t Tensor) String() string {
	return fmt.Sprintf("[b=%d f=%d y=%d x=%d]", t.Batch, t.Feature, t.Y, t.X)
}

// Padding describes the padding around a primitive's output buffer as
// lower and upper per-axis sizes. Like Tensor it is a pure value type.
type Padding struct {
	Lower, Upper Tensor
}

// NewPadding returns a Padding with the given lower and upper sizes.
func NewPadding(lower, upper Tensor) Padding {
	return Padding{Lower: lower, Upper: upper}
}

// IsZero reports whether the padding is empty on every axis.
func (p Padding) IsZero() bool {
	return p.Lower.IsZero() && p.Upper.IsZero()
}

// String implements fmt.Stringer.
func (p Padding) String() string {
	return fmt.Sprintf("padding{lower=%s, upper=%s}", p.Lower, p.Upper)
}
