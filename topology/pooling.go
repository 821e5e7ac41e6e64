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

	"github.com/toponet/toponet/types"
	"github.com/toponet/toponet/types/tensor"
)

// Mode selects the reduction applied by a Pooling primitive over each
// window.
type Mode int

//go:generate enumer -type=Mode -trimprefix=Mode -transform=snake -values -text -json pooling.go

const (
	// ModeMax takes the maximum element of the window.
	ModeMax Mode = iota

	// ModeAverage averages over the whole window, padding included.
	ModeAverage

	// ModeAverageNoPadding averages only over window elements that fall
	// inside the input.
	ModeAverageNoPadding

	// ModeMaxWithArgmax is max pooling that additionally stores, per
	// window, the flattened index of the maximum element into a separate
	// argmax buffer.
	ModeMaxWithArgmax

	// ModeBilinear pools with bilinear interpolation.
	ModeBilinear

	// ModeDeformableBilinear is deformable pooling with bilinear
	// interpolation.
	ModeDeformableBilinear
)

// PoolingTag identifies Pooling primitives in the registry and in
// serialized topologies.
const PoolingTag = "pooling"

// Pooling performs non-linear down-sampling of its input: the max, average,
// etc. of each window.
//
// Construct it through NewPooling; the builder covers the legal field
// combinations (global pooling, explicit window, argmax side output,
// requested output size). Illegal combinations are reported by
// Topology.Finalize, not at construction.
type Pooling struct {
	Base

	// Mode of reduction over each pooling window.
	Mode Mode

	// GlobalPooling makes the window span the whole spatial extent of the
	// input. Size, Stride and InputOffset are then fixed defaults; shape
	// inference derives the effective window from the input at inference
	// time.
	GlobalPooling bool

	// Size of the pooling window.
	Size tensor.Tensor

	// Stride is the shift in the input between adjacent window positions.
	Stride tensor.Tensor

	// InputOffset shifts the (0,0) position of the first window relative
	// to the start of the input buffer.
	InputOffset tensor.Tensor

	// PadEnd is an extra shift relative to the end of the padding shape.
	PadEnd tensor.Tensor

	// Argmax references the primitive that receives the per-window indices
	// of the maximum element. Required for (and only legal with)
	// ModeMaxWithArgmax. Indices are written in flattened layout; the
	// argmax node is a graph predecessor, not a data input.
	Argmax PrimitiveId

	// WithOutputSize marks that OutputSize was requested. Shape inference
	// then back-solves the input padding needed to hit OutputSize exactly,
	// instead of deriving the output size from the input.
	WithOutputSize bool

	// OutputSize is the user-requested output extent, without padding.
	OutputSize tensor.Tensor
}

// PoolingBuilder configures a Pooling primitive. Create it with NewPooling,
// chain the desired options and call Done.
type PoolingBuilder struct {
	p Pooling
}

// NewPooling starts building a pooling primitive reducing input with the
// given mode.
//
// Without further configuration Done yields a global pooling: the window
// spans the whole spatial extent of the input. Set an explicit window with
// Window, and see WithArgmax and WithOutputSize for the side-output and
// requested-output-size forms.
func NewPooling(id, input PrimitiveId, mode Mode) *PoolingBuilder {
	return &PoolingBuilder{p: Pooling{
		Base:          NewBase(id, input),
		Mode:          mode,
		GlobalPooling: true,
		Stride:        tensor.Ones,
	}}
}

// Window sets an explicit pooling window and stride, turning off global
// pooling.
func (b *PoolingBuilder) Window(size, stride tensor.Tensor) *PoolingBuilder {
	b.p.GlobalPooling = false
	b.p.Size = size
	b.p.Stride = stride
	return b
}

// InputOffset shifts where the first window starts relative to the (0,0)
// position of the input buffer.
func (b *PoolingBuilder) InputOffset(offset tensor.Tensor) *PoolingBuilder {
	b.p.InputOffset = offset
	return b
}

// PadEnd sets the shift relative to the end of the padding shape.
func (b *PoolingBuilder) PadEnd(padEnd tensor.Tensor) *PoolingBuilder {
	b.p.PadEnd = padEnd
	return b
}

// WithArgmax directs the per-window index of the maximum element into the
// primitive identified by argmax. Only legal with ModeMaxWithArgmax, which
// conversely requires it; checked at finalize.
func (b *PoolingBuilder) WithArgmax(argmax PrimitiveId) *PoolingBuilder {
	b.p.Argmax = argmax
	return b
}

// WithOutputSize requests an exact output extent (without padding) of the
// given element type. Shape inference computes the input padding needed to
// match it. Pass dtypes.InvalidDType to keep the input's element type.
func (b *PoolingBuilder) WithOutputSize(size tensor.Tensor, dtype dtypes.DType) *PoolingBuilder {
	b.p.WithOutputSize = true
	b.p.OutputSize = size
	b.p.OutputType = dtype
	return b
}

// OutputPadding sets the padding requested around the output buffer.
func (b *PoolingBuilder) OutputPadding(padding tensor.Padding) *PoolingBuilder {
	b.p.OutputPadding = padding
	return b
}

// Done returns the configured Pooling. It never fails; legality of the
// field combination is checked by Topology.Finalize.
func (b *PoolingBuilder) Done() *Pooling {
	p := b.p
	return &p
}

// TypeTag implements Primitive.
func (p *Pooling) TypeTag() string { return PoolingTag }

// ExtraDependencies implements Primitive: the argmax node, when set, must
// precede this primitive in topological order even though it is not a data
// input -- it is consumed by the executing kernel only.
func (p *Pooling) ExtraDependencies() types.Set[PrimitiveId] {
	if p.Argmax == "" {
		return nil
	}
	return types.SetWith(p.Argmax)
}

// Validate implements Primitive.
func (p *Pooling) Validate() error {
	if !p.Mode.IsAMode() {
		return errors.Wrapf(ErrInvalidConfiguration, "pooling %q: unknown mode %d", p.ID, p.Mode)
	}
	if p.Mode == ModeMaxWithArgmax && p.Argmax == "" {
		return errors.Wrapf(ErrInvalidConfiguration, "pooling %q: mode %s requires an argmax id", p.ID, p.Mode)
	}
	if p.Mode != ModeMaxWithArgmax && p.Argmax != "" {
		return errors.Wrapf(ErrInvalidConfiguration, "pooling %q: argmax %q set but mode is %s", p.ID, p.Argmax, p.Mode)
	}
	if p.WithOutputSize && p.OutputSize.IsZero() {
		return errors.Wrapf(ErrInvalidConfiguration, "pooling %q: output size requested but not given", p.ID)
	}
	if !p.WithOutputSize && !p.OutputSize.IsZero() {
		return errors.Wrapf(ErrInvalidConfiguration, "pooling %q: OutputSize=%s set without WithOutputSize", p.ID, p.OutputSize)
	}
	if p.GlobalPooling && p.WithOutputSize {
		return errors.Wrapf(ErrInvalidConfiguration, "pooling %q: global pooling cannot request an output size", p.ID)
	}
	return nil
}
