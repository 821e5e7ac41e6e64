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

// Package topology builds and validates the directed acyclic graph of
// computation primitives that describes an inference network before it is
// handed to a compiler/executor.
//
// The main elements in the package are:
//
//   - Primitive: a named node of the compute graph. Each concrete variant
//     (Pooling, Concatenation, Reorder, ...) carries its own configuration;
//     all of them reference other primitives by id, which is what forms the
//     graph's edges. Field combinations are only checked at finalize time,
//     so primitives may freely reference ids inserted later (forward
//     references).
//
//   - Topology: the mutable container primitives are inserted into. Its
//     Finalize method resolves every referenced id, validates each
//     primitive's configuration and returns an immutable Graph with a
//     deterministic topological order, or an error naming the offending
//     id(s).
//
//   - Function: a finalized Graph together with the distinguished node
//     roles that make it an invocable unit -- parameters, results, sinks
//     and paired read/assign state variables.
//
// Construction is single-threaded; a finalized Graph and a Function are
// immutable and may be shared across goroutines without locking. No
// computation or shape inference happens here: those are downstream
// collaborators that consume the finalized structures.
package topology

import (
	"github.com/gomlx/gopjrt/dtypes"

	"github.com/toponet/toponet/types"
	"github.com/toponet/toponet/types/tensor"
)

// PrimitiveId identifies a primitive within a Topology. The empty string is
// the sentinel for an absent optional reference, never a valid id.
type PrimitiveId string

// Primitive is the capability contract every graph node implements.
//
// Implementations are plain structs (usually embedding Base) whose fields
// are set once at construction and must not be mutated after the primitive
// is handed to Topology.Insert. All methods are pure accessors.
type Primitive interface {
	// Id of this primitive, unique within its Topology. Never empty.
	Id() PrimitiveId

	// Inputs are the ids of the primitives whose outputs feed this one, in
	// order. Empty for source nodes.
	Inputs() []PrimitiveId

	// ExtraDependencies returns ids that must precede this primitive in
	// topological order but are not primary data inputs -- e.g. the buffer
	// that receives argmax indices during max pooling. May be nil.
	ExtraDependencies() types.Set[PrimitiveId]

	// OutputDataType is the explicitly requested element type of the output,
	// or dtypes.InvalidDType to let shape inference derive it.
	OutputDataType() dtypes.DType

	// TypeTag names the concrete primitive kind. Tags key the construction
	// registry and the serialized form.
	TypeTag() string

	// Validate checks the primitive's field combination. It is called by
	// Topology.Finalize, never at construction, so that forward references
	// and partially staged configurations remain legal while building.
	Validate() error
}

// Base carries the state common to every primitive variant: identity, the
// primary input edges, output padding and the optional explicit output
// element type. Variants embed it by value.
//
// Fields are exported for the serialization collaborator. They must be
// treated as frozen once the primitive is inserted into a Topology.
type Base struct {
	// ID of the primitive. Required, unique within a Topology.
	ID PrimitiveId

	// InputIDs reference the primitives producing this one's inputs.
	InputIDs []PrimitiveId

	// OutputPadding requested around the output buffer.
	OutputPadding tensor.Padding

	// OutputType, when different from dtypes.InvalidDType, forces the
	// element type of the output.
	OutputType dtypes.DType
}

// NewBase returns a Base for the given id and input references.
func NewBase(id PrimitiveId, inputs ...PrimitiveId) Base {
	return Base{ID: id, InputIDs: inputs}
}

// Id implements Primitive.
func (b *Base) Id() PrimitiveId { return b.ID }

// Inputs implements Primitive. The returned slice is owned by the
// primitive and must not be modified.
func (b *Base) Inputs() []PrimitiveId { return b.InputIDs }

// ExtraDependencies implements Primitive: no secondary edges by default.
func (b *Base) ExtraDependencies() types.Set[PrimitiveId] { return nil }

// OutputDataType implements Primitive.
func (b *Base) OutputDataType() dtypes.DType { return b.OutputType }
