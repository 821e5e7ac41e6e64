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

// Validation errors reported by Topology.Insert, Topology.Finalize and
// NewFunction. They are always returned wrapped with the offending
// primitive id(s); match them with errors.Is.
//
// Building never retries or silently corrects: any of these is fatal to the
// build step and must be handled by the caller.
var (
	// ErrDuplicateId is returned by Topology.Insert when a primitive with
	// the same id was already inserted.
	ErrDuplicateId = errors.New("duplicate primitive id")

	// ErrUnknownReference is returned by Topology.Finalize when a primitive
	// references an id (input or extra dependency) that was never inserted.
	ErrUnknownReference = errors.New("reference to unknown primitive id")

	// ErrCycleDetected is returned by Topology.Finalize when the dependency
	// graph induced by the primitives is not acyclic.
	ErrCycleDetected = errors.New("dependency cycle detected")

	// ErrInvalidConfiguration is returned by Topology.Finalize when a
	// primitive's fields form an illegal combination -- e.g. pooling in
	// max-with-argmax mode without an argmax id.
	ErrInvalidConfiguration = errors.New("invalid primitive configuration")

	// ErrDanglingReference is returned by NewFunction when a listed
	// parameter, result or sink id is absent from the topology.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrVariableMismatch is returned by NewFunction when a variable's
	// read and assign primitives disagree on element type or layout.
	ErrVariableMismatch = errors.New("variable read/assign mismatch")
)
