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
	"slices"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/toponet/toponet/types"
)

// VariablePair names the two primitives backing one state variable: the
// ReadValue producing its current value and the Assign storing the next
// one.
type VariablePair struct {
	Read, Assign PrimitiveId
}

// Function is one compilable unit: a finalized Graph plus the node roles
// that make it invocable.
//
//   - Parameters: the graph inputs, in call order.
//   - Results: the graph outputs, in return order.
//   - Sinks: side-effecting primitives with no consumer, which must still
//     be scheduled (e.g. Assign).
//   - Variables: the paired read/assign state primitives, keyed by
//     variable id.
//
// A Function performs no computation; it is consumed read-only by the
// compiler/scheduler collaborator. Immutable after NewFunction.
type Function struct {
	name       string
	graph      *Graph
	parameters []PrimitiveId
	results    []PrimitiveId
	sinks      types.Set[PrimitiveId]
	variables  map[VariableId]VariablePair
}

// NewFunction finalizes topo and packages it with its distinguished nodes.
// If name is empty a unique one is generated.
//
// Beyond the errors of Topology.Finalize, it returns ErrDanglingReference
// if any listed parameter, result, sink or variable primitive is absent
// from the topology, and ErrVariableMismatch if a variable's read/assign
// pair disagree on variable id, declared layout or element type.
func NewFunction(name string, topo *Topology, parameters, results, sinks []PrimitiveId,
	variables map[VariableId]VariablePair) (*Function, error) {
	graph, err := topo.Finalize()
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = "func_" + uuid.NewString()
	}

	checkRole := func(role string, ids []PrimitiveId) error {
		for _, id := range ids {
			if !graph.Has(id) {
				return errors.Wrapf(ErrDanglingReference, "%s %q not in topology", role, id)
			}
		}
		return nil
	}
	if err := checkRole("parameter", parameters); err != nil {
		return nil, err
	}
	if err := checkRole("result", results); err != nil {
		return nil, err
	}
	if err := checkRole("sink", sinks); err != nil {
		return nil, err
	}

	variableIds := make([]VariableId, 0, len(variables))
	for variable := range variables {
		variableIds = append(variableIds, variable)
	}
	slices.Sort(variableIds)
	for _, variable := range variableIds {
		if err := checkVariablePair(graph, variable, variables[variable]); err != nil {
			return nil, err
		}
	}

	f := &Function{
		name:       name,
		graph:      graph,
		parameters: slices.Clone(parameters),
		results:    slices.Clone(results),
		sinks:      types.SetWith(sinks...),
		variables:  make(map[VariableId]VariablePair, len(variables)),
	}
	for variable, pair := range variables {
		f.variables[variable] = pair
	}
	klog.V(1).Infof("function %q built: %d parameters, %d results, %d sinks, %d variables",
		f.name, len(f.parameters), len(f.results), len(f.sinks), len(f.variables))
	return f, nil
}

// checkVariablePair verifies that the read and assign primitives of one
// variable exist, have the right kinds and agree on what they declare.
func checkVariablePair(graph *Graph, variable VariableId, pair VariablePair) error {
	readPrim := graph.Primitive(pair.Read)
	if readPrim == nil {
		return errors.Wrapf(ErrDanglingReference, "variable %q: read node %q not in topology", variable, pair.Read)
	}
	assignPrim := graph.Primitive(pair.Assign)
	if assignPrim == nil {
		return errors.Wrapf(ErrDanglingReference, "variable %q: assign node %q not in topology", variable, pair.Assign)
	}
	read, ok := readPrim.(*ReadValue)
	if !ok {
		return errors.Wrapf(ErrVariableMismatch, "variable %q: %q is a %s, not a read_value",
			variable, pair.Read, readPrim.TypeTag())
	}
	assign, ok := assignPrim.(*Assign)
	if !ok {
		return errors.Wrapf(ErrVariableMismatch, "variable %q: %q is a %s, not an assign",
			variable, pair.Assign, assignPrim.TypeTag())
	}
	if read.Variable != variable || assign.Variable != variable {
		return errors.Wrapf(ErrVariableMismatch, "variable %q: pair declares variables %q (read) and %q (assign)",
			variable, read.Variable, assign.Variable)
	}
	if read.OutputType != assign.OutputType {
		return errors.Wrapf(ErrVariableMismatch, "variable %q: read is %s but assign is %s",
			variable, read.OutputType, assign.OutputType)
	}
	if read.Layout != assign.Layout {
		return errors.Wrapf(ErrVariableMismatch, "variable %q: read layout %s but assign layout %s",
			variable, read.Layout, assign.Layout)
	}
	return nil
}

// Name of the function. Unique when auto-generated.
func (f *Function) Name() string { return f.name }

// Graph returns the finalized graph backing the function.
func (f *Function) Graph() *Graph { return f.graph }

// Parameters returns the graph-input ids in call order.
func (f *Function) Parameters() []PrimitiveId {
	return slices.Clone(f.parameters)
}

// Results returns the graph-output ids in return order.
func (f *Function) Results() []PrimitiveId {
	return slices.Clone(f.results)
}

// IsSink reports whether id was listed as a sink node.
func (f *Function) IsSink(id PrimitiveId) bool { return f.sinks.Has(id) }

// Sinks returns the sink ids, sorted.
func (f *Function) Sinks() []PrimitiveId {
	return types.Sorted(f.sinks)
}

// Variables returns the variable ids, sorted.
func (f *Function) Variables() []VariableId {
	ids := make([]VariableId, 0, len(f.variables))
	for variable := range f.variables {
		ids = append(ids, variable)
	}
	slices.Sort(ids)
	return ids
}

// Variable returns the read/assign pair of the given variable.
func (f *Function) Variable(variable VariableId) (VariablePair, bool) {
	pair, found := f.variables[variable]
	return pair, found
}
