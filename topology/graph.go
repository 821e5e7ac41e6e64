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
	"fmt"
	"strings"
)

// graphNode is one entry of the Graph arena. Edges are stored as indices
// into the arena; ids remain the external-facing identity.
type graphNode struct {
	prim Primitive
	deps []int // inputs ∪ extra dependencies, resolved and sorted.
}

// Graph is the finalized, immutable form of a Topology: every reference
// resolved, configurations validated, acyclicity proven. It may be shared
// read-only across any number of goroutines.
//
// Create it with Topology.Finalize.
type Graph struct {
	nodes     []graphNode
	index     map[PrimitiveId]int
	order     []int // Valid topological order over nodes.
	insertion []PrimitiveId
}

// Len returns the number of primitives in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// Has reports whether id names a primitive of this graph.
func (g *Graph) Has(id PrimitiveId) bool {
	_, found := g.index[id]
	return found
}

// Primitive returns the primitive with the given id, or nil if absent.
// The returned primitive must not be mutated.
func (g *Graph) Primitive(id PrimitiveId) Primitive {
	idx, found := g.index[id]
	if !found {
		return nil
	}
	return g.nodes[idx].prim
}

// Dependencies returns the resolved dependency ids of the given primitive:
// its primary inputs plus its extra dependencies, sorted and de-duplicated.
// It returns nil if id is absent.
func (g *Graph) Dependencies(id PrimitiveId) []PrimitiveId {
	idx, found := g.index[id]
	if !found {
		return nil
	}
	node := g.nodes[idx]
	deps := make([]PrimitiveId, len(node.deps))
	for ii, depIdx := range node.deps {
		deps[ii] = g.nodes[depIdx].prim.Id()
	}
	return deps
}

// TopologicalOrder returns the primitive ids in a valid topological order:
// every dependency comes before its dependents. The order is deterministic
// across runs, tie-broken by insertion order.
func (g *Graph) TopologicalOrder() []PrimitiveId {
	ids := make([]PrimitiveId, len(g.order))
	for ii, idx := range g.order {
		ids[ii] = g.nodes[idx].prim.Id()
	}
	return ids
}

// Ids returns the primitive ids in their original insertion order.
func (g *Graph) Ids() []PrimitiveId {
	ids := make([]PrimitiveId, len(g.insertion))
	copy(ids, g.insertion)
	return ids
}

func (g *Graph) numEdges() int {
	var n int
	for _, node := range g.nodes {
		n += len(node.deps)
	}
	return n
}

// String lists the graph's primitives in topological order, with their
// dependencies. For debugging.
func (g *Graph) String() string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "Graph: %d primitives\n", g.Len())
	for _, idx := range g.order {
		node := g.nodes[idx]
		_, _ = fmt.Fprintf(&b, "\t%q [%s]", node.prim.Id(), node.prim.TypeTag())
		if deps := g.Dependencies(node.prim.Id()); len(deps) > 0 {
			_, _ = fmt.Fprintf(&b, " <- %q", deps)
		}
		b.WriteString("\n")
	}
	return b.String()
}
