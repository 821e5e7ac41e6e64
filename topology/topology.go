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
	"container/heap"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/toponet/toponet/types"
)

// Topology aggregates primitives by id while a network is being assembled.
//
// Inserted primitives may reference ids that are only inserted later:
// nothing is resolved until Finalize, which validates every primitive,
// resolves every edge and returns the immutable Graph.
//
// A Topology is built by a single goroutine; ownership of a primitive
// passes into the topology at Insert and the caller must not mutate it
// afterwards.
type Topology struct {
	primitives map[PrimitiveId]Primitive
	order      []PrimitiveId // Ids in insertion order; keeps Finalize deterministic.
	finalized  bool
}

// New returns an empty Topology.
func New() *Topology {
	return &Topology{primitives: make(map[PrimitiveId]Primitive)}
}

// Insert adds a primitive to the topology. It returns ErrDuplicateId if a
// primitive with the same id was already inserted.
//
// It panics on a nil primitive, an empty id or a topology that was already
// finalized -- those are programming errors, not build-input errors.
func (t *Topology) Insert(p Primitive) error {
	if p == nil {
		exceptions.Panicf("Topology.Insert: nil primitive")
	}
	if p.Id() == "" {
		exceptions.Panicf("Topology.Insert: primitive of type %q has an empty id", p.TypeTag())
	}
	if t.finalized {
		exceptions.Panicf("Topology.Insert(%q): topology already finalized", p.Id())
	}
	if _, found := t.primitives[p.Id()]; found {
		return errors.Wrapf(ErrDuplicateId, "id %q", p.Id())
	}
	t.primitives[p.Id()] = p
	t.order = append(t.order, p.Id())
	return nil
}

// Get returns the primitive inserted under id, if any.
func (t *Topology) Get(id PrimitiveId) (Primitive, bool) {
	p, found := t.primitives[id]
	return p, found
}

// Len returns the number of inserted primitives.
func (t *Topology) Len() int { return len(t.order) }

// Ids returns the inserted ids in insertion order.
func (t *Topology) Ids() []PrimitiveId {
	return slices.Clone(t.order)
}

// dependenciesOf collects the full edge set of p -- primary inputs plus
// extra dependencies -- as sorted, de-duplicated ids.
func dependenciesOf(p Primitive) []PrimitiveId {
	deps := types.MakeSet[PrimitiveId](len(p.Inputs()))
	deps.Insert(p.Inputs()...)
	for dep := range p.ExtraDependencies() {
		deps.Insert(dep)
	}
	return types.Sorted(deps)
}

// Finalize validates the topology and freezes it into an immutable Graph:
//
//   - every primitive's field combination is checked (ErrInvalidConfiguration);
//   - every referenced id must resolve (ErrUnknownReference);
//   - the induced graph must be acyclic (ErrCycleDetected).
//
// The topological order of the returned Graph is deterministic: among the
// valid orderings it picks the one that follows insertion order.
//
// After a successful Finalize the topology no longer accepts Insert.
func (t *Topology) Finalize() (*Graph, error) {
	for _, id := range t.order {
		if err := t.primitives[id].Validate(); err != nil {
			return nil, err
		}
	}

	index := make(map[PrimitiveId]int, len(t.order))
	for ii, id := range t.order {
		index[id] = ii
	}

	nodes := make([]graphNode, len(t.order))
	dependents := make([][]int, len(t.order))
	inDegree := make([]int, len(t.order))
	for ii, id := range t.order {
		p := t.primitives[id]
		depIds := dependenciesOf(p)
		deps := make([]int, 0, len(depIds))
		for _, depId := range depIds {
			depIdx, found := index[depId]
			if !found {
				return nil, errors.Wrapf(ErrUnknownReference, "primitive %q references %q", id, depId)
			}
			deps = append(deps, depIdx)
			dependents[depIdx] = append(dependents[depIdx], ii)
		}
		nodes[ii] = graphNode{prim: p, deps: deps}
		inDegree[ii] = len(deps)
	}

	// Kahn's algorithm; the ready heap breaks ties by insertion index.
	ready := &intHeap{}
	for ii, degree := range inDegree {
		if degree == 0 {
			heap.Push(ready, ii)
		}
	}
	order := make([]int, 0, len(nodes))
	for ready.Len() > 0 {
		ii := heap.Pop(ready).(int)
		order = append(order, ii)
		for _, dependent := range dependents[ii] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				heap.Push(ready, dependent)
			}
		}
	}
	if len(order) < len(nodes) {
		var cycle []PrimitiveId
		for ii, degree := range inDegree {
			if degree > 0 {
				cycle = append(cycle, t.order[ii])
			}
		}
		return nil, errors.Wrapf(ErrCycleDetected, "among primitives %q", cycle)
	}

	t.finalized = true
	g := &Graph{nodes: nodes, index: index, order: order, insertion: slices.Clone(t.order)}
	klog.V(1).Infof("topology finalized: %d primitives, %d edges", g.Len(), g.numEdges())
	return g, nil
}

// intHeap is a min-heap of node indices, used by Finalize to keep the
// topological order stable by insertion order.
type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
