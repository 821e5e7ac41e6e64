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
	"encoding/gob"

	"github.com/pkg/errors"
)

// GobSerialize writes the topology to the encoder: primitive count, then
// per primitive (in insertion order) its type tag followed by its concrete
// value. Only the still-mutable Topology serializes; a finalized Graph is
// reconstructed by finalizing the deserialized topology again.
func (t *Topology) GobSerialize(encoder *gob.Encoder) error {
	if err := encoder.Encode(len(t.order)); err != nil {
		return errors.Wrapf(err, "failed to encode primitive count")
	}
	for _, id := range t.order {
		p := t.primitives[id]
		if err := encoder.Encode(p.TypeTag()); err != nil {
			return errors.Wrapf(err, "failed to encode type tag of primitive %q", id)
		}
		if err := encoder.Encode(p); err != nil {
			return errors.Wrapf(err, "failed to encode primitive %q", id)
		}
	}
	return nil
}

// GobDeserializeTopology reads back a topology written by GobSerialize.
// Primitives are re-inserted in their original insertion order, so a
// round-trip preserves ids, edges, per-primitive configuration and the
// deterministic topological order of Finalize.
func GobDeserializeTopology(decoder *gob.Decoder) (*Topology, error) {
	var count int
	if err := decoder.Decode(&count); err != nil {
		return nil, errors.Wrapf(err, "failed to decode primitive count")
	}
	t := New()
	for ii := 0; ii < count; ii++ {
		var tag string
		if err := decoder.Decode(&tag); err != nil {
			return nil, errors.Wrapf(err, "failed to decode type tag of primitive #%d", ii)
		}
		p, err := newByTag(tag)
		if err != nil {
			return nil, errors.WithMessagef(err, "primitive #%d", ii)
		}
		if err := decoder.Decode(p); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %q primitive #%d", tag, ii)
		}
		if err := t.Insert(p); err != nil {
			return nil, err
		}
	}
	return t, nil
}
