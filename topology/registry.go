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
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// PrimitiveFactory returns a fresh zero value of one primitive kind, ready
// to be deserialized into.
type PrimitiveFactory func() Primitive

// builtinPrimitives is the registry table of the primitive kinds shipped
// with this package, keyed by type tag.
var builtinPrimitives = map[string]PrimitiveFactory{
	PoolingTag:       func() Primitive { return &Pooling{} },
	InputLayoutTag:   func() Primitive { return &InputLayout{} },
	ReorderTag:       func() Primitive { return &Reorder{} },
	ConcatenationTag: func() Primitive { return &Concatenation{} },
	ReverseTag:       func() Primitive { return &Reverse{} },
	ReadValueTag:     func() Primitive { return &ReadValue{} },
	AssignTag:        func() Primitive { return &Assign{} },
}

// RegisterPrimitive adds a primitive kind to the registry, making it
// deserializable by tag. Call it from an init function of the package
// defining the kind. It panics if the tag is empty or already taken.
func RegisterPrimitive(tag string, factory PrimitiveFactory) {
	if tag == "" || factory == nil {
		exceptions.Panicf("RegisterPrimitive: tag and factory are required")
	}
	if _, found := builtinPrimitives[tag]; found {
		exceptions.Panicf("RegisterPrimitive: tag %q already registered", tag)
	}
	builtinPrimitives[tag] = factory
}

// newByTag instantiates the registered primitive kind for tag.
func newByTag(tag string) (Primitive, error) {
	factory, found := builtinPrimitives[tag]
	if !found {
		return nil, errors.Errorf("unknown primitive type tag %q", tag)
	}
	return factory(), nil
}
