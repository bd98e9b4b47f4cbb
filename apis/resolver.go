/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"reflect"
)

// TypeKind classifies a described reflect.Type.
type TypeKind int

const (
	// Unknown is the classification of a nil or otherwise unclassifiable type.
	Unknown TypeKind = iota
	// Plain is a concrete type without type arguments.
	Plain
	// Parameterized is a named generic instantiation, e.g. "List[main.User]".
	Parameterized
	// Container is an unnamed composite (pointer, slice, array, map or
	// channel) whose element types stand in for type arguments.
	Container
	// Function is a func type.
	Function
	// Interface is an interface type.
	Interface
	// Unresolved is a descriptor for a type-argument name that no registry
	// entry or parse could produce a reflect.Type for.
	Unresolved
)

// String returns the lower-case kind name.
func (k TypeKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Parameterized:
		return "parameterized"
	case Container:
		return "container"
	case Function:
		return "function"
	case Interface:
		return "interface"
	case Unresolved:
		return "unresolved"
	}
	return "unknown"
}

// Descriptor wraps a reflect.Type with its classification, resolved type
// arguments and the chain of descriptors it was derived from. Descriptors are
// immutable once built and safe for concurrent reads.
type Descriptor struct {
	// Name is the registry name when registered, else the reflect name,
	// else the raw token the descriptor was parsed from.
	Name string
	// Type is the underlying type; nil for Unresolved and Unknown kinds.
	Type reflect.Type
	// Kind is the classification of Type.
	Kind TypeKind
	// Args holds the type arguments. A nil entry is the placeholder for an
	// argument that could not be resolved to a live type.
	Args []*Descriptor
	// Source is the derivation chain, most recent parent first.
	Source []*Descriptor
}

// Resolver answers classification and generic-argument questions about types.
// Implementations memoize (type, ancestor) argument resolutions process-wide:
// successive calls with equal inputs return the identical slice.
type Resolver interface {
	// Describe classifies t and resolves its type arguments.
	Describe(t reflect.Type, cfg Config) *Descriptor

	// TypeArguments computes the actual type arguments of t relative to the
	// generic ancestor, walking t's embedding hierarchy. Unresolvable
	// arguments stay nil placeholders. The result is nil when t does not
	// derive from ancestor.
	TypeArguments(t, ancestor reflect.Type, cfg Config) []*Descriptor

	// Elements resolves the element descriptors of a container type:
	// slice/array/chan yield the element, maps yield key then element,
	// pointers are unwrapped first.
	Elements(t reflect.Type, cfg Config) []*Descriptor
}
