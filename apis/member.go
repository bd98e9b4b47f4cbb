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

	"github.com/viant/xunsafe"
)

// Kind identifies what sort of member a resolved handle refers to.
type Kind int

const (
	// KindMethod is a method resolved from a type's method set or an
	// embedded type's method set.
	KindMethod Kind = iota
	// KindField is a struct field, possibly promoted from an embedded struct.
	KindField
	// KindConstructor is a registered factory function (or the implicit
	// zero-value constructor) for a type.
	KindConstructor
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindField:
		return "field"
	case KindConstructor:
		return "constructor"
	}
	return "unknown"
}

// Member is an immutable, resolved member handle. Instances are created by a
// Finder, memoized process-wide and shared between callers; never mutate a
// Member obtained from a lookup.
type Member struct {
	// Kind tells whether this is a method, field or constructor handle.
	Kind Kind

	// Name is the canonical member name as declared (after any loose-name
	// matching has been applied).
	Name string

	// Owner is the declaring type: the lookup type itself when the member is
	// declared (or shadowed) there, otherwise the embedded type that
	// provides it.
	Owner reflect.Type

	// Depth is the embedding distance from the lookup type to Owner.
	// Zero means the member is declared on the lookup type itself.
	Depth int

	// Path is the struct field index chain from the lookup type to the
	// member (for fields) or to the embedded owner (for promoted methods
	// that are not part of the lookup type's own method set).
	Path []int

	// Method is set for KindMethod. Its Func is valid when the method comes
	// from a concrete type's method set; interface methods carry no Func.
	Method *reflect.Method

	// Field is set for KindField and describes the leaf struct field.
	Field *reflect.StructField

	// XField is the unsafe accessor for KindField, flattened across
	// value-embedded hops. Indirect lists pointer-embedded hops that must be
	// dereferenced before XField applies.
	XField *xunsafe.Field

	// Indirect holds the pointer-typed anonymous hops on the way to XField,
	// outermost first. Empty for directly declared fields.
	Indirect []*xunsafe.Field

	// Func is the registered factory function for KindConstructor.
	// A zero Value denotes the implicit zero-value constructor.
	Func reflect.Value

	// Type is the member's signature without any receiver: the method's
	// func type, the field's type, or the factory's func type.
	Type reflect.Type
}

// Exported reports whether the member name is exported.
func (m *Member) Exported() bool {
	if m == nil || m.Name == "" {
		return false
	}
	c := m.Name[0]
	return c >= 'A' && c <= 'Z'
}
