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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/mirx/apis"
	"dirpx.dev/mirx/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("mirx(reflect): nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping containers)
	// does not contain a named type (e.g., anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("mirx(reflect): type has no named base")
)

// Normalize strips container wrappers off t until it reaches a named type
// and returns that type. Pointers, slices, arrays and channels unwrap to
// their element. Maps resolve to whichever side is named, probing the side
// MapPreferElem selects first; when neither side is named, unwrapping
// continues through the element. Any other unnamed type ends the walk with
// ErrReflectTypeNotNamed.
//
// The walk takes at most cfg.MaxUnwrap steps (DefaultMaxUnwrap when the
// knob is zero or negative); hitting the bound on a still-unnamed type is
// an ErrReflectTypeNotNamed as well.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	limit := cfg.MaxUnwrap
	if limit <= 0 {
		limit = config.DefaultMaxUnwrap
	}

	for hop := 0; t != nil && hop < limit; hop++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()

		case reflect.Map:
			if side, ok := namedMapSide(t, cfg.MapPreferElem); ok {
				return side, nil
			}
			t = t.Elem()

		default:
			if t.Name() != "" {
				return t, nil
			}
			return nil, ErrReflectTypeNotNamed
		}
	}

	if t != nil && t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

// namedMapSide picks the named key or element of a map type, probing the
// element first when preferElem is set.
func namedMapSide(t reflect.Type, preferElem bool) (reflect.Type, bool) {
	first, second := t.Key(), t.Elem()
	if preferElem {
		first, second = second, first
	}
	if first != nil && first.Name() != "" {
		return first, true
	}
	if second != nil && second.Name() != "" {
		return second, true
	}
	return nil, false
}

// Base returns the type member lookups operate on. Named types keep their own
// method sets, so they are returned as-is even when their kind is a
// container; only unnamed wrappers (pointers, slices of T, anonymous
// containers) are normalized down to the nearest named type.
func Base(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	if t.Name() != "" {
		return t, nil
	}
	// Unnamed interfaces and structs still carry members.
	switch t.Kind() {
	case reflect.Interface, reflect.Struct:
		return t, nil
	}
	return Normalize(t, cfg)
}
