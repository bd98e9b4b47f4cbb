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

package member

import (
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"

	"dirpx.dev/mirx/apis"
)

// Get reads the named field of target. Target may be a struct or a struct
// pointer; promoted fields are reached through their embedding chain.
func (i *invoker) Get(target interface{}, name string) (out interface{}, err error) {
	t := reflect.TypeOf(target)
	defer func() { i.log.MemberFieldAccess(t, name, false, err) }()
	if target == nil {
		return nil, category(apis.ErrAccess, nil, "nil target for field %q", name)
	}
	m, ok := i.finder.Field(t, name)
	if !ok {
		return nil, category(apis.ErrNotFound, nil, "no field %q on %v", name, t)
	}
	return i.readField(m, target)
}

// Set writes the named field of target, which must be a struct pointer.
func (i *invoker) Set(target interface{}, name string, value interface{}) (err error) {
	t := reflect.TypeOf(target)
	defer func() { i.log.MemberFieldAccess(t, name, true, err) }()
	if target == nil {
		return category(apis.ErrAccess, nil, "nil target for field %q", name)
	}
	m, ok := i.finder.Field(t, name)
	if !ok {
		return category(apis.ErrNotFound, nil, "no field %q on %v", name, t)
	}
	return i.writeField(m, target, value)
}

func (i *invoker) readField(m *apis.Member, target interface{}) (interface{}, error) {
	ptr, err := i.fieldBlock(m, target, false)
	if err != nil {
		return nil, err
	}
	return m.XField.Value(ptr), nil
}

func (i *invoker) writeField(m *apis.Member, target interface{}, value interface{}) error {
	ptr, err := i.fieldBlock(m, target, true)
	if err != nil {
		return err
	}
	v, err := i.argument(m.Type, m.Name, value)
	if err != nil {
		return err
	}
	m.XField.SetValue(ptr, v.Interface())
	return nil
}

// fieldBlock resolves the base pointer of the struct block holding the
// member's leaf field, following pointer hops left by embedding.
func (i *invoker) fieldBlock(m *apis.Member, target interface{}, write bool) (unsafe.Pointer, error) {
	if target == nil {
		return nil, category(apis.ErrAccess, nil, "nil target for field %q", m.Name)
	}
	if m.XField == nil {
		return nil, category(apis.ErrAccess, nil, "field %q on %v has no accessor", m.Name, m.Owner)
	}
	if !m.Exported() && !i.cfg.AllowUnexported {
		return nil, category(apis.ErrAccess, nil, "unexported field %q on %v", m.Name, m.Owner)
	}
	t := reflect.TypeOf(target)
	switch {
	case t.Kind() == reflect.Struct:
		if write {
			return nil, category(apis.ErrAccess, nil, "write to field %q needs a struct pointer, got %v", m.Name, t)
		}
	case t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct:
		if reflect.ValueOf(target).IsNil() {
			return nil, category(apis.ErrAccess, nil, "nil target for field %q", m.Name)
		}
	default:
		return nil, category(apis.ErrAccess, nil, "field access on %v needs a struct or struct pointer", t)
	}
	ptr := xunsafe.AsPointer(target)
	if ptr == nil {
		return nil, category(apis.ErrAccess, nil, "nil target for field %q", m.Name)
	}
	for _, hop := range m.Indirect {
		ptr = hop.ValuePointer(ptr)
		if ptr == nil {
			return nil, category(apis.ErrAccess, nil, "nil embedded %v on path to field %q", hop.Type, m.Name)
		}
	}
	return ptr, nil
}
