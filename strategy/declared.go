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

package strategy

import (
	"reflect"
	"runtime"
	"sync"

	"github.com/viant/xunsafe"

	"dirpx.dev/mirx/apis"
	uref "dirpx.dev/mirx/utils/reflect"
)

// NewDeclaredStrategy creates an apis.Matcher that matches members declared
// directly on the lookup type: its own methods (including shadowing
// redeclarations) and its own struct fields. Promoted members fall through.
func NewDeclaredStrategy() apis.Matcher {
	return declaredStrategy{}
}

// declaredStrategy is the first chain step: exact-type member tables.
type declaredStrategy struct{}

// Ensure declaredStrategy implements apis.Matcher.
var _ apis.Matcher = (*declaredStrategy)(nil)

// memberTable holds the resolved members of a single type. Tables are built
// once and shared; Member handles taken from a table keep their identity for
// the process lifetime.
type memberTable struct {
	methods map[string]*apis.Member
	fields  map[string]*apis.Member
	// ordered lists members in declaration order: fields first, then methods.
	ordered []*apis.Member
}

// declaredTables caches per-type declared-member tables. Declared resolution
// depends only on the type, not on config knobs.
var declaredTables sync.Map // key: reflect.Type, val: *memberTable

// TryMethod resolves a method declared on t itself.
func (declaredStrategy) TryMethod(t reflect.Type, name string, cfg apis.Config) (*apis.Member, bool) {
	if t == nil || name == "" {
		return nil, false
	}
	base, err := uref.Base(t, cfg)
	if err != nil {
		return nil, false
	}
	if m, ok := tableFor(base).methods[name]; ok {
		return m, true
	}
	return nil, false
}

// TryField resolves a struct field declared on t itself.
func (declaredStrategy) TryField(t reflect.Type, name string, cfg apis.Config) (*apis.Member, bool) {
	if t == nil || name == "" {
		return nil, false
	}
	base, err := uref.Base(t, cfg)
	if err != nil {
		return nil, false
	}
	if m, ok := tableFor(base).fields[name]; ok {
		return m, true
	}
	return nil, false
}

// Declared returns the members declared on t's lookup base: fields first in
// declaration order, then methods.
func Declared(t reflect.Type, cfg apis.Config) []*apis.Member {
	if t == nil {
		return nil
	}
	base, err := uref.Base(t, cfg)
	if err != nil {
		return nil
	}
	ordered := tableFor(base).ordered
	out := make([]*apis.Member, len(ordered))
	copy(out, ordered)
	return out
}

// tableFor returns the declared-member table of t, building it on first use.
// LoadOrStore keeps a single table instance per type so repeated lookups
// observe identical Member pointers.
func tableFor(t reflect.Type) *memberTable {
	if v, ok := declaredTables.Load(t); ok {
		return v.(*memberTable)
	}
	built := buildTable(t)
	actual, _ := declaredTables.LoadOrStore(t, built)
	return actual.(*memberTable)
}

// buildTable collects the members declared on t: for interfaces the full
// method list, for concrete types the methods whose implementation lives on t
// (promotion wrappers excluded) plus t's own struct fields.
func buildTable(t reflect.Type) *memberTable {
	tab := &memberTable{
		methods: map[string]*apis.Member{},
		fields:  map[string]*apis.Member{},
	}

	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			m := &apis.Member{
				Kind:   apis.KindField,
				Name:   sf.Name,
				Owner:  t,
				Path:   []int{i},
				Field:  &sf,
				XField: xunsafe.NewField(sf),
				Type:   sf.Type,
			}
			tab.fields[sf.Name] = m
			tab.ordered = append(tab.ordered, m)
		}
	}

	if t.Kind() == reflect.Interface {
		for i := 0; i < t.NumMethod(); i++ {
			m := t.Method(i)
			member := &apis.Member{
				Kind:   apis.KindMethod,
				Name:   m.Name,
				Owner:  t,
				Method: &m,
				// Interface method types carry no receiver already.
				Type: m.Type,
			}
			tab.methods[m.Name] = member
			tab.ordered = append(tab.ordered, member)
		}
		return tab
	}

	// Value method set first: Funcs here keep the declaring implementation
	// entry point, which declaresOwn relies on.
	seen := map[string]bool{}
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		seen[m.Name] = true
		if !declaresOwn(t, m) {
			continue
		}
		member := newMethodMember(t, m)
		tab.methods[m.Name] = member
		tab.ordered = append(tab.ordered, member)
	}
	// Pointer method set adds the pointer-receiver methods.
	pt := reflect.PtrTo(t)
	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		if seen[m.Name] {
			continue
		}
		if !declaresOwn(t, m) {
			continue
		}
		member := newMethodMember(t, m)
		tab.methods[m.Name] = member
		tab.ordered = append(tab.ordered, member)
	}
	return tab
}

// newMethodMember wraps a concrete method-set entry as a Member.
func newMethodMember(owner reflect.Type, m reflect.Method) *apis.Member {
	return &apis.Member{
		Kind:   apis.KindMethod,
		Name:   m.Name,
		Owner:  owner,
		Method: &m,
		Type:   dropReceiver(m.Type),
	}
}

// dropReceiver rebuilds a concrete method's func type without the receiver
// parameter, so signatures compare equal across declaring types.
func dropReceiver(ft reflect.Type) reflect.Type {
	if ft == nil || ft.Kind() != reflect.Func || ft.NumIn() == 0 {
		return ft
	}
	in := make([]reflect.Type, 0, ft.NumIn()-1)
	for i := 1; i < ft.NumIn(); i++ {
		in = append(in, ft.In(i))
	}
	out := make([]reflect.Type, 0, ft.NumOut())
	for i := 0; i < ft.NumOut(); i++ {
		out = append(out, ft.Out(i))
	}
	return reflect.FuncOf(in, out, ft.IsVariadic())
}

// declaresOwn reports whether method m's implementation lives on t itself
// rather than being a promotion wrapper for an embedded type's method.
func declaresOwn(t reflect.Type, m reflect.Method) bool {
	if t.Kind() != reflect.Struct {
		// Non-struct types cannot embed anything.
		return true
	}
	promoted := false
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.Anonymous {
			continue
		}
		if _, ok := promotes(sf.Type, m.Name); ok {
			promoted = true
			break
		}
	}
	if !promoted {
		return true
	}
	// The name is reachable via promotion. A local redeclaration keeps its
	// own entry point; the compiler emits promotion wrappers into
	// "<autogenerated>".
	if !m.Func.IsValid() {
		return false
	}
	fn := runtime.FuncForPC(m.Func.Pointer())
	if fn == nil {
		return false
	}
	file, _ := fn.FileLine(fn.Entry())
	return file != "<autogenerated>"
}

// promotes returns the method an anonymous field of type ft contributes to
// its outer type's method set, if any.
func promotes(ft reflect.Type, name string) (reflect.Method, bool) {
	switch ft.Kind() {
	case reflect.Ptr:
		if m, ok := ft.MethodByName(name); ok {
			return m, true
		}
		return reflect.Method{}, false
	case reflect.Interface:
		return ft.MethodByName(name)
	default:
		// Both value and pointer receiver methods of ft promote.
		return reflect.PtrTo(ft).MethodByName(name)
	}
}
