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
	"sync"

	"github.com/viant/structology"

	"dirpx.dev/mirx/apis"
)

// stateTypes caches structology state types per parameter type.
var stateTypes sync.Map

func stateTypeFor(t reflect.Type) *structology.StateType {
	if v, ok := stateTypes.Load(t); ok {
		return v.(*structology.StateType)
	}
	created := structology.NewStateType(t)
	actual, _ := stateTypes.LoadOrStore(t, created)
	return actual.(*structology.StateType)
}

// stateArgument builds a struct parameter from a generic map, so option-style
// arguments can be passed without constructing the struct type by hand. The
// second result reports whether this coercion applied at all.
func (i *invoker) stateArgument(want reflect.Type, arg interface{}) (reflect.Value, bool, error) {
	aMap, ok := arg.(map[string]interface{})
	if !ok {
		return reflect.Value{}, false, nil
	}
	base := want
	for base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct {
		return reflect.Value{}, false, nil
	}
	aState := stateTypeFor(want).NewState()
	for k, v := range aMap {
		if err := aState.SetValue(k, v); err != nil {
			return reflect.Value{}, true, category(apis.ErrArgument, err, "cannot set %q on %v", k, base)
		}
	}
	out := reflect.ValueOf(aState.State())
	switch {
	case out.Type().AssignableTo(want):
		return out, true, nil
	case out.Kind() == reflect.Ptr && out.Type().Elem().AssignableTo(want):
		return out.Elem(), true, nil
	case want.Kind() == reflect.Ptr && out.Type().AssignableTo(want.Elem()):
		ptr := reflect.New(want.Elem())
		ptr.Elem().Set(out)
		return ptr, true, nil
	}
	return reflect.Value{}, true, category(apis.ErrArgument, nil, "cannot use map as %v", want)
}
