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

package typing_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/mirx/apis"
	"dirpx.dev/mirx/config"
	"dirpx.dev/mirx/registry"
	"dirpx.dev/mirx/typing"
)

type User struct {
	ID int
}

func (u User) Identity() int { return u.ID }

func (u User) Get() User { return u }

type Account struct {
	Balance int
}

type List[T any] struct {
	Items []T
}

type Dict[K comparable, V any] struct {
	entries map[K]V
}

type UserList struct {
	List[User]
	Revision int
}

type AuditedUserList struct {
	UserList
}

type Users []User

type Identifier interface {
	Identity() int
}

type Box[T any] interface {
	Get() T
}

type Handler func(u User) error

func conf(opts ...config.Option) apis.Config {
	return config.NewConfig(opts...)
}

func newResolver(t *testing.T) (apis.Resolver, apis.Registry) {
	cfg := conf()
	reg := registry.New(cfg)
	if err := reg.Register(reflect.TypeOf(User{}), "User"); err != nil {
		t.Fatalf("register: %v", err)
	}
	return typing.New(cfg, reg), reg
}

func TestDescribe_Classification(t *testing.T) {
	res, _ := newResolver(t)
	testCases := []struct {
		description string
		typ         reflect.Type
		expect      apis.TypeKind
	}{
		{description: "plain struct", typ: reflect.TypeOf(User{}), expect: apis.Plain},
		{description: "named slice stays plain", typ: reflect.TypeOf(Users{}), expect: apis.Plain},
		{description: "generic instantiation", typ: reflect.TypeOf(List[User]{}), expect: apis.Parameterized},
		{description: "multi argument instantiation", typ: reflect.TypeOf(Dict[string, User]{}), expect: apis.Parameterized},
		{description: "slice", typ: reflect.TypeOf([]User{}), expect: apis.Container},
		{description: "array", typ: reflect.TypeOf([4]byte{}), expect: apis.Container},
		{description: "map", typ: reflect.TypeOf(map[string]User{}), expect: apis.Container},
		{description: "pointer", typ: reflect.TypeOf(&User{}), expect: apis.Container},
		{description: "channel", typ: reflect.TypeOf(make(chan int)), expect: apis.Container},
		{description: "interface", typ: reflect.TypeOf((*Identifier)(nil)).Elem(), expect: apis.Interface},
		{description: "func literal", typ: reflect.TypeOf(func(int) string { return "" }), expect: apis.Function},
		{description: "named func type", typ: reflect.TypeOf(Handler(nil)), expect: apis.Function},
		{description: "nil type", typ: nil, expect: apis.Unknown},
	}
	for _, useCase := range testCases {
		desc := res.Describe(useCase.typ, conf())
		assert.EqualValues(t, useCase.expect, desc.Kind, useCase.description)
		assert.EqualValues(t, useCase.typ, desc.Type, useCase.description)
	}
}

func TestTypeKind_String(t *testing.T) {
	assert.EqualValues(t, "unknown", apis.Unknown.String())
	assert.EqualValues(t, "plain", apis.Plain.String())
	assert.EqualValues(t, "parameterized", apis.Parameterized.String())
	assert.EqualValues(t, "container", apis.Container.String())
	assert.EqualValues(t, "function", apis.Function.String())
	assert.EqualValues(t, "interface", apis.Interface.String())
	assert.EqualValues(t, "unresolved", apis.Unresolved.String())
}

func TestDescribe_ParameterizedArguments(t *testing.T) {
	res, _ := newResolver(t)

	desc := res.Describe(reflect.TypeOf(List[User]{}), conf())
	assert.True(t, strings.HasPrefix(desc.Name, "List["), desc.Name)
	if assert.EqualValues(t, 1, len(desc.Args)) {
		arg := desc.Args[0]
		if assert.NotNil(t, arg) {
			assert.EqualValues(t, reflect.TypeOf(User{}), arg.Type)
			assert.EqualValues(t, "User", arg.Name)
			assert.EqualValues(t, apis.Plain, arg.Kind)
			if assert.EqualValues(t, 1, len(arg.Source)) {
				assert.True(t, arg.Source[0] == desc, "the argument records its parent")
			}
		}
	}

	dict := res.Describe(reflect.TypeOf(Dict[string, User]{}), conf())
	assert.EqualValues(t, apis.Parameterized, dict.Kind)
	if assert.EqualValues(t, 2, len(dict.Args)) {
		assert.EqualValues(t, reflect.TypeOf(""), dict.Args[0].Type)
		assert.EqualValues(t, reflect.TypeOf(User{}), dict.Args[1].Type)
	}
}

func TestDescribe_UnresolvedArgumentPlaceholder(t *testing.T) {
	res, reg := newResolver(t)

	desc := res.Describe(reflect.TypeOf(List[Account]{}), conf())
	if assert.EqualValues(t, 1, len(desc.Args)) {
		assert.Nil(t, desc.Args[0], "an argument nothing resolves stays a nil placeholder")
	}

	if err := reg.Register(reflect.TypeOf(Account{}), "Account"); err != nil {
		t.Fatalf("register: %v", err)
	}
	resolved := res.Describe(reflect.TypeOf(List[Account]{}), conf())
	assert.True(t, resolved != desc, "registration starts a fresh generation")
	if assert.EqualValues(t, 1, len(resolved.Args)) && assert.NotNil(t, resolved.Args[0]) {
		assert.EqualValues(t, reflect.TypeOf(Account{}), resolved.Args[0].Type)
	}
}

func TestDescribe_Identity(t *testing.T) {
	res, reg := newResolver(t)
	userType := reflect.TypeOf(User{})

	first := res.Describe(userType, conf())
	second := res.Describe(userType, conf())
	if first != second {
		t.Fatalf("expected the identical descriptor, got %p and %p", first, second)
	}
	assert.EqualValues(t, "User", first.Name)

	accountType := reflect.TypeOf(Account{})
	before := res.Describe(accountType, conf())
	assert.EqualValues(t, "Account", before.Name, "unregistered types fall back to the reflect name")

	if err := reg.Register(accountType, "billing.Account"); err != nil {
		t.Fatalf("register: %v", err)
	}
	after := res.Describe(accountType, conf())
	assert.True(t, after != before)
	assert.EqualValues(t, "billing.Account", after.Name)
}

func TestDescribe_SourceChain(t *testing.T) {
	res, _ := newResolver(t)

	desc := res.Describe(reflect.TypeOf(map[string][]User{}), conf())
	assert.EqualValues(t, apis.Container, desc.Kind)
	if !assert.EqualValues(t, 2, len(desc.Args)) {
		return
	}
	key, elem := desc.Args[0], desc.Args[1]
	assert.EqualValues(t, reflect.TypeOf(""), key.Type)
	if assert.EqualValues(t, 1, len(key.Source)) {
		assert.True(t, key.Source[0] == desc)
	}

	assert.EqualValues(t, reflect.TypeOf([]User{}), elem.Type)
	assert.EqualValues(t, apis.Container, elem.Kind)
	if assert.EqualValues(t, 1, len(elem.Source)) {
		assert.True(t, elem.Source[0] == desc)
	}
	if assert.EqualValues(t, 1, len(elem.Args)) {
		leaf := elem.Args[0]
		assert.EqualValues(t, reflect.TypeOf(User{}), leaf.Type)
		if assert.EqualValues(t, 1, len(leaf.Source)) {
			assert.EqualValues(t, reflect.TypeOf([]User{}), leaf.Source[0].Type)
		}
	}
}

func TestResolver_Elements(t *testing.T) {
	res, _ := newResolver(t)
	testCases := []struct {
		description string
		typ         reflect.Type
		expect      []reflect.Type
	}{
		{description: "slice element", typ: reflect.TypeOf([]User{}), expect: []reflect.Type{reflect.TypeOf(User{})}},
		{description: "named slice element", typ: reflect.TypeOf(Users{}), expect: []reflect.Type{reflect.TypeOf(User{})}},
		{description: "pointer unwraps first", typ: reflect.TypeOf(&Users{}), expect: []reflect.Type{reflect.TypeOf(User{})}},
		{description: "map yields key then element", typ: reflect.TypeOf(map[string]int{}), expect: []reflect.Type{reflect.TypeOf(""), reflect.TypeOf(0)}},
		{description: "array element", typ: reflect.TypeOf([4]byte{}), expect: []reflect.Type{reflect.TypeOf(byte(0))}},
		{description: "channel element", typ: reflect.TypeOf(make(chan int)), expect: []reflect.Type{reflect.TypeOf(0)}},
		{description: "scalar has no elements", typ: reflect.TypeOf(0), expect: nil},
		{description: "struct has no elements", typ: reflect.TypeOf(User{}), expect: nil},
	}
	for _, useCase := range testCases {
		actual := res.Elements(useCase.typ, conf())
		if useCase.expect == nil {
			assert.Nil(t, actual, useCase.description)
			continue
		}
		if !assert.EqualValues(t, len(useCase.expect), len(actual), useCase.description) {
			continue
		}
		for i, want := range useCase.expect {
			assert.EqualValues(t, want, actual[i].Type, useCase.description)
		}
	}
}
