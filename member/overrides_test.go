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

package member_test

import (
	"reflect"
	"testing"

	"dirpx.dev/mirx/apis"
	"dirpx.dev/mirx/member"
	"dirpx.dev/mirx/strategy"
)

type device struct{}

func (d device) Ping() string { return "device" }

type gateway struct {
	device
}

func (g gateway) Ping() string { return "gateway" }

type farm struct {
	gateway
}

func (f farm) Ping() string { return "farm" }

type stranger struct{}

func (s stranger) Ping() string { return "stranger" }

type pinger interface {
	Ping() string
}

func declaredMethod(t *testing.T, owner reflect.Type, name string) *apis.Member {
	t.Helper()
	for _, m := range strategy.Declared(owner, conf()) {
		if m.Kind == apis.KindMethod && m.Name == name {
			return m
		}
	}
	t.Fatalf("no declared method %q on %v", name, owner)
	return nil
}

func promotedMethod(t *testing.T, owner reflect.Type, name string) *apis.Member {
	t.Helper()
	for _, m := range strategy.Promoted(owner, conf()) {
		if m.Kind == apis.KindMethod && m.Name == name {
			return m
		}
	}
	t.Fatalf("no promoted method %q on %v", name, owner)
	return nil
}

func TestOverrides(t *testing.T) {
	var (
		gatewayType = reflect.TypeOf(gateway{})
		farmType    = reflect.TypeOf(farm{})
		pingerType  = reflect.TypeOf((*pinger)(nil)).Elem()

		gatewayPing  = declaredMethod(t, gatewayType, "Ping")
		devicePing   = promotedMethod(t, gatewayType, "Ping")
		farmPing     = declaredMethod(t, farmType, "Ping")
		strangerPing = declaredMethod(t, reflect.TypeOf(stranger{}), "Ping")
		ifacePing    = declaredMethod(t, pingerType, "Ping")

		customerDescribe = declaredMethod(t, reflect.TypeOf(Customer{}), "Describe")
		entityDescribe   = promotedMethod(t, reflect.TypeOf(Customer{}), "Describe")
	)
	if devicePing.Owner != reflect.TypeOf(device{}) {
		t.Fatalf("fixture drift: expected device to provide the promoted Ping")
	}

	testCases := []struct {
		description string
		a, b        *apis.Member
		expect      bool
	}{
		{
			description: "nil members never override",
			a:           nil,
			b:           gatewayPing,
		},
		{
			description: "a member never overrides itself",
			a:           gatewayPing,
			b:           gatewayPing,
		},
		{
			description: "declaration over a direct embedding",
			a:           gatewayPing,
			b:           devicePing,
			expect:      true,
		},
		{
			description: "declaration over a transitive embedding",
			a:           farmPing,
			b:           devicePing,
			expect:      true,
		},
		{
			description: "the embedded declaration does not override downward",
			a:           devicePing,
			b:           gatewayPing,
		},
		{
			description: "implementing an interface method",
			a:           gatewayPing,
			b:           ifacePing,
			expect:      true,
		},
		{
			description: "signatures have to match",
			a:           customerDescribe,
			b:           entityDescribe,
		},
		{
			description: "unrelated declarations do not override",
			a:           strangerPing,
			b:           devicePing,
		},
		{
			description: "unexported members do not take part",
			a: &apis.Member{
				Kind:  apis.KindMethod,
				Name:  "ping",
				Owner: gatewayType,
				Type:  gatewayPing.Type,
			},
			b: &apis.Member{
				Kind:  apis.KindMethod,
				Name:  "ping",
				Owner: reflect.TypeOf(device{}),
				Type:  gatewayPing.Type,
			},
		},
		{
			description: "constructors do not take part",
			a: &apis.Member{
				Kind:  apis.KindConstructor,
				Name:  "Ping",
				Owner: gatewayType,
				Type:  gatewayPing.Type,
			},
			b: devicePing,
		},
		{
			description: "equal owners cannot override each other",
			a: &apis.Member{
				Kind:  apis.KindMethod,
				Name:  "Ping",
				Owner: gatewayType,
				Type:  gatewayPing.Type,
			},
			b: &apis.Member{
				Kind:  apis.KindMethod,
				Name:  "Ping",
				Owner: gatewayType,
				Type:  gatewayPing.Type,
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			if got := member.Overrides(testCase.a, testCase.b); got != testCase.expect {
				t.Fatalf("expected %v, got %v", testCase.expect, got)
			}
		})
	}
}

func TestOverrides_SelfEmbeddingTerminates(t *testing.T) {
	a := declaredMethod(t, reflect.TypeOf(ring{}), "Spin")
	b := &apis.Member{Kind: apis.KindMethod, Name: "Spin", Owner: reflect.TypeOf(spinner{}), Type: a.Type}
	if member.Overrides(a, b) {
		t.Fatalf("no embedding relation, expected false")
	}
}

// ring embeds itself through a pointer; the walk has to terminate.
type ring struct {
	*ring
	Label string
}

func (r ring) Spin() string { return r.Label }

type spinner struct{}

func (s spinner) Spin() string { return "spinner" }
