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

package reflect_test

import (
	"errors"
	"reflect"
	"runtime"
	"strconv"
	"sync"
	"testing"

	"dirpx.dev/mirx/apis"
	uref "dirpx.dev/mirx/utils/reflect"
)

// Local test types.
type Item struct{}
type Pair[T any] struct{}
type Box[T any] struct{ V T }

type roster []Item

func (roster) Size() int { return 0 }

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{
		MaxDepth:      8,
		MaxUnwrap:     8,
		MapPreferElem: true,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func TestNormalize_Containers(t *testing.T) {
	conf := cfg()
	itemType := reflect.TypeOf(Item{})

	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{"named stays", itemType, itemType},
		{"pointer", reflect.TypeOf(&Item{}), itemType},
		{"slice", reflect.TypeOf([]Item{}), itemType},
		{"array", reflect.TypeOf([2]Item{}), itemType},
		{"chan", reflect.TypeOf((chan Item)(nil)), itemType},
		{"pointer to slice", reflect.TypeOf(&[]Item{}), itemType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ, conf)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestNormalize_MapSides(t *testing.T) {
	type anon = struct{ X int }
	named := reflect.TypeOf(map[string]Item{})
	unnamedElem := reflect.TypeOf(map[string]anon{})

	cases := []struct {
		name       string
		typ        reflect.Type
		preferElem bool
		want       reflect.Type
	}{
		{"elem preferred", named, true, reflect.TypeOf(Item{})},
		{"key preferred", named, false, reflect.TypeOf("")},
		{"elem unnamed falls back to key", unnamedElem, true, reflect.TypeOf("")},
		{"key wins over unnamed elem", unnamedElem, false, reflect.TypeOf("")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conf := cfg(func(c *apis.Config) { c.MapPreferElem = tc.preferElem })
			got, err := uref.Normalize(tc.typ, conf)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestNormalize_GenericInstantiation(t *testing.T) {
	conf := cfg()

	// Instantiated generics are named types and survive normalization whole,
	// including when the carrier is a container of them.
	gt, err := uref.Normalize(reflect.TypeOf([]Pair[int]{}), conf)
	if err != nil {
		t.Fatalf("Normalize([]Pair[int]{}): %v", err)
	}
	if gt != reflect.TypeOf(Pair[int]{}) {
		t.Fatalf("Normalize([]Pair[int]{}) = %v, want Pair[int]", gt)
	}

	wt, err := uref.Normalize(reflect.TypeOf(Box[Pair[int]]{}), conf)
	if err != nil {
		t.Fatalf("Normalize(Box[Pair[int]]{}): %v", err)
	}
	if wt == nil || wt.Name() == "" {
		t.Fatalf("Normalize(Box[Pair[int]]{}) returned unnamed or nil type: %v", wt)
	}
}

func TestNormalize_UnwrapBound(t *testing.T) {
	type pp = **Item
	doublePtr := reflect.TypeOf((*pp)(nil)).Elem()

	if _, err := uref.Normalize(doublePtr, cfg(func(c *apis.Config) { c.MaxUnwrap = 1 })); err == nil {
		t.Fatalf("MaxUnwrap=1: expected error, got nil")
	}
	if got, err := uref.Normalize(doublePtr, cfg(func(c *apis.Config) { c.MaxUnwrap = 8 })); err != nil || got != reflect.TypeOf(Item{}) {
		t.Fatalf("MaxUnwrap=8: got (%v,%v), want (Item,nil)", got, err)
	}
	// A zero knob means "use the default", not "never unwrap".
	if got, err := uref.Normalize(doublePtr, cfg(func(c *apis.Config) { c.MaxUnwrap = 0 })); err != nil || got != reflect.TypeOf(Item{}) {
		t.Fatalf("MaxUnwrap=0: got (%v,%v), want (Item,nil)", got, err)
	}
}

func TestNormalize_Errors(t *testing.T) {
	if _, err := uref.Normalize(nil, cfg()); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("nil type: got %v, want ErrReflectNilType", err)
	}

	anon := struct{ X int }{}
	if _, err := uref.Normalize(reflect.TypeOf(anon), cfg()); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("anonymous struct: got %v, want ErrReflectTypeNotNamed", err)
	}
	if _, err := uref.Normalize(reflect.TypeOf(func() {}), cfg()); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("unnamed func: got %v, want ErrReflectTypeNotNamed", err)
	}
}

func TestBase_NamedTypesKeepThemselves(t *testing.T) {
	conf := cfg()

	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{"plain struct", reflect.TypeOf(Item{}), reflect.TypeOf(Item{})},
		// A named slice owns its method set, so it must not be unwrapped.
		{"named slice", reflect.TypeOf(roster{}), reflect.TypeOf(roster{})},
		{"named builtin", reflect.TypeOf(0), reflect.TypeOf(0)},
		{"ptr to struct", reflect.TypeOf(&Item{}), reflect.TypeOf(Item{})},
		{"unnamed slice", reflect.TypeOf([]Item{}), reflect.TypeOf(Item{})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Base(tc.typ, conf)
			if err != nil {
				t.Fatalf("Base(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Base(%v) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestBase_UnnamedMemberCarriers(t *testing.T) {
	conf := cfg()

	// Unnamed structs and interfaces still carry members and stay as-is.
	anonStruct := reflect.TypeOf(struct{ X int }{})
	if got, err := uref.Base(anonStruct, conf); err != nil || got != anonStruct {
		t.Fatalf("Base(anonymous struct) = (%v, %v), want identity", got, err)
	}
	anyType := reflect.TypeOf((*interface{})(nil)).Elem()
	if got, err := uref.Base(anyType, conf); err != nil || got != anyType {
		t.Fatalf("Base(interface{}) = (%v, %v), want identity", got, err)
	}

	// A bare unnamed func has no members to look up.
	if _, err := uref.Base(reflect.TypeOf(func() {}), conf); err == nil {
		t.Fatalf("Base(unnamed func): expected error, got nil")
	}
	if _, err := uref.Base(nil, conf); err == nil {
		t.Fatalf("Base(nil): expected error, got nil")
	}
}

// Normalize is pure; this hammers it from many goroutines to catch any
// accidental shared state sneaking in later.
func TestNormalize_Concurrent(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeOf(Item{}),
		reflect.TypeOf(&Item{}),
		reflect.TypeOf([]Item{}),
		reflect.TypeOf(map[string]Item{}),
		reflect.TypeOf(Pair[int]{}),
		reflect.TypeOf(Box[Pair[int]]{}),
		reflect.TypeOf(0),
	}
	conf := cfg()

	workers := runtime.GOMAXPROCS(0) * 4
	iters := 2000

	var wg sync.WaitGroup
	wg.Add(workers)

	errCh := make(chan error, workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				tt := types[i%len(types)]
				rt, err := uref.Normalize(tt, conf)
				if err != nil {
					errCh <- err
					return
				}
				if rt == nil || rt.Name() == "" {
					errCh <- errors.New("got unnamed or nil type")
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errCh)
	for e := range errCh {
		t.Fatal(e)
	}
}

func BenchmarkNormalize_ByType(b *testing.B) {
	types := []reflect.Type{
		reflect.TypeOf(Item{}),
		reflect.TypeOf(&Item{}),
		reflect.TypeOf([]Item{}),
		reflect.TypeOf(map[string]Item{}),
		reflect.TypeOf(Pair[int]{}),
		reflect.TypeOf(Box[Pair[int]]{}),
		reflect.TypeOf(0),
	}
	conf := cfg()

	for _, t0 := range types {
		_, _ = uref.Normalize(t0, conf)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = uref.Normalize(types[i%len(types)], conf)
	}
}

func BenchmarkNormalize_VariousConfigs(b *testing.B) {
	tMap := reflect.TypeOf(map[string]Item{})
	configs := []apis.Config{
		cfg(),
		cfg(func(c *apis.Config) { c.MapPreferElem = false }),
		cfg(func(c *apis.Config) { c.MaxUnwrap = 1 }),
	}

	for _, c := range configs {
		b.Run(benchName(c), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = uref.Normalize(tMap, c)
			}
		})
	}
}

// benchName builds a compact sub-benchmark name like "M-E-U8".
func benchName(c apis.Config) string {
	m := "E"
	if !c.MapPreferElem {
		m = "K"
	}
	u := c.MaxUnwrap
	if u <= 0 {
		u = 8
	}
	return "M-" + m + "-U" + strconv.Itoa(u)
}
