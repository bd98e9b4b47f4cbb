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

	"dirpx.dev/mirx/apis"
	"dirpx.dev/mirx/logger"
	"dirpx.dev/mirx/strategy"
	uref "dirpx.dev/mirx/utils/reflect"
)

// New constructs an apis.Finder that resolves members through a matcher chain
// (Declared -> Embedded -> CaseFormat unless overridden) and memoizes results
// process-wide. Repeated lookups with equal inputs return the identical
// *Member; misses are reported as (nil, false) and never as errors.
func New(cfg apis.Config, reg apis.Registry, opts ...Option) apis.Finder {
	o := newOptions(opts...)
	chain := ""
	for _, m := range o.matchers {
		chain += reflect.TypeOf(m).String() + "|"
	}
	return &finder{
		cfg:      cfg,
		reg:      reg,
		matchers: o.matchers,
		chain:    chain,
		log:      o.log,
		lookups:  o.lookups(),
	}
}

// finder resolves and memoizes member handles.
type finder struct {
	// cfg holds the knobs that participate in cache keys.
	cfg apis.Config
	// reg supplies registered constructors; may be nil.
	reg apis.Registry
	// matchers run in order; the first hit wins.
	matchers []apis.Matcher
	// chain discriminates cache entries of finders with custom matchers.
	chain string
	// log receives lookup events.
	log *logger.Adapter
	// lookups counts Hit/Miss events.
	lookups *logger.CounterAdapter
}

// Ensure finder implements apis.Finder.
var _ apis.Finder = (*finder)(nil)

// methodKey ensures memoization respects all config knobs that affect method
// resolution.
type methodKey struct {
	t          reflect.Type
	name       string
	signature  string
	chain      string
	loose      bool
	coerce     bool
	maxDepth   int16
	maxUnwrap  int16
	preferElem bool
}

// fieldKey ensures memoization respects all config knobs that affect field
// resolution.
type fieldKey struct {
	t          reflect.Type
	name       string
	chain      string
	loose      bool
	maxDepth   int16
	maxUnwrap  int16
	preferElem bool
}

// ctorKey carries the registry handle and its generation so distinct
// registries stay isolated and later registrations invalidate memoized misses.
type ctorKey struct {
	t          reflect.Type
	signature  string
	reg        apis.Registry
	generation uint64
	coerce     bool
}

var (
	// methodCache caches resolved methods by (type, name, signature, knobs).
	methodCache sync.Map // key: methodKey, val: *apis.Member
	// fieldCache caches resolved fields by (type, name, knobs).
	fieldCache sync.Map // key: fieldKey, val: *apis.Member
	// constructorCache caches resolved factories by (type, signature, generation).
	constructorCache sync.Map // key: ctorKey, val: *apis.Member
)

// missMember marks memoized lookup misses.
var missMember = &apis.Member{}

// Method resolves a method of t by name; non-empty args additionally require
// an accepting parameter list.
func (f *finder) Method(t reflect.Type, name string, args ...reflect.Type) (*apis.Member, bool) {
	if t == nil || name == "" {
		return nil, false
	}
	key := methodKey{
		t:          t,
		name:       name,
		signature:  signatureOf(args),
		chain:      f.chain,
		loose:      f.cfg.LooseNameMatch,
		coerce:     f.cfg.CoerceArguments,
		maxDepth:   int16(f.cfg.MaxDepth),
		maxUnwrap:  int16(f.cfg.MaxUnwrap),
		preferElem: f.cfg.MapPreferElem,
	}
	if v, ok := methodCache.Load(key); ok {
		return f.observe(t, "method", name, v.(*apis.Member))
	}

	var found *apis.Member
	for _, matcher := range f.matchers {
		m, ok := matcher.TryMethod(t, name, f.cfg)
		if !ok {
			continue
		}
		if len(args) > 0 && !signatureAccepts(m.Type, args, f.cfg.CoerceArguments) {
			// A shadowed member deeper in the chain may still accept.
			continue
		}
		found = m
		break
	}

	if found == nil {
		if f.cfg.CacheNegative {
			methodCache.Store(key, missMember)
		}
		return f.observe(t, "method", name, nil)
	}
	actual, _ := methodCache.LoadOrStore(key, found)
	return f.observe(t, "method", name, actual.(*apis.Member))
}

// Field resolves a struct field of t by name, promoted fields included.
func (f *finder) Field(t reflect.Type, name string) (*apis.Member, bool) {
	if t == nil || name == "" {
		return nil, false
	}
	key := fieldKey{
		t:          t,
		name:       name,
		chain:      f.chain,
		loose:      f.cfg.LooseNameMatch,
		maxDepth:   int16(f.cfg.MaxDepth),
		maxUnwrap:  int16(f.cfg.MaxUnwrap),
		preferElem: f.cfg.MapPreferElem,
	}
	if v, ok := fieldCache.Load(key); ok {
		return f.observe(t, "field", name, v.(*apis.Member))
	}

	var found *apis.Member
	for _, matcher := range f.matchers {
		if m, ok := matcher.TryField(t, name, f.cfg); ok {
			found = m
			break
		}
	}

	if found == nil {
		if f.cfg.CacheNegative {
			fieldCache.Store(key, missMember)
		}
		return f.observe(t, "field", name, nil)
	}
	actual, _ := fieldCache.LoadOrStore(key, found)
	return f.observe(t, "field", name, actual.(*apis.Member))
}

// Constructor resolves a registered factory for t accepting the given
// argument types. With no factories registered and no arguments, the implicit
// zero-value constructor is returned.
func (f *finder) Constructor(t reflect.Type, args ...reflect.Type) (*apis.Member, bool) {
	if t == nil {
		return nil, false
	}
	base, err := uref.Base(t, f.cfg)
	if err != nil {
		return f.observe(t, "constructor", "", nil)
	}
	var generation uint64
	if f.reg != nil {
		generation = f.reg.Generation()
	}
	key := ctorKey{
		t:          base,
		signature:  signatureOf(args),
		reg:        f.reg,
		generation: generation,
		coerce:     f.cfg.CoerceArguments,
	}
	if v, ok := constructorCache.Load(key); ok {
		return f.observe(t, "constructor", base.Name(), v.(*apis.Member))
	}

	found := f.resolveConstructor(base, args)
	if found == nil {
		if f.cfg.CacheNegative {
			constructorCache.Store(key, missMember)
		}
		return f.observe(t, "constructor", base.Name(), nil)
	}
	actual, _ := constructorCache.LoadOrStore(key, found)
	return f.observe(t, "constructor", base.Name(), actual.(*apis.Member))
}

// resolveConstructor picks the first registered factory accepting args, in
// registration order.
func (f *finder) resolveConstructor(base reflect.Type, args []reflect.Type) *apis.Member {
	var fns []reflect.Value
	if f.reg != nil {
		fns = f.reg.Constructors(base)
	}
	for _, fn := range fns {
		if signatureAccepts(fn.Type(), args, f.cfg.CoerceArguments) {
			return &apis.Member{
				Kind:  apis.KindConstructor,
				Name:  base.Name(),
				Owner: base,
				Func:  fn,
				Type:  fn.Type(),
			}
		}
	}
	if len(fns) == 0 && len(args) == 0 {
		return &apis.Member{
			Kind:  apis.KindConstructor,
			Name:  base.Name(),
			Owner: base,
			Type:  reflect.FuncOf(nil, []reflect.Type{base}, false),
		}
	}
	return nil
}

// Members enumerates t's methods and fields: declared members first, then
// promoted ones not shadowed at a shallower depth.
func (f *finder) Members(t reflect.Type) []*apis.Member {
	if t == nil {
		return nil
	}
	type slot struct {
		kind apis.Kind
		name string
	}
	seen := map[slot]bool{}
	var methods, fields []*apis.Member
	collect := func(members []*apis.Member) {
		for _, m := range members {
			s := slot{kind: m.Kind, name: m.Name}
			if seen[s] {
				continue
			}
			seen[s] = true
			switch m.Kind {
			case apis.KindMethod:
				methods = append(methods, m)
			case apis.KindField:
				fields = append(fields, m)
			}
		}
	}
	collect(strategy.Declared(t, f.cfg))
	collect(strategy.Promoted(t, f.cfg))
	return append(methods, fields...)
}

// observe reports the lookup outcome to the logging and metrics hooks and
// folds the miss sentinel back into the (nil, false) contract.
func (f *finder) observe(t reflect.Type, kind, name string, m *apis.Member) (*apis.Member, bool) {
	hit := m != nil && m != missMember
	f.log.MemberLookup(t, kind, name, hit)
	if !hit {
		if f.cfg.Debug {
			f.log.Logf("mirx: no %v %q on %v", kind, name, t)
		}
		f.lookups.IncrementValue(logger.Miss)
		return nil, false
	}
	f.lookups.IncrementValue(logger.Hit)
	return m, true
}

// signatureOf renders argument types as a stable cache-key fragment.
func signatureOf(args []reflect.Type) string {
	if len(args) == 0 {
		return ""
	}
	out := ""
	for i, arg := range args {
		if i > 0 {
			out += ","
		}
		if arg == nil {
			out += "<nil>"
			continue
		}
		out += arg.String()
	}
	return out
}

// signatureAccepts reports whether a func type (receiver already dropped)
// accepts the given argument types.
func signatureAccepts(ft reflect.Type, args []reflect.Type, coerce bool) bool {
	if ft == nil || ft.Kind() != reflect.Func {
		return false
	}
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return false
		}
	} else if len(args) != fixed {
		return false
	}
	for i, arg := range args {
		var want reflect.Type
		if i < fixed {
			want = ft.In(i)
		} else {
			want = ft.In(ft.NumIn() - 1).Elem()
		}
		if !argumentAccepts(want, arg, coerce) {
			return false
		}
	}
	return true
}

// argumentAccepts reports whether a value of type got can be passed where
// want is expected. A nil got stands for an untyped nil argument.
func argumentAccepts(want, got reflect.Type, coerce bool) bool {
	if got == nil {
		return nilable(want)
	}
	if got == want || got.AssignableTo(want) {
		return true
	}
	if !coerce {
		return false
	}
	if got == mapStringIfaceType && structish(want) {
		return true
	}
	return got.ConvertibleTo(want) && compatibleConversion(got, want)
}

var mapStringIfaceType = reflect.TypeOf(map[string]interface{}{})

// nilable reports whether t can hold an untyped nil.
func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}
