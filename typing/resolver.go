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

package typing

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/mirx/apis"
	"dirpx.dev/mirx/logger"
)

// errUnknownTypeName aborts expression parsing when an identifier matches no
// registry entry.
var errUnknownTypeName = errors.New("mirx(typing): unknown type name")

// Option customizes resolvers created by this package.
type Option func(*options)

type options struct {
	log *logger.Adapter
}

func newOptions(opts ...Option) *options {
	o := &options{log: defaultLog()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logging adapter; nil restores the env-gated default.
func WithLogger(adapter *logger.Adapter) Option {
	return func(o *options) {
		if adapter == nil {
			adapter = defaultLog()
		}
		o.log = adapter
	}
}

func defaultLog() *logger.Adapter {
	return logger.Default()
}

// New constructs an apis.Resolver answering classification and type-argument
// questions, with descriptors and argument resolutions memoized process-wide.
func New(cfg apis.Config, reg apis.Registry, opts ...Option) apis.Resolver {
	o := newOptions(opts...)
	return &resolver{cfg: cfg, reg: reg, log: o.log}
}

type resolver struct {
	cfg apis.Config
	reg apis.Registry
	log *logger.Adapter
}

var _ apis.Resolver = (*resolver)(nil)

// view returns a copy bound to a per-call configuration.
func (r *resolver) view(cfg apis.Config) *resolver {
	return &resolver{cfg: cfg, reg: r.reg, log: r.log}
}

func (r *resolver) generation() uint64 {
	if r.reg == nil {
		return 0
	}
	return r.reg.Generation()
}

// descKey memoizes descriptors per registry state, so registrations that
// change display names or resolvable arguments take effect.
type descKey struct {
	t   reflect.Type
	reg apis.Registry
	gen uint64
}

// descriptorCache caches root descriptors by (type, registry, generation).
var descriptorCache sync.Map // key: descKey, val: *apis.Descriptor

// Describe classifies t and resolves its type arguments. Successive calls
// with an unchanged registry return the identical descriptor.
func (r *resolver) Describe(t reflect.Type, cfg apis.Config) *apis.Descriptor {
	if t == nil {
		return &apis.Descriptor{Kind: apis.Unknown}
	}
	key := descKey{t: t, reg: r.reg, gen: r.generation()}
	if v, ok := descriptorCache.Load(key); ok {
		return v.(*apis.Descriptor)
	}
	built := r.view(cfg).buildDescriptor(t)
	actual, _ := descriptorCache.LoadOrStore(key, built)
	return actual.(*apis.Descriptor)
}

// Elements resolves the element descriptors of a container type, unwrapping
// pointers first: slice, array and chan yield the element, maps yield key
// then element. Non-containers yield nil.
func (r *resolver) Elements(t reflect.Type, cfg apis.Config) []*apis.Descriptor {
	if t == nil {
		return nil
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return r.view(cfg).containerElements(t)
}

func (r *resolver) buildDescriptor(t reflect.Type) *apis.Descriptor {
	desc := &apis.Descriptor{Type: t, Name: r.displayName(t), Kind: classify(t)}
	switch desc.Kind {
	case apis.Parameterized:
		for _, token := range instantiationArgs(t.Name()) {
			at := r.resolveToken(token)
			if at == nil {
				if r.cfg.Debug {
					r.log.Logf("mirx: unresolved type argument %q of %v", token, t)
				}
				desc.Args = append(desc.Args, nil)
				continue
			}
			desc.Args = append(desc.Args, r.childOf(desc, at))
		}
	case apis.Container:
		desc.Args = r.describedElements(desc, t)
	}
	return desc
}

// classify maps a reflect.Type onto the descriptor taxonomy. Named types win
// over their kind: a named slice is Plain, an instantiated generic is
// Parameterized regardless of its underlying kind.
func classify(t reflect.Type) apis.TypeKind {
	if t == nil {
		return apis.Unknown
	}
	if name := t.Name(); name != "" {
		if strings.IndexByte(name, '[') > 0 {
			return apis.Parameterized
		}
		switch t.Kind() {
		case reflect.Interface:
			return apis.Interface
		case reflect.Func:
			return apis.Function
		}
		return apis.Plain
	}
	switch t.Kind() {
	case reflect.Interface:
		return apis.Interface
	case reflect.Func:
		return apis.Function
	case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return apis.Container
	}
	return apis.Plain
}

// displayName prefers the registered name, then the reflect name, then the
// unnamed type's syntax. The registry is consulted for named types only so
// that a container does not inherit the name of its element entry.
func (r *resolver) displayName(t reflect.Type) string {
	if t.Name() == "" {
		return t.String()
	}
	if r.reg != nil {
		if name, ok := r.reg.Lookup(t); ok {
			return name
		}
	}
	return t.Name()
}

// childOf derives a descriptor for t reached from parent, recording the
// derivation chain most recent parent first.
func (r *resolver) childOf(parent *apis.Descriptor, t reflect.Type) *apis.Descriptor {
	child := *r.Describe(t, r.cfg)
	chain := make([]*apis.Descriptor, 0, len(parent.Source)+1)
	chain = append(chain, parent)
	chain = append(chain, parent.Source...)
	child.Source = chain
	return &child
}

// describedElements lists a container's constituents as the parent's Args.
func (r *resolver) describedElements(parent *apis.Descriptor, t reflect.Type) []*apis.Descriptor {
	switch t.Kind() {
	case reflect.Map:
		return []*apis.Descriptor{r.childOf(parent, t.Key()), r.childOf(parent, t.Elem())}
	case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
		return []*apis.Descriptor{r.childOf(parent, t.Elem())}
	}
	return nil
}

// containerElements resolves elements for both unnamed containers and named
// types with a container kind.
func (r *resolver) containerElements(t reflect.Type) []*apis.Descriptor {
	switch t.Kind() {
	case reflect.Map, reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
		return r.describedElements(r.Describe(t, r.cfg), t)
	}
	return nil
}
