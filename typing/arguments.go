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
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/mirx/apis"
	"dirpx.dev/mirx/config"
)

// argsKey memoizes (type, ancestor) resolutions; the registry handle, its
// generation and the walk bound take part.
type argsKey struct {
	t        reflect.Type
	ancestor reflect.Type
	reg      apis.Registry
	gen      uint64
	maxDepth int16
}

// argumentsCache caches resolved type arguments process-wide; successive
// calls with equal inputs return the identical slice.
var argumentsCache sync.Map // key: argsKey, val: []*apis.Descriptor

// TypeArguments computes the actual type arguments of t relative to the
// generic ancestor, walking t's embedding hierarchy breadth-first. An
// argument no registry entry or parse can produce stays a nil placeholder.
// The result is nil when t does not derive from ancestor; deriving from a
// non-generic ancestor yields an empty slice.
func (r *resolver) TypeArguments(t, ancestor reflect.Type, cfg apis.Config) []*apis.Descriptor {
	if t == nil || ancestor == nil {
		return nil
	}
	base := t
	for base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	key := argsKey{
		t:        base,
		ancestor: ancestor,
		reg:      r.reg,
		gen:      r.generation(),
		maxDepth: int16(cfg.MaxDepth),
	}
	if v, ok := argumentsCache.Load(key); ok {
		return v.([]*apis.Descriptor)
	}
	args := r.view(cfg).resolveArguments(base, ancestor)
	if args == nil && !cfg.CacheNegative {
		return nil
	}
	actual, _ := argumentsCache.LoadOrStore(key, args)
	return actual.([]*apis.Descriptor)
}

// resolveArguments walks base's embedding graph breadth-first until a node
// matches the ancestor.
func (r *resolver) resolveArguments(base, ancestor reflect.Type) []*apis.Descriptor {
	maxDepth := r.cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = config.DefaultMaxDepth
	}
	type node struct {
		t     reflect.Type
		depth int
	}
	visited := map[reflect.Type]bool{}
	queue := []node{{t: base}}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if visited[n.t] {
			continue
		}
		visited[n.t] = true
		if args, ok := r.matchAncestor(n.t, ancestor); ok {
			return args
		}
		if n.t.Kind() != reflect.Struct || n.depth >= maxDepth {
			continue
		}
		for i := 0; i < n.t.NumField(); i++ {
			sf := n.t.Field(i)
			if !sf.Anonymous {
				continue
			}
			ft := sf.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			queue = append(queue, node{t: ft, depth: n.depth + 1})
		}
	}
	return nil
}

// matchAncestor decides whether t satisfies the ancestor and, if so, what its
// actual type arguments are.
func (r *resolver) matchAncestor(t, ancestor reflect.Type) ([]*apis.Descriptor, bool) {
	if t == ancestor {
		return r.argumentsOf(t), true
	}
	if ancestor.Name() == "" {
		switch ancestor.Kind() {
		case reflect.Slice, reflect.Array, reflect.Chan, reflect.Map, reflect.Ptr:
			// A container ancestor matches on shape; the element types of
			// the subtype are its actual arguments.
			if t.Kind() != ancestor.Kind() {
				return nil, false
			}
			return r.containerElements(t), true
		case reflect.Interface:
			if t.Implements(ancestor) || reflect.PtrTo(t).Implements(ancestor) {
				return r.argumentsOf(ancestor), true
			}
			return nil, false
		}
		return nil, false
	}
	if ancestor.Kind() == reflect.Interface {
		if t.Implements(ancestor) || reflect.PtrTo(t).Implements(ancestor) {
			return r.argumentsOf(ancestor), true
		}
		return nil, false
	}
	if sameGeneric(t, ancestor) {
		return r.argumentsOf(t), true
	}
	return nil, false
}

// sameGeneric reports whether a and b instantiate the same generic type.
func sameGeneric(a, b reflect.Type) bool {
	aName, bName := a.Name(), b.Name()
	if strings.IndexByte(aName, '[') <= 0 || strings.IndexByte(bName, '[') <= 0 {
		return false
	}
	return a.PkgPath() == b.PkgPath() && genericBase(aName) == genericBase(bName)
}

// argumentsOf resolves t's own instantiation arguments; a derived non-generic
// type yields an empty slice.
func (r *resolver) argumentsOf(t reflect.Type) []*apis.Descriptor {
	if len(instantiationArgs(t.Name())) == 0 {
		return []*apis.Descriptor{}
	}
	return r.Describe(t, r.cfg).Args
}
