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
	"sync"

	"github.com/viant/xunsafe"

	"dirpx.dev/mirx/apis"
	"dirpx.dev/mirx/config"
	uref "dirpx.dev/mirx/utils/reflect"
)

// NewEmbeddedStrategy creates an apis.Matcher that resolves members promoted
// from anonymous fields, walking breadth-first so the shallowest provider
// wins; ties at the same depth resolve in field declaration order.
func NewEmbeddedStrategy() apis.Matcher {
	return embeddedStrategy{}
}

// embeddedStrategy is the second chain step: embedded-type promotion tables.
type embeddedStrategy struct{}

// Ensure embeddedStrategy implements apis.Matcher.
var _ apis.Matcher = (*embeddedStrategy)(nil)

// embKey ensures memoization respects the config knob that bounds the walk.
type embKey struct {
	t        reflect.Type
	maxDepth int16
}

// embeddedTables caches promoted-member tables by (type, max depth).
var embeddedTables sync.Map // key: embKey, val: *memberTable

// TryMethod resolves a method promoted into t from an embedded type.
func (embeddedStrategy) TryMethod(t reflect.Type, name string, cfg apis.Config) (*apis.Member, bool) {
	tab := promotedFor(t, cfg)
	if tab == nil {
		return nil, false
	}
	if m, ok := tab.methods[name]; ok {
		return m, true
	}
	return nil, false
}

// TryField resolves a field promoted into t from an embedded struct.
func (embeddedStrategy) TryField(t reflect.Type, name string, cfg apis.Config) (*apis.Member, bool) {
	tab := promotedFor(t, cfg)
	if tab == nil {
		return nil, false
	}
	if m, ok := tab.fields[name]; ok {
		return m, true
	}
	return nil, false
}

// Promoted returns the members promoted into t's lookup base in walk order:
// shallowest first, field declaration order within a depth.
func Promoted(t reflect.Type, cfg apis.Config) []*apis.Member {
	tab := promotedFor(t, cfg)
	if tab == nil {
		return nil
	}
	out := make([]*apis.Member, len(tab.ordered))
	copy(out, tab.ordered)
	return out
}

// promotedFor returns the promotion table for t's lookup base, or nil when
// the base cannot embed anything.
func promotedFor(t reflect.Type, cfg apis.Config) *memberTable {
	if t == nil {
		return nil
	}
	base, err := uref.Base(t, cfg)
	if err != nil || base.Kind() != reflect.Struct {
		return nil
	}
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = config.DefaultMaxDepth
	}
	key := embKey{t: base, maxDepth: int16(maxDepth)}
	if v, ok := embeddedTables.Load(key); ok {
		return v.(*memberTable)
	}
	built := buildPromoted(base, maxDepth)
	actual, _ := embeddedTables.LoadOrStore(key, built)
	return actual.(*memberTable)
}

// embNode is a BFS position inside the embedding graph.
type embNode struct {
	// t is the node's member-carrying type (pointer hops already dereferenced).
	t     reflect.Type
	depth int
	// path is the field index chain from the lookup type to this node.
	path []int
	// base is the node's inline accessor relative to the nearest dereferenced
	// block; nil means the node starts at offset zero.
	base *xunsafe.Field
	// indirect lists the pointer hops to dereference before base applies,
	// outermost first.
	indirect []*xunsafe.Field
}

// buildPromoted walks t's anonymous fields breadth-first up to maxDepth and
// collects promoted methods and fields, first provider winning per name.
func buildPromoted(t reflect.Type, maxDepth int) *memberTable {
	tab := &memberTable{
		methods: map[string]*apis.Member{},
		fields:  map[string]*apis.Member{},
	}

	visited := map[reflect.Type]bool{t: true}
	queue := enqueueEmbedded(nil, embNode{t: t}, visited)

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		own := tableFor(node.t)
		for _, m := range own.ordered {
			promoted := promoteMember(node, m)
			if promoted == nil {
				continue
			}
			switch promoted.Kind {
			case apis.KindMethod:
				if _, exists := tab.methods[promoted.Name]; exists {
					continue
				}
				tab.methods[promoted.Name] = promoted
			case apis.KindField:
				if _, exists := tab.fields[promoted.Name]; exists {
					continue
				}
				tab.fields[promoted.Name] = promoted
			}
			tab.ordered = append(tab.ordered, promoted)
		}

		if node.depth < maxDepth {
			queue = enqueueEmbedded(queue, node, visited)
		}
	}
	return tab
}

// enqueueEmbedded appends the anonymous fields of node.t as BFS children,
// skipping types already reached through a shallower or earlier path.
func enqueueEmbedded(queue []embNode, node embNode, visited map[reflect.Type]bool) []embNode {
	if node.t.Kind() != reflect.Struct {
		return queue
	}
	for i := 0; i < node.t.NumField(); i++ {
		sf := node.t.Field(i)
		if !sf.Anonymous {
			continue
		}
		hop := xunsafe.NewField(sf)
		if node.base != nil {
			hop.Offset += node.base.Offset
		}
		child := embNode{
			depth: node.depth + 1,
			path:  childPath(node.path, i),
		}
		if sf.Type.Kind() == reflect.Ptr {
			// Dereferencing resets the inline offset to the pointed-to block.
			child.t = sf.Type.Elem()
			child.indirect = appendHop(node.indirect, hop)
		} else {
			child.t = sf.Type
			child.base = hop
			child.indirect = node.indirect
		}
		if visited[child.t] {
			continue
		}
		visited[child.t] = true
		queue = append(queue, child)
	}
	return queue
}

// promoteMember rebinds a member declared on an embedded node to the lookup
// type's coordinate space.
func promoteMember(node embNode, m *apis.Member) *apis.Member {
	switch m.Kind {
	case apis.KindMethod:
		return &apis.Member{
			Kind:   apis.KindMethod,
			Name:   m.Name,
			Owner:  m.Owner,
			Depth:  node.depth,
			Path:   node.path,
			Method: m.Method,
			Type:   m.Type,
		}
	case apis.KindField:
		leaf := xunsafe.NewField(*m.Field)
		if node.base != nil {
			leaf.Offset += node.base.Offset
		}
		return &apis.Member{
			Kind:     apis.KindField,
			Name:     m.Name,
			Owner:    m.Owner,
			Depth:    node.depth,
			Path:     childPath(node.path, m.Path[0]),
			Field:    m.Field,
			XField:   leaf,
			Indirect: node.indirect,
			Type:     m.Type,
		}
	}
	return nil
}

// childPath copies the parent path and appends one index; paths are shared
// across queue entries and must never alias.
func childPath(parent []int, index int) []int {
	path := make([]int, 0, len(parent)+1)
	path = append(path, parent...)
	path = append(path, index)
	return path
}

// appendHop copies the pointer-hop chain and appends one dereference.
func appendHop(chain []*xunsafe.Field, hop *xunsafe.Field) []*xunsafe.Field {
	next := make([]*xunsafe.Field, 0, len(chain)+1)
	next = append(next, chain...)
	next = append(next, hop)
	return next
}
