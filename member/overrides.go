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

	"dirpx.dev/mirx/apis"
	"dirpx.dev/mirx/config"
)

// Overrides reports whether method a redeclares method b: same exported name
// and signature, distinct declaring types, with a's owner embedding b's owner
// or implementing it when b is declared on an interface. A member never
// overrides itself, and fields and constructors never take part.
func Overrides(a, b *apis.Member) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	if a.Kind != apis.KindMethod || b.Kind != apis.KindMethod {
		return false
	}
	if a.Name != b.Name || !a.Exported() || !b.Exported() {
		return false
	}
	if a.Owner == nil || b.Owner == nil || a.Owner == b.Owner {
		return false
	}
	if a.Type == nil || b.Type == nil || a.Type != b.Type {
		return false
	}
	if b.Owner.Kind() == reflect.Interface {
		return a.Owner.Implements(b.Owner) || reflect.PtrTo(a.Owner).Implements(b.Owner)
	}
	return embeds(a.Owner, b.Owner, 0)
}

// embeds reports whether outer reaches inner through anonymous fields. Depth
// is capped so self-referential embeddings terminate.
func embeds(outer, inner reflect.Type, depth int) bool {
	if depth > config.DefaultMaxDepth || outer.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < outer.NumField(); i++ {
		sf := outer.Field(i)
		if !sf.Anonymous {
			continue
		}
		ft := sf.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft == inner {
			return true
		}
		if embeds(ft, inner, depth+1) {
			return true
		}
	}
	return false
}
