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

package gojay

import (
	"github.com/francoispqt/gojay"

	"dirpx.dev/mirx/apis"
)

// Member adapts one apis.Member to gojay object encoding.
type Member struct {
	Member *apis.Member
}

// IsNil reports whether the wrapped member is absent.
func (m *Member) IsNil() bool {
	return m == nil || m.Member == nil
}

// MarshalJSONObject encodes the member fields.
func (m *Member) MarshalJSONObject(enc *gojay.Encoder) {
	if m.IsNil() {
		return
	}
	member := m.Member
	enc.StringKey("kind", member.Kind.String())
	enc.StringKey("name", member.Name)
	if member.Owner != nil {
		enc.StringKey("owner", member.Owner.String())
	}
	enc.IntKey("depth", member.Depth)
	enc.BoolKey("exported", member.Exported())
	if member.Type != nil {
		enc.StringKey("type", member.Type.String())
	}
	if len(member.Path) > 0 {
		enc.ArrayKey("path", gojay.EncodeArrayFunc(func(e *gojay.Encoder) {
			for _, index := range member.Path {
				e.AddInt(index)
			}
		}))
	}
}

// Members adapts a member slice to gojay array encoding.
type Members []*apis.Member

// IsNil reports whether the collection is empty.
func (m Members) IsNil() bool {
	return len(m) == 0
}

// MarshalJSONArray encodes each member; nil entries encode as null.
func (m Members) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range m {
		enc.AddObjectNullEmpty(&Member{Member: item})
	}
}
