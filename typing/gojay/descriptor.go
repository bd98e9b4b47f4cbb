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

// Descriptor adapts one apis.Descriptor to gojay object encoding. The
// derivation chain encodes as names only; arguments encode recursively, with
// nil placeholders kept as JSON null.
type Descriptor struct {
	Descriptor *apis.Descriptor
}

// IsNil reports whether the wrapped descriptor is absent.
func (d *Descriptor) IsNil() bool {
	return d == nil || d.Descriptor == nil
}

// MarshalJSONObject encodes the descriptor fields.
func (d *Descriptor) MarshalJSONObject(enc *gojay.Encoder) {
	if d.IsNil() {
		return
	}
	desc := d.Descriptor
	enc.StringKey("name", desc.Name)
	enc.StringKey("kind", desc.Kind.String())
	if desc.Type != nil {
		enc.StringKey("type", desc.Type.String())
	}
	if len(desc.Args) > 0 {
		enc.ArrayKey("args", Descriptors(desc.Args))
	}
	if len(desc.Source) > 0 {
		enc.ArrayKey("source", gojay.EncodeArrayFunc(func(e *gojay.Encoder) {
			for _, source := range desc.Source {
				if source == nil {
					continue
				}
				e.AddString(source.Name)
			}
		}))
	}
}

// Descriptors adapts a descriptor slice to gojay array encoding.
type Descriptors []*apis.Descriptor

// IsNil reports whether the collection is empty.
func (d Descriptors) IsNil() bool {
	return len(d) == 0
}

// MarshalJSONArray encodes each descriptor; nil entries encode as null.
func (d Descriptors) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range d {
		enc.AddObjectNullEmpty(&Descriptor{Descriptor: item})
	}
}
