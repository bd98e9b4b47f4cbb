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
	"io"

	"github.com/francoispqt/gojay"

	"dirpx.dev/mirx/apis"
)

// EncodeDescriptor writes one descriptor as a JSON object.
func EncodeDescriptor(w io.Writer, descriptor *apis.Descriptor) error {
	return gojay.NewEncoder(w).EncodeObject(&Descriptor{Descriptor: descriptor})
}

// EncodeDescriptors writes descriptors as a JSON array.
func EncodeDescriptors(w io.Writer, descriptors ...*apis.Descriptor) error {
	return gojay.NewEncoder(w).EncodeArray(Descriptors(descriptors))
}

// EncodeMembers writes members as a JSON array.
func EncodeMembers(w io.Writer, members ...*apis.Member) error {
	return gojay.NewEncoder(w).EncodeArray(Members(members))
}
