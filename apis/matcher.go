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

package apis

import (
	"reflect"
)

// Matcher is a pluggable member-matching step. A Finder chains multiple
// matchers in order (e.g., Declared -> Embedded -> CaseFormat).
type Matcher interface {
	// TryMethod attempts to resolve a method of t by name according to cfg.
	// It returns (member, true) if handled; otherwise (nil, false) to fall through.
	TryMethod(t reflect.Type, name string, cfg Config) (*Member, bool)

	// TryField attempts to resolve a struct field of t by name.
	TryField(t reflect.Type, name string, cfg Config) (*Member, bool)
}
