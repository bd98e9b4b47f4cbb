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

import "reflect"

// Finder resolves members of a type by name and optional parameter signature.
// Resolution walks the exact type first, then embedded structs, then embedded
// and implemented interfaces, recursively; the shallowest match wins. Results
// are memoized process-wide: repeated lookups with equal inputs return the
// identical *Member.
//
// A miss is reported as (nil, false) and logged at debug level; it is never
// an error.
type Finder interface {
	// Method resolves a method by name. When argument types are given the
	// resolved method's parameters must accept them (exactly, or loosely
	// when Config.CoerceArguments is set); otherwise the lookup misses.
	Method(t reflect.Type, name string, args ...reflect.Type) (*Member, bool)

	// Field resolves a struct field by name, including fields promoted from
	// embedded structs.
	Field(t reflect.Type, name string) (*Member, bool)

	// Constructor resolves a registered factory function for t by argument
	// types. With no arguments and no registered factory, the implicit
	// zero-value constructor is returned.
	Constructor(t reflect.Type, args ...reflect.Type) (*Member, bool)

	// Members enumerates every resolvable method and field of t,
	// methods first, fields in walk order.
	Members(t reflect.Type) []*Member
}
