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

// Config carries read-only lookup and invocation knobs that influence
// matchers, the finder and the typing resolver.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// MaxDepth limits how deep the embedded-field walk descends when
	// searching for promoted methods and fields.
	MaxDepth int

	// MaxUnwrap limits container unwrapping depth (ptr/slice/array/chan/map)
	// when normalizing a lookup target to its nearest named type.
	MaxUnwrap int

	// MapPreferElem controls which side of map[K]V is considered “primary”
	// when searching for a nearest named inner type. If true, prefer V; otherwise K.
	MapPreferElem bool

	// LooseNameMatch enables a case-format fallback: when an exact member
	// name misses, the finder retries with case-converted variants
	// (e.g. "user_id" matching field "UserID").
	LooseNameMatch bool

	// CoerceArguments allows assignable or convertible invocation arguments
	// where exact parameter types do not match.
	CoerceArguments bool

	// AllowUnexported permits reading and writing unexported struct fields
	// through unsafe field pointers. When false, such access yields an
	// accessibility error instead.
	AllowUnexported bool

	// CacheNegative controls whether lookup misses are memoized alongside
	// hits, keeping repeated misses cheap.
	CacheNegative bool

	// Debug turns on verbose logging of lookups, misses and invocations.
	Debug bool
}
