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

package common

// Identifier extends Namer with a per-instance identity.
//
// # Overview
//
// While Namer answers "what kind of entity is this?" with a stable,
// type-level name, Identifier additionally answers "which one is it?" with a
// per-instance identifier. Together the pair (EntityName, EntityID) forms a
// logical address for a single object:
//
//	domain.user / 7f7c9d42-0b1e-4c55-9a0b-2a1f1c9a3d10
//
// The split matters for member resolution and registries: caches, indexes
// and member tables are keyed by the type-level name, while audit trails,
// invocation logs and instance-scoped state are keyed by the full pair.
//
// # Semantics
//
// EntityName keeps the Namer contract unchanged: it is type-level, stable,
// and independent of instance state. EntityID is the opposite by intent. It
// identifies one instance among all instances of the same entity kind and
// MAY be derived from mutable or externally assigned state (database keys,
// UUIDs, natural keys).
//
// Implementations decide what "identity" means for their domain. The only
// structural requirement is that the pair (EntityName(), EntityID()) is
// unique for every distinct logical object the application cares to
// distinguish.
//
// # Usage
//
//	type User struct {
//	    ID   string
//	    Name string
//	}
//
//	func (User) EntityName() string  { return "domain.user" }
//	func (u User) EntityID() string  { return u.ID }
//
//	func audit(id Identifier, op string) {
//	    log.Printf("%s(%s): %s", id.EntityName(), id.EntityID(), op)
//	}
type Identifier interface {
	Namer

	// EntityID returns the identifier of this particular instance.
	//
	// # Contract
	//
	//   - The returned value MUST be non-empty for persisted or otherwise
	//     addressable instances.
	//   - The returned value MUST be unique among all instances sharing the
	//     same EntityName, within the application's logical namespace.
	//   - The returned value MAY change over the lifetime of an object only
	//     when the object's logical identity genuinely changes (for example,
	//     after first persistence assigns a generated key). Implementations
	//     SHOULD otherwise keep it stable.
	//   - Implementations MUST be safe for concurrent calls from multiple
	//     goroutines, assuming the instance itself is not concurrently
	//     mutated.
	//
	// # Performance and side-effects
	//
	//   - Implementations SHOULD be O(1) and allocation-free; returning a
	//     stored field is RECOMMENDED.
	//   - Implementations MUST NOT perform blocking operations or I/O.
	//     An identifier that requires a round-trip to obtain is not an
	//     identifier yet; assign it first, then expose it here.
	//
	// # Semantics
	//
	// Unlike EntityName, the identifier is instance-level and MAY encode
	// externally assigned state. Callers MUST NOT parse structure out of the
	// returned string; it is opaque except for equality comparison.
	EntityID() string
}
