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

// Describer extends Namer with human-oriented metadata about an entity kind.
//
// # Overview
//
// Describer carries the descriptive surface of an entity: a free-form
// description, a coarse category, and a schema version. None of these fields
// participate in lookups or member resolution; they exist for the humans and
// tools around the registry. Typical consumers are:
//
//   - Registry listings and developer tooling that render what a registered
//     type is for, grouped by category.
//   - Diagnostics that want to report which schema revision of a type was
//     involved in a failed invocation.
//   - Generated documentation for the application's registered type surface.
//
// Like Namer, all three methods are type-level: they describe the entity
// kind, never a particular instance.
//
// # Semantics
//
// The three values are independent and individually optional, with the
// conventions below:
//
//   - EntityDescription is prose. One or two sentences, no markup.
//   - EntityCategory is a grouping token from a small, application-defined
//     vocabulary ("domain", "dto", "config", "event").
//   - EntityVersion names the revision of the entity's shape, not of the
//     software. Bump it when fields are added, removed or re-typed.
//
// # Usage
//
//	type User struct {
//	    ID   string
//	    Name string
//	}
//
//	func (User) EntityName() string        { return "domain.user" }
//	func (User) EntityDescription() string { return "An application end user." }
//	func (User) EntityCategory() string    { return "domain" }
//	func (User) EntityVersion() string     { return "v2" }
type Describer interface {
	Namer

	// EntityDescription returns a short, human-readable description of the
	// entity kind.
	//
	// # Contract
	//
	//   - The returned text SHOULD be one or two plain sentences; it MUST NOT
	//     contain markup that renderers would need to strip.
	//   - The returned text MAY be empty when no description exists; callers
	//     MUST tolerate an empty string.
	//   - The implementation MUST be deterministic, concurrency-safe, and
	//     free of blocking operations or I/O.
	EntityDescription() string

	// EntityCategory returns the grouping token for the entity kind.
	//
	// # Contract
	//
	//   - The returned token SHOULD come from a small, application-defined
	//     vocabulary so that grouping stays useful.
	//   - The returned token MAY be empty for uncategorized entities; callers
	//     MUST tolerate an empty string.
	//   - Values SHOULD be short, lowercase identifiers without whitespace.
	//   - The implementation MUST be deterministic, concurrency-safe, and
	//     free of blocking operations or I/O.
	EntityCategory() string

	// EntityVersion returns the revision label of the entity's shape.
	//
	// # Contract
	//
	//   - The returned label identifies the structural revision of the entity
	//     kind (its fields and their types), not a software release.
	//   - The label MAY be empty for unversioned entities; callers MUST
	//     tolerate an empty string.
	//   - Within one EntityName, distinct shapes MUST NOT share a version
	//     label.
	//   - Callers MUST treat the label as opaque except for equality; no
	//     ordering is implied.
	//   - The implementation MUST be deterministic, concurrency-safe, and
	//     free of blocking operations or I/O.
	EntityVersion() string
}
