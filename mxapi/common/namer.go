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

// Namer identifies application-level entities by a stable, canonical name.
//
// # Overview
//
// Namer is the zero-reflection way for a domain type to declare the name it
// should be registered under. When a value implements Namer, registration
// code MUST take EntityName as the authoritative registry name and MUST NOT
// derive an alternative (a reflect-based "pkg.Type" identifier, a struct tag,
// or a case-converted variant) for that value.
//
// The name is a type-level fact, not an instance-level one: EntityName
// answers "what kind of entity is this", never "which one". Registry names
// are matched exactly, so the value returned here is what type expressions,
// alias targets and generic-argument tokens must spell to reach the type.
// A name that drifts between builds silently orphans every configuration
// that addresses it.
//
// # Performance
//
// EntityName sits on registration and resolution paths and is expected to be
// trivially cheap:
//
//   - MUST NOT block, perform I/O, or take locks.
//   - MUST be safe for concurrent use.
//   - SHOULD return a precomputed constant; deriving the name per call is
//     acceptable only when the derivation is allocation-free.
//
// # Usage
//
// A domain type picks a short dotted name and registers itself under it, so
// that name-based lookups and type-expression tokens can address the type:
//
//	type User struct {
//	    ID   string
//	    Name string
//	}
//
//	func (User) EntityName() string {
//	    return "domain.user"
//	}
//
//	u := User{}
//	_ = mirx.RegisterType(reflect.TypeOf(u), u.EntityName())
//	t, ok := mirx.LookupName("domain.user") // reflect.TypeOf(User{}), true
//
// # Naming guidelines
//
// A registry name is expected to be:
//
//   - Non-empty and stable across program executions (MUST).
//   - Unique within the registry it is registered into (MUST; conflicting
//     registrations fail).
//   - Lowercase, dot-separated and reasonably short (RECOMMENDED); the
//     registry itself imposes no syntax beyond non-emptiness.
type Namer interface {
	// EntityName returns the canonical, type-level name for this entity.
	//
	// # Contract
	//
	//   - The returned name MUST be non-empty.
	//   - The returned name MUST be the same for every value of the same
	//     concrete type; it MUST NOT read mutable instance state.
	//   - The implementation MUST be safe for concurrent calls from multiple
	//     goroutines and MUST NOT block.
	//
	// # Semantics
	//
	// The returned value is the registry name of the concrete type. It is the
	// string that LookupName resolves, that RegisterAlias may point extra
	// names at, and that unqualified tokens inside generic instantiation
	// names resolve through. Callers MAY treat the name as stable for the
	// lifetime of the process; cross-binary agreement is a deployment
	// concern, not something this interface promises.
	EntityName() string
}

// TypeNamer provides generic, type-aware naming for values of type T.
//
// # Overview
//
// TypeNamer[T] detaches the naming policy from the named type. Namer suits
// types that own their name; TypeNamer suits the opposite case, where one
// policy names many types, or where the policy is injected (per module, per
// tenant, per environment) and the domain types stay untouched.
//
// An implementation receives a value of T and MAY consult T itself, the
// value's dynamic type when T is an interface, or both. For names that end
// up in a registry the result SHOULD stay type-level all the same: two
// values of one concrete type SHOULD never produce two names.
//
// # Usage
//
// A single policy type can serve any T:
//
//	type DottedNamer[T any] struct{ Prefix string }
//
//	func (n DottedNamer[T]) EntityName(v T) string {
//	    return n.Prefix + "." + strings.ToLower(reflect.TypeOf(v).Name())
//	}
//
//	var namer TypeNamer[User] = DottedNamer[User]{Prefix: "domain"}
//	name := namer.EntityName(User{}) // "domain.user"
//
// Capturing a T and a value category (pointer vs value) reduces a
// TypeNamer to a plain Namer when a zero-argument form is needed.
type TypeNamer[T any] interface {
	// EntityName returns a canonical name for a value of type T.
	//
	// # Contract
	//
	//   - The returned name MUST satisfy the same syntax expectations as a
	//     Namer-provided name (non-empty, registry-addressable).
	//   - The returned name MUST be deterministic for a given input.
	//   - For registry use the result SHOULD depend only on the concrete
	//     type of v, never on its field values.
	//   - Implementations MUST be safe for concurrent calls and MUST NOT
	//     block or perform I/O.
	//
	// # Semantics
	//
	// The result serves wherever a registry name serves: as the entry name
	// for type and constructor lookups, as an alias target, and as the label
	// a logger or metric operation reports for the type. Names are
	// process-stable; nothing here coordinates naming across binaries.
	EntityName(v T) string
}

// NamerFunc adapts a plain function to the Namer interface.
//
// # Overview
//
// NamerFunc lets a bare func() string stand in where a Namer is required,
// for cases where naming behavior is passed around as a dependency instead
// of living as a method on the entity type. The Namer contract transfers to
// the wrapped function unchanged: non-empty, deterministic, type-level,
// concurrency-safe, non-blocking.
//
// # Usage
//
//	func accountName() string { return "billing.account" }
//
//	var namer Namer = NamerFunc(accountName)
//	name := namer.EntityName() // "billing.account"
type NamerFunc func() string

// EntityName implements Namer by invoking the wrapped function. The call adds
// one indirection and nothing else; any caching the function needs (a
// sync.Once, a package-level precomputed string) is the function's own
// responsibility and MUST be concurrency-safe.
func (f NamerFunc) EntityName() string {
	return f()
}
