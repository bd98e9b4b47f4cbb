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

// Registry provides a bidirectional type/name lookup plus per-type
// constructor functions. Keep it minimal so implementations can be lock-free
// or sync.Map-backed.
type Registry interface {
	// Register associates a (nearest named) reflect.Type with a fixed name.
	// Implementations should be idempotent; conflicting re-registrations fail.
	Register(t reflect.Type, name string) error
	// RegisterAlias adds an extra name resolving to an already registered one.
	RegisterAlias(alias, name string) error
	// RegisterConstructor adds a factory function for t. The function's
	// first result must be assignable to t or to *t; an optional second
	// result may be an error.
	RegisterConstructor(t reflect.Type, fn any) error

	// Lookup returns a name for a type if present.
	Lookup(t reflect.Type) (name string, ok bool)
	// LookupName returns the type registered under name, consulting exact
	// names first, then aliases, then qualified keys.
	LookupName(name string) (t reflect.Type, ok bool)
	// Constructors returns a snapshot of the factory functions registered
	// for t, in registration order.
	Constructors(t reflect.Type) []reflect.Value

	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered type entries.
	Count() int
	// Generation returns a monotonic change counter, bumped on every
	// successful registration. Caches key on it to notice invalidation.
	Generation() uint64
	// Reset clears all registered entries, aliases and constructors.
	Reset()
}

// Entry is a single (type, name) association in a Registry snapshot.
type Entry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Name is the associated name.
	Name string
	// Key is the qualified "pkgpath.Name" form used for cross-package
	// disambiguation.
	Key string
}
