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

// Package mirx provides a global, process-wide reflection member service.
//
// mirx is responsible for answering "which method, field or constructor does
// this type have under this name?" and "which type arguments does this type
// carry relative to that generic ancestor?" without paying the reflect walk
// on every call. Lookups are memoized process-wide, so handing the same
// question to mirx twice returns the identical handle.
//
// # Design
//
// The core of mirx is a read-mostly global snapshot (state). The snapshot
// holds five things:
//
//   - Config: rules that control how members are resolved and invoked
//     (e.g. how deep to walk embedded types, whether unexported members
//     are reachable, whether arguments are coerced, etc.).
//
//   - Registry: a process-wide mapping between Go types, explicit names and
//     constructor functions. This is how you attach stable names to domain
//     entities ("Memo", "billing.Account") and how factory functions become
//     resolvable constructors. The registry can be written to at runtime
//     (Register, RegisterAlias, RegisterConstructor).
//
//   - Finder: a read-only object that answers "which member does this type
//     have under this name (and signature)?". The finder tries strategies
//     in priority order:
//     1. Members declared on the exact type.
//     2. Members promoted from embedded structs and embedded interfaces,
//     shallowest first.
//     3. Case-format tolerant name matching ("user_name" reaching
//     UserName), when the config enables it.
//     A miss is reported as (nil, false), never as an error. Finder is
//     concurrency-safe and memoizes every hit (and, configurably, misses).
//
//   - Invoker: executes resolved members against live targets. It owns the
//     reflect call mechanics (receiver adjustment, argument checking and
//     coercion, panic recovery) and sorts every failure into one of the
//     error categories in apis (ErrNotFound, ErrAccess, ErrArgument,
//     ErrTarget).
//
//   - Resolver: answers classification and generic-argument questions about
//     types: Describe, TypeArguments, Elements. Like the finder it is
//     read-only and memoizes process-wide.
//
// A pluggable Builder constructs all of the above for a given Config (and
// optional extension data), and may migrate state from previous instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means mirx lookups are lock-free on the hot path:
//
//	m, ok := mirx.Method(reflect.TypeOf(order), "Total")
//	out, err := mirx.Invoke(order, "Total")
//
// and concurrent callers always see a consistent snapshot.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     Method, Field, Constructor, Members
//     Invoke, CallMethod, Get, Set, New
//     Describe, TypeArguments, Elements
//     Overrides, LookupType
//     Registry(), Finder(), Invoker(), Resolver()
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetRegistry(reg apis.Registry)
//     SetFinder(fnd apis.Finder)
//     SetInvoker(inv apis.Invoker)
//     SetResolver(res apis.Resolver)
//     UnpinRegistry()
//     UnpinFinder()
//     SetAll(...)
//
//     Each of these acquires an internal build lock, derives a new
//     snapshot (rebuilding or reusing components as needed), and then
//     atomically publishes that snapshot.
//
//     Semantics in short:
//
//     - Config affects how members are resolved and called. Calling
//     SetConfig() rebuilds the finder caches so stale answers computed
//     under the old rules cannot leak, unless a layer is explicitly
//     "pinned".
//
//     - Builder controls how the components are constructed. Swapping
//     the Builder lets you replace resolution logic (different
//     strategies, different cache policies) at runtime.
//
//     - Ext is an opaque extension payload. It is not interpreted by
//     mirx itself. It is simply passed down to the Builder so custom
//     builders (in other binaries) can carry extra policy/state.
//
//     - SetRegistry() / SetFinder() directly overwrite the current
//     Registry / Finder in the snapshot and "pin" them. Once a layer
//     is pinned, mirx will stop rebuilding that layer automatically
//     until you call UnpinRegistry()/UnpinFinder(). The invoker and
//     the resolver are derived layers: SetInvoker()/SetResolver()
//     install a replacement, and the next upstream rebuild derives a
//     fresh one.
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     everything in one shot. This is mainly used by tests to get a
//     clean deterministic state between test cases.
//
//  3. Introspection:
//
//     ExtAs[T]() (T, bool)
//     // plus Registry().Entries(), etc.
//
//     These let callers examine the currently published snapshot for
//     debugging, metrics exposition, or documentation.
//
// # Concurrency model
//
// Reads (Method, Invoke, Describe, Registry, ...) are wait-free at the
// snapshot level: they load the current *state atomically and never take
// locks. The components returned by that state must themselves be
// concurrency-safe for reads; the bundled implementations memoize into
// sync.Map backed caches with a fast lock-free hit path.
//
// Writes (SetConfig, SetBuilder, SetExt, SetRegistry, SetFinder, ...)
// take a short build mutex, assemble a brand-new state struct, and then
// publish it via an atomic pointer swap. This gives the calling binary
// a predictable "last write wins" behavior without forcing per-lookup
// locking.
//
// # Pinning
//
// mirx supports the concept of "pinning" a layer:
//
//   - When you call SetRegistry(reg), that exact Registry becomes the
//     process-wide registry and is considered pinned. Further calls to
//     SetConfig() will not attempt to rebuild a new Registry until you
//     explicitly UnpinRegistry().
//
//   - When you call SetFinder(fnd), that Finder is pinned and will not
//     be rebuilt automatically until UnpinFinder().
//
// Pinning is there for advanced scenarios where you want full control
// over one layer while still letting other layers evolve. For example,
// you may lock a custom Finder that filters reachable members for a
// scripting sandbox but still allow the rest of the system to change
// Config values.
//
// # Extension config
//
// The snapshot also carries an "ext" field. This is an opaque interface{}
// (any) value owned by the embedding binary (for example, dirpx-node or
// dirpx-cp). mirx does not interpret ext. The active Builder receives ext
// on each rebuild, so out-of-tree builders can inject custom resolution
// rules or policy logic without hacking the mirx core.
//
// # Usage pattern in a binary
//
// A typical component does:
//
//  1. Let mirx init with default builder/config.
//
//  2. Optionally call mirx.SetExt(myCustomPolicy) so the Builder can see
//     extra resolution policy.
//
//  3. Optionally register well-known types and constructors up front:
//
//     mirx.RegisterType(reflect.TypeOf(MyRequest{}), "request.myapi")
//     mirx.RegisterConstructor(reflect.TypeOf(MyRequest{}), NewMyRequest)
//
//  4. Use mirx.Method(...), mirx.Invoke(...), mirx.Describe(...) wherever
//     dynamic dispatch or generic-argument introspection is needed.
//
//  5. In tests, call mirx.SetAll(...) to get deterministic snapshots
//     and to inject a mock Builder.
//
// # Scope
//
// mirx is intentionally small. It does not try to be a general DI container
// or a serialization framework. It only solves one job:
//
//	"Given a Go type, resolve its members and type arguments once,
//	 cache the answers process-wide, and invoke members with failures
//	 sorted into meaningful categories."
//
// Everything else (lifecycle, injection, mapping, codegen, etc.) belongs to
// higher layers.
package mirx
