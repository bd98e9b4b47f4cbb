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

package registry

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/viant/x"
	"github.com/viant/xreflect"

	"dirpx.dev/mirx/apis"
	"dirpx.dev/mirx/config"
	uref "dirpx.dev/mirx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("mirx(registry): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("mirx(registry): empty name provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type or name with a different counterpart.
	ErrConflictingRegistration = errors.New("mirx(registry): conflicting type registration")
	// ErrUnknownName is returned when an alias targets an unregistered name.
	ErrUnknownName = errors.New("mirx(registry): unknown name")
	// ErrInvalidConstructor is returned when a constructor function does not
	// produce the registered type.
	ErrInvalidConstructor = errors.New("mirx(registry): invalid constructor function")
)

// New constructs a Registry that normalizes types according to cfg.
// Only MaxUnwrap and MapPreferElem are used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{
		cfg:   cfg,
		xreg:  x.NewRegistry(),
		types: xreflect.NewTypes(),
	}
}

// registry is a bidirectional Registry implementation backed by sync.Map with
// an x.Registry mirror for qualified keys and an xreflect type table for
// expression lookups.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// byType maps reflect.Type to registered name.
	byType sync.Map // map[reflect.Type]string
	// byName maps registered name to reflect.Type.
	byName sync.Map // map[string]reflect.Type
	// aliases maps alias to canonical name.
	aliases sync.Map // map[string]string
	// ctors maps reflect.Type to its registered factory functions.
	ctors sync.Map // map[reflect.Type][]reflect.Value
	// xreg mirrors entries as typed x.Registry records ("pkgpath.Name" keys).
	xreg *x.Registry
	// types mirrors entries into an xreflect table for qualified lookups.
	types *xreflect.Types
	// count tracks the number of registered type entries.
	count int
	// gen is bumped on every successful registration.
	gen atomic.Uint64
}

// Register associates the lookup base of t with the given name.
// It is idempotent for the same (type,name) pair.
func (r *registry) Register(t reflect.Type, name string) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}

	// Normalize to the member-lookup base type according to r.cfg.
	b, err := uref.Base(t, r.cfg)
	if err != nil {
		return err
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.byType.Load(b); ok {
		if old.(string) == name {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}
	if old, ok := r.byName.Load(name); ok && old.(reflect.Type) != b {
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.byType.Load(b); ok {
		if old.(string) == name {
			return nil
		}
		return ErrConflictingRegistration
	}
	if old, ok := r.byName.Load(name); ok && old.(reflect.Type) != b {
		return ErrConflictingRegistration
	}

	r.byType.Store(b, name)
	r.byName.Store(name, b)
	r.xreg.Register(x.NewType(b, x.WithName(name)))
	_ = r.types.Register(name, xreflect.WithReflectType(b))
	r.count++
	r.gen.Add(1)
	return nil
}

// RegisterAlias adds an extra name resolving to an already registered one.
func (r *registry) RegisterAlias(alias, name string) error {
	if alias == "" || name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byName.Load(name)
	if !ok {
		return ErrUnknownName
	}
	if old, ok := r.aliases.Load(alias); ok {
		if old.(string) == name {
			return nil
		}
		return ErrConflictingRegistration
	}
	if old, ok := r.byName.Load(alias); ok && old.(reflect.Type) != t.(reflect.Type) {
		return ErrConflictingRegistration
	}

	r.aliases.Store(alias, name)
	r.gen.Add(1)
	return nil
}

// RegisterConstructor adds a factory function for t. The function's first
// result must be assignable to the lookup base of t or to a pointer to it;
// an optional second result may be an error.
func (r *registry) RegisterConstructor(t reflect.Type, fn any) error {
	if t == nil {
		return ErrNilType
	}
	if fn == nil {
		return ErrInvalidConstructor
	}
	b, err := uref.Base(t, r.cfg)
	if err != nil {
		return err
	}

	fv := reflect.ValueOf(fn)
	if err := validateConstructor(b, fv.Type()); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var fns []reflect.Value
	if v, ok := r.ctors.Load(b); ok {
		fns = v.([]reflect.Value)
	}
	// Copy-on-write so concurrent readers keep a stable snapshot.
	next := make([]reflect.Value, 0, len(fns)+1)
	next = append(next, fns...)
	next = append(next, fv)
	r.ctors.Store(b, next)
	r.gen.Add(1)
	return nil
}

// validateConstructor checks that fn is a func producing b (or *b),
// optionally paired with an error result.
func validateConstructor(b, fn reflect.Type) error {
	if fn == nil || fn.Kind() != reflect.Func {
		return ErrInvalidConstructor
	}
	switch fn.NumOut() {
	case 1:
	case 2:
		if !fn.Out(1).Implements(errType) {
			return ErrInvalidConstructor
		}
	default:
		return ErrInvalidConstructor
	}
	out := fn.Out(0)
	if out == b || out == reflect.PtrTo(b) {
		return nil
	}
	if out.Kind() == reflect.Interface && (b.Implements(out) || reflect.PtrTo(b).Implements(out)) {
		return nil
	}
	if out.AssignableTo(b) {
		return nil
	}
	return ErrInvalidConstructor
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Lookup returns a name for a type if present.
func (r *registry) Lookup(t reflect.Type) (name string, ok bool) {
	if t == nil {
		return "", false
	}
	b, err := uref.Base(t, r.cfg)
	if err != nil {
		return "", false
	}
	if v, ok := r.byType.Load(b); ok {
		return v.(string), true
	}
	return "", false
}

// LookupName returns the type registered under name. Exact names win, then
// aliases, then qualified "pkgpath.Name" keys, then the xreflect table.
func (r *registry) LookupName(name string) (reflect.Type, bool) {
	if name == "" {
		return nil, false
	}
	if v, ok := r.byName.Load(name); ok {
		return v.(reflect.Type), true
	}
	if canonical, ok := r.aliases.Load(name); ok {
		if v, ok := r.byName.Load(canonical.(string)); ok {
			return v.(reflect.Type), true
		}
	}
	if aType := r.xreg.Lookup(name); aType != nil && aType.Type != nil {
		return aType.Type, true
	}
	if t, err := r.types.Lookup(name); err == nil && t != nil {
		return t, true
	}
	return nil, false
}

// Constructors returns a snapshot of the factory functions registered for t,
// in registration order.
func (r *registry) Constructors(t reflect.Type) []reflect.Value {
	if t == nil {
		return nil
	}
	b, err := uref.Base(t, r.cfg)
	if err != nil {
		return nil
	}
	if v, ok := r.ctors.Load(b); ok {
		return v.([]reflect.Value)
	}
	return nil
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.byType.Range(func(key, value any) bool {
		t := key.(reflect.Type)
		entries = append(entries, apis.Entry{
			Type: t,
			Name: value.(string),
			Key:  x.NewType(t, x.WithName(value.(string))).Key(),
		})
		return true
	})
	return entries
}

// Count returns the number of registered type entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Generation returns the monotonic change counter.
func (r *registry) Generation() uint64 {
	return r.gen.Load()
}

// Reset clears all registered entries, aliases and constructors.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byType = sync.Map{}
	r.byName = sync.Map{}
	r.aliases = sync.Map{}
	r.ctors = sync.Map{}
	r.xreg = x.NewRegistry()
	r.types = xreflect.NewTypes()
	r.count = 0
	r.gen.Add(1)
}
