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

package mirx

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/mirx/apis"
	"dirpx.dev/mirx/builder"
	"dirpx.dev/mirx/config"
	"dirpx.dev/mirx/member"
)

// init initializes the global mirx state.
func init() {
	// Initialize state with default cfg, reg, fnd, inv and res.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.fnd = b.BuildFinder(s.cfg, s.reg, nil, nil)
	s.inv = b.BuildInvoker(s.cfg, s.reg, s.fnd, nil)
	s.res = b.BuildResolver(s.cfg, s.reg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("mirx: builder returned nil registry")
	// ErrNilFinder is returned when a builder returns a nil finder.
	ErrNilFinder = errors.New("mirx: builder returned nil finder")
	// ErrNilInvoker is returned when a builder returns a nil invoker.
	ErrNilInvoker = errors.New("mirx: builder returned nil invoker")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("mirx: builder returned nil resolver")
)

// Method resolves a method of t by name and optional argument types using the
// global mirx fnd. A miss is reported as (nil, false), never as an error.
// This is a convenience wrapper around the global fnd.
func Method(t reflect.Type, name string, args ...reflect.Type) (*apis.Member, bool) {
	return st.Load().fnd.Method(t, name, args...)
}

// Field resolves a field of t by name, including promoted fields, using the
// global mirx fnd.
// This is a convenience wrapper around the global fnd.
func Field(t reflect.Type, name string) (*apis.Member, bool) {
	return st.Load().fnd.Field(t, name)
}

// Constructor resolves a constructor of t by argument types using the global
// mirx fnd.
// This is a convenience wrapper around the global fnd.
func Constructor(t reflect.Type, args ...reflect.Type) (*apis.Member, bool) {
	return st.Load().fnd.Constructor(t, args...)
}

// Members enumerates every resolvable method and field of t using the global
// mirx fnd.
// This is a convenience wrapper around the global fnd.
func Members(t reflect.Type) []*apis.Member {
	return st.Load().fnd.Members(t)
}

// Invoke resolves a method of target by name and calls it with args using the
// global mirx inv.
// This is a convenience wrapper around the global inv.
func Invoke(target any, name string, args ...any) ([]any, error) {
	return st.Load().inv.Invoke(target, name, args...)
}

// CallMethod calls an already-resolved member handle m on target using the
// global mirx inv.
// This is a convenience wrapper around the global inv.
func CallMethod(m *apis.Member, target any, args ...any) ([]any, error) {
	return st.Load().inv.Call(m, target, args...)
}

// Get reads the named field from target using the global mirx inv.
// This is a convenience wrapper around the global inv.
func Get(target any, name string) (any, error) {
	return st.Load().inv.Get(target, name)
}

// Set writes the named field on target using the global mirx inv.
// This is a convenience wrapper around the global inv.
func Set(target any, name string, value any) error {
	return st.Load().inv.Set(target, name, value)
}

// New constructs a value of t via a registered constructor, or the zero value
// when none is registered and no arguments are given, using the global mirx inv.
// This is a convenience wrapper around the global inv.
func New(t reflect.Type, args ...any) (any, error) {
	return st.Load().inv.New(t, args...)
}

// Overrides reports whether member a overrides member b.
func Overrides(a, b *apis.Member) bool {
	return member.Overrides(a, b)
}

// Describe classifies t and resolves its type arguments using the global mirx res.
// It uses the global mirx configuration and reg.
// This is a convenience wrapper around the global res.
func Describe(t reflect.Type) *apis.Descriptor {
	s := st.Load()
	return s.res.Describe(t, s.cfg)
}

// TypeArguments computes the actual type arguments of t relative to the
// generic ancestor using the global mirx res.
// It uses the global mirx configuration and reg.
// This is a convenience wrapper around the global res.
func TypeArguments(t, ancestor reflect.Type) []*apis.Descriptor {
	s := st.Load()
	return s.res.TypeArguments(t, ancestor, s.cfg)
}

// Elements resolves the element descriptors of the container type t using the
// global mirx res.
// It uses the global mirx configuration and reg.
// This is a convenience wrapper around the global res.
func Elements(t reflect.Type) []*apis.Descriptor {
	s := st.Load()
	return s.res.Elements(t, s.cfg)
}

// RegisterType adds a type-name mapping to the global mirx reg.
// This is a convenience wrapper around the global reg.
func RegisterType(t reflect.Type, name string) error {
	return st.Load().reg.Register(t, name)
}

// RegisterConstructor adds a constructor function for t to the global mirx reg.
// This is a convenience wrapper around the global reg.
func RegisterConstructor(t reflect.Type, fn any) error {
	return st.Load().reg.RegisterConstructor(t, fn)
}

// LookupType returns the type registered under name in the global mirx reg.
// This is a convenience wrapper around the global reg.
func LookupType(name string) (reflect.Type, bool) {
	return st.Load().reg.LookupName(name)
}

// SetAll explicitly sets all global mirx state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced. Explicitly provided
// reg and fnd become pinned.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, fnd apis.Finder, inv apis.Invoker, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Finder
	nfnd := fnd
	npfnd := false
	if nfnd == nil {
		nfnd = nbld.BuildFinder(ncfg, nreg, old.fnd, next)
	} else {
		npfnd = true
	}

	// Invoker
	ninv := inv
	if ninv == nil {
		ninv = nbld.BuildInvoker(ncfg, nreg, nfnd, next)
	}

	// Resolver
	nres := res
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, nreg, old.res, next)
	}

	// Ensure non-nil components.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nfnd == nil {
		panic(ErrNilFinder)
	}
	if ninv == nil {
		panic(ErrNilInvoker)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			reg:  nreg,
			fnd:  nfnd,
			inv:  ninv,
			res:  nres,
			bld:  nbld,
			preg: npreg,
			pfnd: npfnd,
		},
	)
}

// Config returns the global mirx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global mirx configuration to cfg.
// It rebuilds the non-pinned reg and fnd, and always rebuilds inv and res,
// using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg, fnd, inv and res based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, old.ext)
	}
	nfnd := old.fnd
	if !old.pfnd {
		nfnd = b.BuildFinder(cfg, nreg, old.fnd, old.ext)
	}
	ninv := b.BuildInvoker(cfg, nreg, nfnd, old.ext)
	nres := b.BuildResolver(cfg, nreg, old.res, old.ext)

	// Ensure non-nil components.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nfnd == nil {
		panic(ErrNilFinder)
	}
	if ninv == nil {
		panic(ErrNilInvoker)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			reg:  nreg,
			fnd:  nfnd,
			inv:  ninv,
			res:  nres,
			bld:  b,
			preg: old.preg,
			pfnd: old.pfnd,
		},
	)
}

// Registry returns the global mirx reg.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global mirx reg to reg and pins it.
// It rebuilds the non-pinned fnd, and always rebuilds inv and res, over the
// new reg.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new fnd, inv and res based on the old cfg and new reg.
	nfnd := old.fnd
	if !old.pfnd {
		nfnd = b.BuildFinder(old.cfg, reg, old.fnd, old.ext)
	}
	ninv := b.BuildInvoker(old.cfg, reg, nfnd, old.ext)
	nres := b.BuildResolver(old.cfg, reg, old.res, old.ext)

	// Ensure non-nil components.
	if nfnd == nil {
		panic(ErrNilFinder)
	}
	if ninv == nil {
		panic(ErrNilInvoker)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  reg,
			fnd:  nfnd,
			inv:  ninv,
			res:  nres,
			bld:  b,
			preg: true,
			pfnd: old.pfnd,
		},
	)
}

// Finder returns the global mirx fnd.
func Finder() apis.Finder {
	return st.Load().fnd
}

// SetFinder sets the global mirx fnd to fnd and pins it.
// It rebuilds inv over the new fnd.
// This is a convenience wrapper around the global state.
func SetFinder(fnd apis.Finder) {
	if fnd == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new inv based on the old cfg and new fnd.
	ninv := b.BuildInvoker(old.cfg, old.reg, fnd, old.ext)

	// Ensure non-nil inv.
	if ninv == nil {
		panic(ErrNilInvoker)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			fnd:  fnd,
			inv:  ninv,
			res:  old.res,
			bld:  b,
			preg: old.preg,
			pfnd: true,
		},
	)
}

// Invoker returns the global mirx inv.
func Invoker() apis.Invoker {
	return st.Load().inv
}

// SetInvoker sets the global mirx inv to inv.
// The replacement lasts until the cfg, reg or fnd changes, which rebuilds inv.
// This is a convenience wrapper around the global state.
func SetInvoker(inv apis.Invoker) {
	if inv == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			fnd:  old.fnd,
			inv:  inv,
			res:  old.res,
			bld:  old.bld,
			preg: old.preg,
			pfnd: old.pfnd,
		},
	)
}

// Resolver returns the global mirx res.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global mirx res to res.
// The replacement lasts until the cfg or reg changes, which rebuilds res.
// This is a convenience wrapper around the global state.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			fnd:  old.fnd,
			inv:  old.inv,
			res:  res,
			bld:  old.bld,
			preg: old.preg,
			pfnd: old.pfnd,
		},
	)
}

// Builder returns the global mirx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global mirx bld to b.
// It rebuilds the non-pinned reg and fnd, and always rebuilds inv and res,
// using the new bld.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new reg, fnd, inv and res based on the new bld and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, old.ext)
	}
	nfnd := old.fnd
	if !old.pfnd {
		nfnd = b.BuildFinder(old.cfg, nreg, old.fnd, old.ext)
	}
	ninv := b.BuildInvoker(old.cfg, nreg, nfnd, old.ext)
	nres := b.BuildResolver(old.cfg, nreg, old.res, old.ext)

	// Ensure non-nil components.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nfnd == nil {
		panic(ErrNilFinder)
	}
	if ninv == nil {
		panic(ErrNilInvoker)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  nreg,
			fnd:  nfnd,
			inv:  ninv,
			res:  nres,
			bld:  b,
			preg: old.preg,
			pfnd: old.pfnd,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg, fnd, inv and res based on the new ext and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, ext)
	}
	nfnd := old.fnd
	if !old.pfnd {
		nfnd = b.BuildFinder(old.cfg, nreg, old.fnd, ext)
	}
	ninv := old.inv
	nres := old.res
	if !old.preg || !old.pfnd {
		ninv = b.BuildInvoker(old.cfg, nreg, nfnd, ext)
		nres = b.BuildResolver(old.cfg, nreg, old.res, ext)
	}

	// Ensure non-nil components.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nfnd == nil {
		panic(ErrNilFinder)
	}
	if ninv == nil {
		panic(ErrNilInvoker)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			reg:  nreg,
			fnd:  nfnd,
			inv:  ninv,
			res:  nres,
			bld:  b,
			preg: old.preg,
			pfnd: old.pfnd,
		},
	)
}

// ExtAs returns the global mirx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global mirx reg is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global mirx reg immutable.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			fnd:  old.fnd,
			inv:  old.inv,
			res:  old.res,
			bld:  old.bld,
			preg: true,
			pfnd: old.pfnd,
		},
	)
}

// UnpinRegistry makes the global mirx reg mutable again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			fnd:  old.fnd,
			inv:  old.inv,
			res:  old.res,
			bld:  old.bld,
			preg: false,
			pfnd: old.pfnd,
		},
	)
}

// IsFinderPinned returns whether the global mirx fnd is pinned (immutable).
func IsFinderPinned() bool {
	return st.Load().pfnd
}

// PinFinder makes the global mirx fnd immutable.
func PinFinder() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			fnd:  old.fnd,
			inv:  old.inv,
			res:  old.res,
			bld:  old.bld,
			preg: old.preg,
			pfnd: true,
		},
	)
}

// UnpinFinder makes the global mirx fnd mutable again.
func UnpinFinder() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			fnd:  old.fnd,
			inv:  old.inv,
			res:  old.res,
			bld:  old.bld,
			preg: old.preg,
			pfnd: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global mirx state.
var st atomic.Pointer[state]

// state is the global mirx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global mirx configuration.
	cfg apis.Config
	// ext is the global mirx extension configuration.
	ext any
	// reg is the global mirx reg.
	reg apis.Registry
	// fnd is the global mirx fnd.
	fnd apis.Finder
	// inv is the global mirx inv.
	inv apis.Invoker
	// res is the global mirx res.
	res apis.Resolver
	// bld is the global mirx bld.
	bld apis.Builder
	// preg indicates whether the reg is pinned (immutable).
	preg bool
	// pfnd indicates whether the fnd is pinned (immutable).
	pfnd bool
}
