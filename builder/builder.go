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

package builder

import (
	"dirpx.dev/mirx/apis"
	"dirpx.dev/mirx/member"
	"dirpx.dev/mirx/registry"
	"dirpx.dev/mirx/typing"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder assembles the default component implementations.
type builder struct{}

var _ apis.Builder = (*builder)(nil)

// BuildRegistry builds and returns a new apis.Registry based on the provided
// configuration and pre-existing registry. If a pre-existing registry is
// provided, its entries and constructors are copied into the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry, _ any) apis.Registry {
	next := registry.New(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = next.Register(e.Type, e.Name)
			for _, fn := range prev.Constructors(e.Type) {
				_ = next.RegisterConstructor(e.Type, fn.Interface())
			}
		}
	}
	return next
}

// BuildFinder builds and returns a new apis.Finder with the default matcher
// chain bound to reg. Member caches are process-wide, so no state needs to
// migrate from a previous finder.
func (b *builder) BuildFinder(cfg apis.Config, reg apis.Registry, _ apis.Finder, _ any) apis.Finder {
	return member.New(cfg, reg)
}

// BuildInvoker builds and returns a new apis.Invoker dispatching through fnd.
func (b *builder) BuildInvoker(cfg apis.Config, _ apis.Registry, fnd apis.Finder, _ any) apis.Invoker {
	return member.NewInvoker(cfg, fnd)
}

// BuildResolver builds and returns a new apis.Resolver consulting reg for
// display names and type-argument tokens.
func (b *builder) BuildResolver(cfg apis.Config, reg apis.Registry, _ apis.Resolver, _ any) apis.Resolver {
	return typing.New(cfg, reg)
}
