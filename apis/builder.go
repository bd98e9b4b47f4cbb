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

// Builder composes Registry, Finder, Invoker and Resolver from a Config.
// Implementations may migrate state from previous instances (prev*), or ignore them.
type Builder interface {
	// BuildRegistry constructs a Registry for Config. May migrate entries from previous registry.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildRegistry(cfg Config, prev Registry, ext any) Registry
	// BuildFinder constructs a Finder over reg for Config. May reuse state from previous finder.
	BuildFinder(cfg Config, reg Registry, prev Finder, ext any) Finder
	// BuildInvoker constructs an Invoker bound to fnd and reg.
	BuildInvoker(cfg Config, reg Registry, fnd Finder, ext any) Invoker
	// BuildResolver constructs a typing Resolver consulting reg for names.
	BuildResolver(cfg Config, reg Registry, prev Resolver, ext any) Resolver
}
