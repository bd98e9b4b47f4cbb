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

package config

import (
	"dirpx.dev/mirx/apis"
)

const (
	// DefaultMaxDepth represents the default for MaxDepth.
	// Embedding hierarchies deeper than 8 levels do not occur in practice.
	DefaultMaxDepth = 8
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultMapPreferElem represents the default for MapPreferElem.
	// When true, map value types are preferred when searching for named inner types.
	DefaultMapPreferElem = true
	// DefaultLooseNameMatch represents the default for LooseNameMatch.
	// Case-format fallbacks are opt-in.
	DefaultLooseNameMatch = false
	// DefaultCoerceArguments represents the default for CoerceArguments.
	// Assignable and convertible arguments are accepted by default.
	DefaultCoerceArguments = true
	// DefaultAllowUnexported represents the default for AllowUnexported.
	// Unexported fields are accessible through unsafe pointers by default.
	DefaultAllowUnexported = true
	// DefaultCacheNegative represents the default for CacheNegative.
	// Lookup misses are memoized by default.
	DefaultCacheNegative = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure depth bounds are valid.
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxDepth:        DefaultMaxDepth,
		MaxUnwrap:       DefaultMaxUnwrap,
		MapPreferElem:   DefaultMapPreferElem,
		LooseNameMatch:  DefaultLooseNameMatch,
		CoerceArguments: DefaultCoerceArguments,
		AllowUnexported: DefaultAllowUnexported,
		CacheNegative:   DefaultCacheNegative,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxDepth sets the MaxDepth option.
// A negative value resets to the default.
func WithMaxDepth(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = max
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithMapPreferElem sets the MapPreferElem option.
func WithMapPreferElem(prefer bool) Option {
	return func(c *apis.Config) {
		c.MapPreferElem = prefer
	}
}

// WithLooseNameMatch sets the LooseNameMatch option.
func WithLooseNameMatch(loose bool) Option {
	return func(c *apis.Config) {
		c.LooseNameMatch = loose
	}
}

// WithCoerceArguments sets the CoerceArguments option.
func WithCoerceArguments(coerce bool) Option {
	return func(c *apis.Config) {
		c.CoerceArguments = coerce
	}
}

// WithAllowUnexported sets the AllowUnexported option.
func WithAllowUnexported(allow bool) Option {
	return func(c *apis.Config) {
		c.AllowUnexported = allow
	}
}

// WithCacheNegative sets the CacheNegative option.
func WithCacheNegative(cache bool) Option {
	return func(c *apis.Config) {
		c.CacheNegative = cache
	}
}

// WithDebug sets the Debug option.
func WithDebug(debug bool) Option {
	return func(c *apis.Config) {
		c.Debug = debug
	}
}
