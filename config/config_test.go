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

package config_test

import (
	"testing"

	"dirpx.dev/mirx/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("MaxDepth = %d, want %d", got.MaxDepth, config.DefaultMaxDepth)
	}
	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
	if got.MapPreferElem != config.DefaultMapPreferElem {
		t.Fatalf("MapPreferElem = %v, want %v", got.MapPreferElem, config.DefaultMapPreferElem)
	}
	if got.LooseNameMatch != config.DefaultLooseNameMatch {
		t.Fatalf("LooseNameMatch = %v, want %v", got.LooseNameMatch, config.DefaultLooseNameMatch)
	}
	if got.CoerceArguments != config.DefaultCoerceArguments {
		t.Fatalf("CoerceArguments = %v, want %v", got.CoerceArguments, config.DefaultCoerceArguments)
	}
	if got.AllowUnexported != config.DefaultAllowUnexported {
		t.Fatalf("AllowUnexported = %v, want %v", got.AllowUnexported, config.DefaultAllowUnexported)
	}
	if got.CacheNegative != config.DefaultCacheNegative {
		t.Fatalf("CacheNegative = %v, want %v", got.CacheNegative, config.DefaultCacheNegative)
	}
	if got.Debug {
		t.Fatalf("Debug = %v, want false", got.Debug)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithMaxDepth_Positive(t *testing.T) {
	c := config.NewConfig(config.WithMaxDepth(3))
	if c.MaxDepth != 3 {
		t.Fatalf("MaxDepth = %d, want 3", c.MaxDepth)
	}
}

func TestWithMaxDepth_Negative_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithMaxDepth(-1))
	if c.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("MaxDepth = %d, want default %d", c.MaxDepth, config.DefaultMaxDepth)
	}
}

func TestWithMaxUnwrap_Positive(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(3))
	if c.MaxUnwrap != 3 {
		t.Fatalf("MaxUnwrap = %d, want 3", c.MaxUnwrap)
	}
}

func TestWithMaxUnwrap_Negative_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(-1))
	if c.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", c.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestWithMapPreferElem(t *testing.T) {
	c := config.NewConfig(config.WithMapPreferElem(false))
	if c.MapPreferElem {
		t.Fatalf("MapPreferElem = %v, want false", c.MapPreferElem)
	}

	c2 := config.NewConfig(config.WithMapPreferElem(true))
	if !c2.MapPreferElem {
		t.Fatalf("MapPreferElem = %v, want true", c2.MapPreferElem)
	}
}

func TestWithLooseNameMatch(t *testing.T) {
	c := config.NewConfig(config.WithLooseNameMatch(true))
	if !c.LooseNameMatch {
		t.Fatalf("LooseNameMatch = %v, want true", c.LooseNameMatch)
	}
}

func TestWithCoerceArguments(t *testing.T) {
	c := config.NewConfig(config.WithCoerceArguments(false))
	if c.CoerceArguments {
		t.Fatalf("CoerceArguments = %v, want false", c.CoerceArguments)
	}
}

func TestWithAllowUnexported(t *testing.T) {
	c := config.NewConfig(config.WithAllowUnexported(false))
	if c.AllowUnexported {
		t.Fatalf("AllowUnexported = %v, want false", c.AllowUnexported)
	}
}

func TestWithCacheNegative(t *testing.T) {
	c := config.NewConfig(config.WithCacheNegative(false))
	if c.CacheNegative {
		t.Fatalf("CacheNegative = %v, want false", c.CacheNegative)
	}
}

func TestWithDebug(t *testing.T) {
	c := config.NewConfig(config.WithDebug(true))
	if !c.Debug {
		t.Fatalf("Debug = %v, want true", c.Debug)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithLooseNameMatch(true),
		config.WithLooseNameMatch(false),
		config.WithMaxDepth(2),
		config.WithMaxDepth(5),
		config.WithMapPreferElem(false),
		config.WithMapPreferElem(true),
	)

	if c.LooseNameMatch {
		t.Errorf("LooseNameMatch = %v, want false (last option wins)", c.LooseNameMatch)
	}
	if c.MaxDepth != 5 {
		t.Errorf("MaxDepth = %d, want 5 (last option wins)", c.MaxDepth)
	}
	if !c.MapPreferElem {
		t.Errorf("MapPreferElem = %v, want true (last option wins)", c.MapPreferElem)
	}
}

func TestNewConfig_Guardrails_ZeroAllowed(t *testing.T) {
	// The constructor only resets negative values.
	c := config.NewConfig(config.WithMaxDepth(0), config.WithMaxUnwrap(0))
	if c.MaxDepth != 0 {
		t.Fatalf("MaxDepth = %d, want 0 (zero is allowed)", c.MaxDepth)
	}
	if c.MaxUnwrap != 0 {
		t.Fatalf("MaxUnwrap = %d, want 0 (zero is allowed)", c.MaxUnwrap)
	}
}
