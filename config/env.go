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
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"dirpx.dev/mirx/apis"
)

// envConfig mirrors apis.Config with environment bindings. Defaults match
// DefaultConfig so an empty environment yields the default configuration.
type envConfig struct {
	MaxDepth        int  `env:"MIRX_MAX_DEPTH" envDefault:"8"`
	MaxUnwrap       int  `env:"MIRX_MAX_UNWRAP" envDefault:"8"`
	MapPreferElem   bool `env:"MIRX_MAP_PREFER_ELEM" envDefault:"true"`
	LooseNameMatch  bool `env:"MIRX_LOOSE_NAME_MATCH" envDefault:"false"`
	CoerceArguments bool `env:"MIRX_COERCE_ARGUMENTS" envDefault:"true"`
	AllowUnexported bool `env:"MIRX_ALLOW_UNEXPORTED" envDefault:"true"`
	CacheNegative   bool `env:"MIRX_CACHE_NEGATIVE" envDefault:"true"`
	Debug           bool `env:"MIRX_DEBUG" envDefault:"false"`
}

// FromEnv loads configuration from MIRX_* environment variables. Unset
// variables fall back to the defaults; negative numeric values are reset the
// same way NewConfig resets them.
func FromEnv() (apis.Config, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return DefaultConfig(), errors.Wrap(err, "failed to parse environment config")
	}
	cfg := apis.Config{
		MaxDepth:        ec.MaxDepth,
		MaxUnwrap:       ec.MaxUnwrap,
		MapPreferElem:   ec.MapPreferElem,
		LooseNameMatch:  ec.LooseNameMatch,
		CoerceArguments: ec.CoerceArguments,
		AllowUnexported: ec.AllowUnexported,
		CacheNegative:   ec.CacheNegative,
		Debug:           ec.Debug,
	}
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg, nil
}
