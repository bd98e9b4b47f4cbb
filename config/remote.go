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
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/toolbox"
	"gopkg.in/yaml.v3"

	"dirpx.dev/mirx/apis"
)

// FromURL loads configuration from a YAML or JSON document addressed by an
// afs URL (file, mem, embed and friends). Keys absent from the document keep
// their default values.
func FromURL(ctx context.Context, URL string) (apis.Config, error) {
	cfg := DefaultConfig()
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to load config: %v", URL)
	}
	aMap := map[string]interface{}{}
	if strings.HasSuffix(URL, ".yaml") || strings.HasSuffix(URL, ".yml") {
		if err = yaml.Unmarshal(data, &aMap); err != nil {
			return cfg, errors.Wrapf(err, "invalid yaml config: %v", URL)
		}
	} else {
		if err = json.Unmarshal(data, &aMap); err != nil {
			return cfg, errors.Wrapf(err, "invalid json config: %v", URL)
		}
	}
	if err = toolbox.DefaultConverter.AssignConverted(&cfg, aMap); err != nil {
		return cfg, errors.Wrapf(err, "failed to assign config: %v", URL)
	}
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg, nil
}
