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

package member

import (
	"github.com/viant/gmetric"

	"dirpx.dev/mirx/apis"
	"dirpx.dev/mirx/logger"
	"dirpx.dev/mirx/strategy"
)

// Option customizes finders and invokers created by this package.
type Option func(*options)

type options struct {
	matchers []apis.Matcher
	log      *logger.Adapter
	metrics  *gmetric.Service
}

func newOptions(opts ...Option) *options {
	o := &options{
		matchers: []apis.Matcher{
			strategy.NewDeclaredStrategy(),
			strategy.NewEmbeddedStrategy(),
			strategy.NewCaseFormatStrategy(),
		},
		log: logger.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// lookups returns the Hit/Miss lookup counter, silent without a service.
func (o *options) lookups() *logger.CounterAdapter {
	return logger.OperationCounter(o.metrics, "mirx.lookup")
}

// invocations returns the Success/Error invocation counter.
func (o *options) invocations() *logger.CounterAdapter {
	return logger.OperationCounter(o.metrics, "mirx.invoke")
}

// WithMatchers replaces the default Declared -> Embedded -> CaseFormat chain.
// Nil entries are ignored.
func WithMatchers(matchers ...apis.Matcher) Option {
	return func(o *options) {
		out := make([]apis.Matcher, 0, len(matchers))
		for _, m := range matchers {
			if m != nil {
				out = append(out, m)
			}
		}
		o.matchers = out
	}
}

// WithLogger sets the logging adapter; nil restores the env-gated default.
func WithLogger(adapter *logger.Adapter) Option {
	return func(o *options) {
		if adapter == nil {
			adapter = logger.Default()
		}
		o.log = adapter
	}
}

// WithMetrics publishes lookup and invocation counters on service.
func WithMetrics(service *gmetric.Service) Option {
	return func(o *options) {
		o.metrics = service
	}
}
