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

package logger

import (
	"reflect"
	"strings"
	"time"

	"github.com/viant/gmetric"
	"github.com/viant/gmetric/provider"
)

// Event labels counted on lookup and invocation operation counters.
type Event string

const (
	Hit     Event = "Hit"
	Miss    Event = "Miss"
	Error   Event = "Error"
	Success Event = "Success"
)

type metricsLocation struct{}

func metricLocation() string {
	return reflect.TypeOf(metricsLocation{}).PkgPath()
}

// OperationCounter returns the named operation counter from service, creating
// a multi-operation counter on first use. A nil service yields a silent,
// nil-guarded adapter.
func OperationCounter(service *gmetric.Service, name string) *CounterAdapter {
	if service == nil {
		return NewCounter(nil)
	}
	name = strings.ReplaceAll(name, "/", ".")
	cnt := service.LookupOperation(name)
	if cnt == nil {
		cnt = service.MultiOperationCounter(metricLocation(), name, name+" performance", time.Millisecond, time.Minute, 2, provider.NewBasic())
	}
	return NewCounter(cnt)
}
