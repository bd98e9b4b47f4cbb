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
	"os"
	"reflect"
	"time"
)

// Adapter dispatches logging events to optional hooks. A nil hook turns the
// corresponding event into a no-op, so an empty Adapter is a valid silent sink.
type Adapter struct {
	lookup      Lookup
	invocation  Invocation
	fieldAccess FieldAccess
	log         Log
}

func (l *Adapter) MemberLookup(target reflect.Type, kind, name string, hit bool) {
	if l.lookup == nil {
		return
	}

	l.lookup(target, kind, name, hit)
}

func (l *Adapter) MemberInvocation(target reflect.Type, name string, took time.Duration, err error) {
	if l.invocation == nil {
		return
	}

	l.invocation(target, name, took, err)
}

func (l *Adapter) MemberFieldAccess(target reflect.Type, name string, write bool, err error) {
	if l.fieldAccess == nil {
		return
	}

	l.fieldAccess(target, name, write, err)
}

func (l *Adapter) Logf(message string, args ...interface{}) {
	if l.log == nil {
		return
	}

	l.log(message, args...)
}

func NewLogger(logger Logger) *Adapter {
	if logger == nil {
		return &Adapter{}
	}

	return &Adapter{
		lookup:      logger.MemberLookup(),
		invocation:  logger.MemberInvocation(),
		fieldAccess: logger.MemberFieldAccess(),
		log:         logger.Log(),
	}
}

// Default returns a silent adapter unless MIRX_DEBUG is set, in which case
// events are printed to stdout.
func Default() *Adapter {
	if os.Getenv("MIRX_DEBUG") == "" {
		return NewLogger(nil)
	}
	return NewLogger(&defaultLogger{})
}
