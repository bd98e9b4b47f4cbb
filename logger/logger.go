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
	"time"
)

type Lookup func(target reflect.Type, kind string, name string, hit bool)
type Invocation func(target reflect.Type, name string, took time.Duration, err error)
type FieldAccess func(target reflect.Type, name string, write bool, err error)
type Log func(message string, args ...interface{})

// Logger supplies the hooks an Adapter dispatches to. Any hook may be nil.
type Logger interface {
	MemberLookup() Lookup
	MemberInvocation() Invocation
	MemberFieldAccess() FieldAccess
	Log() Log
}
