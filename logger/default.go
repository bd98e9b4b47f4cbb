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
	"fmt"
	"reflect"
	"time"
)

type defaultLogger struct {
}

func (d *defaultLogger) MemberLookup() Lookup {
	return func(target reflect.Type, kind, name string, hit bool) {
		fmt.Printf("[MIRX] lookup %v %v.%v hit: %v \n", kind, target, name, hit)
	}
}

func (d *defaultLogger) MemberInvocation() Invocation {
	return func(target reflect.Type, name string, took time.Duration, err error) {
		fmt.Printf("[MIRX] invoke %v.%v took %v, err: %v \n", target, name, took, err)
	}
}

func (d *defaultLogger) MemberFieldAccess() FieldAccess {
	return func(target reflect.Type, name string, write bool, err error) {
		fmt.Printf("[MIRX] field %v.%v write: %v, err: %v \n", target, name, write, err)
	}
}

func (d *defaultLogger) Log() Log {
	return func(message string, args ...interface{}) {
		fmt.Printf("[MIRX] "+message+" \n", args...)
	}
}
