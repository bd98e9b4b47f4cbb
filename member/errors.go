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
	"fmt"
)

// categoryError carries a category sentinel and an optional underlying cause.
type categoryError struct {
	kind  error
	cause error
	msg   string
}

// category wraps a failure into one of the apis error categories so callers
// can branch with errors.Is on the sentinel, and still reach the cause.
func category(kind, cause error, format string, args ...interface{}) error {
	return &categoryError{kind: kind, cause: cause, msg: fmt.Sprintf(format, args...)}
}

func (e *categoryError) Error() string {
	msg := e.kind.Error() + ": " + e.msg
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap exposes both the category sentinel and the cause to errors.Is/As.
func (e *categoryError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}
