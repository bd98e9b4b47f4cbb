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

package apis

import (
	"errors"
	"reflect"
)

var (
	// ErrNotFound categorizes invocations whose member lookup produced no
	// match. Plain lookups report misses as (nil, false) instead.
	ErrNotFound = errors.New("mirx: member not found")

	// ErrAccess categorizes failures caused by the state of the target or
	// member: nil or invalid targets, unaddressable values, unexported
	// members with unexported access disabled.
	ErrAccess = errors.New("mirx: member not accessible")

	// ErrArgument categorizes argument count or type mismatches detected
	// before the member is called.
	ErrArgument = errors.New("mirx: argument mismatch")

	// ErrTarget categorizes failures raised by the member itself: a panic
	// inside the callee is recovered and wrapped under this sentinel.
	// An error returned by the callee as an ordinary result is not a
	// failure and is passed through untouched.
	ErrTarget = errors.New("mirx: target failed")
)

// Invoker executes resolved members and translates reflect-layer failures into
// the four error categories above. Every returned error matches exactly one
// category sentinel via errors.Is, and additionally matches the underlying
// cause when one exists.
type Invoker interface {
	// Invoke resolves a method by name and argument types, then calls it on
	// target. Results are the callee's return values.
	Invoke(target any, name string, args ...any) ([]any, error)

	// Call invokes an already-resolved member handle on target.
	Call(m *Member, target any, args ...any) ([]any, error)

	// Get reads the named field from target, resolving promoted and
	// unexported fields per configuration.
	Get(target any, name string) (any, error)

	// Set writes the named field on target. The target must be addressable
	// (a pointer to struct).
	Set(target any, name string, value any) error

	// New constructs a value of t via a registered constructor matching the
	// argument types, falling back to the zero value when no constructor is
	// registered and no arguments are given.
	New(t reflect.Type, args ...any) (any, error)
}
