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
	"reflect"
	"time"

	"github.com/pkg/errors"
	"github.com/viant/toolbox"

	"dirpx.dev/mirx/apis"
	"dirpx.dev/mirx/logger"
)

// NewInvoker returns an apis.Invoker executing members resolved by fnd.
func NewInvoker(cfg apis.Config, fnd apis.Finder, opts ...Option) apis.Invoker {
	o := newOptions(opts...)
	return &invoker{
		cfg:         cfg,
		finder:      fnd,
		log:         o.log,
		invocations: o.invocations(),
	}
}

type invoker struct {
	cfg         apis.Config
	finder      apis.Finder
	log         *logger.Adapter
	invocations *logger.CounterAdapter
}

var _ apis.Invoker = (*invoker)(nil)

// Invoke resolves a method on target by name and the runtime argument types,
// then calls it. Results are returned positionally; an error returned by the
// callee itself is an ordinary result, not an invocation failure.
func (i *invoker) Invoke(target interface{}, name string, args ...interface{}) ([]interface{}, error) {
	if target == nil {
		return nil, category(apis.ErrAccess, nil, "nil target for method %q", name)
	}
	t := reflect.TypeOf(target)
	argTypes := make([]reflect.Type, len(args))
	for idx, arg := range args {
		if arg != nil {
			argTypes[idx] = reflect.TypeOf(arg)
		}
	}
	m, ok := i.finder.Method(t, name, argTypes...)
	if !ok {
		// The name alone deciding the miss tells lookup and argument
		// failures apart.
		if _, exists := i.finder.Method(t, name); exists {
			return nil, category(apis.ErrArgument, nil, "no variant of %q on %v accepts (%s)", name, t, signatureOf(argTypes))
		}
		return nil, category(apis.ErrNotFound, nil, "no method %q on %v", name, t)
	}
	return i.Call(m, target, args...)
}

// Call executes a previously resolved member handle: a method call, a
// constructor invocation, or a field read (no arguments) / write (one
// argument).
func (i *invoker) Call(m *apis.Member, target interface{}, args ...interface{}) ([]interface{}, error) {
	if m == nil {
		return nil, category(apis.ErrNotFound, nil, "nil member")
	}
	switch m.Kind {
	case apis.KindMethod:
		return i.callMethod(m, target, args)
	case apis.KindConstructor:
		out, err := i.construct(m, args)
		if err != nil {
			return nil, err
		}
		return []interface{}{out}, nil
	case apis.KindField:
		switch len(args) {
		case 0:
			out, err := i.readField(m, target)
			if err != nil {
				return nil, err
			}
			return []interface{}{out}, nil
		case 1:
			return nil, i.writeField(m, target, args[0])
		}
		return nil, category(apis.ErrArgument, nil, "field %q takes zero or one argument, got %d", m.Name, len(args))
	}
	return nil, category(apis.ErrNotFound, nil, "unsupported member kind %v", m.Kind)
}

// New constructs a value of t with a registered factory matching args, or the
// zero value when t has no factories and args is empty.
func (i *invoker) New(t reflect.Type, args ...interface{}) (interface{}, error) {
	if t == nil {
		return nil, category(apis.ErrArgument, nil, "nil type")
	}
	argTypes := make([]reflect.Type, len(args))
	for idx, arg := range args {
		if arg != nil {
			argTypes[idx] = reflect.TypeOf(arg)
		}
	}
	m, ok := i.finder.Constructor(t, argTypes...)
	if !ok {
		return nil, category(apis.ErrNotFound, nil, "no constructor for %v accepting (%s)", t, signatureOf(argTypes))
	}
	return i.construct(m, args)
}

func (i *invoker) callMethod(m *apis.Member, target interface{}, args []interface{}) (results []interface{}, err error) {
	started := time.Now()
	onDone := i.invocations.Begin(started)
	defer func() {
		onDone(time.Now())
		if err != nil {
			i.invocations.IncrementValue(logger.Error)
		} else {
			i.invocations.IncrementValue(logger.Success)
		}
		i.log.MemberInvocation(reflect.TypeOf(target), m.Name, time.Since(started), err)
	}()
	if target == nil {
		return nil, category(apis.ErrAccess, nil, "nil target for method %q", m.Name)
	}
	recv, err := i.receiver(m, target)
	if err != nil {
		return nil, err
	}
	callable, err := i.bind(recv, m)
	if err != nil {
		return nil, err
	}
	in, err := i.arguments(callable.Type(), m.Name, args)
	if err != nil {
		return nil, err
	}
	out, err := safeCall(m.Name, callable, in)
	if err != nil {
		return nil, err
	}
	results = make([]interface{}, len(out))
	for idx, v := range out {
		results[idx] = v.Interface()
	}
	return results, nil
}

// receiver navigates target down the member's embedding path to the value
// that owns the member.
func (i *invoker) receiver(m *apis.Member, target interface{}) (reflect.Value, error) {
	v := reflect.ValueOf(target)
	if !v.IsValid() {
		return reflect.Value{}, category(apis.ErrAccess, nil, "invalid target for %q", m.Name)
	}
	for _, idx := range m.Path {
		for v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return reflect.Value{}, category(apis.ErrAccess, nil, "nil value on path to %v", m.Owner)
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct || idx >= v.NumField() {
			return reflect.Value{}, category(apis.ErrAccess, nil, "stale member path on %v", v.Type())
		}
		v = v.Field(idx)
	}
	return v, nil
}

// bind returns the member's callable bound to recv, taking the address when a
// pointer receiver requires it.
func (i *invoker) bind(recv reflect.Value, m *apis.Member) (reflect.Value, error) {
	if recv.Kind() == reflect.Interface {
		if recv.IsNil() {
			return reflect.Value{}, category(apis.ErrAccess, nil, "nil interface receiver for method %q", m.Name)
		}
		recv = recv.Elem()
	}
	if fn := recv.MethodByName(m.Name); fn.IsValid() {
		return fn, nil
	}
	if recv.CanAddr() {
		if fn := recv.Addr().MethodByName(m.Name); fn.IsValid() {
			return fn, nil
		}
	}
	return reflect.Value{}, category(apis.ErrAccess, nil, "method %q needs an addressable %v receiver", m.Name, m.Owner)
}

// arguments adapts raw arguments to the callable's parameter types.
func (i *invoker) arguments(ft reflect.Type, name string, args []interface{}) ([]reflect.Value, error) {
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, category(apis.ErrArgument, nil, "%q takes at least %d argument(s), got %d", name, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, category(apis.ErrArgument, nil, "%q takes %d argument(s), got %d", name, fixed, len(args))
	}
	in := make([]reflect.Value, 0, len(args))
	for idx, arg := range args {
		want := ft.In(ft.NumIn() - 1)
		if idx < fixed {
			want = ft.In(idx)
		} else {
			want = want.Elem()
		}
		v, err := i.argument(want, name, arg)
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}
	return in, nil
}

// argument adapts a single argument to the wanted type, coercing when the
// configuration allows it.
func (i *invoker) argument(want reflect.Type, name string, arg interface{}) (reflect.Value, error) {
	if arg == nil {
		if !nilable(want) {
			return reflect.Value{}, category(apis.ErrArgument, nil, "%q: nil is not a valid %v", name, want)
		}
		return reflect.Zero(want), nil
	}
	v := reflect.ValueOf(arg)
	if v.Type() == want {
		return v, nil
	}
	if v.Type().AssignableTo(want) {
		return v, nil
	}
	if i.cfg.CoerceArguments {
		if v.Type().ConvertibleTo(want) && compatibleConversion(v.Type(), want) {
			return v.Convert(want), nil
		}
		if coerced, handled, err := i.stateArgument(want, arg); handled {
			if err != nil {
				return reflect.Value{}, err
			}
			return coerced, nil
		}
		if !structish(v.Type()) {
			converted := reflect.New(want)
			if err := toolbox.DefaultConverter.AssignConverted(converted.Interface(), arg); err == nil {
				return converted.Elem(), nil
			}
		}
	}
	return reflect.Value{}, category(apis.ErrArgument, nil, "%q: cannot use %T as %v", name, arg, want)
}

// structish reports whether t is a struct or struct pointer other than
// time.Time, which converts as a scalar.
func structish(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct && t != timeType
}

var timeType = reflect.TypeOf(time.Time{})

// compatibleConversion rejects reflect conversions that silently change the
// meaning of a value, such as int to string.
func compatibleConversion(from, to reflect.Type) bool {
	if isNumeric(from) && to.Kind() == reflect.String {
		return false
	}
	return true
}

func isNumeric(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// construct invokes a factory member, or materializes the zero value for the
// implicit constructor.
func (i *invoker) construct(m *apis.Member, args []interface{}) (interface{}, error) {
	if !m.Func.IsValid() {
		if len(args) != 0 {
			return nil, category(apis.ErrArgument, nil, "zero-value constructor for %v takes no arguments", m.Owner)
		}
		return reflect.New(m.Owner).Elem().Interface(), nil
	}
	in, err := i.arguments(m.Func.Type(), m.Name, args)
	if err != nil {
		return nil, err
	}
	out, err := safeCall(m.Name, m.Func, in)
	if err != nil {
		return nil, err
	}
	if len(out) == 2 && !out[1].IsNil() {
		cause, _ := out[1].Interface().(error)
		return nil, category(apis.ErrTarget, cause, "constructor for %v failed", m.Owner)
	}
	return out[0].Interface(), nil
}

// safeCall runs fn.Call, converting a callee panic into an ErrTarget error
// that carries the recovered value as its cause.
func safeCall(name string, fn reflect.Value, in []reflect.Value) (out []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = errors.Errorf("%v", r)
			}
			out, err = nil, category(apis.ErrTarget, cause, "%q panicked", name)
		}
	}()
	return fn.Call(in), nil
}
