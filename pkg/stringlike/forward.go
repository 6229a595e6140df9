// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stringlike

import (
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
	"strings"
	"unicode/utf8"
)

var (
	textType  = reflect.TypeOf(Text(""))
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// Call is the dynamic escape hatch: it resolves name against the exported
// method set of Text at call time and invokes it on the current text.
//
// Prefer Text() or the explicit wrappers when the operation is known at
// compile time; Call exists for callers that only know the operation name at
// run time (templates, scripting bridges, configuration).
//
// Resolution tries the exact method name first, then (unless WithExactNames
// was given) a match ignoring case and underscores. An unresolved name fails
// with *AttributeNotFoundError carrying name unchanged.
//
// Arguments are bound to the method parameters: assignable values are used
// as is, text-valued operands bind to string parameters, one code point texts
// bind to rune parameters and integers convert between integer kinds when
// the value fits. A variadic method also accepts its whole variadic slice as
// the last argument. Binding failures match ErrInvalidOperand.
//
// The result is the method's single non-error result, a []any when there are
// several, or nil when there are none. An error returned by the method is
// returned unchanged. A panic inside the method is recovered and returned as
// a *PanicError.
func (f Facade) Call(name string, args ...any) (v any, err error) {
	m, ok := f.resolve(name)
	if !ok {
		if l := f.opts.log(); l != nil {
			l.Warn("stringlike: unresolved operation", "name", name)
		}
		return nil, &AttributeNotFoundError{Name: name}
	}
	fn := reflect.ValueOf(f.Text()).Method(m.Index)
	in, spread, err := bindArgs(fn.Type(), m.Name, args)
	if err != nil {
		return nil, err
	}
	if l := f.opts.log(); l != nil {
		l.Debug("stringlike: forwarding", "name", name, "method", m.Name, "args", len(args))
	}
	defer func() {
		if r := recover(); r != nil {
			pe := &PanicError{Name: m.Name, Value: r, Stack: debug.Stack()}
			if l := f.opts.log(); l != nil {
				l.Error("stringlike: forwarded operation panicked", "method", m.Name, "panic", r)
			}
			v, err = nil, pe
		}
	}()
	var out []reflect.Value
	if spread {
		out = fn.CallSlice(in)
	} else {
		out = fn.Call(in)
	}
	return results(out)
}

// Has reports whether Call can resolve name.
func (f Facade) Has(name string) bool {
	_, ok := f.resolve(name)
	return ok
}

func (f Facade) resolve(name string) (reflect.Method, bool) {
	if m, ok := textType.MethodByName(name); ok {
		return m, true
	}
	if f.opts.exact() || name == "" {
		return reflect.Method{}, false
	}
	key := foldName(name)
	for i := 0; i < textType.NumMethod(); i++ {
		if m := textType.Method(i); foldName(m.Name) == key {
			return m, true
		}
	}
	return reflect.Method{}, false
}

func foldName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

// bindArgs converts args to the parameter types of ft. spread is true when the
// last argument is the variadic slice itself and must go through CallSlice.
func bindArgs(ft reflect.Type, name string, args []any) (in []reflect.Value, spread bool, err error) {
	nIn := ft.NumIn()
	variadic := ft.IsVariadic()
	fixed := nIn
	if variadic {
		fixed--
		if len(args) == nIn && args[nIn-1] != nil && reflect.TypeOf(args[nIn-1]).AssignableTo(ft.In(nIn-1)) {
			spread = true
		}
	}
	switch {
	case variadic && len(args) < fixed:
		return nil, false, invalidOperand("%s takes at least %d argument(s), got %d", name, fixed, len(args))
	case !variadic && len(args) != nIn:
		return nil, false, invalidOperand("%s takes %d argument(s), got %d", name, nIn, len(args))
	}

	in = make([]reflect.Value, len(args))
	var errs error
	for i, a := range args {
		pt := ft.In(min(i, nIn-1))
		if variadic && i >= fixed && !spread {
			pt = ft.In(nIn - 1).Elem()
		}
		v, err := bindArg(a, pt)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%w: %s argument %d: %v", ErrInvalidOperand, name, i, err))
			continue
		}
		in[i] = v
	}
	if errs != nil {
		return nil, false, errs
	}
	return in, spread, nil
}

func bindArg(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Map, reflect.Slice, reflect.Pointer, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not a %s", pt)
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(pt) {
		return v, nil
	}
	switch {
	case pt.Kind() == reflect.String:
		if s, ok := TextOf(a); ok {
			return reflect.ValueOf(s).Convert(pt), nil
		}
	case pt.Kind() == reflect.Int32 && v.Kind() == reflect.String:
		s := v.String()
		if utf8.RuneCountInString(s) == 1 {
			r, _ := utf8.DecodeRuneInString(s)
			return reflect.ValueOf(r).Convert(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("%q is not a single code point", s)
	case isIntegerKind(pt.Kind()) && isIntegerKind(v.Kind()):
		c := v.Convert(pt)
		if c.Convert(v.Type()).Interface() != v.Interface() || (v.CanInt() && v.Int() < 0) != (c.CanInt() && c.Int() < 0) {
			return reflect.Value{}, fmt.Errorf("%v overflows %s", a, pt)
		}
		return c, nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %T as %s", a, pt)
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func results(out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			err = out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	values := make([]any, len(out))
	for i, v := range out {
		values[i] = v.Interface()
	}
	return values, err
}
