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
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Format treats the text as a template and substitutes its replacement
// fields with args.
//
// A replacement field is written {name!conversion:spec}, every part being
// optional:
//
//   - name is empty (automatic numbering), a decimal position into args, or
//     a key (FormatMap only). Automatic and manual numbering cannot be mixed.
//   - conversion is s (text value), r (quoted) or a (quoted, ASCII only).
//   - spec is [[fill]align][sign][0][width][.precision][type] with align in
//     <>^=, sign in +- and space, and type in s d b o x X e E f F g G %.
//
// Without a type, integers render in decimal and floats in their shortest
// round-tripping form, keeping a fractional part or an exponent (1.0 renders
// as "1.0"). Precision is not allowed on integers, and the s type only
// accepts text. Widths and precisions are bounded.
//
// "{{" and "}}" produce literal braces. Attribute and item access
// ({0.name}, {0[1]}) and nested fields are not supported.
//
// Every failure matches ErrFormat.
func (t Text) Format(args ...any) (string, error) {
	return format(string(t), args, nil)
}

// FormatMap is Format with named fields resolved against values.
func (t Text) FormatMap(values map[string]any) (string, error) {
	return format(string(t), nil, values)
}

type numbering int

const (
	unnumbered numbering = iota
	automatic
	manual
)

type formatter struct {
	args  []any
	named map[string]any
	next  int
	mode  numbering
}

func format(tpl string, args []any, named map[string]any) (string, error) {
	f := &formatter{args: args, named: named}
	var b strings.Builder
	b.Grow(len(tpl))
	for i := 0; i < len(tpl); {
		j := strings.IndexAny(tpl[i:], "{}")
		if j < 0 {
			b.WriteString(tpl[i:])
			break
		}
		b.WriteString(tpl[i : i+j])
		i += j
		if i+1 < len(tpl) && tpl[i+1] == tpl[i] {
			b.WriteByte(tpl[i])
			i += 2
			continue
		}
		if tpl[i] == '}' {
			return "", formatError("single '}' encountered at byte %d", i)
		}
		end := strings.IndexByte(tpl[i+1:], '}')
		if end < 0 {
			return "", formatError("single '{' encountered at byte %d", i)
		}
		field := tpl[i+1 : i+1+end]
		if strings.IndexByte(field, '{') >= 0 {
			return "", formatError("nested replacement fields are not supported: %q", field)
		}
		s, err := f.field(field)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
		i += end + 2
	}
	return b.String(), nil
}

func (f *formatter) field(field string) (string, error) {
	name, conv, spec := field, "", ""
	if i := strings.IndexAny(field, "!:"); i >= 0 {
		name = field[:i]
		rest := field[i:]
		if rest[0] == '!' {
			if len(rest) < 2 {
				return "", formatError("missing conversion specifier in field %q", field)
			}
			conv = rest[1:2]
			rest = rest[2:]
			if rest != "" && rest[0] != ':' {
				return "", formatError("expected ':' after conversion specifier in field %q", field)
			}
		}
		if rest != "" {
			spec = rest[1:]
		}
	}

	v, err := f.lookup(name)
	if err != nil {
		return "", err
	}
	if conv != "" {
		if v, err = convert(v, conv); err != nil {
			return "", err
		}
	}
	fs, err := parseSpec(spec)
	if err != nil {
		return "", err
	}
	return fs.render(v)
}

func (f *formatter) lookup(name string) (any, error) {
	switch {
	case name == "":
		if f.mode == manual {
			return nil, formatError("cannot switch from manual field numbering to automatic field numbering")
		}
		f.mode = automatic
		if f.next >= len(f.args) {
			return nil, formatError("replacement index %d out of range for %d positional argument(s)", f.next, len(f.args))
		}
		v := f.args[f.next]
		f.next++
		return v, nil
	case isDecimal(name):
		if f.mode == automatic {
			return nil, formatError("cannot switch from automatic field numbering to manual field numbering")
		}
		f.mode = manual
		n, err := strconv.Atoi(name)
		if err != nil || n >= len(f.args) {
			return nil, formatError("replacement index %s out of range for %d positional argument(s)", name, len(f.args))
		}
		return f.args[n], nil
	case strings.ContainsAny(name, ".["):
		return nil, formatError("attribute and item access are not supported: %q", name)
	}
	v, ok := f.named[name]
	if !ok {
		return nil, formatError("missing key %q", name)
	}
	return v, nil
}

func convert(v any, conv string) (any, error) {
	switch conv {
	case "s":
		return display(v), nil
	case "r", "a":
		s, ok := TextOf(v)
		if !ok {
			return fmt.Sprintf("%#v", v), nil
		}
		if conv == "a" {
			return strconv.QuoteToASCII(s), nil
		}
		return strconv.Quote(s), nil
	}
	return nil, formatError("unknown conversion specifier %q", conv)
}

func display(v any) string {
	if s, ok := TextOf(v); ok {
		return s
	}
	return fmt.Sprint(v)
}

type formatSpec struct {
	fill  rune
	align rune
	sign  rune
	zero  bool
	width int
	prec  int
	verb  rune
}

func parseSpec(spec string) (formatSpec, error) {
	fs := formatSpec{fill: ' ', prec: -1}
	r := []rune(spec)
	i := 0
	switch {
	case len(r) >= 2 && isAlign(r[1]):
		fs.fill, fs.align = r[0], r[1]
		i = 2
	case len(r) >= 1 && isAlign(r[0]):
		fs.align = r[0]
		i = 1
	}
	if i < len(r) && (r[i] == '+' || r[i] == '-' || r[i] == ' ') {
		fs.sign = r[i]
		i++
	}
	if i < len(r) && r[i] == '0' {
		fs.zero = true
		i++
	}
	start := i
	for i < len(r) && r[i] >= '0' && r[i] <= '9' {
		i++
	}
	if i > start {
		w, err := specNumber(string(r[start:i]))
		if err != nil {
			return fs, err
		}
		fs.width = w
	}
	if i < len(r) && r[i] == '.' {
		i++
		start = i
		for i < len(r) && r[i] >= '0' && r[i] <= '9' {
			i++
		}
		if i == start {
			return fs, formatError("format specifier missing precision: %q", spec)
		}
		p, err := specNumber(string(r[start:i]))
		if err != nil {
			return fs, err
		}
		fs.prec = p
	}
	if i < len(r) {
		fs.verb = r[i]
		i++
	}
	if i < len(r) {
		return fs, formatError("invalid format specifier %q", spec)
	}
	return fs, nil
}

// specNumber parses a width or a precision.
func specNumber(digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, formatError("too many decimal digits in format string")
	}
	if n > maxResultBytes {
		return 0, formatError("width or precision %d exceeds %d", n, maxResultBytes)
	}
	return n, nil
}

func (fs formatSpec) render(v any) (string, error) {
	var sign, body string
	numeric := true
	switch fs.verb {
	case 0, 's':
		if fs.verb == 0 && isNumber(v) {
			neg, digits, err := fs.number(v)
			if err != nil {
				return "", err
			}
			sign, body = fs.signOf(neg), digits
			break
		}
		if fs.verb == 's' && isNumber(v) {
			return "", formatError("unknown format code 's' for %T", v)
		}
		numeric = false
		body = display(v)
		if fs.prec >= 0 && utf8.RuneCountInString(body) > fs.prec {
			body = string([]rune(body)[:fs.prec])
		}
		if fs.sign != 0 {
			return "", formatError("sign not allowed in string format specifier")
		}
	default:
		neg, digits, err := fs.number(v)
		if err != nil {
			return "", err
		}
		sign, body = fs.signOf(neg), digits
	}

	align, fill := fs.align, fs.fill
	if fs.zero && align == 0 {
		align, fill = '=', '0'
	}
	if align == 0 {
		if numeric {
			align = '>'
		} else {
			align = '<'
		}
	}
	if align == '=' && !numeric {
		return "", formatError("'=' alignment not allowed in string format specifier")
	}

	pad := fs.width - utf8.RuneCountInString(sign) - utf8.RuneCountInString(body)
	if pad <= 0 {
		return sign + body, nil
	}
	switch align {
	case '<':
		return sign + body + strings.Repeat(string(fill), pad), nil
	case '^':
		left := pad / 2
		return strings.Repeat(string(fill), left) + sign + body + strings.Repeat(string(fill), pad-left), nil
	case '=':
		return sign + strings.Repeat(string(fill), pad) + body, nil
	}
	return strings.Repeat(string(fill), pad) + sign + body, nil
}

func (fs formatSpec) signOf(neg bool) string {
	switch {
	case neg:
		return "-"
	case fs.sign == '+':
		return "+"
	case fs.sign == ' ':
		return " "
	}
	return ""
}

// number renders v without its sign according to the spec verb.
func (fs formatSpec) number(v any) (neg bool, digits string, err error) {
	switch fs.verb {
	case 0:
		if mag, n, ok := integer(v); ok {
			if fs.prec >= 0 {
				return false, "", formatError("precision not allowed in integer format specifier")
			}
			return n, strconv.FormatUint(mag, 10), nil
		}
		x, _ := float(v)
		return math.Signbit(x), plainFloat(math.Abs(x), fs.prec), nil
	case 'd', 'b', 'o', 'x', 'X':
		mag, n, ok := integer(v)
		if !ok {
			return false, "", formatError("format code %q requires an integer, got %T", fs.verb, v)
		}
		if fs.prec >= 0 {
			return false, "", formatError("precision not allowed in integer format specifier")
		}
		base := map[rune]int{'d': 10, 'b': 2, 'o': 8, 'x': 16, 'X': 16}[fs.verb]
		digits = strconv.FormatUint(mag, base)
		if fs.verb == 'X' {
			digits = strings.ToUpper(digits)
		}
		return n, digits, nil
	case 'e', 'E', 'f', 'F', 'g', 'G', '%':
		x, ok := float(v)
		if !ok {
			return false, "", formatError("format code %q requires a number, got %T", fs.verb, v)
		}
		prec := fs.prec
		if prec < 0 {
			prec = 6
		}
		verb, suffix := byte(fs.verb), ""
		switch fs.verb {
		case 'F':
			verb = 'f'
		case '%':
			x, verb, suffix = x*100, 'f', "%"
		}
		neg = math.Signbit(x)
		if s, ok := special(math.Abs(x)); ok {
			digits = s
		} else {
			digits = strconv.FormatFloat(math.Abs(x), verb, prec, 64)
		}
		if fs.verb == 'F' || fs.verb == 'E' || fs.verb == 'G' {
			digits = strings.ToUpper(digits)
		}
		return neg, digits + suffix, nil
	}
	return false, "", formatError("unknown format code %q for %T", fs.verb, v)
}

// plainFloat renders a non-negative float for a spec without a type: the
// shortest round-tripping form when prec is negative, general format with
// prec significant digits otherwise. Fixed-point results always keep a
// fractional part, so 1.0 renders as "1.0", never "1".
func plainFloat(x float64, prec int) string {
	if s, ok := special(x); ok {
		return s
	}
	var digits string
	if prec < 0 {
		e := strconv.FormatFloat(x, 'e', -1, 64)
		exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
		if exp < -4 || exp >= 16 {
			return e
		}
		digits = strconv.FormatFloat(x, 'f', -1, 64)
	} else {
		digits = strconv.FormatFloat(x, 'g', prec, 64)
	}
	if !strings.ContainsAny(digits, ".e") {
		digits += ".0"
	}
	return digits
}

// special renders infinities and NaN the way the template language does.
func special(x float64) (string, bool) {
	switch {
	case math.IsInf(x, 0):
		return "inf", true
	case math.IsNaN(x):
		return "nan", true
	}
	return "", false
}

// integer returns the magnitude and sign of an integer kind value.
func integer(v any) (mag uint64, neg bool, ok bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i < 0 {
			return uint64(-(i + 1)) + 1, true, true
		}
		return uint64(i), false, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), false, true
	}
	return 0, false, false
}

func float(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return 0, false
}

func isNumber(v any) bool {
	_, ok := float(v)
	return ok
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^' || r == '='
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
