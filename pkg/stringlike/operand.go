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
)

// TextOf returns the text value of x and whether x has one.
//
// Text-valued operands are strings (including named string types), []rune,
// []byte (read as UTF‑8), any Provider (a Facade included) and any
// fmt.Stringer. A rune is an integer, not a text.
func TextOf(x any) (UTF8String, bool) {
	switch v := x.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case Text:
		return string(v), true
	case []rune:
		return string(v), true
	case []byte:
		return string(v), true
	case Provider:
		return v.UTF8String(), true
	case fmt.Stringer:
		return v.String(), true
	}
	if rv := reflect.ValueOf(x); rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func operandText(x any, op string) (UTF8String, error) {
	s, ok := TextOf(x)
	if !ok {
		return "", invalidOperand("%s: %T has no text value", op, x)
	}
	return s, nil
}

// countOf accepts any Go integer kind holding a non-negative value that fits
// in an int.
func countOf(n any) (int, error) {
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		c := v.Int()
		if c < 0 {
			return 0, invalidOperand("repetition count must not be negative, got %d", c)
		}
		if c > math.MaxInt {
			return 0, invalidOperand("repetition count %d overflows int", c)
		}
		return int(c), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		c := v.Uint()
		if c > math.MaxInt {
			return 0, invalidOperand("repetition count %d overflows int", c)
		}
		return int(c), nil
	}
	return 0, invalidOperand("repetition count must be an integer, got %T", n)
}
