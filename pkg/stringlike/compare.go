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

import "strings"

// Equal reports whether x's text value equals the text, code point for code
// point. An operand without a text value is never equal.
func (f Facade) Equal(x any) bool {
	other, ok := TextOf(x)
	return ok && f.UTF8String() == other
}

// NotEqual is the negation of Equal.
func (f Facade) NotEqual(x any) bool {
	return !f.Equal(x)
}

// Compare orders the text against x's text value lexicographically by code
// point. It returns -1, 0 or +1.
//
// UTF‑8 byte order is code point order, so the comparison runs on the
// encoded bytes directly.
func (f Facade) Compare(x any) (int, error) {
	other, err := operandText(x, "comparison")
	if err != nil {
		return 0, err
	}
	return strings.Compare(f.UTF8String(), other), nil
}

// Less reports f < x.
func (f Facade) Less(x any) (bool, error) {
	c, err := f.Compare(x)
	return c < 0, err
}

// LessEqual reports f <= x.
func (f Facade) LessEqual(x any) (bool, error) {
	c, err := f.Compare(x)
	return err == nil && c <= 0, err
}

// Greater reports f > x.
func (f Facade) Greater(x any) (bool, error) {
	c, err := f.Compare(x)
	return c > 0, err
}

// GreaterEqual reports f >= x.
func (f Facade) GreaterEqual(x any) (bool, error) {
	c, err := f.Compare(x)
	return err == nil && c >= 0, err
}

// Compare orders two text-valued operands, either of which may be a Facade.
// It is the reflected form of Facade.Compare ("a" < f is Compare("a", f) < 0).
func Compare(a, b any) (int, error) {
	x, err := operandText(a, "comparison")
	if err != nil {
		return 0, err
	}
	y, err := operandText(b, "comparison")
	if err != nil {
		return 0, err
	}
	return strings.Compare(x, y), nil
}

// Equal reports whether two operands have the same text value.
func Equal(a, b any) bool {
	x, ok := TextOf(a)
	if !ok {
		return false
	}
	y, ok := TextOf(b)
	return ok && x == y
}
