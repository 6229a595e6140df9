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
	"math"
	"strings"
	"unicode/utf8"
)

// Facade exposes the read-only text surface derived from a host Provider.
//
// A Facade is a stateless adapter: it keeps a reference to its host and
// nothing else. Every operation asks the host for its canonical text once
// and derives its result from that snapshot, so consecutive calls always
// reflect the current host state.
//
// Facade values are cheap to copy. The zero Facade behaves as the empty text.
//
// Go has no operator overloading, so the operators of a native text value map
// to methods:
//
//	len(f)        f.Len()
//	f[i]          f.At(i)
//	f[a:b]        f.Slice(a, b)          (Omit for an empty bound)
//	f[a:b:s]      f.SliceStep(a, b, s)
//	x in f        f.Contains(x)
//	f + x, x + f  f.Add(x), f.RAdd(x)
//	f * n, n * f  f.Mul(n), f.RMul(n)
//	f == x        f.Equal(x)
//	f < x ...     f.Less(x), f.LessEqual(x), f.Greater(x), f.GreaterEqual(x)
//	bool(f)       f.Bool()
//
// Operations that are not modeled explicitly are reached through Text()
// (static) or Call (dynamic, by name).
type Facade struct {
	host Provider
	opts *options
}

// New returns a Facade over host.
func New(host Provider, opts ...Option) Facade {
	f := Facade{host: host}
	if len(opts) > 0 {
		o := &options{}
		for _, opt := range opts {
			if opt != nil {
				opt(o)
			}
		}
		f.opts = o
	}
	return f
}

// Host returns the wrapped Provider.
func (f Facade) Host() Provider {
	return f.host
}

// UTF8String returns the host's current canonical text.
//
// It makes a Facade a Provider itself, so facades compose.
func (f Facade) UTF8String() UTF8String {
	if f.host == nil {
		return ""
	}
	return f.host.UTF8String()
}

// String implements fmt.Stringer.
func (f Facade) String() string {
	return f.UTF8String()
}

// Text returns the current canonical text as the native Text type.
func (f Facade) Text() Text {
	return Text(f.UTF8String())
}

// Len returns the number of code points.
func (f Facade) Len() int {
	return utf8.RuneCountInString(f.UTF8String())
}

// Bool reports whether the text is non-empty.
func (f Facade) Bool() bool {
	return f.UTF8String() != ""
}

// And returns f when f is empty, x otherwise.
func (f Facade) And(x any) any {
	if !f.Bool() {
		return f
	}
	return x
}

// Or returns f when f is non-empty, x otherwise.
func (f Facade) Or(x any) any {
	if f.Bool() {
		return f
	}
	return x
}

// At returns the code point at position i as a one code point text.
// A negative i counts from the end.
func (f Facade) At(i int) (UTF8String, error) {
	runes := []rune(f.UTF8String())
	j := i
	if j < 0 {
		j += len(runes)
	}
	if j < 0 || j >= len(runes) {
		return "", &IndexOutOfRangeError{Index: i, Len: len(runes)}
	}
	return string(runes[j]), nil
}

// Slice returns the code points in [start, stop). Negative bounds count from
// the end, Omit stands for an empty bound and out-of-range bounds are
// clamped. Slice never fails.
func (f Facade) Slice(start, stop int) UTF8String {
	s, _ := f.SliceStep(start, stop, 1)
	return s
}

// SliceStep is Slice with a stride. A negative step walks backwards; with an
// omitted start and stop, SliceStep(Omit, Omit, -1) is the reversed text.
// A zero step is the only failure.
func (f Facade) SliceStep(start, stop, step int) (UTF8String, error) {
	if step == 0 {
		return "", invalidOperand("slice step cannot be zero")
	}
	runes := []rune(f.UTF8String())
	lo, _, n := sliceBounds(len(runes), start, stop, step)
	if n == 0 {
		return "", nil
	}
	if step == 1 {
		return string(runes[lo : lo+n]), nil
	}
	var b strings.Builder
	b.Grow(n)
	for k, i := 0, lo; k < n; k, i = k+1, i+step {
		b.WriteRune(runes[i])
	}
	return b.String(), nil
}

// Contains reports whether x's text value occurs as a contiguous sequence in
// the text. The empty text is contained in every text.
func (f Facade) Contains(x any) (bool, error) {
	sub, err := operandText(x, "membership")
	if err != nil {
		return false, err
	}
	return strings.Contains(f.UTF8String(), sub), nil
}

// Add returns the text followed by x's text value.
//
// The result is plain text, not another Facade.
func (f Facade) Add(x any) (UTF8String, error) {
	other, err := operandText(x, "concatenation")
	if err != nil {
		return "", err
	}
	return f.UTF8String() + other, nil
}

// RAdd returns x's text value followed by the text.
func (f Facade) RAdd(x any) (UTF8String, error) {
	other, err := operandText(x, "concatenation")
	if err != nil {
		return "", err
	}
	return other + f.UTF8String(), nil
}

// Mul returns the text repeated n times. n may be any Go integer type and
// must not be negative.
func (f Facade) Mul(n any) (UTF8String, error) {
	c, err := countOf(n)
	if err != nil {
		return "", err
	}
	return f.Repeat(c)
}

// RMul is Mul with the count on the left-hand side. Repetition commutes, so
// the result is identical.
func (f Facade) RMul(n any) (UTF8String, error) {
	return f.Mul(n)
}

// Repeat returns the text repeated n times.
func (f Facade) Repeat(n int) (UTF8String, error) {
	if n < 0 {
		return "", invalidOperand("repetition count must not be negative, got %d", n)
	}
	t := f.UTF8String()
	if t == "" || n == 0 {
		return "", nil
	}
	if len(t) > maxResultBytes/n {
		return "", invalidOperand("repetition result too large: %d bytes %d times exceeds %d bytes", len(t), n, maxResultBytes)
	}
	return strings.Repeat(t, n), nil
}

// maxResultBytes bounds the size of a text built by repetition and of
// format widths and precisions.
const maxResultBytes = 1 << 30

// Omit marks a slice bound as unspecified, like the empty bound in t[a:].
const Omit = math.MinInt

// sliceBounds resolves start, stop and step against length using the native
// slicing rules. It returns the first index, the resolved stop and the
// number of selected code points.
func sliceBounds(length, start, stop, step int) (lo, hi, n int) {
	if start == Omit {
		if step < 0 {
			start = length - 1
		} else {
			start = 0
		}
	} else {
		start = clampBound(start, length, step)
	}
	if stop == Omit {
		if step < 0 {
			stop = -1
		} else {
			stop = length
		}
	} else {
		stop = clampBound(stop, length, step)
	}
	switch {
	case step > 0 && start < stop:
		n = (stop-start-1)/step + 1
	case step < 0 && stop < start:
		n = (start-stop-1)/(-step) + 1
	}
	return start, stop, n
}

func clampBound(i, length, step int) int {
	if i < 0 {
		i += length
		if i < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
		return i
	}
	if i >= length {
		if step < 0 {
			return length - 1
		}
		return length
	}
	return i
}
