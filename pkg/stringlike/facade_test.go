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
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFacade_Len(t *testing.T) {
	for _, s := range samples {
		if got, want := wrap(s).Len(), utf8.RuneCountInString(s); got != want {
			t.Fatalf("unexpected length of %q: got %d want %d", s, got, want)
		}
	}
	if got, want := wrap("вгд").Len(), 3; got != want {
		t.Fatalf("unexpected length: got %d want %d", got, want)
	}
}

func TestFacade_At(t *testing.T) {
	f := wrap("abc")
	for i, want := range map[int]string{0: "a", 1: "b", 2: "c", -1: "c", -3: "a"} {
		got, err := f.At(i)
		if err != nil {
			t.Fatalf("At(%d) returned error: %v", i, err)
		}
		if got != want {
			t.Fatalf("unexpected At(%d): got %q want %q", i, got, want)
		}
	}

	_, err := f.At(3)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	var ie *IndexOutOfRangeError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *IndexOutOfRangeError, got %T", err)
	}
	if ie.Index != 3 || ie.Len != 3 {
		t.Fatalf("unexpected error detail: got %+v", ie)
	}
	if _, err := f.At(-4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for -4, got %v", err)
	}
}

func TestFacade_AtCountsCodePoints(t *testing.T) {
	f := wrap("вгд")
	if got, _ := f.At(0); got != "в" {
		t.Fatalf("unexpected At(0): got %q want %q", got, "в")
	}
	if got, _ := f.At(2); got != "д" {
		t.Fatalf("unexpected At(2): got %q want %q", got, "д")
	}
	if _, err := f.At(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}

	for _, s := range samples {
		runes := []rune(s)
		n := len(runes)
		for i := -n - 2; i <= n+1; i++ {
			got, err := wrap(s).At(i)
			inRange := i >= -n && i < n
			if inRange != (err == nil) {
				t.Fatalf("At(%d) on %q: unexpected error state %v", i, s, err)
			}
			if !inRange {
				continue
			}
			j := i
			if j < 0 {
				j += n
			}
			if got != string(runes[j]) {
				t.Fatalf("At(%d) on %q: got %q want %q", i, s, got, string(runes[j]))
			}
		}
	}
}

func TestFacade_Slice(t *testing.T) {
	cases := []struct {
		text        string
		start, stop int
		want        string
	}{
		{"abc", 1, Omit, "bc"},
		{"abc", Omit, -1, "ab"},
		{"abc", Omit, Omit, "abc"},
		{"abc", -100, 100, "abc"},
		{"abc", 5, 10, ""},
		{"abc", 2, 1, ""},
		{"abc", -2, Omit, "bc"},
		{"вгд", 1, Omit, "гд"},
		{"вгд", Omit, -1, "вг"},
		{"", 0, 10, ""},
	}
	for _, c := range cases {
		if got := wrap(c.text).Slice(c.start, c.stop); got != c.want {
			t.Fatalf("unexpected Slice(%d, %d) on %q: got %q want %q", c.start, c.stop, c.text, got, c.want)
		}
	}
}

func TestFacade_SliceStep(t *testing.T) {
	cases := []struct {
		text              string
		start, stop, step int
		want              string
	}{
		{"abcdef", Omit, Omit, 2, "ace"},
		{"abcdef", Omit, Omit, -1, "fedcba"},
		{"abcdef", 4, 1, -1, "edc"},
		{"abcdef", -1, -100, -2, "fdb"},
		{"abcdef", 100, Omit, -1, "fedcba"},
		{"abcdef", 1, 5, 3, "be"},
		{"abcdef", 1, 4, -1, ""},
		{"вгд", Omit, Omit, -1, "дгв"},
	}
	for _, c := range cases {
		got, err := wrap(c.text).SliceStep(c.start, c.stop, c.step)
		if err != nil {
			t.Fatalf("SliceStep returned error: %v", err)
		}
		if got != c.want {
			t.Fatalf("unexpected SliceStep(%d, %d, %d) on %q: got %q want %q", c.start, c.stop, c.step, c.text, got, c.want)
		}
	}

	if _, err := wrap("abc").SliceStep(Omit, Omit, 0); !errors.Is(err, ErrInvalidOperand) {
		t.Fatalf("expected ErrInvalidOperand for zero step, got %v", err)
	}
}

func TestFacade_SliceNeverFails(t *testing.T) {
	for _, s := range samples {
		runes := []rune(s)
		n := len(runes)
		for a := -n - 3; a <= n+3; a++ {
			for b := -n - 3; b <= n+3; b++ {
				lo, hi := clamp(a, n), clamp(b, n)
				want := ""
				if lo < hi {
					want = string(runes[lo:hi])
				}
				if got := wrap(s).Slice(a, b); got != want {
					t.Fatalf("unexpected Slice(%d, %d) on %q: got %q want %q", a, b, s, got, want)
				}
			}
		}
	}
}

// clamp resolves a forward slice bound the way native slicing does.
func clamp(i, n int) int {
	if i < 0 {
		i += n
	}
	return min(max(i, 0), n)
}

func TestFacade_Contains(t *testing.T) {
	f := wrap("abc")
	for sub, want := range map[string]bool{"a": true, "bc": true, "abc": true, "": true, "ac": false, "abcd": false} {
		got, err := f.Contains(sub)
		if err != nil {
			t.Fatalf("Contains(%q) returned error: %v", sub, err)
		}
		if got != want {
			t.Fatalf("unexpected Contains(%q): got %v want %v", sub, got, want)
		}
	}
	if ok, _ := wrap("вгд").Contains("г"); !ok {
		t.Fatalf("expected вгд to contain г")
	}
	if ok, _ := wrap("abc").Contains(wrap("b")); !ok {
		t.Fatalf("expected a facade operand to be accepted")
	}
	if _, err := f.Contains(42); !errors.Is(err, ErrInvalidOperand) {
		t.Fatalf("expected ErrInvalidOperand, got %v", err)
	}
}

func TestFacade_Concatenation(t *testing.T) {
	cases := []struct {
		left, right any
		want        string
	}{
		{wrap("abc"), "d", "abcd"},
		{"z", wrap("abc"), "zabc"},
		{wrap("a"), wrap("bc"), "abc"},
		{wrap("в"), "гд", "вгд"},
		{"в", wrap("гд"), "вгд"},
		{wrap("в"), wrap("гд"), "вгд"},
		{wrap("a"), []rune("bc"), "abc"},
		{wrap("a"), Text("bc"), "abc"},
	}
	for _, c := range cases {
		var got string
		var err error
		if f, ok := c.left.(Facade); ok {
			got, err = f.Add(c.right)
		} else {
			got, err = c.right.(Facade).RAdd(c.left)
		}
		if err != nil {
			t.Fatalf("concatenation returned error: %v", err)
		}
		if got != c.want {
			t.Fatalf("unexpected concatenation: got %q want %q", got, c.want)
		}
	}

	if _, err := wrap("a").Add(1); !errors.Is(err, ErrInvalidOperand) {
		t.Fatalf("expected ErrInvalidOperand, got %v", err)
	}
	if _, err := wrap("a").RAdd(nil); !errors.Is(err, ErrInvalidOperand) {
		t.Fatalf("expected ErrInvalidOperand, got %v", err)
	}
}

func TestFacade_ConcatenationMatchesNative(t *testing.T) {
	for _, s := range samples {
		for _, x := range samples {
			if got, _ := wrap(s).Add(x); got != s+x {
				t.Fatalf("unexpected %q + %q: got %q", s, x, got)
			}
			if got, _ := wrap(s).RAdd(x); got != x+s {
				t.Fatalf("unexpected %q + %q: got %q", x, s, got)
			}
		}
	}
}

func TestFacade_Repetition(t *testing.T) {
	if got, _ := wrap("abc").RMul(3); got != "abcabcabc" {
		t.Fatalf("unexpected 3 * f: got %q", got)
	}
	if got, _ := wrap("a").Mul(3); got != "aaa" {
		t.Fatalf("unexpected f * 3: got %q", got)
	}
	if got, _ := wrap("в").Mul(int8(3)); got != "ввв" {
		t.Fatalf("unexpected f * 3: got %q", got)
	}
	if got, _ := wrap("в").RMul(uint(3)); got != "ввв" {
		t.Fatalf("unexpected 3 * f: got %q", got)
	}

	for _, s := range samples {
		for n := 0; n < 4; n++ {
			left, err := wrap(s).Mul(n)
			if err != nil {
				t.Fatalf("Mul(%d) returned error: %v", n, err)
			}
			right, _ := wrap(s).RMul(n)
			if want := strings.Repeat(s, n); left != want || right != want {
				t.Fatalf("unexpected repetition of %q by %d: got %q and %q want %q", s, n, left, right, want)
			}
		}
	}

	for _, n := range []any{-1, int64(-3), 1.5, "3", nil, true, uint64(math.MaxUint64)} {
		if _, err := wrap("a").Mul(n); !errors.Is(err, ErrInvalidOperand) {
			t.Fatalf("expected ErrInvalidOperand for %v (%T), got %v", n, n, err)
		}
		if _, err := wrap("a").RMul(n); !errors.Is(err, ErrInvalidOperand) {
			t.Fatalf("expected ErrInvalidOperand for %v (%T), got %v", n, n, err)
		}
	}
	if _, err := wrap("ab").Repeat(math.MaxInt); !errors.Is(err, ErrInvalidOperand) {
		t.Fatalf("expected ErrInvalidOperand on overflow, got %v", err)
	}
	for _, n := range []any{math.MaxInt / 2, int64(1 << 30), uint32(1<<31 - 1)} {
		if _, err := wrap("ab").Mul(n); !errors.Is(err, ErrInvalidOperand) {
			t.Fatalf("expected ErrInvalidOperand for a result too large (%v), got %v", n, err)
		}
	}
	if got, err := wrap("").Mul(math.MaxInt); err != nil || got != "" {
		t.Fatalf("unexpected repetition of the empty text: got %q, %v", got, err)
	}
}

func TestFacade_Truthiness(t *testing.T) {
	if !wrap("abc").Bool() || !wrap("вгд").Bool() {
		t.Fatalf("expected non-empty facades to be true")
	}
	if wrap("").Bool() {
		t.Fatalf("expected empty facade to be false")
	}

	cases := []struct {
		got  any
		want string
	}{
		{wrap("").And(wrap("abc")), ""},
		{wrap("abc").And(wrap("")), ""},
		{wrap("a").And(wrap("bc")), "bc"},
		{wrap("a").And("bc"), "bc"},
		{wrap("").Or(wrap("abc")), "abc"},
		{wrap("abc").Or(wrap("")), "abc"},
		{wrap("a").Or(wrap("bc")), "a"},
		{wrap("a").Or("bc"), "a"},
		{wrap("в").And(wrap("гд")), "гд"},
		{wrap("").Or("вгд"), "вгд"},
	}
	for i, c := range cases {
		if !Equal(c.got, c.want) {
			t.Fatalf("case %d: unexpected selection: got %v want %q", i, c.got, c.want)
		}
	}
}

func TestFacade_ReflectsHostMutation(t *testing.T) {
	host := &mutable{s: "abc"}
	f := New(host)

	if got := f.Len(); got != 3 {
		t.Fatalf("unexpected length: got %d want %d", got, 3)
	}
	host.s = "вгдеж"
	if got := f.Len(); got != 5 {
		t.Fatalf("unexpected length after mutation: got %d want %d", got, 5)
	}
	if got, _ := f.At(-1); got != "ж" {
		t.Fatalf("unexpected At(-1) after mutation: got %q want %q", got, "ж")
	}

	before := host.calls
	_ = f.Upper()
	_, _ = f.Add("x")
	_ = f.Bool()
	if got := host.calls - before; got != 3 {
		t.Fatalf("expected one host call per operation: got %d calls want %d", got, 3)
	}
}

func TestFacade_ZeroValue(t *testing.T) {
	var f Facade
	if f.Len() != 0 || f.Bool() || f.UTF8String() != "" {
		t.Fatalf("expected the zero Facade to be the empty text")
	}
	if _, err := f.At(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if got, err := f.Call("upper"); err != nil || got != "" {
		t.Fatalf("unexpected Call on zero Facade: got %v, %v", got, err)
	}
}

func TestFacade_Composes(t *testing.T) {
	inner := wrap("abc")
	outer := New(inner)
	if got := outer.Upper(); got != "ABC" {
		t.Fatalf("unexpected Upper: got %q want %q", got, "ABC")
	}
	if !outer.Equal(inner) {
		t.Fatalf("expected a facade to equal the facade it wraps")
	}
	if outer.Host() != Provider(inner) {
		t.Fatalf("expected Host to return the wrapped provider")
	}
}

type greeting struct {
	name string
}

func (g greeting) String() string {
	return "hello " + g.name
}

func TestProviderAdapters(t *testing.T) {
	var nilFunc ProviderFunc
	if got := New(nilFunc).UTF8String(); got != "" {
		t.Fatalf("unexpected text for nil ProviderFunc: got %q", got)
	}
	f := New(ProviderFunc(func() UTF8String { return "вгд" }))
	if got := f.Capitalize(); got != "Вгд" {
		t.Fatalf("unexpected Capitalize: got %q want %q", got, "Вгд")
	}
	s := New(FromStringer(greeting{name: "ada"}))
	if got := s.Title(); got != "Hello Ada" {
		t.Fatalf("unexpected Title: got %q want %q", got, "Hello Ada")
	}
	if got := New(FromStringer(nil)).Len(); got != 0 {
		t.Fatalf("unexpected length for nil stringer: got %d", got)
	}
}
