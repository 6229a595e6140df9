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
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Text is the native text type.
//
// Its exported method set is the operation table Facade.Call resolves names
// against, so adding a method here makes it available on every Facade.
// Positions and lengths are counted in code points.
//
// Case mappings are language independent (language.Und).
type Text string

// UTF8String makes Text a Provider.
func (t Text) UTF8String() UTF8String {
	return string(t)
}

func (t Text) String() string {
	return string(t)
}

// Len returns the number of code points.
func (t Text) Len() int {
	return utf8.RuneCountInString(string(t))
}

// Upper maps every code point to upper case.
func (t Text) Upper() string {
	return cases.Upper(language.Und).String(string(t))
}

// Lower maps every code point to lower case.
func (t Text) Lower() string {
	return cases.Lower(language.Und).String(string(t))
}

// CaseFold returns the case-folded text, for caseless matching.
func (t Text) CaseFold() string {
	return cases.Fold().String(string(t))
}

// Capitalize title-cases the first code point and lower-cases the rest.
func (t Text) Capitalize() string {
	s := string(t)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + cases.Lower(language.Und).String(s[size:])
}

// Title title-cases every word.
func (t Text) Title() string {
	return cases.Title(language.Und).String(string(t))
}

// SwapCase inverts the case of every cased code point.
func (t Text) SwapCase() string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, string(t))
}

// StartsWith reports whether the text starts with any of the prefixes.
func (t Text) StartsWith(prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(string(t), p) {
			return true
		}
	}
	return false
}

// EndsWith reports whether the text ends with any of the suffixes.
func (t Text) EndsWith(suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(string(t), s) {
			return true
		}
	}
	return false
}

// Find returns the code point position of the first occurrence of sub, or -1.
func (t Text) Find(sub string) int {
	i := strings.Index(string(t), sub)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(string(t)[:i])
}

// RFind returns the code point position of the last occurrence of sub, or -1.
func (t Text) RFind(sub string) int {
	i := strings.LastIndex(string(t), sub)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(string(t)[:i])
}

// Index is Find failing with ErrSubstringNotFound instead of returning -1.
func (t Text) Index(sub string) (int, error) {
	if i := t.Find(sub); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrSubstringNotFound, sub)
}

// RIndex is RFind failing with ErrSubstringNotFound instead of returning -1.
func (t Text) RIndex(sub string) (int, error) {
	if i := t.RFind(sub); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrSubstringNotFound, sub)
}

// Count returns the number of non-overlapping occurrences of sub. The empty
// sub occurs once per code point boundary.
func (t Text) Count(sub string) int {
	return strings.Count(string(t), sub)
}

// Replace replaces the first n occurrences of old by new; n < 0 replaces all.
func (t Text) Replace(old, new string, n int) string {
	return strings.Replace(string(t), old, new, n)
}

// Split splits around sep at most maxSplit times (maxSplit < 0: no limit).
// An empty sep splits around runs of white space and drops leading and
// trailing white space.
func (t Text) Split(sep string, maxSplit int) []string {
	if sep == "" {
		return splitSpace(string(t), maxSplit)
	}
	if maxSplit < 0 {
		return strings.Split(string(t), sep)
	}
	return strings.SplitN(string(t), sep, maxSplit+1)
}

func splitSpace(s string, maxSplit int) []string {
	out := make([]string, 0)
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	for s != "" {
		if maxSplit >= 0 && len(out) == maxSplit {
			return append(out, s)
		}
		i := strings.IndexFunc(s, unicode.IsSpace)
		if i < 0 {
			return append(out, s)
		}
		out = append(out, s[:i])
		s = strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	}
	return out
}

// Fields splits around runs of white space.
func (t Text) Fields() []string {
	return t.Split("", -1)
}

// SplitLines splits at "\n", "\r\n" and "\r". Line endings are kept when
// keepEnds is true.
func (t Text) SplitLines(keepEnds bool) []string {
	s := string(t)
	out := make([]string, 0)
	for s != "" {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			return append(out, s)
		}
		end := i + 1
		if s[i] == '\r' && end < len(s) && s[end] == '\n' {
			end++
		}
		if keepEnds {
			out = append(out, s[:end])
		} else {
			out = append(out, s[:i])
		}
		s = s[end:]
	}
	return out
}

// Partition splits at the first occurrence of sep. When sep is absent the
// whole text comes first, followed by two empty texts.
func (t Text) Partition(sep string) (before, match, after string) {
	if b, a, ok := strings.Cut(string(t), sep); ok {
		return b, sep, a
	}
	return string(t), "", ""
}

// Join concatenates items with the text as separator.
func (t Text) Join(items []string) string {
	return strings.Join(items, string(t))
}

// Strip removes leading and trailing code points found in cutset, or white
// space when cutset is empty.
func (t Text) Strip(cutset string) string {
	if cutset == "" {
		return strings.TrimSpace(string(t))
	}
	return strings.Trim(string(t), cutset)
}

// LStrip is Strip on the leading side only.
func (t Text) LStrip(cutset string) string {
	if cutset == "" {
		return strings.TrimLeftFunc(string(t), unicode.IsSpace)
	}
	return strings.TrimLeft(string(t), cutset)
}

// RStrip is Strip on the trailing side only.
func (t Text) RStrip(cutset string) string {
	if cutset == "" {
		return strings.TrimRightFunc(string(t), unicode.IsSpace)
	}
	return strings.TrimRight(string(t), cutset)
}

// Center pads the text on both sides with fill up to width code points.
// A zero fill pads with spaces. An odd padding puts the extra code point on
// the left only when width is odd.
func (t Text) Center(width int, fill rune) string {
	pad := width - t.Len()
	if pad <= 0 {
		return string(t)
	}
	left := pad/2 + (pad & width & 1)
	return padding(fill, left) + string(t) + padding(fill, pad-left)
}

// LJust left-justifies the text in width code points.
func (t Text) LJust(width int, fill rune) string {
	pad := width - t.Len()
	if pad <= 0 {
		return string(t)
	}
	return string(t) + padding(fill, pad)
}

// RJust right-justifies the text in width code points.
func (t Text) RJust(width int, fill rune) string {
	pad := width - t.Len()
	if pad <= 0 {
		return string(t)
	}
	return padding(fill, pad) + string(t)
}

// ZFill left-pads with zeros to width code points, after a leading sign.
func (t Text) ZFill(width int) string {
	s := string(t)
	pad := width - t.Len()
	if pad <= 0 {
		return s
	}
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[:1] + strings.Repeat("0", pad) + s[1:]
	}
	return strings.Repeat("0", pad) + s
}

func padding(fill rune, n int) string {
	if fill == 0 {
		fill = ' '
	}
	return strings.Repeat(string(fill), n)
}

// IsAlpha reports whether the text is non-empty and only holds letters.
func (t Text) IsAlpha() bool {
	return t.all(unicode.IsLetter)
}

// IsDigit reports whether the text is non-empty and only holds decimal digits.
func (t Text) IsDigit() bool {
	return t.all(unicode.IsDigit)
}

// IsAlnum reports whether the text is non-empty and only holds letters and
// numbers.
func (t Text) IsAlnum() bool {
	return t.all(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	})
}

// IsSpace reports whether the text is non-empty and only holds white space.
func (t Text) IsSpace() bool {
	return t.all(unicode.IsSpace)
}

// IsUpper reports whether the text holds at least one cased code point and
// no lower-case one.
func (t Text) IsUpper() bool {
	cased := false
	for _, r := range string(t) {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		cased = cased || unicode.IsUpper(r)
	}
	return cased
}

// IsLower reports whether the text holds at least one cased code point and
// no upper-case one.
func (t Text) IsLower() bool {
	cased := false
	for _, r := range string(t) {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		cased = cased || unicode.IsLower(r)
	}
	return cased
}

// IsTitle reports whether every word starts with an upper-case code point
// followed by lower-case ones only.
func (t Text) IsTitle() bool {
	cased, prevCased := false, false
	for _, r := range string(t) {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased, cased = true, true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased, cased = true, true
		default:
			prevCased = false
		}
	}
	return cased
}

func (t Text) all(pred func(rune) bool) bool {
	if t == "" {
		return false
	}
	for _, r := range string(t) {
		if !pred(r) {
			return false
		}
	}
	return true
}

// Normalize returns the text in the Unicode normalization form named by form
// ("NFC", "NFD", "NFKC" or "NFKD").
func (t Text) Normalize(form string) (string, error) {
	var f norm.Form
	switch strings.ToUpper(form) {
	case "NFC":
		f = norm.NFC
	case "NFD":
		f = norm.NFD
	case "NFKC":
		f = norm.NFKC
	case "NFKD":
		f = norm.NFKD
	default:
		return "", invalidOperand("unknown normalization form %q", form)
	}
	return f.String(string(t)), nil
}

// Graphemes returns the number of user-perceived characters (extended
// grapheme clusters). It may be smaller than Len.
func (t Text) Graphemes() int {
	return uniseg.GraphemeClusterCount(string(t))
}

// Width returns the monospace display width.
func (t Text) Width() int {
	return uniseg.StringWidth(string(t))
}

// Reverse reverses the order of the grapheme clusters, so combining marks
// and multi code point emoji stay intact.
func (t Text) Reverse() string {
	g := uniseg.NewGraphemes(string(t))
	clusters := make([]string, 0, len(t))
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	var b strings.Builder
	b.Grow(len(t))
	for i := len(clusters) - 1; i >= 0; i-- {
		b.WriteString(clusters[i])
	}
	return b.String()
}
