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

// Explicit wrappers for the most used Text operations. Each one behaves
// exactly as the Text method of the same name applied to the current text;
// anything else is reachable through f.Text() or f.Call.

// Upper returns the text with every code point mapped to upper case.
func (f Facade) Upper() UTF8String { return f.Text().Upper() }

// Lower returns the text with every code point mapped to lower case.
func (f Facade) Lower() UTF8String { return f.Text().Lower() }

// Capitalize returns the text with its first code point in title case and
// the rest in lower case.
func (f Facade) Capitalize() UTF8String { return f.Text().Capitalize() }

// Title returns the text with every word in title case.
func (f Facade) Title() UTF8String { return f.Text().Title() }

// SwapCase returns the text with upper and lower case swapped.
func (f Facade) SwapCase() UTF8String { return f.Text().SwapCase() }

// CaseFold returns the case folded text, for caseless matching.
func (f Facade) CaseFold() UTF8String { return f.Text().CaseFold() }

// StartsWith reports whether the text starts with any of prefixes.
func (f Facade) StartsWith(prefixes ...string) bool { return f.Text().StartsWith(prefixes...) }

// EndsWith reports whether the text ends with any of suffixes.
func (f Facade) EndsWith(suffixes ...string) bool { return f.Text().EndsWith(suffixes...) }

// Find returns the code point position of the first occurrence of sub, or -1.
func (f Facade) Find(sub string) int { return f.Text().Find(sub) }

// Index is Find failing with ErrSubstringNotFound instead of returning -1.
func (f Facade) Index(sub string) (int, error) { return f.Text().Index(sub) }

// Count returns the number of non-overlapping occurrences of sub.
func (f Facade) Count(sub string) int { return f.Text().Count(sub) }

// Replace returns the text with the first n occurrences of old replaced by
// new, every occurrence when n is negative.
func (f Facade) Replace(old, new string, n int) UTF8String { return f.Text().Replace(old, new, n) }

// Split splits the text around sep, white space runs when sep is empty, at
// most maxSplit times when maxSplit is not negative.
func (f Facade) Split(sep string, maxSplit int) []string { return f.Text().Split(sep, maxSplit) }

// Strip removes leading and trailing code points in cutset, white space when
// cutset is empty.
func (f Facade) Strip(cutset string) UTF8String { return f.Text().Strip(cutset) }

// Format substitutes the replacement fields of the text with args. See
// Text.Format.
func (f Facade) Format(args ...any) (UTF8String, error) { return f.Text().Format(args...) }
