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

import "iter"

// mock is a host that always provides the same text.
type mock struct {
	s string
}

func (m mock) UTF8String() UTF8String {
	return m.s
}

// mutable is a host whose text can change between calls. It counts how many
// times its text was requested.
type mutable struct {
	s     string
	calls int
}

func (m *mutable) UTF8String() UTF8String {
	m.calls++
	return m.s
}

func wrap(s string) Facade {
	return New(mock{s: s})
}

// samples mixes ASCII, Cyrillic, CJK, combining marks and astral code points.
var samples = []string{
	"",
	"abc",
	"вгд",
	"héllo wörld",
	"日本語テキスト",
	"e\u0301a",
	"\U0001F600x\U00010000",
}

func collect(seq iter.Seq[UTF8String]) []string {
	items := make([]string, 0)
	for s := range seq {
		items = append(items, s)
	}
	return items
}
