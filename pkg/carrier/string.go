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

package carrier

import (
	"sort"
	"strings"
)

// String is the minimal host: an immutable text value.
//
// Index is an ordering hint used when String values are assembled into
// Fragments. It plays no part in the canonical text of a single String.
type String struct {
	Value string
	Index int
}

func (s String) UTF8String() UTF8String {
	return s.Value
}

func (s String) WithIndex(idx int) String {
	s.Index = idx
	return s
}

func (s String) GetIndex() int {
	return s.Index
}

// Fragments is a host assembled from String values.
//
// Its canonical text is the concatenation of the fragments stably sorted by
// Index, so fragments can be appended out of order and still render
// deterministically. When indices are equal, Value is the tie-breaker.
//
// The fragments are sorted on a copy: rendering never reorders the slice.
type Fragments []String

func (f Fragments) UTF8String() UTF8String {
	items := make([]String, len(f))
	copy(items, f)

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Index != items[j].Index {
			return items[i].Index < items[j].Index
		}
		return items[i].Value < items[j].Value
	})

	total := 0
	for _, it := range items {
		total += len(it.Value)
	}

	var b strings.Builder
	b.Grow(total)
	for _, it := range items {
		b.WriteString(it.Value)
	}
	return b.String()
}
