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
	"iter"
	"unicode/utf8"
)

// IteratorState is the position of an Iterator in its life cycle.
type IteratorState int

const (
	// Ready: nothing produced yet.
	Ready IteratorState = iota
	// Producing: at least one code point produced, more may follow.
	Producing
	// Exhausted is terminal.
	Exhausted
)

func (s IteratorState) String() string {
	switch s {
	case Ready:
		return "ready"
	case Producing:
		return "producing"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// Iterator walks the code points of one text snapshot.
//
// The snapshot is taken when the Iterator is created; later host mutations do
// not affect a traversal in progress. Code points are decoded lazily.
type Iterator struct {
	text  UTF8String
	pos   int
	state IteratorState
}

// Iter starts a fresh traversal of the current text.
func (f Facade) Iter() *Iterator {
	return &Iterator{text: f.UTF8String()}
}

// Next returns the next code point as a one code point text.
//
// At the end of the text it returns ErrExhausted, and keeps returning it on
// every later call.
func (it *Iterator) Next() (UTF8String, error) {
	if it == nil || it.state == Exhausted {
		return "", ErrExhausted
	}
	if it.pos >= len(it.text) {
		it.state = Exhausted
		it.text = ""
		it.pos = 0
		return "", ErrExhausted
	}
	r, size := utf8.DecodeRuneInString(it.text[it.pos:])
	it.pos += size
	it.state = Producing
	return string(r), nil
}

// Remaining returns the number of code points not produced yet.
func (it *Iterator) Remaining() int {
	if it == nil {
		return 0
	}
	return utf8.RuneCountInString(it.text[it.pos:])
}

// State returns the current IteratorState.
func (it *Iterator) State() IteratorState {
	if it == nil {
		return Exhausted
	}
	return it.state
}

// All returns a sequence of the code points of the text, each as a one code
// point text. Every range over the sequence starts a fresh traversal.
func (f Facade) All() iter.Seq[UTF8String] {
	return func(yield func(UTF8String) bool) {
		it := f.Iter()
		for {
			s, err := it.Next()
			if err != nil {
				return
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Runes returns a sequence of (code point position, code point) pairs.
func (f Facade) Runes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		i := 0
		for _, r := range f.UTF8String() {
			if !yield(i, r) {
				return
			}
			i++
		}
	}
}
