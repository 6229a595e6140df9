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
	"fmt"
	"sync"
	"unicode/utf8"
)

// Buffer is a mutable host safe for concurrent use.
//
// UTF8String takes a read lock, so a facade over a Buffer can be used from
// several goroutines while others mutate the buffer. Each facade operation
// observes one consistent state.
//
// The zero Buffer is empty and ready to use. A Buffer must not be copied
// after first use.
type Buffer struct {
	mu   sync.RWMutex
	text string
}

func (b *Buffer) UTF8String() UTF8String {
	if b == nil {
		return ""
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// Set replaces the whole text.
func (b *Buffer) Set(s UTF8String) {
	b.mu.Lock()
	b.text = s
	b.mu.Unlock()
}

// Append adds s at the end.
func (b *Buffer) Append(s UTF8String) {
	b.mu.Lock()
	b.text += s
	b.mu.Unlock()
}

// Insert inserts s before the code point at position pos. pos may equal the
// length, which appends.
func (b *Buffer) Insert(pos int, s UTF8String) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	off, err := byteOffset(b.text, pos)
	if err != nil {
		return err
	}
	b.text = b.text[:off] + s + b.text[off:]
	return nil
}

// Delete removes the code points in [start, end).
func (b *Buffer) Delete(start, end int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if start > end {
		return fmt.Errorf("buffer: invalid range [%d:%d]", start, end)
	}
	lo, err := byteOffset(b.text, start)
	if err != nil {
		return err
	}
	hi, err := byteOffset(b.text, end)
	if err != nil {
		return err
	}
	b.text = b.text[:lo] + b.text[hi:]
	return nil
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.Set("")
}

// Len returns the number of code points.
func (b *Buffer) Len() int {
	return utf8.RuneCountInString(b.UTF8String())
}

// byteOffset converts a code point position in [0, len] into a byte offset.
func byteOffset(s string, pos int) (int, error) {
	if pos < 0 {
		return 0, fmt.Errorf("buffer: position %d out of range", pos)
	}
	i := 0
	for off := range s {
		if i == pos {
			return off, nil
		}
		i++
	}
	if i == pos {
		return len(s), nil
	}
	return 0, fmt.Errorf("buffer: position %d out of range for length %d", pos, i)
}

func (b *Buffer) String() string {
	return b.UTF8String()
}
