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
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by strict point indexing (Facade.At).
	// Slicing never returns it: out-of-range bounds are clamped.
	ErrIndexOutOfRange = errors.New("stringlike: index out of range")

	// ErrInvalidOperand is returned when an operand has no text value, when a
	// repetition count is not a non-negative integer, or when forwarded
	// arguments do not match the native signature.
	ErrInvalidOperand = errors.New("stringlike: invalid operand")

	// ErrAttributeNotFound is matched by *AttributeNotFoundError.
	ErrAttributeNotFound = errors.New("stringlike: attribute not found")

	// ErrExhausted signals the end of an iteration. Once an Iterator has
	// returned it, every later call to Next returns it again.
	ErrExhausted = errors.New("stringlike: iterator exhausted")

	// ErrSubstringNotFound is returned by Text.Index and Text.RIndex.
	ErrSubstringNotFound = errors.New("stringlike: substring not found")

	// ErrFormat is returned by Text.Format and Text.FormatMap for malformed
	// templates or unresolvable replacement fields.
	ErrFormat = errors.New("stringlike: malformed format template")

	// ErrPanicked is matched by *PanicError.
	ErrPanicked = errors.New("stringlike: forwarded operation panicked")
)

// IndexOutOfRangeError reports a strict index outside [-Len, Len).
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("stringlike: index %d out of range for text of length %d", e.Index, e.Len)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// AttributeNotFoundError reports a forwarded operation name that has no
// match in the native text operation set. Name is the name exactly as
// requested by the caller.
type AttributeNotFoundError struct {
	Name string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("stringlike: attribute not found: %q", e.Name)
}

// Is reports whether target is ErrAttributeNotFound.
func (e *AttributeNotFoundError) Is(target error) bool {
	return target == ErrAttributeNotFound
}

// PanicError holds a panic recovered while a forwarded operation ran.
//
// Value is the value passed to panic(...). Stack is captured at the recovery
// site with runtime/debug.Stack.
type PanicError struct {
	Name  string
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("stringlike: %s panicked: %v", e.Name, e.Value)
}

// Is reports whether target is ErrPanicked.
func (e *PanicError) Is(target error) bool {
	return target == ErrPanicked
}

func invalidOperand(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperand, fmt.Sprintf(format, args...))
}

func formatError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, args...))
}
