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

// Package stringlike lets any value behave as a read-only text.
//
// A host implements a single method, Provider.UTF8String, returning its
// canonical text. Wrapping the host in a Facade derives the rest of the text
// surface from that one method:
//
//   - length, strict indexing and permissive slicing by code point,
//   - membership and lazy, restartable iteration,
//   - concatenation and repetition with the operand on either side,
//   - equality, lexicographic ordering and truthiness,
//   - the text operations of Text (case mapping, prefix and suffix tests,
//     search, substitution, formatting, ...), statically through
//     Facade.Text and the wrappers, dynamically by name through Facade.Call.
//
// The Facade holds no text: the host is asked again on every call, so a
// mutable host is always seen in its current state. Thread safety is the
// host's own.
//
//	type user struct{ first, last string }
//
//	func (u *user) UTF8String() string { return u.first + " " + u.last }
//
//	f := stringlike.New(&user{"ada", "lovelace"})
//	f.Title()                 // "Ada Lovelace"
//	f.At(-1)                  // "e", nil
//	f.Slice(0, 3)             // "ada"
//	f.Call("endswith", "ce")  // true, nil
package stringlike
