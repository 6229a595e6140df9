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

// Package carrier provides ready-made hosts for stringlike facades.
//
// Every type here implements stringlike.Provider: String and Fragments carry
// fixed text, Buffer is a mutable host safe for concurrent use, and JSON
// renders a raw JSON value as compact text.
package carrier

import "github.com/benoit-pereira-da-silva/stringlike/pkg/stringlike"

// UTF8String is the text alias shared with stringlike.
type UTF8String = stringlike.UTF8String

var (
	_ stringlike.Provider = String{}
	_ stringlike.Provider = Fragments{}
	_ stringlike.Provider = (*Buffer)(nil)
	_ stringlike.Provider = JSON{}
)

func StringFrom(from UTF8String) String {
	return String{Value: from}
}

func JSONFrom(from UTF8String) JSON {
	return JSON{Value: []byte(from)}
}

func BufferFrom(from UTF8String) *Buffer {
	b := &Buffer{}
	b.Set(from)
	return b
}

