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

import "fmt"

// UTF8String is a symbolic alias used throughout the package.
//
// Every canonical text handled by stringlike is UTF‑8. Indexing, slicing and
// iteration work on code points, never on bytes.
//
// Note: this is an alias (not a distinct type) and exists mostly for code
// readability.
type UTF8String = string

// Provider is the single capability a host must supply.
//
// UTF8String returns the complete, current canonical text of the host. It is
// expected to be pure with respect to the host state: no side effects, and
// the same result as long as the host is not mutated.
//
// A Facade calls UTF8String at least once per operation and never caches the
// result, so a mutable host is always observed in its current state.
type Provider interface {
	UTF8String() UTF8String
}

// ProviderFunc is a function adapter that implements Provider.
//
// A nil ProviderFunc provides the empty text.
type ProviderFunc func() UTF8String

// UTF8String calls f().
func (f ProviderFunc) UTF8String() UTF8String {
	if f == nil {
		return ""
	}
	return f()
}

type stringerProvider struct {
	s fmt.Stringer
}

func (p stringerProvider) UTF8String() UTF8String {
	if p.s == nil {
		return ""
	}
	return p.s.String()
}

// FromStringer adapts a fmt.Stringer host into a Provider.
func FromStringer(s fmt.Stringer) Provider {
	return stringerProvider{s: s}
}
