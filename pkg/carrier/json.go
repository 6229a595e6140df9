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
	"bytes"
	"encoding/json"
	"fmt"
)

// JSON is a host carrying a single raw JSON value.
//
// Its canonical text is the compact form of the value, so two JSON hosts that
// differ only by insignificant white space compare equal through a facade.
// No validation happens at construction: when Value is not valid JSON the
// raw bytes are the canonical text.
type JSON struct {
	Value json.RawMessage `json:"value"`
}

// JSONOf marshals v into a JSON host.
func JSONOf(v any) (JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return JSON{}, fmt.Errorf("json carrier: %w", err)
	}
	return JSON{Value: raw}, nil
}

func (j JSON) UTF8String() UTF8String {
	var b bytes.Buffer
	if err := json.Compact(&b, j.Value); err != nil {
		return string(j.Value)
	}
	return b.String()
}

// Valid reports whether Value holds exactly one valid JSON value.
func (j JSON) Valid() bool {
	return json.Valid(j.Value)
}
