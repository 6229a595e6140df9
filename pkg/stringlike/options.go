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

import "log/slog"

// Option configures a Facade at construction time.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	exactNames bool
}

// WithLogger makes Facade.Call log every dynamic resolution at Debug level
// and every unresolved name at Warn level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithExactNames restricts Facade.Call to exact Text method names.
//
// By default a name also resolves when it matches a method name ignoring
// case and underscores ("endswith", "ends_with" and "EndsWith" are the
// same operation).
func WithExactNames() Option {
	return func(o *options) {
		o.exactNames = true
	}
}

func (o *options) log() *slog.Logger {
	if o == nil {
		return nil
	}
	return o.logger
}

func (o *options) exact() bool {
	return o != nil && o.exactNames
}
