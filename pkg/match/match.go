// Copyright 2025 walteh LLC
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

// Package match selects directory entries by name.
package match

import (
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrInvalidPattern is returned when the selection expression does not compile
	ErrInvalidPattern = errors.Base("invalid pattern")
	// ErrInvalidProtect is returned when a protect glob is malformed
	ErrInvalidProtect = errors.Base("invalid protect glob")
)

// 🎯 Matcher tests entry names against a compiled expression
type Matcher struct {
	expr    *regexp.Regexp
	protect []string
}

// 🔧 Option configures a Matcher at compile time
type Option func(*options)

type options struct {
	ignoreCase bool
	protect    []string
}

// 🔤 WithIgnoreCase makes the expression case-insensitive
func WithIgnoreCase(ignore bool) Option {
	return func(o *options) {
		o.ignoreCase = ignore
	}
}

// 🛡️ WithProtect excludes names matching any of the given doublestar globs
func WithProtect(globs ...string) Option {
	return func(o *options) {
		o.protect = append(o.protect, globs...)
	}
}

// 🏭 Compile compiles pattern once for the whole invocation
func Compile(pattern string, opts ...Option) (*Matcher, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	source := pattern
	if o.ignoreCase {
		source = "(?i)" + source
	}

	expr, err := regexp.Compile(source)
	if err != nil {
		return nil, errors.Errorf("%w: %q: %s", ErrInvalidPattern, pattern, err.Error())
	}

	for _, glob := range o.protect {
		if !doublestar.ValidatePattern(glob) {
			return nil, errors.Errorf("%w: %q", ErrInvalidProtect, glob)
		}
	}

	return &Matcher{
		expr:    expr,
		protect: o.protect,
	}, nil
}

// 🔍 Matches reports whether name contains a match of the expression and is not protected
func (m *Matcher) Matches(name string) bool {
	if !m.expr.MatchString(name) {
		return false
	}
	return !m.Protected(name)
}

// 🛡️ Protected reports whether name is covered by a protect glob
func (m *Matcher) Protected(name string) bool {
	for _, glob := range m.protect {
		// globs were validated in Compile
		if ok, _ := doublestar.Match(glob, name); ok {
			return true
		}
	}
	return false
}

// 📝 String returns the compiled expression
func (m *Matcher) String() string {
	return m.expr.String()
}
