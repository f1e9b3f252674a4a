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

package text

import (
	"context"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrEmptySearch is returned when a rule has no text to search for
	ErrEmptySearch = errors.Base("search text is empty")

	// ErrInvalidScope is returned for a scope other than all, first or last
	ErrInvalidScope = errors.Base("invalid replacement scope")

	// ErrInvalidEncoding is returned when content is not valid UTF-8 text
	ErrInvalidEncoding = errors.Base("content is not valid UTF-8")
)

// 🎯 Scope selects which occurrences of the search text are replaced
type Scope int

const (
	ScopeAll   Scope = iota // every non-overlapping occurrence
	ScopeFirst              // leftmost occurrence only
	ScopeLast               // rightmost occurrence only
)

// String returns the name used on the command line and in config files
func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeFirst:
		return "first"
	case ScopeLast:
		return "last"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the three known scopes
func (s Scope) Valid() bool {
	return s == ScopeAll || s == ScopeFirst || s == ScopeLast
}

// 🔍 ParseScope parses "all", "first" or "last"
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return ScopeAll, nil
	case "first":
		return ScopeFirst, nil
	case "last":
		return ScopeLast, nil
	default:
		return ScopeAll, errors.Errorf("%w: %q (want all, first or last)", ErrInvalidScope, s)
	}
}

// 🔄 ReplacementRule defines a single literal substitution
type ReplacementRule struct {
	// FromText is the literal to search for
	FromText string

	// ToText is the replacement literal
	ToText string

	// Scope selects which occurrences are replaced
	Scope Scope
}

// 📄 ReplacementResult contains the results of applying a rule to some content
type ReplacementResult struct {
	// WasModified indicates if the content changed
	WasModified bool

	// ReplacementCount is the number of occurrences substituted
	ReplacementCount int

	// OriginalContent is the content before replacement
	OriginalContent []byte

	// ModifiedContent is the content after replacement
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies the rule to everything read from content
	ReplaceText(ctx context.Context, content io.Reader, rule ReplacementRule) (*ReplacementResult, error)

	// ValidateRule checks that a rule can be applied
	ValidateRule(rule ReplacementRule) error
}
