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
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer implements TextReplacer with literal string matching
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rule ReplacementRule) (*ReplacementResult, error) {
	if err := r.ValidateRule(rule); err != nil {
		return nil, err
	}

	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	if !utf8.Valid(originalContent) {
		return nil, errors.WithStack(ErrInvalidEncoding)
	}

	modified, count := Replace(string(originalContent), rule.FromText, rule.ToText, rule.Scope)

	result := &ReplacementResult{
		OriginalContent:  originalContent,
		ModifiedContent:  originalContent,
		ReplacementCount: count,
	}
	if modified != string(originalContent) {
		result.WasModified = true
		result.ModifiedContent = []byte(modified)
	}

	return result, nil
}

// ValidateRule implements TextReplacer.ValidateRule
func (r *SimpleTextReplacer) ValidateRule(rule ReplacementRule) error {
	if rule.FromText == "" {
		return errors.WithStack(ErrEmptySearch)
	}
	if !rule.Scope.Valid() {
		return errors.Errorf("%w: %d", ErrInvalidScope, int(rule.Scope))
	}
	return nil
}

// 🔄 Replace substitutes from with to in content according to scope and
// returns the new content along with the number of occurrences replaced.
// An empty from never matches.
func Replace(content, from, to string, scope Scope) (string, int) {
	if from == "" {
		return content, 0
	}

	switch scope {
	case ScopeFirst:
		i := strings.Index(content, from)
		if i < 0 {
			return content, 0
		}
		return content[:i] + to + content[i+len(from):], 1
	case ScopeLast:
		i := strings.LastIndex(content, from)
		if i < 0 {
			return content, 0
		}
		return content[:i] + to + content[i+len(from):], 1
	default:
		n := strings.Count(content, from)
		if n == 0 {
			return content, 0
		}
		return strings.ReplaceAll(content, from, to), n
	}
}

// ReplaceLastReversed replaces the rightmost occurrence of from by reversing
// the content and both literals, replacing the leftmost match and reversing
// back. For valid UTF-8 input it agrees with Replace(content, from, to, ScopeLast).
func ReplaceLastReversed(content, from, to string) string {
	if from == "" {
		return content
	}
	return reverse(strings.Replace(reverse(content), reverse(from), reverse(to), 1))
}

// reverse reverses s rune by rune
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
