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

// Package scan lists the entries of a single directory that a batch run should touch.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrDirectoryNotSelected is returned when no directory was given at all
	ErrDirectoryNotSelected = errors.Base("no directory selected")

	// ErrInvalidDirectory is returned when the path is missing or not a directory
	ErrInvalidDirectory = errors.Base("invalid directory")
)

// 📄 Entry is one directory entry whose name matched the extension filter
type Entry struct {
	Name  string // Base name inside the directory
	Path  string // Directory joined with Name
	IsDir bool   // Set when a subdirectory's name happens to match
}

// 🔧 Options controls which entries List returns
type Options struct {
	// Extension is a literal, case-sensitive name suffix such as ".txt"
	Extension string

	// IgnorePatterns are doublestar globs matched against entry names
	IgnorePatterns []string

	// FilesOnly drops subdirectories whose names end with Extension
	FilesOnly bool
}

// 🔍 Scanner lists matching entries of a directory, one level deep
type Scanner struct{}

// 🏭 NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// ValidateDirectory checks that path names an existing directory
func (s *Scanner) ValidateDirectory(path string) error {
	if path == "" {
		return errors.WithStack(ErrDirectoryNotSelected)
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("%w: %w", ErrInvalidDirectory, err)
	}
	if !info.IsDir() {
		return errors.Errorf("%w: %s is not a directory", ErrInvalidDirectory, path)
	}

	return nil
}

// List returns the entries directly inside dir whose names end with
// opts.Extension, in directory listing order. Directories are not descended into.
func (s *Scanner) List(ctx context.Context, dir string, opts Options) ([]Entry, error) {
	logger := zerolog.Ctx(ctx)

	if err := s.ValidateDirectory(dir); err != nil {
		return nil, err
	}

	for _, pattern := range opts.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("%w: %w", ErrInvalidDirectory, err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if !strings.HasSuffix(name, opts.Extension) {
			continue
		}

		if opts.FilesOnly && de.IsDir() {
			logger.Debug().Str("entry", name).Msg("skipping directory entry")
			continue
		}

		if pattern, ok := ignored(name, opts.IgnorePatterns); ok {
			logger.Debug().Str("entry", name).Str("pattern", pattern).Msg("entry ignored by pattern")
			continue
		}

		entries = append(entries, Entry{
			Name:  name,
			Path:  filepath.Join(dir, name),
			IsDir: de.IsDir(),
		})
	}

	logger.Debug().
		Str("directory", dir).
		Str("extension", opts.Extension).
		Int("entries", len(dirEntries)).
		Int("matched", len(entries)).
		Msg("scanned directory")

	return entries, nil
}

// ignored reports the first pattern that matches name
func ignored(name string, patterns []string) (string, bool) {
	for _, pattern := range patterns {
		// patterns were validated up front so Match cannot fail here
		if ok, _ := doublestar.Match(pattern, name); ok {
			return pattern, true
		}
	}
	return "", false
}
