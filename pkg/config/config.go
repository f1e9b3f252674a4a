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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/qffnr/pkg/operation"
	"github.com/walteh/qffnr/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎛️ Defaults used when a job or the command line leaves a field out
const (
	DefaultExtension = ".txt"
	DefaultSearch    = "2-0"
	DefaultReplace   = "1-1"
	DefaultScope     = "all"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📋 Job is one configured substitution. Search and Replace are pointers so
// that an explicit empty replacement can be told apart from a missing one.
type Job struct {
	Name      string   `json:"name" yaml:"name"`
	Directory string   `json:"directory" yaml:"directory"`
	Extension string   `json:"extension,omitempty" yaml:"extension,omitempty"`
	Search    *string  `json:"search,omitempty" yaml:"search,omitempty"`
	Replace   *string  `json:"replace,omitempty" yaml:"replace,omitempty"`
	Scope     string   `json:"scope,omitempty" yaml:"scope,omitempty"`
	Ignore    []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	FilesOnly bool     `json:"files_only,omitempty" yaml:"files_only,omitempty"`
}

// 📚 Config is a list of jobs run in order
type Config struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
}

// 🎯 Load loads the configuration from a file. Relative job directories are
// resolved against the directory holding the file.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	base := filepath.Dir(path)
	for i := range cfg.Jobs {
		if dir := cfg.Jobs[i].Directory; dir != "" && !filepath.IsAbs(dir) {
			cfg.Jobs[i].Directory = filepath.Join(base, dir)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Int("jobs", len(cfg.Jobs)).Msg("configuration loaded")

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if len(cfg.Jobs) == 0 {
		return errors.Errorf("at least one job is required")
	}

	seen := make(map[string]bool, len(cfg.Jobs))
	for i, job := range cfg.Jobs {
		if job.Name == "" {
			return errors.Errorf("job %d: name is required", i)
		}
		if seen[job.Name] {
			return errors.Errorf("job %s: duplicate name", job.Name)
		}
		seen[job.Name] = true

		if job.Directory == "" {
			return errors.Errorf("job %s: directory is required", job.Name)
		}
		if _, err := job.Request(); err != nil {
			return errors.Errorf("job %s: %w", job.Name, err)
		}
	}

	return nil
}

// Job returns the job with the given name
func (cfg *Config) Job(name string) (Job, bool) {
	for _, job := range cfg.Jobs {
		if job.Name == name {
			return job, true
		}
	}
	return Job{}, false
}

// 🔄 Request turns the job into an operation request, filling in defaults
func (j Job) Request() (operation.Request, error) {
	scopeName := j.Scope
	if scopeName == "" {
		scopeName = DefaultScope
	}
	scope, err := text.ParseScope(scopeName)
	if err != nil {
		return operation.Request{}, err
	}

	req := operation.Request{
		Extension:      j.Extension,
		Search:         DefaultSearch,
		Replace:        DefaultReplace,
		Scope:          scope,
		IgnorePatterns: j.Ignore,
		FilesOnly:      j.FilesOnly,
	}
	if req.Extension == "" {
		req.Extension = DefaultExtension
	}
	if j.Search != nil {
		req.Search = *j.Search
	}
	if j.Replace != nil {
		req.Replace = *j.Replace
	}
	if req.Search == "" {
		return operation.Request{}, errors.WithStack(text.ErrEmptySearch)
	}
	if j.Directory != "" {
		dir := j.Directory
		req.Directory = &dir
	}

	return req, nil
}

// OperationJobs converts every job into an operation.Job, in file order
func (cfg *Config) OperationJobs() ([]operation.Job, error) {
	jobs := make([]operation.Job, 0, len(cfg.Jobs))
	for _, j := range cfg.Jobs {
		req, err := j.Request()
		if err != nil {
			return nil, errors.Errorf("job %s: %w", j.Name, err)
		}
		jobs = append(jobs, operation.Job{Name: j.Name, Request: req})
	}
	return jobs, nil
}

// 📝 String returns a string representation of the job
func (j Job) String() string {
	req, err := j.Request()
	if err != nil {
		return fmt.Sprintf("%s: invalid (%v)", j.Name, err)
	}
	return fmt.Sprintf("%s: %s/*%s %q -> %q (%s)", j.Name, j.Directory, req.Extension, req.Search, req.Replace, req.Scope)
}
