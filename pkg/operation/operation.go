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

package operation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/qffnr/pkg/scan"
	"github.com/walteh/qffnr/pkg/status"
	"github.com/walteh/qffnr/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidRequest is returned when a request cannot be run at all
var ErrInvalidRequest = errors.Base("invalid request")

// 📝 Request describes one batch run. It is built fresh for every run.
type Request struct {
	// Directory is the directory to scan; nil or "" means none was selected
	Directory *string

	// Extension is a literal, case-sensitive suffix such as ".txt"
	Extension string

	// Search is the literal to look for; it must not be empty
	Search string

	// Replace is the literal substituted for Search
	Replace string

	// Scope selects all, first or last occurrence
	Scope text.Scope

	// IgnorePatterns are doublestar globs for entry names to skip
	IgnorePatterns []string

	// FilesOnly drops subdirectories whose names match Extension
	FilesOnly bool
}

// Rule returns the replacement rule applied to each file
func (r Request) Rule() text.ReplacementRule {
	return text.ReplacementRule{
		FromText: r.Search,
		ToText:   r.Replace,
		Scope:    r.Scope,
	}
}

// directory returns the selected directory, if any
func (r Request) directory() (string, bool) {
	if r.Directory == nil || *r.Directory == "" {
		return "", false
	}
	return *r.Directory, true
}

// 🔧 Options contains the collaborators of an Engine. Zero values get defaults.
type Options struct {
	// Sink records every event of a run
	Sink EventSink

	// Replacer computes new file content
	Replacer text.TextReplacer

	// Scanner lists matching directory entries
	Scanner *scan.Scanner
}

// 🎮 Engine is the batch orchestrator: scan, rewrite each entry in order, report
type Engine struct {
	sink     EventSink
	replacer text.TextReplacer
	scanner  *scan.Scanner
	now      func() time.Time
}

// 🏭 New creates an engine with the given options
func New(opts Options) *Engine {
	e := &Engine{
		sink:     opts.Sink,
		replacer: opts.Replacer,
		scanner:  opts.Scanner,
		now:      time.Now,
	}
	if e.sink == nil {
		e.sink = ZerologSink{}
	}
	if e.replacer == nil {
		e.replacer = text.NewSimpleTextReplacer()
	}
	if e.scanner == nil {
		e.scanner = scan.NewScanner()
	}
	return e
}

// 🏃 Run executes one batch.
//
// A nil Directory yields BatchDirectoryNotSelected and no error. A directory
// that does not exist yields BatchDirectoryNotSelected together with an error
// wrapping scan.ErrInvalidDirectory. Per-file failures never fail the batch;
// they are recorded in the file's outcome. If ctx is cancelled between two
// files the partial result is returned with the context error.
func (e *Engine) Run(ctx context.Context, req Request) (*status.BatchResult, error) {
	rule := req.Rule()
	if err := e.replacer.ValidateRule(rule); err != nil {
		return nil, errors.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	result := &status.BatchResult{
		RunID:     uuid.New().String(),
		Extension: req.Extension,
		Started:   e.now(),
	}

	logger := zerolog.Ctx(ctx).With().Str("run_id", result.RunID).Logger()
	ctx = logger.WithContext(ctx)

	dir, ok := req.directory()
	if !ok {
		e.finish(result, status.BatchDirectoryNotSelected)
		e.sink.Record(ctx, status.Event{
			Kind:      status.EventDirectoryInvalid,
			RunID:     result.RunID,
			Extension: req.Extension,
			Result:    result,
			Err:       scan.ErrDirectoryNotSelected,
		})
		return result, nil
	}
	result.Directory = dir

	e.sink.Record(ctx, status.Event{
		Kind:      status.EventBatchStarted,
		RunID:     result.RunID,
		Directory: dir,
		Extension: req.Extension,
	})

	entries, err := e.scanner.List(ctx, dir, scan.Options{
		Extension:      req.Extension,
		IgnorePatterns: req.IgnorePatterns,
		FilesOnly:      req.FilesOnly,
	})
	if err != nil {
		if !errors.Is(err, scan.ErrInvalidDirectory) {
			return nil, errors.Errorf("scanning %s: %w", dir, err)
		}
		e.finish(result, status.BatchDirectoryNotSelected)
		e.sink.Record(ctx, status.Event{
			Kind:      status.EventDirectoryInvalid,
			RunID:     result.RunID,
			Directory: dir,
			Extension: req.Extension,
			Result:    result,
			Err:       err,
		})
		return result, err
	}

	result.MatchedFileCount = len(entries)
	if len(entries) == 0 {
		e.finish(result, status.BatchNoFilesFound)
		e.sink.Record(ctx, status.Event{
			Kind:      status.EventNoFilesFound,
			RunID:     result.RunID,
			Directory: dir,
			Extension: req.Extension,
			Result:    result,
		})
		return result, nil
	}

	result.Outcomes = make([]status.FileOutcome, 0, len(entries))
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			e.finish(result, status.BatchSuccess)
			e.recordFinished(ctx, result)
			return result, errors.Errorf("batch interrupted after %d of %d files: %w", i, len(entries), err)
		}

		outcome := RewriteFile(ctx, e.replacer, entry.Path, rule)
		result.Outcomes = append(result.Outcomes, outcome)

		e.sink.Record(ctx, status.Event{
			Kind:      status.EventFileProcessed,
			RunID:     result.RunID,
			Directory: dir,
			Extension: req.Extension,
			File:      entry.Name,
			Outcome:   &outcome,
		})
	}

	e.finish(result, status.BatchSuccess)
	e.recordFinished(ctx, result)
	return result, nil
}

func (e *Engine) finish(result *status.BatchResult, st status.BatchStatus) {
	result.Status = st
	result.Finished = e.now()
}

func (e *Engine) recordFinished(ctx context.Context, result *status.BatchResult) {
	e.sink.Record(ctx, status.Event{
		Kind:      status.EventBatchFinished,
		RunID:     result.RunID,
		Directory: result.Directory,
		Extension: result.Extension,
		Result:    result,
	})
}
