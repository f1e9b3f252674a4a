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

	"github.com/rs/zerolog"
	"github.com/walteh/qffnr/pkg/status"
)

// 📨 EventSink records the events of a run. Its lifecycle belongs to the caller.
type EventSink interface {
	Record(ctx context.Context, ev status.Event)
}

// SinkFunc adapts a function to EventSink
type SinkFunc func(ctx context.Context, ev status.Event)

// Record implements EventSink
func (f SinkFunc) Record(ctx context.Context, ev status.Event) {
	f(ctx, ev)
}

// 🪵 ZerologSink writes each event as one record on the logger carried by ctx
type ZerologSink struct{}

// Record implements EventSink
func (ZerologSink) Record(ctx context.Context, ev status.Event) {
	logger := zerolog.Ctx(ctx)

	switch ev.Kind {
	case status.EventBatchStarted:
		logger.Info().
			Str("directory", ev.Directory).
			Str("extension", ev.Extension).
			Msg("processing directory")
	case status.EventDirectoryInvalid:
		logger.Error().
			Err(ev.Err).
			Str("directory", ev.Directory).
			Msg("no directory selected")
	case status.EventNoFilesFound:
		logger.Error().
			Str("directory", ev.Directory).
			Str("extension", ev.Extension).
			Msgf("there are no %s files", ev.Extension)
	case status.EventFileProcessed:
		if ev.Outcome == nil {
			return
		}
		if ev.Outcome.Status == status.StatusError {
			logger.Error().
				Err(ev.Outcome.Err).
				Str("file", ev.File).
				Msg("processing file failed")
			return
		}
		logger.Info().
			Str("file", ev.File).
			Str("status", ev.Outcome.Status.String()).
			Int("replacements", ev.Outcome.Replacements).
			Msg("processed file")
	case status.EventBatchFinished:
		e := logger.Info()
		if ev.Result != nil {
			summary := ev.Result.Summary()
			e = e.Int("matched", ev.Result.MatchedFileCount).
				Int("modified", summary.Modified).
				Int("unchanged", summary.Unchanged).
				Int("failed", summary.Failed).
				Dur("duration", ev.Result.Duration())
		}
		e.Msg("files processed")
	}
}

// 🔀 MultiSink hands every event to each sink in order
type MultiSink []EventSink

// NewMultiSink creates a MultiSink, skipping nil sinks
func NewMultiSink(sinks ...EventSink) MultiSink {
	out := make(MultiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// Record implements EventSink
func (m MultiSink) Record(ctx context.Context, ev status.Event) {
	for _, s := range m {
		s.Record(ctx, ev)
	}
}
