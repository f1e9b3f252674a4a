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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/qffnr/pkg/status"
)

// 🎯 Logger writes a durable zerolog record and a console line for every event
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.FileFormatter
	mu        sync.Mutex
	files     int
}

// 🏭 New creates a new logger. Records go to zlog, human lines to console.
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewDefaultFileFormatter(),
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📨 Record implements operation.EventSink
func (l *Logger) Record(ctx context.Context, ev status.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	zlog := l.zlog.With().Str("run_id", ev.RunID).Str("event", ev.Kind.String()).Logger()

	switch ev.Kind {
	case status.EventBatchStarted:
		l.files = 0
		fmt.Fprintf(l.console, "[processing %s]\n", color.New(color.FgCyan).Sprint(ev.Directory))
		fmt.Fprintf(l.console, "%s %s %s\n",
			color.New(color.FgMagenta).Sprint("◆"),
			color.New(color.Faint).Sprint("filter"),
			color.New(color.FgYellow).Sprint(ev.Extension))
		zlog.Info().
			Str("directory", ev.Directory).
			Str("extension", ev.Extension).
			Msg("starting batch")

	case status.EventDirectoryInvalid:
		if ev.Directory == "" {
			fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint("No directory selected."))
			zlog.Error().Err(ev.Err).Msg("no directory selected")
			return
		}
		msg := fmt.Sprintf("Invalid directory: %s", ev.Directory)
		fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
		zlog.Error().Err(ev.Err).Str("directory", ev.Directory).Msg("invalid directory")

	case status.EventNoFilesFound:
		msg := fmt.Sprintf("There are no %s files in the directory.", ev.Extension)
		fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
		zlog.Error().Str("directory", ev.Directory).Str("extension", ev.Extension).Msg("no matching files")

	case status.EventFileProcessed:
		if ev.Outcome == nil {
			return
		}
		l.files++
		fmt.Fprintln(l.console, status.FormatFileOperation(*ev.Outcome))
		e := zlog.Info()
		if ev.Outcome.Status == status.StatusError {
			e = zlog.Error().Err(ev.Outcome.Err)
		}
		e.Str("file", ev.File).
			Str("status", ev.Outcome.Status.String()).
			Int("replacements", ev.Outcome.Replacements).
			Msg("processing file")

	case status.EventBatchFinished:
		e := zlog.Info().Int("files", l.files)
		if ev.Result != nil {
			fmt.Fprintln(l.console, color.New(color.Faint).Sprint(l.formatter.FormatProgress(l.files, ev.Result.MatchedFileCount)))
			e = e.Int("failed", ev.Result.Summary().Failed)
		}
		e.Msg("batch complete")
		l.files = 0
	}
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("qffnr")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Headerf logs a formatted header
func (l *Logger) Headerf(format string, args ...interface{}) {
	l.Header(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
