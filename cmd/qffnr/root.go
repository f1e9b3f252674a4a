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

package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/qffnr/pkg/log"
	"github.com/walteh/qffnr/pkg/operation"
	"github.com/walteh/qffnr/pkg/status"
)

// rootOpts holds the persistent flags and the writers every command shares
type rootOpts struct {
	debug     bool
	logFormat string
	progress  bool

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOpts{stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "qffnr",
		Short: "Literal find and replace across the files of one directory",
		Long: `qffnr scans a single directory for files ending with an extension and
replaces a literal string in each of them: every occurrence, the first or
the last. Every file gets its own outcome; one failing file never stops
the rest of the batch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogging(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", string(log.FormatConsole), "log record format (console or json)")
	cmd.PersistentFlags().BoolVar(&opts.progress, "progress", true, "print each file as it is processed")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.AddCommand(
		newRunCmd(opts),
		newApplyCmd(opts),
		newVersionCmd(opts),
	)

	return cmd
}

// setupLogging configures zerolog and the console logger from the flags
func (o *rootOpts) setupLogging(cmd *cobra.Command) error {
	format, err := log.ParseFormat(o.logFormat)
	if err != nil {
		return err
	}

	level := zerolog.WarnLevel
	if o.debug {
		level = zerolog.DebugLevel
	}

	zlog := log.NewZerolog(o.stderr, format, level)
	ctx := zlog.WithContext(cmd.Context())
	ctx = log.NewContext(ctx, log.New(o.stdout, zlog))
	cmd.SetContext(ctx)

	return nil
}

// newEngine wires the engine to the console logger, or to plain zerolog
// records when live progress is off
func (o *rootOpts) newEngine(cmd *cobra.Command) *operation.Engine {
	var sink operation.EventSink = operation.ZerologSink{}
	if o.progress {
		sink = log.FromContext(cmd.Context())
	}
	return operation.New(operation.Options{Sink: sink})
}

// report prints the outcome of one batch
func (o *rootOpts) report(cmd *cobra.Command, result *status.BatchResult) {
	if !o.progress {
		status.NewUserLogger(cmd.Context(), o.stdout).LogResult(result)
		return
	}

	logger := log.FromContext(cmd.Context())
	line := status.NewDefaultFileFormatter().FormatBatch(result)
	switch {
	case result == nil:
		logger.Warning(line)
	case result.Status != status.BatchSuccess:
		// the console logger already printed the terminal notice
	case result.HasFailures():
		logger.Error(line)
	default:
		logger.Success(line)
	}
}
