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

package status

import (
	"context"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger renders batch results for people, and mirrors each line to zerolog
type UserLogger struct {
	log       zerolog.Logger
	out       io.Writer
	formatter FileFormatter
}

// 🎯 NewUserLogger creates a user logger writing to out (stdout when nil)
func NewUserLogger(ctx context.Context, out io.Writer) *UserLogger {
	if out == nil {
		out = os.Stdout
	}
	return &UserLogger{
		log:       *zerolog.Ctx(ctx),
		out:       out,
		formatter: NewDefaultFileFormatter(),
	}
}

// 📝 LogOutcome prints the processing note for one file
func (u *UserLogger) LogOutcome(outcome FileOutcome) {
	msg := u.formatter.FormatFileOutcome(outcome)

	switch outcome.Status {
	case StatusModified:
		pterm.Info.WithPrefix(pterm.Prefix{Text: "🔄"}).WithWriter(u.out).Println(msg)
		u.log.Info().Str("file", outcome.FileName).Int("replacements", outcome.Replacements).Msg(msg)
	case StatusError:
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(u.out).Println(msg)
		u.log.Error().Err(outcome.Err).Str("file", outcome.FileName).Msg(msg)
	default:
		pterm.Info.WithPrefix(pterm.Prefix{Text: "⏭️"}).WithWriter(u.out).Println(msg)
		u.log.Info().Str("file", outcome.FileName).Msg(msg)
	}
}

// 📊 LogResult prints every file note followed by the batch status line
func (u *UserLogger) LogResult(result *BatchResult) {
	if result != nil {
		for _, outcome := range result.Outcomes {
			u.LogOutcome(outcome)
		}
	}
	u.LogStatus(result)
}

// 📊 LogStatus prints only the batch status line
func (u *UserLogger) LogStatus(result *BatchResult) {
	line := u.formatter.FormatBatch(result)
	switch {
	case result == nil || result.Status != BatchSuccess:
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(u.out).Println(line)
		u.log.Warn().Msg(line)
	case result.HasFailures():
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(u.out).Println(line)
		u.log.Error().Msg(line)
	default:
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).WithWriter(u.out).Println(line)
		u.log.Info().Msg(line)
	}
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).WithWriter(u.out).Println(description)
		u.log.Info().Msg(description)
		return
	}

	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(u.out).Println(description)
		pterm.Error.WithWriter(u.out).Println(u.formatter.FormatError(err))
		u.log.Error().Err(err).Msg(description)
		return
	}

	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(u.out).Println(description)
	u.log.Warn().Msg(description)
}
