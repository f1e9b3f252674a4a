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
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func sampleResult() *BatchResult {
	started := time.Date(2023, 8, 25, 10, 0, 0, 0, time.UTC)
	return &BatchResult{
		RunID:            "run-1",
		Directory:        "/data",
		Extension:        ".txt",
		MatchedFileCount: 3,
		Status:           BatchSuccess,
		Started:          started,
		Finished:         started.Add(1500 * time.Millisecond),
		Outcomes: []FileOutcome{
			{FileName: "a.txt", Status: StatusModified, Replacements: 2},
			{FileName: "b.txt", Status: StatusUnchanged},
			{FileName: "c.txt", Status: StatusError, Err: errors.New("permission denied")},
		},
	}
}

func TestBatchResult_Summary(t *testing.T) {
	result := sampleResult()

	assert.Equal(t, Summary{Modified: 1, Unchanged: 1, Failed: 1}, result.Summary())
	assert.True(t, result.HasFailures())
	assert.Equal(t, 1500*time.Millisecond, result.Duration())

	result.Outcomes = result.Outcomes[:2]
	assert.False(t, result.HasFailures())

	assert.Equal(t, time.Duration(0), (&BatchResult{}).Duration())
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "modified", StatusModified.String())
	assert.Equal(t, "unchanged", StatusUnchanged.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "unknown", FileStatus(42).String())

	assert.Equal(t, "success", BatchSuccess.String())
	assert.Equal(t, "no_files_found", BatchNoFilesFound.String())
	assert.Equal(t, "directory_not_selected", BatchDirectoryNotSelected.String())

	assert.Equal(t, "file_processed", EventFileProcessed.String())
	assert.Equal(t, "unknown", EventKind(42).String())
}

func TestFileOutcome_ErrorDetail(t *testing.T) {
	assert.Equal(t, "", FileOutcome{FileName: "a.txt"}.ErrorDetail())
	assert.Equal(t, "boom", FileOutcome{FileName: "a.txt", Err: errors.New("boom")}.ErrorDetail())
}

func TestFormatFileOperation(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name    string
		outcome FileOutcome
		want    string
	}{
		{
			name:    "modified",
			outcome: FileOutcome{FileName: "a.txt", Status: StatusModified, Replacements: 2},
			want:    "    ⟳ a.txt                               modified      2",
		},
		{
			name:    "unchanged",
			outcome: FileOutcome{FileName: "b.txt", Status: StatusUnchanged},
			want:    "    - b.txt                               unchanged     0",
		},
		{
			name:    "error",
			outcome: FileOutcome{FileName: "c.txt", Status: StatusError, Err: errors.New("denied")},
			want:    "    ✗ c.txt                               error         0 denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileOperation(tt.outcome))
		})
	}
}

func TestUserLogger_LogResult(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var out, logs bytes.Buffer
	zlog := zerolog.New(&logs)
	ctx := zlog.WithContext(context.Background())

	ul := NewUserLogger(ctx, &out)
	ul.LogResult(sampleResult())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Modified a.txt (2 replacements)")
	assert.Contains(t, lines[1], "Unchanged b.txt")
	assert.Contains(t, lines[2], "Failed c.txt: permission denied")
	assert.Contains(t, lines[3], "Files processed, 1 of 3 could not be updated.")

	assert.Contains(t, logs.String(), `"file":"a.txt"`)
	assert.Contains(t, logs.String(), `"level":"error"`)
}

func TestUserLogger_LogStatus(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var out bytes.Buffer
	ctx := zerolog.Nop().WithContext(context.Background())

	NewUserLogger(ctx, &out).LogStatus(sampleResult())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1, "only the status line should be printed")
	assert.Contains(t, lines[0], "Files processed, 1 of 3 could not be updated.")
}

func TestUserLogger_LogResult_Terminal(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	tests := []struct {
		name   string
		result *BatchResult
		want   string
	}{
		{
			name:   "no_directory",
			result: &BatchResult{Status: BatchDirectoryNotSelected},
			want:   "No directory selected.",
		},
		{
			name:   "no_files",
			result: &BatchResult{Status: BatchNoFilesFound, Extension: ".log"},
			want:   "There are no .log files in the directory.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			ctx := zerolog.New(&logs).WithContext(context.Background())

			NewUserLogger(ctx, &out).LogResult(tt.result)

			assert.Contains(t, out.String(), tt.want)
			assert.Contains(t, logs.String(), `"level":"warn"`)
		})
	}
}

func TestUserLogger_LogValidation(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var out, logs bytes.Buffer
	ctx := zerolog.New(&logs).WithContext(context.Background())
	ul := NewUserLogger(ctx, &out)

	ul.LogValidation(true, "config ok", nil)
	ul.LogValidation(false, "config broken", errors.New("bad scope"))

	assert.Contains(t, out.String(), "config ok")
	assert.Contains(t, out.String(), "config broken")
	assert.Contains(t, out.String(), "bad scope")
	assert.Contains(t, logs.String(), `"error":"bad scope"`)
}
