package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

// 🧪 TestDefaultFileFormatter tests the default file formatter implementation
func TestDefaultFileFormatter(t *testing.T) {
	tests := []struct {
		name    string
		outcome FileOutcome
		want    string
	}{
		{
			name:    "modified_file",
			outcome: FileOutcome{FileName: "a.txt", Status: StatusModified, Replacements: 2},
			want:    "📝 Modified a.txt (2 replacements)",
		},
		{
			name:    "modified_file_single",
			outcome: FileOutcome{FileName: "a.txt", Status: StatusModified, Replacements: 1},
			want:    "📝 Modified a.txt (1 replacement)",
		},
		{
			name:    "unchanged_file",
			outcome: FileOutcome{FileName: "b.txt", Status: StatusUnchanged},
			want:    "👍 Unchanged b.txt",
		},
		{
			name:    "failed_file",
			outcome: FileOutcome{FileName: "c.txt", Status: StatusError, Err: errors.New("permission denied")},
			want:    "❌ Failed c.txt: permission denied",
		},
	}

	f := NewDefaultFileFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatFileOutcome(tt.outcome))
		})
	}
}

func TestDefaultFileFormatter_FormatBatch(t *testing.T) {
	tests := []struct {
		name   string
		result *BatchResult
		want   string
	}{
		{
			name:   "nil_result",
			result: nil,
			want:   "Nothing was processed.",
		},
		{
			name:   "directory_not_selected",
			result: &BatchResult{Status: BatchDirectoryNotSelected},
			want:   "No directory selected.",
		},
		{
			name:   "no_files_found",
			result: &BatchResult{Status: BatchNoFilesFound, Extension: ".csv"},
			want:   "There are no .csv files in the directory.",
		},
		{
			name: "success",
			result: &BatchResult{Status: BatchSuccess, Outcomes: []FileOutcome{
				{FileName: "a.txt", Status: StatusModified},
				{FileName: "b.txt", Status: StatusUnchanged},
			}},
			want: "Files processed successfully.",
		},
		{
			name: "success_with_failures",
			result: &BatchResult{Status: BatchSuccess, Outcomes: []FileOutcome{
				{FileName: "a.txt", Status: StatusModified},
				{FileName: "b.txt", Status: StatusError, Err: errors.New("boom")},
			}},
			want: "Files processed, 1 of 2 could not be updated.",
		},
	}

	f := NewDefaultFileFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatBatch(tt.result))
		})
	}
}

func TestDefaultFileFormatter_FormatProgress(t *testing.T) {
	f := NewDefaultFileFormatter()
	assert.Equal(t, "⏳ Progress: 1/4 (25%)", f.FormatProgress(1, 4))
	assert.Equal(t, "✅ Progress: 4/4 (100%)", f.FormatProgress(4, 4))
	assert.Equal(t, "✅ Progress: 0/0 (0%)", f.FormatProgress(0, 0))
}

func TestDefaultFileFormatter_FormatError(t *testing.T) {
	f := NewDefaultFileFormatter()
	assert.Equal(t, "", f.FormatError(nil))
	assert.Equal(t, "❌ Error: boom", f.FormatError(errors.New("boom")))
}
