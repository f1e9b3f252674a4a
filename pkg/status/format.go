package status

import (
	"fmt"
)

// FileFormatter defines how outcomes and batch results are turned into text
type FileFormatter interface {
	// FormatFileOutcome formats the processing note for one file
	FormatFileOutcome(outcome FileOutcome) string

	// FormatBatch formats the short status line for a whole run
	FormatBatch(result *BatchResult) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOutcome formats a file outcome with emojis
func (f *DefaultFileFormatter) FormatFileOutcome(outcome FileOutcome) string {
	switch outcome.Status {
	case StatusModified:
		return fmt.Sprintf("📝 Modified %s (%s)", outcome.FileName, plural(outcome.Replacements, "replacement"))
	case StatusError:
		return fmt.Sprintf("❌ Failed %s: %s", outcome.FileName, outcome.ErrorDetail())
	default:
		return fmt.Sprintf("👍 Unchanged %s", outcome.FileName)
	}
}

// FormatBatch formats the status line shown once a run is over
func (f *DefaultFileFormatter) FormatBatch(result *BatchResult) string {
	if result == nil {
		return "Nothing was processed."
	}

	switch result.Status {
	case BatchDirectoryNotSelected:
		return "No directory selected."
	case BatchNoFilesFound:
		return fmt.Sprintf("There are no %s files in the directory.", result.Extension)
	}

	summary := result.Summary()
	if summary.Failed > 0 {
		return fmt.Sprintf("Files processed, %d of %d could not be updated.", summary.Failed, len(result.Outcomes))
	}
	return "Files processed successfully."
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
