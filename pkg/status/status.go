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
	"time"
)

// 📊 FileStatus is the outcome of rewriting one file
type FileStatus int

const (
	StatusUnchanged FileStatus = iota // Search text not found, content identical
	StatusModified                    // Content was rewritten
	StatusError                       // File could not be opened, read or written
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 FileOutcome records what happened to one matched file
type FileOutcome struct {
	FileName     string     // Name inside the scanned directory
	Status       FileStatus // Modified, Unchanged or Error
	Replacements int        // Occurrences substituted
	Err          error      // Set only when Status is StatusError
}

// ErrorDetail returns the error text, or "" when the file did not fail
func (o FileOutcome) ErrorDetail() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// 🚦 BatchStatus is the overall status of one run
type BatchStatus int

const (
	BatchSuccess              BatchStatus = iota // Every matched file was attempted
	BatchNoFilesFound                            // Directory valid, nothing matched
	BatchDirectoryNotSelected                    // No usable directory
)

// String returns a string representation of BatchStatus
func (s BatchStatus) String() string {
	switch s {
	case BatchSuccess:
		return "success"
	case BatchNoFilesFound:
		return "no_files_found"
	case BatchDirectoryNotSelected:
		return "directory_not_selected"
	default:
		return "unknown"
	}
}

// 📦 BatchResult is the report of one run. It is built once by the
// orchestrator and not modified afterwards.
type BatchResult struct {
	RunID            string
	Directory        string
	Extension        string
	MatchedFileCount int
	Outcomes         []FileOutcome
	Status           BatchStatus
	Started          time.Time
	Finished         time.Time
}

// 🧮 Summary counts outcomes by status
type Summary struct {
	Modified  int
	Unchanged int
	Failed    int
}

// Summary tallies the per-file outcomes
func (r *BatchResult) Summary() Summary {
	var s Summary
	for _, o := range r.Outcomes {
		switch o.Status {
		case StatusModified:
			s.Modified++
		case StatusUnchanged:
			s.Unchanged++
		case StatusError:
			s.Failed++
		}
	}
	return s
}

// HasFailures reports whether any file ended in StatusError
func (r *BatchResult) HasFailures() bool {
	return r.Summary().Failed > 0
}

// Duration is the wall time of the run
func (r *BatchResult) Duration() time.Duration {
	if r.Finished.IsZero() {
		return 0
	}
	return r.Finished.Sub(r.Started)
}
