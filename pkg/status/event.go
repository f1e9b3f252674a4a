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

// 🔔 EventKind identifies what an Event reports
type EventKind int

const (
	EventBatchStarted EventKind = iota
	EventDirectoryInvalid
	EventNoFilesFound
	EventFileProcessed
	EventBatchFinished
)

// String returns a string representation of EventKind
func (k EventKind) String() string {
	switch k {
	case EventBatchStarted:
		return "batch_started"
	case EventDirectoryInvalid:
		return "directory_invalid"
	case EventNoFilesFound:
		return "no_files_found"
	case EventFileProcessed:
		return "file_processed"
	case EventBatchFinished:
		return "batch_finished"
	default:
		return "unknown"
	}
}

// 📨 Event is one record handed to a logging sink during a run
type Event struct {
	Kind      EventKind
	RunID     string
	Directory string
	Extension string
	File      string       // Set for EventFileProcessed
	Outcome   *FileOutcome // Set for EventFileProcessed
	Result    *BatchResult // Set for terminal events
	Err       error        // Set for EventDirectoryInvalid
}
