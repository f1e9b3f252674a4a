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
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 10 // Width for status text
	countWidth  = 4  // Width for replacement count
)

// 🎯 FormatFileOperation formats a file outcome as one aligned console line
func FormatFileOperation(outcome FileOutcome) string {
	var prefix string
	switch outcome.Status {
	case StatusModified:
		prefix = color.YellowString("⟳")
	case StatusError:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, outcome.FileName)
	statusPart := fmt.Sprintf("%-*s", statusWidth, outcome.Status.String())

	line := fmt.Sprintf("%s%s %s %s %*d",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		statusPart,
		countWidth,
		outcome.Replacements,
	)
	if outcome.Err != nil {
		line += " " + color.New(color.Faint).Sprint(outcome.ErrorDetail())
	}
	return line
}
