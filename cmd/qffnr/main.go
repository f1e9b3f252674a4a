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
	"context"
	"io"
	"os"

	"github.com/walteh/qffnr/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// errFilesFailed is returned when a batch ran but some files could not be updated
var errFilesFailed = errors.Base("one or more files could not be updated")

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFilesFailed) {
			status.NewUserLogger(ctx, stderr).LogValidation(false, "qffnr failed", err)
		}
		return 1
	}
	return 0
}

// checkResult maps a finished batch onto the command's error
func checkResult(result *status.BatchResult) error {
	if result == nil {
		return nil
	}
	if result.HasFailures() {
		s := result.Summary()
		return errors.Errorf("%w: %d of %d", errFilesFailed, s.Failed, len(result.Outcomes))
	}
	return nil
}
