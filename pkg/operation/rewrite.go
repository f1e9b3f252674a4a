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

package operation

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/qffnr/pkg/status"
	"github.com/walteh/qffnr/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrFileAccess matches every FileAccessError with errors.Is
var ErrFileAccess = errors.Base("file access error")

// 🚫 FileAccessError is recorded for a file that could not be opened, read,
// decoded or written back.
type FileAccessError struct {
	Op  string // open, read, seek, write, truncate or close
	Err error
}

func (e *FileAccessError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFileAccess) report true
func (e *FileAccessError) Is(target error) bool {
	return target == ErrFileAccess
}

// fileError wraps err, dropping the path an *fs.PathError repeats
func fileError(op string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &FileAccessError{Op: op, Err: err}
}

// 📄 RewriteFile applies rule to the file at path in place.
//
// The file is opened for reading and writing, read whole, and, when the
// content changes, overwritten from the start and truncated to the new
// length. The write is not atomic and no backup is kept. The handle is closed
// on every path. Failures are returned inside the outcome, never as an error.
func RewriteFile(ctx context.Context, replacer text.TextReplacer, path string, rule text.ReplacementRule) status.FileOutcome {
	logger := zerolog.Ctx(ctx)

	outcome := status.FileOutcome{FileName: filepath.Base(path)}

	count, modified, err := rewrite(ctx, replacer, path, rule)
	switch {
	case err != nil:
		outcome.Status = status.StatusError
		outcome.Err = err
		logger.Debug().Err(err).Str("path", path).Msg("rewrite failed")
	case modified:
		outcome.Status = status.StatusModified
		outcome.Replacements = count
	default:
		outcome.Status = status.StatusUnchanged
	}

	return outcome
}

func rewrite(ctx context.Context, replacer text.TextReplacer, path string, rule text.ReplacementRule) (count int, modified bool, err error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return 0, false, fileError("open", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fileError("close", cerr)
		}
	}()

	result, err := replacer.ReplaceText(ctx, f, rule)
	if err != nil {
		if errors.Is(err, text.ErrInvalidEncoding) {
			return 0, false, fileError("decode", err)
		}
		return 0, false, fileError("read", err)
	}

	if !result.WasModified {
		return result.ReplacementCount, false, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, false, fileError("seek", err)
	}
	if _, err := f.Write(result.ModifiedContent); err != nil {
		return 0, false, fileError("write", err)
	}
	if err := f.Truncate(int64(len(result.ModifiedContent))); err != nil {
		return 0, false, fileError("truncate", err)
	}

	return result.ReplacementCount, true, nil
}
