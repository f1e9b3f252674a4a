package operation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/qffnr/pkg/status"
	"github.com/walteh/qffnr/pkg/text"
	"gitlab.com/tozd/go/errors"
)

func TestRewriteFile(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		rule        text.ReplacementRule
		want        string
		wantStatus  status.FileStatus
		wantCount   int
		wantErrorOp string
	}{
		{
			name:       "shrinks_and_truncates",
			content:    "long-search-text tail long-search-text",
			rule:       text.ReplacementRule{FromText: "long-search-text", ToText: "x"},
			want:       "x tail x",
			wantStatus: status.StatusModified,
			wantCount:  2,
		},
		{
			name:       "grows",
			content:    "a-b",
			rule:       text.ReplacementRule{FromText: "-", ToText: " --- ", Scope: text.ScopeLast},
			want:       "a --- b",
			wantStatus: status.StatusModified,
			wantCount:  1,
		},
		{
			name:       "delete_everything",
			content:    "2-0",
			rule:       text.ReplacementRule{FromText: "2-0", ToText: ""},
			want:       "",
			wantStatus: status.StatusModified,
			wantCount:  1,
		},
		{
			name:       "no_occurrence",
			content:    "no match",
			rule:       text.ReplacementRule{FromText: "2-0", ToText: "1-1"},
			want:       "no match",
			wantStatus: status.StatusUnchanged,
		},
		{
			name:       "identity_is_unchanged",
			content:    "2-0",
			rule:       text.ReplacementRule{FromText: "2-0", ToText: "2-0"},
			want:       "2-0",
			wantStatus: status.StatusUnchanged,
		},
		{
			name:        "invalid_utf8_left_alone",
			content:     "2-0 \xff\xfe",
			rule:        text.ReplacementRule{FromText: "2-0", ToText: "1-1"},
			want:        "2-0 \xff\xfe",
			wantStatus:  status.StatusError,
			wantErrorOp: "decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "f.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			outcome := RewriteFile(context.Background(), text.NewSimpleTextReplacer(), path, tt.rule)

			assert.Equal(t, "f.txt", outcome.FileName)
			assert.Equal(t, tt.wantStatus, outcome.Status)
			assert.Equal(t, tt.wantCount, outcome.Replacements)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))

			if tt.wantErrorOp == "" {
				assert.NoError(t, outcome.Err)
				return
			}
			var fae *FileAccessError
			require.True(t, errors.As(outcome.Err, &fae))
			assert.Equal(t, tt.wantErrorOp, fae.Op)
			assert.True(t, errors.Is(outcome.Err, ErrFileAccess))
		})
	}
}

func TestRewriteFile_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.txt")

	outcome := RewriteFile(context.Background(), text.NewSimpleTextReplacer(), path, text.ReplacementRule{FromText: "a", ToText: "b"})

	assert.Equal(t, status.StatusError, outcome.Status)
	assert.True(t, errors.Is(outcome.Err, os.ErrNotExist))
	assert.Equal(t, "open: no such file or directory", outcome.ErrorDetail())
}

func TestRewriteFile_KeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("2-0"), 0o600))

	outcome := RewriteFile(context.Background(), text.NewSimpleTextReplacer(), path, text.ReplacementRule{FromText: "2-0", ToText: "1-1"})
	require.Equal(t, status.StatusModified, outcome.Status)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
