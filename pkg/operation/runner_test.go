package operation

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/qffnr/pkg/status"
	"github.com/walteh/qffnr/pkg/testutils"
	"github.com/walteh/qffnr/pkg/text"
	"gitlab.com/tozd/go/errors"
)

func TestOperationRunner_Run(t *testing.T) {
	good := testutils.WriteFiles(t, testutils.SampleFiles())
	missing := filepath.Join(t.TempDir(), "missing")
	logs := testutils.WriteFiles(t, map[string]string{"app.log": "2-0 2-0"})

	runner := NewRunner(New(Options{}))
	results, err := runner.Run(context.Background(), []Job{
		{Name: "results", Request: Request{Directory: &good, Extension: ".txt", Search: "2-0", Replace: "1-1"}},
		{Name: "broken", Request: Request{Directory: &missing, Extension: ".txt", Search: "2-0", Replace: "1-1"}},
		{Name: "logs", Request: Request{Directory: &logs, Extension: ".log", Search: "2-0", Replace: "1-1", Scope: text.ScopeLast}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "running job broken")
	require.Len(t, results, 3)

	assert.Equal(t, "results", results[0].Name)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, status.BatchSuccess, results[0].Result.Status)

	assert.Equal(t, "broken", results[1].Name)
	assert.Error(t, results[1].Err)
	assert.Equal(t, status.BatchDirectoryNotSelected, results[1].Result.Status)

	assert.Equal(t, "logs", results[2].Name)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, "2-0 1-1", testutils.ReadFile(t, filepath.Join(logs, "app.log")))
}

func TestOperationRunner_Run_Cancelled(t *testing.T) {
	dir := testutils.WriteFiles(t, testutils.SampleFiles())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := NewRunner(New(Options{})).Run(ctx, []Job{
		{Name: "results", Request: Request{Directory: &dir, Extension: ".txt", Search: "2-0", Replace: "1-1"}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, results)
	assert.Equal(t, "2-0 and 2-0", testutils.ReadFile(t, filepath.Join(dir, "a.txt")))
}

func TestOperationRunner_Run_NoJobs(t *testing.T) {
	results, err := NewRunner(New(Options{})).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
