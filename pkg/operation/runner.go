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

	"github.com/rs/zerolog"
	"github.com/walteh/qffnr/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📋 Job is a named request, as read from a config file
type Job struct {
	Name    string
	Request Request
}

// 📦 JobResult pairs a job with what running it produced
type JobResult struct {
	Name   string
	Result *status.BatchResult
	Err    error
}

// 🏃 OperationRunner executes jobs one after another
type OperationRunner struct {
	engine *Engine
}

// 🏗️ NewRunner creates a new runner
func NewRunner(engine *Engine) *OperationRunner {
	return &OperationRunner{
		engine: engine,
	}
}

// Run executes every job in order. A failing job does not stop the ones
// after it; the returned error joins every job error. Cancellation stops
// before the next job starts.
func (r *OperationRunner) Run(ctx context.Context, jobs []Job) ([]JobResult, error) {
	results := make([]JobResult, 0, len(jobs))
	var errs []error

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, errors.Errorf("operation cancelled: %w", err))
			break
		}

		jobCtx := zerolog.Ctx(ctx).With().Str("job", job.Name).Logger().WithContext(ctx)

		result, err := r.engine.Run(jobCtx, job.Request)
		if err != nil {
			err = errors.Errorf("running job %s: %w", job.Name, err)
			errs = append(errs, err)
		}

		results = append(results, JobResult{
			Name:   job.Name,
			Result: result,
			Err:    err,
		})
	}

	return results, errors.Join(errs...)
}
