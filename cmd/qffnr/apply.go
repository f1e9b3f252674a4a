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
	"github.com/spf13/cobra"
	"github.com/walteh/qffnr/pkg/config"
	"github.com/walteh/qffnr/pkg/log"
	"github.com/walteh/qffnr/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

type applyOpts struct {
	configFile string
	jobs       []string
}

func newApplyCmd(root *rootOpts) *cobra.Command {
	opts := &applyOpts{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run the jobs of a config file in order",
		Long: `Apply loads a YAML, JSON or HCL config file and runs each job in the
order it appears. A failing job does not stop the jobs after it.

Examples:
  qffnr apply
  qffnr apply --config qffnr.hcl --job reports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, root)
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "qffnr.yaml", "config file path")
	cmd.Flags().StringArrayVar(&opts.jobs, "job", nil, "only run the named job (repeatable)")

	return cmd
}

// selectJobs keeps the named jobs, or every job when names is empty
func selectJobs(cfg *config.Config, names []string) (*config.Config, error) {
	if len(names) == 0 {
		return cfg, nil
	}
	selected := &config.Config{}
	for _, name := range names {
		job, ok := cfg.Job(name)
		if !ok {
			return nil, errors.Errorf("unknown job %q", name)
		}
		selected.Jobs = append(selected.Jobs, job)
	}
	return selected, nil
}

func (o *applyOpts) run(cmd *cobra.Command, root *rootOpts) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx, o.configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	cfg, err = selectJobs(cfg, o.jobs)
	if err != nil {
		return err
	}

	jobs, err := cfg.OperationJobs()
	if err != nil {
		return err
	}

	logger := log.FromContext(ctx)
	if root.progress {
		logger.Headerf("applying %d job(s) from %s", len(jobs), o.configFile)
	}
	if len(o.jobs) > 0 {
		logger.Infof("running %d selected job(s)", len(jobs))
	}

	results, runErr := operation.NewRunner(root.newEngine(cmd)).Run(ctx, jobs)

	failed := 0
	for _, res := range results {
		if root.progress {
			logger.LogNewline()
		}
		switch {
		case res.Err != nil:
			logger.Errorf("job %s failed", res.Name)
		case res.Result.HasFailures():
			logger.Warningf("job %s finished with failures", res.Name)
			failed++
		default:
			logger.Successf("job %s done", res.Name)
		}
		root.report(cmd, res.Result)
	}

	if runErr != nil {
		return runErr
	}
	if failed > 0 {
		return errors.Errorf("%w: %d job(s) had failures", errFilesFailed, failed)
	}
	return nil
}
