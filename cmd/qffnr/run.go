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
	"github.com/walteh/qffnr/pkg/operation"
	"github.com/walteh/qffnr/pkg/scan"
	"github.com/walteh/qffnr/pkg/status"
	"github.com/walteh/qffnr/pkg/text"
	"gitlab.com/tozd/go/errors"
)

type runOpts struct {
	dir       string
	ext       string
	search    string
	replace   string
	scope     string
	ignore    []string
	filesOnly bool
}

func newRunCmd(root *rootOpts) *cobra.Command {
	opts := &runOpts{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one substitution batch over a directory",
		Long: `Run replaces --search with --replace in every entry of --dir whose name
ends with --ext. The directory is not searched recursively.

Examples:
  qffnr run --dir ./reports
  qffnr run --dir ./data --ext .csv --search N/A --replace "" --scope all
  qffnr run --dir ./notes --scope last --ignore "draft-*"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, root)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", "", "directory to process")
	cmd.Flags().StringVar(&opts.ext, "ext", config.DefaultExtension, "file name suffix to match (case-sensitive)")
	cmd.Flags().StringVar(&opts.search, "search", config.DefaultSearch, "literal text to find")
	cmd.Flags().StringVar(&opts.replace, "replace", config.DefaultReplace, "literal replacement text")
	cmd.Flags().StringVar(&opts.scope, "scope", config.DefaultScope, "which occurrences to replace (all, first or last)")
	cmd.Flags().StringArrayVar(&opts.ignore, "ignore", nil, "glob of entry names to skip (repeatable)")
	cmd.Flags().BoolVar(&opts.filesOnly, "files-only", false, "skip subdirectories whose names match --ext")

	return cmd
}

func (o *runOpts) request() (operation.Request, error) {
	scope, err := text.ParseScope(o.scope)
	if err != nil {
		return operation.Request{}, err
	}

	req := operation.Request{
		Extension:      o.ext,
		Search:         o.search,
		Replace:        o.replace,
		Scope:          scope,
		IgnorePatterns: o.ignore,
		FilesOnly:      o.filesOnly,
	}
	if o.dir != "" {
		dir := o.dir
		req.Directory = &dir
	}
	return req, nil
}

func (o *runOpts) run(cmd *cobra.Command, root *rootOpts) error {
	req, err := o.request()
	if err != nil {
		return errors.Errorf("invalid flags: %w", err)
	}

	engine := root.newEngine(cmd)
	result, err := engine.Run(cmd.Context(), req)
	if err != nil {
		if result != nil && !root.progress {
			root.report(cmd, result)
		}
		return err
	}

	root.report(cmd, result)

	if result.Status == status.BatchDirectoryNotSelected {
		return errors.WithStack(scan.ErrDirectoryNotSelected)
	}
	return checkResult(result)
}
