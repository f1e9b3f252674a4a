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

package config

import (
	"context"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL.
//
//	job "reports" {
//	  directory = "${env.HOME}/reports"
//	  scope     = "last"
//	}
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "qffnr.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": environment(),
		},
	}

	type hclConfig struct {
		Jobs []struct {
			Name      string   `hcl:"name,label"`
			Directory string   `hcl:"directory"`
			Extension string   `hcl:"extension,optional"`
			Search    *string  `hcl:"search,optional"`
			Replace   *string  `hcl:"replace,optional"`
			Scope     string   `hcl:"scope,optional"`
			Ignore    []string `hcl:"ignore,optional"`
			FilesOnly bool     `hcl:"files_only,optional"`
		} `hcl:"job,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{}
	for _, j := range hclCfg.Jobs {
		cfg.Jobs = append(cfg.Jobs, Job{
			Name:      j.Name,
			Directory: j.Directory,
			Extension: j.Extension,
			Search:    j.Search,
			Replace:   j.Replace,
			Scope:     j.Scope,
			Ignore:    j.Ignore,
			FilesOnly: j.FilesOnly,
		})
	}

	return cfg, nil
}

// environment exposes the process environment as the env object
func environment() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}
