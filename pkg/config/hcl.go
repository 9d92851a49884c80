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

// 🔧 HCLParser implements the Parser interface for .copy-paths.hcl files
type HCLParser struct{}

// 🔍 Pattern matches the dedicated HCL project file
func (p *HCLParser) Pattern() string {
	return ".copy-paths.hcl"
}

// 📝 Parse parses the project from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Project, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, ".copy-paths.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context; env exposes the environment for folder paths
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": environment(),
		},
	}

	// Define HCL schema
	type hclProject struct {
		Folders []struct {
			Path string `hcl:"path"`
		} `hcl:"folder,block"`
		Settings *struct {
			UseBrackets   bool     `hcl:"c_family_includes_use_brackets,optional"`
			StripPrefixes []string `hcl:"c_family_includes_strip_prefixes,optional"`
			JavaRoots     []string `hcl:"java_package_roots,optional"`
		} `hcl:"copy_paths,block"`
	}

	// Decode HCL
	var hclProj hclProject
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclProj)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	proj := &Project{}
	for _, f := range hclProj.Folders {
		proj.Folders = append(proj.Folders, Folder{Path: f.Path})
	}
	if hclProj.Settings != nil {
		proj.Settings = Settings{
			UseBrackets:   hclProj.Settings.UseBrackets,
			StripPrefixes: hclProj.Settings.StripPrefixes,
			JavaRoots:     hclProj.Settings.JavaRoots,
		}
	}

	return proj, nil
}

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
