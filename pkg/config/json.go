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
	"bytes"
	"context"
	"encoding/json"

	"gitlab.com/tozd/go/errors"
)

// projectFile is the shape shared by the JSON, YAML and sublime-project formats.
type projectFile struct {
	Folders  []Folder `json:"folders,omitempty" yaml:"folders,omitempty"`
	Settings struct {
		CopyPaths *Settings `json:"copy-paths,omitempty" yaml:"copy-paths,omitempty"`
	} `json:"settings" yaml:"settings"`
}

func (f *projectFile) project() *Project {
	proj := &Project{Folders: f.Folders}
	if f.Settings.CopyPaths != nil {
		proj.Settings = *f.Settings.CopyPaths
	}
	return proj
}

// 🔧 JSONParser implements the Parser interface for .copy-paths.json files
type JSONParser struct{}

func init() {
	Register(&JSONParser{})
}

// 🔍 Pattern matches the dedicated JSON project file
func (p *JSONParser) Pattern() string {
	return ".copy-paths.json"
}

// 📝 Parse parses the project from JSON bytes
func (p *JSONParser) Parse(ctx context.Context, data []byte) (*Project, error) {
	var f projectFile
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&f); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return f.project(), nil
}
