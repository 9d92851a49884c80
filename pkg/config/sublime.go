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
	"encoding/json"

	"github.com/tailscale/hujson"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&SublimeParser{})
}

// 🔧 SublimeParser reads editor project files. They carry many unrelated keys, so
// decoding is lenient and only folders and settings.copy-paths are kept.
type SublimeParser struct{}

// 🔍 Pattern matches any editor project file
func (p *SublimeParser) Pattern() string {
	return "*.sublime-project"
}

// 📝 Parse parses the project from JSON bytes. Comments and trailing commas are
// allowed, as the editor allows them.
func (p *SublimeParser) Parse(ctx context.Context, data []byte) (*Project, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, errors.Errorf("parsing sublime project: %w", err)
	}

	var f projectFile
	if err := json.Unmarshal(std, &f); err != nil {
		return nil, errors.Errorf("parsing sublime project: %w", err)
	}
	return f.project(), nil
}
