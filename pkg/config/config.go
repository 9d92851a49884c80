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
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/copypaths/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// SettingsKey is the key the plugin settings live under in a project's settings map.
const SettingsKey = "copy-paths"

// 🔌 Parser is the interface for project file parsers
type Parser interface {
	// 📝 Parse parses the project from bytes
	Parse(ctx context.Context, data []byte) (*Project, error)

	// 🔍 Pattern is the glob matched against file names in a directory
	Pattern() string
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	base := filepath.Base(filename)
	for _, p := range parsers {
		if ok, _ := doublestar.Match(p.Pattern(), base); ok {
			return p
		}
	}
	return nil
}

// 📂 Folder is one root folder of a project
type Folder struct {
	Path string `json:"path" yaml:"path"`
}

// 🔧 Settings are the options read under the copy-paths key
type Settings struct {
	UseBrackets   bool     `json:"c_family_includes_use_brackets,omitempty" yaml:"c_family_includes_use_brackets,omitempty"`
	StripPrefixes []string `json:"c_family_includes_strip_prefixes,omitempty" yaml:"c_family_includes_strip_prefixes,omitempty"`
	JavaRoots     []string `json:"java_package_roots,omitempty" yaml:"java_package_roots,omitempty"`
}

// 📚 Project is a parsed project file
type Project struct {
	Folders  []Folder
	Settings Settings

	location string
}

// Location is the absolute path of the file the project was loaded from.
func (p *Project) Location() string {
	return p.location
}

// Roots returns the folders as absolute paths. A project file without folders
// has its own directory as the only root.
func (p *Project) Roots() []string {
	if len(p.Folders) == 0 {
		if p.location == "" {
			return nil
		}
		return []string{filepath.Dir(p.location)}
	}
	roots := make([]string, 0, len(p.Folders))
	for _, f := range p.Folders {
		roots = append(roots, f.Path)
	}
	return roots
}

// 🎯 Load loads a project file
func Load(ctx context.Context, path string) (*Project, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading project file")

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("resolving project file path: %w", err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, errors.Errorf("reading project file: %w", err)
	}

	p := GetParser(abs)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	proj, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing project file: %w", err)
	}
	proj.location = abs

	if err := proj.Validate(); err != nil {
		return nil, errors.Errorf("validating project file: %w", err)
	}

	logger.Debug().Str("path", abs).Strs("roots", proj.Roots()).Msg("loaded project file")
	return proj, nil
}

// 🔍 Validate checks the project and resolves folders against the file's directory
func (p *Project) Validate() error {
	base := ""
	if p.location != "" {
		base = filepath.Dir(p.location)
	}
	for i, f := range p.Folders {
		if strings.TrimSpace(f.Path) == "" {
			return errors.Errorf("folders[%d].path is required", i)
		}
		fp := filepath.FromSlash(f.Path)
		if !filepath.IsAbs(fp) && base != "" {
			fp = filepath.Join(base, fp)
		}
		p.Folders[i].Path = filepath.Clean(fp)
	}
	return p.Settings.Validate()
}

// 🔍 Validate normalizes prefixes to forward-slash relative paths
func (s *Settings) Validate() error {
	cleaned := make([]string, 0, len(s.StripPrefixes))
	for i, prefix := range s.StripPrefixes {
		raw := strings.TrimSpace(prefix)
		if raw == "" {
			continue
		}
		slashed := filepath.ToSlash(raw)
		if filepath.IsAbs(raw) || path.IsAbs(slashed) {
			return errors.Errorf("c_family_includes_strip_prefixes[%d]: %q must be relative to the project", i, prefix)
		}
		slashed = path.Clean(slashed)
		if slashed == ".." || strings.HasPrefix(slashed, "../") {
			return errors.Errorf("c_family_includes_strip_prefixes[%d]: %q leaves the project", i, prefix)
		}
		if slashed == "." {
			continue
		}
		cleaned = append(cleaned, slashed)
	}
	s.StripPrefixes = cleaned

	for i, root := range s.JavaRoots {
		if root == "" || strings.ContainsAny(root, "./\\") {
			return errors.Errorf("java_package_roots[%d]: %q must be a single package segment", i, root)
		}
	}
	return nil
}

// Options converts the settings into transform options.
func (s Settings) Options() transform.Options {
	return transform.Options{
		UseAngleBrackets: s.UseBrackets,
		StripPrefixes:    s.StripPrefixes,
		JavaRoots:        s.JavaRoots,
	}
}

// 📝 String returns a string representation of the settings
func (s Settings) String() string {
	quote := "quotes"
	if s.UseBrackets {
		quote = "brackets"
	}
	return fmt.Sprintf("%s, strip [%s]", quote, strings.Join(s.StripPrefixes, ", "))
}
