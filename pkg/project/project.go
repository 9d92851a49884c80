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

// Package project works out which project folder a file belongs to.
package project

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/walteh/copypaths/pkg/language"
	"github.com/walteh/copypaths/pkg/transform"
)

// 🎯 Resolve returns the folder that contains filePath. A file can sit under several
// folders when a subfolder of a project was added on its own; the shortest (top-most)
// one wins. Returns "" when no folder contains the file.
func Resolve(filePath string, folders []string) string {
	best := ""
	for _, f := range folders {
		if f == "" {
			continue
		}
		if _, ok := transform.Within(f, filePath); !ok {
			continue
		}
		f = filepath.Clean(f)
		if best == "" || len(f) < len(best) {
			best = f
		}
	}
	return best
}

// 🔍 DirHeaderLocator finds sibling headers inside a project tree
type DirHeaderLocator struct {
	FS fs.FS // rooted at the project folder
}

// NewHeaderLocator returns a locator over the project folder on disk.
func NewHeaderLocator(root string) *DirHeaderLocator {
	return &DirHeaderLocator{FS: os.DirFS(root)}
}

// HeaderFor implements transform.HeaderLocator. The root argument is ignored because
// the locator's FS is already rooted at the project.
func (l *DirHeaderLocator) HeaderFor(_ string, relPath string) (string, bool) {
	if l == nil || l.FS == nil {
		return "", false
	}
	slashed := filepath.ToSlash(relPath)
	base := strings.TrimSuffix(slashed, path.Ext(slashed))
	for _, ext := range language.HeaderExtensions {
		candidate := base + ext
		info, err := fs.Stat(l.FS, candidate)
		if err != nil || info.IsDir() {
			continue
		}
		return filepath.FromSlash(candidate), true
	}
	return "", false
}
