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
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrProjectFileNotFound is returned by Discover when no directory holds a project file.
var ErrProjectFileNotFound = errors.Base("no project file found")

// 🔍 Discover walks from dir towards the filesystem root and returns the first project
// file it finds. Inside one directory, names are taken in lexical order, so the
// dedicated .copy-paths.* files come before editor project files.
func Discover(ctx context.Context, dir string) (string, error) {
	logger := zerolog.Ctx(ctx)

	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Errorf("resolving start directory: %w", err)
	}

	for {
		matches, err := projectFilesIn(dir)
		if err != nil {
			return "", err
		}
		if len(matches) > 0 {
			found := filepath.Join(dir, matches[0])
			logger.Debug().Str("path", found).Msg("found project file")
			return found, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrProjectFileNotFound
		}
		dir = parent
	}
}

func projectFilesIn(dir string) ([]string, error) {
	fsys := os.DirFS(dir)
	var matches []string
	for _, p := range parsers {
		m, err := doublestar.Glob(fsys, p.Pattern(), doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("matching %q in %s: %w", p.Pattern(), dir, err)
		}
		matches = append(matches, m...)
	}
	sort.Strings(matches)
	return matches, nil
}
