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

package transform

import (
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// AbsolutePath returns the file path unchanged.
func AbsolutePath(in Input, _ Options) (string, error) {
	if err := requireFile(in); err != nil {
		return "", err
	}
	return in.FilePath, nil
}

// FileName returns the last segment of the file path.
func FileName(in Input, _ Options) (string, error) {
	if err := requireFile(in); err != nil {
		return "", err
	}
	return filepath.Base(in.FilePath), nil
}

// DirectoryPath returns the file path without its last segment.
func DirectoryPath(in Input, _ Options) (string, error) {
	if err := requireFile(in); err != nil {
		return "", err
	}
	return filepath.Dir(in.FilePath), nil
}

// RelativePath returns the file path with the project root and one separator removed.
func RelativePath(in Input, _ Options) (string, error) {
	if err := requireFile(in); err != nil {
		return "", err
	}
	if in.ProjectRoot == "" {
		return "", errors.Errorf("%s: %w", in.FilePath, ErrNoProject)
	}
	rel, ok := Within(in.ProjectRoot, in.FilePath)
	if !ok {
		return "", errors.Errorf("%s is not below %s: %w", in.FilePath, in.ProjectRoot, ErrNotInProject)
	}
	return rel, nil
}

// RelativeDirectory returns the directory of the relative path; files directly in the
// project root yield an empty string.
func RelativeDirectory(in Input, opts Options) (string, error) {
	rel, err := RelativePath(in, opts)
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(rel)
	if dir == "." {
		return "", nil
	}
	return dir, nil
}
