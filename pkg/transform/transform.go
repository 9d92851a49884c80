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
	"strings"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrNoFile is returned when the buffer has not been saved to disk.
	ErrNoFile = errors.Base("buffer has no file path")
	// ErrNoProject is returned when a command needs a project root and there is none.
	ErrNoProject = errors.Base("file is not part of a project")
	// ErrNotInProject is returned when the file does not live below the project root.
	ErrNotInProject = errors.Base("file is not inside the project root")
	// ErrDefaultPackage is returned for Java files that sit directly in a source root.
	ErrDefaultPackage = errors.Base("file is in the default package")
)

// DefaultJavaRoots are the segments a Java path is anchored at when Options.JavaRoots is nil.
var DefaultJavaRoots = []string{"com", "org"}

// 📄 Input identifies the file a command runs against
type Input struct {
	FilePath    string // absolute path of the file
	ProjectRoot string // absolute path of the enclosing project folder, empty if none
}

// 🔍 HeaderLocator finds an existing header next to a source file
type HeaderLocator interface {
	// HeaderFor returns the project-relative path of a header for relPath, if one exists.
	HeaderFor(root, relPath string) (string, bool)
}

// 🔧 Options carries the per-invocation settings
type Options struct {
	UseAngleBrackets bool          // emit <path> instead of "path"
	StripPrefixes    []string      // leading path segments removed from includes
	JavaRoots        []string      // segments Java paths are anchored at; nil means DefaultJavaRoots
	Headers          HeaderLocator // optional; nil disables header lookup
}

func (o Options) javaRoots() []string {
	if o.JavaRoots == nil {
		return DefaultJavaRoots
	}
	return o.JavaRoots
}

// Transformer computes one clipboard string from a file.
type Transformer func(in Input, opts Options) (string, error)

// Within returns path relative to root when path is strictly below root.
// The comparison works on whole segments: "/proj" does not contain "/project/x".
func Within(root, path string) (string, bool) {
	if root == "" || path == "" {
		return "", false
	}
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return "", false
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

func requireFile(in Input) error {
	if in.FilePath == "" {
		return ErrNoFile
	}
	return nil
}
