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
	"slices"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// JavaImportStatement renders the file as a Java import of its class.
func JavaImportStatement(in Input, opts Options) (string, error) {
	segs, err := javaPath(in, opts)
	if err != nil {
		return "", err
	}
	return "import " + strings.Join(segs, ".") + ";", nil
}

// JavaPackageStatement renders the package declaration for the file.
func JavaPackageStatement(in Input, opts Options) (string, error) {
	segs, err := javaPath(in, opts)
	if err != nil {
		return "", err
	}
	if len(segs) < 2 {
		return "", errors.Errorf("%s: %w", in.FilePath, ErrDefaultPackage)
	}
	return "package " + strings.Join(segs[:len(segs)-1], ".") + ";", nil
}

// javaPath splits the extension-less relative path into its segments. The path
// starts at the first occurrence of a Java root that has segments on both sides,
// trying the roots in order, so src/main/java/com/acme/Foo.java yields com.acme.Foo
// and x/org/y/com/Z.java yields com.Z.
func javaPath(in Input, opts Options) ([]string, error) {
	rel, err := RelativePath(in, opts)
	if err != nil {
		return nil, err
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	segs := strings.Split(filepath.ToSlash(rel), "/")
	if len(segs) < 3 {
		return segs, nil
	}

	inner := segs[1 : len(segs)-1]
	for _, root := range opts.javaRoots() {
		if i := slices.Index(inner, root); i >= 0 {
			return segs[i+1:], nil
		}
	}
	return segs, nil
}
