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
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/walteh/copypaths/pkg/language"
)

var guardSeparators = regexp.MustCompile(`[^0-9A-Z]+`)

// CIncludeStatement renders the file as a C/C++ #include line.
func CIncludeStatement(in Input, opts Options) (string, error) {
	return includeStatement("include", in, opts)
}

// ObjCImportStatement renders the file as an Objective-C #import line.
func ObjCImportStatement(in Input, opts Options) (string, error) {
	return includeStatement("import", in, opts)
}

// HeaderGuard renders the relative header path as an upper-case guard token ending in "_".
func HeaderGuard(in Input, opts Options) (string, error) {
	header, err := headerPath(in, opts)
	if err != nil {
		return "", err
	}
	return guardSeparators.ReplaceAllString(strings.ToUpper(header)+"_", "_"), nil
}

func includeStatement(directive string, in Input, opts Options) (string, error) {
	header, err := headerPath(in, opts)
	if err != nil {
		return "", err
	}
	header = StripPrefix(header, opts.StripPrefixes)

	opening, closing := `"`, `"`
	if opts.UseAngleBrackets {
		opening, closing = "<", ">"
	}
	return fmt.Sprintf("#%s %s%s%s", directive, opening, header, closing), nil
}

// headerPath is the forward-slash relative path of the file, swapped for a sibling
// header when the file is a source file and one exists.
func headerPath(in Input, opts Options) (string, error) {
	rel, err := RelativePath(in, opts)
	if err != nil {
		return "", err
	}
	if opts.Headers != nil && !language.IsHeader(rel) {
		if h, ok := opts.Headers.HeaderFor(in.ProjectRoot, rel); ok {
			rel = h
		}
	}
	return filepath.ToSlash(rel), nil
}

// StripPrefix removes the longest prefix in prefixes that matches whole leading
// segments of p. A prefix that would consume all of p is ignored. On equal length the
// earlier prefix wins.
func StripPrefix(p string, prefixes []string) string {
	segs := strings.Split(p, "/")
	best := 0
	for _, prefix := range prefixes {
		ps := segments(prefix)
		if len(ps) == 0 || len(ps) >= len(segs) || len(ps) <= best {
			continue
		}
		if slices.Equal(segs[:len(ps)], ps) {
			best = len(ps)
		}
	}
	return strings.Join(segs[best:], "/")
}

func segments(p string) []string {
	p = strings.Trim(path.Clean(filepath.ToSlash(p)), "/")
	if p == "" || p == "." {
		return nil
	}
	return strings.Split(p, "/")
}
