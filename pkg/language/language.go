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

// Package language decides which copy commands make sense for a file.
package language

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// 🏷️ Family groups the languages a command is meant for
type Family int

const (
	Any     Family = iota // every file
	CFamily               // C, C++, Objective-C, Objective-C++
	Java
)

// String returns a string representation of Family
func (f Family) String() string {
	switch f {
	case CFamily:
		return "c-family"
	case Java:
		return "java"
	default:
		return "any"
	}
}

// HeaderExtensions are tried in this order when swapping a source file for its header.
var HeaderExtensions = []string{".h", ".hh", ".hpp"}

var patterns = map[Family]string{
	CFamily: "**/*.{c,cc,cpp,cxx,c++,h,hh,hpp,hxx,h++,inl,ipp,m,mm}",
	Java:    "**/*.java",
}

// 🔍 Detect returns the family of the file at path, or Any when it is not recognised
func Detect(path string) Family {
	p := normalize(path)
	for _, fam := range []Family{CFamily, Java} {
		if ok, _ := doublestar.Match(patterns[fam], p); ok {
			return fam
		}
	}
	return Any
}

// Supports reports whether a command of the given family applies to path.
func Supports(fam Family, path string) bool {
	if fam == Any {
		return true
	}
	return Detect(path) == fam
}

// IsHeader reports whether path already names a header file. Like Detect, it
// ignores case.
func IsHeader(path string) bool {
	return slices.Contains(HeaderExtensions, strings.ToLower(filepath.Ext(path)))
}

// doublestar wants forward slashes and no leading separator for "**/" to match at the root.
func normalize(path string) string {
	p := filepath.ToSlash(path)
	p = strings.TrimLeft(p, "/")
	return strings.ToLower(p)
}
