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

package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Family
	}{
		{name: "cpp_source", path: "/proj/src/foo.cpp", want: CFamily},
		{name: "c_header", path: "/proj/include/foo/bar.h", want: CFamily},
		{name: "objc_source", path: "/proj/App/View.m", want: CFamily},
		{name: "objcxx_source", path: "/proj/App/View.mm", want: CFamily},
		{name: "upper_case_extension", path: "/proj/LEGACY.HPP", want: CFamily},
		{name: "java_source", path: "/proj/src/com/acme/Foo.java", want: Java},
		{name: "relative_java", path: "Foo.java", want: Java},
		{name: "markdown", path: "/proj/README.md", want: Any},
		{name: "no_extension", path: "/proj/Makefile", want: Any},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.path), "family should match")
		})
	}
}

func TestSupports(t *testing.T) {
	assert.True(t, Supports(Any, "/proj/README.md"), "any family should support every file")
	assert.True(t, Supports(CFamily, "/proj/foo.cc"), "c family should support .cc")
	assert.False(t, Supports(CFamily, "/proj/Foo.java"), "c family should not support java")
	assert.False(t, Supports(Java, "/proj/foo.h"), "java should not support headers")
}

func TestIsHeader(t *testing.T) {
	assert.True(t, IsHeader("foo/bar.hpp"))
	assert.True(t, IsHeader("foo/bar.hh"))
	assert.False(t, IsHeader("foo/bar.cpp"))
	assert.False(t, IsHeader("foo/bar"))
	assert.True(t, IsHeader("FOO.H"), "extension case should not matter")
	assert.True(t, IsHeader("Foo/Bar.HPP"))
	assert.Equal(t, CFamily, Detect("FOO.H"), "detection and header checks should agree")
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "c-family", CFamily.String())
	assert.Equal(t, "java", Java.String())
	assert.Equal(t, "any", Any.String())
}
