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
	"slices"

	"github.com/walteh/copypaths/pkg/language"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ Kind names a copy command
type Kind string

const (
	KindAbsolutePath      Kind = "path"
	KindFileName          Kind = "name"
	KindDirectory         Kind = "directory"
	KindRelativePath      Kind = "relative-path"
	KindRelativeDirectory Kind = "relative-directory"
	KindInclude           Kind = "include"
	KindObjCImport        Kind = "objc-import"
	KindHeaderGuard       Kind = "header-guard"
	KindJavaImport        Kind = "java-import"
	KindJavaPackage       Kind = "java-package"
)

// 📋 Command describes one entry of the command palette
type Command struct {
	Kind      Kind
	Title     string          // palette label
	Status    string          // message shown once the value is on the clipboard
	Family    language.Family // languages the command is enabled for
	Project   bool            // whether the command needs a project root
	Transform Transformer
}

var commands = []Command{
	{KindAbsolutePath, "Copy File Path", "Copied file path", language.Any, false, AbsolutePath},
	{KindFileName, "Copy File Name", "Copied file name", language.Any, false, FileName},
	{KindDirectory, "Copy File Directory", "Copied file directory", language.Any, false, DirectoryPath},
	{KindRelativePath, "Copy File Path Relative to Project", "Copied relative file", language.Any, true, RelativePath},
	{KindRelativeDirectory, "Copy File Directory Relative to Project", "Copied relative directory", language.Any, true, RelativeDirectory},
	{KindInclude, "Copy as #include", "Copied include", language.CFamily, true, CIncludeStatement},
	{KindObjCImport, "Copy as #import", "Copied import", language.CFamily, true, ObjCImportStatement},
	{KindHeaderGuard, "Copy as Header Guard", "Copied include guard", language.CFamily, true, HeaderGuard},
	{KindJavaImport, "Copy as Java import", "Copied import", language.Java, true, JavaImportStatement},
	{KindJavaPackage, "Copy as Java package", "Copied package", language.Java, true, JavaPackageStatement},
}

// Commands returns every command in palette order.
func Commands() []Command {
	return slices.Clone(commands)
}

// Lookup finds the command for kind.
func Lookup(kind Kind) (Command, bool) {
	for _, c := range commands {
		if c.Kind == kind {
			return c, true
		}
	}
	return Command{}, false
}

// Apply runs the command registered for kind.
func Apply(kind Kind, in Input, opts Options) (string, error) {
	c, ok := Lookup(kind)
	if !ok {
		return "", errors.Errorf("unknown command %q", kind)
	}
	return c.Transform(in, opts)
}

// Enabled reports whether the command applies to the file's language.
func (c Command) Enabled(path string) bool {
	return language.Supports(c.Family, path)
}
