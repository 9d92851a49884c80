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
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		content     string
		wantErr     bool
		errContains string
		check       func(t *testing.T, dir string, proj *Project)
	}{
		{
			name:     "yaml_full",
			filename: ".copy-paths.yaml",
			content: `
folders:
  - path: .
  - path: vendor/lib
settings:
  copy-paths:
    c_family_includes_use_brackets: true
    c_family_includes_strip_prefixes:
      - include
      - ./src/
`,
			check: func(t *testing.T, dir string, proj *Project) {
				assert.Equal(t, []string{dir, filepath.Join(dir, "vendor", "lib")}, proj.Roots(), "roots should resolve against the file")
				assert.True(t, proj.Settings.UseBrackets, "brackets should be on")
				assert.Equal(t, []string{"include", "src"}, proj.Settings.StripPrefixes, "prefixes should be cleaned")
				assert.Nil(t, proj.Settings.JavaRoots, "java roots should default")
			},
		},
		{
			name:     "yml_without_folders",
			filename: ".copy-paths.yml",
			content: `
settings:
  copy-paths:
    java_package_roots: [io]
`,
			check: func(t *testing.T, dir string, proj *Project) {
				assert.Equal(t, []string{dir}, proj.Roots(), "project dir should be the root")
				assert.False(t, proj.Settings.UseBrackets)
				assert.Equal(t, []string{"io"}, proj.Settings.JavaRoots)
			},
		},
		{
			name:     "yaml_empty",
			filename: ".copy-paths.yaml",
			content:  "",
			check: func(t *testing.T, dir string, proj *Project) {
				assert.Equal(t, []string{dir}, proj.Roots())
				assert.Empty(t, proj.Settings.StripPrefixes)
			},
		},
		{
			name:     "yaml_unknown_field",
			filename: ".copy-paths.yaml",
			content: `
settings:
  copy-paths:
    use_brackets: true
`,
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:     "json_full",
			filename: ".copy-paths.json",
			content: `{
	"folders": [{"path": "src"}],
	"settings": {
		"copy-paths": {
			"c_family_includes_use_brackets": false,
			"c_family_includes_strip_prefixes": ["include"]
		}
	}
}`,
			check: func(t *testing.T, dir string, proj *Project) {
				assert.Equal(t, []string{filepath.Join(dir, "src")}, proj.Roots())
				assert.Equal(t, []string{"include"}, proj.Settings.StripPrefixes)
			},
		},
		{
			name:        "json_unknown_field",
			filename:    ".copy-paths.json",
			content:     `{"settings": {"other-plugin": {}}}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:     "hcl_full",
			filename: ".copy-paths.hcl",
			content: `
folder {
  path = "."
}

copy_paths {
  c_family_includes_use_brackets   = true
  c_family_includes_strip_prefixes = ["include", "lib/include"]
  java_package_roots               = ["com"]
}
`,
			check: func(t *testing.T, dir string, proj *Project) {
				assert.Equal(t, []string{dir}, proj.Roots())
				assert.True(t, proj.Settings.UseBrackets)
				assert.Equal(t, []string{"include", "lib/include"}, proj.Settings.StripPrefixes)
				assert.Equal(t, []string{"com"}, proj.Settings.JavaRoots)
			},
		},
		{
			name:     "hcl_env_variable",
			filename: ".copy-paths.hcl",
			content: `
folder {
  path = "${env.COPYPATHS_TEST_ROOT}/code"
}
`,
			check: func(t *testing.T, dir string, proj *Project) {
				assert.Equal(t, []string{filepath.Join("/opt", "code")}, proj.Roots())
			},
		},
		{
			name:        "hcl_invalid",
			filename:    ".copy-paths.hcl",
			content:     `folder {`,
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name:     "sublime_project",
			filename: "app.sublime-project",
			content: `{
	"folders": [{"path": ".", "folder_exclude_patterns": ["build"]}],
	"settings": {
		"tab_size": 4,
		"copy-paths": {
			"c_family_includes_use_brackets": true,
			"c_family_includes_strip_prefixes": ["Sources"]
		}
	}
}`,
			check: func(t *testing.T, dir string, proj *Project) {
				assert.Equal(t, []string{dir}, proj.Roots())
				assert.True(t, proj.Settings.UseBrackets)
				assert.Equal(t, []string{"Sources"}, proj.Settings.StripPrefixes)
			},
		},
		{
			name:     "sublime_project_with_comments",
			filename: "app.sublime-project",
			content: `{
	// editor project
	"folders": [{"path": "."},],
	"settings": {
		/* per-project copy settings */
		"copy-paths": {"c_family_includes_use_brackets": true,},
	},
}`,
			check: func(t *testing.T, dir string, proj *Project) {
				assert.Equal(t, []string{dir}, proj.Roots())
				assert.True(t, proj.Settings.UseBrackets)
			},
		},
		{
			name:        "sublime_project_invalid",
			filename:    "app.sublime-project",
			content:     `{"folders": [`,
			wantErr:     true,
			errContains: "parsing sublime project",
		},
		{
			name:     "sublime_project_without_settings",
			filename: "app.sublime-project",
			content:  `{"folders": [{"path": "/abs/path"}]}`,
			check: func(t *testing.T, dir string, proj *Project) {
				assert.Equal(t, []string{filepath.Clean("/abs/path")}, proj.Roots())
				assert.Equal(t, Settings{StripPrefixes: []string{}}, proj.Settings)
			},
		},
		{
			name:     "absolute_strip_prefix",
			filename: ".copy-paths.yaml",
			content: `
settings:
  copy-paths:
    c_family_includes_strip_prefixes: [/usr/include]
`,
			wantErr:     true,
			errContains: "must be relative",
		},
		{
			name:     "escaping_strip_prefix",
			filename: ".copy-paths.yaml",
			content: `
settings:
  copy-paths:
    c_family_includes_strip_prefixes: [../other]
`,
			wantErr:     true,
			errContains: "leaves the project",
		},
		{
			name:     "dotted_java_root",
			filename: ".copy-paths.yaml",
			content: `
settings:
  copy-paths:
    java_package_roots: [com.acme]
`,
			wantErr:     true,
			errContains: "single package segment",
		},
		{
			name:     "empty_folder_path",
			filename: ".copy-paths.yaml",
			content: `
folders:
  - path: ""
`,
			wantErr:     true,
			errContains: "folders[0].path is required",
		},
		{
			name:        "unsupported_name",
			filename:    "settings.toml",
			content:     "",
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	t.Setenv("COPYPATHS_TEST_ROOT", "/opt")
	ctx := testContext(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644), "writing project file should succeed")

			proj, err := Load(ctx, path)
			if tt.wantErr {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Load should succeed")
			assert.Equal(t, path, proj.Location(), "location should be recorded")
			if tt.check != nil {
				tt.check(t, dir, proj)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(testContext(t), filepath.Join(t.TempDir(), ".copy-paths.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading project file")
}

func TestDiscover(t *testing.T) {
	ctx := testContext(t)

	t.Run("walks_up_to_project_file", func(t *testing.T) {
		root := t.TempDir()
		deep := filepath.Join(root, "src", "com", "acme")
		require.NoError(t, os.MkdirAll(deep, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, ".copy-paths.yaml"), nil, 0644))

		got, err := Discover(ctx, deep)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, ".copy-paths.yaml"), got)
	})

	t.Run("nearest_directory_wins", func(t *testing.T) {
		root := t.TempDir()
		sub := filepath.Join(root, "sub")
		require.NoError(t, os.MkdirAll(sub, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, ".copy-paths.yaml"), nil, 0644))
		require.NoError(t, os.WriteFile(filepath.Join(sub, "sub.sublime-project"), []byte("{}"), 0644))

		got, err := Discover(ctx, sub)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(sub, "sub.sublime-project"), got)
	})

	t.Run("dedicated_file_before_editor_project", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "app.sublime-project"), []byte("{}"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(root, ".copy-paths.json"), []byte("{}"), 0644))

		got, err := Discover(ctx, root)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, ".copy-paths.json"), got)
	})

	t.Run("directory_named_like_project_file_is_ignored", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "x.sublime-project"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, ".copy-paths.yml"), nil, 0644))

		got, err := Discover(ctx, root)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, ".copy-paths.yml"), got)
	})
}

func TestGetParser(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{filename: "/a/.copy-paths.yaml", want: &YAMLParser{}},
		{filename: "/a/.copy-paths.yml", want: &YAMLParser{}},
		{filename: "/a/.copy-paths.json", want: &JSONParser{}},
		{filename: "/a/.copy-paths.hcl", want: &HCLParser{}},
		{filename: "/a/game.sublime-project", want: &SublimeParser{}},
		{filename: "/a/config.yaml", want: nil},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.filename), func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestSettingsOptions(t *testing.T) {
	s := Settings{UseBrackets: true, StripPrefixes: []string{"include"}, JavaRoots: []string{"io"}}
	opts := s.Options()
	assert.True(t, opts.UseAngleBrackets)
	assert.Equal(t, []string{"include"}, opts.StripPrefixes)
	assert.Equal(t, []string{"io"}, opts.JavaRoots)
	assert.Nil(t, opts.Headers)
	assert.Equal(t, "brackets, strip [include]", s.String())
}

func TestErrProjectFileNotFoundIsSentinel(t *testing.T) {
	wrapped := errors.Errorf("discovering: %w", ErrProjectFileNotFound)
	assert.True(t, errors.Is(wrapped, ErrProjectFileNotFound))
}
