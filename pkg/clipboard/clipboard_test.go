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

package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

type failing struct{}

func (failing) Copy(context.Context, string) error { return errors.New("boom") }

func TestSystemCopy(t *testing.T) {
	tests := []struct {
		name      string
		installed map[string]bool
		broken    map[string]bool
		wantTool  string
		wantErr   error
	}{
		{
			name:      "first_available_tool",
			installed: map[string]bool{"xclip": true, "xsel": true},
			wantTool:  "xclip",
		},
		{
			name:      "skips_broken_tool",
			installed: map[string]bool{"wl-copy": true, "xsel": true},
			broken:    map[string]bool{"wl-copy": true},
			wantTool:  "xsel",
		},
		{
			name:      "nothing_installed",
			installed: map[string]bool{},
			wantErr:   ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ranTool, stdin string
			s := &System{
				lookPath: func(name string) (string, error) {
					if tt.installed[name] {
						return "/usr/bin/" + name, nil
					}
					return "", exec.ErrNotFound
				},
				run: func(_ context.Context, path string, _ []string, in io.Reader) error {
					name := strings.TrimPrefix(path, "/usr/bin/")
					if tt.broken[name] {
						return errors.New("exit status 1")
					}
					data, err := io.ReadAll(in)
					require.NoError(t, err)
					ranTool, stdin = name, string(data)
					return nil
				},
			}

			err := s.Copy(context.Background(), "#include <foo.h>")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "error should be %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTool, ranTool)
			assert.Equal(t, "#include <foo.h>", stdin)
		})
	}
}

func TestSystemTools(t *testing.T) {
	assert.Equal(t, "pbcopy", systemTools("darwin")[0].cmd)
	assert.Equal(t, "clip", systemTools("windows")[0].cmd)
}

func TestOSC52Copy(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("src/foo.h"))

	tests := []struct {
		name   string
		env    map[string]string
		prefix string
	}{
		{name: "plain", env: map[string]string{}, prefix: "\x1b]52;c;"},
		{name: "tmux", env: map[string]string{"TMUX": "/tmp/tmux"}, prefix: "\x1bPtmux;"},
		{name: "screen", env: map[string]string{"STY": "123.pts"}, prefix: "\x1bP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			o := &OSC52{Out: buf, Getenv: func(k string) string { return tt.env[k] }}

			require.NoError(t, o.Copy(context.Background(), "src/foo.h"))
			assert.True(t, strings.HasPrefix(buf.String(), tt.prefix), "sequence %q should start with %q", buf.String(), tt.prefix)
			assert.Contains(t, buf.String(), encoded, "sequence should carry the text")
		})
	}

	err := (&OSC52{}).Copy(context.Background(), "x")
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestChain(t *testing.T) {
	mem := &Memory{}
	require.NoError(t, Chain{failing{}, mem}.Copy(context.Background(), "foo.cpp"))
	assert.Equal(t, "foo.cpp", mem.Text())
	assert.Equal(t, 1, mem.Count())

	err := Chain{failing{}, failing{}}.Copy(context.Background(), "foo.cpp")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Contains(t, err.Error(), "boom")

	err = Chain{}.Copy(context.Background(), "foo.cpp")
	assert.True(t, errors.Is(err, ErrUnavailable))
}
