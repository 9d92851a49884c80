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

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogCopy(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		op   CopyOperation
		want string
	}{
		{
			name: "copied",
			op: CopyOperation{
				Kind:   "include",
				Status: "Copied include",
				File:   "/proj/include/foo/bar.hpp",
				Root:   "/proj",
				Value:  `#include "foo/bar.hpp"`,
				Copied: true,
			},
			want: "✅ Copied include (include)\n   #include \"foo/bar.hpp\"",
		},
		{
			name: "clipboard_missed",
			op:   CopyOperation{Kind: "path", Status: "Copied file path", Value: "/proj/a.c"},
			want: "⚠️  Copied file path (path)\n   /proj/a.c",
		},
		{
			name: "printed_is_silent",
			op:   CopyOperation{Kind: "name", Status: "Copied file name", Value: "a.c", Printed: true},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			NewWithZerolog(buf, zerolog.Nop()).LogCopy(context.Background(), tt.op)

			got := buf.String()
			lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
			for i := range lines {
				lines[i] = strings.TrimRight(lines[i], " ")
			}
			assert.Equal(t, tt.want, strings.Join(lines, "\n"))
		})
	}
}

func TestNotes(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	console, structured := &bytes.Buffer{}, &bytes.Buffer{}
	logger := NewWithZerolog(console, zerolog.New(structured))

	logger.Infof("serving %d tools", 11)
	logger.Warningf("could not reach a clipboard: %v", "no tool")
	logger.Errorf("command failed: %s", "boom")

	assert.Equal(t, "ℹ️  serving 11 tools\n⚠️  could not reach a clipboard: no tool\n❌ command failed: boom\n", console.String())

	var levels []string
	for _, line := range strings.Split(strings.TrimSpace(structured.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		levels = append(levels, entry["level"].(string))
	}
	assert.Equal(t, []string{"info", "warn", "error"}, levels, "each note should be mirrored at its level")
}

func TestLogCopyMirrorsToZerolog(t *testing.T) {
	structured := &bytes.Buffer{}
	logger := NewWithZerolog(io.Discard, zerolog.New(structured))

	logger.LogCopy(context.Background(), CopyOperation{
		Kind:   "java-import",
		Status: "Copied import",
		File:   "/proj/src/com/acme/Foo.java",
		Root:   "/proj/src",
		Value:  "import com.acme.Foo;",
		Copied: true,
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(structured.Bytes(), &entry), "zerolog line should be JSON")
	assert.Equal(t, "Copied import", entry["message"])
	assert.Equal(t, "java-import", entry["kind"])
	assert.Equal(t, "import com.acme.Foo;", entry["value"])
	assert.Equal(t, true, entry["copied"])
}

func TestContext(t *testing.T) {
	logger := NewWithZerolog(io.Discard, zerolog.Nop())
	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	assert.Panics(t, func() { FromContext(context.Background()) }, "a context without a console is a wiring bug")
}
