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

// Package clipboard puts text on the user's clipboard.
package clipboard

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrUnavailable is returned when no clipboard could take the text.
var ErrUnavailable = errors.Base("no clipboard available")

// 📋 Clipboard accepts text for the system clipboard
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

type tool struct {
	cmd  string
	args []string
}

// 🖥️ System copies through the platform clipboard tools
type System struct {
	lookPath func(string) (string, error)
	run      func(ctx context.Context, path string, args []string, stdin io.Reader) error
}

// NewSystem returns a clipboard backed by pbcopy, wl-copy, xclip, xsel or clip.
func NewSystem() *System {
	return &System{
		lookPath: exec.LookPath,
		run: func(ctx context.Context, path string, args []string, stdin io.Reader) error {
			cmd := exec.CommandContext(ctx, path, args...)
			cmd.Stdin = stdin
			return cmd.Run()
		},
	}
}

func systemTools(goos string) []tool {
	tools := []tool{
		{cmd: "pbcopy"},
		{cmd: "wl-copy"},
		{cmd: "xclip", args: []string{"-selection", "clipboard"}},
		{cmd: "xsel", args: []string{"--clipboard", "--input"}},
	}
	if goos == "windows" {
		tools = append([]tool{{cmd: "clip"}}, tools...)
	}
	return tools
}

// Copy tries each tool in turn; a tool that is missing or fails is skipped.
func (s *System) Copy(ctx context.Context, text string) error {
	logger := zerolog.Ctx(ctx)
	for _, t := range systemTools(runtime.GOOS) {
		path, err := s.lookPath(t.cmd)
		if err != nil {
			continue
		}
		if err := s.run(ctx, path, t.args, bytes.NewBufferString(text)); err != nil {
			logger.Debug().Err(err).Str("tool", t.cmd).Msg("clipboard tool failed")
			continue
		}
		logger.Debug().Str("tool", t.cmd).Msg("copied to clipboard")
		return nil
	}
	return ErrUnavailable
}

// 📡 OSC52 asks the terminal to set the clipboard with an escape sequence
type OSC52 struct {
	Out    io.Writer
	Getenv func(string) string
}

// NewOSC52 writes escape sequences to out.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{Out: out, Getenv: os.Getenv}
}

// Copy writes the sequence, wrapped for tmux or screen when running inside one.
func (o *OSC52) Copy(ctx context.Context, text string) error {
	if o.Out == nil {
		return ErrUnavailable
	}
	getenv := o.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	seq := osc52.New(text)
	switch {
	case getenv("TMUX") != "":
		seq = seq.Tmux()
	case getenv("STY") != "":
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(o.Out); err != nil {
		return errors.Errorf("writing osc52 sequence: %w", err)
	}
	return nil
}

// 🔗 Chain tries clipboards in order until one succeeds
type Chain []Clipboard

// Copy implements Clipboard.
func (c Chain) Copy(ctx context.Context, text string) error {
	var errs []error
	for _, cb := range c {
		err := cb.Copy(ctx, text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return ErrUnavailable
	}
	return errors.Errorf("every clipboard failed: %w", errors.Join(append([]error{ErrUnavailable}, errs...)...))
}

// 🧠 Memory keeps the copied text in memory
type Memory struct {
	mu   sync.Mutex
	text string
	n    int
}

// Copy implements Clipboard.
func (m *Memory) Copy(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.n++
	return nil
}

// Text returns the last copied text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Count returns how many times Copy was called.
func (m *Memory) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}
