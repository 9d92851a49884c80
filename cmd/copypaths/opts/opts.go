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

package opts

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/copypaths/pkg/clipboard"
	"github.com/walteh/copypaths/pkg/log"
	"github.com/walteh/copypaths/pkg/operation"
	"github.com/walteh/copypaths/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// Flags
	ConfigFile string
	Folders    []string
	Print      bool
	Debug      bool

	// Version is reported by the version command and the MCP server
	Version string

	// Streams
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Clipboard receives copied values unless Print is set
	Clipboard clipboard.Clipboard
}

// Level is the zerolog level selected by the flags. Console output already
// covers what info logs would say, so only warnings show without --debug.
func (o *RootOpts) Level() zerolog.Level {
	if o.Debug {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

// Console builds the user-facing logger for w. Its zerolog mirror only runs
// with --debug, as the console line already carries the message.
func (o *RootOpts) Console(w io.Writer) *log.Logger {
	mirror := zerolog.Nop()
	if o.Debug {
		mirror = zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
			cw.Out = o.Err
		})).With().Timestamp().Logger()
	}
	return log.NewWithZerolog(w, mirror)
}

// Operator builds an operator that reports to console.
func (o *RootOpts) Operator(console io.Writer) (operation.Operator, error) {
	op := operation.Options{
		Clipboard: o.Clipboard,
		Console:   o.Console(console),
	}
	if o.Print {
		op.Print = o.Out
	}
	oper, err := operation.New(op)
	if err != nil {
		return nil, errors.Errorf("creating operator: %w", err)
	}
	return oper, nil
}

// Request builds a request for kind on file using the root flags.
func (o *RootOpts) Request(kind transform.Kind, file string) operation.Request {
	return operation.Request{
		Kind:       kind,
		FilePath:   file,
		Folders:    o.Folders,
		ConfigPath: o.ConfigFile,
	}
}
