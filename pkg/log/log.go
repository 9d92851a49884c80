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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	valueIndent = 3  // spaces to indent the copied value
	kindWidth   = 20 // width for the command kind
)

// 🎯 CopyOperation represents one copy command for logging
type CopyOperation struct {
	Kind    string // command kind (include, java-import, ...)
	Status  string // message for the user, e.g. "Copied include"
	File    string // file the command ran against
	Root    string // project root, empty when there is none
	Value   string // the text produced
	Copied  bool   // whether the text reached a clipboard
	Printed bool   // whether the text went to stdout instead
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 NewWithZerolog creates a logger that prints to console and mirrors every
// line to zlog. Pass zerolog.Nop() to keep the mirror quiet.
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatCopyOperation formats a copy operation for display
func (l *Logger) formatCopyOperation(op CopyOperation) string {
	var symbol string
	var symbolColor color.Attribute
	switch {
	case op.Copied:
		symbol = "✅"
		symbolColor = color.FgGreen
	case op.Printed:
		symbol = "📋"
		symbolColor = color.FgCyan
	default:
		symbol = "⚠️ "
		symbolColor = color.FgYellow
	}

	return fmt.Sprintf("%s %s %s\n%*s%s",
		symbol,
		color.New(symbolColor).Sprint(op.Status),
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", kindWidth, "("+op.Kind+")")),
		valueIndent, "",
		color.New(color.Bold).Sprint(op.Value))
}

// 📝 LogCopy logs a finished copy command
func (l *Logger) LogCopy(ctx context.Context, op CopyOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !op.Printed {
		fmt.Fprintln(l.console, l.formatCopyOperation(op))
	}

	l.zlog.Info().
		Str("kind", op.Kind).
		Str("file", op.File).
		Str("root", op.Root).
		Str("value", op.Value).
		Bool("copied", op.Copied).
		Bool("printed", op.Printed).
		Msg(op.Status)
}

// note prints one console line and mirrors it at level
func (l *Logger) note(symbol string, attr color.Attribute, level zerolog.Level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s %s\n", symbol, color.New(attr).Sprint(msg))
	l.zlog.WithLevel(level).Msg(msg)
}

// Info tells the user something that needs no action
func (l *Logger) Info(msg string) {
	l.note("ℹ️ ", color.FgCyan, zerolog.InfoLevel, msg)
}

// Warning reports a problem the command recovered from
func (l *Logger) Warning(msg string) {
	l.note("⚠️ ", color.FgYellow, zerolog.WarnLevel, msg)
}

// Error reports a failed command
func (l *Logger) Error(msg string) {
	l.note("❌", color.FgRed, zerolog.ErrorLevel, msg)
}

func (l *Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warningf(format string, args ...any) {
	l.Warning(fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}
