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

package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/copypaths/cmd/copypaths/commands"
	"github.com/walteh/copypaths/cmd/copypaths/opts"
	"github.com/walteh/copypaths/pkg/clipboard"
	"github.com/walteh/copypaths/pkg/log"
)

// newRootOpts creates the shared options with the process streams and clipboards
func newRootOpts() *opts.RootOpts {
	o := &opts.RootOpts{
		Version: GetVersionInfo().Version,
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
	}
	o.Clipboard = defaultClipboard(o.Err)
	return o
}

// defaultClipboard tries the platform tools first and falls back to an OSC 52
// sequence when a terminal is attached to term.
func defaultClipboard(term io.Writer) clipboard.Clipboard {
	chain := clipboard.Chain{clipboard.NewSystem()}
	if commands.IsTerminal(term) {
		chain = append(chain, clipboard.NewOSC52(term))
	}
	return chain
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "project file path (default: nearest .copy-paths.* or *.sublime-project above the file)")
	cmd.PersistentFlags().StringArrayVarP(&o.Folders, "root", "r", nil, "project folder, may be repeated")
	cmd.PersistentFlags().BoolVarP(&o.Print, "print", "p", false, "print the value to stdout instead of copying it")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags and returns a context carrying
// both the zerolog logger and the stderr console
func setupLogging(ctx context.Context, o *opts.RootOpts) context.Context {
	zerolog.SetGlobalLevel(o.Level())
	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = o.Err
	})).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	ctx = logger.WithContext(ctx)
	return log.NewContext(ctx, o.Console(o.Err))
}

// newRootCmd builds the command tree
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "copypaths",
		Short: "Copy a file's path in the form you need",
		Long: `copypaths turns a file path into the text you would type for it: the
absolute or project-relative path, a C #include or Objective-C #import line,
a header guard, or a Java import or package statement. The result goes to
the clipboard.

Project folders and settings come from --root, --config, or the nearest
.copy-paths.{yaml,yml,json,hcl} or *.sublime-project above the file.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(setupLogging(cmd.Context(), o))
		},
	}

	// Add shared flags
	addRootFlags(rootCmd, o)

	rootCmd.SetIn(o.In)
	rootCmd.SetOut(o.Out)
	rootCmd.SetErr(o.Err)

	// Add commands
	rootCmd.AddCommand(commands.NewCopyCmds(o)...)
	rootCmd.AddCommand(
		commands.NewListCmd(o),
		commands.NewPaletteCmd(o),
		commands.NewServeCmd(o),
		newVersionCmd(),
	)

	return rootCmd
}
