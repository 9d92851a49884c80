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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/copypaths/cmd/copypaths/opts"
	"github.com/walteh/copypaths/pkg/log"
	"github.com/walteh/copypaths/pkg/server"
	"gitlab.com/tozd/go/errors"
)

// NewServeCmd creates a new serve command
func NewServeCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the copy commands as MCP tools over stdio",
		Long: `Serve starts a Model Context Protocol server on stdin and stdout. Every copy
command is exposed as a copy_<kind> tool, plus list_path_formats which computes
all of them at once. Console output goes to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if opts.Print {
				return errors.Errorf("--print cannot be used with serve; stdout carries the protocol")
			}

			// stdout carries the protocol
			op, err := opts.Operator(opts.Err)
			if err != nil {
				return err
			}

			zerolog.Ctx(ctx).Debug().Str("version", opts.Version).Msg("starting mcp server")
			log.FromContext(ctx).Infof("Serving %s %s tools over stdio", server.Name, opts.Version)
			if err := server.New(op, opts.Version).Run(ctx); err != nil {
				return errors.Errorf("serving: %w", err)
			}
			return nil
		},
	}

	return cmd
}
