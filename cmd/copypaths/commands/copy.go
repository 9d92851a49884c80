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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/copypaths/cmd/copypaths/opts"
	"github.com/walteh/copypaths/pkg/language"
	"github.com/walteh/copypaths/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// NewCopyCmds creates one command per copy kind, in palette order
func NewCopyCmds(opts *opts.RootOpts) []*cobra.Command {
	var cmds []*cobra.Command
	for _, c := range transform.Commands() {
		cmds = append(cmds, newCopyCmd(opts, c))
	}
	return cmds
}

func newCopyCmd(opts *opts.RootOpts, c transform.Command) *cobra.Command {
	var (
		brackets bool
		quotes   bool
		prefixes []string
	)

	long := fmt.Sprintf("%s puts the result on the clipboard.", c.Title)
	if c.Family != language.Any {
		long += fmt.Sprintf("\nOnly available for %s files.", c.Family)
	}
	if c.Project {
		long += "\nThe file must be inside a project folder (see --root and --config)."
	}

	cmd := &cobra.Command{
		Use:   string(c.Kind) + " FILE",
		Short: c.Title,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			op, err := opts.Operator(opts.Out)
			if err != nil {
				return err
			}

			req := opts.Request(c.Kind, args[0])
			switch {
			case brackets && quotes:
				return errors.Errorf("--brackets and --quotes cannot be used together")
			case brackets:
				req.Overrides.Brackets = &brackets
			case quotes:
				no := false
				req.Overrides.Brackets = &no
			}
			if cmd.Flags().Changed("strip-prefix") {
				req.Overrides.StripPrefixes = prefixes
			}

			if _, err := op.Copy(ctx, req); err != nil {
				return errors.Errorf("%s: %w", c.Title, err)
			}
			return nil
		},
	}

	if c.Kind == transform.KindInclude || c.Kind == transform.KindObjCImport {
		cmd.Flags().BoolVar(&brackets, "brackets", false, "emit <path>, overriding c_family_includes_use_brackets")
		cmd.Flags().BoolVar(&quotes, "quotes", false, "emit \"path\", overriding c_family_includes_use_brackets")
		cmd.Flags().StringSliceVar(&prefixes, "strip-prefix", nil, "leading path to remove, overriding c_family_includes_strip_prefixes (repeatable)")
	}

	return cmd
}
