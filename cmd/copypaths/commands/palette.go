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
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/walteh/copypaths/cmd/copypaths/opts"
	"github.com/walteh/copypaths/pkg/log"
	"github.com/walteh/copypaths/pkg/operation"
	"github.com/walteh/copypaths/pkg/palette"
	"github.com/walteh/copypaths/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// ErrNotTerminal is returned when the palette is started without a terminal.
var ErrNotTerminal = errors.Base("palette needs an interactive terminal; use list instead")

// fder is satisfied by *os.File
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether v is a terminal file.
func IsTerminal(v any) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Items converts list results into palette entries.
func Items(results []operation.Result) []palette.Item {
	items := make([]palette.Item, 0, len(results))
	for _, r := range results {
		items = append(items, palette.Item{
			Title: r.Command.Title,
			Kind:  string(r.Command.Kind),
			Value: r.Value,
			Err:   r.Err,
		})
	}
	return items
}

// NewPaletteCmd creates a new palette command
func NewPaletteCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette FILE",
		Short: "Pick a format interactively and copy it",
		Long: `Palette shows every copy command enabled for the file together with the
value it would produce. Type to filter, use the arrow keys to move and press
enter to copy. Escape leaves without copying.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !IsTerminal(opts.In) || !IsTerminal(opts.Err) {
				return ErrNotTerminal
			}

			op, err := opts.Operator(opts.Out)
			if err != nil {
				return err
			}

			results, err := op.List(ctx, opts.Request("", args[0]))
			if err != nil {
				return errors.Errorf("listing formats: %w", err)
			}

			chosen, err := palette.Run(ctx, Items(results), opts.In, opts.Err)
			if errors.Is(err, palette.ErrCancelled) {
				log.FromContext(ctx).Info("Nothing copied")
				return nil
			}
			if err != nil {
				return err
			}

			if _, err := op.Copy(ctx, opts.Request(transform.Kind(chosen.Kind), args[0])); err != nil {
				return errors.Errorf("%s: %w", chosen.Title, err)
			}
			return nil
		},
	}

	return cmd
}
