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
	"encoding/json"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/copypaths/cmd/copypaths/opts"
	"github.com/walteh/copypaths/pkg/operation"
	"github.com/walteh/copypaths/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// listEntry is the JSON form of one row
type listEntry struct {
	Kind  transform.Kind `json:"kind"`
	Title string         `json:"title"`
	Value string         `json:"value,omitempty"`
	Error string         `json:"error,omitempty"`
}

// NewListCmd creates a new list command
func NewListCmd(opts *opts.RootOpts) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list FILE",
		Short: "Show every format available for a file",
		Long: `List computes every copy command enabled for the file's language and
prints the results without touching the clipboard. Commands that cannot run,
for example because the file is outside a project, show the reason instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			op, err := opts.Operator(opts.Err)
			if err != nil {
				return err
			}

			results, err := op.List(ctx, opts.Request("", args[0]))
			if err != nil {
				return errors.Errorf("listing formats: %w", err)
			}

			if asJSON {
				return writeJSON(opts, results)
			}
			return writeTable(opts, results)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the results as JSON")

	return cmd
}

func writeTable(opts *opts.RootOpts, results []operation.Result) error {
	data := pterm.TableData{{"Command", "Kind", "Value"}}
	for _, r := range results {
		value := r.Value
		if r.Err != nil {
			msg, ok := Notice(r.Err)
			if !ok {
				msg = r.Err.Error()
			}
			value = "⚠️  " + msg
		}
		data = append(data, []string{r.Command.Title, string(r.Command.Kind), value})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(opts.Out).Render(); err != nil {
		return errors.Errorf("rendering table: %w", err)
	}
	return nil
}

func writeJSON(opts *opts.RootOpts, results []operation.Result) error {
	entries := make([]listEntry, 0, len(results))
	for _, r := range results {
		e := listEntry{Kind: r.Command.Kind, Title: r.Command.Title, Value: r.Value}
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		entries = append(entries, e)
	}

	enc := json.NewEncoder(opts.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return errors.Errorf("encoding results: %w", err)
	}
	return nil
}
