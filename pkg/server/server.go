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

// Package server exposes the copy commands as Model Context Protocol tools.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/walteh/copypaths/pkg/language"
	"github.com/walteh/copypaths/pkg/operation"
	"github.com/walteh/copypaths/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// Name is the implementation name reported to clients.
const Name = "copypaths"

// ListToolName is the tool that computes every format at once.
const ListToolName = "list_path_formats"

// Server wraps the MCP server with tool handlers.
type Server struct {
	mcp *mcp.Server
	op  operation.Operator
}

// New creates a new MCP server with a tool per copy command.
func New(op operation.Operator, version string) *Server {
	srv := &Server{
		op: op,
		mcp: mcp.NewServer(
			&mcp.Implementation{
				Name:    Name,
				Version: version,
			},
			nil,
		),
	}
	srv.registerTools()
	return srv
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// Run serves tools over stdin and stdout until ctx is done or the client leaves.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// ToolName is the tool registered for kind, e.g. copy_relative_path.
func ToolName(kind transform.Kind) string {
	return "copy_" + strings.ReplaceAll(string(kind), "-", "_")
}

const fileProperties = `
		"file_path": {
			"type": "string",
			"description": "Path of the file the command runs against."
		},
		"project_root": {
			"type": "string",
			"description": "Project folder. If omitted, the nearest project file above the file is used."
		}`

const cFamilyProperties = `,
		"use_brackets": {
			"type": "boolean",
			"description": "Emit <path> instead of \"path\"."
		},
		"strip_prefixes": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Leading path segments removed from the include path."
		}`

const copyProperty = `,
		"copy": {
			"type": "boolean",
			"description": "Also put the value on the clipboard of the machine running the server."
		}`

func inputSchema(properties string) json.RawMessage {
	return json.RawMessage(`{
	"type": "object",
	"properties": {` + properties + `
	},
	"required": ["file_path"]
}`)
}

func (s *Server) registerTools() {
	for _, cmd := range transform.Commands() {
		props := fileProperties + copyProperty
		if cmd.Family == language.CFamily && cmd.Kind != transform.KindHeaderGuard {
			props += cFamilyProperties
		}
		s.mcp.AddTool(&mcp.Tool{
			Name:        ToolName(cmd.Kind),
			Description: description(cmd),
			InputSchema: inputSchema(props),
		}, s.handleCommand(cmd.Kind))
	}

	s.mcp.AddTool(&mcp.Tool{
		Name:        ListToolName,
		Description: "Compute every path format available for a file: absolute, relative, #include, header guard, Java import and so on. Formats that cannot be computed carry an error.",
		InputSchema: inputSchema(fileProperties),
	}, s.handleList)
}

func description(cmd transform.Command) string {
	switch cmd.Family {
	case language.Any:
		return cmd.Title + "."
	default:
		return fmt.Sprintf("%s. Only available for %s files.", cmd.Title, cmd.Family)
	}
}

// commandResult is the JSON body of a copy tool result
type commandResult struct {
	Kind   transform.Kind `json:"kind"`
	Value  string         `json:"value"`
	Root   string         `json:"project_root,omitempty"`
	Copied bool           `json:"copied"`
}

// listEntry is one element of the list_path_formats result
type listEntry struct {
	Kind  transform.Kind `json:"kind"`
	Title string         `json:"title"`
	Value string         `json:"value,omitempty"`
	Error string         `json:"error,omitempty"`
}

func request(kind transform.Kind, args map[string]any) operation.Request {
	req := operation.Request{
		Kind:     kind,
		FilePath: getStringArg(args, "file_path"),
	}
	if root := getStringArg(args, "project_root"); root != "" {
		req.Folders = []string{root}
	}
	if v, ok := args["use_brackets"].(bool); ok {
		req.Overrides.Brackets = &v
	}
	if prefixes, ok := getStringSliceArg(args, "strip_prefixes"); ok {
		req.Overrides.StripPrefixes = prefixes
	}
	return req
}

func (s *Server) handleCommand(kind transform.Kind) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := parseArgs(req)
		if err != nil {
			return errResult(err.Error()), nil
		}
		r := request(kind, args)
		if r.FilePath == "" {
			return errResult("file_path is required"), nil
		}

		var res *operation.Result
		if getBoolArg(args, "copy") {
			res, err = s.op.Copy(ctx, r)
		} else {
			res, err = s.op.Evaluate(ctx, r)
		}
		if err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Str("tool", ToolName(kind)).Msg("tool failed")
			return errResult(err.Error()), nil
		}

		return jsonResult(commandResult{
			Kind:   kind,
			Value:  res.Value,
			Root:   res.Input.ProjectRoot,
			Copied: res.Copied,
		}), nil
	}
}

func (s *Server) handleList(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseArgs(req)
	if err != nil {
		return errResult(err.Error()), nil
	}
	r := request("", args)
	if r.FilePath == "" {
		return errResult("file_path is required"), nil
	}

	results, err := s.op.List(ctx, r)
	if err != nil {
		return errResult(err.Error()), nil
	}

	entries := make([]listEntry, 0, len(results))
	for _, res := range results {
		e := listEntry{Kind: res.Command.Kind, Title: res.Command.Title, Value: res.Value}
		if res.Err != nil {
			e.Error = res.Err.Error()
		}
		entries = append(entries, e)
	}
	return jsonResult(entries), nil
}

// jsonResult marshals data to JSON and returns as tool result.
func jsonResult(data any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errResult("json marshal err=" + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}
}

// errResult returns a tool result indicating an error.
func errResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}

// parseArgs unmarshals the raw JSON arguments into a map.
func parseArgs(req *mcp.CallToolRequest) (map[string]any, error) {
	if req.Params == nil || len(req.Params.Arguments) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &m); err != nil {
		return nil, errors.Errorf("invalid arguments: %w", err)
	}
	return m, nil
}

// getStringArg extracts a string argument from parsed args.
func getStringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// getBoolArg extracts a boolean argument from parsed args.
func getBoolArg(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}

// getStringSliceArg extracts a list of strings; ok is false when the key is absent.
func getStringSliceArg(args map[string]any, key string) ([]string, bool) {
	raw, ok := args[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}
