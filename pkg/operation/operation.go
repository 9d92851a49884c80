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

package operation

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/copypaths/pkg/clipboard"
	"github.com/walteh/copypaths/pkg/config"
	"github.com/walteh/copypaths/pkg/log"
	"github.com/walteh/copypaths/pkg/project"
	"github.com/walteh/copypaths/pkg/transform"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// ErrUnsupportedLanguage is returned when a command is not enabled for the file's language.
var ErrUnsupportedLanguage = errors.Base("command is not available for this file type")

// listConcurrency bounds the transformers List runs at once.
const listConcurrency = 4

// 🎯 Operator runs copy commands
type Operator interface {
	// Evaluate computes the value of one command without copying it
	Evaluate(ctx context.Context, req Request) (*Result, error)
	// Copy computes the value and puts it on the clipboard
	Copy(ctx context.Context, req Request) (*Result, error)
	// List computes every command enabled for the file
	List(ctx context.Context, req Request) ([]Result, error)
}

// 🔧 Overrides replace project settings for a single invocation
type Overrides struct {
	Brackets      *bool    // nil keeps the project setting
	StripPrefixes []string // nil keeps the project setting
}

// 📄 Request names the command and the file it runs against
type Request struct {
	Kind       transform.Kind
	FilePath   string
	Folders    []string // project folders; the project file's are used when none contains the file
	ConfigPath string   // explicit project file; empty means discover one
	Overrides  Overrides
}

// 📋 Result is the outcome of one command
type Result struct {
	Command transform.Command
	Input   transform.Input
	Value   string
	Copied  bool // set by Copy once a clipboard took the value
	Err     error
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Clipboard receives copied values
	Clipboard clipboard.Clipboard
	// Console reports each copy to the user
	Console *log.Logger
	// Print, when set, receives values instead of the clipboard
	Print io.Writer
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Clipboard == nil && opts.Print == nil {
		return nil, errors.Errorf("clipboard is required")
	}
	if opts.Console == nil {
		return nil, errors.Errorf("console is required")
	}
	return &operator{
		clipboard: opts.Clipboard,
		console:   opts.Console,
		print:     opts.Print,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	clipboard clipboard.Clipboard
	console   *log.Logger
	print     io.Writer
}

// environment is what a command needs besides its kind
type environment struct {
	input transform.Input
	opts  transform.Options
	// projectErr is a project file that failed to load; only project commands fail on it
	projectErr error
}

// 🔍 resolve works out the project root and settings for the request's file
func (o *operator) resolve(ctx context.Context, req Request) (*environment, error) {
	logger := zerolog.Ctx(ctx)

	if req.FilePath == "" {
		return nil, transform.ErrNoFile
	}
	file, err := filepath.Abs(req.FilePath)
	if err != nil {
		return nil, errors.Errorf("resolving file path: %w", err)
	}

	proj, projectErr := loadProject(ctx, req.ConfigPath, filepath.Dir(file))

	folders := make([]string, 0, len(req.Folders))
	for _, f := range req.Folders {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, errors.Errorf("resolving folder %q: %w", f, err)
		}
		folders = append(folders, abs)
	}

	var settings config.Settings
	if proj != nil {
		settings = proj.Settings
	}
	if req.Overrides.Brackets != nil {
		settings.UseBrackets = *req.Overrides.Brackets
	}
	if req.Overrides.StripPrefixes != nil {
		settings.StripPrefixes = req.Overrides.StripPrefixes
		if err := settings.Validate(); err != nil {
			return nil, errors.Errorf("validating overrides: %w", err)
		}
	}

	// folders given with the request take precedence over the project file's
	root := project.Resolve(file, folders)
	if root == "" && proj != nil {
		folders = append(folders, proj.Roots()...)
		root = project.Resolve(file, proj.Roots())
	}
	opts := settings.Options()
	if root != "" {
		opts.Headers = project.NewHeaderLocator(root)
	} else if len(folders) > 0 {
		// the file is outside every folder; keep one so commands report ErrNotInProject
		root = folders[0]
	}

	logger.Debug().
		Str("file", file).
		Str("root", root).
		Stringer("settings", settings).
		Msg("resolved project")

	return &environment{
		input:      transform.Input{FilePath: file, ProjectRoot: root},
		opts:       opts,
		projectErr: projectErr,
	}, nil
}

// loadProject loads the explicit project file, or the nearest one above dir.
// A missing project file is not an error.
func loadProject(ctx context.Context, explicit, dir string) (*config.Project, error) {
	path := explicit
	if path == "" {
		found, err := config.Discover(ctx, dir)
		if errors.Is(err, config.ErrProjectFileNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, errors.Errorf("discovering project file: %w", err)
		}
		path = found
	}

	proj, err := config.Load(ctx, path)
	if err != nil {
		return nil, errors.Errorf("loading project file: %w", err)
	}
	return proj, nil
}

func warnProjectIgnored(ctx context.Context, err error) {
	zerolog.Ctx(ctx).Warn().Err(err).Msg("project file ignored; commands that need a project will fail")
}

func run(cmd transform.Command, env *environment) Result {
	res := Result{Command: cmd, Input: env.input}
	if !cmd.Enabled(env.input.FilePath) {
		res.Err = errors.Errorf("%s on %s: %w", cmd.Kind, filepath.Base(env.input.FilePath), ErrUnsupportedLanguage)
		return res
	}
	if cmd.Project && env.projectErr != nil {
		res.Err = env.projectErr
		return res
	}
	res.Value, res.Err = cmd.Transform(env.input, env.opts)
	return res
}

// 🎯 Evaluate computes the value of one command without copying it
func (o *operator) Evaluate(ctx context.Context, req Request) (*Result, error) {
	cmd, ok := transform.Lookup(req.Kind)
	if !ok {
		return nil, errors.Errorf("unknown command %q", req.Kind)
	}

	env, err := o.resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	if env.projectErr != nil && !cmd.Project {
		warnProjectIgnored(ctx, env.projectErr)
	}

	res := run(cmd, env)
	if res.Err != nil {
		return &res, res.Err
	}
	return &res, nil
}

// 📋 Copy computes the value and puts it on the clipboard
func (o *operator) Copy(ctx context.Context, req Request) (*Result, error) {
	res, err := o.Evaluate(ctx, req)
	if err != nil {
		return res, err
	}

	op := log.CopyOperation{
		Kind:   string(res.Command.Kind),
		Status: res.Command.Status,
		File:   res.Input.FilePath,
		Root:   res.Input.ProjectRoot,
		Value:  res.Value,
	}

	if o.print != nil {
		if _, err := fmt.Fprintln(o.print, res.Value); err != nil {
			return res, errors.Errorf("printing value: %w", err)
		}
		op.Printed = true
	} else if err := o.clipboard.Copy(ctx, res.Value); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("clipboard copy failed")
		o.console.Warningf("could not reach a clipboard: %v", err)
	} else {
		op.Copied = true
		res.Copied = true
	}

	o.console.LogCopy(ctx, op)
	return res, nil
}

// 📚 List computes every command enabled for the file, in palette order.
// Failures are stored on each result rather than returned.
func (o *operator) List(ctx context.Context, req Request) ([]Result, error) {
	env, err := o.resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	if env.projectErr != nil {
		warnProjectIgnored(ctx, env.projectErr)
	}

	var enabled []transform.Command
	for _, cmd := range transform.Commands() {
		if cmd.Enabled(env.input.FilePath) {
			enabled = append(enabled, cmd)
		}
	}

	results := make([]Result, len(enabled))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, cmd := range enabled {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = run(cmd, env)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Errorf("listing commands: %w", err)
	}
	return results, nil
}
