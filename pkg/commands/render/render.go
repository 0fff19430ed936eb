package render

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/temple/pkg/errors"
	"github.com/arthur-debert/temple/pkg/filesystem"
	"github.com/arthur-debert/temple/pkg/loader"
	"github.com/arthur-debert/temple/pkg/logging"
	"github.com/arthur-debert/temple/pkg/output"
	driver "github.com/arthur-debert/temple/pkg/render"
	"github.com/arthur-debert/temple/pkg/templates"
	"github.com/arthur-debert/temple/pkg/types"
)

// RenderOptions holds everything one invocation needs. Zero-valued
// streams and filesystem fall back to the process defaults.
type RenderOptions struct {
	Invocation types.Invocation

	Fs      afero.Fs
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Environ func() []string
	// Engine defaults to a fresh pongo2 engine.
	Engine driver.Engine
}

// Render runs the pipeline: resolve the context format, collect the
// templates, load the context, render the entry and write the result.
// The first failing stage ends the run; nothing is written on failure.
func Render(opts RenderOptions) (*types.RenderResult, error) {
	logger := logging.GetLogger("commands.render")
	start := time.Now()
	defer logging.LogDuration(start, "render")

	opts = withDefaults(opts)
	inv := opts.Invocation

	if inv.EntryPath == "" {
		return nil, errors.New(errors.ErrUsage, "missing template argument")
	}

	loadOpts := loader.OptionsFor(inv)
	loadOpts.Fs = opts.Fs
	loadOpts.Stdin = opts.Stdin
	loadOpts.Environ = opts.Environ
	loadOpts.Warnings = opts.Stderr

	// Usage problems are reported before any input is touched.
	if _, err := loader.ResolveFormat(loadOpts); err != nil {
		return nil, err
	}

	set, entryName, err := templates.Assemble(opts.Fs, inv.TemplatesRoot, inv.Extensions, inv.EntryPath)
	if err != nil {
		return nil, err
	}

	format, value, err := loader.Load(loadOpts)
	if err != nil {
		return nil, err
	}

	rendered, err := driver.Render(opts.Engine, driver.Request{
		Templates: set.Templates(),
		Entry:     entryName,
		Context:   value,
		Policy:    driver.PolicyFor(inv.NoAutoEscape),
	})
	if err != nil {
		return nil, err
	}

	if err := output.Write(opts.Stdout, inv.OutputPath, inv.Overwrite, []byte(rendered)); err != nil {
		return nil, err
	}

	result := &types.RenderResult{
		Entry:     inv.EntryPath,
		Format:    format,
		Templates: set.Len(),
		Output:    outputName(inv),
		Bytes:     len(rendered),
		Duration:  time.Since(start),
	}
	logRender(logger, result)
	return result, nil
}

func withDefaults(opts RenderOptions) RenderOptions {
	if opts.Fs == nil {
		opts.Fs = filesystem.NewOS()
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Environ == nil {
		opts.Environ = os.Environ
	}
	if opts.Engine == nil {
		opts.Engine = driver.NewPongoEngine()
	}
	return opts
}

func outputName(inv types.Invocation) string {
	if inv.WritesStdout() {
		return types.StdioPath
	}
	return inv.OutputPath
}

func logRender(logger zerolog.Logger, result *types.RenderResult) {
	logger.Info().
		Str("entry", result.Entry).
		Str("format", result.Format.String()).
		Int("templates", result.Templates).
		Str("output", result.Output).
		Int("bytes", result.Bytes).
		Msg("render complete")
}
