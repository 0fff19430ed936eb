package loader

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/arthur-debert/temple/pkg/errors"
	"github.com/arthur-debert/temple/pkg/filesystem"
	"github.com/arthur-debert/temple/pkg/logging"
	"github.com/arthur-debert/temple/pkg/style"
	"github.com/arthur-debert/temple/pkg/types"
)

// StdinName stands in for a path in diagnostics about standard input.
const StdinName = "<stdin>"

// MsgUnknownFormat is reported when no format could be resolved.
const MsgUnknownFormat = "unknown or ambiguous context input format. Try adding -F/--format=<format>"

// MsgTerminalStdin warns that the context is about to be typed in.
const MsgTerminalStdin = "reading context from the terminal, end input with Ctrl-D"

var stdinIsTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Options selects the context source.
type Options struct {
	Fs afero.Fs
	// Stdin is read to end when the context comes from standard input.
	Stdin io.Reader
	// Environ snapshots the process environment. Defaults to os.Environ.
	Environ func() []string
	// Warnings receives user-facing notices. Defaults to os.Stderr.
	Warnings io.Writer

	ContextPath string
	Format      types.Format
	UseEnv      bool
}

// OptionsFor copies the context selection out of inv.
func OptionsFor(inv types.Invocation) Options {
	return Options{
		ContextPath: inv.ContextPath,
		Format:      inv.Format,
		UseEnv:      inv.UseEnv,
	}
}

// ResolveFormat decides the context format without reading anything.
func ResolveFormat(opts Options) (types.Format, error) {
	switch {
	case opts.UseEnv:
		return types.FormatEnv, nil
	case opts.Format != types.FormatUnknown:
		return opts.Format, nil
	case !types.IsStdio(opts.ContextPath):
		if f := types.FormatForExtension(filepath.Ext(opts.ContextPath)); f != types.FormatUnknown {
			return f, nil
		}
	}
	return types.FormatUnknown, errors.New(errors.ErrUsage, MsgUnknownFormat)
}

// Load resolves the format, reads the source and decodes it.
func Load(opts Options) (types.Format, types.Value, error) {
	logger := logging.GetLogger("loader")

	format, err := ResolveFormat(opts)
	if err != nil {
		return types.FormatUnknown, types.Null(), err
	}

	if format == types.FormatEnv {
		environ := opts.Environ
		if environ == nil {
			environ = os.Environ
		}
		value := DecodeEnviron(environ())
		logger.Debug().Int("keys", value.Len()).Msg("loaded context from environment")
		return format, value, nil
	}

	data, source, err := read(opts)
	if err != nil {
		return format, types.Null(), err
	}

	value, err := Decode(format, data)
	if err != nil {
		return format, types.Null(), errors.Wrap(err, errors.ErrData, source).
			WithDetail("source", source)
	}

	logger.Debug().
		Str("source", source).
		Str("format", format.String()).
		Str("kind", value.Kind().String()).
		Msg("loaded context")
	return format, value, nil
}

func read(opts Options) ([]byte, string, error) {
	if types.IsStdio(opts.ContextPath) {
		stdin := opts.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		if stdinIsTerminal(stdin) {
			warnings := opts.Warnings
			if warnings == nil {
				warnings = os.Stderr
			}
			style.NewPrinter(warnings).Warning(MsgTerminalStdin)
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, StdinName, errors.Wrap(err, errors.ErrIO, StdinName)
		}
		return data, StdinName, nil
	}

	fsys := opts.Fs
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	data, err := filesystem.ReadFile(fsys, opts.ContextPath)
	if err != nil {
		return nil, opts.ContextPath, errors.Wrap(err, errors.ErrIO, "").
			WithDetail("path", opts.ContextPath)
	}
	return data, opts.ContextPath, nil
}
