package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/temple/internal/version"
	"github.com/arthur-debert/temple/pkg/commands"
	"github.com/arthur-debert/temple/pkg/config"
	"github.com/arthur-debert/temple/pkg/errors"
	"github.com/arthur-debert/temple/pkg/logging"
	"github.com/arthur-debert/temple/pkg/style"
	"github.com/arthur-debert/temple/pkg/templates"
	"github.com/arthur-debert/temple/pkg/types"
)

// Flag names
const (
	flagTemplates    = "templates"
	flagExtensions   = "extensions"
	flagContext      = "context"
	flagFormat       = "format"
	flagEnv          = "env"
	flagNoAutoEscape = "no-auto-escape"
	flagOutput       = "output"
	flagForce        = "force"
	flagVerbose      = "verbose"
	flagConfig       = "config"
	flagLogFile      = "log-file"
)

// Streams are the process streams a run reads from and writes to.
type Streams struct {
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Environ func() []string
}

// StdStreams returns the real process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr, Environ: os.Environ}
}

type flagValues struct {
	templates    string
	extensions   string
	context      string
	format       string
	useEnv       bool
	noAutoEscape bool
	output       string
	force        bool
	verbosity    int
	configPath   string
	logFile      string
}

// app holds the state of one command-line run.
type app struct {
	streams  Streams
	flags    flagValues
	ran      bool
	closeLog func()
}

// NewRootCmd creates the temple command bound to streams.
func NewRootCmd(streams Streams) *cobra.Command {
	return newApp(streams).rootCmd()
}

func newApp(streams Streams) *app {
	if streams.Environ == nil {
		streams.Environ = os.Environ
	}
	return &app{streams: streams, closeLog: func() {}}
}

func (a *app) rootCmd() *cobra.Command {
	f := &a.flags

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.String(),
		Args:    entryArg,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.closeLog = logging.SetupLogger(logging.Options{
				Verbosity: f.verbosity,
				Out:       a.streams.Err,
			})
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a.ran = true
			return a.run(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrUsage, "")
	})
	rootCmd.SetIn(a.streams.In)
	rootCmd.SetOut(a.streams.Out)
	rootCmd.SetErr(a.streams.Err)

	flags := rootCmd.Flags()
	flags.SortFlags = false
	flags.StringVar(&f.templates, flagTemplates, "", MsgFlagTemplates)
	flags.StringVar(&f.extensions, flagExtensions, "", MsgFlagExtensions)
	flags.StringVarP(&f.context, flagContext, "c", "", MsgFlagContext)
	flags.StringVarP(&f.format, flagFormat, "F", "", MsgFlagFormat)
	flags.BoolVar(&f.useEnv, flagEnv, false, MsgFlagEnv)
	flags.BoolVar(&f.noAutoEscape, flagNoAutoEscape, false, MsgFlagNoAutoEscape)
	flags.StringVarP(&f.output, flagOutput, "o", "", MsgFlagOutput)
	flags.BoolVarP(&f.force, flagForce, "f", false, MsgFlagForce)
	flags.StringVar(&f.configPath, flagConfig, "", MsgFlagConfig)
	flags.StringVar(&f.logFile, flagLogFile, "", MsgFlagLogFile)
	rootCmd.PersistentFlags().CountVarP(&f.verbosity, flagVerbose, "v", MsgFlagVerbose)

	rootCmd.MarkFlagsMutuallyExclusive(flagEnv, flagContext)
	rootCmd.MarkFlagsMutuallyExclusive(flagEnv, flagFormat)
	_ = rootCmd.MarkFlagFilename(flagTemplates)
	_ = rootCmd.MarkFlagFilename(flagContext, "json", "yaml", "yml", "toml")
	_ = rootCmd.MarkFlagFilename(flagConfig, "toml")

	return rootCmd
}

// run resolves the invocation below the flags and renders.
func (a *app) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}

	if logFile := pick(cmd.Flags(), flagLogFile, a.flags.logFile, cfg.LogFile); logFile != "" {
		a.closeLog()
		a.closeLog = logging.SetupLogger(logging.Options{
			Verbosity: a.flags.verbosity,
			Out:       a.streams.Err,
			File:      logFile,
		})
	}

	inv, err := resolveInvocation(cmd.Flags(), a.flags, cfg, args)
	if err != nil {
		return err
	}

	_, err = commands.Render(commands.RenderOptions{
		Invocation: inv,
		Stdin:      a.streams.In,
		Stdout:     a.streams.Out,
		Stderr:     a.streams.Err,
		Environ:    a.streams.Environ,
	})
	return err
}

// resolveInvocation applies flag -> environment -> config file -> default
// for every option.
func resolveInvocation(fs *pflag.FlagSet, f flagValues, cfg *config.Config, args []string) (types.Invocation, error) {
	inv := types.Invocation{
		EntryPath:     args[0],
		TemplatesRoot: pick(fs, flagTemplates, f.templates, cfg.Templates),
		UseEnv:        f.useEnv,
		NoAutoEscape:  f.noAutoEscape || cfg.NoAutoEscape,
		OutputPath:    f.output,
		Overwrite:     f.force,
	}

	if fs.Changed(flagExtensions) {
		inv.Extensions = templates.ParseExtensions(f.extensions)
	} else {
		inv.Extensions = templates.NormalizeExtensions(cfg.Extensions)
	}

	// Environment mode never consults the context fallbacks.
	if inv.UseEnv {
		return inv, nil
	}

	inv.ContextPath = pick(fs, flagContext, f.context, cfg.Context)
	if name := pick(fs, flagFormat, f.format, cfg.ContextFormat); name != "" {
		format, err := types.ParseFormat(name)
		if err != nil {
			return inv, errors.Wrap(err, errors.ErrUsage, MsgErrInvalidFormat)
		}
		inv.Format = format
	}
	return inv, nil
}

// pick returns the flag value when the flag was given, else fallback.
func pick(fs *pflag.FlagSet, name, flagValue, fallback string) string {
	if fs.Changed(name) {
		return flagValue
	}
	return fallback
}

func entryArg(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return errors.New(errors.ErrUsage, MsgErrMissingTemplate)
	case len(args) > 1:
		return errors.Newf(errors.ErrUsage, MsgErrExtraArgument, args[1])
	}
	return nil
}

// Execute runs temple with args and returns the process exit status.
// Diagnostics go to streams.Err as "temple: message"; usage errors are
// followed by the usage text.
func Execute(args []string, streams Streams) int {
	a := newApp(streams)
	// Argument validation fails before PersistentPreRunE configures logging.
	a.closeLog = logging.SetupLogger(logging.Options{Out: a.streams.Err})
	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	defer a.closeLog()
	if err == nil {
		return errors.ExitOK
	}

	if errors.GetErrorCode(err) == errors.ErrUnknown && !a.ran {
		// cobra's own argument and flag-group validation
		err = errors.Wrap(err, errors.ErrUsage, "")
	}
	log.Debug().Err(err).Interface("details", errors.GetErrorDetails(err)).Msg("Command failed")

	printer := style.NewPrinter(streams.Err)
	printer.Error(errors.Message(err))
	if errors.IsErrorCode(err, errors.ErrUsage) {
		printer.Plain(rootCmd.UsageString())
	}
	return errors.ExitCode(err)
}
