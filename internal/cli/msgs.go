package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootUse   = "temple [flags] TEMPLATE"
	MsgRootShort = "Render Jinja-style templates from JSON, YAML, TOML, KV or environment data"

	// Flag descriptions
	MsgFlagTemplates    = "Directory of templates available to extends and include"
	MsgFlagExtensions   = "Comma-separated template extensions collected from --templates (empty collects all)"
	MsgFlagContext      = "Context file, or - for standard input"
	MsgFlagFormat       = "Context format: json, yaml, yml, kv, toml"
	MsgFlagEnv          = "Use the process environment as the context"
	MsgFlagNoAutoEscape = "Disable HTML auto-escaping for .html, .htm and .xml templates"
	MsgFlagOutput       = "Output file, or - for standard output"
	MsgFlagForce        = "Overwrite the output file if it exists"
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Config file (default $XDG_CONFIG_HOME/temple/config.toml)"
	MsgFlagLogFile      = "Also append JSON logs to this file (auto: $XDG_STATE_HOME/temple/temple.log)"

	// Error messages
	MsgErrMissingTemplate = "missing template argument"
	MsgErrExtraArgument   = "unexpected argument %q: only one template can be rendered"
	MsgErrInvalidFormat   = "invalid context format"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")
)
