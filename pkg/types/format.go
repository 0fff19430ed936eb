package types

import (
	"fmt"
	"strings"
)

// Format identifies how a context document is decoded.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
	FormatKV
	FormatEnv
	FormatTOML
)

// String returns the flag spelling of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatKV:
		return "kv"
	case FormatEnv:
		return "env"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatNames lists the values accepted by ParseFormat.
var FormatNames = []string{"json", "yaml", "yml", "kv", "toml"}

// ParseFormat parses a --format value, case-insensitively.
// The environment mode is selected with --env, never by name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "kv":
		return FormatKV, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatUnknown, fmt.Errorf("unknown context format %q (want one of %s)", s, strings.Join(FormatNames, ", "))
	}
}

// FormatForExtension infers a format from a file extension such as ".yml".
// KV input has no conventional extension and is never inferred.
func FormatForExtension(ext string) Format {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	case "toml":
		return FormatTOML
	default:
		return FormatUnknown
	}
}
