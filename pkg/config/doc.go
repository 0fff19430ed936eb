// Package config resolves temple's option fallbacks.
//
// Values are layered with koanf, later layers winning:
//
//  1. built-in defaults
//  2. the TOML config file (--config, TEMPLE_CONFIG, or temple/config.toml
//     in the XDG config directories)
//  3. TEMPLE_* environment variables
//
// Command-line flags sit above all of these and are applied by the caller.
// The context source and format are never read from the config file.
package config
