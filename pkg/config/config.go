package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/temple/pkg/errors"
	"github.com/arthur-debert/temple/pkg/logging"
	"github.com/arthur-debert/temple/pkg/templates"
)

// EnvPrefix is shared by every environment fallback.
const EnvPrefix = "TEMPLE_"

// Keys, as spelled in the config file and, upper-cased, after EnvPrefix.
const (
	KeyTemplates     = "templates"
	KeyExtensions    = "extensions"
	KeyContext       = "context"
	KeyContextFormat = "context_format"
	KeyNoAutoEscape  = "no_auto_escape"
	KeyLogFile       = "log_file"
	KeyConfig        = "config"
)

// envKeys are the variables read from the environment.
var envKeys = map[string]bool{
	KeyTemplates:     true,
	KeyExtensions:    true,
	KeyContext:       true,
	KeyContextFormat: true,
	KeyLogFile:       true,
	KeyConfig:        true,
}

// envOnlyKeys are ignored when they appear in the config file.
var envOnlyKeys = []string{KeyContext, KeyContextFormat, KeyConfig}

// ConfigFileName is searched for in the XDG config directories.
var ConfigFileName = filepath.Join("temple", "config.toml")

// Config holds option values below the command line.
type Config struct {
	Templates     string   `koanf:"templates"`
	Extensions    []string `koanf:"extensions"`
	Context       string   `koanf:"context"`
	ContextFormat string   `koanf:"context_format"`
	NoAutoEscape  bool     `koanf:"no_auto_escape"`
	LogFile       string   `koanf:"log_file"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyExtensions: append([]string(nil), templates.DefaultExtensions...),
	}
}

// Load builds the configuration. explicitPath comes from --config and
// takes precedence over TEMPLE_CONFIG. An explicit file that cannot be
// read is an I/O error; a file that does not parse is a usage error.
func Load(explicitPath string) (*Config, error) {
	logger := logging.GetLogger("config")

	envK := koanf.New(".")
	if err := envK.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "reading environment")
	}

	path, explicit := explicitPath, explicitPath != ""
	if !explicit {
		path = envK.String(KeyConfig)
		explicit = path != ""
	}
	if !explicit {
		if found, err := xdg.SearchConfigFile(ConfigFileName); err == nil {
			path = found
		}
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "loading defaults")
	}

	if path != "" {
		fileK, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Merge(fileK); err != nil {
			return nil, errors.Wrapf(err, errors.ErrUsage, "%s", path)
		}
		logger.Debug().Str("path", path).Bool("explicit", explicit).Msg("loaded config file")
	}

	if err := k.Merge(envK); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "merging environment")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		where := path
		if where == "" {
			where = "environment"
		}
		return nil, errors.Wrapf(err, errors.ErrUsage, "%s: invalid configuration", where)
	}
	cfg.File = path

	logger.Trace().Interface("config", cfg).Msg("configuration resolved")
	return &cfg, nil
}

func loadFile(path string) (*koanf.Koanf, error) {
	if _, err := os.Stat(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrIO, "%s: config file not found", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrIO, "").WithDetail("path", path)
	}

	fileK := koanf.New(".")
	if err := fileK.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrUsage, "%s: invalid config file", path).
			WithDetail("path", path)
	}
	logger := logging.GetLogger("config")
	for _, key := range envOnlyKeys {
		if fileK.Exists(key) {
			logger.Debug().Str("key", key).Str("path", path).
				Msg("ignoring key that is only read from the environment")
			fileK.Delete(key)
		}
	}
	return fileK, nil
}

// envKey maps TEMPLE_CONTEXT_FORMAT to context_format. Unknown variables
// are dropped.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	if !envKeys[key] {
		return ""
	}
	return key
}
