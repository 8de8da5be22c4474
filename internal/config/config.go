/*
PURPOSE:
  Defines the launcher's own settings and their loading logic.
  These settings shape logging only; they are never handed to the application.

REQUIREMENTS:
  User-specified:
  - Keep the command line to --verbose, --input and --output.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Needs to support environment variable overrides (NEURALFORGE_...).

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli
  - Dependencies: gopkg.in/yaml.v3, github.com/spf13/viper

ERROR HANDLING:
  - Returns explicit error if an explicitly named config file is unreadable or invalid.
  - A missing default file is not an error; defaults apply.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible (info level, console output).

USAGE:
  cfg, err := config.Resolve(viper.New())

RELATED FILES:
  - internal/output/logger.go

MAINTENANCE:
  - Update when adding new ambient settings.
*/

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/daryltucker/neuralforge/internal/output"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "neuralforge"

const (
	keyConfig    = "config"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
)

// DefaultFiles are searched in order when no config path is given.
var DefaultFiles = []string{"neuralforge.yaml", ".neuralforge.yaml"}

// Config represents the launcher's ambient settings.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: output.FormatConsole,
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s: %w", name, err)
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve loads the file named by NEURALFORGE_CONFIG (or a default file),
// then applies NEURALFORGE_LOG_LEVEL and NEURALFORGE_LOG_FORMAT on top.
func Resolve(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg, err := Load(v.GetString(keyConfig))
	if err != nil {
		return nil, err
	}

	if v.IsSet(keyLogLevel) {
		cfg.LogLevel = v.GetString(keyLogLevel)
	}
	if v.IsSet(keyLogFormat) {
		cfg.LogFormat = v.GetString(keyLogFormat)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects levels zap does not know and unsupported encodings.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	switch c.LogFormat {
	case output.FormatConsole, output.FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: must be %q or %q", c.LogFormat, output.FormatConsole, output.FormatJSON)
	}
	return nil
}
