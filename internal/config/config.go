// Package config loads command line tool settings from flags, environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/itz-Amethyst/excel-term/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "EXCELTERM"

	// EnvFilePathEnv is the environment variable for the .env file path.
	EnvFilePathEnv = "EXCELTERM_ENV_PATH"

	// DefaultEnvFilePath is the default path to the .env file.
	DefaultEnvFilePath = ".env"

	// DefaultFile is the workbook path used when none is configured.
	DefaultFile = "datas/products.xlsx"
)

// Setting keys. Environment variables are the upper-cased key with dots
// replaced by underscores, e.g. EXCELTERM_LOG_LEVEL.
const (
	KeyFile      = "file"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyLogOutput = "log.output"
)

// flagKeys maps command line flag names to setting keys.
var flagKeys = map[string]string{
	"file":       KeyFile,
	"log-level":  KeyLogLevel,
	"log-format": KeyLogFormat,
	"log-output": KeyLogOutput,
}

// ErrMissingConfig is returned when a required setting is empty.
var ErrMissingConfig = errors.New("missing config data")

// Config represents the tool configuration.
type Config struct {
	// File is the inventory workbook path.
	File string
	Log  logger.Config
}

// Load resolves settings with precedence flag > environment > .env file > default.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	if err := applyEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	def := logger.DefaultConfig()
	v.SetDefault(KeyFile, DefaultFile)
	v.SetDefault(KeyLogLevel, def.Level)
	v.SetDefault(KeyLogFormat, def.Format)
	v.SetDefault(KeyLogOutput, def.Output)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	conf := &Config{
		File: strings.TrimSpace(v.GetString(KeyFile)),
		Log: logger.Config{
			Level:  v.GetString(KeyLogLevel),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
			Output: v.GetString(KeyLogOutput),
		},
	}
	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}

func (c *Config) validate() error {
	if c.File == "" {
		return fmt.Errorf("%w for key: %s", ErrMissingConfig, KeyFile)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid %s %q: must be console or json", KeyLogFormat, c.Log.Format)
	}
	return nil
}

// applyEnvFile loads the .env file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func applyEnvFile() error {
	path := os.Getenv(EnvFilePathEnv)
	if path == "" {
		path = DefaultEnvFilePath
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}
