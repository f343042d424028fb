// =============================================================================
// Theatre Statements - Configuration Module
// =============================================================================
//
// This module loads the application configuration. Values are resolved in
// this order, highest priority first:
//   1. Command-line flags bound by the cmd package
//   2. Environment variables (STATEMENTS_OUTPUT_DIR, STATEMENTS_LOG_LEVEL, ...)
//   3. The configuration file (statements.yaml by default)
//   4. Built-in defaults
//
// A missing configuration file is not an error; defaults apply.
//
// EXAMPLE statements.yaml:
//
//   output:
//     dir: Extratos
//   log:
//     level: info
//   pricing:
//     min_lines: 1000
//     max_lines: 4000
//   input:
//     sheet: ""
//     csv_delimiter: ","
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "STATEMENTS"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
	Pricing PricingConfig `mapstructure:"pricing"`
	Input   InputConfig   `mapstructure:"input"`
}

// OutputConfig controls where persisted statements go.
type OutputConfig struct {
	// Dir is the directory persisted statements are written to.
	// Default: "Extratos"
	Dir string `mapstructure:"dir" validate:"required"`
}

// LogConfig controls logging.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	// Default: "info"
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// PricingConfig holds the line-count clamp used for base prices.
type PricingConfig struct {
	// MinLines is the shortest script length billed.
	// Default: 1000
	MinLines int `mapstructure:"min_lines" validate:"gte=0"`

	// MaxLines is the longest script length billed.
	// Default: 4000
	MaxLines int `mapstructure:"max_lines" validate:"gtefield=MinLines"`
}

// InputConfig controls how tabular input files are read.
type InputConfig struct {
	// Sheet is the XLSX sheet to read. Empty means the first sheet.
	Sheet string `mapstructure:"sheet"`

	// CSVDelimiter is the field separator of CSV inputs.
	// Default: ","
	CSVDelimiter string `mapstructure:"csv_delimiter" validate:"required"`
}

// =============================================================================
// LOADING
// =============================================================================

// New returns a viper instance with defaults and environment overrides set.
// The cmd package binds its flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads configPath (if it exists) into v and returns the validated
// configuration.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Load(New(), "")
	if err != nil {
		panic(fmt.Sprintf("default configuration is invalid: %v", err))
	}
	return cfg
}

// Validate checks the configuration's field rules.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.dir", "Extratos")
	v.SetDefault("log.level", "info")
	v.SetDefault("pricing.min_lines", 1000)
	v.SetDefault("pricing.max_lines", 4000)
	v.SetDefault("input.sheet", "")
	v.SetDefault("input.csv_delimiter", ",")
}

// isNotFound reports whether err means the config file does not exist.
// SetConfigFile reports a plain fs error; search paths report
// ConfigFileNotFoundError.
func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
