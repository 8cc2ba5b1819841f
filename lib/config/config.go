// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable Load reads the file path from.
const EnvironmentVariable = "ZCORE_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the tool configuration.
type Config struct {
	// Environment selects which override section applies.
	Environment Environment `yaml:"environment"`

	// Log configures the command logger.
	Log LogConfig `yaml:"log"`

	// Keys configures where Curve keys are written and read.
	Keys KeysConfig `yaml:"keys"`

	// Payload configures Z85 payload framing.
	Payload PayloadConfig `yaml:"payload"`

	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Log     *LogConfig     `yaml:"log,omitempty"`
	Keys    *KeysConfig    `yaml:"keys,omitempty"`
	Payload *PayloadConfig `yaml:"payload,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`

	// Format is auto (text on a terminal, JSON otherwise), text, or
	// json.
	// Default: auto
	Format string `yaml:"format"`
}

// KeysConfig configures Curve key storage.
type KeysConfig struct {
	// Keyfile is where curve-keygen writes a generated keypair and
	// where --derive reads one from. Empty means print only.
	Keyfile string `yaml:"keyfile"`

	// SealTo lists age recipients (age1...) the secret key is sealed
	// to before it is written or printed.
	SealTo []string `yaml:"seal_to"`

	// Identity is the age identity file used to open sealed keyfiles.
	Identity string `yaml:"identity"`
}

// PayloadConfig configures Z85 payload framing.
type PayloadConfig struct {
	// Compression is none, lz4, zstd, or auto.
	// Default: auto
	Compression string `yaml:"compression"`
}

// Default returns the configuration used before a file is applied.
func Default() *Config {
	return &Config{
		Environment: Development,
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
		Payload: PayloadConfig{
			Compression: "auto",
		},
	}
}

// Load loads configuration from the file named by ZCORE_CONFIG. It
// fails if the variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your config file, or use --config", EnvironmentVariable)
	}
	return LoadFile(path)
}

// LoadOptional loads path if non-empty, otherwise the file named by
// ZCORE_CONFIG if set, otherwise returns Default. Tools use it so that
// a config file is never required for one-off invocations.
func LoadOptional(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	if os.Getenv(EnvironmentVariable) != "" {
		return Load()
	}
	cfg := Default()
	cfg.expandVariables()
	return cfg, nil
}

// LoadFile loads configuration from path over the defaults, applies the
// matching environment section, and expands variables in paths.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		// JSON is a subset of YAML, so stripped JSONC decodes through
		// the same yaml tags.
		data = jsonc.ToJSON(data)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the section matching Environment.
// Production without its own section gets a warn log level.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides
	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		if overrides == nil {
			overrides = &ConfigOverrides{Log: &LogConfig{Level: "warn"}}
		}
	}
	if overrides == nil {
		return
	}

	if overrides.Log != nil {
		if overrides.Log.Level != "" {
			c.Log.Level = overrides.Log.Level
		}
		if overrides.Log.Format != "" {
			c.Log.Format = overrides.Log.Format
		}
	}
	if overrides.Keys != nil {
		if overrides.Keys.Keyfile != "" {
			c.Keys.Keyfile = overrides.Keys.Keyfile
		}
		if len(overrides.Keys.SealTo) > 0 {
			c.Keys.SealTo = overrides.Keys.SealTo
		}
		if overrides.Keys.Identity != "" {
			c.Keys.Identity = overrides.Keys.Identity
		}
	}
	if overrides.Payload != nil && overrides.Payload.Compression != "" {
		c.Payload.Compression = overrides.Payload.Compression
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} in path fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Keys.Keyfile = expandVars(c.Keys.Keyfile, vars)
	c.Keys.Identity = expandVars(c.Keys.Identity, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default}. vars takes precedence
// over the process environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		name, defaultValue := parts[1], parts[2]
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

var (
	logLevels   = []string{"debug", "info", "warn", "error"}
	logFormats  = []string{"auto", "text", "json"}
	compressors = []string{"none", "lz4", "zstd", "auto"}
)

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", logLevels))
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", logFormats))
	}
	if !slices.Contains(compressors, c.Payload.Compression) {
		errs = append(errs, fmt.Errorf("payload.compression must be one of: %v", compressors))
	}
	for _, recipient := range c.Keys.SealTo {
		if !strings.HasPrefix(recipient, "age1") {
			errs = append(errs, fmt.Errorf("keys.seal_to entry %q is not an age recipient", recipient))
		}
	}

	return errors.Join(errs...)
}

// LogLevel returns Log.Level as a slog.Level. Unknown names map to
// info; Validate reports them.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
