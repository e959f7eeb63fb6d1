// Package config provides configuration management for the pkgstore
// filtering core. It handles loading and validating application settings
// from YAML configuration files and provides sensible defaults when no
// configuration is present.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hatlabs/pkgstore/pkg/errors"
	"github.com/hatlabs/pkgstore/pkg/fsutil"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// StoreDir is the directory scanned for store definition files.
	StoreDir string `yaml:"store_dir,omitempty"`

	// CatalogPath is the package catalog snapshot read at startup. A
	// compressed snapshot (for example catalog.json.gz) is accepted.
	CatalogPath string `yaml:"catalog_path,omitempty"`

	// Filtering settings
	ResultLimit      int `yaml:"result_limit"`
	MinQueryLength   int `yaml:"min_query_length"`
	MaxSearchResults int `yaml:"max_search_results"`

	// Output settings
	OutputFormat string `yaml:"output_format"` // json, table
	LogLevel     string `yaml:"log_level"`     // error, warn, info, debug
}

// Default configuration values.
const (
	// DefaultResultLimit bounds filter results when no limit is requested.
	DefaultResultLimit = 1000

	// DefaultMinQueryLength is the shortest search query acted upon.
	DefaultMinQueryLength = 2

	// DefaultMaxSearchResults caps standalone search results.
	DefaultMaxSearchResults = 100

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2

	// OutputFormatJSON and OutputFormatTable are the supported output
	// formats for command results.
	OutputFormatJSON  = "json"
	OutputFormatTable = "table"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			StoreDir:         "/usr/share/pkgstore/stores",
			CatalogPath:      "/var/lib/pkgstore/catalog.json",
			ResultLimit:      DefaultResultLimit,
			MinQueryLength:   DefaultMinQueryLength,
			MaxSearchResults: DefaultMaxSearchResults,
			OutputFormat:     OutputFormatJSON,
			LogLevel:         "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// default configuration rather than an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return &config, nil
}

// SaveConfig saves configuration to a file.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := fsutil.EnsureFileDir(absPath); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	err = fsutil.WriteFileAtomic(absPath, func(file *os.File) error {
		encoder := yaml.NewEncoder(file)
		encoder.SetIndent(YAMLIndent)
		if err := encoder.Encode(c); err != nil {
			return errors.Wrap(err, "failed to encode config")
		}
		return encoder.Close()
	})
	if err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if c.Settings.ResultLimit < 0 {
		return errors.Wrap(errors.ErrConfigValidation, "result_limit must not be negative")
	}
	if c.Settings.MinQueryLength < 0 {
		return errors.Wrap(errors.ErrConfigValidation, "min_query_length must not be negative")
	}
	if c.Settings.MaxSearchResults < 0 {
		return errors.Wrap(errors.ErrConfigValidation, "max_search_results must not be negative")
	}
	switch strings.ToLower(c.Settings.OutputFormat) {
	case "", OutputFormatJSON, OutputFormatTable:
	default:
		return errors.Wrapf(errors.ErrConfigValidation, "unsupported output format: %s", c.Settings.OutputFormat)
	}
	return nil
}

// applyDefaults fills in zero values with defaults so partial config files
// remain valid.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Settings.StoreDir == "" {
		c.Settings.StoreDir = defaults.Settings.StoreDir
	}
	if c.Settings.CatalogPath == "" {
		c.Settings.CatalogPath = defaults.Settings.CatalogPath
	}
	if c.Settings.ResultLimit == 0 {
		c.Settings.ResultLimit = defaults.Settings.ResultLimit
	}
	if c.Settings.MinQueryLength == 0 {
		c.Settings.MinQueryLength = defaults.Settings.MinQueryLength
	}
	if c.Settings.MaxSearchResults == 0 {
		c.Settings.MaxSearchResults = defaults.Settings.MaxSearchResults
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}

// GetDefaultConfigPath returns the default path of the user config file.
func GetDefaultConfigPath() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine user config directory")
	}
	return filepath.Join(userConfigDir, "pkgstore", "config.yaml"), nil
}
