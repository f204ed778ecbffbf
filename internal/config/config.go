// Package config handles configuration loading and validation for iconrename.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	FileNotFound      ConfigErrorType = "FILE_NOT_FOUND"
	InvalidFormat     ConfigErrorType = "INVALID_FORMAT"
	UnsupportedFormat ConfigErrorType = "UNSUPPORTED_FORMAT"
	ValidationError   ConfigErrorType = "VALIDATION_ERROR"
	DirectoryNotFound ConfigErrorType = "DIRECTORY_NOT_FOUND"
)

// ConfigError represents an error that occurred during configuration loading.
type ConfigError struct {
	Type    ConfigErrorType
	Path    string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("configuration file not found: %s", e.Path)
	case InvalidFormat:
		return fmt.Sprintf("invalid configuration file %s: %s", e.Path, e.Message)
	case UnsupportedFormat:
		return fmt.Sprintf("unsupported configuration format: %s", e.Path)
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	case DirectoryNotFound:
		return fmt.Sprintf("directory '%s' not found", e.Path)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Symlink policy constants
const (
	SymlinkPolicyFollow = "follow"
	SymlinkPolicySkip   = "skip"
)

// Defaults for the icon naming convention and watch mode.
const (
	DefaultSuffix    = "-light"
	DefaultExtension = ".svg"

	DefaultStableThresholdMs = 1000
)

// DefaultPreservedPatterns returns the substrings that exempt a file from renaming.
func DefaultPreservedPatterns() []string {
	return []string{"-light.svg", "-fill.svg"}
}

// WatchConfig contains watch mode settings.
type WatchConfig struct {
	Enabled           bool     `json:"enabled" toml:"enabled" yaml:"enabled"`
	DebounceMs        int      `json:"debounceMs,omitempty" toml:"debounceMs,omitempty" yaml:"debounceMs,omitempty"`
	StableThresholdMs *int     `json:"stableThresholdMs,omitempty" toml:"stableThresholdMs,omitempty" yaml:"stableThresholdMs,omitempty"`
	IgnorePatterns    []string `json:"ignorePatterns,omitempty" toml:"ignorePatterns,omitempty" yaml:"ignorePatterns,omitempty"`
}

// Configuration holds all settings for iconrename.
type Configuration struct {
	Directory         string       `json:"directory,omitempty" toml:"directory,omitempty" yaml:"directory,omitempty"`
	Suffix            string       `json:"suffix,omitempty" toml:"suffix,omitempty" yaml:"suffix,omitempty"`
	Extension         string       `json:"extension,omitempty" toml:"extension,omitempty" yaml:"extension,omitempty"`
	PreservedPatterns []string     `json:"preservedPatterns,omitempty" toml:"preservedPatterns,omitempty" yaml:"preservedPatterns,omitempty"`
	SymlinkPolicy     string       `json:"symlinkPolicy,omitempty" toml:"symlinkPolicy,omitempty" yaml:"symlinkPolicy,omitempty"`
	Verbose           bool         `json:"verbose,omitempty" toml:"verbose,omitempty" yaml:"verbose,omitempty"`
	Watch             *WatchConfig `json:"watch,omitempty" toml:"watch,omitempty" yaml:"watch,omitempty"`
}

// DefaultConfiguration returns a configuration with the standard icon naming convention.
func DefaultConfiguration() *Configuration {
	cfg := &Configuration{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero-valued fields with their defaults.
func (c *Configuration) ApplyDefaults() {
	if c.Suffix == "" {
		c.Suffix = DefaultSuffix
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if len(c.PreservedPatterns) == 0 {
		c.PreservedPatterns = DefaultPreservedPatterns()
	}
	if c.SymlinkPolicy == "" {
		c.SymlinkPolicy = SymlinkPolicyFollow
	}
	if c.Watch == nil {
		c.Watch = &WatchConfig{}
	}
	if c.Watch.DebounceMs == 0 {
		c.Watch.DebounceMs = 500
	}
	// Zero is a valid threshold; only an unset one is defaulted.
	if c.Watch.StableThresholdMs == nil {
		threshold := DefaultStableThresholdMs
		c.Watch.StableThresholdMs = &threshold
	}
}

// TargetSuffix returns the full suffix appended to renamed files, e.g. "-light.svg".
func (c *Configuration) TargetSuffix() string {
	return c.Suffix + c.Extension
}

// Validate checks that the naming convention is usable.
func (c *Configuration) Validate() error {
	if c.Extension == "" {
		return &ConfigError{
			Type:    ValidationError,
			Message: "extension cannot be empty",
		}
	}
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("extension must start with a dot: %q", c.Extension),
		}
	}
	if c.Suffix == "" {
		return &ConfigError{
			Type:    ValidationError,
			Message: "suffix cannot be empty",
		}
	}
	if strings.ContainsAny(c.Suffix, `/\`) {
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("suffix cannot contain a path separator: %q", c.Suffix),
		}
	}
	for i, pattern := range c.PreservedPatterns {
		if pattern == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("preservedPatterns[%d] cannot be empty", i),
			}
		}
	}
	switch c.SymlinkPolicy {
	case "", SymlinkPolicyFollow, SymlinkPolicySkip:
	default:
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("invalid symlink policy: %q. Must be %q or %q", c.SymlinkPolicy, SymlinkPolicyFollow, SymlinkPolicySkip),
		}
	}
	if c.Watch != nil {
		if c.Watch.DebounceMs < 0 {
			return &ConfigError{
				Type:    ValidationError,
				Message: "watch.debounceMs must be a non-negative integer",
			}
		}
		if c.Watch.StableThresholdMs != nil && *c.Watch.StableThresholdMs < 0 {
			return &ConfigError{
				Type:    ValidationError,
				Message: "watch.stableThresholdMs must be a non-negative integer",
			}
		}
	}
	return nil
}

// Load reads and parses a configuration file from the given path.
// The decoder is selected by extension: .json, .toml, .yaml or .yml.
func Load(filePath string) (*Configuration, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{
				Type: FileNotFound,
				Path: filePath,
				Err:  err,
			}
		}
		return nil, &ConfigError{
			Type:    FileNotFound,
			Path:    filePath,
			Message: err.Error(),
			Err:     err,
		}
	}

	var config Configuration
	if err := decode(filePath, data, &config); err != nil {
		return nil, err
	}

	config.ApplyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// decode unmarshals data into config using the format implied by filePath.
func decode(filePath string, data []byte, config *Configuration) error {
	var err error
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		err = json.Unmarshal(data, config)
	case ".toml":
		err = toml.Unmarshal(data, config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		return &ConfigError{
			Type: UnsupportedFormat,
			Path: filePath,
		}
	}
	if err != nil {
		return &ConfigError{
			Type:    InvalidFormat,
			Path:    filePath,
			Message: err.Error(),
			Err:     err,
		}
	}
	return nil
}
