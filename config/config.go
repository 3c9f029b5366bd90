// Package config loads the est settings.
//
// Values are layered: defaults, then the YAML file, then ESTATE_* environment
// variables. Command line flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MemoryDataDir selects an in-memory store instead of a directory.
const MemoryDataDir = ":memory:"

// Config represents the application configuration
type Config struct {
	DataDir   string          `yaml:"data_dir"`
	Currency  string          `yaml:"currency"`
	Verbose   bool            `yaml:"verbose"`
	Server    ServerConfig    `yaml:"server"`
	Assistant AssistantConfig `yaml:"assistant"`
}

// ServerConfig contains the JSON API settings
type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// AssistantConfig contains the Gemini assistant settings
type AssistantConfig struct {
	Model string `yaml:"model"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir:  ".estate",
		Currency: "USD",
		Server: ServerConfig{
			Addr:         ":8080",
			AllowOrigins: []string{"*"},
		},
		Assistant: AssistantConfig{
			Model: "gemini-2.5-flash",
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return config, nil
}

// ApplyEnv overrides c with the ESTATE_* variables found by lookup
// (usually os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("ESTATE_DATA_DIR"); ok && v != "" {
		c.DataDir = v
	}
	if v, ok := lookup("ESTATE_CURRENCY"); ok && v != "" {
		c.Currency = strings.ToUpper(v)
	}
	if v, ok := lookup("ESTATE_ADDR"); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup("ESTATE_ALLOW_ORIGINS"); ok && v != "" {
		c.Server.AllowOrigins = strings.Split(v, ",")
	}
	if v, ok := lookup("ESTATE_MODEL"); ok && v != "" {
		c.Assistant.Model = v
	}
	if v, ok := lookup("ESTATE_VERBOSE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid ESTATE_VERBOSE: %w", err)
		}
		c.Verbose = b
	}
	return nil
}

// Load reads the file at path, then applies the process environment.
func Load(path string) (*Config, error) {
	c, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := c.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return c, nil
}
