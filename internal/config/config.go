// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles the optional linekit configuration file. It only
// covers presentation and logging output; flags are never read from it.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the default configuration file location.
const EnvConfigPath = "LINEKIT_CONFIG"

// Accepted values for the enumerated options.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	PromptPlain = "plain"
	PromptTUI   = "tui"
)

// Prompt controls how interactive input is requested on a terminal.
type Prompt struct {
	// Text is shown before each interactive read
	Text string `yaml:"text,omitempty"`

	// Style is "plain" (write Text, read a line) or "tui" (Bubble Tea input)
	Style string `yaml:"style,omitempty"`
}

// Config represents the top-level application configuration
type Config struct {
	// LogFormat is "text" or "json"
	LogFormat string `yaml:"log_format,omitempty"`

	// LogFile also appends log records to the state directory log file
	LogFile bool `yaml:"log_file,omitempty"`

	// Color is "auto", "always" or "never"
	Color string `yaml:"color,omitempty"`

	// ExitOnFailure makes reported failures exit with status 1 instead of 0
	ExitOnFailure bool `yaml:"exit_on_failure,omitempty"`

	Prompt Prompt `yaml:"prompt,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogFormat: "text",
		Color:     ColorAuto,
		Prompt: Prompt{
			Text:  "> ",
			Style: PromptPlain,
		},
	}
}

func DefaultConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return ResolvePath(path)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "linekit", "config.yaml"), nil
}

// LoadConfig reads the configuration from DefaultConfigPath.
func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Default(), err
	}
	return LoadFile(configPath)
}

// LoadFile reads the configuration at configPath. A missing file yields the
// defaults without error. On any other failure the defaults are returned
// together with the error.
func LoadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated options.
func (c Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be 'text' or 'json', got %q", c.LogFormat)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be 'auto', 'always' or 'never', got %q", c.Color)
	}
	switch c.Prompt.Style {
	case PromptPlain, PromptTUI:
	default:
		return fmt.Errorf("prompt.style must be 'plain' or 'tui', got %q", c.Prompt.Style)
	}
	return nil
}

func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
