// Package config loads the .rdom.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/rdom/dom"
	"gopkg.in/yaml.v3"
)

// FileName is the name Find looks for.
const FileName = ".rdom.yaml"

// Config holds all rdom settings.
type Config struct {
	Format FormatConfig `yaml:"format"`
	Log    LogConfig    `yaml:"log"`
}

// FormatConfig controls the whitespace written where the source had none.
type FormatConfig struct {
	Indent  int    `yaml:"indent"`
	Tabs    bool   `yaml:"tabs"`
	Newline string `yaml:"newline"` // lf or crlf
}

type LogConfig struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Format: FormatConfig{Indent: 4, Newline: "lf"},
	}
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Find returns the path of the nearest FileName in dir or one of its
// parents, or "" when there is none.
func Find(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Format.Indent < 0 {
		return fmt.Errorf("format.indent must not be negative, got %d", c.Format.Indent)
	}
	switch strings.ToLower(c.Format.Newline) {
	case "", "lf", "crlf":
	default:
		return fmt.Errorf("format.newline must be lf or crlf, got %q", c.Format.Newline)
	}
	return nil
}

// Formatting converts the format settings for dom.WithFormatting.
func (c *Config) Formatting() dom.Formatting {
	f := dom.DefaultFormatting()
	if c.Format.Tabs {
		f.Indent = "\t"
	} else {
		f.Indent = strings.Repeat(" ", c.Format.Indent)
	}
	if strings.EqualFold(c.Format.Newline, "crlf") {
		f.Newline = "\r\n"
	}
	return f
}
