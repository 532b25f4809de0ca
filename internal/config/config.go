// Package config handles loading and saving user configuration for seedview.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/seedview/internal/wallet"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration for seedview.
type Config struct {
	Words         int           `yaml:"words"`          // words in generated phrases
	CopiedTimeout time.Duration `yaml:"copied_timeout"` // how long the checkmark stays
	FieldWidth    int           `yaml:"field_width"`    // mnemonic field width in cells
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Words:         wallet.DefaultWordCount,
		CopiedTimeout: 2 * time.Second,
		FieldWidth:    60,
	}
}

// Validate rejects values the UI cannot work with.
func (c *Config) Validate() error {
	if !wallet.ValidWordCount(c.Words) {
		return fmt.Errorf("words: %w", wallet.ErrInvalidWordCount)
	}
	if c.CopiedTimeout <= 0 {
		return fmt.Errorf("copied_timeout must be positive, got %s", c.CopiedTimeout)
	}
	if c.FieldWidth < 20 {
		return fmt.Errorf("field_width must be at least 20, got %d", c.FieldWidth)
	}
	return nil
}

// Load reads config.yaml from dir. A missing file yields the defaults;
// keys absent from the file keep their default values.
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to config.yaml in dir, creating dir if needed.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "seedview"), nil
}
