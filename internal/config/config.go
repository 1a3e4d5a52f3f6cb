// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngme

// Package config loads pngme settings.
//
// Settings come from a single optional file named by the --config flag or
// the PNGME_CONFIG environment variable. There is no automatic discovery.
// YAML is the native format; files ending in .json or .jsonc are accepted
// with comments and trailing commas.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/pngme"
	"github.com/woozymasta/pngme/internal/message"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "PNGME_CONFIG"

// Config holds pngme settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// DefaultChunkType is used by encode and decode when no type is given.
	DefaultChunkType string `yaml:"default_chunk_type" json:"default_chunk_type"`

	// Compression applied to new messages: none, lz4 or zstd.
	Compression string `yaml:"compression" json:"compression"`

	// StrictChunkTypes rejects chunk types whose reserved bit is set when
	// encoding. Decoding always accepts them.
	StrictChunkTypes bool `yaml:"strict_chunk_types" json:"strict_chunk_types"`

	// Backup keeps <file>.bak before a file is overwritten in place.
	Backup bool `yaml:"backup" json:"backup"`

	// ScryptWorkFactor is the log2 scrypt cost for passphrase sealing.
	// Zero uses the age default.
	ScryptWorkFactor int `yaml:"scrypt_work_factor" json:"scrypt_work_factor"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:         "info",
		DefaultChunkType: "ruSt",
		Compression:      string(message.CompressionNone),
	}
}

// Load reads the file named by path, or by PNGME_CONFIG when path is empty.
// With neither set it returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile reads and validates the config file at path. Unset fields keep
// their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if _, err := pngme.ParseChunkType(c.DefaultChunkType); err != nil {
		errs = append(errs, fmt.Errorf("default_chunk_type: %w", err))
	}
	if _, err := message.ParseCompression(c.Compression); err != nil {
		errs = append(errs, fmt.Errorf("compression: %w", err))
	}
	if c.ScryptWorkFactor < 0 || c.ScryptWorkFactor > 30 {
		errs = append(errs, fmt.Errorf("scrypt_work_factor: %d out of range 0-30", c.ScryptWorkFactor))
	}

	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}

	return level, nil
}
