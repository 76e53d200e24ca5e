// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the YAML configuration of the gfwlist-smartdns
// command. Every field can also be set by a command-line flag; flags take
// precedence over the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/gfwlist-smartdns/src/gfwlist"
)

// Default configuration values.
const (
	DefaultSource   = "https://raw.githubusercontent.com/gfwlist/gfwlist/master/gfwlist.txt"
	DefaultOutput   = "gfwlist.domain.smartdns.conf"
	DefaultMode     = "smartdns"
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "info"
)

// Config holds every setting of a conversion run.
type Config struct {
	// Group is the SmartDNS upstream group written into every line. Required.
	Group string `yaml:"group"`

	// Mode selects the output dialect. Only "smartdns" is supported.
	Mode string `yaml:"mode"`

	// Source is the feed location: an http(s) URL or a local path.
	Source string `yaml:"source"`

	// Output is the path of the generated configuration file.
	Output string `yaml:"output"`

	// SuffixList optionally points at a public_suffix_list.dat (URL or
	// path). When empty the list embedded in the binary is used.
	SuffixList string `yaml:"suffix_list"`

	// Report optionally names an .xlsx workbook listing the domains and
	// the rules that could not be transformed.
	Report string `yaml:"report"`

	// Concurrency bounds parallel rule normalization. Zero selects the default.
	Concurrency int `yaml:"concurrency"`

	// Timeout bounds each remote retrieval.
	Timeout time.Duration `yaml:"timeout"`

	// MaxBytes bounds the size of each retrieved document. Zero selects the default.
	MaxBytes int64 `yaml:"max_bytes"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mode:     DefaultMode,
		Source:   DefaultSource,
		Output:   DefaultOutput,
		Timeout:  DefaultTimeout,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file on top of [Default]. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML data on top of [Default]. Empty input yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration can drive a conversion.
func (c Config) Validate() error {
	if c.Group == "" {
		return gfwlist.ErrEmptyGroup
	}
	if _, err := gfwlist.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Source == "" {
		return errors.New("config: source must not be empty")
	}
	if c.Output == "" {
		return errors.New("config: output must not be empty")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config: concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %s", c.Timeout)
	}
	if c.MaxBytes < 0 {
		return fmt.Errorf("config: max_bytes must not be negative, got %d", c.MaxBytes)
	}
	return nil
}
