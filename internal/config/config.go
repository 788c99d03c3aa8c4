package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Scan        ScanConfig        `yaml:"scan"`
	Parser      ParserConfig      `yaml:"parser"`
	Renderer    RendererConfig    `yaml:"renderer"`
	Performance PerformanceConfig `yaml:"performance"`
	Watch       WatchConfig       `yaml:"watch"`
	Archive     ArchiveConfig     `yaml:"archive"`
	Logging     LoggingConfig     `yaml:"logging"`
	OpenOutput  bool              `yaml:"open_output"`
}

type PathsConfig struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
}

type ScanConfig struct {
	Recursive bool `yaml:"recursive"`
}

type ParserConfig struct {
	// Encodings is the candidate priority list, tried in order. Empty means
	// the built-in default list.
	Encodings []string `yaml:"encodings"`
	// DecodePolicy is "strict" (total decode failure fails the file) or
	// "lenient" (lossy replacement-character fallback).
	DecodePolicy string `yaml:"decode_policy"`
}

type RendererConfig struct {
	// Style is one of: table, plain, formatted, text_only, script.
	Style    string `yaml:"style"`
	Font     string `yaml:"font"`
	FontSize uint64 `yaml:"font_size"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type WatchConfig struct {
	Enabled bool `yaml:"enabled"`
}

type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled"`
	Name    string `yaml:"name"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads, parses and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Scan: ScanConfig{Recursive: true},
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Source == "" {
		return fmt.Errorf("paths.source is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Parser.DecodePolicy == "" {
		c.Parser.DecodePolicy = "strict"
	}
	if c.Renderer.Style == "" {
		c.Renderer.Style = "table"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Archive.Name == "" {
		c.Archive.Name = "converted_subtitles.zip"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
