// Package config loads the settings of the readorder command from a YAML file
// and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/readorder/text"
)

const (
	// EnvLogLevel overrides log_level.
	EnvLogLevel = "READORDER_LOG_LEVEL"

	// EnvConcurrency overrides concurrency.
	EnvConcurrency = "READORDER_CONCURRENCY"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the extraction and runtime settings.
type Config struct {
	LeftToRight   bool
	AutoDirection bool
	SpaceGapRatio float64
	ParagraphGap  float64
	PageHeight    float64

	LogLevel    slog.Level
	Concurrency int
}

// configFile mirrors the YAML layout. Pointers distinguish absent keys from
// zero values.
type configFile struct {
	LeftToRight   *bool    `yaml:"left_to_right"`
	AutoDirection *bool    `yaml:"auto_direction"`
	SpaceGapRatio *float64 `yaml:"space_gap_ratio"`
	ParagraphGap  *float64 `yaml:"paragraph_gap"`
	PageHeight    *float64 `yaml:"page_height"`

	LogLevel    string `yaml:"log_level"`
	Concurrency *int   `yaml:"concurrency"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		LeftToRight:   true,
		SpaceGapRatio: text.DefaultSpaceGapRatio,
		ParagraphGap:  text.DefaultParagraphGap,
		LogLevel:      slog.LevelWarn,
		Concurrency:   runtime.GOMAXPROCS(0),
	}
}

// Load reads path (if not empty), applies environment overrides and validates
// the result.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		file, err := parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}

		if err := c.apply(file); err != nil {
			return nil, err
		}
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func parse(r io.Reader) (*configFile, error) {
	var file configFile

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return &file, nil
}

func (c *Config) apply(file *configFile) error {
	if file.LeftToRight != nil {
		c.LeftToRight = *file.LeftToRight
	}
	if file.AutoDirection != nil {
		c.AutoDirection = *file.AutoDirection
	}
	if file.SpaceGapRatio != nil {
		c.SpaceGapRatio = *file.SpaceGapRatio
	}
	if file.ParagraphGap != nil {
		c.ParagraphGap = *file.ParagraphGap
	}
	if file.PageHeight != nil {
		c.PageHeight = *file.PageHeight
	}
	if file.Concurrency != nil {
		c.Concurrency = *file.Concurrency
	}

	if file.LogLevel != "" {
		level, err := parseLevel(file.LogLevel)
		if err != nil {
			return err
		}
		c.LogLevel = level
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := parseLevel(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		c.LogLevel = level
	}

	if v := os.Getenv(EnvConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, EnvConcurrency, v)
		}
		c.Concurrency = n
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, s)
	}
	return level, nil
}

// Validate checks that every setting is in range.
func (c *Config) Validate() error {
	if c.SpaceGapRatio < 0 {
		return fmt.Errorf("%w: space_gap_ratio must not be negative, got %g", ErrInvalid, c.SpaceGapRatio)
	}
	if c.ParagraphGap < 0 {
		return fmt.Errorf("%w: paragraph_gap must not be negative, got %g", ErrInvalid, c.ParagraphGap)
	}
	if c.PageHeight < 0 {
		return fmt.Errorf("%w: page_height must not be negative, got %g", ErrInvalid, c.PageHeight)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrInvalid, c.Concurrency)
	}
	return nil
}

// Options converts the extraction settings into text options.
func (c *Config) Options(logger *slog.Logger) []text.Option {
	opts := []text.Option{
		text.WithLeftToRight(c.LeftToRight),
		text.WithSpaceGapRatio(c.SpaceGapRatio),
		text.WithParagraphGap(c.ParagraphGap),
		text.WithPageHeight(c.PageHeight),
		text.WithLogger(logger),
	}

	if c.AutoDirection {
		opts = append(opts, text.WithAutoDirection())
	}

	return opts
}
