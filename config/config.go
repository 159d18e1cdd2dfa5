// Package config holds the tunable thresholds used by every stage of page
// structuring. A Config is a plain value: components copy it at construction
// and never modify it afterwards.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a configuration value is out of range
var ErrInvalid = errors.New("invalid configuration")

// Config holds configuration for span grouping, section classification,
// table validation, chart detection and page composition
type Config struct {
	// LineTolerance is the largest vertical gap between a span and the
	// block above it for the span to join that block (default: 4.0)
	LineTolerance float64 `yaml:"line_tolerance"`

	// HeadingRatio and HeadingMinDelta define the heading threshold:
	// max(median*HeadingRatio, median+HeadingMinDelta)
	// (defaults: 1.15 and 0.5)
	HeadingRatio    float64 `yaml:"heading_ratio"`
	HeadingMinDelta float64 `yaml:"heading_min_delta"`

	// DefaultFontSize is the median used when no block has a font size
	// (default: 10.0)
	DefaultFontSize float64 `yaml:"default_font_size"`

	// UpperCaseHeadingMaxLen is the longest all-caps text treated as a
	// heading regardless of size (default: 80)
	UpperCaseHeadingMaxLen int `yaml:"uppercase_heading_max_len"`

	// MinTableNumericFrac is the minimum share of numeric cells for a grid
	// to count as a data table (default: 0.15)
	MinTableNumericFrac float64 `yaml:"min_table_numeric_frac"`

	// MinChartWidth and MinChartHeight are the smallest drawing rectangles
	// considered as charts (defaults: 40 and 40)
	MinChartWidth  float64 `yaml:"min_chart_width"`
	MinChartHeight float64 `yaml:"min_chart_height"`

	// TopHeaderSkipRatio excludes drawings starting in the top fraction of
	// the page (default: 0.12)
	TopHeaderSkipRatio float64 `yaml:"top_header_skip_ratio"`

	// ChartTextMargin is how far outside a drawing text may sit and still
	// be associated with it (default: 6)
	ChartTextMargin float64 `yaml:"chart_text_margin"`

	// HeaderKeywords mark page furniture that is never chart content
	HeaderKeywords []string `yaml:"header_keywords"`

	// OverlapThreshold is the covered fraction above which a paragraph is
	// dropped in favour of a table or chart (default: 0.6)
	OverlapThreshold float64 `yaml:"overlap_threshold"`

	// Workers is the number of pages processed concurrently.
	// Zero or one means sequential processing.
	Workers int `yaml:"workers"`
}

// Default returns the thresholds tuned for fund factsheets
func Default() Config {
	return Config{
		LineTolerance:          4.0,
		HeadingRatio:           1.15,
		HeadingMinDelta:        0.5,
		DefaultFontSize:        10.0,
		UpperCaseHeadingMaxLen: 80,
		MinTableNumericFrac:    0.15,
		MinChartWidth:          40,
		MinChartHeight:         40,
		TopHeaderSkipRatio:     0.12,
		ChartTextMargin:        6,
		HeaderKeywords:         []string{"MONTHLY", "FACTSHEET", "PAGE", "JUNE", "MAY"},
		OverlapThreshold:       0.6,
		Workers:                0,
	}
}

// Clone returns a copy that shares no slices with c
func (c Config) Clone() Config {
	out := c
	if c.HeaderKeywords != nil {
		out.HeaderKeywords = append([]string(nil), c.HeaderKeywords...)
	}
	return out
}

// Validate checks that every value is within its usable range
func (c Config) Validate() error {
	switch {
	case c.LineTolerance < 0:
		return fmt.Errorf("%w: line_tolerance must not be negative", ErrInvalid)
	case c.HeadingRatio <= 0:
		return fmt.Errorf("%w: heading_ratio must be positive", ErrInvalid)
	case c.DefaultFontSize <= 0:
		return fmt.Errorf("%w: default_font_size must be positive", ErrInvalid)
	case c.UpperCaseHeadingMaxLen < 0:
		return fmt.Errorf("%w: uppercase_heading_max_len must not be negative", ErrInvalid)
	case c.MinTableNumericFrac < 0 || c.MinTableNumericFrac > 1:
		return fmt.Errorf("%w: min_table_numeric_frac must be within [0, 1]", ErrInvalid)
	case c.MinChartWidth < 0 || c.MinChartHeight < 0:
		return fmt.Errorf("%w: chart size minimums must not be negative", ErrInvalid)
	case c.TopHeaderSkipRatio < 0 || c.TopHeaderSkipRatio > 1:
		return fmt.Errorf("%w: top_header_skip_ratio must be within [0, 1]", ErrInvalid)
	case c.ChartTextMargin < 0:
		return fmt.Errorf("%w: chart_text_margin must not be negative", ErrInvalid)
	case c.OverlapThreshold < 0 || c.OverlapThreshold > 1:
		return fmt.Errorf("%w: overlap_threshold must be within [0, 1]", ErrInvalid)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative", ErrInvalid)
	}
	return nil
}

// Parse decodes YAML on top of the defaults. Keys that are absent keep
// their default value; unknown keys are an error.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a YAML configuration file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}
