// Package config defines the run configuration for dataset generation.
//
// Defaults reproduce the reference dataset: 10000 rows over a 100-point
// grid, amplitude in [0.01, 10^-0.5], at most one maximum and two minima.
// A YAML file may override any field; the result is checked against an
// embedded CUE schema before use.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/roach88/bounce/internal/shape"
)

// Default values.
const (
	DefaultRows        = 10000
	DefaultGridPoints  = 100
	DefaultSeed        = 42
	DefaultMaxAttempts = 1_000_000
)

// Config is the full set of knobs for one generation run.
type Config struct {
	Rows        int    `yaml:"rows" json:"rows"`
	GridPoints  int    `yaml:"grid_points" json:"grid_points"`
	Seed        uint64 `yaml:"seed" json:"seed"`
	Workers     int    `yaml:"workers" json:"workers"` // 0 means GOMAXPROCS
	MaxAttempts int    `yaml:"max_attempts" json:"max_attempts"`

	// OrientationProbability is the chance that phi_0 stays below phi_2.
	OrientationProbability float64 `yaml:"orientation_probability" json:"orientation_probability"`

	// Derivative appends dV/dphi to every exported column.
	Derivative bool `yaml:"derivative" json:"derivative"`

	Amplitude Bounds        `yaml:"amplitude" json:"amplitude"`
	Extrema   ExtremaLimits `yaml:"extrema" json:"extrema"`
}

// Bounds is an inclusive range for max(curve).
type Bounds struct {
	Lower float64 `yaml:"lower" json:"lower"`
	Upper float64 `yaml:"upper" json:"upper"`
}

// ExtremaLimits caps the local extremum counts of an accepted curve.
type ExtremaLimits struct {
	MaxMaxima int `yaml:"max_maxima" json:"max_maxima"`
	MaxMinima int `yaml:"max_minima" json:"max_minima"`
}

// Default returns the configuration of the reference dataset.
func Default() Config {
	c := shape.DefaultCriteria()
	return Config{
		Rows:                   DefaultRows,
		GridPoints:             DefaultGridPoints,
		Seed:                   DefaultSeed,
		MaxAttempts:            DefaultMaxAttempts,
		OrientationProbability: 0.5,
		Derivative:             true,
		Amplitude:              Bounds{Lower: c.AmplitudeMin, Upper: c.AmplitudeMax},
		Extrema:                ExtremaLimits{MaxMaxima: c.MaxMaxima, MaxMinima: c.MaxMinima},
	}
}

// Criteria returns the acceptance filter bounds of c.
func (c Config) Criteria() shape.Criteria {
	return shape.Criteria{
		AmplitudeMin: c.Amplitude.Lower,
		AmplitudeMax: c.Amplitude.Upper,
		MaxMaxima:    c.Extrema.MaxMaxima,
		MaxMinima:    c.Extrema.MaxMinima,
	}
}

// EffectiveWorkers resolves Workers, mapping 0 to GOMAXPROCS and never
// exceeding the row count.
func (c Config) EffectiveWorkers() int {
	w := c.Workers
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if c.Rows > 0 && w > c.Rows {
		w = c.Rows
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Load reads a YAML config from path on top of Default and validates it.
// Unknown keys are rejected. An empty file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write encodes c as YAML with two-space indentation.
func Write(w io.Writer, c Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
