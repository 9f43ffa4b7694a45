package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, Validate(c))

	assert.Equal(t, 10000, c.Rows)
	assert.Equal(t, 100, c.GridPoints)
	assert.True(t, c.Derivative)

	crit := c.Criteria()
	assert.Equal(t, 0.01, crit.AmplitudeMin)
	assert.InDelta(t, 0.31622776601683794, crit.AmplitudeMax, 1e-16)
	assert.Equal(t, 1, crit.MaxMaxima)
	assert.Equal(t, 2, crit.MaxMinima)
}

func TestParseOverridesDefaults(t *testing.T) {
	c, err := Parse([]byte(`
rows: 32
seed: 7
derivative: false
amplitude:
  lower: 0.02
`))
	require.NoError(t, err)

	assert.Equal(t, 32, c.Rows)
	assert.Equal(t, uint64(7), c.Seed)
	assert.False(t, c.Derivative)
	assert.Equal(t, 0.02, c.Amplitude.Lower)
	// Untouched keys keep their defaults.
	assert.Equal(t, Default().Amplitude.Upper, c.Amplitude.Upper)
	assert.Equal(t, 100, c.GridPoints)
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("rowz: 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }, "rows"},
		{"one grid point", func(c *Config) { c.GridPoints = 1 }, "grid_points"},
		{"negative workers", func(c *Config) { c.Workers = -1 }, "workers"},
		{"no attempts", func(c *Config) { c.MaxAttempts = 0 }, "max_attempts"},
		{"probability above one", func(c *Config) { c.OrientationProbability = 1.5 }, "orientation_probability"},
		{"inverted amplitude", func(c *Config) { c.Amplitude = Bounds{Lower: 0.5, Upper: 0.1} }, "amplitude"},
		{"negative minima", func(c *Config) { c.Extrema.MaxMinima = -1 }, "max_minima"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)

			err := Validate(c)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Field, tt.field)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounce.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 5\nworkers: 2\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Rows)
	assert.Equal(t, 2, c.EffectiveWorkers())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestEffectiveWorkers(t *testing.T) {
	c := Default()
	c.Rows = 3
	c.Workers = 16
	assert.Equal(t, 3, c.EffectiveWorkers())

	c.Workers = 0
	assert.GreaterOrEqual(t, c.EffectiveWorkers(), 1)
	assert.LessOrEqual(t, c.EffectiveWorkers(), 3)
}

func TestWriteGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Default()))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "default_config", buf.Bytes())
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := Default()
	want.Rows = 12
	require.NoError(t, Write(&buf, want))

	got, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
