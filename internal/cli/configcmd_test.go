package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bounce/internal/config"
)

func TestConfig_DefaultGolden(t *testing.T) {
	out, _, err := execute(t, "config")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "config_default", []byte(out))
}

func TestConfig_OutputIsLoadable(t *testing.T) {
	out, _, err := execute(t, "config", "--rows", "500", "--seed", "9", "--no-derivative")
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Rows)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.False(t, cfg.Derivative)
}

func TestConfig_JSON(t *testing.T) {
	path := writeFile(t, "run.yaml", "grid_points: 50\namplitude:\n  lower: 0.02\n  upper: 0.3\n")

	out, _, err := execute(t, "--format", "json", "config", "--config", path)
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   config.Config `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 50, resp.Data.GridPoints)
	assert.Equal(t, 0.02, resp.Data.Amplitude.Lower)
	assert.Equal(t, 10000, resp.Data.Rows)
}

func TestConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "rowz: 5\n"},
		{"inverted amplitude", "amplitude:\n  lower: 0.5\n  upper: 0.1\n"},
		{"probability above one", "orientation_probability: 1.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.yaml", tt.content)
			out, _, err := execute(t, "config", "--config", path)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, "Error [E001]")
		})
	}
}
