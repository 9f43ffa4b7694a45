package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlot_CSV(t *testing.T) {
	_, csvPath := generateFixture(t)
	pngPath := filepath.Join(t.TempDir(), "curves.png")

	out, _, err := execute(t, "plot", "--csv", csvPath, "--out", pngPath, "--limit", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "plotted 3 curve(s)")

	data, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestPlot_StoredRunDerivativeJSON(t *testing.T) {
	dbPath, _ := generateFixture(t)
	pngPath := filepath.Join(t.TempDir(), "deriv.png")

	out, _, err := execute(t, "--format", "json", "plot", "--db", dbPath, "--out", pngPath, "--derivative")
	require.NoError(t, err)

	var resp struct {
		Data PlotResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, pngPath, resp.Data.Output)
	assert.Equal(t, 5, resp.Data.Curves)
	assert.FileExists(t, pngPath)
}

func TestPlot_DerivativeMissing(t *testing.T) {
	_, csvPath := generateFixture(t, "--no-derivative")

	out, _, err := execute(t, "plot", "--csv", csvPath, "--no-derivative", "--derivative",
		"--out", filepath.Join(t.TempDir(), "x.png"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "failed to plot dataset")
}
