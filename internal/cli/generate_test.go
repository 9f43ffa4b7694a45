package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bounce/internal/config"
	"github.com/roach88/bounce/internal/export"
	"github.com/roach88/bounce/internal/runid"
	"github.com/roach88/bounce/internal/shape"
	"github.com/roach88/bounce/internal/store"
)

func TestGenerate_WritesCSVAndStore(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "bounce.db")
	csvPath := filepath.Join(dir, "out.csv")

	out, errOut, err := execute(t, "generate",
		"--rows", "4", "--workers", "2", "--seed", "3",
		"--db", dbPath, "--out", csvPath)
	require.NoError(t, err)

	assert.Contains(t, out, "generated 4 rows on 100 grid points")
	assert.Contains(t, out, "wrote "+csvPath)
	assert.Contains(t, out, "stored run ")
	assert.True(t, strings.HasSuffix(out, "done\n"), "output must end with the completion marker")
	assert.Contains(t, errOut, "generation finished", "run logs go to stderr")

	lines := csvLines(t, csvPath)
	assert.Equal(t, "v0,v1,v2,v3", lines[0])
	assert.Len(t, lines, 1+200)

	d, err := export.ReadCSVFile(csvPath, true)
	require.NoError(t, err)
	require.NoError(t, d.Validate(shape.DefaultCriteria(), 4))

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()
	run, err := st.LatestRun(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), run.Seed)
	assert.Equal(t, d.Digest(), run.Digest, "CSV and store hold the same curves")
}

func TestGenerate_NoDerivative(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "out.csv")

	_, _, err := execute(t, "generate", "--rows", "2", "--no-derivative", "--out", csvPath)
	require.NoError(t, err)

	lines := csvLines(t, csvPath)
	assert.Len(t, lines, 1+100)
}

func TestGenerate_JSON(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bounce.db")

	out := &bytes.Buffer{}
	opts := &GenerateOptions{
		RootOptions: &RootOptions{Format: "json"},
		RunIDs:      runid.NewFixedGenerator("run-a", "run-b"),
		Now:         func() time.Time { return fixtureTime },
	}
	for i := 0; i < 2; i++ {
		out.Reset()
		cmd := newGenerateCommand(opts)
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--rows", "3", "--seed", "9", "--db", dbPath, "--out", ""})
		require.NoError(t, cmd.Execute())
	}

	var resp struct {
		Status string         `json:"status"`
		RunID  string         `json:"run_id"`
		Data   GenerateResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "run-b", resp.RunID)
	assert.True(t, resp.Data.Done, "JSON output carries the completion marker")
	assert.Equal(t, "run-a", resp.Data.Duplicate, "same seed and config reproduce the same dataset")
	assert.Equal(t, 3, resp.Data.Summary.Rows)
	assert.Empty(t, resp.Data.Output)
	assert.Len(t, resp.Data.Digest, 64)
}

func TestGenerate_ConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "run.yaml", "rows: 2\ngrid_points: 20\nderivative: false\n")
	csvPath := filepath.Join(t.TempDir(), "out.csv")

	_, _, err := execute(t, "generate", "--config", cfgPath, "--rows", "3", "--out", csvPath)
	require.NoError(t, err)

	lines := csvLines(t, csvPath)
	assert.Equal(t, "v0,v1,v2", lines[0], "--rows overrides the file")
	assert.Len(t, lines, 1+20)
}

func TestGenerate_Errors(t *testing.T) {
	exhausting := writeFile(t, "exhaust.yaml", "max_attempts: 20\nextrema:\n  max_maxima: 1\n  max_minima: 0\n")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{
			name:     "nothing to write",
			args:     []string{"generate", "--out", ""},
			wantCode: ExitCommandError,
			wantOut:  "nothing to write",
		},
		{
			name:     "invalid rows",
			args:     []string{"generate", "--rows", "0", "--out", filepath.Join(t.TempDir(), "x.csv")},
			wantCode: ExitCommandError,
			wantOut:  "Error [E001]",
		},
		{
			name:     "missing config file",
			args:     []string{"generate", "--config", filepath.Join(t.TempDir(), "nope.yaml")},
			wantCode: ExitCommandError,
			wantOut:  "invalid configuration",
		},
		{
			name:     "attempt budget exhausted",
			args:     []string{"generate", "--config", exhausting, "--rows", "2", "--out", filepath.Join(t.TempDir(), "x.csv")},
			wantCode: ExitFailure,
			wantOut:  "attempt budget exhausted",
		},
		{
			name:     "unwritable output",
			args:     []string{"generate", "--rows", "1", "--out", filepath.Join(t.TempDir(), "missing", "x.csv")},
			wantCode: ExitCommandError,
			wantOut:  "Error [E003]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, GetExitCode(err))
			assert.Contains(t, out, tt.wantOut)
			assert.NotContains(t, out, "done")
		})
	}
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"generate", "--rows", "3", "--out", filepath.Join(t.TempDir(), "x.csv")})

	err := cmd.ExecuteContext(ctx)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out.String(), "generation interrupted")
}

func TestConfigFlagsResolve_DefaultsUntouched(t *testing.T) {
	var f configFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--seed", "7"}))

	cfg, err := f.resolve(cmd)
	require.NoError(t, err)

	want := config.Default()
	want.Seed = 7
	assert.Equal(t, want, cfg)
}
