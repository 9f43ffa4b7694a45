package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/bounce/internal/runid"
)

var fixtureTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// execute runs the root command with args and captures both streams.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// generateFixture writes a small run to a fresh database and CSV file.
func generateFixture(t *testing.T, extraArgs ...string) (dbPath, csvPath string) {
	t.Helper()
	dir := t.TempDir()
	dbPath = filepath.Join(dir, "bounce.db")
	csvPath = filepath.Join(dir, "potentials.csv")

	opts := &GenerateOptions{
		RootOptions: &RootOptions{Format: "text"},
		RunIDs:      runid.NewFixedGenerator("run-1"),
		Now:         func() time.Time { return fixtureTime },
	}
	cmd := newGenerateCommand(opts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{
		"--rows", "5", "--workers", "2", "--seed", "11",
		"--db", dbPath, "--out", csvPath,
	}, extraArgs...))
	require.NoError(t, cmd.Execute())
	return dbPath, csvPath
}

// writeFile writes content to name inside a temp dir and returns the path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// csvLines reads a CSV file as lines.
func csvLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
