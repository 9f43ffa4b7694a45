package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect_StoredRun(t *testing.T) {
	dbPath, _ := generateFixture(t)

	out, _, err := execute(t, "inspect", "--db", dbPath, "--row", "2", "--width", "40", "--height", "6")
	require.NoError(t, err)

	for _, want := range []string{"run run-1", "rows", "acceptance", "too many minima", "seed", "row 2 (phi_0="} {
		assert.Contains(t, out, want)
	}
}

func TestInspect_CSV(t *testing.T) {
	_, csvPath := generateFixture(t)

	out, _, err := execute(t, "inspect", "--csv", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, csvPath)
	assert.Contains(t, out, "row 0")
	assert.NotContains(t, out, "acceptance", "CSV files carry no attempt statistics")
}

func TestInspect_JSON(t *testing.T) {
	dbPath, _ := generateFixture(t)

	out, _, err := execute(t, "--format", "json", "inspect", "--db", dbPath, "--row", "4")
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		RunID  string        `json:"run_id"`
		Data   InspectResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "run-1", resp.RunID)
	assert.Equal(t, 4, resp.Data.Row)
	require.NotNil(t, resp.Data.Quadruple)
	assert.True(t, resp.Data.Quadruple.Ordered())
	assert.Len(t, resp.Data.Potential, 100)
	assert.Equal(t, 5, resp.Data.Summary.Rows)
	assert.GreaterOrEqual(t, resp.Data.Stats.Attempts, 1)
}

func TestInspect_RowOutOfRange(t *testing.T) {
	dbPath, _ := generateFixture(t)

	for _, row := range []string{"5", "-1"} {
		out, _, err := execute(t, "inspect", "--db", dbPath, "--row", row)
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
		assert.Contains(t, out, "out of range")
	}
}
