package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bounce/internal/dataset"
	"github.com/roach88/bounce/internal/grid"
)

func testDataset(t *testing.T, derivative bool) *dataset.Dataset {
	t.Helper()
	g, err := grid.New(3)
	require.NoError(t, err)

	d := &dataset.Dataset{Grid: g, Rows: []dataset.Row{
		{Index: 0, Potential: []float64{0, 0.25, -1}},
		{Index: 1, Potential: []float64{0, 0.1, -1}},
	}}
	if derivative {
		d.Rows[0].Derivative = []float64{0, -0.5, 0}
		d.Rows[1].Derivative = []float64{0, 1e-7, 0}
	}
	return d
}

func TestWriteCSV_Golden(t *testing.T) {
	tests := []struct {
		name       string
		derivative bool
	}{
		{"two_rows_derivative", true},
		{"two_rows_potential", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteCSV(&buf, testDataset(t, tt.derivative)))

			g := goldie.New(t,
				goldie.WithFixtureDir("testdata/golden"),
				goldie.WithNameSuffix(".golden"),
			)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, &dataset.Dataset{})
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestWriteCSV_RaggedRow(t *testing.T) {
	d := testDataset(t, true)
	d.Rows[1].Derivative = nil

	var buf bytes.Buffer
	err := WriteCSV(&buf, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestReadCSV_RoundTrip(t *testing.T) {
	for _, derivative := range []bool{true, false} {
		want := testDataset(t, derivative)

		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, want))

		got, err := ReadCSV(&buf, derivative)
		require.NoError(t, err)
		assert.Equal(t, want.Rows, got.Rows)
		assert.Equal(t, want.Grid, got.Grid)
		assert.Equal(t, want.Digest(), got.Digest())
	}
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		derivative bool
		want       string
	}{
		{"empty input", "", false, "read header"},
		{"bad header", "v0,x\n0,0\n1,1\n", false, `"x"`},
		{"bad number", "v0\n0\nabc\n", false, "column v0"},
		{"ragged line", "v0,v1\n0,0\n1\n", false, "line 2"},
		{"odd derivative split", "v0\n0\n1\n2\n", true, "halves"},
		{"single point", "v0\n0\n", false, "grid"},
		{"header only", "v0\n", false, "grid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input), tt.derivative)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	want := testDataset(t, true)

	require.NoError(t, WriteCSVFile(path, want))

	got, err := ReadCSVFile(path, true)
	require.NoError(t, err)
	assert.Equal(t, want.Rows, got.Rows)

	_, err = ReadCSVFile(filepath.Join(t.TempDir(), "missing.csv"), true)
	assert.Error(t, err)
}
