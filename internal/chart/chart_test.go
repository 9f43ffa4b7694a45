package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bounce/internal/dataset"
	"github.com/roach88/bounce/internal/grid"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func testDataset(t *testing.T, rows int) *dataset.Dataset {
	t.Helper()
	g, err := grid.New(5)
	require.NoError(t, err)

	d := &dataset.Dataset{Grid: g}
	for i := 0; i < rows; i++ {
		h := 0.05 * float64(i+1)
		d.Rows = append(d.Rows, dataset.Row{
			Index:      i,
			Potential:  []float64{0, h, -0.2, -0.7, -1},
			Derivative: []float64{0, 0.1, -2, -1, 0},
		})
	}
	return d
}

func TestCurves(t *testing.T) {
	p, err := Curves(testDataset(t, 4), Options{Title: "curves", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, "phi", p.X.Label.Text)
	assert.Equal(t, "V(phi)", p.Y.Label.Text)
	assert.Equal(t, "curves", p.Title.Text)

	p, err = Curves(testDataset(t, 1), Options{Derivative: true})
	require.NoError(t, err)
	assert.Equal(t, "dV/dphi", p.Y.Label.Text)
}

func TestCurves_Errors(t *testing.T) {
	_, err := Curves(testDataset(t, 0), Options{})
	assert.ErrorIs(t, err, ErrNoCurves)

	d := testDataset(t, 1)
	d.Rows[0].Derivative = nil
	_, err = Curves(d, Options{Derivative: true})
	assert.Error(t, err)

	d = testDataset(t, 2)
	d.Rows[1].Potential = d.Rows[1].Potential[:3]
	_, err = Curves(d, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, testDataset(t, 3), Options{}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.png")
	require.NoError(t, SavePNG(path, testDataset(t, 3), Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestPreview(t *testing.T) {
	out := Preview([]float64{0, 0.1, -0.5, -1}, "row 0", 20, 5)
	assert.Contains(t, out, "row 0")
	assert.Greater(t, len(strings.Split(out, "\n")), 5)

	assert.Empty(t, Preview(nil, "empty", 20, 5))
}
