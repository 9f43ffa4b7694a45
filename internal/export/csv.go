package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/roach88/bounce/internal/dataset"
	"github.com/roach88/bounce/internal/grid"
)

// ErrEmptyDataset is returned when there is nothing to export.
var ErrEmptyDataset = errors.New("dataset has no rows")

// WriteCSV writes d to w. Floats use the shortest representation that
// round-trips exactly.
func WriteCSV(w io.Writer, d *dataset.Dataset) error {
	if d.Len() == 0 {
		return ErrEmptyDataset
	}

	cw := csv.NewWriter(w)
	header := make([]string, d.Len())
	for i := range header {
		header[i] = dataset.ColumnName(i)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	columns := make([][]float64, d.Len())
	for i, r := range d.Rows {
		columns[i] = r.Column()
	}

	n := d.ColumnLength()
	line := make([]string, d.Len())
	for j := 0; j < n; j++ {
		for i, col := range columns {
			if len(col) != n {
				return fmt.Errorf("row %d: column has %d values, expected %d", i, len(col), n)
			}
			line[i] = strconv.FormatFloat(col[j], 'g', -1, 64)
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("write line %d: %w", j, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes d to path, replacing any existing file.
func WriteCSVFile(path string, d *dataset.Dataset) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := WriteCSV(f, d); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

// ReadCSV parses a file written by WriteCSV. When derivative is set the
// lines are split evenly into potential and derivative halves.
//
// The CSV layout carries curves only, so quadruples, stats and the seed of
// the returned rows are zero.
func ReadCSV(r io.Reader, derivative bool) (*dataset.Dataset, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	header = append([]string(nil), header...)
	for i, name := range header {
		if name != dataset.ColumnName(i) {
			return nil, fmt.Errorf("header column %d is %q, expected %q", i, name, dataset.ColumnName(i))
		}
	}

	columns := make([][]float64, len(header))
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		for i, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %s: %w", line, header[i], err)
			}
			columns[i] = append(columns[i], v)
		}
	}

	if len(columns) == 0 {
		return nil, ErrEmptyDataset
	}
	n := len(columns[0])
	if derivative {
		if n%2 != 0 {
			return nil, fmt.Errorf("%d lines cannot split into potential and derivative halves", n)
		}
		n /= 2
	}
	g, err := grid.New(n)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	d := &dataset.Dataset{Grid: g, Rows: make([]dataset.Row, len(columns))}
	for i, col := range columns {
		row := dataset.Row{Index: i, Potential: col[:n:n]}
		if derivative {
			row.Derivative = col[n:]
		}
		d.Rows[i] = row
	}
	return d, nil
}

// ReadCSVFile opens path and parses it with ReadCSV.
func ReadCSVFile(path string, derivative bool) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := ReadCSV(f, derivative)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return d, nil
}
