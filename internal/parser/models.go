package parser

import (
	"errors"
	"fmt"
)

// FieldsPerRow is the number of comma-separated values on every data line.
const FieldsPerRow = 3

var (
	// ErrRowFormat is returned when a line does not split into exactly FieldsPerRow tokens.
	ErrRowFormat = errors.New("row does not have three comma-separated values")
	// ErrNumber is returned when a token is not a floating-point literal.
	ErrNumber = errors.New("value is not a number")
)

// Row is one parsed data line.
type Row struct {
	X  float64
	Y1 float64
	Y2 float64
}

// Dataset holds the three columns of the input file in file order.
// X, Y1 and Y2 always have the same length.
type Dataset struct {
	X  []float64
	Y1 []float64
	Y2 []float64
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{
		X:  make([]float64, 0),
		Y1: make([]float64, 0),
		Y2: make([]float64, 0),
	}
}

// Append adds a row to the end of all three columns.
func (d *Dataset) Append(r Row) {
	d.X = append(d.X, r.X)
	d.Y1 = append(d.Y1, r.Y1)
	d.Y2 = append(d.Y2, r.Y2)
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.X)
}

// Row returns the i-th row.
func (d *Dataset) Row(i int) Row {
	return Row{X: d.X[i], Y1: d.Y1[i], Y2: d.Y2[i]}
}

// RowError reports the line that could not be parsed.
type RowError struct {
	Line int    // 1-based
	Text string // the trimmed line
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
