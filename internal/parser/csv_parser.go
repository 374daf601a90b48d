package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseFloat accepts everything strconv does, including nan and inf.
// Out-of-range literals keep the ±Inf or 0 value strconv reports for them.
func parseFloat(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, err
	}
	return v, nil
}

// parseRow converts one trimmed line into a Row.
func parseRow(line string) (Row, error) {
	tokens := strings.Split(line, ",")
	if len(tokens) != FieldsPerRow {
		return Row{}, fmt.Errorf("%w: got %d", ErrRowFormat, len(tokens))
	}

	var vals [FieldsPerRow]float64
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := parseFloat(tok)
		if err != nil {
			return Row{}, fmt.Errorf("%w: column %d %q", ErrNumber, i+1, tok)
		}
		vals[i] = v
	}
	return Row{X: vals[0], Y1: vals[1], Y2: vals[2]}, nil
}

// ParseDataset reads x,y1,y2 lines from r. Any malformed line aborts the
// whole read; no partial dataset is returned. Lines have no length limit.
func ParseDataset(r io.Reader) (*Dataset, error) {
	ds := NewDataset()

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read data: %w", err)
		}
		if text == "" && err != nil {
			break
		}

		lineNo++
		line := strings.TrimSpace(text)
		row, rowErr := parseRow(line)
		if rowErr != nil {
			return nil, &RowError{Line: lineNo, Text: line, Err: rowErr}
		}
		ds.Append(row)

		if err != nil {
			break
		}
	}
	return ds, nil
}
