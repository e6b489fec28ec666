package frame

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV reads a CSV document with a header row into a frame.
// Every column starts as a string column; run the inspect package's
// AutoCast to detect numeric and datetime columns.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("frame: empty CSV input")
	}
	if err != nil {
		return nil, fmt.Errorf("frame: read CSV header: %w", err)
	}

	values := make([][]string, len(header))
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("frame: read CSV row: %w", err)
		}
		if len(rec) != len(header) {
			return nil, fmt.Errorf("frame: CSV row has %d fields, header has %d", len(rec), len(header))
		}
		for j, v := range rec {
			values[j] = append(values[j], v)
		}
	}

	cols := make([]*Column, len(header))
	for j, name := range header {
		cols[j] = NewStringColumn(name, values[j])
	}
	return New(cols...)
}
