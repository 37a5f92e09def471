package metadata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// row is one CSV record addressed by column name.
type row struct {
	line   int
	fields []string
	index  map[string]int
}

func (r row) get(column string) string {
	return strings.TrimSpace(r.fields[r.index[column]])
}

// readTable reads a headered CSV and calls fn for every data row.
// Every name in columns must be present in the header; extra columns are ignored.
func readTable(r io.Reader, source string, columns []string, fn func(row) error) error {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("metadata: %s: empty table: %w", source, ErrMissingColumn)
		}
		return fmt.Errorf("metadata: %s: %w", source, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, c := range columns {
		if _, ok := index[c]; !ok {
			return fmt.Errorf("metadata: %s: %w %q", source, ErrMissingColumn, c)
		}
	}

	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var pe *csv.ParseError
			line := 0
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return &RecordError{Source: source, Line: line, Err: err}
		}
		line, _ := cr.FieldPos(0)
		if err := fn(row{line: line, fields: fields, index: index}); err != nil {
			return &RecordError{Source: source, Line: line, Err: err}
		}
	}
}
