package helpers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spektr-org/rosterboard/engine"
	"github.com/spektr-org/rosterboard/schema"
)

// ============================================================================
// CSV HELPER — Parses CSV data into []engine.Record
// ============================================================================
// The caller reads the file; this helper converts the raw bytes into generic
// Records using the schema. Parsing is strict: a ragged row or a bad number
// fails the whole table.
// ============================================================================

var (
	// ErrMalformedRow reports a row the CSV reader could not split, including
	// a row whose field count differs from the header.
	ErrMalformedRow = errors.New("malformed csv row")
	// ErrNotNumeric reports a numeric column holding a non-numeric value.
	ErrNotNumeric = errors.New("non-numeric value in numeric column")
)

type colMapping struct {
	column      schema.ColumnMeta
	header      string
	isDimension bool
	isMeasure   bool
}

// ParseCSV parses CSV bytes into Records using schema for classification.
// Each row becomes a Record with dimensions (text) and measures (numeric).
// Columns the schema does not declare are ignored.
func ParseCSV(data []byte, sch schema.Config) ([]engine.Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	mappings := make([]colMapping, len(headers))
	for i, h := range headers {
		col, ok := sch.Column(schema.ToSnakeCase(h))
		if !ok {
			continue
		}
		mappings[i] = colMapping{
			column:      col,
			header:      strings.TrimSpace(h),
			isDimension: !col.IsMeasure(),
			isMeasure:   col.IsMeasure(),
		}
	}

	var records []engine.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, pe.Line, pe.Err)
			}
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		line, _ := reader.FieldPos(0)

		rec := engine.Record{
			Dimensions: make(map[string]string),
			Measures:   make(map[string]float64),
		}

		for i, val := range row {
			m := mappings[i]
			val = strings.TrimSpace(val)

			switch {
			case m.isDimension:
				rec.Dimensions[m.column.Key] = val
			case m.isMeasure:
				f, err := parseMeasure(val, m.column.Type)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d, column %q: %v", ErrNotNumeric, line, m.header, err)
				}
				rec.Measures[m.column.Key] = f
			}
		}

		records = append(records, rec)
	}

	return records, nil
}

// ParseCSVView parses CSV into a RecordView (convenience wrapper).
// Key order follows the schema.
func ParseCSVView(data []byte, sch schema.Config) (engine.RecordView, error) {
	records, err := ParseCSV(data, sch)
	if err != nil {
		return nil, err
	}
	return engine.NewSliceView(records, sch.DimensionKeys(), sch.MeasureKeys()), nil
}

func parseMeasure(val string, t schema.ColumnType) (float64, error) {
	f, err := schema.ParseNumber(val)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", val)
	}
	if t == schema.TypeInteger && f != math.Trunc(f) {
		return 0, fmt.Errorf("%q is not an integer", val)
	}
	return f, nil
}
