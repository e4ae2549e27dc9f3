package schema

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// ============================================================================
// TYPE INFERENCE — Heuristic column classification
// ============================================================================
// Inspects raw CSV and reports, per column, whether values are text,
// integers or floats. The loader validates this against a Config before it
// parses any row strictly.
//
// Pipeline per column:
//   1. Sample non-null values
//   2. 80%+ numeric → numeric, else text
//   3. Numeric with a decimal point anywhere → float, else integer
// ============================================================================

// DiscoverOptions controls inference behavior.
type DiscoverOptions struct {
	SampleSize int // Max rows to inspect (0 = all). Default: 1000
}

// DefaultDiscoverOptions returns sensible defaults.
func DefaultDiscoverOptions() DiscoverOptions {
	return DiscoverOptions{
		SampleSize: 1000,
	}
}

// ColumnInfo is the inference result for one column.
type ColumnInfo struct {
	Header       string     `json:"header"`
	Key          string     `json:"key"`
	Index        int        `json:"index"`
	Type         ColumnType `json:"type"`
	UniqueCount  int        `json:"uniqueCount"`
	NullCount    int        `json:"nullCount"`
	SampleValues []string   `json:"sampleValues"`
}

// InferColumns reads the header and a sample of rows and classifies each column.
// Malformed rows are skipped here; strict parsing reports them later.
func InferColumns(data []byte, opts ...DiscoverOptions) ([]ColumnInfo, error) {
	opt := DefaultDiscoverOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("CSV is empty")
		}
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("CSV has no columns")
	}

	limit := opt.SampleSize
	if limit <= 0 {
		limit = 100000 // safety cap
	}

	var rows [][]string
	for len(rows) < limit {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		rows = append(rows, row)
	}

	columns := make([]ColumnInfo, len(headers))
	for i, header := range headers {
		columns[i] = analyzeColumn(header, i, rows)
	}
	return columns, nil
}

// ============================================================================
// COLUMN ANALYSIS
// ============================================================================

func analyzeColumn(header string, index int, rows [][]string) ColumnInfo {
	header = strings.TrimSpace(header)
	col := ColumnInfo{
		Header: header,
		Key:    ToSnakeCase(header),
		Index:  index,
		Type:   TypeText,
	}

	values := make([]string, 0, len(rows))
	uniqueSet := make(map[string]bool)

	for _, row := range rows {
		if index >= len(row) {
			col.NullCount++
			continue
		}
		val := strings.TrimSpace(row[index])
		if isNull(val) {
			col.NullCount++
			continue
		}
		values = append(values, val)
		uniqueSet[val] = true
	}

	col.UniqueCount = len(uniqueSet)
	col.SampleValues = collectSamples(uniqueSet, 10)
	col.Type = detectType(values)
	return col
}

// detectType requires 80%+ of non-null values to parse for a numeric type.
func detectType(values []string) ColumnType {
	if len(values) == 0 {
		return TypeText
	}

	numCount := 0
	hasDecimals := false
	for _, v := range values {
		if _, err := ParseNumber(v); err == nil {
			numCount++
			if strings.ContainsAny(v, ".eE") {
				hasDecimals = true
			}
		}
	}

	threshold := int(float64(len(values)) * 0.8)
	if numCount == 0 || numCount < threshold {
		return TypeText
	}
	if hasDecimals {
		return TypeFloat
	}
	return TypeInteger
}

func isNull(s string) bool {
	switch s {
	case "", "null", "NULL", "N/A", "n/a", "NaN", "nan":
		return true
	}
	return false
}

// ParseNumber parses a numeric cell. Thousands separators and a leading
// currency symbol are accepted ("$1,250,000" → 1250000).
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || (negative && strings.ContainsAny(s[:1], "+-")) {
		return 0, strconv.ErrSyntax
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	if negative {
		f = -f
	}
	return f, nil
}

// ============================================================================
// STRING UTILITIES
// ============================================================================

// ToSnakeCase converts "Column Name" or "columnName" → "column_name".
// Runs of capitals stay together: "WAR" → "war".
func ToSnakeCase(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "\ufeff")
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			prev := rune(s[i-1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				result.WriteRune('_')
			}
		}
		result.WriteRune(r)
	}

	s = result.String()
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "__", "_")
	s = strings.Trim(s, "_")
	return s
}

// collectSamples picks up to maxSamples values, sorted for deterministic output.
func collectSamples(uniqueSet map[string]bool, maxSamples int) []string {
	samples := make([]string, 0, len(uniqueSet))
	for v := range uniqueSet {
		samples = append(samples, v)
	}
	sort.Strings(samples)

	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}
	return samples
}
