package schema

import (
	"fmt"
	"strings"
)

// Validate checks inferred columns against a Config.
//
// Every declared column must be present (matched by snake_case key). A
// numeric column must not be inferred as text, and an integer column must
// not be inferred as float. Extra columns are allowed.
func Validate(cfg Config, columns []ColumnInfo) error {
	found := make(map[string]ColumnInfo, len(columns))
	for _, c := range columns {
		if _, dup := found[c.Key]; !dup {
			found[c.Key] = c
		}
	}

	var missing []string
	var mismatched []string
	for _, want := range cfg.Columns {
		got, ok := found[want.Key]
		if !ok {
			missing = append(missing, want.Header)
			continue
		}
		if !compatible(want.Type, got.Type) {
			mismatched = append(mismatched, fmt.Sprintf("%s (want %s, found %s)", want.Header, want.Type, got.Type))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", cfg.Name, ErrMissingColumn, strings.Join(missing, ", "))
	}
	if len(mismatched) > 0 {
		return fmt.Errorf("%s: %w: %s", cfg.Name, ErrTypeMismatch, strings.Join(mismatched, ", "))
	}
	return nil
}

func compatible(want, got ColumnType) bool {
	switch want {
	case TypeText:
		return true
	case TypeFloat:
		return got.IsNumeric()
	case TypeInteger:
		return got == TypeInteger
	}
	return false
}
