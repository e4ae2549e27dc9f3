package schema

import (
	"errors"
)

// ============================================================================
// SCHEMA — Describes the shape of an input table
// ============================================================================
// The loader checks discovered columns against a Config before parsing.
// The engine uses the dimension/measure split to build records.
// ============================================================================

// ColumnType is the inferred or declared value type of a column.
type ColumnType string

const (
	TypeText    ColumnType = "text"
	TypeInteger ColumnType = "integer"
	TypeFloat   ColumnType = "float"
)

// IsNumeric reports whether values of this type can be summed or averaged.
func (t ColumnType) IsNumeric() bool {
	return t == TypeInteger || t == TypeFloat
}

// Sentinel errors for schema checks. Callers match with errors.Is.
var (
	ErrMissingColumn = errors.New("missing expected column")
	ErrTypeMismatch  = errors.New("column type mismatch")
)

// Config describes the complete shape of a table.
type Config struct {
	Name    string       `json:"name"`
	Columns []ColumnMeta `json:"columns"`
}

// ColumnMeta describes one required column.
// Text columns become engine dimensions; numeric columns become measures.
type ColumnMeta struct {
	Key         string     `json:"key"`
	Header      string     `json:"header"`
	DisplayName string     `json:"displayName"`
	Type        ColumnType `json:"type"`
}

// IsMeasure reports whether the column is aggregated rather than grouped.
func (c ColumnMeta) IsMeasure() bool {
	return c.Type.IsNumeric()
}

// Column looks up a column by key.
func (c Config) Column(key string) (ColumnMeta, bool) {
	for _, col := range c.Columns {
		if col.Key == key {
			return col, true
		}
	}
	return ColumnMeta{}, false
}

// DimensionKeys returns the keys of all text columns, in declaration order.
func (c Config) DimensionKeys() []string {
	var keys []string
	for _, col := range c.Columns {
		if !col.IsMeasure() {
			keys = append(keys, col.Key)
		}
	}
	return keys
}

// MeasureKeys returns the keys of all numeric columns, in declaration order.
func (c Config) MeasureKeys() []string {
	var keys []string
	for _, col := range c.Columns {
		if col.IsMeasure() {
			keys = append(keys, col.Key)
		}
	}
	return keys
}

// ============================================================================
// BUILT-IN SCHEMAS
// ============================================================================

// Column keys shared by the loader, the aggregator and the panels.
const (
	KeyName     = "name"
	KeyPosition = "position"
	KeyAge      = "age"
	KeyWAR      = "war"
	KeySalary   = "salary"
	KeySeason   = "season"
	KeyWins     = "wins"
)

// Roster is the player table: one row per player.
func Roster() Config {
	return Config{
		Name: "roster",
		Columns: []ColumnMeta{
			column(KeyName, "Name", TypeText),
			column(KeyPosition, "Position", TypeText),
			column(KeyAge, "Age", TypeInteger),
			column(KeyWAR, "WAR", TypeFloat),
			column(KeySalary, "Salary", TypeFloat),
		},
	}
}

// SeasonHistory is the win-total table: one row per season.
// Season is an ordinal label, so it stays text even when it looks numeric.
func SeasonHistory() Config {
	return Config{
		Name: "season_history",
		Columns: []ColumnMeta{
			column(KeySeason, "Season", TypeText),
			column(KeyWins, "Wins", TypeInteger),
		},
	}
}

func column(key, header string, t ColumnType) ColumnMeta {
	return ColumnMeta{
		Key:         key,
		Header:      header,
		DisplayName: header,
		Type:        t,
	}
}
