package schema

import (
	"errors"
	"testing"
)

// ============================================================================
// INFERENCE TESTS
// ============================================================================

var rosterCSV = []byte(`Name,Position,Age,WAR,Salary
Paul Skenes,SP,22,5.9,875000
Oneil Cruz,SS,25,2.1,750000
Ke'Bryan Hayes,3B,27,1.4,7000000
Bryan Reynolds,LF,29,2.8,"14,000,000"
Andrew McCutchen,DH,37,0.9,5000000
David Bednar,RP,29,-0.3,5900000
`)

var historyCSV = []byte(`Season,Wins
2020,19
2021,61
2022,62
2023,76
2024,76
`)

func TestInferRosterColumns(t *testing.T) {
	cols, err := InferColumns(rosterCSV)
	if err != nil {
		t.Fatalf("InferColumns failed: %v", err)
	}

	want := map[string]ColumnType{
		"name":     TypeText,
		"position": TypeText,
		"age":      TypeInteger,
		"war":      TypeFloat,
		"salary":   TypeInteger,
	}
	if len(cols) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(cols))
	}
	for _, c := range cols {
		if got := c.Type; got != want[c.Key] {
			t.Errorf("column %s: expected %s, got %s", c.Key, want[c.Key], got)
		}
	}

	if cols[1].UniqueCount != 6 {
		t.Errorf("position unique count: expected 6, got %d", cols[1].UniqueCount)
	}
}

func TestInferHistoryColumns(t *testing.T) {
	cols, err := InferColumns(historyCSV)
	if err != nil {
		t.Fatalf("InferColumns failed: %v", err)
	}
	assertType(t, cols, "season", TypeInteger)
	assertType(t, cols, "wins", TypeInteger)

	// Season is declared text, so a numeric-looking season still validates.
	if err := Validate(SeasonHistory(), cols); err != nil {
		t.Fatalf("history should validate: %v", err)
	}
}

func TestInferEmptyCSV(t *testing.T) {
	if _, err := InferColumns([]byte("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestInferNullsAreIgnored(t *testing.T) {
	data := []byte("Name,WAR\nA,1.5\nB,N/A\nC,\nD,2\n")
	cols, err := InferColumns(data)
	if err != nil {
		t.Fatalf("InferColumns failed: %v", err)
	}
	assertType(t, cols, "war", TypeFloat)
	if cols[1].NullCount != 2 {
		t.Errorf("expected 2 nulls, got %d", cols[1].NullCount)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"42", 42, false},
		{" 5.9 ", 5.9, false},
		{"-0.3", -0.3, false},
		{"$1,250,000", 1250000, false},
		{"-$12", -12, false},
		{"", 0, true},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"--5", 0, true},
		{"-+5", 0, true},
		{"-$-5", 0, true},
		{"-", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseNumber(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseNumber(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"WAR":          "war",
		"Name":         "name",
		"Story Points": "story_points",
		"issueType":    "issue_type",
		"\ufeffName":   "name",
	}
	for in, want := range tests {
		if got := ToSnakeCase(in); got != want {
			t.Errorf("ToSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

// ============================================================================
// VALIDATION TESTS
// ============================================================================

func TestValidateRoster(t *testing.T) {
	cols, err := InferColumns(rosterCSV)
	if err != nil {
		t.Fatalf("InferColumns failed: %v", err)
	}
	if err := Validate(Roster(), cols); err != nil {
		t.Fatalf("roster should validate: %v", err)
	}
}

func TestValidateMissingColumn(t *testing.T) {
	cols, err := InferColumns([]byte("Name,Position,Age,Salary\nA,SP,22,100\n"))
	if err != nil {
		t.Fatalf("InferColumns failed: %v", err)
	}
	err = Validate(Roster(), cols)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestValidateTypeMismatch(t *testing.T) {
	cols, err := InferColumns([]byte("Name,Position,Age,WAR,Salary\nA,SP,old,1.0,100\nB,RP,older,2.0,200\n"))
	if err != nil {
		t.Fatalf("InferColumns failed: %v", err)
	}
	err = Validate(Roster(), cols)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestValidateIntegerColumnRejectsFloat(t *testing.T) {
	cols, err := InferColumns([]byte("Season,Wins\n2023,76.5\n"))
	if err != nil {
		t.Fatalf("InferColumns failed: %v", err)
	}
	if err := Validate(SeasonHistory(), cols); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestConfigKeys(t *testing.T) {
	cfg := Roster()
	assertStrings(t, cfg.DimensionKeys(), []string{"name", "position"})
	assertStrings(t, cfg.MeasureKeys(), []string{"age", "war", "salary"})

	col, ok := cfg.Column("war")
	if !ok || col.Header != "WAR" {
		t.Fatalf("expected WAR column, got %+v (found=%v)", col, ok)
	}
}

// ============================================================================
// HELPERS
// ============================================================================

func assertType(t *testing.T, cols []ColumnInfo, key string, want ColumnType) {
	t.Helper()
	for _, c := range cols {
		if c.Key == key {
			if c.Type != want {
				t.Errorf("column %s: expected %s, got %s", key, want, c.Type)
			}
			return
		}
	}
	t.Errorf("column %s not found", key)
}

func assertStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
