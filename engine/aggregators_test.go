package engine

import (
	"errors"
	"math"
	"testing"
)

// ============================================================================
// AGGREGATOR TESTS
// ============================================================================
// Tests cover:
//   1. Ranking: top-N order, ties, n beyond length, n = 0
//   2. Grouped sums: totals agree with the ungrouped sum
//   3. Scalar reductions: mean, unknown op
//   4. Predicate sums: age cut-off, pitcher split
//   5. Formatting: thousands separators, shortest float form
// ============================================================================

// --- Test Fixtures ---

type player struct {
	Name     string
	Position string
	Age      int
	WAR      float64
}

var playerAdapter = NewDomainAdapter[player]().
	Dimension("name", func(p player) string { return p.Name }).
	Dimension("position", func(p player) string { return p.Position }).
	Measure("age", func(p player) float64 { return float64(p.Age) }).
	Measure("war", func(p player) float64 { return p.WAR })

func rosterView() RecordView {
	return playerAdapter.Bind([]player{
		{Name: "Paul Skenes", Position: "SP", Age: 22, WAR: 5.9},
		{Name: "Oneil Cruz", Position: "SS", Age: 25, WAR: 2.1},
		{Name: "Ke'Bryan Hayes", Position: "3B", Age: 27, WAR: 1.4},
		{Name: "Bryan Reynolds", Position: "LF", Age: 29, WAR: 2.8},
		{Name: "Andrew McCutchen", Position: "DH", Age: 37, WAR: 0.9},
		{Name: "David Bednar", Position: "RP", Age: 29, WAR: -0.3},
	})
}

func names(view RecordView) []string {
	out := make([]string, view.Len())
	for i := range out {
		out[i] = view.Dimension(i, "name")
	}
	return out
}

func assertNames(t *testing.T, got RecordView, want ...string) {
	t.Helper()
	g := names(got)
	if len(g) != len(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v, want %v", g, want)
		}
	}
}

// --- TopN ---

func TestTopNDescending(t *testing.T) {
	view := playerAdapter.Bind([]player{
		{Name: "A", WAR: 5},
		{Name: "B", WAR: 3},
		{Name: "C", WAR: 5},
	})
	assertNames(t, TopN(view, "war", 2, true), "A", "C")
}

func TestTopNAscendingByAge(t *testing.T) {
	top := TopN(rosterView(), "age", 2, false)
	assertNames(t, top, "Paul Skenes", "Oneil Cruz")
}

func TestTopNOldestKeepsTieOrder(t *testing.T) {
	top := TopN(rosterView(), "age", 3, true)
	assertNames(t, top, "Andrew McCutchen", "Bryan Reynolds", "David Bednar")
}

func TestTopNLargerThanView(t *testing.T) {
	top := TopN(rosterView(), "war", 10, true)
	if top.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", top.Len())
	}
	if top.Dimension(0, "name") != "Paul Skenes" || top.Dimension(5, "name") != "David Bednar" {
		t.Fatalf("unexpected order %v", names(top))
	}
}

func TestTopNZero(t *testing.T) {
	if n := TopN(rosterView(), "war", 0, true).Len(); n != 0 {
		t.Fatalf("Len() = %d, want 0", n)
	}
}

func TestTopNResolvesTypedRows(t *testing.T) {
	top := Items[player](TopN(rosterView(), "war", 1, true))
	if len(top) != 1 || top[0].Name != "Paul Skenes" {
		t.Fatalf("Items = %+v", top)
	}
}

// --- SumByGroup ---

func TestSumByGroup(t *testing.T) {
	view := playerAdapter.Bind([]player{
		{Position: "SP", WAR: 1},
		{Position: "SP", WAR: 2},
		{Position: "1B", WAR: 3},
	})
	got := SumByGroup(view, "position", "war")
	if len(got) != 2 || got["SP"] != 3 || got["1B"] != 3 {
		t.Fatalf("SumByGroup = %v", got)
	}
}

func TestSumByGroupMatchesTotal(t *testing.T) {
	view := rosterView()
	var grouped float64
	for _, v := range SumByGroup(view, "position", "war") {
		grouped += v
	}
	if math.Abs(grouped-SumMeasure(view, "war")) > 1e-9 {
		t.Fatalf("grouped total %v != total %v", grouped, SumMeasure(view, "war"))
	}
}

func TestGroupAndAggregateSortsLabels(t *testing.T) {
	groups := GroupAndAggregate(rosterView(), []string{"position"}, "war", "sum", "label_asc", 0)
	want := []string{"3B", "DH", "LF", "RP", "SP", "SS"}
	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(groups), len(want))
	}
	for i, g := range groups {
		if g.Label != want[i] {
			t.Errorf("groups[%d] = %s, want %s", i, g.Label, want[i])
		}
	}
	if groups[3].Value != -0.3 {
		t.Errorf("RP value = %v, want -0.3", groups[3].Value)
	}
}

func TestGroupAndAggregateKeepsFirstSeenOrder(t *testing.T) {
	view := NewSliceView([]Record{
		{Dimensions: map[string]string{"season": "2022"}, Measures: map[string]float64{"wins": 62}},
		{Dimensions: map[string]string{"season": "2020"}, Measures: map[string]float64{"wins": 19}},
		{Dimensions: map[string]string{"season": "2021"}, Measures: map[string]float64{"wins": 61}},
	})
	groups := GroupAndAggregate(view, []string{"season"}, "wins", "sum", "", 0)
	if groups[0].Label != "2022" || groups[1].Label != "2020" || groups[2].Label != "2021" {
		t.Fatalf("order changed: %+v", groups)
	}
}

func TestGroupAndAggregateNoneKeepsEveryRow(t *testing.T) {
	view := NewSliceView([]Record{
		{Dimensions: map[string]string{"season": "2023"}, Measures: map[string]float64{"wins": 76}},
		{Dimensions: map[string]string{"season": "2024"}, Measures: map[string]float64{"wins": 76}},
		{Dimensions: map[string]string{"season": "2024"}, Measures: map[string]float64{"wins": 70}},
	})
	groups := GroupAndAggregate(view, []string{"season"}, "wins", "none", "", 0)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	if groups[1].Label != "2024" || groups[1].Value != 76 || groups[2].Label != "2024" || groups[2].Value != 70 {
		t.Fatalf("groups = %+v", groups)
	}
}

// --- ScalarAggregate ---

func TestScalarAggregateMean(t *testing.T) {
	view := playerAdapter.Bind([]player{{Age: 20}, {Age: 30}, {Age: 25}})
	got, err := ScalarAggregate(view, "age", "mean")
	if err != nil {
		t.Fatalf("ScalarAggregate: %v", err)
	}
	if got != 25.0 {
		t.Fatalf("mean = %v, want 25", got)
	}
}

func TestScalarAggregateOps(t *testing.T) {
	view := rosterView()
	tests := []struct {
		op   string
		want float64
	}{
		{"sum", 12.8},
		{"max", 5.9},
		{"min", -0.3},
		{"count", 6},
	}
	for _, tt := range tests {
		got, err := ScalarAggregate(view, "war", tt.op)
		if err != nil {
			t.Fatalf("%s: %v", tt.op, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", tt.op, got, tt.want)
		}
	}
}

func TestScalarAggregateUnknownOp(t *testing.T) {
	_, err := ScalarAggregate(rosterView(), "war", "median")
	if !errors.Is(err, ErrUnknownAggregation) {
		t.Fatalf("err = %v, want ErrUnknownAggregation", err)
	}
}

// --- FilterSum ---

func TestFilterSumUnderAge(t *testing.T) {
	view := playerAdapter.Bind([]player{
		{Age: 22, WAR: 1},
		{Age: 27, WAR: 2},
		{Age: 19, WAR: 3},
	})
	if got := FilterSum(view, MeasureBelow("age", 25), "war"); got != 4 {
		t.Fatalf("FilterSum = %v, want 4", got)
	}
}

func TestFilterSumPitchingSplit(t *testing.T) {
	view := rosterView()
	pitchers := DimensionIn("position", "SP", "RP")

	pitching := FilterSum(view, pitchers, "war")
	hitting := FilterSum(view, Not(pitchers), "war")

	if math.Abs(pitching-5.6) > 1e-9 {
		t.Errorf("pitching = %v, want 5.6", pitching)
	}
	if math.Abs(pitching+hitting-SumMeasure(view, "war")) > 1e-9 {
		t.Errorf("split %v + %v does not add up to total", pitching, hitting)
	}
}

func TestDimensionInIsCaseSensitive(t *testing.T) {
	view := playerAdapter.Bind([]player{
		{Name: "A", Position: "SP", WAR: 1},
		{Name: "B", Position: "sp", WAR: 2},
		{Name: "C", Position: "Rp", WAR: 4},
	})
	if got := FilterSum(view, DimensionIn("position", "SP", "RP"), "war"); got != 1 {
		t.Fatalf("FilterSum = %v, want 1 (only exact codes match)", got)
	}
}

// --- Formatting ---

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     string
	}{
		{12.8, 1, "12.8"},
		{1234.5, 1, "1,234.5"},
		{27.6667, 1, "27.7"},
		{-0.3, 1, "-0.3"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v, tt.decimals); got != tt.want {
			t.Errorf("FormatNumber(%v, %d) = %q, want %q", tt.v, tt.decimals, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	if got := FormatValue(22); got != "22" {
		t.Errorf("FormatValue(22) = %q", got)
	}
	if got := FormatValue(5.9); got != "5.9" {
		t.Errorf("FormatValue(5.9) = %q", got)
	}
}

func TestLabelForDimension(t *testing.T) {
	if got := LabelForDimension("war"); got != "WAR" {
		t.Errorf("war → %q", got)
	}
	if got := LabelForDimension("position"); got != "Position" {
		t.Errorf("position → %q", got)
	}
}
