package dashboard

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spektr-org/rosterboard/helpers"
	"github.com/spektr-org/rosterboard/schema"
)

// ============================================================================
// DASHBOARD TESTS
// ============================================================================
// Tests cover:
//   1. Loading: typed rows, file order, missing file, bad schema, bad cell
//   2. Metrics: totals, splits, rankings, narrative names
//   3. Panels: chart/table/text content built through the engine
// ============================================================================

const rosterCSV = `Name,Position,Age,WAR,Salary
Paul Skenes,SP,22,5.9,875000
Oneil Cruz,SS,25,2.1,2300000
Ke'Bryan Hayes,3B,27,1.4,7000000
Bryan Reynolds,LF,29,2.8,"14,000,000"
Andrew McCutchen,DH,37,0.9,5000000
David Bednar,RP,29,-0.3,5900000
`

const historyCSV = `Season,Wins
2020,19
2021,61
2022,62
2023,76
2024,76
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func loadFixtures(t *testing.T) ([]RosterRow, []SeasonRecord) {
	t.Helper()
	roster, err := LoadRoster(writeFile(t, "pirates_data.csv", rosterCSV))
	if err != nil {
		t.Fatalf("LoadRoster: %v", err)
	}
	history, err := LoadHistory(writeFile(t, "team_history.csv", historyCSV))
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	return roster, history
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// --- Loading ---

func TestLoadRoster(t *testing.T) {
	roster, _ := loadFixtures(t)
	if len(roster) != 6 {
		t.Fatalf("got %d rows, want 6", len(roster))
	}
	want := RosterRow{Name: "Bryan Reynolds", Position: "LF", Age: 29, WAR: 2.8, Salary: 14_000_000}
	if roster[3] != want {
		t.Errorf("row 3 = %+v, want %+v", roster[3], want)
	}
}

func TestLoadHistoryKeepsFileOrder(t *testing.T) {
	data := "Season,Wins\n2023,76\n2021,61\n2022,62\n"
	history, err := LoadHistory(writeFile(t, "h.csv", data))
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if history[0].Season != "2023" || history[1].Season != "2021" || history[2].Wins != 62 {
		t.Fatalf("history = %+v", history)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadRoster(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeFile(t, "r.csv", "Name,Position,Age,WAR\nPaul Skenes,SP,22,5.9\n")
	if _, err := LoadRoster(path); !errors.Is(err, schema.ErrMissingColumn) {
		t.Fatalf("err = %v, want ErrMissingColumn", err)
	}
}

func TestLoadTextInNumericColumn(t *testing.T) {
	path := writeFile(t, "h.csv", "Season,Wins\n2023,many\n2024,lots\n")
	if _, err := LoadHistory(path); !errors.Is(err, schema.ErrTypeMismatch) {
		t.Fatalf("err = %v, want ErrTypeMismatch", err)
	}
}

func TestLoadSingleBadCell(t *testing.T) {
	// One bad value among many passes inference but fails strict parsing.
	data := "Season,Wins\n2019,69\n2020,19\n2021,61\n2022,62\n2023,76\n2024,n/a!\n"
	_, err := LoadHistory(writeFile(t, "h.csv", data))
	if !errors.Is(err, helpers.ErrNotNumeric) {
		t.Fatalf("err = %v, want ErrNotNumeric", err)
	}
	if !strings.Contains(err.Error(), "line 7") {
		t.Errorf("error does not name the row: %v", err)
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	path := writeFile(t, "h.csv", "Season,Wins\n")
	if _, err := LoadHistory(path); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("err = %v, want ErrEmptyTable", err)
	}
}

// --- Metrics ---

func TestComputeMetrics(t *testing.T) {
	roster, _ := loadFixtures(t)
	m, err := ComputeMetrics(roster)
	if err != nil {
		t.Fatalf("ComputeMetrics: %v", err)
	}

	if m.RosterSize != 6 {
		t.Errorf("RosterSize = %d", m.RosterSize)
	}
	if !approx(m.TotalWAR, 12.8) {
		t.Errorf("TotalWAR = %v, want 12.8", m.TotalWAR)
	}
	if !approx(m.AvgAge, 169.0/6) {
		t.Errorf("AvgAge = %v", m.AvgAge)
	}
	if !approx(m.YoungWAR, 5.9) {
		t.Errorf("YoungWAR = %v, want 5.9 (age < 25 only)", m.YoungWAR)
	}
	if !approx(m.PitchingWAR, 5.6) || !approx(m.HittingWAR, 7.2) {
		t.Errorf("pitching/hitting = %v / %v", m.PitchingWAR, m.HittingWAR)
	}
	if !approx(m.PitchingWAR+m.HittingWAR, m.TotalWAR) {
		t.Error("pitching + hitting != total")
	}
	if got := m.TotalSalary.String(); got != "35075000" {
		t.Errorf("TotalSalary = %s", got)
	}
	if got := m.PayrollMillions(); got != "$35.1M" {
		t.Errorf("PayrollMillions = %s", got)
	}
	if !approx(m.PositionWAR["SP"], 5.9) || !approx(m.PositionWAR["RP"], -0.3) || len(m.PositionWAR) != 6 {
		t.Errorf("PositionWAR = %v", m.PositionWAR)
	}
}

func TestComputeMetricsRankings(t *testing.T) {
	roster, _ := loadFixtures(t)
	m, err := ComputeMetrics(roster)
	if err != nil {
		t.Fatalf("ComputeMetrics: %v", err)
	}

	top := []string{"Paul Skenes", "Bryan Reynolds", "Oneil Cruz", "Ke'Bryan Hayes", "Andrew McCutchen"}
	for i, name := range top {
		if m.TopByWAR[i].Name != name {
			t.Errorf("TopByWAR[%d] = %s, want %s", i, m.TopByWAR[i].Name, name)
		}
	}
	oldest := []string{"Andrew McCutchen", "Bryan Reynolds", "David Bednar"}
	for i, name := range oldest {
		if m.Oldest[i].Name != name {
			t.Errorf("Oldest[%d] = %s, want %s", i, m.Oldest[i].Name, name)
		}
	}
	if m.Ace != "Paul Skenes" {
		t.Errorf("Ace = %q", m.Ace)
	}
	if got := strings.Join(m.CorePlayers, ","); got != "Skenes,Cruz,Hayes" {
		t.Errorf("CorePlayers = %s", got)
	}
	if got := strings.Join(m.Veterans, ","); got != "McCutchen,Reynolds" {
		t.Errorf("Veterans = %s", got)
	}
}

func TestComputeMetricsDeterministic(t *testing.T) {
	roster, _ := loadFixtures(t)
	a, _ := ComputeMetrics(roster)
	b, _ := ComputeMetrics(roster)
	if a.TotalWAR != b.TotalWAR || a.AvgAge != b.AvgAge || !a.TotalSalary.Equal(b.TotalSalary) ||
		strings.Join(a.CorePlayers, ",") != strings.Join(b.CorePlayers, ",") {
		t.Fatal("metrics differ between runs")
	}
}

func TestPitchingSplitIsCaseSensitive(t *testing.T) {
	roster := []RosterRow{
		{Name: "A Starter", Position: "SP", Age: 30, WAR: 3},
		{Name: "B Reliever", Position: "rp", Age: 31, WAR: 1},
		{Name: "C Catcher", Position: "C", Age: 32, WAR: 2},
	}
	m, err := ComputeMetrics(roster)
	if err != nil {
		t.Fatalf("ComputeMetrics: %v", err)
	}
	if m.PitchingWAR != 3 || m.HittingWAR != 3 {
		t.Errorf("pitching/hitting = %v / %v, want 3 / 3", m.PitchingWAR, m.HittingWAR)
	}
}

// --- Panels ---

func buildFixture(t *testing.T) *Dashboard {
	t.Helper()
	roster, history := loadFixtures(t)
	d, err := Build(roster, history, Options{Team: "Pittsburgh Pirates", Window: "2026-2027", Caption: "caption"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return d
}

func TestBuildTrend(t *testing.T) {
	d := buildFixture(t)
	if d.Title != "Pittsburgh Pirates Rebuild Analytics Dashboard" {
		t.Errorf("Title = %q", d.Title)
	}
	trend := d.Trend
	if trend.Title != "Pirates Win Totals by Season" || trend.ChartType != "line" {
		t.Errorf("trend = %q (%s)", trend.Title, trend.ChartType)
	}
	points := trend.Series[0].Data
	if len(points) != 5 || points[0].Label != "2020" || points[0].Value != 19 {
		t.Fatalf("points = %+v", points)
	}
	if len(trend.ReferenceLines) != 1 || trend.ReferenceLines[0].Value != ReferenceWins {
		t.Errorf("reference lines = %+v", trend.ReferenceLines)
	}
	if trend.YFloor == nil || *trend.YFloor != 0 {
		t.Errorf("YFloor = %v", trend.YFloor)
	}
	if trend.Series[0].Color != Gold {
		t.Errorf("color = %s", trend.Series[0].Color)
	}
}

func TestBuildTrendKeepsRepeatedSeasons(t *testing.T) {
	roster, _ := loadFixtures(t)
	history := []SeasonRecord{{Season: "2023", Wins: 76}, {Season: "2023", Wins: 60}, {Season: "2024", Wins: 76}}
	d, err := Build(roster, history, Options{Team: "Pittsburgh Pirates"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	points := d.Trend.Series[0].Data
	if len(points) != 3 || points[0].Value != 76 || points[1].Value != 60 || points[1].Label != "2023" {
		t.Fatalf("points = %+v", points)
	}
}

func TestBuildPositionWAR(t *testing.T) {
	d := buildFixture(t)
	bars := d.PositionWAR.Series[0].Data
	want := []string{"3B", "DH", "LF", "RP", "SP", "SS"}
	for i, label := range want {
		if bars[i].Label != label {
			t.Errorf("bar %d = %s, want %s", i, bars[i].Label, label)
		}
	}
	if !d.PositionWAR.ShowValues || d.PositionWAR.Series[0].Color != Blue {
		t.Errorf("position chart = %+v", d.PositionWAR)
	}
	if d.PositionWAR.YAxis != "Total WAR" {
		t.Errorf("YAxis = %q", d.PositionWAR.YAxis)
	}
}

func TestBuildTables(t *testing.T) {
	d := buildFixture(t)
	if d.TopPlayers.Title != "5 Best Players by WAR" || len(d.TopPlayers.Rows) != 5 {
		t.Fatalf("top players = %q, %d rows", d.TopPlayers.Title, len(d.TopPlayers.Rows))
	}
	if got := strings.Join(d.TopPlayers.Rows[0], "|"); got != "Paul Skenes|SP|22|5.9" {
		t.Errorf("first row = %s", got)
	}
	if d.Oldest.Title != "3 Oldest Players" || len(d.Oldest.Rows) != 3 {
		t.Fatalf("oldest = %q, %d rows", d.Oldest.Title, len(d.Oldest.Rows))
	}
	if got := strings.Join(d.Oldest.Rows[0], "|"); got != "Andrew McCutchen|DH|37|0.9" {
		t.Errorf("oldest first row = %s", got)
	}
}

func TestBuildSummary(t *testing.T) {
	d := buildFixture(t)
	for _, want := range []string{
		"PIRATES REBUILD STRATEGY RECOMMENDATIONS",
		"Team Overview: 12.8 Total WAR | $35.1M Total Payroll | 28.2 Average Age",
		"Position players: 7.2 WAR across 6 rostered players",
		"Young talent foundation: 5.9 WAR from players under 25",
		"Pitching core: 5.6 WAR from pitchers (Paul Skenes as potential ace)",
		"Build around core young players (Skenes, Cruz, Hayes)",
		"trading veteran assets (McCutchen, Reynolds) for prospects",
		"4. Target 2026-2027 for competitive window opening",
	} {
		if !strings.Contains(d.Summary, want) {
			t.Errorf("summary missing %q:\n%s", want, d.Summary)
		}
	}
	if strings.Contains(d.Summary, "{") {
		t.Errorf("unresolved placeholder:\n%s", d.Summary)
	}
}

func TestBuildEmptyHistory(t *testing.T) {
	roster, _ := loadFixtures(t)
	if _, err := Build(roster, nil, Options{Team: "Pittsburgh Pirates"}); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("err = %v, want ErrEmptyTable", err)
	}
}
