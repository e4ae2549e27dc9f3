package dashboard

import (
	"strings"

	"github.com/spektr-org/rosterboard/engine"
	"github.com/spektr-org/rosterboard/schema"
)

// RosterRow is one player.
type RosterRow struct {
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Age      int     `json:"age"`
	WAR      float64 `json:"war"`
	Salary   float64 `json:"salary"`
}

// SeasonRecord is one season's win total.
type SeasonRecord struct {
	Season string `json:"season"`
	Wins   int    `json:"wins"`
}

// PitchingPositions are the position codes counted as pitchers. Codes match
// exactly; every other code, including "sp", is a position player.
var PitchingPositions = []string{"SP", "RP"}

var rosterAdapter = engine.NewDomainAdapter[RosterRow]().
	Dimension(schema.KeyName, func(r RosterRow) string { return r.Name }).
	Dimension(schema.KeyPosition, func(r RosterRow) string { return r.Position }).
	Measure(schema.KeyAge, func(r RosterRow) float64 { return float64(r.Age) }).
	Measure(schema.KeyWAR, func(r RosterRow) float64 { return r.WAR }).
	Measure(schema.KeySalary, func(r RosterRow) float64 { return r.Salary })

var historyAdapter = engine.NewDomainAdapter[SeasonRecord]().
	Dimension(schema.KeySeason, func(s SeasonRecord) string { return s.Season }).
	Measure(schema.KeyWins, func(s SeasonRecord) float64 { return float64(s.Wins) })

// RosterView exposes roster rows to the engine without copying them.
func RosterView(rows []RosterRow) *engine.DomainView[RosterRow] {
	return rosterAdapter.Bind(rows)
}

// HistoryView exposes season records to the engine without copying them.
func HistoryView(rows []SeasonRecord) *engine.DomainView[SeasonRecord] {
	return historyAdapter.Bind(rows)
}

// lastName returns the final word of a player name.
func lastName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return name
	}
	return parts[len(parts)-1]
}
