package dashboard

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/spektr-org/rosterboard/engine"
	"github.com/spektr-org/rosterboard/schema"
)

// Roster cut-offs used by the metrics and the narrative.
const (
	YoungAgeLimit   = 25 // "young talent" is strictly under this age
	CoreAgeLimit    = 28 // core candidates are strictly under this age
	TopPlayersCount = 5
	OldestCount     = 3
	CoreCount       = 3
	VeteranCount    = 2
)

// Metrics are the statistics derived from one roster. They live for one run.
type Metrics struct {
	RosterSize  int                `json:"rosterSize"`
	TotalWAR    float64            `json:"totalWar"`
	TotalSalary decimal.Decimal    `json:"totalSalary"`
	AvgAge      float64            `json:"avgAge"`
	YoungWAR    float64            `json:"youngWar"`
	PitchingWAR float64            `json:"pitchingWar"`
	HittingWAR  float64            `json:"hittingWar"`
	TopByWAR    []RosterRow        `json:"topByWar"`
	Oldest      []RosterRow        `json:"oldest"`
	PositionWAR map[string]float64 `json:"positionWar"`
	Ace         string             `json:"ace"`
	CorePlayers []string           `json:"corePlayers"`
	Veterans    []string           `json:"veterans"`
}

// ComputeMetrics derives every roster statistic the dashboard shows.
func ComputeMetrics(roster []RosterRow) (Metrics, error) {
	view := RosterView(roster)
	pitchers := engine.DimensionIn(schema.KeyPosition, PitchingPositions...)

	totalWAR, err := engine.ScalarAggregate(view, schema.KeyWAR, "sum")
	if err != nil {
		return Metrics{}, fmt.Errorf("total war: %w", err)
	}
	avgAge, err := engine.ScalarAggregate(view, schema.KeyAge, "mean")
	if err != nil {
		return Metrics{}, fmt.Errorf("average age: %w", err)
	}

	m := Metrics{
		RosterSize:  view.Len(),
		TotalWAR:    totalWAR,
		TotalSalary: totalSalary(roster),
		AvgAge:      avgAge,
		YoungWAR:    engine.FilterSum(view, engine.MeasureBelow(schema.KeyAge, YoungAgeLimit), schema.KeyWAR),
		PitchingWAR: engine.FilterSum(view, pitchers, schema.KeyWAR),
		HittingWAR:  engine.FilterSum(view, engine.Not(pitchers), schema.KeyWAR),
		TopByWAR:    engine.Items[RosterRow](engine.TopN(view, schema.KeyWAR, TopPlayersCount, true)),
		Oldest:      engine.Items[RosterRow](engine.TopN(view, schema.KeyAge, OldestCount, true)),
		PositionWAR: engine.SumByGroup(view, schema.KeyPosition, schema.KeyWAR),
	}

	if ace := engine.Items[RosterRow](engine.TopN(engine.Where(view, pitchers), schema.KeyWAR, 1, true)); len(ace) > 0 {
		m.Ace = ace[0].Name
	}

	core := engine.TopN(engine.Where(view, engine.MeasureBelow(schema.KeyAge, CoreAgeLimit)), schema.KeyWAR, CoreCount, true)
	m.CorePlayers = lastNames(engine.Items[RosterRow](core))

	veterans := engine.TopN(engine.Where(view, engine.Not(pitchers)), schema.KeyAge, VeteranCount, true)
	m.Veterans = lastNames(engine.Items[RosterRow](veterans))

	return m, nil
}

// PayrollMillions renders the total salary as "$X.YM".
func (m Metrics) PayrollMillions() string {
	return "$" + m.TotalSalary.Div(decimal.NewFromInt(1_000_000)).StringFixed(1) + "M"
}

// totalSalary sums salaries exactly.
func totalSalary(roster []RosterRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range roster {
		total = total.Add(decimal.NewFromFloat(r.Salary))
	}
	return total
}

func lastNames(rows []RosterRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, lastName(r.Name))
	}
	return out
}
