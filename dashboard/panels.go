package dashboard

import (
	"fmt"

	"github.com/spektr-org/rosterboard/engine"
	"github.com/spektr-org/rosterboard/schema"
)

// Team colours.
const (
	Gold  = "#FDB827"
	Blue  = "#27A9E1"
	Black = "#000000"
	White = "#FFFFFF"
)

// ReferenceWins is a .500 record over a 162-game season.
const ReferenceWins = 81

// Options name the team and the copy shown around the panels.
type Options struct {
	Team    string
	Window  string
	Caption string
}

// Dashboard is the render-ready content of every panel.
type Dashboard struct {
	Title       string
	Trend       *engine.ChartConfig
	PositionWAR *engine.ChartConfig
	TopPlayers  *engine.TableData
	Oldest      *engine.TableData
	Summary     string
	Caption     string
	Metrics     Metrics
}

// Build computes the metrics and the content of each panel.
func Build(roster []RosterRow, history []SeasonRecord, opts Options) (*Dashboard, error) {
	metrics, err := ComputeMetrics(roster)
	if err != nil {
		return nil, err
	}

	rosterView := RosterView(roster)
	historyView := HistoryView(history)
	nickname := lastName(opts.Team)

	d := &Dashboard{
		Title:   fmt.Sprintf("%s Rebuild Analytics Dashboard", opts.Team),
		Caption: opts.Caption,
		Metrics: metrics,
	}

	panels := []struct {
		name string
		spec engine.QuerySpec
		view engine.RecordView
		opts []engine.Option
		set  func(*engine.Result)
	}{
		{
			name: "trend",
			spec: engine.QuerySpec{
				Intent:      "chart",
				Aggregation: "none",
				Measure:     schema.KeyWins,
				GroupBy:     []string{schema.KeySeason},
				Visualize:   "line",
				Title:       fmt.Sprintf("%s Win Totals by Season", nickname),
				XLabel:      "Season",
				YLabel:      "Wins",
			},
			view: historyView,
			opts: []engine.Option{
				engine.WithColors(Gold),
				engine.WithReferenceLine(ReferenceWins, ".500 record", Blue),
				engine.WithYFloor(0),
			},
			set: func(r *engine.Result) { d.Trend = r.ChartConfig },
		},
		{
			name: "position_war",
			spec: engine.QuerySpec{
				Intent:      "chart",
				Aggregation: "sum",
				Measure:     schema.KeyWAR,
				GroupBy:     []string{schema.KeyPosition},
				SortBy:      "label_asc",
				Visualize:   "bar",
				Title:       "Team WAR by Position",
				XLabel:      "Position",
				YLabel:      "Total WAR",
			},
			view: rosterView,
			opts: []engine.Option{engine.WithColors(Blue), engine.WithValueLabels()},
			set:  func(r *engine.Result) { d.PositionWAR = r.ChartConfig },
		},
		{
			name: "top_players",
			spec: playerTable(fmt.Sprintf("%d Best Players by WAR", TopPlayersCount), schema.KeyWAR, TopPlayersCount),
			view: rosterView,
			set:  func(r *engine.Result) { d.TopPlayers = r.TableData },
		},
		{
			name: "oldest",
			spec: playerTable(fmt.Sprintf("%d Oldest Players", OldestCount), schema.KeyAge, OldestCount),
			view: rosterView,
			set:  func(r *engine.Result) { d.Oldest = r.TableData },
		},
		{
			name: "summary",
			spec: engine.QuerySpec{
				Intent:      "text",
				Aggregation: "sum",
				Reply:       summaryTemplate,
			},
			view: rosterView,
			opts: []engine.Option{
				engine.WithDefaultMeasure(schema.KeyWAR),
				engine.WithPlaceholders(summaryValues(metrics, opts.Team, opts.Window)),
			},
			set: func(r *engine.Result) { d.Summary = r.Reply },
		},
	}

	for _, p := range panels {
		result, err := engine.Execute(p.spec, p.view, p.opts...)
		if err != nil {
			return nil, fmt.Errorf("build %s panel: %w", p.name, err)
		}
		if result.Type != p.spec.Intent {
			return nil, fmt.Errorf("build %s panel: %w", p.name, ErrEmptyTable)
		}
		p.set(result)
	}

	return d, nil
}

func playerTable(title, sortKey string, limit int) engine.QuerySpec {
	return engine.QuerySpec{
		Intent:      "table",
		Aggregation: "list",
		SortKey:     sortKey,
		SortBy:      "value_desc",
		Columns:     []string{schema.KeyName, schema.KeyPosition, schema.KeyAge, schema.KeyWAR},
		Limit:       limit,
		Visualize:   "table",
		Title:       title,
	}
}
