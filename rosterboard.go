// Package rosterboard builds a one-page roster analytics dashboard.
//
// Usage:
//
//	roster, _ := dashboard.LoadRoster("pirates_data.csv")
//	history, _ := dashboard.LoadHistory("team_history.csv")
//
//	d, err := dashboard.Build(roster, history, dashboard.Options{
//	    Team:   "Pittsburgh Pirates",
//	    Window: "2026-2027",
//	})
//	err = render.RenderFile(d, "pirates_analytics_dashboard.png", render.DefaultOptions())
//
// The engine package turns a QuerySpec and a RecordView into render-ready
// chart, table or text data. The render package draws that data; nothing
// else touches pixels. All computation is local.
package rosterboard
