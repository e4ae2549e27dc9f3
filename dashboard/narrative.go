package dashboard

import (
	"strings"

	"github.com/spektr-org/rosterboard/engine"
)

const summaryTemplate = `{team_upper} REBUILD STRATEGY RECOMMENDATIONS

Team Overview: {total_war} Total WAR | {total_payroll} Total Payroll | {avg_age} Average Age
Position players: {hitting_war} WAR across {roster_size} rostered players

Strengths:
• Young talent foundation: {young_war} WAR from players under 25
• Pitching core: {pitching_war} WAR from pitchers ({ace} as potential ace)

Recommended Rebuild Strategy:
1. Build around core young players ({core_players})
2. Consider trading veteran assets ({veterans}) for prospects
3. Prioritize player development system to maximize young talent
4. Target {window} for competitive window opening`

// summaryValues maps narrative placeholders to formatted metrics.
func summaryValues(m Metrics, team, window string) map[string]string {
	ace := m.Ace
	if ace == "" {
		ace = "no established starter"
	}
	return map[string]string{
		"team_upper":    teamNickname(team),
		"total_war":     engine.FormatNumber(m.TotalWAR, 1),
		"total_payroll": m.PayrollMillions(),
		"avg_age":       engine.FormatNumber(m.AvgAge, 1),
		"hitting_war":   engine.FormatNumber(m.HittingWAR, 1),
		"roster_size":   engine.FormatInt(m.RosterSize),
		"young_war":     engine.FormatNumber(m.YoungWAR, 1),
		"pitching_war":  engine.FormatNumber(m.PitchingWAR, 1),
		"ace":           ace,
		"core_players":  strings.Join(m.CorePlayers, ", "),
		"veterans":      strings.Join(m.Veterans, ", "),
		"window":        window,
	}
}

// teamNickname upper-cases the last word of a team name:
// "Pittsburgh Pirates" → "PIRATES".
func teamNickname(team string) string {
	return strings.ToUpper(lastName(team))
}
