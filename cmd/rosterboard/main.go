package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spektr-org/rosterboard/config"
	"github.com/spektr-org/rosterboard/dashboard"
	"github.com/spektr-org/rosterboard/logger"
	"github.com/spektr-org/rosterboard/render"
)

// ============================================================================
// ROSTERBOARD CLI — Roster analytics dashboard
// ============================================================================

const version = "1.0.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	envFile := flag.String("env", ".env", "Optional dotenv file read before the environment")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Rosterboard: roster analytics dashboard

Usage:
  rosterboard
  rosterboard --env prod.env

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  ROSTERBOARD_ROSTER_PATH   Roster CSV (default pirates_data.csv)
  ROSTERBOARD_HISTORY_PATH  Season history CSV (default team_history.csv)
  ROSTERBOARD_OUTPUT_PATH   Dashboard PNG (default pirates_analytics_dashboard.png)
  ROSTERBOARD_DPI           Output resolution (default 300)
  LOG_LEVEL, LOG_FORMAT, LOG_FILE, LOG_MAX_AGE_DAYS
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("rosterboard %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	if err := logger.GetLogger().Configure(cfg.LogLevel, cfg.LogFormat, cfg.LogFile, cfg.LogMaxAge); err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		logger.GetLogger().WithComponent("main").WithError(err).Error("dashboard run failed")
		config.Exitf("Error: %v", err)
	}
}

// run loads both tables, builds the panels and writes the PNG.
// stdout gets two lines: a start banner and a completion line with the
// elapsed time.
func run(cfg config.Config, stdout io.Writer) error {
	start := time.Now()
	fmt.Fprintf(stdout, "Starting %s Rebuild Analytics...\n", cfg.Team)

	roster, err := dashboard.LoadRoster(cfg.RosterPath)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	history, err := dashboard.LoadHistory(cfg.HistoryPath)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	d, err := dashboard.Build(roster, history, dashboard.Options{
		Team:    cfg.Team,
		Window:  cfg.Window,
		Caption: cfg.Caption,
	})
	if err != nil {
		return fmt.Errorf("build dashboard: %w", err)
	}

	opts := render.DefaultOptions()
	opts.DPI = float64(cfg.DPI)
	if err := render.RenderFile(d, cfg.OutputPath, opts); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}

	logger.LogPerformanceEntry(logger.GetLogger().WithComponent("main"), "main", "run", time.Since(start), logger.Fields{
		"output":    cfg.OutputPath,
		"players":   len(roster),
		"seasons":   len(history),
		"total_war": d.Metrics.TotalWAR,
	})

	fmt.Fprintf(stdout, "Analysis complete! Dashboard image saved to '%s' in %.2f seconds\n", cfg.OutputPath, time.Since(start).Seconds())
	return nil
}
