package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the run settings. With no environment set every field takes
// its default and the program reads and writes the fixed file names.
type Config struct {
	RosterPath  string `env:"ROSTERBOARD_ROSTER_PATH" envDefault:"pirates_data.csv"`
	HistoryPath string `env:"ROSTERBOARD_HISTORY_PATH" envDefault:"team_history.csv"`
	OutputPath  string `env:"ROSTERBOARD_OUTPUT_PATH" envDefault:"pirates_analytics_dashboard.png"`
	DPI         int    `env:"ROSTERBOARD_DPI" envDefault:"300"`

	Team    string `env:"ROSTERBOARD_TEAM" envDefault:"Pittsburgh Pirates"`
	Window  string `env:"ROSTERBOARD_WINDOW" envDefault:"2026-2027"`
	Caption string `env:"ROSTERBOARD_CAPTION" envDefault:"Pittsburgh Pirates Rebuild Analytics - Project for Xylem Analytics Internship"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	LogFile   string `env:"LOG_FILE"`
	LogMaxAge int    `env:"LOG_MAX_AGE_DAYS" envDefault:"0"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads an optional dotenv file and then parses the environment.
func Load(dotenvPaths ...string) (Config, error) {
	if err := LoadDotEnv(dotenvPaths...); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads variables from .env (or the given files) without
// overriding variables already set. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}
