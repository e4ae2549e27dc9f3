package dashboard

import (
	"errors"
	"fmt"
	"os"

	"github.com/spektr-org/rosterboard/engine"
	"github.com/spektr-org/rosterboard/helpers"
	"github.com/spektr-org/rosterboard/logger"
	"github.com/spektr-org/rosterboard/schema"
)

// ErrEmptyTable is returned when an input file has a header but no rows.
var ErrEmptyTable = errors.New("table has no data rows")

// LoadRoster reads and validates the roster CSV at path.
func LoadRoster(path string) ([]RosterRow, error) {
	view, err := loadTable(path, schema.Roster())
	if err != nil {
		return nil, err
	}

	rows := make([]RosterRow, view.Len())
	for i := range rows {
		rows[i] = RosterRow{
			Name:     view.Dimension(i, schema.KeyName),
			Position: view.Dimension(i, schema.KeyPosition),
			Age:      int(view.Measure(i, schema.KeyAge)),
			WAR:      view.Measure(i, schema.KeyWAR),
			Salary:   view.Measure(i, schema.KeySalary),
		}
	}
	return rows, nil
}

// LoadHistory reads and validates the season-history CSV at path.
// Rows keep file order.
func LoadHistory(path string) ([]SeasonRecord, error) {
	view, err := loadTable(path, schema.SeasonHistory())
	if err != nil {
		return nil, err
	}

	rows := make([]SeasonRecord, view.Len())
	for i := range rows {
		rows[i] = SeasonRecord{
			Season: view.Dimension(i, schema.KeySeason),
			Wins:   int(view.Measure(i, schema.KeyWins)),
		}
	}
	return rows, nil
}

// loadTable runs inference, schema validation and strict parsing in turn.
func loadTable(path string, sch schema.Config) (engine.RecordView, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sch.Name, err)
	}

	columns, err := schema.InferColumns(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !hasValues(columns) {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyTable)
	}
	if err := schema.Validate(sch, columns); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	view, err := helpers.ParseCSVView(data, sch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if view.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyTable)
	}

	logger.GetLogger().WithComponent("loader").WithFields(logger.Fields{
		"table": sch.Name,
		"path":  path,
		"rows":  view.Len(),
	}).Debug("table loaded")
	return view, nil
}

func hasValues(columns []schema.ColumnInfo) bool {
	for _, c := range columns {
		if c.UniqueCount > 0 || c.NullCount > 0 {
			return true
		}
	}
	return false
}
