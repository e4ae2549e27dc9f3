package engine

import (
	"fmt"

	"github.com/spektr-org/rosterboard/logger"
)

// ============================================================================
// EXECUTOR — Dispatcher
// ============================================================================
// Entry point: Execute(spec, view, opts...)
//
// Pipeline:
//   1. Apply filters from QuerySpec → SubView
//   2. Group and aggregate
//   3. Dispatch to builder (chart / table / text)
//   4. Decorate with options (palette, reference lines, placeholders)
//   5. Return Result
//
// The engine reads caller data through RecordView and never copies it.
// ============================================================================

// Execute runs a QuerySpec against a RecordView and returns a render-ready Result.
//
// Options:
//   - WithDefaultMeasure(key): sets the measure when QuerySpec.Measure is empty
//   - WithColors / WithReferenceLine / WithYFloor / WithValueLabels: chart decoration
//   - WithPlaceholders(values): template values for text panels
func Execute(spec QuerySpec, view RecordView, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)
	log := logger.GetLogger().WithComponent("engine")

	measure := spec.Measure
	if measure == "" {
		measure = cfg.DefaultMeasure
	}

	if err := validateAggregation(spec.Aggregation); err != nil {
		return nil, fmt.Errorf("execute %q: %w", spec.Title, err)
	}

	if view.Len() == 0 {
		return &Result{
			Success: true,
			Type:    "text",
			Title:   spec.Title,
			Reply:   "No data available to analyze.",
		}, nil
	}

	// 1. Apply filters → SubView (zero-copy)
	filtered := ApplyFilters(view, spec.Filters)

	log.WithFields(logger.Fields{
		"intent":      spec.Intent,
		"aggregation": spec.Aggregation,
		"measure":     measure,
		"records":     view.Len(),
		"filtered":    filtered.Len(),
	}).Debug("executing query")

	// 2. Group and aggregate
	var groups []Group
	if spec.Aggregation != "list" {
		groups = GroupAndAggregate(filtered, spec.GroupBy, measure, spec.Aggregation, spec.SortBy, spec.Limit)
	}

	// 3. Dispatch to builder
	result := &Result{
		Success: true,
		Title:   spec.Title,
	}

	switch spec.Intent {
	case "chart":
		result.Type = "chart"
		result.ChartConfig = BuildChart(spec, groups)
		if result.ChartConfig == nil {
			result.Type = "text"
			result.Reply = "Not enough data to generate a chart."
			return result, nil
		}
		applyChartOptions(result.ChartConfig, cfg)

	case "table":
		result.Type = "table"
		result.TableData = BuildTable(spec, groups, filtered, measure)

	default:
		result.Type = "text"
		result.TextData = BuildText(spec, filtered, measure, cfg.Placeholders)
		result.Reply = result.TextData.Body
	}

	return result, nil
}

// validateAggregation rejects aggregation ops the engine cannot compute.
func validateAggregation(aggregation string) error {
	switch aggregation {
	case "", "list", "none", "count":
		return nil
	}
	if _, err := ScalarAggregate(NewSliceView(nil), "", aggregation); err != nil {
		return err
	}
	return nil
}
