package engine

// ============================================================================
// CHART BUILDER — Produces ChartConfig from QuerySpec + Groups
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// BuildChart produces a ChartConfig from a QuerySpec and aggregated groups.
// Points keep group order, so the caller's sort mode decides the x order.
// Values are unrounded; renderers round when they format a label.
func BuildChart(spec QuerySpec, groups []Group) *ChartConfig {
	if len(groups) == 0 {
		return nil
	}

	chartType := spec.Visualize
	if chartType == "" {
		chartType = "bar"
	}

	config := &ChartConfig{
		ChartType: chartType,
		Title:     spec.Title,
		ShowGrid:  chartType == "line",
	}

	config.XAxis = spec.XLabel
	if config.XAxis == "" && len(spec.GroupBy) > 0 {
		config.XAxis = LabelForDimension(spec.GroupBy[0])
	}
	config.YAxis = spec.YLabel
	if config.YAxis == "" {
		config.YAxis = LabelForAggregation(spec.Aggregation)
	}

	config.Series = buildSingleSeries(groups, spec.Title)
	config.Colors = assignColors(len(config.Series), defaultColors)
	return config
}

// ============================================================================
// SERIES BUILDERS
// ============================================================================

func buildSingleSeries(groups []Group, seriesName string) []ChartSeries {
	if seriesName == "" {
		seriesName = "Value"
	}

	points := make([]ChartPoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, ChartPoint{
			Label: g.Label,
			Value: g.Value,
		})
	}

	return []ChartSeries{{
		Name: seriesName,
		Data: points,
	}}
}

// applyChartOptions decorates a built chart with palette, guides and axis floor.
func applyChartOptions(chart *ChartConfig, cfg *config) {
	if len(cfg.Colors) > 0 {
		chart.Colors = assignColors(len(chart.Series), cfg.Colors)
	}
	for i := range chart.Series {
		chart.Series[i].Color = chart.Colors[i]
	}
	chart.ReferenceLines = append(chart.ReferenceLines, cfg.ReferenceLines...)
	if cfg.YFloor != nil {
		floor := *cfg.YFloor
		chart.YFloor = &floor
	}
	chart.ShowValues = cfg.ShowValues
}

func assignColors(count int, palette []string) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}
