package engine

// ============================================================================
// ENGINE TYPES — Roster analytics
// ============================================================================
// Record is a generic row (text dimensions, numeric measures). Typed rows are
// exposed through DomainAdapter; CSV rows through SliceView.
//
// Every builder returns render-ready data: ChartConfig, TableData, TextData.
// Nothing in this package draws pixels.
// ============================================================================

// ============================================================================
// RECORD — Generic data row
// ============================================================================

// Record is a single data row with string dimensions and numeric measures.
//
//	Record{Dimensions["position"]="SP", Measures["war"]=5.9}
type Record struct {
	Dimensions map[string]string  `json:"dimensions"`
	Measures   map[string]float64 `json:"measures"`
}

// ============================================================================
// QUERYSPEC — Describes one dashboard panel
// ============================================================================

// QuerySpec defines what the engine should compute for a panel.
type QuerySpec struct {
	Intent      string   `json:"intent"`      // "chart", "table", "text"
	Filters     Filters  `json:"filters"`     // Which records to include
	Aggregation string   `json:"aggregation"` // "sum", "mean", "count", "max", "min", "list"
	Measure     string   `json:"measure"`     // Which measure to aggregate (empty → use default)
	GroupBy     []string `json:"groupBy"`     // Dimension keys: ["position"]
	SortBy      string   `json:"sortBy"`      // "value_desc", "value_asc", "label_asc", "label_desc", "" = input order
	SortKey     string   `json:"sortKey"`     // Measure ranked by list tables
	Columns     []string `json:"columns"`     // Keys shown by list tables (empty → all)
	Limit       int      `json:"limit"`       // 0 = all
	Visualize   string   `json:"visualize"`   // "bar", "line", "table", "text"
	Title       string   `json:"title"`       // Chart/table title
	XLabel      string   `json:"xLabel"`      // Overrides the derived category axis name
	YLabel      string   `json:"yLabel"`      // Overrides the derived value axis name
	Reply       string   `json:"reply"`       // Template: "{total_war} Total WAR"
}

// Filters define which records to include.
// Keys are dimension names. Values are allowed values.
// OR within a dimension, AND across dimensions. Empty = all.
type Filters struct {
	Dimensions map[string][]string `json:"dimensions"`
}

// IsEmpty returns true if no filters are set.
func (f Filters) IsEmpty() bool {
	for _, vals := range f.Dimensions {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// ============================================================================
// RESULT — Render-ready output
// ============================================================================

// Result is the engine's render-ready output.
type Result struct {
	Success bool   `json:"success"`
	Type    string `json:"type"` // "chart", "table", "text"
	Reply   string `json:"reply"`
	Title   string `json:"title"`

	// Exactly one of these is populated based on Type:
	ChartConfig *ChartConfig `json:"chartConfig,omitempty"`
	TableData   *TableData   `json:"tableData,omitempty"`
	TextData    *TextData    `json:"textData,omitempty"`
}

// ============================================================================
// GROUP — Intermediate computation result
// ============================================================================

// Group represents a grouped/aggregated result.
// Builders convert these into ChartConfig or TableData.
type Group struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Value float64    `json:"value"`
	Count int        `json:"count"`
	View  RecordView `json:"-"` // Sub-view for records in this group (zero-copy)
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "line", "bar"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`

	// ShowValues annotates each bar/point with its value.
	ShowValues bool `json:"showValues"`
	// ReferenceLines are horizontal guides drawn at fixed data values.
	ReferenceLines []ReferenceLine `json:"referenceLines,omitempty"`
	// YFloor clamps the lower bound of the value axis when set.
	YFloor *float64 `json:"yFloor,omitempty"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ReferenceLine is a constant horizontal line, independent of series data.
type ReferenceLine struct {
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
	Color string  `json:"color,omitempty"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals or aggregations for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// ============================================================================
// TEXT TYPES
// ============================================================================

// TextData is structured data for a text panel.
type TextData struct {
	Value    string  `json:"value"`
	RawValue float64 `json:"rawValue"`
	Count    int     `json:"count"`
	Body     string  `json:"body"` // Resolved multi-line template
}
