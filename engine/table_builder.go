package engine

import (
	"fmt"
)

// ============================================================================
// TABLE BUILDER — Produces TableData from QuerySpec + Groups
// ============================================================================
// List tables rank rows by SortKey and show the requested columns.
// Aggregated tables show one row per group.
// ============================================================================

// BuildTable produces a TableData from a QuerySpec, groups and filtered view.
func BuildTable(spec QuerySpec, groups []Group, view RecordView, measure string) *TableData {
	if spec.Aggregation == "list" {
		return buildListTable(spec, view)
	}
	return buildAggregatedTable(spec, groups)
}

// ============================================================================
// LIST TABLE — Row per record
// ============================================================================

func buildListTable(spec QuerySpec, view RecordView) *TableData {
	keys := spec.Columns
	if len(keys) == 0 {
		keys = append(append([]string{}, view.DimensionKeys()...), view.MeasureKeys()...)
	}

	measures := toSet(view.MeasureKeys())
	columns := make([]Column, 0, len(keys))
	for _, key := range keys {
		col := Column{
			Key:   key,
			Label: LabelForDimension(key),
			Type:  "text",
			Align: "center",
		}
		if measures[key] {
			col.Type = "number"
		}
		columns = append(columns, col)
	}

	ranked := view
	if spec.SortKey != "" {
		n := spec.Limit
		if n <= 0 {
			n = view.Len()
		}
		ranked = TopN(view, spec.SortKey, n, spec.SortBy != "value_asc")
	} else if spec.Limit > 0 && spec.Limit < view.Len() {
		ranked = TopN(view, "", spec.Limit, false)
	}

	rows := make([][]string, 0, ranked.Len())
	for i := 0; i < ranked.Len(); i++ {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			if col.Type == "number" {
				row = append(row, FormatValue(ranked.Measure(i, col.Key)))
			} else {
				row = append(row, ranked.Dimension(i, col.Key))
			}
		}
		rows = append(rows, row)
	}

	return &TableData{
		Title:   spec.Title,
		Columns: columns,
		Rows:    rows,
	}
}

// ============================================================================
// AGGREGATED TABLE — Summary rows
// ============================================================================

func buildAggregatedTable(spec QuerySpec, groups []Group) *TableData {
	if len(groups) == 0 {
		return &TableData{
			Title:   spec.Title,
			Columns: []Column{},
			Rows:    [][]string{},
		}
	}

	groupLabel := "Group"
	if len(spec.GroupBy) > 0 {
		groupLabel = LabelForDimension(spec.GroupBy[0])
	}
	valueLabel := LabelForAggregation(spec.Aggregation)

	columns := []Column{
		{Key: "group", Label: groupLabel, Type: "text", Align: "left"},
		{Key: "value", Label: valueLabel, Type: "number", Align: "right"},
		{Key: "count", Label: "Count", Type: "number", Align: "center"},
	}

	rows := make([][]string, 0, len(groups))
	var totalValue float64
	var totalCount int

	for _, g := range groups {
		rows = append(rows, []string{
			g.Label,
			fmt.Sprintf("%.1f", g.Value),
			fmt.Sprintf("%d", g.Count),
		})
		totalValue += g.Value
		totalCount += g.Count
	}

	return &TableData{
		Title:   spec.Title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: "Total",
			Values: map[string]string{
				"value": FormatNumber(totalValue, 1),
				"count": FormatInt(totalCount),
			},
		},
	}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
