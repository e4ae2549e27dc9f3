package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ============================================================================
// AGGREGATORS — Grouping, Aggregation, Ranking via RecordView
// ============================================================================
// All functions operate on RecordView and are free of side effects.
// Grouping and ranking produce SubViews (index lists into parent view).
// ============================================================================

// ErrUnknownAggregation is returned for an aggregation op the engine lacks.
var ErrUnknownAggregation = errors.New("unknown aggregation")

// GroupAndAggregate is the main entry point for the aggregation pipeline.
// Pipeline: group → aggregate → sort → limit.
// Aggregation "none" keeps one group per row, labelled by groupBy[0] and
// valued by the row's measure, so repeated labels stay separate points.
func GroupAndAggregate(
	view RecordView,
	groupBy []string,
	measure string,
	aggregation string,
	sortBy string,
	limit int,
) []Group {
	if view.Len() == 0 {
		return nil
	}

	// 1. Group
	var groups []Group
	if aggregation == "none" {
		groups = groupByRow(view, groupBy)
	} else if len(groupBy) == 0 {
		groups = []Group{{
			Key:   "all",
			Label: "Total",
			View:  view,
		}}
	} else {
		groups = groupBySingle(view, groupBy[0])
	}

	// 2. Aggregate
	for i := range groups {
		aggregateGroup(&groups[i], measure, aggregation)
	}

	// 3. Sort
	SortGroups(groups, sortBy)

	// 4. Limit
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}

	return groups
}

// ============================================================================
// GROUPING
// ============================================================================

// groupBySingle keeps groups in first-seen order.
func groupBySingle(view RecordView, dimension string) []Group {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		key := view.Dimension(i, dimension)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], i)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{
			Key:   key,
			Label: key,
			View:  newSubView(view, grouped[key]),
		})
	}
	return groups
}

// groupByRow makes a single-row group for every row, in view order.
func groupByRow(view RecordView, groupBy []string) []Group {
	groups := make([]Group, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		label := fmt.Sprintf("%d", i+1)
		if len(groupBy) > 0 {
			label = view.Dimension(i, groupBy[0])
		}
		groups = append(groups, Group{
			Key:   label,
			Label: label,
			View:  newSubView(view, []int{i}),
		})
	}
	return groups
}

// SumByGroup maps each distinct groupKey value to the sum of valueKey.
func SumByGroup(view RecordView, groupKey, valueKey string) map[string]float64 {
	totals := make(map[string]float64)
	for i := 0; i < view.Len(); i++ {
		totals[view.Dimension(i, groupKey)] += view.Measure(i, valueKey)
	}
	return totals
}

// ============================================================================
// RANKING
// ============================================================================

// TopN returns the n rows with the largest (descending) or smallest sortKey.
// The sort is stable: tied rows keep their input order.
// n <= 0 yields an empty view; n larger than the view yields every row.
func TopN(view RecordView, sortKey string, n int, descending bool) RecordView {
	if n <= 0 {
		return newSubView(view, nil)
	}

	indices := make([]int, view.Len())
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		va := view.Measure(indices[a], sortKey)
		vb := view.Measure(indices[b], sortKey)
		if descending {
			return va > vb
		}
		return va < vb
	})

	if n < len(indices) {
		indices = indices[:n]
	}
	return newSubView(view, indices)
}

// ============================================================================
// AGGREGATION
// ============================================================================

func aggregateGroup(group *Group, measure string, aggregation string) {
	group.Count = group.View.Len()
	if group.Count == 0 {
		return
	}

	switch aggregation {
	case "count":
		group.Value = float64(group.Count)
	case "none":
		group.Value = SumMeasure(group.View, measure)
	default:
		v, err := ScalarAggregate(group.View, measure, aggregation)
		if err != nil {
			v = SumMeasure(group.View, measure)
		}
		group.Value = v
	}
}

// ScalarAggregate reduces one measure over the whole view.
// Supported ops: "sum", "mean" (alias "avg"), "max", "min", "count".
func ScalarAggregate(view RecordView, valueKey string, op string) (float64, error) {
	switch op {
	case "sum":
		return SumMeasure(view, valueKey), nil
	case "mean", "avg":
		return AvgMeasure(view, valueKey), nil
	case "max":
		return MaxMeasure(view, valueKey), nil
	case "min":
		return MinMeasure(view, valueKey), nil
	case "count":
		return float64(view.Len()), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAggregation, op)
}

// FilterSum sums valueKey over the rows matching pred.
func FilterSum(view RecordView, pred Predicate, valueKey string) float64 {
	var total float64
	for i := 0; i < view.Len(); i++ {
		if pred(view, i) {
			total += view.Measure(i, valueKey)
		}
	}
	return total
}

// SumMeasure sums a named measure across a view.
func SumMeasure(view RecordView, measure string) float64 {
	var total float64
	for i := 0; i < view.Len(); i++ {
		total += view.Measure(i, measure)
	}
	return total
}

// AvgMeasure computes average of a named measure.
func AvgMeasure(view RecordView, measure string) float64 {
	n := view.Len()
	if n == 0 {
		return 0
	}
	return SumMeasure(view, measure) / float64(n)
}

// MaxMeasure returns the largest value of a named measure.
func MaxMeasure(view RecordView, measure string) float64 {
	n := view.Len()
	if n == 0 {
		return 0
	}
	m := math.Inf(-1)
	for i := 0; i < n; i++ {
		if v := view.Measure(i, measure); v > m {
			m = v
		}
	}
	return m
}

// MinMeasure returns the smallest value of a named measure.
func MinMeasure(view RecordView, measure string) float64 {
	n := view.Len()
	if n == 0 {
		return 0
	}
	m := math.Inf(1)
	for i := 0; i < n; i++ {
		if v := view.Measure(i, measure); v < m {
			m = v
		}
	}
	return m
}

// ============================================================================
// SORTING
// ============================================================================

// SortGroups sorts aggregate groups by the specified sort mode.
// Sorting is stable; an empty mode keeps grouping (first-seen) order.
func SortGroups(groups []Group, sortBy string) {
	switch sortBy {
	case "value_desc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
	case "value_asc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value < groups[j].Value })
	case "label_asc", "alpha_asc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	case "label_desc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key > groups[j].Key })
	default:
		// preserve grouping order
	}
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

var printer = message.NewPrinter(language.English)

// FormatNumber formats v with thousands separators and fixed decimals.
func FormatNumber(v float64, decimals int) string {
	return printer.Sprint(number.Decimal(v, number.Scale(decimals)))
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatValue renders a measure the way a table cell shows it: integers
// without decimals, other values in their shortest exact form.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// LabelForDimension returns a capitalized label for a key.
// Known stat acronyms such as "war" are upper-cased.
func LabelForDimension(dimension string) string {
	if len(dimension) == 0 {
		return ""
	}
	if acronyms[dimension] {
		return strings.ToUpper(dimension)
	}
	return strings.ToUpper(dimension[:1]) + dimension[1:]
}

var acronyms = map[string]bool{"war": true, "era": true, "ops": true}

// LabelForAggregation returns a human-readable label for an aggregation type.
func LabelForAggregation(aggregation string) string {
	switch aggregation {
	case "sum":
		return "Total"
	case "count":
		return "Count"
	case "mean", "avg":
		return "Average"
	case "max":
		return "Maximum"
	case "min":
		return "Minimum"
	default:
		return "Value"
	}
}
