package engine

import (
	"strings"
)

// ============================================================================
// FILTERS — Dimension allow-lists and row predicates via RecordView
// ============================================================================
// Single-pass filters. Each returns a SubView (index list into parent),
// zero data copy.
// ============================================================================

// Predicate reports whether row i of a view matches.
type Predicate func(view RecordView, i int) bool

// ApplyFilters returns a view of records matching all dimension filters.
// Dimensions are AND-combined; values within a dimension are OR-combined.
// Empty filter = no restriction (returns original view).
func ApplyFilters(view RecordView, filters Filters) RecordView {
	if filters.IsEmpty() {
		return view
	}

	// Pre-build lowercase lookup sets for each dimension filter
	sets := make(map[string]map[string]bool)
	for dim, allowed := range filters.Dimensions {
		if len(allowed) > 0 {
			sets[dim] = toLowerSet(allowed)
		}
	}

	return Where(view, func(v RecordView, i int) bool {
		for dim, set := range sets {
			if !set[strings.ToLower(v.Dimension(i, dim))] {
				return false
			}
		}
		return true
	})
}

// Where returns a view of the rows matching pred, in input order.
func Where(view RecordView, pred Predicate) RecordView {
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if pred(view, i) {
			indices = append(indices, i)
		}
	}
	return newSubView(view, indices)
}

// ============================================================================
// PREDICATES
// ============================================================================

// MeasureBelow matches rows whose measure is strictly less than limit.
func MeasureBelow(key string, limit float64) Predicate {
	return func(v RecordView, i int) bool {
		return v.Measure(i, key) < limit
	}
}

// DimensionIn matches rows whose dimension equals one of values exactly.
func DimensionIn(key string, values ...string) Predicate {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return func(v RecordView, i int) bool {
		return set[v.Dimension(i, key)]
	}
}

// Not inverts a predicate.
func Not(pred Predicate) Predicate {
	return func(v RecordView, i int) bool {
		return !pred(v, i)
	}
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
