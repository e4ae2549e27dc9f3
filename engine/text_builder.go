package engine

import (
	"regexp"
	"sort"
	"strings"
)

// ============================================================================
// TEXT BUILDER — Produces TextData for summary panels
// ============================================================================
// A text panel reduces one measure to a headline value and resolves its
// reply template into a multi-line body.
// ============================================================================

// BuildText produces text panel data from filtered records.
// extra placeholder values override the computed ones.
func BuildText(spec QuerySpec, view RecordView, measure string, extra map[string]string) *TextData {
	if view.Len() == 0 {
		return &TextData{
			Value: "0",
			Body:  ResolvePlaceholders(spec.Reply, extra),
		}
	}

	aggregation := spec.Aggregation
	if aggregation == "" || aggregation == "list" {
		aggregation = "sum"
	}
	value, err := ScalarAggregate(view, measure, aggregation)
	if err != nil {
		value = SumMeasure(view, measure)
	}

	var formatted string
	if aggregation == "count" {
		formatted = FormatInt(int(value))
	} else {
		formatted = FormatNumber(value, 1)
	}

	values := map[string]string{
		"value": formatted,
		"count": FormatInt(view.Len()),
		"total": FormatNumber(SumMeasure(view, measure), 1),
		"avg":   FormatNumber(AvgMeasure(view, measure), 1),
		"max":   FormatNumber(MaxMeasure(view, measure), 1),
		"min":   FormatNumber(MinMeasure(view, measure), 1),
	}
	for k, v := range extra {
		values[k] = v
	}

	return &TextData{
		Value:    formatted,
		RawValue: value,
		Count:    view.Len(),
		Body:     ResolvePlaceholders(spec.Reply, values),
	}
}

// ============================================================================
// PLACEHOLDER RESOLUTION
// ============================================================================

// ResolvePlaceholders substitutes {key} tokens in template with values[key].
// Tokens with no value are removed; line breaks are preserved.
func ResolvePlaceholders(template string, values map[string]string) string {
	if template == "" {
		return ""
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", values[k])
	}
	result := strings.NewReplacer(pairs...).Replace(template)

	return stripUnresolvedPlaceholders(result)
}

var placeholderRegex = regexp.MustCompile(`\{[a-z_]+\}`)

func stripUnresolvedPlaceholders(text string) string {
	if !placeholderRegex.MatchString(text) {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !placeholderRegex.MatchString(line) {
			continue
		}
		cleaned := placeholderRegex.ReplaceAllString(line, "")
		for strings.Contains(cleaned, "  ") {
			cleaned = strings.ReplaceAll(cleaned, "  ", " ")
		}
		lines[i] = strings.TrimSpace(cleaned)
	}
	return strings.Join(lines, "\n")
}
