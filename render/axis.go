package render

import (
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
)

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice" numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// 5% margin on both sides
	pad := span * 0.05
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates about n tick marks covering [min, max] using nice increments.
// The first and last ticks may lie just outside the interval.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// Preferred tick steps: 1, 2, 2.5, 5, 10 ... scaled by power of 10
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for i := 0; ; i++ {
		v := start + float64(i)*bestStep
		if v > end+bestStep/2 || len(ticks) > n+2 {
			break
		}
		// snap float drift (0.30000000000000004 → 0.3)
		v = math.Round(v/bestStep) * bestStep
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v, bestStep)})
	}
	return ticks
}

// axisRange fits nice ticks around [lo, hi] and returns the covered range.
// floor, when set, pins the bottom of the range.
func axisRange(lo, hi float64, floor *float64, n int) (float64, float64, []chart.Tick) {
	if floor != nil {
		lo = *floor
		if hi <= lo {
			hi = lo + 1
		}
	}
	a, b := niceAxisBounds(lo, hi)
	if floor != nil {
		a = *floor
	}

	var ticks []chart.Tick
	for _, t := range niceTicks(a, b, n) {
		if t.Value >= a-1e-9 {
			ticks = append(ticks, t)
		}
	}
	if len(ticks) > 0 {
		if last := ticks[len(ticks)-1].Value; last > b {
			b = last
		}
	}
	return a, b, ticks
}

// formatTick prints just enough decimals to tell neighbouring ticks apart.
func formatTick(v, step float64) string {
	if v == 0 {
		return "0"
	}
	decimals := 0
	for s := step; decimals < 3 && math.Abs(s-math.Round(s)) > 1e-9; s *= 10 {
		decimals++
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
