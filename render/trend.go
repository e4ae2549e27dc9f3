package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/spektr-org/rosterboard/engine"
)

var gridColor = drawing.ColorFromHex("B0B0B0")

// drawTrend renders a line chart with go-chart and composites it into r.
// The value axis name is drawn on the canvas in a strip left of the chart.
func drawTrend(c *canvas, r image.Rectangle, cfg *engine.ChartConfig) error {
	content := panelTitle(c, r, cfg.Title)
	name := textStyle{variant: regular, size: axisLabelSize, color: black}
	_, textH := c.measure("0", name)
	gap := c.px(4)

	plot := content
	if cfg.YAxis != "" {
		plot.Min.X += textH + gap
	}
	if plot.Empty() {
		return fmt.Errorf("%w: trend panel is %dx%d px", ErrInvalidLayout, plot.Dx(), plot.Dy())
	}
	img, err := lineChart(cfg, plot.Dx(), plot.Dy(), c.dpi, c.fonts.fonts[regular])
	if err != nil {
		return err
	}
	c.drawImage(img, plot)
	c.verticalText(cfg.YAxis, content.Min.X+textH/2, plot.Min.Y+plot.Dy()/2, name)
	return nil
}

// lineChart plots the first series against its category labels. The value
// axis ticks sit on the left; reference lines are dashed and span the full
// width. The axis name is left to the caller.
func lineChart(cfg *engine.ChartConfig, width, height int, dpi float64, f *truetype.Font) (image.Image, error) {
	pt := func(v float64) float64 { return v * dpi / 72 }
	points := cfg.Series[0].Data
	n := len(points)

	xs := make([]float64, n)
	ys := make([]float64, n)
	xTicks := make([]chart.Tick, 0, n)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		xs[i] = float64(i)
		ys[i] = p.Value
		xTicks = append(xTicks, chart.Tick{Value: float64(i), Label: p.Label})
		lo, hi = math.Min(lo, p.Value), math.Max(hi, p.Value)
	}
	for _, ref := range cfg.ReferenceLines {
		lo, hi = math.Min(lo, ref.Value), math.Max(hi, ref.Value)
	}
	yMin, yMax, yTicks := axisRange(lo, hi, cfg.YFloor, 6)

	// A single season still needs a non-zero x span.
	xMin, xMax := -0.5, float64(n)-0.5
	if n == 1 {
		xs = []float64{0, 0}
		ys = []float64{ys[0], ys[0]}
	}

	color := parseColor(cfg.Series[0].Color)
	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    cfg.Series[0].Name,
			YAxis:   chart.YAxisSecondary,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: pt(2),
				DotColor:    color,
				DotWidth:    pt(3),
			},
		},
	}
	for _, ref := range cfg.ReferenceLines {
		series = append(series, chart.ContinuousSeries{
			Name:    ref.Label,
			YAxis:   chart.YAxisSecondary,
			XValues: []float64{xMin, xMax},
			YValues: []float64{ref.Value, ref.Value},
			Style: chart.Style{
				StrokeColor:     parseColor(ref.Color).WithAlpha(178),
				StrokeWidth:     pt(1.5),
				StrokeDashArray: []float64{pt(5), pt(3)},
			},
		})
	}

	grid := chart.Style{StrokeColor: gridColor.WithAlpha(77), StrokeWidth: pt(0.8)}

	ch := chart.Chart{
		Width:  width,
		Height: height,
		DPI:    dpi,
		Font:   f,
		Background: chart.Style{
			Padding: chart.Box{Top: int(pt(6)), Left: int(pt(6)), Right: int(pt(12)), Bottom: int(pt(6))},
		},
		XAxis: chart.XAxis{
			Name:           cfg.XAxis,
			Ticks:          xTicks,
			Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
			GridMajorStyle: grid,
		},
		// go-chart bounds the secondary axis from the primary axis's ticks,
		// so the hidden primary axis carries the same ticks and its own range.
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Ticks: yTicks,
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
		},
		YAxisSecondary: chart.YAxis{
			Ticks:          yTicks,
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			GridMajorStyle: grid,
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("line chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode line chart: %w", err)
	}
	return img, nil
}
