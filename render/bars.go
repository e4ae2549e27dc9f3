package render

import (
	"fmt"
	"image"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/spektr-org/rosterboard/engine"
)

// valueLabelOffset lifts each bar's value label above the bar end, in data units.
const valueLabelOffset = 0.1

var axisColor = drawing.ColorBlack

// valueLabel formats a bar's value annotation to one decimal.
func valueLabel(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// drawBars draws a vertical bar chart of the first series in r.
// Bars keep series order; negative values extend below zero.
func drawBars(c *canvas, r image.Rectangle, cfg *engine.ChartConfig) {
	content := panelTitle(c, r, cfg.Title)
	points := cfg.Series[0].Data

	tick := textStyle{variant: regular, size: axisLabelSize, color: black}
	_, textH := c.measure("0", tick)
	gap := c.px(4)

	lo, hi := 0.0, 0.0
	for _, p := range points {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}
	// room for the labels above the tallest bar
	hi += valueLabelOffset + (hi-lo)*0.08
	yMin, yMax, ticks := axisRange(lo, hi, nil, 6)

	var labelW int
	for _, t := range ticks {
		if w, _ := c.measure(t.Label, tick); w > labelW {
			labelW = w
		}
	}

	plot := image.Rect(
		content.Min.X+textH+gap*2+labelW+gap,
		content.Min.Y+gap,
		content.Max.X-gap,
		content.Max.Y-(textH+gap)*2-gap,
	)
	if plot.Empty() {
		return
	}

	yPix := func(v float64) int {
		return plot.Max.Y - int(math.Round((v-yMin)/(yMax-yMin)*float64(plot.Dy())))
	}
	line := c.px(0.8)

	// y ticks and labels
	for _, t := range ticks {
		y := yPix(t.Value)
		c.fill(image.Rect(plot.Min.X-c.px(3.5), y, plot.Min.X, y+line), axisColor)
		c.text(t.Label, plot.Min.X-c.px(3.5)-gap, y, textStyle{variant: regular, size: axisLabelSize, color: black, halign: alignEnd, valign: alignCenter})
	}

	// bars, category labels and value annotations
	color := parseColor(cfg.Series[0].Color)
	slot := float64(plot.Dx()) / float64(len(points))
	for i, p := range points {
		center := plot.Min.X + int(slot*(float64(i)+0.5))
		half := int(slot * 0.4)

		y0, y1 := yPix(0), yPix(p.Value)
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		c.fill(image.Rect(center-half, y0, center+half, y1), color)

		c.fill(image.Rect(center, plot.Max.Y, center+line, plot.Max.Y+c.px(3.5)), axisColor)
		c.text(p.Label, center, plot.Max.Y+c.px(3.5)+gap, textStyle{variant: regular, size: axisLabelSize, color: black, halign: alignCenter, valign: alignStart})

		if cfg.ShowValues {
			c.text(valueLabel(p.Value), center, yPix(p.Value+valueLabelOffset), textStyle{variant: regular, size: axisLabelSize, color: black, halign: alignCenter, valign: alignEnd})
		}
	}

	c.border(plot.Inset(-line), line, axisColor)

	// axis names
	name := textStyle{variant: regular, size: axisLabelSize, color: black, halign: alignCenter, valign: alignEnd}
	c.text(cfg.XAxis, plot.Min.X+plot.Dx()/2, content.Max.Y, name)
	c.verticalText(cfg.YAxis, content.Min.X+textH/2, plot.Min.Y+plot.Dy()/2, name)
}
