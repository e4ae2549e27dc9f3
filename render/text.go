package render

import (
	"image"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Font sizes, in points.
const (
	titleSize        = 24
	panelTitleSize   = 16
	summarySize      = 14
	tableSize        = 12
	axisLabelSize    = 10
	captionSize      = 10
	summaryBoxRadius = 10 // points
)

var (
	black       = drawing.ColorBlack
	white       = drawing.ColorWhite
	summaryFill = flatten(drawing.ColorFromHex("F9F9F9").WithAlpha(204))
	summaryEdge = flatten(drawing.ColorBlack.WithAlpha(204))
)

// panelTitle writes a centered panel heading and returns the area below it.
func panelTitle(c *canvas, r image.Rectangle, title string) image.Rectangle {
	st := textStyle{variant: regular, size: panelTitleSize, color: black, halign: alignCenter, valign: alignStart}
	c.text(title, r.Min.X+r.Dx()/2, r.Min.Y, st)
	top := r.Min.Y + c.lineHeight(st) + c.px(6)
	if top >= r.Max.Y {
		top = r.Max.Y - 1
	}
	return image.Rect(r.Min.X, top, r.Max.X, r.Max.Y)
}

// drawTitle writes the dashboard heading with its top edge at p.
func drawTitle(c *canvas, p image.Point, title string) {
	c.text(title, p.X, p.Y, textStyle{variant: regular, size: titleSize, color: black, halign: alignCenter, valign: alignStart})
}

// drawCaption writes the italic attribution line with its baseline at p.
func drawCaption(c *canvas, p image.Point, caption string) {
	if caption == "" {
		return
	}
	c.text(caption, p.X, p.Y, textStyle{variant: italic, size: captionSize, color: black, halign: alignCenter, valign: alignBaseline})
}

// drawSummary centers the narrative in a rounded box within r.
// Each line is centered on its own.
func drawSummary(c *canvas, r image.Rectangle, summary string) {
	lines := strings.Split(summary, "\n")
	st := textStyle{variant: regular, size: summarySize, color: black, halign: alignCenter, valign: alignStart}
	lh := c.lineHeight(st)

	var width int
	for _, line := range lines {
		if w, _ := c.measure(line, st); w > width {
			width = w
		}
	}
	height := lh * len(lines)

	pad := c.px(0.3 * summarySize)
	cx, cy := r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2
	box := image.Rect(cx-width/2-pad, cy-height/2-pad, cx+width/2+pad, cy+height/2+pad)
	c.roundedBox(box, c.px(summaryBoxRadius), c.px(1), summaryFill, summaryEdge)

	y := cy - height/2
	for _, line := range lines {
		c.text(line, cx, y, st)
		y += lh
	}
}
