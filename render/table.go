package render

import (
	"image"

	"github.com/spektr-org/rosterboard/engine"
)

// Body rows alternate white (odd) and gold (even), counted from 1.
var (
	tableHeaderFill = black
	tableEvenFill   = parseColor("#FDB827")
	tableOddFill    = white
)

// rowScale stretches rows beyond the text height.
const rowScale = 1.5

// drawTable draws the table centered in r with its title just above it.
// Columns share the panel width equally; cells are centered.
func drawTable(c *canvas, r image.Rectangle, t *engine.TableData) {
	header := textStyle{variant: bold, size: tableSize, color: white, halign: alignCenter, valign: alignCenter}
	body := textStyle{variant: regular, size: tableSize, color: black, halign: alignCenter, valign: alignCenter}
	titleStyle := textStyle{variant: regular, size: panelTitleSize, color: black, halign: alignCenter, valign: alignEnd}

	cols := len(t.Columns)
	if cols == 0 {
		return
	}
	rowH := int(float64(c.lineHeight(body)) * rowScale * 1.3)
	tableH := rowH * (len(t.Rows) + 1)
	top := r.Min.Y + (r.Dy()-tableH)/2
	if minTop := r.Min.Y + c.lineHeight(titleStyle) + c.px(6); top < minTop {
		top = minTop
	}
	line := c.px(0.5)

	c.text(t.Title, r.Min.X+r.Dx()/2, top-c.px(6), titleStyle)

	cell := func(row, col int) image.Rectangle {
		x0 := r.Min.X + r.Dx()*col/cols
		x1 := r.Min.X + r.Dx()*(col+1)/cols
		y0 := top + row*rowH
		return image.Rect(x0, y0, x1, y0+rowH)
	}

	for j, col := range t.Columns {
		rc := cell(0, j)
		c.fill(rc, tableHeaderFill)
		c.border(rc, line, black)
		c.text(col.Label, rc.Min.X+rc.Dx()/2, rc.Min.Y+rc.Dy()/2, header)
	}
	for i, row := range t.Rows {
		fill := tableOddFill
		if (i+1)%2 == 0 {
			fill = tableEvenFill
		}
		for j := 0; j < cols && j < len(row); j++ {
			rc := cell(i+1, j)
			c.fill(rc, fill)
			c.border(rc, line, black)
			c.text(row[j], rc.Min.X+rc.Dx()/2, rc.Min.Y+rc.Dy()/2, body)
		}
	}
}
