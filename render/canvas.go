package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type align int

const (
	alignStart align = iota // left, or top
	alignCenter
	alignEnd // right, or bottom
	alignBaseline
)

// textStyle describes how one run of text is drawn.
type textStyle struct {
	variant fontVariant
	size    float64 // points
	color   color.Color
	halign  align
	valign  align
}

// canvas is a white RGBA image with point-to-pixel conversion and text helpers.
type canvas struct {
	img   *image.RGBA
	dpi   float64
	fonts *fontSet
}

func newCanvas(w, h int, dpi float64, fonts *fontSet) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &canvas{img: img, dpi: dpi, fonts: fonts}
}

// px converts points to whole pixels, never less than one.
func (c *canvas) px(pt float64) int {
	v := int(math.Round(pt * c.dpi / 72))
	if v < 1 {
		return 1
	}
	return v
}

func (c *canvas) fill(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// border draws a frame of the given width inside r.
func (c *canvas) border(r image.Rectangle, width int, col color.Color) {
	c.fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), col)
	c.fill(image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), col)
	c.fill(image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), col)
	c.fill(image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), col)
}

// fillRounded fills r with corners of the given radius cut away.
func (c *canvas) fillRounded(r image.Rectangle, radius int, col color.Color) {
	if limit := min(r.Dx(), r.Dy()) / 2; radius > limit {
		radius = limit
	}
	src := image.NewUniform(col)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dy := 0
		switch {
		case y < r.Min.Y+radius:
			dy = r.Min.Y + radius - y
		case y >= r.Max.Y-radius:
			dy = y - (r.Max.Y - radius - 1)
		}
		inset := 0
		if dy > 0 {
			inset = radius - int(math.Sqrt(float64(radius*radius-dy*dy)))
		}
		draw.Draw(c.img, image.Rect(r.Min.X+inset, y, r.Max.X-inset, y+1), src, image.Point{}, draw.Over)
	}
}

// roundedBox draws an opaque rounded box with an outline of the given width.
func (c *canvas) roundedBox(r image.Rectangle, radius, width int, fill, stroke color.Color) {
	c.fillRounded(r, radius, stroke)
	c.fillRounded(r.Inset(width), radius-width, fill)
}

func (c *canvas) drawImage(img image.Image, r image.Rectangle) {
	draw.Draw(c.img, r, img, img.Bounds().Min, draw.Over)
}

// measure returns the advance width and the ascent+descent height of s.
func (c *canvas) measure(s string, st textStyle) (int, int) {
	face := c.fonts.face(st.variant, st.size)
	m := face.Metrics()
	return font.MeasureString(face, s).Ceil(), m.Ascent.Ceil() + m.Descent.Ceil()
}

// lineHeight is 1.2 × the font size, in pixels.
func (c *canvas) lineHeight(st textStyle) int {
	return int(math.Round(st.size * 1.2 * c.dpi / 72))
}

// text draws s anchored at (x, y) according to the style's alignment.
func (c *canvas) text(s string, x, y int, st textStyle) {
	face := c.fonts.face(st.variant, st.size)
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	w := font.MeasureString(face, s).Ceil()

	switch st.halign {
	case alignCenter:
		x -= w / 2
	case alignEnd:
		x -= w
	}

	baseline := y
	switch st.valign {
	case alignStart:
		baseline = y + ascent
	case alignCenter:
		baseline = y + (ascent-descent)/2
	case alignEnd:
		baseline = y - descent
	}

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(st.color),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// verticalText draws s rotated a quarter turn counter-clockwise, centered on (x, y).
func (c *canvas) verticalText(s string, x, y int, st textStyle) {
	w, h := c.measure(s, st)
	if w == 0 || h == 0 {
		return
	}
	flat := &canvas{img: image.NewRGBA(image.Rect(0, 0, w, h)), dpi: c.dpi, fonts: c.fonts}
	st.halign, st.valign = alignStart, alignStart
	flat.text(s, 0, 0, st)

	rotated := image.NewRGBA(image.Rect(0, 0, h, w))
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			rotated.Set(py, w-1-px, flat.img.At(px, py))
		}
	}
	c.drawImage(rotated, image.Rect(x-h/2, y-w/2, x-h/2+h, y-w/2+w))
}

// parseColor reads "#RRGGBB" into a go-chart color.
func parseColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// flatten composites a translucent color over white.
func flatten(c drawing.Color) drawing.Color {
	a := float64(c.A) / 255
	mix := func(v uint8) uint8 { return uint8(math.Round(float64(v)*a + 255*(1-a))) }
	return drawing.Color{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: 255}
}
