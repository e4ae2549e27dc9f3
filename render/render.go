package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/spektr-org/rosterboard/dashboard"
	"github.com/spektr-org/rosterboard/logger"
)

// ErrInvalidLayout is returned when the canvas cannot be laid out.
var ErrInvalidLayout = errors.New("invalid layout")

// maxCanvasPixels bounds the RGBA buffer (4 bytes per pixel).
const maxCanvasPixels = 120_000_000

// Options size the figure. Pixel dimensions are inches × DPI.
type Options struct {
	WidthInches  float64
	HeightInches float64
	DPI          float64
}

// DefaultOptions is a 20 × 16 inch figure at 300 DPI (6000 × 4800 px).
func DefaultOptions() Options {
	return Options{
		WidthInches:  20,
		HeightInches: 16,
		DPI:          300,
	}
}

// Size returns the canvas size in pixels.
func (o Options) Size() (int, int) {
	return int(o.WidthInches * o.DPI), int(o.HeightInches * o.DPI)
}

func (o Options) validate() error {
	if o.DPI <= 0 {
		return fmt.Errorf("%w: dpi must be positive, got %v", ErrInvalidLayout, o.DPI)
	}
	if o.WidthInches <= 0 || o.HeightInches <= 0 {
		return fmt.Errorf("%w: figure size must be positive, got %vx%v in", ErrInvalidLayout, o.WidthInches, o.HeightInches)
	}
	w, h := o.Size()
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: figure rounds to %dx%d px", ErrInvalidLayout, w, h)
	}
	if w*h > maxCanvasPixels {
		return fmt.Errorf("%w: %dx%d px exceeds the canvas limit", ErrInvalidLayout, w, h)
	}
	return nil
}

// Image draws every panel of d onto one RGBA canvas.
func Image(d *dashboard.Dashboard, opts Options) (*image.RGBA, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := checkPanels(d); err != nil {
		return nil, err
	}

	layout, err := NewLayout(opts)
	if err != nil {
		return nil, err
	}
	fonts, err := loadFonts(opts.DPI)
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	c := newCanvas(layout.Width, layout.Height, opts.DPI, fonts)
	log := logger.GetLogger().WithComponent("render")

	panels := []struct {
		name string
		draw func() error
	}{
		{"title", func() error { drawTitle(c, layout.Title, d.Title); return nil }},
		{"trend", func() error { return drawTrend(c, layout.Trend, d.Trend) }},
		{"position_war", func() error { drawBars(c, layout.PositionWAR, d.PositionWAR); return nil }},
		{"top_players", func() error { drawTable(c, layout.TopPlayers, d.TopPlayers); return nil }},
		{"oldest", func() error { drawTable(c, layout.Oldest, d.Oldest); return nil }},
		{"summary", func() error { drawSummary(c, layout.Summary, d.Summary); return nil }},
		{"caption", func() error { drawCaption(c, layout.Caption, d.Caption); return nil }},
	}
	for _, p := range panels {
		start := time.Now()
		if err := p.draw(); err != nil {
			return nil, fmt.Errorf("draw %s panel: %w", p.name, err)
		}
		logger.LogPerformanceEntry(log, "render", p.name, time.Since(start), nil)
	}

	return c.img, nil
}

// Render encodes the dashboard as PNG to w.
func Render(d *dashboard.Dashboard, w io.Writer, opts Options) error {
	img, err := Image(d, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// RenderFile writes the dashboard PNG to path, replacing any existing file.
// Nothing is written when rendering fails.
func RenderFile(d *dashboard.Dashboard, path string, opts Options) error {
	var buf bytes.Buffer
	if err := Render(d, &buf, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func checkPanels(d *dashboard.Dashboard) error {
	switch {
	case d == nil:
		return fmt.Errorf("%w: no dashboard", ErrInvalidLayout)
	case d.Trend == nil || len(d.Trend.Series) == 0 || len(d.Trend.Series[0].Data) == 0:
		return fmt.Errorf("%w: trend panel has no data", ErrInvalidLayout)
	case d.PositionWAR == nil || len(d.PositionWAR.Series) == 0 || len(d.PositionWAR.Series[0].Data) == 0:
		return fmt.Errorf("%w: position panel has no data", ErrInvalidLayout)
	case d.TopPlayers == nil || d.Oldest == nil:
		return fmt.Errorf("%w: table panel missing", ErrInvalidLayout)
	}
	return nil
}
