package render

import (
	"fmt"
	"image"
)

// Figure fractions, measured from the top-left corner.
const (
	titleTop      = 0.02 // top of the dashboard title
	gridTop       = 0.05
	gridBottom    = 0.97
	gridSide      = 0.03
	rowGap        = 0.04
	columnGap     = 0.05
	captionBottom = 0.99 // caption baseline
)

// rowWeights are the relative heights of the three grid rows.
var rowWeights = [3]float64{1, 1, 1.2}

// Layout holds the pixel placement of every panel.
type Layout struct {
	Width   int
	Height  int
	Title   image.Point // top-center of the title text
	Caption image.Point // baseline-center of the caption

	Trend       image.Rectangle // row 1, left
	PositionWAR image.Rectangle // row 1, right
	TopPlayers  image.Rectangle // row 2, left
	Oldest      image.Rectangle // row 2, right
	Summary     image.Rectangle // row 3, full width
}

// NewLayout places the panels on a 3 × 2 grid between the title and caption.
func NewLayout(opts Options) (Layout, error) {
	if err := opts.validate(); err != nil {
		return Layout{}, err
	}
	w, h := opts.Size()
	fw, fh := float64(w), float64(h)

	top := fh * gridTop
	avail := fh*(gridBottom-gridTop) - 2*fh*rowGap
	var total float64
	for _, wt := range rowWeights {
		total += wt
	}

	var rows [3][2]int
	y := top
	for i, wt := range rowWeights {
		height := avail * wt / total
		rows[i] = [2]int{int(y), int(y + height)}
		y += height + fh*rowGap
	}

	left := int(fw * gridSide)
	right := int(fw * (1 - gridSide))
	gap := int(fw * columnGap)
	mid := (left + right) / 2

	l := Layout{
		Width:   w,
		Height:  h,
		Title:   image.Pt(w/2, int(fh*titleTop)),
		Caption: image.Pt(w/2, int(fh*captionBottom)),

		Trend:       image.Rect(left, rows[0][0], mid-gap/2, rows[0][1]),
		PositionWAR: image.Rect(mid+gap/2, rows[0][0], right, rows[0][1]),
		TopPlayers:  image.Rect(left, rows[1][0], mid-gap/2, rows[1][1]),
		Oldest:      image.Rect(mid+gap/2, rows[1][0], right, rows[1][1]),
		Summary:     image.Rect(left, rows[2][0], right, rows[2][1]),
	}

	for _, r := range []image.Rectangle{l.Trend, l.PositionWAR, l.TopPlayers, l.Oldest, l.Summary} {
		if r.Empty() {
			return Layout{}, fmt.Errorf("%w: %dx%d px leaves an empty panel", ErrInvalidLayout, w, h)
		}
	}
	return l, nil
}
