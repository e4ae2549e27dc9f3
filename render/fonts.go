package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

type fontVariant int

const (
	regular fontVariant = iota
	bold
	italic
)

type faceKey struct {
	variant fontVariant
	size    float64
}

// fontSet holds the parsed Go fonts and caches faces by variant and size.
type fontSet struct {
	dpi   float64
	fonts map[fontVariant]*truetype.Font
	faces map[faceKey]font.Face
}

func loadFonts(dpi float64) (*fontSet, error) {
	sources := map[fontVariant][]byte{
		regular: goregular.TTF,
		bold:    gobold.TTF,
		italic:  goitalic.TTF,
	}
	fs := &fontSet{
		dpi:   dpi,
		fonts: make(map[fontVariant]*truetype.Font, len(sources)),
		faces: make(map[faceKey]font.Face),
	}
	for v, ttf := range sources {
		f, err := truetype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse font %d: %w", v, err)
		}
		fs.fonts[v] = f
	}
	return fs, nil
}

// face returns a face for size in points at the set's DPI.
func (fs *fontSet) face(v fontVariant, size float64) font.Face {
	key := faceKey{variant: v, size: size}
	if f, ok := fs.faces[key]; ok {
		return f
	}
	f := truetype.NewFace(fs.fonts[v], &truetype.Options{
		Size:    size,
		DPI:     fs.dpi,
		Hinting: font.HintingFull,
	})
	fs.faces[key] = f
	return f
}
