package ebitenui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"devconsole/pkg/engine/layout"
)

const (
	// baseFontSize is the console font size at text scale 1.
	baseFontSize = 14

	// framePadding is the pixel inset between the frame edge and text.
	framePadding = 10

	// lineSpacing is the extra pixel gap between rows, added to the font
	// size to get the row advance.
	lineSpacing = 6
)

// fontSet owns the monospace face the overlay renders with and the glyph
// metrics the layout derives wrap parameters from.
type fontSet struct {
	face       *text.GoTextFace
	size       float64
	glyphWidth float64
}

// newFontSet loads the embedded Go Mono face at the configured scale.
func newFontSet(scale float64) (*fontSet, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenui: loading console font: %w", err)
	}

	size := baseFontSize * scale
	face := &text.GoTextFace{Source: src, Size: size}

	// The face is fixed pitch, so any run of glyphs measures the width of
	// one glyph times its length. Ten digits averages away rounding.
	w, _ := text.Measure("1234567890", face, size+lineSpacing)

	return &fontSet{face: face, size: size, glyphWidth: w / 10}, nil
}

// metrics returns the glyph metrics in the pixel units Draw uses.
func (f *fontSet) metrics() layout.Metrics {
	return layout.Metrics{GlyphWidth: f.glyphWidth, LineHeight: f.size + lineSpacing}
}
