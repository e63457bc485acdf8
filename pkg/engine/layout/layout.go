// Package layout derives the console buffer's wrap width and row capacity
// from physical viewport dimensions and font glyph metrics. The buffer never
// measures anything itself; hosts recompute these parameters on every resize
// or font change and pass them in through Reconfigure.
package layout

import (
	"fmt"

	"devconsole/pkg/console"
)

// Metrics describes the fixed-pitch font the host renders the console with,
// in the same pixel units as the frame dimensions.
type Metrics struct {
	GlyphWidth float64
	LineHeight float64
}

// Params are the two layout inputs the console buffer consumes.
type Params struct {
	MaxWidth int
	MaxLines int
}

// Compute derives layout parameters from the console frame's pixel size.
// reservedPx is the height set aside at the bottom of the frame for the
// entry field and info row; scrollback rows fill the rest. A frame too small
// to fit a single character or row is a console.ConfigError.
func Compute(frameW, frameH, reservedPx float64, m Metrics) (Params, error) {
	if m.GlyphWidth <= 0 || m.LineHeight <= 0 {
		return Params{}, fmt.Errorf("layout: font metrics must be positive, got glyph width %v line height %v",
			m.GlyphWidth, m.LineHeight)
	}

	maxWidth := int(frameW / m.GlyphWidth)
	maxLines := int((frameH - reservedPx) / m.LineHeight)

	if maxWidth <= 0 {
		return Params{}, &console.ConfigError{Param: "maxWidth", Value: maxWidth}
	}
	if maxLines <= 0 {
		return Params{}, &console.ConfigError{Param: "maxLines", Value: maxLines}
	}
	return Params{MaxWidth: maxWidth, MaxLines: maxLines}, nil
}
