package layout

import (
	"errors"
	"testing"

	"devconsole/pkg/console"
)

func TestCompute_DerivesColumnsAndRows(t *testing.T) {
	m := Metrics{GlyphWidth: 8, LineHeight: 16}
	p, err := Compute(800, 400, 40, m)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if p.MaxWidth != 100 {
		t.Errorf("MaxWidth = %d, want 100", p.MaxWidth)
	}
	if p.MaxLines != 22 {
		t.Errorf("MaxLines = %d, want 22", p.MaxLines)
	}
}

func TestCompute_PartialGlyphsDoNotCount(t *testing.T) {
	m := Metrics{GlyphWidth: 9, LineHeight: 20}
	p, err := Compute(100, 100, 0, m)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if p.MaxWidth != 11 || p.MaxLines != 5 {
		t.Errorf("params = %+v, want 11 columns and 5 rows", p)
	}
}

func TestCompute_TinyFrameIsConfigError(t *testing.T) {
	m := Metrics{GlyphWidth: 10, LineHeight: 20}
	tests := []struct {
		w, h, reserved float64
	}{
		{5, 400, 0},   // narrower than one glyph
		{400, 30, 20}, // shorter than one row after the reserve
	}
	for _, tt := range tests {
		_, err := Compute(tt.w, tt.h, tt.reserved, m)
		var cfgErr *console.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("Compute(%v, %v) error = %v, want *console.ConfigError", tt.w, tt.h, err)
		}
	}
}

func TestCompute_RejectsBadMetrics(t *testing.T) {
	if _, err := Compute(800, 600, 0, Metrics{GlyphWidth: 0, LineHeight: 16}); err == nil {
		t.Error("zero glyph width accepted")
	}
	if _, err := Compute(800, 600, 0, Metrics{GlyphWidth: 8, LineHeight: -1}); err == nil {
		t.Error("negative line height accepted")
	}
}

func TestFromTerminal_AlwaysUsable(t *testing.T) {
	p := FromTerminal()
	if p.MaxWidth <= 0 || p.MaxLines <= 0 {
		t.Errorf("FromTerminal returned unusable params %+v", p)
	}
}
