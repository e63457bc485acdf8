package ansi

import (
	"image/color"
	"strings"
	"testing"

	gookit "github.com/gookit/color"

	"devconsole/pkg/console"
)

var white = color.RGBA{255, 255, 255, 255}

func TestRenderLines_OldestFirstSkippingEmptySlots(t *testing.T) {
	b, err := console.NewBuffer(10, 4)
	if err != nil {
		t.Fatalf("NewBuffer returned error: %v", err)
	}
	b.Append("first", white)
	b.Append("second", white)

	rows := RenderLines(b.Lines())
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (empty slots skipped)", len(rows))
	}
	if gookit.ClearCode(rows[0]) != "first" || gookit.ClearCode(rows[1]) != "second" {
		t.Errorf("rows = %q, %q; want first, second", gookit.ClearCode(rows[0]), gookit.ClearCode(rows[1]))
	}
}

func TestRenderLines_WrappedRowsKeepOrder(t *testing.T) {
	b, _ := console.NewBuffer(3, 6)
	b.Append("hello\nworld", white)

	rows := RenderLines(b.Lines())
	want := []string{"hel", "lo", "wor", "ld"}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if gookit.ClearCode(rows[i]) != w {
			t.Errorf("row %d = %q, want %q", i, gookit.ClearCode(rows[i]), w)
		}
	}
}

func TestFrame_ContainsPromptAndInfo(t *testing.T) {
	b, _ := console.NewBuffer(10, 2)
	b.Append("out", white)

	frame := Frame(b.Lines(), "csl> ", "typed", "command console")
	plain := gookit.ClearCode(frame)
	for _, want := range []string{"out", "csl> typed", "targeting: command console"} {
		if !strings.Contains(plain, want) {
			t.Errorf("frame missing %q:\n%s", want, plain)
		}
	}
}
