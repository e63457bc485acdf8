// Package ansi renders console viewport snapshots as truecolor terminal
// lines. It is a thin, stateless host: callers own the buffer, the prompt
// and the input loop; this package only turns visible lines into styled
// strings.
package ansi

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"devconsole/pkg/console"
)

var (
	stylePrompt = color.Style{color.FgWhite, color.OpBold}
	styleInfo   = color.Style{color.FgCyan}
)

// RenderLines converts a viewport snapshot into printable rows, oldest at
// the top. Empty slots are skipped so short histories do not print blank
// padding.
func RenderLines(lines []console.VisibleLine) []string {
	out := make([]string, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if line.EntryIndex < 0 {
			continue
		}
		c := line.Color
		out = append(out, color.RGB(c.R, c.G, c.B).Sprint(line.Text))
	}
	return out
}

// RenderPrompt styles the prompt keyword and pending input as one row.
func RenderPrompt(prompt, input string) string {
	return stylePrompt.Sprint(prompt) + input
}

// RenderInfo styles the "targeting:" info row shown under the prompt.
func RenderInfo(description string) string {
	return styleInfo.Sprint("targeting: " + description)
}

// Frame assembles a full console frame: scrollback rows, prompt row and
// info row, joined with newlines for a single write.
func Frame(lines []console.VisibleLine, prompt, input, description string) string {
	var b strings.Builder
	for _, row := range RenderLines(lines) {
		fmt.Fprintln(&b, row)
	}
	fmt.Fprintln(&b, RenderPrompt(prompt, input))
	b.WriteString(RenderInfo(description))
	return b.String()
}
