package layout

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultColumns = 80
	DefaultRows    = 24

	// promptRows is how many terminal rows the ANSI host keeps for the
	// entry prompt and the target info line.
	promptRows = 2
)

// FromTerminal returns layout parameters for a terminal-hosted console,
// reserving rows for the prompt. Falls back to an 80x24 terminal when the
// size cannot be determined (not a tty, or an unsupported platform).
func FromTerminal() Params {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= promptRows {
		width, height = DefaultColumns, DefaultRows
	}
	return Params{MaxWidth: width, MaxLines: height - promptRows}
}
