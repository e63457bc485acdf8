// Package console implements the scrollback buffer and viewport engine for an
// in-application developer console: fixed-width line wrapping, an append-only
// history of colored entries, a fixed-size window of visible lines over that
// history, scrolling, and replay of previously submitted commands.
//
// The package is deliberately free of any rendering or input concerns. Hosts
// feed it already-materialized strings and layout parameters (columns and
// rows, derived from the physical viewport and font metrics) and draw the
// visible lines it hands back. All operations are synchronous and the buffer
// assumes a single writer; hosts that append from background tasks must
// serialize those calls themselves.
package console

import "strings"

// Wrap splits text into rendered rows. The text is first split on newline
// characters, preserving empty lines, then every resulting sub-line is cut
// into chunks of at most maxWidth runes. The outer slice has one group per
// sub-line, so a text with k newlines always yields k+1 groups. A sub-line
// shorter than maxWidth yields exactly one chunk, which may be empty.
//
// Concatenating all chunks of a group reconstructs the sub-line exactly;
// wrapping loses nothing but the newline markers themselves.
func Wrap(text string, maxWidth int) ([][]string, error) {
	if maxWidth <= 0 {
		return nil, &ConfigError{Param: "maxWidth", Value: maxWidth}
	}

	sublines := strings.Split(text, "\n")
	groups := make([][]string, 0, len(sublines))
	for _, sub := range sublines {
		groups = append(groups, chunkLine(sub, maxWidth))
	}
	return groups, nil
}

// chunkLine cuts a single newline-free line into rune chunks of at most
// width. An empty line still occupies one rendered row, so it produces a
// single empty chunk rather than no chunks at all.
func chunkLine(line string, width int) []string {
	runes := []rune(line)
	if len(runes) == 0 {
		return []string{""}
	}

	chunks := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
