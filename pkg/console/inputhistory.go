package console

// InputHistory is the linear cursor over previously submitted input lines,
// used to replay prior commands into an entry field with the up and down
// keys. It is independent of the scrollback: submitted commands are recorded
// here even when their echo never reached the output buffer.
//
// The cursor is -1 when the user is not browsing. Older moves the cursor
// toward the first submitted command, Newer back toward fresh input. Both
// are no-ops at their boundary and never fail.
type InputHistory struct {
	entries []string
	cursor  int
}

// NewInputHistory returns an empty navigator with the cursor parked at -1.
func NewInputHistory() *InputHistory {
	return &InputHistory{cursor: -1}
}

// Record appends a submitted input line. Empty submissions are not recorded.
func (h *InputHistory) Record(raw string) {
	if raw == "" {
		return
	}
	h.entries = append(h.entries, raw)
}

// Len returns the number of recorded lines.
func (h *InputHistory) Len() int {
	return len(h.entries)
}

// Browsing reports whether the cursor has left the fresh-input position.
func (h *InputHistory) Browsing() bool {
	return h.cursor >= 0
}

// Older moves the cursor one step toward the oldest command and returns the
// line at the new position, most recent command first. At the oldest command
// the cursor stays put and the same line is returned again.
func (h *InputHistory) Older() string {
	if h.cursor < len(h.entries)-1 {
		h.cursor++
	}
	if h.cursor < 0 {
		return ""
	}
	return h.entries[len(h.entries)-1-h.cursor]
}

// Newer moves the cursor one step back toward fresh input and returns the
// line at the new position, or the empty string once the cursor reaches -1.
// Called while not browsing it stays at -1 and returns "".
func (h *InputHistory) Newer() string {
	if h.cursor >= 0 {
		h.cursor--
	}
	if h.cursor < 0 {
		return ""
	}
	return h.entries[len(h.entries)-1-h.cursor]
}

// Reset parks the cursor at fresh input. Called on every successful
// submission.
func (h *InputHistory) Reset() {
	h.cursor = -1
}
