package console

import "image/color"

// ScrollDirection selects which way the window moves over the history.
type ScrollDirection int

const (
	// ScrollOlder moves the window toward older history.
	ScrollOlder ScrollDirection = iota
	// ScrollNewer moves the window back toward the newest content.
	ScrollNewer
)

// EmitMode tags the two output modes of Emit.
type EmitMode int

const (
	// ModeAppend stores the text as a new entry.
	ModeAppend EmitMode = iota
	// ModeReplaceLast overwrites the most recent entry in place.
	ModeReplaceLast
)

// Buffer ties the history store, the viewport and the scroll position
// together behind the public console API. Layout parameters are injected at
// construction and on Reconfigure; the buffer never consults any ambient
// state.
//
// All methods are synchronous and run to completion. The buffer assumes a
// single writer at a time; hosts receiving output from background tasks must
// funnel it through one goroutine or guard calls with their own mutex.
type Buffer struct {
	history  History
	viewport *Viewport
	maxWidth int
	maxLines int
	scroll   int
}

// NewBuffer creates an empty buffer for the given wrap width and row
// capacity. Both must be positive or a ConfigError is returned.
func NewBuffer(maxWidth, maxLines int) (*Buffer, error) {
	if err := checkParams(maxWidth, maxLines); err != nil {
		return nil, err
	}
	return &Buffer{
		viewport: NewViewport(maxLines),
		maxWidth: maxWidth,
		maxLines: maxLines,
	}, nil
}

func checkParams(maxWidth, maxLines int) error {
	if maxWidth <= 0 {
		return &ConfigError{Param: "maxWidth", Value: maxWidth}
	}
	if maxLines <= 0 {
		return &ConfigError{Param: "maxLines", Value: maxLines}
	}
	return nil
}

// MaxWidth returns the current wrap width in characters.
func (b *Buffer) MaxWidth() int { return b.maxWidth }

// MaxLines returns the current row capacity.
func (b *Buffer) MaxLines() int { return b.maxLines }

// ScrollIndex returns the current scroll offset in segments; 0 means the
// window is anchored at the newest content.
func (b *Buffer) ScrollIndex() int { return b.scroll }

// TotalSegments returns the number of rendered rows the whole history
// occupies at the current wrap width.
func (b *Buffer) TotalSegments() int {
	return b.history.TotalSegments(b.maxWidth)
}

// Lines returns a copy of the current visible lines, slot 0 newest.
func (b *Buffer) Lines() []VisibleLine {
	return b.viewport.Lines()
}

// History exposes the underlying entry store for read access.
func (b *Buffer) History() *History {
	return &b.history
}

// Emit routes text to the buffer according to the mode tag. It is the single
// entry point hosts use for command output, diagnostics and streaming
// updates.
func (b *Buffer) Emit(mode EmitMode, text string, c color.RGBA) ([]VisibleLine, error) {
	switch mode {
	case ModeReplaceLast:
		return b.ReplaceLast(text, c)
	default:
		return b.Append(text, c)
	}
}

// Append stores text as a new entry and pushes its wrapped segments into the
// viewport. The returned delta holds one visible line per new segment in
// slot order, newest first. Appending re-anchors the window at the newest
// content.
func (b *Buffer) Append(text string, c color.RGBA) ([]VisibleLine, error) {
	anchored := b.scroll == 0
	b.scroll = 0

	segs, err := b.history.Append(text, c, b.maxWidth)
	if err != nil {
		return nil, err
	}

	if anchored {
		b.viewport.AppendShift(segs, c)
	} else if err := b.viewport.Redistribute(&b.history, b.maxWidth); err != nil {
		return nil, err
	}
	return deltaLines(segs, c), nil
}

// ReplaceLast overwrites the most recent entry and rewrites the viewport
// slots it occupies, without shifting the rest of the scrollback. The
// returned delta holds the rewritten lines, newest first. Fails with
// ErrEmptyHistory when the buffer is still empty.
func (b *Buffer) ReplaceLast(text string, c color.RGBA) ([]VisibleLine, error) {
	// Editing while scrolled would rewrite rows that belong to older
	// content, so re-anchor first.
	if b.scroll != 0 {
		b.scroll = 0
		if err := b.viewport.Redistribute(&b.history, b.maxWidth); err != nil {
			return nil, err
		}
	}

	segs, err := b.history.ReplaceLast(text, c, b.maxWidth)
	if err != nil {
		return nil, err
	}
	b.viewport.OverwriteLast(segs, c)
	return deltaLines(segs, c), nil
}

// Reconfigure atomically applies new layout parameters, resets the scroll
// position and rebuilds the whole viewport from history. It returns the full
// snapshot of visible lines. Calling it twice with identical parameters and
// no intervening output yields identical snapshots.
func (b *Buffer) Reconfigure(maxWidth, maxLines int) ([]VisibleLine, error) {
	if err := checkParams(maxWidth, maxLines); err != nil {
		return nil, err
	}
	b.maxWidth = maxWidth
	if maxLines != b.maxLines {
		b.maxLines = maxLines
		b.viewport = NewViewport(maxLines)
	}
	b.scroll = 0
	if err := b.viewport.Redistribute(&b.history, b.maxWidth); err != nil {
		return nil, err
	}
	return b.Lines(), nil
}

// Scroll moves the window one segment toward older or newer history, clamped
// to the valid range, and returns the re-rendered snapshot. Scrolling past
// either end leaves the position at the boundary; it never fails.
func (b *Buffer) Scroll(dir ScrollDirection) []VisibleLine {
	step := 1
	if dir == ScrollNewer {
		step = -1
	}
	b.scroll = clampScroll(b.scroll+step, b.TotalSegments(), b.maxLines)

	// fill only fails on a non-positive width, which checkParams rules out.
	_ = b.viewport.fill(&b.history, b.maxWidth, b.scroll)
	return b.Lines()
}

// Clear discards the history and empties the viewport.
func (b *Buffer) Clear() {
	b.history.Clear()
	b.scroll = 0
	b.viewport.clear()
}

// clampScroll bounds a scroll offset to [0, max(0, total-maxLines)].
func clampScroll(offset, totalSegments, maxLines int) int {
	limit := totalSegments - maxLines
	if limit < 0 {
		limit = 0
	}
	if offset > limit {
		return limit
	}
	if offset < 0 {
		return 0
	}
	return offset
}

// deltaLines converts freshly produced segments into visible lines in slot
// order: the last produced segment sits in slot 0, so the delta is the
// segment list reversed.
func deltaLines(segs []Segment, c color.RGBA) []VisibleLine {
	out := make([]VisibleLine, 0, len(segs))
	for i := len(segs) - 1; i >= 0; i-- {
		out = append(out, VisibleLine{
			Text:       segs[i].Text,
			Color:      c,
			EntryIndex: segs[i].EntryIndex,
			Start:      segs[i].Start,
			End:        segs[i].End,
		})
	}
	return out
}
