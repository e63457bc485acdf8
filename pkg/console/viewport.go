package console

import "image/color"

// VisibleLine is one slot of the rendered window. Slot 0 holds the most
// recently visible row; higher slots hold progressively older rows. An empty
// slot has EntryIndex == -1, empty text, and the zero color.
type VisibleLine struct {
	Text       string
	Color      color.RGBA
	EntryIndex int
	Start      int
	End        int
}

// emptyLine is the cleared slot value.
var emptyLine = VisibleLine{EntryIndex: -1, End: -1}

// Viewport is the fixed-capacity window of visible lines. It never grows or
// shrinks after construction; resizing replaces it wholesale.
type Viewport struct {
	lines []VisibleLine
}

// NewViewport creates a viewport with exactly maxLines cleared slots.
func NewViewport(maxLines int) *Viewport {
	v := &Viewport{lines: make([]VisibleLine, maxLines)}
	v.clear()
	return v
}

// Size returns the fixed slot count.
func (v *Viewport) Size() int {
	return len(v.lines)
}

// Lines returns a copy of the slots, index 0 newest.
func (v *Viewport) Lines() []VisibleLine {
	out := make([]VisibleLine, len(v.lines))
	copy(out, v.lines)
	return out
}

func (v *Viewport) clear() {
	for i := range v.lines {
		v.lines[i] = emptyLine
	}
}

// Redistribute rebuilds every slot from the tail of the history: the result
// is identical to wrapping every entry at maxWidth and taking the last
// Size() segments, newest in slot 0. It is the invariant-restoring
// operation run after any layout change, after which the viewport content is
// a pure function of (history, maxWidth, maxLines).
func (v *Viewport) Redistribute(h *History, maxWidth int) error {
	return v.fill(h, maxWidth, 0)
}

// fill populates the slots anchored scrollOffset segments back from the
// newest one. Slot 0 corresponds to segment total-1-scrollOffset; walking up
// the slot index walks older segments. Slots beyond the available segments
// are cleared.
//
// Entries are visited newest-first and their segments consumed in reverse,
// so no flattened copy of the whole history is ever built.
func (v *Viewport) fill(h *History, maxWidth, scrollOffset int) error {
	v.clear()

	slot := 0
	skip := scrollOffset
	for ei := h.Len() - 1; ei >= 0 && slot < len(v.lines); ei-- {
		segs, err := h.Segments(ei, maxWidth)
		if err != nil {
			return err
		}
		if skip >= len(segs) {
			skip -= len(segs)
			continue
		}
		entry := h.At(ei)
		for si := len(segs) - 1 - skip; si >= 0 && slot < len(v.lines); si-- {
			v.lines[slot] = VisibleLine{
				Text:       segs[si].Text,
				Color:      entry.Color,
				EntryIndex: segs[si].EntryIndex,
				Start:      segs[si].Start,
				End:        segs[si].End,
			}
			slot++
		}
		skip = 0
	}
	return nil
}

// AppendShift is the fast path for appended output when no resize occurred:
// for each new segment the existing slots shift one step toward the back,
// the oldest slot falling off, and the segment lands in slot 0. Segments are
// inserted in production order so the last produced segment ends up newest.
//
// The result must match a full Redistribute over the updated history; that
// equivalence is exercised by the tests.
func (v *Viewport) AppendShift(segs []Segment, c color.RGBA) {
	for _, seg := range segs {
		for x := len(v.lines) - 1; x > 0; x-- {
			v.lines[x] = v.lines[x-1]
		}
		v.lines[0] = VisibleLine{
			Text:       seg.Text,
			Color:      c,
			EntryIndex: seg.EntryIndex,
			Start:      seg.Start,
			End:        seg.End,
		}
	}
}

// OverwriteLast applies an edit of the most recent entry without shifting:
// segment i of the new wrap is placed at slot n-1-i, so the last produced
// segment lands in slot 0 and slots at or beyond n are left untouched. The
// character ranges of the overwritten slots are recomputed from the new
// segments along with everything else.
func (v *Viewport) OverwriteLast(segs []Segment, c color.RGBA) {
	n := len(segs)
	for i := 0; i < n && i < len(v.lines); i++ {
		seg := segs[n-1-i]
		v.lines[i] = VisibleLine{
			Text:       seg.Text,
			Color:      c,
			EntryIndex: seg.EntryIndex,
			Start:      seg.Start,
			End:        seg.End,
		}
	}
}
