package console

import (
	"image/color"
	"strings"
)

// Entry is one call's worth of output text, before wrapping, together with
// its display color. Entries are immutable once stored except for the most
// recent one, which ReplaceLast may overwrite in place.
type Entry struct {
	Text  string
	Color color.RGBA
}

// Segment is a wrapped, fixed-width piece of an entry's text, corresponding
// to one rendered row. Start and End are inclusive rune offsets into the
// entry's text with newline markers excluded, so segment offsets accumulate
// across sub-lines. An empty segment has End == Start-1.
type Segment struct {
	Text       string
	EntryIndex int
	Start      int
	End        int
}

// History is the append-only store of logical output entries. The index of
// an entry in the store is its stable identity; visible lines refer back to
// entries by that index.
//
// History performs no locking. Callers appending from more than one
// goroutine must serialize access themselves.
type History struct {
	entries []Entry
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// At returns the entry at index i. The index must be in range; history
// indices never surface to callers except through visible lines, which are
// always produced from valid entries.
func (h *History) At(i int) Entry {
	return h.entries[i]
}

// Append stores a new entry and returns its wrapped segments, tagged with
// the new entry's index and cumulative character offsets.
func (h *History) Append(text string, c color.RGBA, maxWidth int) ([]Segment, error) {
	groups, err := Wrap(text, maxWidth)
	if err != nil {
		return nil, err
	}
	h.entries = append(h.entries, Entry{Text: text, Color: c})
	return tagSegments(groups, len(h.entries)-1), nil
}

// ReplaceLast overwrites the most recent entry in place and returns the
// re-wrapped segments. It is used for progressive output such as echoing a
// command while it is being typed. Returns ErrEmptyHistory if nothing has
// been appended yet.
func (h *History) ReplaceLast(text string, c color.RGBA, maxWidth int) ([]Segment, error) {
	if len(h.entries) == 0 {
		return nil, ErrEmptyHistory
	}
	groups, err := Wrap(text, maxWidth)
	if err != nil {
		return nil, err
	}
	h.entries[len(h.entries)-1] = Entry{Text: text, Color: c}
	return tagSegments(groups, len(h.entries)-1), nil
}

// Segments re-wraps the entry at index i with the given width. Used when the
// viewport is rebuilt after a resize, where previously computed segment
// boundaries are no longer valid.
func (h *History) Segments(i, maxWidth int) ([]Segment, error) {
	groups, err := Wrap(h.entries[i].Text, maxWidth)
	if err != nil {
		return nil, err
	}
	return tagSegments(groups, i), nil
}

// TotalSegments returns the sum of segment counts across all entries for the
// given wrap width. The scroll controller uses it to clamp the scroll range.
func (h *History) TotalSegments(maxWidth int) int {
	total := 0
	for _, e := range h.entries {
		total += segmentCount(e.Text, maxWidth)
	}
	return total
}

// Clear discards all stored entries.
func (h *History) Clear() {
	h.entries = nil
}

// tagSegments flattens wrap groups into segments carrying the owning entry
// index and cumulative rune offsets. Offsets skip the newline markers: the
// first segment after a newline starts where the previous segment ended.
func tagSegments(groups [][]string, entryIndex int) []Segment {
	var segs []Segment
	offset := 0
	for _, group := range groups {
		for _, chunk := range group {
			n := len([]rune(chunk))
			segs = append(segs, Segment{
				Text:       chunk,
				EntryIndex: entryIndex,
				Start:      offset,
				End:        offset + n - 1,
			})
			offset += n
		}
	}
	return segs
}

// segmentCount computes how many rendered rows a text occupies at the given
// width without materializing the segments.
func segmentCount(text string, maxWidth int) int {
	count := 0
	for _, sub := range strings.Split(text, "\n") {
		n := len([]rune(sub))
		if n == 0 {
			count++
			continue
		}
		count += (n + maxWidth - 1) / maxWidth
	}
	return count
}
