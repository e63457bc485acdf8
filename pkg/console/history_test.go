package console

import (
	"errors"
	"image/color"
	"testing"
)

var testWhite = color.RGBA{255, 255, 255, 255}
var testGreen = color.RGBA{0, 255, 0, 255}

func TestHistory_AppendTagsSegments(t *testing.T) {
	var h History
	segs, err := h.Append("hello\nworld", testWhite, 3)
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	wantText := []string{"hel", "lo", "wor", "ld"}
	wantStart := []int{0, 3, 5, 8}
	wantEnd := []int{2, 4, 7, 9}

	if len(segs) != len(wantText) {
		t.Fatalf("got %d segments, want %d", len(segs), len(wantText))
	}
	for i, seg := range segs {
		if seg.Text != wantText[i] {
			t.Errorf("segment %d text = %q, want %q", i, seg.Text, wantText[i])
		}
		if seg.Start != wantStart[i] || seg.End != wantEnd[i] {
			t.Errorf("segment %d range = [%d,%d], want [%d,%d]", i, seg.Start, seg.End, wantStart[i], wantEnd[i])
		}
		if seg.EntryIndex != 0 {
			t.Errorf("segment %d entry index = %d, want 0", i, seg.EntryIndex)
		}
	}
}

func TestHistory_EmptySegmentRange(t *testing.T) {
	var h History
	segs, err := h.Append("ab\n\ncd", testWhite, 10)
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	// The empty middle row occupies no characters: its end precedes its start.
	if segs[1].Text != "" || segs[1].Start != 2 || segs[1].End != 1 {
		t.Errorf("empty segment = %q [%d,%d], want \"\" [2,1]", segs[1].Text, segs[1].Start, segs[1].End)
	}
	if segs[2].Start != 2 || segs[2].End != 3 {
		t.Errorf("segment after empty row = [%d,%d], want [2,3]", segs[2].Start, segs[2].End)
	}
}

func TestHistory_ReplaceLastOverwritesInPlace(t *testing.T) {
	var h History
	if _, err := h.Append("old", testWhite, 10); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	segs, err := h.ReplaceLast("new text", testGreen, 10)
	if err != nil {
		t.Fatalf("ReplaceLast returned error: %v", err)
	}
	if h.Len() != 1 {
		t.Fatalf("history length = %d, want 1", h.Len())
	}
	if h.At(0).Text != "new text" || h.At(0).Color != testGreen {
		t.Errorf("entry after edit = %+v", h.At(0))
	}
	if len(segs) != 1 || segs[0].EntryIndex != 0 {
		t.Errorf("edit segments = %+v", segs)
	}
}

func TestHistory_ReplaceLastOnEmptyFails(t *testing.T) {
	var h History
	_, err := h.ReplaceLast("x", testWhite, 10)
	if !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("ReplaceLast on empty history returned %v, want ErrEmptyHistory", err)
	}
}

func TestHistory_TotalSegments(t *testing.T) {
	var h History
	h.Append("12345", testWhite, 2)   // 3 segments
	h.Append("a\nb", testWhite, 2)    // 2 segments
	h.Append("", testWhite, 2)        // 1 segment (empty row)
	h.Append("\n", testWhite, 2)      // 2 segments (two empty rows)
	if got := h.TotalSegments(2); got != 8 {
		t.Errorf("TotalSegments = %d, want 8", got)
	}
	// Recomputed counts track the width, not cached state.
	if got := h.TotalSegments(5); got != 6 {
		t.Errorf("TotalSegments at width 5 = %d, want 6", got)
	}
}

func TestHistory_SegmentsMatchesAppend(t *testing.T) {
	var h History
	appended, err := h.Append("some longer text\nwith a break", testWhite, 4)
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	rewrapped, err := h.Segments(0, 4)
	if err != nil {
		t.Fatalf("Segments returned error: %v", err)
	}
	if len(appended) != len(rewrapped) {
		t.Fatalf("segment counts differ: %d vs %d", len(appended), len(rewrapped))
	}
	for i := range appended {
		if appended[i] != rewrapped[i] {
			t.Errorf("segment %d differs: %+v vs %+v", i, appended[i], rewrapped[i])
		}
	}
}
