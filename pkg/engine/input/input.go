// Package input turns raw terminal bytes into key events and maps those
// events onto console session intents. It parses escape sequences itself so
// the terminal host can run in raw mode without a screen library: arrows and
// page keys arrive as single events, everything printable arrives as a rune.
package input

import (
	"bufio"
	"io"
)

// Kind identifies a key event.
type Kind int

const (
	KindRune Kind = iota
	KindEnter
	KindBackspace
	KindTab
	KindArrowUp
	KindArrowDown
	KindArrowLeft
	KindArrowRight
	KindPageUp
	KindPageDown
	KindInterrupt
	KindEOF
)

// Event is one decoded key press. Rune is set only for KindRune.
type Event struct {
	Kind Kind
	Rune rune
}

// Reader decodes key events from a byte stream, usually stdin in raw mode.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps a byte stream in an event decoder.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next blocks until one key event is available. Unknown escape sequences and
// stray control bytes are discarded. A closed stream yields KindEOF forever.
func (rd *Reader) Next() Event {
	for {
		r, _, err := rd.r.ReadRune()
		if err != nil {
			return Event{Kind: KindEOF}
		}
		switch r {
		case 0x1b:
			if e, ok := rd.readEscape(); ok {
				return e
			}
			continue
		case '\r', '\n':
			return Event{Kind: KindEnter}
		case 127, 8:
			return Event{Kind: KindBackspace}
		case '\t':
			return Event{Kind: KindTab}
		case 3:
			return Event{Kind: KindInterrupt}
		}
		if r < 0x20 {
			continue
		}
		return Event{Kind: KindRune, Rune: r}
	}
}

// readEscape decodes the bytes after an ESC. Both CSI (ESC [) and SS3
// (ESC O) forms are handled for the arrows; page keys only exist as
// CSI 5~ and CSI 6~.
func (rd *Reader) readEscape() (Event, bool) {
	b2, err := rd.r.ReadByte()
	if err != nil {
		return Event{Kind: KindEOF}, true
	}
	if b2 != '[' && b2 != 'O' {
		return Event{}, false
	}

	b3, err := rd.r.ReadByte()
	if err != nil {
		return Event{Kind: KindEOF}, true
	}
	switch b3 {
	case 'A':
		return Event{Kind: KindArrowUp}, true
	case 'B':
		return Event{Kind: KindArrowDown}, true
	case 'C':
		return Event{Kind: KindArrowRight}, true
	case 'D':
		return Event{Kind: KindArrowLeft}, true
	case '5', '6':
		tilde, err := rd.r.ReadByte()
		if err != nil {
			return Event{Kind: KindEOF}, true
		}
		if tilde != '~' {
			return Event{}, false
		}
		if b3 == '5' {
			return Event{Kind: KindPageUp}, true
		}
		return Event{Kind: KindPageDown}, true
	}
	return Event{}, false
}
