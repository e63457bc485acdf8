package ansi

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"devconsole/pkg/console"
	"devconsole/pkg/console/config"
	"devconsole/pkg/console/dispatch"
	"devconsole/pkg/engine/input"
	"devconsole/pkg/engine/layout"
)

// colorEcho is the dimmed shade submitted commands are echoed back in.
var colorEcho = color.RGBA{170, 170, 170, 255}

// Session is the interactive terminal host: a raw-mode read loop that feeds
// key events through the intent bindings into the console buffer, dispatcher
// and history navigator, redrawing the frame after every event.
//
// The session runs on a single goroutine; background tasks must emit before
// Run starts or stay off the console entirely.
type Session struct {
	buffer     *console.Buffer
	dispatcher *dispatch.Dispatcher
	inputHist  *console.InputHistory
	bindings   input.Bindings
	cfg        config.Settings

	in  io.Reader
	out io.Writer

	line   string
	params layout.Params
}

// NewSession creates a terminal console session reading key events from in
// and drawing frames to out. The buffer is sized from the current terminal.
func NewSession(cfg config.Settings, in io.Reader, out io.Writer) (*Session, error) {
	params := layout.FromTerminal()
	buf, err := console.NewBuffer(params.MaxWidth, params.MaxLines)
	if err != nil {
		return nil, err
	}

	s := &Session{
		buffer:    buf,
		inputHist: console.NewInputHistory(),
		bindings:  input.DefaultBindings(),
		cfg:       cfg,
		in:        in,
		out:       out,
		params:    params,
	}
	s.dispatcher = dispatch.New(dispatch.EmitterFunc(s.Println))
	s.dispatcher.SetClearFunc(buf.Clear)
	return s, nil
}

// Dispatcher exposes the command registry for application commands and
// prompt targets.
func (s *Session) Dispatcher() *dispatch.Dispatcher { return s.dispatcher }

// Buffer exposes the scrollback for read access.
func (s *Session) Buffer() *console.Buffer { return s.buffer }

// Println appends a line to the scrollback. Call it only from the session's
// goroutine, before Run or from inside a command.
func (s *Session) Println(text string, c color.RGBA) {
	if _, err := s.buffer.Append(text, c); err != nil {
		log.Printf("console: append failed: %v", err)
	}
}

// Run puts the terminal into raw mode and processes key events until the
// user quits with Ctrl+C or the input stream closes.
func (s *Session) Run() error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("ansi: entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	events := input.NewReader(s.in)
	for {
		s.relayout()
		s.render()

		e := events.Next()
		if quit := s.apply(s.bindings.Translate(e), e.Rune); quit {
			fmt.Fprint(s.out, "\r\n")
			return nil
		}
	}
}

// relayout resizes the buffer when the terminal dimensions change.
func (s *Session) relayout() {
	if !s.cfg.DoResizeRoutine {
		return
	}
	params := layout.FromTerminal()
	if params == s.params {
		return
	}
	s.params = params
	if _, err := s.buffer.Reconfigure(params.MaxWidth, params.MaxLines); err != nil {
		log.Printf("console: reconfigure failed: %v", err)
		return
	}
	if s.cfg.Verbose {
		log.Printf("console: relayout -> %d cols, %d rows", params.MaxWidth, params.MaxLines)
	}
}

// render clears the screen and redraws the full frame. Raw mode needs
// explicit carriage returns.
func (s *Session) render() {
	frame := Frame(s.buffer.Lines(), s.dispatcher.Prompt(), s.line, s.dispatcher.TargetDescription())
	fmt.Fprint(s.out, "\x1b[2J\x1b[H")
	fmt.Fprint(s.out, strings.ReplaceAll(frame, "\n", "\r\n"))
}

// apply performs one intent against the session state. It reports whether
// the session should end.
func (s *Session) apply(intent input.Intent, r rune) bool {
	switch intent {
	case input.IntentInsert:
		s.line += string(r)
	case input.IntentErase:
		if runes := []rune(s.line); len(runes) > 0 {
			s.line = string(runes[:len(runes)-1])
		}
	case input.IntentSubmit:
		s.submit()
	case input.IntentHistoryOlder:
		s.line = s.inputHist.Older()
	case input.IntentHistoryNewer:
		s.line = s.inputHist.Newer()
	case input.IntentScrollOlder:
		if s.cfg.DoScrollingRoutine {
			s.buffer.Scroll(console.ScrollOlder)
		}
	case input.IntentScrollNewer:
		if s.cfg.DoScrollingRoutine {
			s.buffer.Scroll(console.ScrollNewer)
		}
	case input.IntentCycleTarget:
		s.dispatcher.CycleTarget()
	case input.IntentQuit:
		return true
	}
	return false
}

// submit echoes the prompt line, records it for history navigation and
// routes it to the current target.
func (s *Session) submit() {
	line := s.line
	s.line = ""
	s.inputHist.Record(line)
	s.inputHist.Reset()

	s.Println(s.dispatcher.Prompt()+line, colorEcho)
	s.dispatcher.Submit(line)
}
