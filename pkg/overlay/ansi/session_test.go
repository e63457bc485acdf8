package ansi

import (
	"bytes"
	"strings"
	"testing"

	gookit "github.com/gookit/color"

	"devconsole/pkg/console/config"
	"devconsole/pkg/console/dispatch"
	"devconsole/pkg/engine/input"
)

// testConfig disables the resize routine so buffer dimensions stay stable
// regardless of the terminal the tests run in.
func testConfig() config.Settings {
	cfg := config.Default()
	cfg.DoResizeRoutine = false
	return cfg
}

func testTarget() dispatch.Target {
	return dispatch.Target{
		Prompt:      "x> ",
		Description: "test target",
		Process:     func(string, dispatch.Emitter) {},
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(testConfig(), strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("NewSession returned error: %v", err)
	}
	return s
}

func typeLine(s *Session, line string) {
	for _, r := range line {
		s.apply(input.IntentInsert, r)
	}
}

func TestApply_InsertAndErase(t *testing.T) {
	s := newTestSession(t)
	typeLine(s, "héllo")
	s.apply(input.IntentErase, 0)
	if s.line != "héll" {
		t.Errorf("line = %q, want héll (erase drops one rune)", s.line)
	}

	s.line = ""
	s.apply(input.IntentErase, 0)
	if s.line != "" {
		t.Errorf("erase on empty line changed it to %q", s.line)
	}
}

func TestApply_SubmitEchoesAndRoutes(t *testing.T) {
	s := newTestSession(t)
	typeLine(s, "help")
	s.apply(input.IntentSubmit, 0)

	if s.line != "" {
		t.Errorf("line not cleared after submit: %q", s.line)
	}

	var rows []string
	for _, l := range s.Buffer().Lines() {
		if l.EntryIndex >= 0 {
			rows = append(rows, l.Text)
		}
	}
	joined := strings.Join(rows, "\n")
	if !strings.Contains(joined, "csl> help") {
		t.Errorf("submitted command not echoed:\n%s", joined)
	}
	if !strings.Contains(joined, "help") || len(rows) < 2 {
		t.Errorf("help output missing from scrollback:\n%s", joined)
	}
}

func TestApply_HistoryNavigation(t *testing.T) {
	s := newTestSession(t)
	typeLine(s, "first")
	s.apply(input.IntentSubmit, 0)
	typeLine(s, "second")
	s.apply(input.IntentSubmit, 0)

	s.apply(input.IntentHistoryOlder, 0)
	if s.line != "second" {
		t.Errorf("after one older: line = %q, want second", s.line)
	}
	s.apply(input.IntentHistoryOlder, 0)
	if s.line != "first" {
		t.Errorf("after two older: line = %q, want first", s.line)
	}
	s.apply(input.IntentHistoryNewer, 0)
	s.apply(input.IntentHistoryNewer, 0)
	if s.line != "" {
		t.Errorf("after returning to fresh input: line = %q, want empty", s.line)
	}
}

func TestApply_CycleTargetChangesPrompt(t *testing.T) {
	s := newTestSession(t)
	s.Dispatcher().RegisterTarget(testTarget())

	before := s.Dispatcher().Prompt()
	s.apply(input.IntentCycleTarget, 0)
	if s.Dispatcher().Prompt() == before {
		t.Error("prompt unchanged after cycling targets")
	}
	s.apply(input.IntentCycleTarget, 0)
	if s.Dispatcher().Prompt() != before {
		t.Error("cycling through the ring did not wrap back")
	}
}

func TestApply_QuitEndsSession(t *testing.T) {
	s := newTestSession(t)
	if !s.apply(input.IntentQuit, 0) {
		t.Error("IntentQuit did not end the session")
	}
	if s.apply(input.IntentNone, 0) {
		t.Error("IntentNone ended the session")
	}
}

func TestRender_WritesClearAndPrompt(t *testing.T) {
	out := &bytes.Buffer{}
	s, err := NewSession(testConfig(), strings.NewReader(""), out)
	if err != nil {
		t.Fatalf("NewSession returned error: %v", err)
	}
	s.line = "typed"
	s.render()

	got := out.String()
	if !strings.HasPrefix(got, "\x1b[2J\x1b[H") {
		t.Error("frame does not start with a clear-screen sequence")
	}
	if !strings.Contains(gookit.ClearCode(got), "csl> typed") {
		t.Errorf("frame missing prompt row:\n%s", gookit.ClearCode(got))
	}
}
