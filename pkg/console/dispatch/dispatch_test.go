// Package dispatch tests command routing, cvar handling, target cycling and
// the shell block list.
package dispatch

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

// recorder collects emitted lines for assertions.
type recorder struct {
	lines  []string
	colors []color.RGBA
}

func (r *recorder) Emit(text string, c color.RGBA) {
	r.lines = append(r.lines, text)
	r.colors = append(r.colors, c)
}

func (r *recorder) joined() string { return strings.Join(r.lines, "\n") }

func TestDispatcher_RoutesRegisteredCommand(t *testing.T) {
	rec := &recorder{}
	d := New(rec)

	var gotArgs []string
	d.Register(Command{
		Name: "greet",
		Help: "Greets someone",
		Args: []string{"name"},
		Run: func(args []string, out Emitter) {
			gotArgs = args
			out.Emit("hello "+args[0], ColorOK)
		},
	})

	d.Submit("greet world extra")
	if len(gotArgs) != 2 || gotArgs[0] != "world" {
		t.Fatalf("command args = %v, want [world extra]", gotArgs)
	}
	if rec.lines[0] != "hello world" {
		t.Errorf("emitted %q", rec.lines[0])
	}
}

func TestDispatcher_UnknownCommandEmitsError(t *testing.T) {
	rec := &recorder{}
	d := New(rec)
	d.Submit("doesnotexist")
	if len(rec.lines) != 1 || !strings.Contains(rec.lines[0], "Unknown command") {
		t.Fatalf("unknown command output = %v", rec.lines)
	}
	if rec.colors[0] != ColorError {
		t.Errorf("unknown command color = %v, want ColorError", rec.colors[0])
	}
}

func TestDispatcher_EmptySubmissionIsIgnored(t *testing.T) {
	rec := &recorder{}
	d := New(rec)
	d.Submit("")
	d.Submit("   ")
	if len(rec.lines) != 0 {
		t.Errorf("blank submissions emitted output: %v", rec.lines)
	}
}

func TestDispatcher_UserCommandShadowsBuiltin(t *testing.T) {
	rec := &recorder{}
	d := New(rec)
	d.Register(Command{
		Name: "help",
		Run: func(args []string, out Emitter) {
			out.Emit("custom help", ColorText)
		},
	})
	d.Submit("help")
	if rec.lines[0] != "custom help" {
		t.Errorf("builtin not shadowed, got %q", rec.lines[0])
	}
}

func TestDispatcher_CvarGetSetList(t *testing.T) {
	rec := &recorder{}
	d := New(rec)

	d.Submit("set colors.text 200,210,245,255")
	if v, ok := d.Cvars().Get("colors.text"); !ok || v != "200,210,245,255" {
		t.Fatalf("cvar after set = %q, %v", v, ok)
	}

	rec.lines = nil
	d.Submit("get colors.text")
	if !strings.Contains(rec.joined(), "colors.text") {
		t.Errorf("get output = %v", rec.lines)
	}

	rec.lines = nil
	d.Submit("get colors.missing")
	if !strings.Contains(rec.joined(), "Unknown cvar") {
		t.Errorf("missing cvar output = %v", rec.lines)
	}

	d.Cvars().Set("alpha", "1")
	d.Cvars().Set("zed", "2")
	names := d.Cvars().Names()
	if names[0] != "alpha" || names[len(names)-1] != "zed" {
		t.Errorf("cvar names not sorted: %v", names)
	}
}

func TestDispatcher_HelpListsCommands(t *testing.T) {
	rec := &recorder{}
	d := New(rec)
	d.Submit("help")
	for _, want := range []string{"help", "usage", "clear", "credits"} {
		if !strings.Contains(rec.joined(), want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestDispatcher_UsageDescribesCommand(t *testing.T) {
	rec := &recorder{}
	d := New(rec)
	d.Submit("usage set")
	joined := rec.joined()
	if !strings.Contains(joined, "cvar") || !strings.Contains(joined, "value") {
		t.Errorf("usage output missing argument names: %v", rec.lines)
	}

	rec.lines = nil
	d.Submit("usage nosuch")
	if !strings.Contains(rec.joined(), "Unknown command") {
		t.Errorf("usage of unknown command output = %v", rec.lines)
	}
}

func TestDispatcher_ClearInvokesHook(t *testing.T) {
	rec := &recorder{}
	d := New(rec)
	cleared := false
	d.SetClearFunc(func() { cleared = true })
	d.Submit("clear")
	if !cleared {
		t.Error("clear builtin did not invoke the hook")
	}
}

func TestDispatcher_CycleTargetWrapsAround(t *testing.T) {
	rec := &recorder{}
	d := New(rec)
	shell := NewShellTarget(fakeRunner{})
	d.RegisterTarget(shell.Target())

	if d.Prompt() != "csl> " {
		t.Fatalf("initial prompt = %q", d.Prompt())
	}
	d.CycleTarget()
	if d.Prompt() != "os$> " {
		t.Fatalf("prompt after cycle = %q", d.Prompt())
	}
	d.CycleTarget()
	if d.Prompt() != "csl> " {
		t.Fatalf("prompt did not wrap, got %q", d.Prompt())
	}
}

// fakeRunner returns canned shell output.
type fakeRunner struct {
	out string
	err error
}

func (f fakeRunner) Run(command string) (string, error) { return f.out, f.err }

func TestShellTarget_RunsThroughRunner(t *testing.T) {
	rec := &recorder{}
	d := New(rec)
	shell := NewShellTarget(fakeRunner{out: "line1\nline2\n"})
	d.RegisterTarget(shell.Target())
	d.CycleTarget()

	d.Submit("ls -la")
	if len(rec.lines) != 2 || rec.lines[0] != "line1" || rec.lines[1] != "line2" {
		t.Errorf("shell output = %v", rec.lines)
	}
}

func TestShellTarget_BlockedCommandRefused(t *testing.T) {
	rec := &recorder{}
	shell := NewShellTarget(fakeRunner{out: "should not run"})
	shell.Target().Process("reboot now", rec)
	if len(rec.lines) != 1 || !strings.Contains(rec.lines[0], "blocked") {
		t.Errorf("blocked command output = %v", rec.lines)
	}

	shell.Block("custombin")
	rec.lines = nil
	shell.Target().Process("custombin --flag", rec)
	if !strings.Contains(rec.joined(), "blocked") {
		t.Errorf("custom blocked command output = %v", rec.lines)
	}
}

func TestShellTarget_RunnerErrorSurfaces(t *testing.T) {
	rec := &recorder{}
	shell := NewShellTarget(fakeRunner{err: errors.New("exit status 1")})
	shell.Target().Process("false", rec)
	if !strings.Contains(rec.joined(), "exit status 1") {
		t.Errorf("runner error not emitted: %v", rec.lines)
	}
}

func TestParseRGBA(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"26,26,46,255", color.RGBA{26, 26, 46, 255}, true},
		{" 0 , 0 , 0 , 0 ", color.RGBA{}, true},
		{"300,0,0,0", color.RGBA{}, false},
		{"1,2,3", color.RGBA{}, false},
		{"a,b,c,d", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseRGBA(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseRGBA(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatRGBA_RoundTrips(t *testing.T) {
	c := color.RGBA{12, 200, 7, 128}
	got, ok := ParseRGBA(FormatRGBA(c))
	if !ok || got != c {
		t.Errorf("round trip = %v, %v", got, ok)
	}
}
