// Package dispatch routes submitted console input to named commands and
// prompt targets. It is a collaborator of the console buffer: it never draws
// or stores scrollback itself, it only emits already-formatted lines through
// the Emitter the host wires up.
package dispatch

import (
	"fmt"
	"image/color"
	"strings"
)

// Output colors used by the dispatcher and its builtins.
var (
	ColorText   = color.RGBA{255, 255, 255, 255}
	ColorInfo   = color.RGBA{62, 240, 255, 255}
	ColorError  = color.RGBA{255, 60, 60, 255}
	ColorNotice = color.RGBA{204, 178, 0, 255}
	ColorOK     = color.RGBA{0, 255, 0, 255}
)

// Emitter receives output lines destined for the console scrollback.
type Emitter interface {
	Emit(text string, c color.RGBA)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(text string, c color.RGBA)

// Emit calls the wrapped function.
func (f EmitterFunc) Emit(text string, c color.RGBA) { f(text, c) }

// Command is a named console command with the metadata the help and usage
// builtins display.
type Command struct {
	Name string
	Help string
	Args []string
	Run  func(args []string, out Emitter)
}

// Target is one prompt destination in the cycle ring, identified by its
// prompt keyword the way the original indicator button cycles consoles.
type Target struct {
	Prompt      string
	Description string
	Process     func(line string, out Emitter)
}

// Dispatcher owns the command registry, the cvar table and the target ring.
// All routing is synchronous; commands run to completion before Submit
// returns.
type Dispatcher struct {
	commands map[string]Command
	cvars    *Cvars
	emitter  Emitter
	targets  []Target
	current  int

	// onClear is invoked by the clear builtin; the host points it at the
	// buffer so the dispatcher stays decoupled from scrollback state.
	onClear func()
}

// New creates a dispatcher emitting through em, with the builtin commands
// registered and the command target installed as the initial prompt.
func New(em Emitter) *Dispatcher {
	d := &Dispatcher{
		commands: make(map[string]Command),
		cvars:    NewCvars(),
		emitter:  em,
	}
	d.targets = append(d.targets, Target{
		Prompt:      "csl> ",
		Description: "command console",
		Process:     d.processCommand,
	})
	d.registerBuiltins()
	return d
}

// Cvars returns the dispatcher's configuration-variable table.
func (d *Dispatcher) Cvars() *Cvars { return d.cvars }

// SetClearFunc wires the clear builtin to the host's scrollback reset.
func (d *Dispatcher) SetClearFunc(fn func()) { d.onClear = fn }

// Register adds a command to the registry. Registering a name twice replaces
// the earlier command, mirroring how user commands shadow defaults.
func (d *Dispatcher) Register(cmd Command) {
	d.commands[strings.ToLower(cmd.Name)] = cmd
}

// RegisterTarget appends a prompt target to the cycle ring.
func (d *Dispatcher) RegisterTarget(t Target) {
	d.targets = append(d.targets, t)
}

// CycleTarget advances the prompt to the next target, wrapping around.
func (d *Dispatcher) CycleTarget() {
	d.current = (d.current + 1) % len(d.targets)
}

// Prompt returns the current target's prompt keyword.
func (d *Dispatcher) Prompt() string {
	return d.targets[d.current].Prompt
}

// TargetDescription returns the current target's description, shown in the
// overlay's "targeting:" info line.
func (d *Dispatcher) TargetDescription() string {
	return d.targets[d.current].Description
}

// Submit routes one submitted input line to the current target. Empty lines
// are ignored.
func (d *Dispatcher) Submit(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	d.targets[d.current].Process(line, d.emitter)
}

// processCommand handles the command console target: the first field selects
// a registered command, the rest become its arguments.
func (d *Dispatcher) processCommand(line string, out Emitter) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}
	name := strings.ToLower(parts[0])
	cmd, ok := d.commands[name]
	if !ok {
		out.Emit(fmt.Sprintf("Unknown command %q (type 'help' for commands)", name), ColorError)
		return
	}
	cmd.Run(parts[1:], out)
}
