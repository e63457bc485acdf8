package dispatch

import (
	"fmt"
	"sort"
	"strings"
)

// registerBuiltins installs the default command set. User commands registered
// later under the same names shadow these.
func (d *Dispatcher) registerBuiltins() {
	d.Register(Command{
		Name: "help",
		Help: "Shows a list of available commands",
		Run:  d.runHelp,
	})
	d.Register(Command{
		Name: "usage",
		Help: "Provides help concerning a given command",
		Args: []string{"command"},
		Run:  d.runUsage,
	})
	d.Register(Command{
		Name: "get",
		Help: "Get a configuration variable",
		Args: []string{"cvar"},
		Run:  d.runGet,
	})
	d.Register(Command{
		Name: "set",
		Help: "Set a configuration variable",
		Args: []string{"cvar", "value"},
		Run:  d.runSet,
	})
	d.Register(Command{
		Name: "list",
		Help: "List all configuration variables",
		Run:  d.runList,
	})
	d.Register(Command{
		Name: "clear",
		Help: "Clear the console scrollback",
		Run:  d.runClear,
	})
	d.Register(Command{
		Name: "credits",
		Help: "Show project credits",
		Run: func(args []string, out Emitter) {
			out.Emit("Console overlay engine for real-time rendering hosts.", ColorText)
			out.Emit("Wrapping, scrollback and history replay are host-independent;", ColorText)
			out.Emit("see the overlay packages for reference integrations.", ColorText)
		},
	})
}

func (d *Dispatcher) runHelp(args []string, out Emitter) {
	out.Emit("List of available commands:", ColorInfo)
	for _, name := range d.commandNames() {
		out.Emit("- "+name, ColorText)
	}
	out.Emit(" ", ColorText)
	out.Emit("Use 'usage <command>' for more details on a specific command", ColorText)
}

func (d *Dispatcher) runUsage(args []string, out Emitter) {
	if len(args) != 1 {
		out.Emit("Usage: usage <command>", ColorError)
		return
	}
	name := strings.ToLower(args[0])
	cmd, ok := d.commands[name]
	if !ok {
		out.Emit(fmt.Sprintf("Unknown command %q", name), ColorError)
		return
	}
	out.Emit(fmt.Sprintf("Help concerning command %q:", cmd.Name), ColorInfo)
	if cmd.Help != "" {
		out.Emit(cmd.Help, ColorText)
	} else {
		out.Emit("No description provided", ColorText)
	}
	if len(cmd.Args) > 0 {
		out.Emit("Known arguments: "+strings.Join(cmd.Args, ", "), ColorText)
	} else {
		out.Emit("No arguments required", ColorText)
	}
}

func (d *Dispatcher) runGet(args []string, out Emitter) {
	if len(args) != 1 {
		out.Emit("Usage: get <cvar>", ColorError)
		return
	}
	name := strings.ToLower(args[0])
	if value, ok := d.cvars.Get(name); ok {
		out.Emit(fmt.Sprintf("%s = %q", name, value), ColorText)
	} else {
		out.Emit("Unknown cvar: "+name, ColorError)
	}
}

func (d *Dispatcher) runSet(args []string, out Emitter) {
	if len(args) < 2 {
		out.Emit("Usage: set <cvar> <value>", ColorError)
		return
	}
	name := strings.ToLower(args[0])
	value := strings.Join(args[1:], " ")
	d.cvars.Set(name, value)
	out.Emit(fmt.Sprintf("%s = %q", name, value), ColorText)
}

func (d *Dispatcher) runList(args []string, out Emitter) {
	names := d.cvars.Names()
	if len(names) == 0 {
		out.Emit("No cvars defined", ColorText)
		return
	}
	out.Emit(fmt.Sprintf("Cvars (%d):", len(names)), ColorInfo)
	for _, name := range names {
		value, _ := d.cvars.Get(name)
		out.Emit(fmt.Sprintf("  %s = %q", name, value), ColorText)
	}
}

func (d *Dispatcher) runClear(args []string, out Emitter) {
	if d.onClear != nil {
		d.onClear()
	}
}

// commandNames returns the registered command names in alphabetical order.
func (d *Dispatcher) commandNames() []string {
	names := make([]string, 0, len(d.commands))
	for name := range d.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
