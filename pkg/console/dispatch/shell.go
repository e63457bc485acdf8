package dispatch

import (
	"os/exec"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Runner executes an OS command line and returns its combined output. The
// console core never touches process I/O; a Runner is the host-provided
// collaborator that does.
type Runner interface {
	Run(command string) (string, error)
}

// ExecRunner runs command lines through the system shell.
type ExecRunner struct{}

// Run executes the command and returns stdout and stderr interleaved.
func (ExecRunner) Run(command string) (string, error) {
	out, err := exec.Command("sh", "-c", command).CombinedOutput()
	return string(out), err
}

// defaultBlocked lists command names the shell target refuses outright, so a
// stray console line cannot take the host process or machine down.
var defaultBlocked = []string{
	"reboot",
	"shutdown",
	"halt",
	"poweroff",
	"mkfs",
	"dd",
}

// ShellTarget is the os$> prompt target: submitted lines run through the
// Runner unless their command name is blocked.
type ShellTarget struct {
	runner  Runner
	blocked mapset.Set[string]
}

// NewShellTarget builds a shell target around the given runner with the
// default block list.
func NewShellTarget(r Runner) *ShellTarget {
	blocked := mapset.New[string]()
	for _, name := range defaultBlocked {
		blocked.Put(name)
	}
	return &ShellTarget{runner: r, blocked: blocked}
}

// Block adds a command name to the block list.
func (s *ShellTarget) Block(name string) {
	s.blocked.Put(name)
}

// Target returns the dispatch target for the cycle ring.
func (s *ShellTarget) Target() Target {
	return Target{
		Prompt:      "os$> ",
		Description: "OS commandline",
		Process:     s.process,
	}
}

func (s *ShellTarget) process(line string, out Emitter) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	if s.blocked.Has(fields[0]) {
		out.Emit("Command '"+fields[0]+"' is blocked in the console shell", ColorError)
		return
	}

	output, err := s.runner.Run(line)
	if trimmed := strings.TrimRight(output, "\n"); trimmed != "" {
		for _, row := range strings.Split(trimmed, "\n") {
			out.Emit(row, ColorText)
		}
	}
	if err != nil {
		out.Emit(err.Error(), ColorError)
	}
}
