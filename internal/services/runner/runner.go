// Package runner executes external commands on behalf of tools that wrap
// project generators and toolchains. Tools depend on the Runner interface so
// sessions can be tested without spawning processes.
package runner

import (
	"os/exec"
	"strings"
)

// Runner runs external commands and resolves executables.
type Runner interface {
	Run(name string, arguments ...string) (string, error)
	LookPath(name string) (string, error)
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct {
	WorkingDirectory string
}

// NewExecRunner constructs a Runner executing in the given directory, or the
// process working directory when empty.
func NewExecRunner(workingDirectory string) *ExecRunner {
	return &ExecRunner{WorkingDirectory: workingDirectory}
}

// Run executes the command and returns its combined output with surrounding
// whitespace trimmed. The output is returned even when the command fails so
// the caller can report the underlying cause.
func (execRunner *ExecRunner) Run(name string, arguments ...string) (string, error) {
	command := exec.Command(name, arguments...)
	if execRunner.WorkingDirectory != "" {
		command.Dir = execRunner.WorkingDirectory
	}
	combinedOutput, runError := command.CombinedOutput()
	return strings.TrimSpace(string(combinedOutput)), runError
}

// LookPath resolves an executable name through the environment PATH.
func (execRunner *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

var _ Runner = (*ExecRunner)(nil)
