package procutil

import (
	"os/exec"
	"syscall"
)

// CmdExitCode recovers the exit code of a finished command.
func CmdExitCode(cmd *exec.Cmd, err error) int {
	if err == nil {
		ws := cmd.ProcessState.Sys().(syscall.WaitStatus)
		return ws.ExitStatus()
	}

	if exitError, ok := err.(*exec.ExitError); ok {
		ws := exitError.Sys().(syscall.WaitStatus)
		return ws.ExitStatus()
	}

	// The command never ran (e.g. the executable was not found), so there
	// is no exit status to recover.
	return -1
}
