//go:build !windows

package runner

import (
	"os/exec"
	"syscall"
)

// configureProcAttr puts the subprocess in its own process group so the
// whole tree (parent + children) can be killed on timeout.
func configureProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}

// killProcessTree kills the subprocess and all of its children. Negative
// PID addresses the entire process group; if that fails, fall back to the
// individual process.
func killProcessTree(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
		return cmd.Process.Kill()
	}
	return nil
}
