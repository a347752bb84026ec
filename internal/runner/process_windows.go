//go:build windows

package runner

import (
	"os/exec"
	"syscall"
)

// configureProcAttr configures the subprocess for Windows. Windows has no
// Unix-style process groups; a new process group is still requested so
// console interrupts do not propagate to the child.
func configureProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}

// killProcessTree terminates the subprocess. Child processes are not
// tracked on Windows.
func killProcessTree(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
