//go:build !windows

package adapter

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

func configureProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcessTree kills the process group led by cmd so no descendant outlives the phase.
func killProcessTree(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}

	pid := cmd.Process.Pid
	if pid <= 0 {
		return nil
	}

	if pgid, err := unix.Getpgid(pid); err == nil && pgid > 0 {
		return unix.Kill(-pgid, unix.SIGKILL)
	}

	return cmd.Process.Kill()
}
