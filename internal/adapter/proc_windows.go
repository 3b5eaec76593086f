//go:build windows

package adapter

import (
	"os/exec"
	"strconv"
)

func configureProcessGroup(_ *exec.Cmd) {}

func killProcessTree(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}

	// #nosec G204 - pid of a process we started
	if err := exec.Command("taskkill", "/T", "/F", "/PID", strconv.Itoa(cmd.Process.Pid)).Run(); err != nil {
		return cmd.Process.Kill()
	}

	return nil
}
