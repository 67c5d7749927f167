//go:build !windows

package windows

import (
	"os/exec"
	"syscall"
)

func applyWindowSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
}
