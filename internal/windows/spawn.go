package windows

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"termlink/internal/logging"
)

// Open launches the configured terminal emulator with the session id
// appended as the final argument, detaches it, and records the window
// under the session id. The returned pid is the spawned emulator
// process.
func (t *Tracker) Open(command []string, sessionID string) (int, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return 0, errors.New("session id is required")
	}
	if len(command) == 0 {
		return 0, errors.New("window command is not configured")
	}
	if t.Owned(sessionID) {
		return 0, fmt.Errorf("a window is already open for session %s", sessionID)
	}

	args := append(append([]string{}, command[1:]...), sessionID)
	cmd := exec.Command(command[0], args...)
	applyWindowSysProcAttr(cmd)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	if err := t.Track(sessionID, pid, command); err != nil {
		_ = t.terminate(pid)
		return 0, err
	}
	_ = cmd.Process.Release()

	t.log.Info("window opened", logging.F("session", sessionID), logging.F("pid", pid))
	return pid, nil
}
