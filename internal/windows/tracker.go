// Package windows tracks terminal windows this client spawned for
// sessions, so they can be closed once the server confirms the backing
// session is gone. Windows the client merely attached to are never
// tracked and never closed.
package windows

import (
	"errors"
	"os"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"termlink/internal/logging"
)

type Tracker struct {
	// mu serializes entry mutation so terminations racing on the same
	// id cannot double-close a window.
	mu        sync.Mutex
	registry  Registry
	terminate func(pid int) error
	alive     func(pid int) bool
	log       logging.Logger
}

func NewTracker(registry Registry, log logging.Logger) *Tracker {
	if log == nil {
		log = logging.Nop()
	}
	return &Tracker{
		registry:  registry,
		terminate: terminateProcess,
		alive:     processAlive,
		log:       log,
	}
}

// Track records a window this client opened for a session.
func (t *Tracker) Track(sessionID string, pid int, command []string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return errors.New("session id is required")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.registry.Put(Record{
		SessionID: sessionID,
		PID:       pid,
		Command:   command,
		OpenedAt:  time.Now().UTC(),
	})
}

func (t *Tracker) Owned(sessionID string) bool {
	_, found, err := t.registry.Get(strings.TrimSpace(sessionID))
	return err == nil && found
}

// CloseIfOwned closes the window this client opened for the session,
// if any. No entry, or a window whose process is already gone, is a
// no-op; the entry is removed either way so a second call does
// nothing.
func (t *Tracker) CloseIfOwned(sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, found, err := t.registry.Get(sessionID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	if !t.alive(rec.PID) {
		t.log.Debug("window already closed", logging.F("session", sessionID), logging.F("pid", rec.PID))
		return t.registry.Delete(sessionID)
	}
	termErr := t.terminate(rec.PID)
	if err := t.registry.Delete(sessionID); err != nil {
		return err
	}
	if termErr != nil {
		return termErr
	}
	t.log.Debug("window closed", logging.F("session", sessionID), logging.F("pid", rec.PID))
	return nil
}

// Prune drops entries whose window process no longer exists, e.g.
// windows the user closed by hand. Returns how many were removed.
func (t *Tracker) Prune() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	records, err := t.registry.List()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, rec := range records {
		if t.alive(rec.PID) {
			continue
		}
		if err := t.registry.Delete(rec.SessionID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func terminateProcess(pid int) error {
	if pid <= 0 {
		return errors.New("invalid pid")
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	if runtime.GOOS == "windows" {
		return proc.Kill()
	}
	return proc.Signal(syscall.SIGTERM)
}

func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	if runtime.GOOS == "windows" {
		// No cheap liveness probe; treat recorded windows as open.
		return true
	}
	return proc.Signal(syscall.Signal(0)) == nil
}
