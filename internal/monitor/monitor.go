// Package monitor keeps the last known authoritative session list.
// The snapshot is replaced wholesale on each refresh; it is the only
// thing the client trusts about which sessions are still alive.
package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"termlink/internal/logging"
	"termlink/internal/transport"
	"termlink/internal/types"
)

const sessionsPath = "/api/sessions"

// Transport is the request substrate; satisfied by
// *transport.Transport.
type Transport interface {
	Do(ctx context.Context, method, path string, body any) (transport.Response, error)
}

type Monitor struct {
	transport Transport
	interval  time.Duration
	log       logging.Logger

	mu       sync.RWMutex
	sessions []types.Session

	subMu sync.Mutex
	subs  []chan struct{}
}

func New(t Transport, interval time.Duration, log logging.Logger) *Monitor {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Monitor{
		transport: t,
		interval:  interval,
		log:       log,
	}
}

// Refresh pulls the current session list and swaps the snapshot in one
// step. A failed refresh leaves the previous snapshot in place.
func (m *Monitor) Refresh(ctx context.Context) error {
	resp, err := m.transport.Do(ctx, http.MethodGet, sessionsPath, nil)
	if err != nil {
		return err
	}
	if resp.Status != http.StatusOK {
		return fmt.Errorf("list sessions failed (status %d)", resp.Status)
	}
	var sessions []types.Session
	if err := json.Unmarshal(resp.Body, &sessions); err != nil {
		return fmt.Errorf("decode session list: %w", err)
	}

	m.mu.Lock()
	changed := !sameSessions(m.sessions, sessions)
	m.sessions = sessions
	m.mu.Unlock()

	if changed {
		m.notify()
	}
	return nil
}

// Snapshot returns a copy of the current session list; either the
// pre-refresh or post-refresh list, never a mix.
func (m *Monitor) Snapshot() []types.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]types.Session{}, m.sessions...)
}

func (m *Monitor) Get(sessionID string) (types.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sessions {
		if s.ID == sessionID {
			return s, true
		}
	}
	return types.Session{}, false
}

// Subscribe returns a channel that receives a tick whenever a refresh
// changes the snapshot. Notifications are dropped, not queued, when the
// subscriber lags.
func (m *Monitor) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	m.subMu.Lock()
	m.subs = append(m.subs, ch)
	m.subMu.Unlock()
	return ch
}

func (m *Monitor) notify() {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Run refreshes on the configured cadence until ctx is done. Refresh
// errors are logged and the loop keeps going; the server may simply not
// be up yet.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	if err := m.Refresh(ctx); err != nil {
		m.log.Warn("session refresh failed", logging.F("err", err))
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.Refresh(ctx); err != nil {
				m.log.Warn("session refresh failed", logging.F("err", err))
			}
		}
	}
}

// sameSessions compares the list-visible fields only; output or timing
// details do not count as a list change.
func sameSessions(a, b []types.Session) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Name != b[i].Name || a[i].Status != b[i].Status {
			return false
		}
	}
	return true
}
