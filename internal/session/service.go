// Package session is the single gateway for session state transitions
// initiated by this client: create, rename, input, and termination
// against the terminal-hosting server, with typed error translation and
// the local side effects that keep client state converged.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"termlink/internal/logging"
	"termlink/internal/transport"
	"termlink/internal/types"
)

const sessionsPath = "/api/sessions"

const (
	defaultCols = 120
	defaultRows = 30
)

// Transport executes one request against the configured server.
// Satisfied by *transport.Transport.
type Transport interface {
	Do(ctx context.Context, method, path string, body any) (transport.Response, error)
	ServerRunning(ctx context.Context) bool
}

// Refresher re-pulls the authoritative session list after a mutating
// call. Satisfied by *monitor.Monitor.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// WindowCloser closes the local window for a session if this client
// opened one. Satisfied by *windows.Tracker.
type WindowCloser interface {
	CloseIfOwned(sessionID string) error
}

type Service struct {
	transport Transport
	monitor   Refresher
	windows   WindowCloser
	log       logging.Logger
}

func New(t Transport, monitor Refresher, windows WindowCloser, log logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{
		transport: t,
		monitor:   monitor,
		windows:   windows,
		log:       log,
	}
}

type CreateOptions struct {
	// Name is trimmed; empty after trim is treated as absent.
	Name string
	// TitleMode defaults to dynamic.
	TitleMode types.TitleMode
	// SpawnTerminal asks the server to open a native terminal; the
	// server owns sizing, so Cols/Rows are ignored when set.
	SpawnTerminal bool
	// Cols/Rows size the headless pty; defaults 120x30.
	Cols int
	Rows int
}

// Create starts a new session and returns the server-assigned id. On
// success the monitor is refreshed before returning, so callers reading
// the snapshot afterward see the new session.
func (s *Service) Create(ctx context.Context, command []string, workingDir string, opts CreateOptions) (string, error) {
	if !s.transport.ServerRunning(ctx) {
		return "", errServerNotRunning()
	}

	req := createRequest{
		Command:    command,
		WorkingDir: workingDir,
		Name:       strings.TrimSpace(opts.Name),
		TitleMode:  opts.TitleMode,
	}
	if req.TitleMode == "" {
		req.TitleMode = types.TitleModeDynamic
	}
	if opts.SpawnTerminal {
		req.SpawnTerminal = true
	} else {
		req.Cols = opts.Cols
		req.Rows = opts.Rows
		if req.Cols <= 0 {
			req.Cols = defaultCols
		}
		if req.Rows <= 0 {
			req.Rows = defaultRows
		}
	}

	resp, err := s.transport.Do(ctx, http.MethodPost, sessionsPath, req)
	if err != nil {
		return "", translate(err)
	}
	if resp.Status != http.StatusOK {
		var payload errorResponse
		if json.Unmarshal(resp.Body, &payload) == nil && strings.TrimSpace(payload.Error) != "" {
			return "", errCreateFailed(resp.Status, payload.Error)
		}
		return "", errCreateFailed(resp.Status, "")
	}

	var created createResponse
	if err := json.Unmarshal(resp.Body, &created); err != nil || strings.TrimSpace(created.SessionID) == "" {
		return "", errInvalidResponse()
	}

	s.refresh(ctx)
	return created.SessionID, nil
}

// Rename changes a session's display name. An empty-after-trim name
// fails fast without a network call.
func (s *Service) Rename(ctx context.Context, sessionID, newName string) error {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return errInvalidName()
	}

	resp, err := s.transport.Do(ctx, http.MethodPatch, sessionPath(sessionID), renameRequest{Name: trimmed})
	if err != nil {
		return translate(err)
	}
	if resp.Status != http.StatusOK {
		return errRequestFailed(resp.Status)
	}

	// The monitor is the only place list state changes; no optimistic
	// local mutation.
	s.refresh(ctx)
	return nil
}

// SendInput writes free text to the session's stdin.
func (s *Service) SendInput(ctx context.Context, sessionID, text string) error {
	return s.sendToInput(ctx, sessionID, inputRequest{Text: text})
}

// SendKey sends a named special key (enter, escape, arrow_up, ...).
func (s *Service) SendKey(ctx context.Context, sessionID, key string) error {
	return s.sendToInput(ctx, sessionID, inputRequest{Key: normalizeKey(key)})
}

func (s *Service) sendToInput(ctx context.Context, sessionID string, req inputRequest) error {
	if !s.transport.ServerRunning(ctx) {
		return errServerNotRunning()
	}
	resp, err := s.transport.Do(ctx, http.MethodPost, sessionPath(sessionID)+"/input", req)
	if err != nil {
		return translate(err)
	}
	if resp.Status != http.StatusOK && resp.Status != http.StatusNoContent {
		return errRequestFailed(resp.Status)
	}
	// Fire-and-forget control signal; no session-list-visible effect,
	// so no refresh.
	return nil
}

// Terminate asks the server to shut the session down and, once the
// server acknowledges, closes the local window if this client opened
// one. The server escalates from a polite signal to a kill internally;
// the client only waits for the single HTTP response. Window cleanup is
// best-effort: its failure is logged, never returned.
func (s *Service) Terminate(ctx context.Context, sessionID string) error {
	resp, err := s.transport.Do(ctx, http.MethodDelete, sessionPath(sessionID), nil)
	if err != nil {
		return translate(err)
	}
	if resp.Status != http.StatusOK && resp.Status != http.StatusNoContent {
		// Not acknowledged: leave any local window open rather than
		// assume the process is gone.
		return errRequestFailed(resp.Status)
	}

	if s.windows != nil {
		if err := s.windows.CloseIfOwned(sessionID); err != nil {
			s.log.Warn("window cleanup failed", logging.F("session", sessionID), logging.F("err", err))
		}
	}
	// No refresh here; the list converges via the monitor's periodic
	// poll.
	return nil
}

func (s *Service) refresh(ctx context.Context) {
	if s.monitor == nil {
		return
	}
	if err := s.monitor.Refresh(ctx); err != nil {
		s.log.Warn("session list refresh failed", logging.F("err", err))
	}
}

func sessionPath(sessionID string) string {
	return sessionsPath + "/" + url.PathEscape(strings.TrimSpace(sessionID))
}

func translate(err error) *Error {
	if errors.Is(err, transport.ErrInvalidTarget) {
		return errInvalidURL()
	}
	return errRequestFailed(StatusNone)
}
