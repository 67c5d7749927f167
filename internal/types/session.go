package types

import (
	"fmt"
	"strings"
	"time"
)

type SessionStatus string

const (
	SessionStatusStarting SessionStatus = "starting"
	SessionStatusRunning  SessionStatus = "running"
	SessionStatusExited   SessionStatus = "exited"
)

// TitleMode controls how the server manages a session's terminal title.
type TitleMode string

const (
	// TitleModeStatic keeps the title the session was created with.
	TitleModeStatic TitleMode = "static"
	// TitleModeDynamic lets the running process update the title.
	TitleModeDynamic TitleMode = "dynamic"
	// TitleModeFilter strips title escape sequences from output.
	TitleModeFilter TitleMode = "filter"
)

func ParseTitleMode(raw string) (TitleMode, error) {
	switch TitleMode(strings.ToLower(strings.TrimSpace(raw))) {
	case TitleModeStatic:
		return TitleModeStatic, nil
	case TitleModeDynamic, "":
		return TitleModeDynamic, nil
	case TitleModeFilter:
		return TitleModeFilter, nil
	}
	return "", fmt.Errorf("unknown title mode: %q", raw)
}

// Session is the client's view of one server-hosted process session.
// The ID is server-assigned and immutable for the session's lifetime;
// everything except Name is fixed at creation.
type Session struct {
	ID            string        `json:"sessionId"`
	Name          string        `json:"name,omitempty"`
	Command       []string      `json:"command"`
	WorkingDir    string        `json:"workingDir,omitempty"`
	TitleMode     TitleMode     `json:"titleMode,omitempty"`
	SpawnTerminal bool          `json:"spawnTerminal,omitempty"`
	Cols          int           `json:"cols,omitempty"`
	Rows          int           `json:"rows,omitempty"`
	Status        SessionStatus `json:"status"`
	PID           int           `json:"pid,omitempty"`
	ExitCode      *int          `json:"exitCode,omitempty"`
	StartedAt     time.Time     `json:"startedAt"`
	ExitedAt      *time.Time    `json:"exitedAt,omitempty"`
}

func (s Session) Alive() bool {
	return s.Status == SessionStatusStarting || s.Status == SessionStatusRunning
}

// DisplayName is the name shown in listings: the user-set name when
// present, otherwise the joined command line.
func (s Session) DisplayName() string {
	if name := strings.TrimSpace(s.Name); name != "" {
		return name
	}
	return strings.Join(s.Command, " ")
}
