package session

import "termlink/internal/types"

type createRequest struct {
	Command    []string        `json:"command"`
	WorkingDir string          `json:"workingDir"`
	Name       string          `json:"name,omitempty"`
	TitleMode  types.TitleMode `json:"titleMode"`
	// SpawnTerminal asks the server to open a native terminal itself;
	// cols/rows are omitted in that case because the server owns sizing.
	SpawnTerminal bool `json:"spawnTerminal,omitempty"`
	Cols          int  `json:"cols,omitempty"`
	Rows          int  `json:"rows,omitempty"`
}

type createResponse struct {
	SessionID string `json:"sessionId"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type renameRequest struct {
	Name string `json:"name"`
}

// inputRequest is shared by SendInput and SendKey; exactly one field is
// populated per request.
type inputRequest struct {
	Text string `json:"text,omitempty"`
	Key  string `json:"key,omitempty"`
}
