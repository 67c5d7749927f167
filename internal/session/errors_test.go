package session

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorDescriptions(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{errInvalidName(), "session name cannot be empty"},
		{errInvalidURL(), "could not build a request for the terminal server"},
		{errServerNotRunning(), "the terminal server is not running"},
		{errRequestFailed(404), "server request failed (status 404)"},
		{errRequestFailed(StatusNone), "server request failed (status -1)"},
		{errCreateFailed(507, "disk full"), "failed to create session: disk full"},
		{errCreateFailed(500, ""), "failed to create session"},
		{errInvalidResponse(), "the server returned an unexpected response"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("got %q want %q", got, tc.want)
		}
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("rename %q: %w", "abc", errRequestFailed(404))
	if !IsKind(wrapped, KindRequestFailed) {
		t.Fatal("IsKind must see through wrapping")
	}
	if IsKind(wrapped, KindInvalidName) {
		t.Fatal("IsKind must match the kind, not just the type")
	}
	if IsKind(errors.New("plain"), KindRequestFailed) {
		t.Fatal("IsKind must reject untyped errors")
	}
	if AsError(errors.New("plain")) != nil {
		t.Fatal("AsError must reject untyped errors")
	}
}

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"Return":  "enter",
		" esc ":   "escape",
		"up":      "arrow_up",
		"enter":   "enter",
		"ctrl+c":  "ctrl+c",
		"unknown": "unknown",
	}
	for raw, want := range cases {
		if got := normalizeKey(raw); got != want {
			t.Fatalf("normalizeKey(%q): got %q want %q", raw, got, want)
		}
	}
}
