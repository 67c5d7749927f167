package session

import (
	"errors"
	"fmt"
)

// Kind identifies one member of the closed failure set shared by all
// session operations. Every kind maps to a fixed, user-presentable
// message; callers never need to unwrap transport errors to render one.
type Kind int

const (
	// KindInvalidName rejects an empty-after-trim session name before
	// any request is made.
	KindInvalidName Kind = iota + 1
	// KindInvalidURL reports that a request target could not be built.
	KindInvalidURL
	// KindServerNotRunning reports a failed server-running precondition.
	KindServerNotRunning
	// KindRequestFailed carries a non-success HTTP status, or
	// StatusNone when no status was ever obtained.
	KindRequestFailed
	// KindCreateFailed carries the server's error payload for a failed
	// create, or a generic message when none was parseable.
	KindCreateFailed
	// KindInvalidResponse reports a success status with a malformed or
	// incomplete body.
	KindInvalidResponse
)

// StatusNone marks failures that never produced an HTTP status.
const StatusNone = -1

type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidName:
		return "session name cannot be empty"
	case KindInvalidURL:
		return "could not build a request for the terminal server"
	case KindServerNotRunning:
		return "the terminal server is not running"
	case KindRequestFailed:
		return fmt.Sprintf("server request failed (status %d)", e.Status)
	case KindCreateFailed:
		if e.Message != "" {
			return "failed to create session: " + e.Message
		}
		return "failed to create session"
	case KindInvalidResponse:
		return "the server returned an unexpected response"
	}
	return "session operation failed"
}

func errInvalidName() *Error {
	return &Error{Kind: KindInvalidName, Status: StatusNone}
}

func errInvalidURL() *Error {
	return &Error{Kind: KindInvalidURL, Status: StatusNone}
}

func errServerNotRunning() *Error {
	return &Error{Kind: KindServerNotRunning, Status: StatusNone}
}

func errRequestFailed(status int) *Error {
	return &Error{Kind: KindRequestFailed, Status: status}
}

func errCreateFailed(status int, message string) *Error {
	return &Error{Kind: KindCreateFailed, Status: status, Message: message}
}

func errInvalidResponse() *Error {
	return &Error{Kind: KindInvalidResponse, Status: StatusNone}
}

// AsError extracts the typed error, or nil when err is of another
// shape.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

func IsKind(err error, kind Kind) bool {
	e := AsError(err)
	return e != nil && e.Kind == kind
}
