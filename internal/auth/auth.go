// Package auth attaches credentials to outgoing server requests.
package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"sync"
)

var ErrNoToken = errors.New("auth token not found; is the server running?")

// Authenticator signs a single outgoing request. Implementations are
// stateless with respect to the request.
type Authenticator interface {
	Apply(req *http.Request) error
}

// TokenFile is a bearer-token Authenticator backed by the token file
// the server writes on startup. The token is cached after the first
// successful read and re-read whenever the cache is empty.
type TokenFile struct {
	path string

	mu    sync.Mutex
	token string
}

func NewTokenFile(path string) *TokenFile {
	return &TokenFile{path: path}
}

func (a *TokenFile) Apply(req *http.Request) error {
	token, err := a.load()
	if err != nil {
		return err
	}
	if token == "" {
		return ErrNoToken
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

func (a *TokenFile) load() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.token != "" {
		return a.token, nil
	}
	data, err := os.ReadFile(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	a.token = strings.TrimSpace(string(data))
	return a.token, nil
}

// None is an Authenticator for servers started without auth.
type None struct{}

func (None) Apply(*http.Request) error { return nil }
