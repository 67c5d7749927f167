// Package transport is the HTTP substrate for all session operations:
// one request in, one status and body out.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"termlink/internal/auth"
	"termlink/internal/logging"
)

// The server only accepts requests addressed to localhost, regardless
// of which loopback address the client dials.
const pinnedHost = "localhost"

const healthPath = "/api/health"

// ErrInvalidTarget reports that a request URL could not be built from
// the configured endpoint and the given path.
var ErrInvalidTarget = errors.New("invalid request target")

// Response is the outcome of one executed request. Status is the HTTP
// status code; StatusNone when the request never produced one.
type Response struct {
	Status int
	Body   []byte
}

const StatusNone = -1

type Transport struct {
	baseURL string
	auth    auth.Authenticator
	http    *http.Client
	log     logging.Logger
}

func New(baseURL string, authenticator auth.Authenticator, timeout time.Duration, log logging.Logger) *Transport {
	if authenticator == nil {
		authenticator = auth.None{}
	}
	if log == nil {
		log = logging.Nop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		auth:    authenticator,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Do executes one authenticated request and returns the raw status and
// body. A JSON content type is set whenever a body is present. Errors
// carry Response.Status == StatusNone unless a response was received.
func (t *Transport) Do(ctx context.Context, method, path string, body any) (Response, error) {
	return t.do(ctx, method, path, body, true)
}

func (t *Transport) do(ctx context.Context, method, path string, body any, withAuth bool) (Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return Response{Status: StatusNone}, err
		}
		reader = bytes.NewReader(buf)
	}

	target := t.baseURL + path
	if _, err := url.ParseRequestURI(target); err != nil {
		return Response{Status: StatusNone}, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return Response{Status: StatusNone}, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	req.Host = pinnedHost
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth {
		if err := t.auth.Apply(req); err != nil {
			return Response{Status: StatusNone}, err
		}
	}

	requestID := logging.NewRequestID()
	t.log.Debug("request", logging.F("id", requestID), logging.F("method", method), logging.F("path", path))

	resp, err := t.http.Do(req)
	if err != nil {
		t.log.Debug("request failed", logging.F("id", requestID), logging.F("err", err))
		return Response{Status: StatusNone}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{Status: resp.StatusCode}, err
	}
	t.log.Debug("response", logging.F("id", requestID), logging.F("status", resp.StatusCode))
	return Response{Status: resp.StatusCode, Body: data}, nil
}

type HealthInfo struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Health probes the server without authentication; the health endpoint
// is reachable before the token file exists.
func (t *Transport) Health(ctx context.Context) (HealthInfo, error) {
	resp, err := t.do(ctx, http.MethodGet, healthPath, nil, false)
	if err != nil {
		return HealthInfo{}, err
	}
	if resp.Status != http.StatusOK {
		return HealthInfo{}, fmt.Errorf("health probe failed (status %d)", resp.Status)
	}
	var info HealthInfo
	if err := json.Unmarshal(resp.Body, &info); err != nil {
		return HealthInfo{}, err
	}
	return info, nil
}

// ServerRunning reports whether the server answered the health probe.
func (t *Transport) ServerRunning(ctx context.Context) bool {
	_, err := t.Health(ctx)
	return err == nil
}
