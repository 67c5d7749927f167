package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"termlink/internal/session"
	"termlink/internal/types"
)

type fakeCommandClient struct {
	createID   string
	createErr  error
	createOpts session.CreateOptions
	createCmd  []string
	createCwd  string

	renamed    [][2]string
	sentText   [][2]string
	sentKeys   [][2]string
	terminated []string
	refreshed  int
	sessions   []types.Session
	openedFor  []string
	closed     bool
}

func (f *fakeCommandClient) Create(_ context.Context, command []string, workingDir string, opts session.CreateOptions) (string, error) {
	f.createCmd = command
	f.createCwd = workingDir
	f.createOpts = opts
	return f.createID, f.createErr
}

func (f *fakeCommandClient) Rename(_ context.Context, id, name string) error {
	f.renamed = append(f.renamed, [2]string{id, name})
	return nil
}

func (f *fakeCommandClient) SendInput(_ context.Context, id, text string) error {
	f.sentText = append(f.sentText, [2]string{id, text})
	return nil
}

func (f *fakeCommandClient) SendKey(_ context.Context, id, key string) error {
	f.sentKeys = append(f.sentKeys, [2]string{id, key})
	return nil
}

func (f *fakeCommandClient) Terminate(_ context.Context, id string) error {
	f.terminated = append(f.terminated, id)
	return nil
}

func (f *fakeCommandClient) Refresh(context.Context) error {
	f.refreshed++
	return nil
}

func (f *fakeCommandClient) Sessions() []types.Session {
	return f.sessions
}

func (f *fakeCommandClient) SubscribeSessions() <-chan struct{} {
	return make(chan struct{})
}

func (f *fakeCommandClient) RunMonitor(context.Context) {}

func (f *fakeCommandClient) OpenWindow(id string) (int, error) {
	f.openedFor = append(f.openedFor, id)
	return 4242, nil
}

func (f *fakeCommandClient) Close() error {
	f.closed = true
	return nil
}

func fixedFactory(client commandClient) clientFactory {
	return func() (commandClient, error) { return client, nil }
}

func TestBuildCommandsCoversAll(t *testing.T) {
	commands := buildCommands(defaultCommandWiring(&bytes.Buffer{}, &bytes.Buffer{}))
	for _, name := range []string{"ls", "new", "rename", "send", "key", "kill", "open", "watch", "config"} {
		if _, ok := commands[name]; !ok {
			t.Fatalf("missing command: %s", name)
		}
	}
}

func TestNewCommandWritesSessionID(t *testing.T) {
	stdout := &bytes.Buffer{}
	fake := &fakeCommandClient{createID: "session-123"}
	cmd := NewNewCommand(stdout, &bytes.Buffer{}, fixedFactory(fake))

	err := cmd.Run([]string{
		"--cwd", "/tmp/project",
		"--name", "build",
		"--cols", "100",
		"--rows", "40",
		"--", "make", "-j4",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "session-123" {
		t.Fatalf("unexpected output: %q", got)
	}
	if strings.Join(fake.createCmd, " ") != "make -j4" {
		t.Fatalf("unexpected command: %v", fake.createCmd)
	}
	if fake.createCwd != "/tmp/project" {
		t.Fatalf("unexpected cwd: %q", fake.createCwd)
	}
	if fake.createOpts.Name != "build" || fake.createOpts.Cols != 100 || fake.createOpts.Rows != 40 {
		t.Fatalf("unexpected options: %+v", fake.createOpts)
	}
	if !fake.closed {
		t.Fatal("client must be closed")
	}
}

func TestNewCommandRequiresACommand(t *testing.T) {
	cmd := NewNewCommand(&bytes.Buffer{}, &bytes.Buffer{}, fixedFactory(&fakeCommandClient{}))
	if err := cmd.Run([]string{"--cwd", "/tmp"}); err == nil {
		t.Fatal("expected an error without a command")
	}
}

func TestNewCommandRejectsBadTitleMode(t *testing.T) {
	cmd := NewNewCommand(&bytes.Buffer{}, &bytes.Buffer{}, fixedFactory(&fakeCommandClient{}))
	if err := cmd.Run([]string{"--title-mode", "bogus", "--", "bash"}); err == nil {
		t.Fatal("expected an error for a bad title mode")
	}
}

func TestNewCommandOpensWindowWhenAsked(t *testing.T) {
	fake := &fakeCommandClient{createID: "session-123"}
	cmd := NewNewCommand(&bytes.Buffer{}, &bytes.Buffer{}, fixedFactory(fake))

	if err := cmd.Run([]string{"--window", "--", "bash"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(fake.openedFor) != 1 || fake.openedFor[0] != "session-123" {
		t.Fatalf("unexpected window opens: %v", fake.openedFor)
	}
}

func TestRenameCommandJoinsNameArgs(t *testing.T) {
	fake := &fakeCommandClient{}
	cmd := NewRenameCommand(&bytes.Buffer{}, &bytes.Buffer{}, fixedFactory(fake))

	if err := cmd.Run([]string{"abc123", "build", "shell"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(fake.renamed) != 1 || fake.renamed[0] != [2]string{"abc123", "build shell"} {
		t.Fatalf("unexpected renames: %v", fake.renamed)
	}
}

func TestRenameCommandRequiresArgs(t *testing.T) {
	cmd := NewRenameCommand(&bytes.Buffer{}, &bytes.Buffer{}, fixedFactory(&fakeCommandClient{}))
	if err := cmd.Run([]string{"abc123"}); err == nil {
		t.Fatal("expected an error without a new name")
	}
}

func TestSendCommandAppendsNewline(t *testing.T) {
	fake := &fakeCommandClient{}
	cmd := NewSendCommand(&bytes.Buffer{}, &bytes.Buffer{}, fixedFactory(fake))

	if err := cmd.Run([]string{"--newline", "abc123", "echo", "hi"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(fake.sentText) != 1 || fake.sentText[0] != [2]string{"abc123", "echo hi\n"} {
		t.Fatalf("unexpected sends: %v", fake.sentText)
	}
}

func TestKeyCommand(t *testing.T) {
	fake := &fakeCommandClient{}
	cmd := NewKeyCommand(&bytes.Buffer{}, &bytes.Buffer{}, fixedFactory(fake))

	if err := cmd.Run([]string{"abc123", "enter"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(fake.sentKeys) != 1 || fake.sentKeys[0] != [2]string{"abc123", "enter"} {
		t.Fatalf("unexpected keys: %v", fake.sentKeys)
	}
}

func TestKillCommandTerminatesEachID(t *testing.T) {
	stdout := &bytes.Buffer{}
	fake := &fakeCommandClient{}
	cmd := NewKillCommand(stdout, &bytes.Buffer{}, fixedFactory(fake))

	if err := cmd.Run([]string{"a", "b"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Join(fake.terminated, ",") != "a,b" {
		t.Fatalf("unexpected terminations: %v", fake.terminated)
	}
}

func TestKillCommandRequiresID(t *testing.T) {
	cmd := NewKillCommand(&bytes.Buffer{}, &bytes.Buffer{}, fixedFactory(&fakeCommandClient{}))
	if err := cmd.Run(nil); err == nil {
		t.Fatal("expected an error without a session id")
	}
}

func TestLSCommandRefreshesBeforePrinting(t *testing.T) {
	stdout := &bytes.Buffer{}
	fake := &fakeCommandClient{sessions: []types.Session{
		{ID: "a", Command: []string{"bash"}, Status: types.SessionStatusRunning},
		{ID: "b", Command: []string{"vim"}, Status: types.SessionStatusExited},
	}}
	cmd := NewLSCommand(stdout, &bytes.Buffer{}, fixedFactory(fake))

	if err := cmd.Run(nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if fake.refreshed != 1 {
		t.Fatalf("expected one refresh, got %d", fake.refreshed)
	}
	out := stdout.String()
	if !strings.Contains(out, "bash") || !strings.Contains(out, "vim") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestLSCommandAliveFilter(t *testing.T) {
	stdout := &bytes.Buffer{}
	fake := &fakeCommandClient{sessions: []types.Session{
		{ID: "a", Command: []string{"bash"}, Status: types.SessionStatusRunning},
		{ID: "b", Command: []string{"vim"}, Status: types.SessionStatusExited},
	}}
	cmd := NewLSCommand(stdout, &bytes.Buffer{}, fixedFactory(fake))

	if err := cmd.Run([]string{"--alive"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "bash") || strings.Contains(out, "vim") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	stdout := &bytes.Buffer{}
	cmd := NewConfigCommand(stdout, &bytes.Buffer{})

	if err := cmd.Run([]string{"--defaults"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "port = 4020") {
		t.Fatalf("defaults output missing port:\n%s", out)
	}
	if !strings.Contains(out, "[logging]") {
		t.Fatalf("defaults output missing logging section:\n%s", out)
	}
}
