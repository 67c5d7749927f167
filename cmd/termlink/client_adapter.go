package main

import (
	"context"
	"os"

	"termlink/internal/auth"
	"termlink/internal/config"
	"termlink/internal/logging"
	"termlink/internal/monitor"
	"termlink/internal/session"
	"termlink/internal/transport"
	"termlink/internal/types"
	"termlink/internal/windows"
)

type clientFactory func() (commandClient, error)

type commandClient interface {
	Create(ctx context.Context, command []string, workingDir string, opts session.CreateOptions) (string, error)
	Rename(ctx context.Context, sessionID, newName string) error
	SendInput(ctx context.Context, sessionID, text string) error
	SendKey(ctx context.Context, sessionID, key string) error
	Terminate(ctx context.Context, sessionID string) error
	Refresh(ctx context.Context) error
	Sessions() []types.Session
	SubscribeSessions() <-chan struct{}
	RunMonitor(ctx context.Context)
	OpenWindow(sessionID string) (int, error)
	Close() error
}

type termlinkClient struct {
	cfg      config.Config
	service  *session.Service
	monitor  *monitor.Monitor
	tracker  *windows.Tracker
	registry windows.Registry
}

func newTermlinkClient() (commandClient, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logging.New(os.Stderr, logging.ParseLevel(cfg.Logging.Level))

	tokenPath, err := config.TokenPath()
	if err != nil {
		return nil, err
	}
	tr := transport.New(cfg.BaseURL(), auth.NewTokenFile(tokenPath), cfg.RequestTimeout(), log)
	mon := monitor.New(tr, cfg.RefreshInterval(), log)

	registryPath, err := config.WindowRegistryPath()
	if err != nil {
		return nil, err
	}
	registry, err := windows.OpenRegistry(registryPath)
	if err != nil {
		return nil, err
	}
	tracker := windows.NewTracker(registry, log)
	// Windows the user closed by hand since the last run are forgotten
	// here rather than signalled later.
	if _, err := tracker.Prune(); err != nil {
		log.Warn("window registry prune failed", logging.F("err", err))
	}

	return &termlinkClient{
		cfg:      cfg,
		service:  session.New(tr, mon, tracker, log),
		monitor:  mon,
		tracker:  tracker,
		registry: registry,
	}, nil
}

func (c *termlinkClient) Create(ctx context.Context, command []string, workingDir string, opts session.CreateOptions) (string, error) {
	return c.service.Create(ctx, command, workingDir, opts)
}

func (c *termlinkClient) Rename(ctx context.Context, sessionID, newName string) error {
	return c.service.Rename(ctx, sessionID, newName)
}

func (c *termlinkClient) SendInput(ctx context.Context, sessionID, text string) error {
	return c.service.SendInput(ctx, sessionID, text)
}

func (c *termlinkClient) SendKey(ctx context.Context, sessionID, key string) error {
	return c.service.SendKey(ctx, sessionID, key)
}

func (c *termlinkClient) Terminate(ctx context.Context, sessionID string) error {
	return c.service.Terminate(ctx, sessionID)
}

func (c *termlinkClient) Refresh(ctx context.Context) error {
	return c.monitor.Refresh(ctx)
}

func (c *termlinkClient) Sessions() []types.Session {
	return c.monitor.Snapshot()
}

func (c *termlinkClient) SubscribeSessions() <-chan struct{} {
	return c.monitor.Subscribe()
}

func (c *termlinkClient) RunMonitor(ctx context.Context) {
	c.monitor.Run(ctx)
}

func (c *termlinkClient) OpenWindow(sessionID string) (int, error) {
	return c.tracker.Open(c.cfg.WindowCommand(), sessionID)
}

func (c *termlinkClient) Close() error {
	return c.registry.Close()
}
