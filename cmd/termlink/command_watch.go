package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

type WatchCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewWatchCommand(stdout, stderr io.Writer, newClient clientFactory) *WatchCommand {
	return &WatchCommand{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newClient,
	}
}

// Run follows the monitor's periodic refresh, reprinting the session
// list whenever the snapshot changes, until interrupted.
func (c *WatchCommand) Run(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := c.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	changes := client.SubscribeSessions()
	go client.RunMonitor(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			fmt.Fprintln(c.stdout)
			printSessions(c.stdout, client.Sessions())
		}
	}
}
