package main

import (
	"context"
	"flag"
	"io"
)

type LSCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewLSCommand(stdout, stderr io.Writer, newClient clientFactory) *LSCommand {
	return &LSCommand{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newClient,
	}
}

func (c *LSCommand) Run(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	aliveOnly := fs.Bool("alive", false, "show only starting/running sessions")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	client, err := c.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Refresh(ctx); err != nil {
		return err
	}
	sessions := client.Sessions()
	if *aliveOnly {
		filtered := sessions[:0]
		for _, s := range sessions {
			if s.Alive() {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}
	printSessions(c.stdout, sessions)
	return nil
}
