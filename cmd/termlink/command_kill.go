package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
)

type KillCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewKillCommand(stdout, stderr io.Writer, newClient clientFactory) *KillCommand {
	return &KillCommand{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newClient,
	}
}

func (c *KillCommand) Run(args []string) error {
	fs := flag.NewFlagSet("kill", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("kill requires a session id")
	}

	ctx := context.Background()
	client, err := c.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	for _, id := range fs.Args() {
		if err := client.Terminate(ctx, id); err != nil {
			return fmt.Errorf("kill %s: %w", id, err)
		}
		fmt.Fprintf(c.stdout, "%s terminated\n", id)
	}
	return nil
}
