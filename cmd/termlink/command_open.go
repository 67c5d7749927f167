package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

type OpenCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewOpenCommand(stdout, stderr io.Writer, newClient clientFactory) *OpenCommand {
	return &OpenCommand{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newClient,
	}
}

func (c *OpenCommand) Run(args []string) error {
	fs := flag.NewFlagSet("open", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("open requires a session id")
	}
	id := fs.Arg(0)

	client, err := c.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	pid, err := client.OpenWindow(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "window pid %d\n", pid)
	return nil
}
