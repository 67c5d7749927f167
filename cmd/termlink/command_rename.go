package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

type RenameCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewRenameCommand(stdout, stderr io.Writer, newClient clientFactory) *RenameCommand {
	return &RenameCommand{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newClient,
	}
}

func (c *RenameCommand) Run(args []string) error {
	fs := flag.NewFlagSet("rename", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return errors.New("rename requires a session id and a new name")
	}
	id := fs.Arg(0)
	name := strings.Join(fs.Args()[1:], " ")

	ctx := context.Background()
	client, err := c.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Rename(ctx, id, name); err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, "ok")
	return nil
}
