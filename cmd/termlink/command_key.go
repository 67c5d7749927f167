package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
)

type KeyCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewKeyCommand(stdout, stderr io.Writer, newClient clientFactory) *KeyCommand {
	return &KeyCommand{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newClient,
	}
}

func (c *KeyCommand) Run(args []string) error {
	fs := flag.NewFlagSet("key", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return errors.New("key requires a session id and a key name")
	}
	id := fs.Arg(0)
	key := fs.Arg(1)

	ctx := context.Background()
	client, err := c.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.SendKey(ctx, id, key); err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, "ok")
	return nil
}
