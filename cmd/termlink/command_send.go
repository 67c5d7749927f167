package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

type SendCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewSendCommand(stdout, stderr io.Writer, newClient clientFactory) *SendCommand {
	return &SendCommand{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newClient,
	}
}

func (c *SendCommand) Run(args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	newline := fs.Bool("newline", false, "append a newline to the text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return errors.New("send requires a session id and text")
	}
	id := fs.Arg(0)
	text := strings.Join(fs.Args()[1:], " ")
	if *newline {
		text += "\n"
	}

	ctx := context.Background()
	client, err := c.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.SendInput(ctx, id, text); err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, "ok")
	return nil
}
