package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"termlink/internal/session"
	"termlink/internal/types"
)

type NewCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewNewCommand(stdout, stderr io.Writer, newClient clientFactory) *NewCommand {
	return &NewCommand{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newClient,
	}
}

func (c *NewCommand) Run(args []string) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	name := fs.String("name", "", "display name for the session")
	cwd := fs.String("cwd", ".", "working directory for the session")
	titleMode := fs.String("title-mode", "dynamic", "title mode: static, dynamic, or filter")
	spawn := fs.Bool("spawn", false, "let the server open a native terminal")
	cols := fs.Int("cols", 0, "pty columns (ignored with --spawn)")
	rows := fs.Int("rows", 0, "pty rows (ignored with --spawn)")
	window := fs.Bool("window", false, "open a local terminal window for the new session")
	if err := fs.Parse(args); err != nil {
		return err
	}
	command := fs.Args()
	if len(command) == 0 {
		return errors.New("new requires a command, e.g. termlink new -- bash -l")
	}

	mode, err := types.ParseTitleMode(*titleMode)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := c.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := client.Create(ctx, command, *cwd, session.CreateOptions{
		Name:          *name,
		TitleMode:     mode,
		SpawnTerminal: *spawn,
		Cols:          *cols,
		Rows:          *rows,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, id)

	if *window {
		pid, err := client.OpenWindow(id)
		if err != nil {
			return fmt.Errorf("session %s created, but window failed to open: %w", id, err)
		}
		fmt.Fprintf(c.stdout, "window pid %d\n", pid)
	}
	return nil
}
