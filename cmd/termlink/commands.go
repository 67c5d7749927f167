package main

import (
	"io"
	"os"
)

type commandRunner interface {
	Run(args []string) error
}

type commandWiring struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newTermlinkClient,
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"ls":     NewLSCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"new":    NewNewCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"rename": NewRenameCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"send":   NewSendCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"key":    NewKeyCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"kill":   NewKillCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"open":   NewOpenCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"watch":  NewWatchCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"config": NewConfigCommand(wiring.stdout, wiring.stderr),
	}
}
