package main

import (
	"flag"
	"io"

	"termlink/internal/config"
)

type ConfigCommand struct {
	stdout io.Writer
	stderr io.Writer
}

func NewConfigCommand(stdout, stderr io.Writer) *ConfigCommand {
	return &ConfigCommand{
		stdout: stdout,
		stderr: stderr,
	}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("defaults", false, "print the built-in defaults instead of the effective configuration")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if !*defaults {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = c.stdout.Write(data)
	return err
}
