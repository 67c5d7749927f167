package main

import (
	"fmt"
	"os"
)

const usageText = `termlink drives sessions on a local terminal-hosting server.

Usage:
  termlink <command> [flags]

Commands:
  ls       list sessions
  new      create a session
  rename   rename a session
  send     send text to a session's stdin
  key      send a named key to a session
  kill     terminate a session
  open     open a local terminal window for a session
  watch    follow session list changes
  config   print configuration (effective or defaults)
  help     show help

Flags:
  -h, --help   show help

Examples:
  termlink ls
  termlink new --cwd /tmp --name build -- make -j4
  termlink rename s1 "build shell"
  termlink send s1 "echo hello"
  termlink key s1 enter
  termlink kill s1
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return
	}

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
