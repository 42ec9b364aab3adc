package main

import (
	"fmt"
	"os"
)

const version = "0.3.0"

const usageText = `jot keeps your notes on a small HTTP backend.

Usage:
  jot <command> [flags]

Commands:
  ui       run the terminal UI (default)
  serve    run the bundled notes server
  config   print effective configuration
  help     show help

Flags:
  -h, --help   show help

Serve flags:
  --addr   listen address (overrides config)
  --db     path to the notes database (overrides default)

Examples:
  jot serve --addr 127.0.0.1:8391
  jot ui
  jot config --defaults
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	name := "ui"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	switch name {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", name)
		printUsage()
		os.Exit(2)
	}
	if err := runner.Run(args); err != nil {
		fmt.Fprintf(os.Stderr, "jot %s: %v\n", name, err)
		os.Exit(1)
	}
}
