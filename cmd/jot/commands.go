package main

import (
	"io"
	"os"
)

type commandRunner interface {
	Run(args []string) error
}

type commandWiring struct {
	stdout  io.Writer
	stderr  io.Writer
	version string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:  stdout,
		stderr:  stderr,
		version: version,
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"ui":     NewUICommand(wiring.stderr),
		"serve":  NewServeCommand(wiring.stderr, wiring.version),
		"config": NewConfigCommand(wiring.stdout, wiring.stderr),
	}
}
