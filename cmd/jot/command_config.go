package main

import (
	"flag"
	"fmt"
	"io"

	"jot/internal/config"
)

type ConfigCommand struct {
	stdout io.Writer
	stderr io.Writer
}

func NewConfigCommand(stdout, stderr io.Writer) *ConfigCommand {
	return &ConfigCommand{stdout: stdout, stderr: stderr}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("defaults", false, "print built-in defaults instead of the effective config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if !*defaults {
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
	}

	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	out, err := cfg.MarshalTOML()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "# %s\n", path)
	_, err = c.stdout.Write(out)
	return err
}
