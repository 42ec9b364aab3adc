package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"jot/internal/config"
	"jot/internal/logging"
	"jot/internal/server"
	"jot/internal/store"
)

type ServeCommand struct {
	stderr  io.Writer
	version string
}

func NewServeCommand(stderr io.Writer, version string) *ServeCommand {
	return &ServeCommand{stderr: stderr, version: version}
}

func (c *ServeCommand) Run(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	addr := fs.String("addr", "", "listen address (overrides config)")
	dbPath := fs.String("db", "", "path to the notes database")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	listenAddr := cfg.ServerAddress()
	if *addr != "" {
		listenAddr = *addr
	}

	if _, err := ensureDataDir(); err != nil {
		return err
	}
	path := *dbPath
	if path == "" {
		path, err = config.DBPath()
		if err != nil {
			return err
		}
	}

	notes, err := store.Open(path)
	if err != nil {
		return err
	}
	defer notes.Close()

	logger := logging.New(os.Stdout, logging.ParseLevel(cfg.LogLevel()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(listenAddr, c.version, notes, logger).Run(ctx)
}
