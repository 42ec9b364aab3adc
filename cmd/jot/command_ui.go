package main

import (
	"flag"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jot/internal/app"
	"jot/internal/client"
	"jot/internal/config"
)

type UICommand struct {
	stderr io.Writer
}

func NewUICommand(stderr io.Writer) *UICommand {
	return &UICommand{stderr: stderr}
}

func (c *UICommand) Run(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	baseURL := fs.String("api", "", "notes API base URL (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	target := cfg.APIBaseURL()
	if *baseURL != "" {
		target = *baseURL
	}

	if os.Getenv("JOT_DEBUG") != "" {
		if _, err := ensureDataDir(); err != nil {
			return err
		}
		logPath, err := config.UILogPath()
		if err != nil {
			return err
		}
		logFile, err := tea.LogToFile(logPath, "jot")
		if err != nil {
			return err
		}
		defer logFile.Close()
	}

	api := client.New(target, cfg.APITimeout())
	program := tea.NewProgram(app.NewModel(api), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// ensureDataDir creates ~/.jot so commands that log or persist there do not
// fail on a fresh machine.
func ensureDataDir() (string, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return "", err
	}
	return dataDir, nil
}
