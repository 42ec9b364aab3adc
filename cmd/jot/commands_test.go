package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildCommandsCoversUsage(t *testing.T) {
	wiring := defaultCommandWiring(&bytes.Buffer{}, &bytes.Buffer{})
	commands := buildCommands(wiring)
	for _, name := range []string{"ui", "serve", "config"} {
		if _, ok := commands[name]; !ok {
			t.Fatalf("missing command %q", name)
		}
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	t.Setenv("HOME", filepath.Join(t.TempDir(), "home"))
	stdout := &bytes.Buffer{}
	cmd := NewConfigCommand(stdout, &bytes.Buffer{})

	if err := cmd.Run([]string{"--defaults"}); err != nil {
		t.Fatalf("config run: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "config.toml") {
		t.Fatalf("expected config path header, got %q", out)
	}
	if !strings.Contains(out, "address = '127.0.0.1:8391'") {
		t.Fatalf("expected default server address, got %q", out)
	}
}

func TestConfigCommandRejectsUnknownFlag(t *testing.T) {
	cmd := NewConfigCommand(&bytes.Buffer{}, &bytes.Buffer{})
	if err := cmd.Run([]string{"--nope"}); err == nil {
		t.Fatalf("expected unknown flag to fail")
	}
}
