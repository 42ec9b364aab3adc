package config

import (
	"errors"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultServerAddress = "127.0.0.1:8391"
const defaultAPITimeoutSeconds = 10

type Config struct {
	Server  ServerConfig  `toml:"server"`
	API     APIConfig     `toml:"api"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	Address string `toml:"address"`
}

type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Address: defaultServerAddress,
		},
		API: APIConfig{
			TimeoutSeconds: defaultAPITimeoutSeconds,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func LoadConfig() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return loadConfigFromPath(path)
}

func loadConfigFromPath(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return toml.Unmarshal(data, out)
}

func (c Config) ServerAddress() string {
	addr := strings.TrimSpace(c.Server.Address)
	addr = strings.TrimPrefix(addr, "http://")
	addr = strings.TrimPrefix(addr, "https://")
	addr = strings.TrimRight(addr, "/")
	if addr == "" {
		return defaultServerAddress
	}
	return addr
}

// APIBaseURL is the notes backend the UI talks to. It defaults to the
// bundled server's address when the config does not name a remote one.
func (c Config) APIBaseURL() string {
	base := strings.TrimSpace(c.API.BaseURL)
	if base == "" {
		return "http://" + c.ServerAddress()
	}
	return strings.TrimRight(base, "/")
}

func (c Config) APITimeout() time.Duration {
	seconds := c.API.TimeoutSeconds
	if seconds <= 0 {
		seconds = defaultAPITimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}

func (c Config) MarshalTOML() ([]byte, error) {
	return toml.Marshal(c)
}
