package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultServerHost      = "127.0.0.1"
	defaultServerPort      = 4020
	defaultRequestTimeout  = 10 * time.Second
	defaultRefreshInterval = 3 * time.Second
)

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Monitor MonitorConfig `toml:"monitor"`
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	RequestTimeout string `toml:"request_timeout"`
}

type MonitorConfig struct {
	RefreshInterval string `toml:"refresh_interval"`
}

// WindowConfig describes how to open a local terminal window attached
// to a session. Command is the emulator prefix; the session id is
// appended as the final argument.
type WindowConfig struct {
	Command []string `toml:"command"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: defaultServerHost,
			Port: defaultServerPort,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Window: WindowConfig{
			Command: []string{"x-terminal-emulator", "-e"},
		},
	}
}

// Load reads the configuration file under the data directory. A missing
// file yields the defaults.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return loadFromPath(path)
}

func loadFromPath(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// BaseURL returns the server endpoint the client talks to.
func (c Config) BaseURL() string {
	host := strings.TrimSpace(c.Server.Host)
	if host == "" {
		host = defaultServerHost
	}
	port := c.Server.Port
	if port <= 0 {
		port = defaultServerPort
	}
	return fmt.Sprintf("http://%s:%d", host, port)
}

func (c Config) RequestTimeout() time.Duration {
	return parseDuration(c.Server.RequestTimeout, defaultRequestTimeout)
}

func (c Config) RefreshInterval() time.Duration {
	return parseDuration(c.Monitor.RefreshInterval, defaultRefreshInterval)
}

func (c Config) WindowCommand() []string {
	if len(c.Window.Command) == 0 {
		return Default().Window.Command
	}
	return append([]string{}, c.Window.Command...)
}

func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
