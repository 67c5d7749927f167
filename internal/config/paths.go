package config

import (
	"os"
	"path/filepath"
)

const appDirName = ".termlink"

// DataDir returns the base data directory for termlink.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the path to the client configuration file.
func ConfigPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "config.toml"), nil
}

// TokenPath returns the path to the server auth token file.
func TokenPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "token"), nil
}

// WindowRegistryPath returns the path to the spawned-window registry.
func WindowRegistryPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "windows.db"), nil
}

// LogPath returns the path to the client log file.
func LogPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "client.log"), nil
}
