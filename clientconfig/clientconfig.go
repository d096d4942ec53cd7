// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package clientconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// BuildEndpointURL is the relay URL baked in at build time:
//
//	go build -ldflags "-X github.com/danielhkuo/meikai-waitlist/clientconfig.BuildEndpointURL=https://..."
var BuildEndpointURL = ""

// EnvEndpointURL overrides the file and the build default.
const EnvEndpointURL = "WAITLIST_PUBLIC_ENDPOINT_URL"

const defaultConfigPath = "~/.config/meikai/waitlist.toml"

// Config is what the terminal client needs to submit.
type Config struct {
	// EndpointURL is where signups are posted. Empty means unconfigured;
	// the client then reports a failure on every valid submit.
	EndpointURL string
	// Path is the resolved file that was consulted, present or not.
	Path string
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the client config. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Path: resolved}

	fileURL, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}
	cfg.EndpointURL = fileURL

	if env := strings.TrimSpace(os.Getenv(EnvEndpointURL)); env != "" {
		cfg.EndpointURL = env
	}
	if cfg.EndpointURL == "" {
		cfg.EndpointURL = strings.TrimSpace(BuildEndpointURL)
	}

	return cfg, nil
}

func readFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		EndpointURL string `toml:"endpoint_url"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return "", fmt.Errorf("parse config: %w", err)
	}

	return strings.TrimSpace(raw.EndpointURL), nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
