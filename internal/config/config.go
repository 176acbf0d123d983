// Package config loads the spyglass configuration file and applies
// environment overrides. A missing file is not an error; the dashboard
// works against a local cluster out of the box.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything the dashboard needs to reach one cluster.
type Config struct {
	ClusterURL     string
	PageSize       int64
	RefreshEvery   time.Duration
	RequestTimeout time.Duration
}

const (
	defaultConfigPath = "~/.config/spyglass/config.toml"
	defaultPageSize   = 5
	defaultRefresh    = 10 * time.Second
	defaultTimeout    = 3 * time.Second
)

// Environment variables consulted for the cluster URL, in order.
// ES_URL is kept for compatibility with other elasticsearch tooling.
var urlEnvVars = []string{"SPYGLASS_URL", "ES_URL"}

// Load locates and parses the config file, falling back to defaults when
// missing. Environment variables override the file's cluster URL.
func Load(path string) (Config, error) {
	cfg := Config{
		PageSize:       defaultPageSize,
		RefreshEvery:   defaultRefresh,
		RequestTimeout: defaultTimeout,
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.ClusterURL = urlFromEnv()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ClusterURL     string `toml:"cluster_url"`
		PageSize       int64  `toml:"page_size"`
		RefreshSeconds int64  `toml:"refresh_seconds"`
		TimeoutSeconds int64  `toml:"timeout_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.ClusterURL = strings.TrimSpace(raw.ClusterURL)
	if env := urlFromEnv(); env != "" {
		cfg.ClusterURL = env
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.RefreshSeconds > 0 {
		cfg.RefreshEvery = time.Duration(raw.RefreshSeconds) * time.Second
	}
	if raw.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	return cfg, nil
}

func urlFromEnv() string {
	for _, key := range urlEnvVars {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
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
