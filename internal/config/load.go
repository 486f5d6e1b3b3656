package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load reads configuration from path, falling back to built-in defaults
// when the file does not exist. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No config file is fine, defaults apply.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if cfg.Paths.Output == "" {
		cfg.Paths.Output = defaultDataDir("output")
	}
	if cfg.Paths.Inbox == "" {
		cfg.Paths.Inbox = defaultDataDir("inbox")
	}
	if cfg.Paths.Temp == "" {
		cfg.Paths.Temp = defaultDataDir("temp")
	}
	if cfg.Storage.StateDir == "" {
		cfg.Storage.StateDir = defaultStateDir()
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "briefflow", "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "briefflow", "config.yaml")
	}
	return "config.yaml"
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BRIEFFLOW_OUTPUT_DIR"); v != "" {
		cfg.Paths.Output = v
	}
	if v := os.Getenv("BRIEFFLOW_INBOX_DIR"); v != "" {
		cfg.Paths.Inbox = v
	}
	if v := os.Getenv("BRIEFFLOW_STATE_DIR"); v != "" {
		cfg.Storage.StateDir = v
	}
	if v := os.Getenv("BRIEFFLOW_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("BRIEFFLOW_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func defaultDataDir(sub string) string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "briefflow", sub)
	}
	return filepath.Join("data", sub)
}

func defaultStateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "briefflow")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "briefflow")
	}
	return filepath.Join("data", "state")
}

func defaultInputFlag() string {
	switch runtime.GOOS {
	case "darwin":
		return "avfoundation"
	case "windows":
		return "dshow"
	default:
		return "pulse"
	}
}

func defaultDevice() string {
	switch runtime.GOOS {
	case "darwin":
		return ":default"
	case "windows":
		return "audio=default"
	default:
		return "default"
	}
}
