package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cnharrison/copy-tui/internal/log"
	"github.com/cnharrison/copy-tui/pkg/clipboard"
	"github.com/cnharrison/copy-tui/pkg/copier"
)

const (
	appDirName     = "copy-tui"
	configFileName = "config.yaml"

	defaultStatusSeconds = 5

	envTimeout  = "COPY_TUI_TIMEOUT_MS"
	envBackend  = "COPY_TUI_BACKEND"
	envLogLevel = "COPY_TUI_LOG_LEVEL"
)

// Config holds user settings loaded from YAML, the environment and flags
type Config struct {
	TimeoutMs     int    `yaml:"timeout_ms"`
	Backend       string `yaml:"backend"`
	Pretty        bool   `yaml:"pretty"`
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	StatusSeconds int    `yaml:"status_seconds"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		TimeoutMs:     int(copier.DefaultTimeout / time.Millisecond),
		Backend:       clipboard.BackendAuto,
		LogLevel:      "info",
		StatusSeconds: defaultStatusSeconds,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/copy-tui/config.yaml or the
// platform equivalent
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", configFileName)
	}
	return filepath.Join(dir, appDirName, configFileName)
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Debug("config: %s not found, using defaults", path)
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(envTimeout); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envTimeout, err)
		}
		c.TimeoutMs = ms
	}
	if v := getenv(envBackend); v != "" {
		c.Backend = v
	}
	if v := getenv(envLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate rejects values the rest of the program cannot use
func (c *Config) Validate() error {
	if c.TimeoutMs < 0 {
		return fmt.Errorf("timeout_ms must not be negative, got %d", c.TimeoutMs)
	}
	if c.StatusSeconds < 0 {
		return fmt.Errorf("status_seconds must not be negative, got %d", c.StatusSeconds)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	for _, name := range clipboard.Backends() {
		if name == c.Backend {
			return nil
		}
	}
	return fmt.Errorf("unknown backend %q", c.Backend)
}

// Timeout returns the auto-reset delay as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// StatusDuration is how long transient status messages stay on screen
func (c *Config) StatusDuration() time.Duration {
	return time.Duration(c.StatusSeconds) * time.Second
}

// Save writes the configuration as YAML, creating the directory if needed
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
