package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/five82/cinematch/internal/logging"
)

// Config captures everything cinematch reads at startup.
type Config struct {
	APIURL         string        `koanf:"api_url"`
	LogFile        string        `koanf:"log_file"`
	LogLevel       string        `koanf:"log_level"`
	PollInterval   time.Duration `koanf:"poll_interval"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

const (
	defaultConfigPath   = "~/.config/cinematch/config.toml"
	defaultAPIURL       = "http://localhost:5000"
	defaultLogFile      = "~/.local/state/cinematch/cinematch.log"
	defaultLogLevel     = "info"
	defaultPollInterval = 15 * time.Second

	minPollInterval   = time.Second
	minRequestTimeout = time.Millisecond

	// EnvPrefix marks environment variables that override file values,
	// e.g. CINEMATCH_API_URL.
	EnvPrefix = "CINEMATCH_"
)

func defaults() Config {
	return Config{
		APIURL:       defaultAPIURL,
		LogFile:      defaultLogFile,
		LogLevel:     defaultLogLevel,
		PollInterval: defaultPollInterval,
	}
}

// Load layers defaults, the TOML file at path (or the default location), and
// CINEMATCH_* environment variables, in that order. A missing file is not an
// error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if _, err := os.Stat(resolved); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
	} else if err := k.Load(file.Provider(resolved), tomlParser{}); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values cinematch cannot run with.
func (c Config) Validate() error {
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	// A bare TOML integer decodes as nanoseconds; anything under the floor
	// is an error.
	if c.PollInterval < 0 || (c.PollInterval > 0 && c.PollInterval < minPollInterval) {
		return fmt.Errorf("poll_interval must be 0 or at least %s (use a duration string such as \"15s\"), got %s",
			minPollInterval, c.PollInterval)
	}
	if c.RequestTimeout < 0 || (c.RequestTimeout > 0 && c.RequestTimeout < minRequestTimeout) {
		return fmt.Errorf("request_timeout must be 0 or at least %s (use a duration string such as \"30s\"), got %s",
			minRequestTimeout, c.RequestTimeout)
	}
	return nil
}

func (c *Config) normalize() {
	c.APIURL = strings.TrimSpace(c.APIURL)
	if c.APIURL == "" {
		c.APIURL = defaultAPIURL
	}

	c.LogFile = strings.TrimSpace(c.LogFile)
	if c.LogFile == "" {
		c.LogFile = defaultLogFile
	}
	c.LogFile = mustExpand(c.LogFile)

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

func envKey(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
