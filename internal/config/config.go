package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appName        = "timemann"
	configFileName = "config.yaml"

	// PathEnv overrides the config file location.
	PathEnv = "TIMEMANN_CONFIG"
	// LogEnv overrides log_file.
	LogEnv = "TIMEMANN_LOG"

	minFPS = 1
	maxFPS = 240
)

// Config holds runtime settings.
type Config struct {
	FPS           float64
	Notifications Notifications
	LogFile       string
	LogLevel      slog.Level
}

// Notifications selects which channels announce a finished countdown.
type Notifications struct {
	Desktop bool
	Bell    bool
	Timeout time.Duration
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		FPS: 60,
		Notifications: Notifications{
			Desktop: true,
			Bell:    true,
			Timeout: 2 * time.Second,
		},
		LogLevel: slog.LevelInfo,
	}
}

type yamlConfig struct {
	FPS           float64 `yaml:"fps"`
	Notifications struct {
		Desktop *bool         `yaml:"desktop"`
		Bell    *bool         `yaml:"bell"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"notifications"`
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Load reads the config file from Path. A missing file yields defaults.
// TIMEMANN_LOG, when set, replaces log_file.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}
	if logFile := os.Getenv(LogEnv); logFile != "" {
		cfg.LogFile = logFile
	}
	return cfg, nil
}

// LoadFile reads settings from path. Out-of-range values keep their defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var file yamlConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}

	if err := apply(&cfg, file); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Path returns the config file location.
func Path() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}

func apply(cfg *Config, file yamlConfig) error {
	if file.FPS >= minFPS && file.FPS <= maxFPS {
		cfg.FPS = file.FPS
	}
	if file.Notifications.Desktop != nil {
		cfg.Notifications.Desktop = *file.Notifications.Desktop
	}
	if file.Notifications.Bell != nil {
		cfg.Notifications.Bell = *file.Notifications.Bell
	}
	if file.Notifications.Timeout > 0 {
		cfg.Notifications.Timeout = file.Notifications.Timeout
	}
	if file.LogFile != "" {
		cfg.LogFile = expandHome(file.LogFile)
	}
	if file.LogLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(file.LogLevel)); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	return nil
}

func expandHome(p string) string {
	if len(p) < 2 || p[:2] != "~/" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
