package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures kiosk runtime settings.
type Config struct {
	BaseURL        string        `mapstructure:"base-url"`
	LogFile        string        `mapstructure:"log-file"`
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	UserAgent      string        `mapstructure:"user-agent"`
	StartPath      string        `mapstructure:"start-path"`
	ConfigPath     string        `mapstructure:"-"`
}

const (
	defaultConfigPath = "~/.config/kiosk/config.toml"
	defaultBaseURL    = "https://fakestoreapi.com"
	defaultLogFile    = "~/.local/state/kiosk/kiosk.log"
	defaultStartPath  = "/"
	envPrefix         = "KIOSK"
)

// Load reads the config file at path (or the default location), layering
// KIOSK_* environment variables on top. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("base-url", defaultBaseURL)
	v.SetDefault("log-file", defaultLogFile)
	v.SetDefault("request-timeout", time.Duration(0))
	v.SetDefault("user-agent", "")
	v.SetDefault("start-path", defaultStartPath)

	v.SetConfigFile(resolved)
	if filepath.Ext(resolved) == "" {
		v.SetConfigType("toml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.ConfigPath = resolved

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.StartPath = strings.TrimSpace(cfg.StartPath)
	if cfg.StartPath == "" {
		cfg.StartPath = defaultStartPath
	}
	if cfg.RequestTimeout < 0 {
		return Config{}, fmt.Errorf("request-timeout must not be negative, got %s", cfg.RequestTimeout)
	}
	if logFile := strings.TrimSpace(cfg.LogFile); logFile != "" && logFile != "-" {
		cfg.LogFile = mustExpand(logFile)
	} else {
		cfg.LogFile = ""
	}
	return cfg, nil
}

// LoggingEnabled reports whether a log file is configured.
func (c Config) LoggingEnabled() bool {
	return strings.TrimSpace(c.LogFile) != ""
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
