// file:dline/pkg/x_log/config.go
package x_log

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//
// ---------- Config ----------

// Config controls where and how log lines are written.
type Config struct {
	Level       string `json:"level" mapstructure:"level"`
	LogFile     string `json:"logFile" mapstructure:"logFile"`
	ToConsole   bool   `json:"toConsole" mapstructure:"toConsole"`
	ToFile      bool   `json:"toFile" mapstructure:"toFile"`
	ColoredFile bool   `json:"coloredFile" mapstructure:"coloredFile"`
	Style       string `json:"style" mapstructure:"style"`
	MaxSize     int    `json:"maxSize" mapstructure:"maxSize"`       // MB
	MaxBackups  int    `json:"maxBackups" mapstructure:"maxBackups"` // rotated files
	MaxAge      int    `json:"maxAge" mapstructure:"maxAge"`         // days
	Compress    bool   `json:"compress" mapstructure:"compress"`
}

//
// ---------- Defaults ----------

const (
	defaultConfigPath = "./xlog.json"
	EnvConfigPath     = "DLINE_LOG_CONFIG"
)

var defaultConfig = Config{
	Level:       "info",
	LogFile:     "logs/dline.log",
	ToConsole:   true,
	ToFile:      false,
	ColoredFile: false,
	Style:       "dark",
	MaxSize:     10,
	MaxBackups:  5,
	MaxAge:      7,
	Compress:    true,
}

// DefaultConfig returns a copy of the built-in settings.
func DefaultConfig() Config {
	return defaultConfig
}

//
// ---------- LoadConfig ----------

// LoadConfig reads JSON config from file.
// If path is empty, uses DLINE_LOG_CONFIG or ./xlog.json.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			path = defaultConfigPath
		}
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

//
// ---------- Defaults Fill ----------

// ApplyDefaults fills missing config values from the defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Level == "" {
		cfg.Level = defaultConfig.Level
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultConfig.LogFile
	}
	if cfg.Style == "" {
		cfg.Style = defaultConfig.Style
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultConfig.MaxSize
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = defaultConfig.MaxBackups
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultConfig.MaxAge
	}
}
