// file:dline/pkg/x_cfg/config.go
package x_cfg

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rskv-p/dline/pkg/x_log"

	"github.com/mitchellh/mapstructure"
)

//---------------------
// Config
//---------------------

// Config holds the tuning knobs of a cups run.
type Config struct {
	Width        int          `mapstructure:"width"`        // child slots per node
	RebuildDepth int          `mapstructure:"rebuildDepth"` // rebuild once an anchor path is this deep, 0 = never
	RebuildEvery int          `mapstructure:"rebuildEvery"` // flatten every N moves, 0 = never
	LogEvery     int          `mapstructure:"logEvery"`     // progress line every N moves, 0 = silent
	Log          x_log.Config `mapstructure:"log"`
}

const (
	defaultConfigPath = "./dline.json"
	EnvConfigPath     = "DLINE_CFG"
)

var ErrInvalidConfig = errors.New("invalid config")

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Width:        1024,
		RebuildDepth: 16,
		RebuildEvery: 0,
		LogEvery:     1_000_000,
		Log:          x_log.DefaultConfig(),
	}
}

//---------------------
// Loading
//---------------------

// Load reads a JSON config on top of the defaults, then applies env overrides.
// If path is empty, uses DLINE_CFG or ./dline.json; a missing file is not an error.
// When the file has no "log" section, logging comes from x_log.LoadConfig.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = GetEnvStr(EnvConfigPath, defaultConfigPath)
	}

	var raw map[string]any
	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// without a log section the standalone log config applies
	if _, ok := raw["log"]; !ok {
		lc, err := x_log.LoadConfig("")
		if err != nil {
			return nil, err
		}
		cfg.Log = *lc
	}
	if raw != nil {
		if err := decode(raw, cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	x_log.ApplyDefaults(&cfg.Log)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode maps raw JSON values onto cfg, keeping fields raw does not mention.
func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// applyEnv lets DLINE_* variables override file values.
func applyEnv(cfg *Config) {
	cfg.Width = GetEnvInt("DLINE_WIDTH", cfg.Width)
	cfg.RebuildDepth = GetEnvInt("DLINE_REBUILD_DEPTH", cfg.RebuildDepth)
	cfg.RebuildEvery = GetEnvInt("DLINE_REBUILD_EVERY", cfg.RebuildEvery)
	cfg.LogEvery = GetEnvInt("DLINE_LOG_EVERY", cfg.LogEvery)
	cfg.Log.Level = GetEnvStr("DLINE_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.ToFile = GetEnvBool("DLINE_LOG_TO_FILE", cfg.Log.ToFile)
}

// Validate rejects values a Line or a Game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Width < 4 || c.Width > 1<<16:
		return fmt.Errorf("%w: width %d outside [4, 65536]", ErrInvalidConfig, c.Width)
	case c.RebuildDepth < 0:
		return fmt.Errorf("%w: rebuildDepth %d is negative", ErrInvalidConfig, c.RebuildDepth)
	case c.RebuildEvery < 0:
		return fmt.Errorf("%w: rebuildEvery %d is negative", ErrInvalidConfig, c.RebuildEvery)
	case c.LogEvery < 0:
		return fmt.Errorf("%w: logEvery %d is negative", ErrInvalidConfig, c.LogEvery)
	}
	return nil
}
