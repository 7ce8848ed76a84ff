// file:dline/pkg/x_log/config_test.go
package x_log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig tests LoadConfig with missing, valid and broken files.
func TestLoadConfig(t *testing.T) {
	t.Run("FileNotFound", func(t *testing.T) {
		cfg, err := LoadConfig("./non_existent_config.json")
		assert.NoError(t, err)
		assert.Equal(t, defaultConfig, *cfg)
	})

	t.Run("ValidConfig", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "xlog.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"level": "debug",
			"logFile": "logs/test.log",
			"toConsole": true,
			"toFile": true,
			"style": "light",
			"maxSize": 20,
			"maxBackups": 10,
			"maxAge": 30,
			"compress": false
		}`), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Level)
		assert.Equal(t, "logs/test.log", cfg.LogFile)
		assert.True(t, cfg.ToConsole)
		assert.True(t, cfg.ToFile)
		assert.Equal(t, "light", cfg.Style)
		assert.Equal(t, 20, cfg.MaxSize)
		assert.Equal(t, 10, cfg.MaxBackups)
		assert.Equal(t, 30, cfg.MaxAge)
		assert.False(t, cfg.Compress)
	})

	t.Run("PartialConfig", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "xlog.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"level": "warn"}`), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Level)
		assert.Equal(t, defaultConfig.LogFile, cfg.LogFile)
		assert.Equal(t, defaultConfig.MaxSize, cfg.MaxSize)
	})

	t.Run("EnvPath", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "env.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"style": "light"}`), 0o644))
		t.Setenv(EnvConfigPath, path)

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "light", cfg.Style)
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"level": "debug"`), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

// TestStylesByName verifies both themes define every level badge.
func TestStylesByName(t *testing.T) {
	for _, name := range []string{"dark", "light", "unknown"} {
		styles := DefaultStylesByName(name)
		for _, lvl := range []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel} {
			_, ok := styles.Levels[lvl]
			assert.True(t, ok, "%s theme misses %s", name, lvl)
		}
	}
}
