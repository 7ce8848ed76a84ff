// file:dline/pkg/x_log/logger_test.go
package x_log

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitWithConfig tests if InitWithConfig applies the configured level.
func TestInitWithConfig(t *testing.T) {
	for _, tc := range []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"warn", zerolog.WarnLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	} {
		InitWithConfig(&Config{Level: tc.level}, "testModule")
		assert.Equal(t, tc.want, zerolog.GlobalLevel(), "level %q", tc.level)
	}
}

// TestNew tests if New creates a module-scoped logger.
func TestNew(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := New("testModule")

	var buf bytes.Buffer
	logger = logger.Output(&buf)
	logger.Info().Msg("Testing logger")

	assert.Contains(t, buf.String(), `"module":"testModule"`)
}

// TestConsoleLogging tests plain console output to a non-terminal writer.
func TestConsoleLogging(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	logger := zerolog.New(ConsoleWriterWithStyles(&Styles{Out: &buf})).With().Timestamp().Logger()

	logger.Debug().Msg("Debug message")
	logger.Info().Msg("Info message")
	logger.Warn().Msg("Warn message")
	logger.Error().Msg("Error message")

	out := buf.String()
	for _, msg := range []string{"Debug message", "Info message", "Warn message", "Error message"} {
		assert.Contains(t, out, msg)
	}
	assert.NotContains(t, out, "\x1b[", "no escape codes off a terminal")
}

// TestWithFields tests structured fields in console output.
func TestWithFields(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	logger := zerolog.New(ConsoleWriterWithStyles(&Styles{Out: &buf}))

	logger.Info().Str("run", "abc").Int("move", 10).Msg("progress")
	logger.Error().Err(fmt.Errorf("Sample error")).Msg("failed")

	assert.Contains(t, buf.String(), "run=abc")
	assert.Contains(t, buf.String(), "move=10")
	assert.Contains(t, buf.String(), "progress")
	assert.Contains(t, buf.String(), "Sample error")
}

// TestColoredWriter renders level badges through lipgloss styles.
func TestColoredWriter(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	w := consoleWriter(&buf, DefaultStylesDark(), true)
	logger := zerolog.New(w)

	logger.Warn().Str("depth", "3").Msg("deep")
	out := buf.String()
	assert.Contains(t, out, "WAR")
	assert.Contains(t, out, "depth")
	assert.Contains(t, out, "deep")
}

// TestFileLogging tests writing through the rotating file sink.
func TestFileLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	InitWithConfig(&Config{ToFile: true, LogFile: path, Level: "info"}, "testModule")

	log.Info().Msg("Test file logging")
	log.Debug().Msg("dropped")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Test file logging")
	assert.Contains(t, string(content), `"module":"testModule"`)
	assert.NotContains(t, string(content), "dropped")
}
