// file:dline/pkg/x_log/logger.go

// Package x_log sets up zerolog for the whole process: styled console output,
// rotated file output and per-module child loggers.
package x_log

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

//---------------------
// LEVELS
//---------------------

type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

// ParseLevel maps a config string onto a level, falling back to info.
func ParseLevel(s string) Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return InfoLevel
	}
	return lvl
}

//---------------------
// INITIALIZATION
//---------------------

// InitWithConfig configures the global logger; module tags every line when set.
func InitWithConfig(cfg *Config, module string) {
	ApplyDefaults(cfg)
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	var writers []io.Writer
	if cfg.ToConsole {
		styles := DefaultStylesByName(cfg.Style)
		styles.Out = os.Stderr
		writers = append(writers, ConsoleWriterWithStyles(styles))
	}
	if cfg.ToFile {
		writers = append(writers, fileWriter(cfg))
	}
	if len(writers) == 0 {
		writers = append(writers, ConsoleWriterWithStyles(DefaultStylesByName(cfg.Style)))
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp()
	if module != "" {
		ctx = ctx.Str("module", module)
	}
	log.Logger = ctx.Logger()
}

// fileWriter returns a rotating file sink, plain JSON unless ColoredFile is set.
func fileWriter(cfg *Config) io.Writer {
	lj := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	if cfg.ColoredFile {
		return consoleWriter(lj, DefaultStylesByName(cfg.Style), true)
	}
	return lj
}

//---------------------
// CHILD LOGGERS
//---------------------

// New returns a logger scoped to module.
func New(module string) zerolog.Logger {
	return log.Logger.With().Str("module", module).Logger()
}
