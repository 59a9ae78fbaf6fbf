// Package logging sends oracle's diagnostics to a size-rotated file. The
// terminal belongs to the chat UI, so nothing is written to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logDirName  = ".oracle"
	logFileName = "oracle.log"

	rotateSizeMB  = 5
	rotateBackups = 3
	rotateAgeDays = 14
)

// Options mirrors the --log-level, --log-format and --log-file flags.
type Options struct {
	Level  string
	Format string
	File   string
}

func (o Options) path() string {
	if p := strings.TrimSpace(o.File); p != "" {
		return p
	}
	return DefaultLogPath()
}

func (o Options) handler(w io.Writer) slog.Handler {
	ho := &slog.HandlerOptions{Level: parseLogLevel(o.Level)}
	if strings.EqualFold(strings.TrimSpace(o.Format), "json") {
		return slog.NewJSONHandler(w, ho)
	}
	return slog.NewTextHandler(w, ho)
}

// Init installs the default slog logger. When the log directory cannot be
// created the returned logger discards everything and the error is reported.
func Init(opts Options) (*slog.Logger, error) {
	path := opts.path()

	var (
		w   io.Writer = io.Discard
		err error
	)
	if mkErr := os.MkdirAll(filepath.Dir(path), 0o700); mkErr != nil {
		err = fmt.Errorf("failed to create log directory: %w", mkErr)
	} else {
		w = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    rotateSizeMB,
			MaxBackups: rotateBackups,
			MaxAge:     rotateAgeDays,
			Compress:   true,
		}
	}

	logger := slog.New(opts.handler(w))
	slog.SetDefault(logger)
	return logger, err
}

// DefaultLogPath is ~/.oracle/logs/oracle.log, relative to the working
// directory when no home directory is known.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(strings.TrimSpace(home), logDirName, "logs", logFileName)
}

// parseLogLevel accepts the slog level names plus "warning". Anything else
// falls back to info.
func parseLogLevel(level string) slog.Level {
	name := strings.TrimSpace(level)
	if strings.EqualFold(name, "warning") {
		name = "warn"
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}
