// Package logger builds the slog loggers used by linekit. Loggers are
// constructed explicitly and passed to the components that need them.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// LevelTrace sits below slog.LevelDebug and is the most detailed level.
const LevelTrace = slog.LevelDebug - 4

// Output formats understood by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options controls how New builds a logger.
type Options struct {
	// Level is the minimum level emitted. A *slog.LevelVar lets the caller
	// adjust it after construction. Defaults to slog.LevelInfo.
	Level slog.Leveler

	// Format is FormatText (default) or FormatJSON.
	Format string

	// Writer receives log records. Defaults to os.Stderr.
	Writer io.Writer

	// LogToFile additionally appends records to the application log file.
	LogToFile bool
}

// LogFilePath determines the path for the application log file under the XDG state directory.
func LogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "linekit", "app.log"), nil
}

func openLogFile() (*os.File, error) {
	logFilePath, err := LogFilePath()
	if err != nil {
		return nil, err
	}

	logDir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, fmt.Errorf("error creating log directory %s: %w", logDir, err)
	}

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("error opening log file %s: %w", logFilePath, err)
	}
	return file, nil
}

// New returns a logger configured by opts. If the log file cannot be opened
// the returned logger still writes to opts.Writer and the error says why
// file logging is disabled.
func New(opts Options) (*slog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	var fileErr error
	if opts.LogToFile {
		// The file handle is left for the OS to close on exit.
		file, err := openLogFile()
		if err != nil {
			fileErr = fmt.Errorf("file logging disabled: %w", err)
		} else {
			writer = io.MultiWriter(writer, file)
		}
	}

	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevel,
	}

	var handler slog.Handler
	switch opts.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	case FormatText, "":
		handler = slog.NewTextHandler(writer, handlerOpts)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	return slog.New(handler), fileErr
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// replaceLevel renders LevelTrace as "TRACE" instead of "DEBUG-4".
func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey || len(groups) > 0 {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok && level <= LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}
	return a
}
