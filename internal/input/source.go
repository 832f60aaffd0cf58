// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package input

import (
	"context"
	"linekit/internal/logger"
	"linekit/internal/settings"
	"log/slog"
)

// Mode is the input source chosen for a run.
type Mode int

const (
	InteractiveMode Mode = iota
	FileMode
)

func (m Mode) String() string {
	if m == FileMode {
		return "file"
	}
	return "interactive"
}

// ModeOf picks file mode when an input file was given, interactive otherwise.
func ModeOf(s settings.Settings) Mode {
	if _, ok := s.InputFile(); ok {
		return FileMode
	}
	return InteractiveMode
}

// Options configures Run.
type Options struct {
	// Handler receives each line. Defaults to QuitHandler(Logger).
	Handler Handler
	// Reader supplies lines in interactive mode. Unused in file mode.
	Reader LineReader
	Logger *slog.Logger
}

// Run routes to exactly one input source based on s and dispatches its lines.
// File mode returns a *FileReadError if the file cannot be read, in which case
// no line is dispatched. Interactive mode returns an *InputReadError if the
// stream fails.
func Run(ctx context.Context, s settings.Settings, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	h := opts.Handler
	if h == nil {
		h = QuitHandler(log)
	}

	mode := ModeOf(s)
	log.Debug("Selected input source", "mode", mode)

	if mode == FileMode {
		path, _ := s.InputFile()
		lines, err := ReadFile(path)
		if err != nil {
			return err
		}
		n := Dispatch(lines, h)
		log.Debug("Finished reading file", "file", path, "lines", len(lines), "dispatched", n)
		return nil
	}

	if opts.Reader == nil {
		log.Warn("No interactive reader configured")
		return nil
	}
	return Interact(ctx, opts.Reader, h, log)
}
