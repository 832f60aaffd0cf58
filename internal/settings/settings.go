// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package settings turns the process arguments into the read-only Settings
// record consumed by the rest of linekit.
package settings

import (
	"errors"
	"fmt"
	"linekit/internal/logger"
	"log/slog"
)

// Settings is the result of command-line scanning. The zero value is not
// meaningful; use Default or Scan.
type Settings struct {
	verbosity slog.Level
	inputFile string
	hasInput  bool
}

// Default returns the settings used when no flag overrides them.
func Default() Settings {
	return Settings{verbosity: slog.LevelInfo}
}

// Verbosity is the minimum log level to emit.
func (s Settings) Verbosity() slog.Level {
	return s.verbosity
}

// InputFile reports the file to read lines from, if one was given.
func (s Settings) InputFile() (string, bool) {
	return s.inputFile, s.hasInput
}

// LogValue implements slog.LogValuer.
func (s Settings) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("verbosity", levelName(s.verbosity))}
	if s.hasInput {
		attrs = append(attrs, slog.String("input", s.inputFile))
	}
	return slog.GroupValue(attrs...)
}

func levelName(l slog.Level) string {
	if l <= logger.LevelTrace {
		return "TRACE"
	}
	return l.String()
}

// ErrMissingArgument matches any *MissingArgumentError via errors.Is.
var ErrMissingArgument = errors.New("missing argument")

// MissingArgumentError reports a flag that requires a value but was the last
// token on the command line.
type MissingArgumentError struct {
	// Flag is the token as typed, e.g. "-i".
	Flag string
	// Arg names the expected value, e.g. "filename".
	Arg string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing %s after %s", e.Arg, e.Flag)
}

func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}
