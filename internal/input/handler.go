// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package input selects where lines come from (a file or an interactive
// stream) and feeds them one at a time to a Handler.
package input

import (
	"log/slog"
	"strings"
)

// Status is a handler's verdict on whether to keep reading.
type Status int

const (
	Continue Status = iota
	Quit
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Handler receives each line and decides whether input should continue.
type Handler interface {
	Handle(line string) Status
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc func(line string) Status

func (f HandlerFunc) Handle(line string) Status {
	return f(line)
}

// QuitCommand is the sentinel line that stops input.
const QuitCommand = "quit"

// QuitHandler logs every line at debug level and stops on QuitCommand.
func QuitHandler(log *slog.Logger) Handler {
	return HandlerFunc(func(line string) Status {
		log.Debug("Processing line", "line", line)
		if strings.TrimSpace(line) == QuitCommand {
			return Quit
		}
		return Continue
	})
}

// Dispatch hands lines to h in order and stops after the first Quit. It
// returns how many lines h received.
func Dispatch(lines []string, h Handler) int {
	for i, line := range lines {
		if h.Handle(line) == Quit {
			return i + 1
		}
	}
	return len(lines)
}
