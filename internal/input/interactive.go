// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package input

import (
	"bufio"
	"context"
	"errors"
	"io"
	"linekit/internal/logger"
	"log/slog"
	"strings"
)

// LineReader yields one line per call without its terminator and returns
// io.EOF once the stream is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// StreamReader reads lines from a plain byte stream such as standard input.
type StreamReader struct {
	r      *bufio.Reader
	prompt func()
}

// NewStreamReader returns a LineReader over r. If prompt is non-nil it is
// called before every read.
func NewStreamReader(r io.Reader, prompt func()) *StreamReader {
	return &StreamReader{r: bufio.NewReader(r), prompt: prompt}
}

func (s *StreamReader) ReadLine() (string, error) {
	if s.prompt != nil {
		s.prompt()
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		// An unterminated last line is still a line; EOF is reported next call.
		if errors.Is(err, io.EOF) && line != "" {
			return trimTerminator(line), nil
		}
		return "", err
	}
	return trimTerminator(line), nil
}

// trimTerminator removes a trailing "\n", then a trailing "\r", and nothing else.
func trimTerminator(line string) string {
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}

// State is a step of the interactive loop.
type State int

const (
	AwaitingLine State = iota
	Dispatching
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case AwaitingLine:
		return "awaiting-line"
	case Dispatching:
		return "dispatching"
	case Succeeded:
		return "terminated-success"
	case Failed:
		return "terminated-failure"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == Succeeded || s == Failed
}

// Interact reads lines from r until end of stream, a read error or a Quit
// from h. Empty lines are skipped without reaching h. ctx is checked before
// each read; the read itself blocks.
func Interact(ctx context.Context, r LineReader, h Handler, log *slog.Logger) error {
	if log == nil {
		log = logger.Discard()
	}

	state := AwaitingLine
	var line string
	var failure error

	for !state.Terminal() {
		next := state
		switch state {
		case AwaitingLine:
			if err := ctx.Err(); err != nil {
				failure = err
				next = Failed
				break
			}
			l, err := r.ReadLine()
			switch {
			case errors.Is(err, io.EOF):
				next = Succeeded
			case err != nil:
				failure = &InputReadError{Err: err}
				next = Failed
			case l == "":
				next = AwaitingLine
			default:
				line = l
				next = Dispatching
			}
		case Dispatching:
			if h.Handle(line) == Quit {
				next = Succeeded
			} else {
				next = AwaitingLine
			}
		}
		if next != state {
			log.Log(ctx, logger.LevelTrace, "Input state", "from", state, "to", next)
		}
		state = next
	}

	return failure
}
