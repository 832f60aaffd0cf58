// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package settings

import (
	"context"
	"linekit/internal/logger"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

// verbosityValue sets a shared level target when its flag is seen.
type verbosityValue struct {
	target *slog.Level
	level  slog.Level
}

func (v *verbosityValue) String() string { return "false" }
func (v *verbosityValue) Type() string   { return "bool" }

func (v *verbosityValue) Set(string) error {
	*v.target = v.level
	return nil
}

type inputValue struct {
	settings *Settings
}

func (v *inputValue) String() string { return v.settings.inputFile }
func (v *inputValue) Type() string   { return "string" }

func (v *inputValue) Set(path string) error {
	v.settings.inputFile = path
	v.settings.hasInput = true
	return nil
}

// newFlagSet declares the recognised flags, bound to s.
func newFlagSet(s *Settings) *pflag.FlagSet {
	fs := pflag.NewFlagSet("linekit", pflag.ContinueOnError)
	fs.SortFlags = false

	debug := fs.VarPF(&verbosityValue{target: &s.verbosity, level: logger.LevelTrace},
		"debug", "d", "log everything, including each line read")
	debug.NoOptDefVal = "true"

	quiet := fs.VarPF(&verbosityValue{target: &s.verbosity, level: slog.LevelWarn},
		"quiet", "q", "only log warnings and errors")
	quiet.NoOptDefVal = "true"

	fs.VarP(&inputValue{settings: s}, "input", "i", "read lines from `filename` instead of standard input")
	return fs
}

// Usage returns the flag help text.
func Usage() string {
	s := Default()
	return newFlagSet(&s).FlagUsages()
}

// lookup matches tok exactly against a long ("--name") or short ("-n") flag.
// Combined shorthands, "--name=value" and "--" are not flags here.
func lookup(fs *pflag.FlagSet, tok string) *pflag.Flag {
	switch {
	case strings.HasPrefix(tok, "--"):
		return fs.Lookup(tok[2:])
	case len(tok) == 2 && tok[0] == '-':
		return fs.ShorthandLookup(tok[1:])
	}
	return nil
}

// Scan builds Settings from argv, skipping argv[0]. Tokens are applied left
// to right so the last occurrence of a flag wins. Unrecognised tokens are
// ignored. A value flag at the end of argv stops the scan with a
// *MissingArgumentError. Each token is logged at trace level on log, which
// may be nil.
func Scan(argv []string, log *slog.Logger) (Settings, error) {
	if log == nil {
		log = logger.Discard()
	}
	ctx := context.Background()

	s := Default()
	fs := newFlagSet(&s)

	log.Log(ctx, logger.LevelTrace, "Command line arguments", "count", max(len(argv)-1, 0))
	for i := 1; i < len(argv); i++ {
		tok := argv[i]
		log.Log(ctx, logger.LevelTrace, "Argument", "index", i, "value", tok)

		flag := lookup(fs, tok)
		if flag == nil {
			continue
		}

		value := flag.NoOptDefVal
		if value == "" {
			if i+1 >= len(argv) {
				arg, _ := pflag.UnquoteUsage(flag)
				return Settings{}, &MissingArgumentError{Flag: tok, Arg: arg}
			}
			i++
			value = argv[i]
		}
		if err := flag.Value.Set(value); err != nil {
			return Settings{}, err
		}
	}

	return s, nil
}
