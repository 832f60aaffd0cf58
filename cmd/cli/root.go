// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"
	"fmt"
	"io"
	"linekit/internal/config"
	"linekit/internal/input"
	"linekit/internal/logger"
	"linekit/internal/prompt"
	"linekit/internal/settings"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const appName = "linekit"

// Version is overridden at build time with -ldflags "-X linekit/cmd/cli.Version=...".
var Version = "0.1.0"

var (
	nameColor    = color.New(color.FgCyan, color.Bold)
	versionColor = color.New(color.Faint)
	promptColor  = color.New(color.FgGreen)
)

// errFailed is returned from the command when exit_on_failure is set and a
// failure was logged.
var errFailed = errors.New("linekit: run failed")

// NewRootCmd builds the linekit command. Every argument is handed to the
// settings scanner untouched; cobra's own flag parsing is disabled.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName + " [--debug|-d] [--quiet|-q] [--input|-i <filename>]",
		Short: "Read lines from a file or standard input until 'quit'",
		Long: `linekit reads lines from a file given with --input, or interactively from
standard input, and stops at end of input or at a line reading 'quit'.
Unrecognised arguments are ignored.

Flags:
` + settings.Usage() + `
Presentation options are read from ~/.config/linekit/config.yaml
(or the file named by $` + config.EnvConfigPath + `).`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args)
		},
	}
	return cmd
}

// argsMarker goes in front of the user's arguments so cobra never routes the
// first one to a hidden command such as __complete. run drops it again.
const argsMarker = "--"

// executeArgs runs cmd with args passed through to the settings scanner as is.
func executeArgs(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(append([]string{argsMarker}, args...))
	return cmd.Execute()
}

// Execute runs the root command against os.Args.
func Execute() {
	if err := executeArgs(NewRootCmd(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && args[0] == argsMarker {
		args = args[1:]
	}
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	cfg, cfgErr := config.LoadConfig()
	applyColor(cfg.Color)

	printBanner(out)

	level := new(slog.LevelVar)
	log, logErr := logger.New(logger.Options{
		Level:     level,
		Format:    cfg.LogFormat,
		Writer:    errOut,
		LogToFile: cfg.LogFile,
	})
	if log == nil {
		// Only an invalid format gets here, and Validate rules that out.
		return logErr
	}
	if logErr != nil {
		log.Warn("Logging to file failed", "error", logErr)
	}
	if cfgErr != nil {
		log.Warn("Ignoring configuration file", "error", cfgErr)
	}

	argv := append([]string{cmd.Name()}, args...)
	s, err := settings.Scan(argv, log)
	if err != nil {
		level.Set(slog.LevelError)
		log.Error("Error parsing settings", "error", err)
		return failure(cfg)
	}

	level.Set(s.Verbosity())
	log.Info("Settings parsed successfully")
	log.Debug("Settings", "settings", s)

	err = input.Run(cmd.Context(), s, input.Options{
		Handler: input.QuitHandler(log),
		Reader:  newLineReader(cfg, cmd.InOrStdin(), out),
		Logger:  log,
	})
	if err != nil {
		var fileErr *input.FileReadError
		if errors.As(err, &fileErr) {
			log.Error("Error reading input file", "file", fileErr.Path, "error", fileErr.Err)
		} else {
			log.Error("Error reading input", "error", err)
		}
		return failure(cfg)
	}
	return nil
}

// failure reports a logged failure. By default the process still exits 0.
func failure(cfg config.Config) error {
	if cfg.ExitOnFailure {
		return errFailed
	}
	return nil
}

func printBanner(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", nameColor.Sprint(appName), versionColor.Sprint(Version))
}

func applyColor(mode string) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newLineReader picks the interactive line source. Prompts are only shown
// when stdin is a terminal.
func newLineReader(cfg config.Config, in io.Reader, out io.Writer) input.LineReader {
	if !isTerminal(in) {
		return input.NewStreamReader(in, nil)
	}
	if cfg.Prompt.Style == config.PromptTUI {
		return prompt.NewReader(cfg.Prompt.Text, in, out)
	}
	return input.NewStreamReader(in, func() {
		promptColor.Fprint(out, cfg.Prompt.Text)
	})
}
