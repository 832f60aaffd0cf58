// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bytes"
	"linekit/internal/config"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs a fresh root command with the given config file contents
// (none if empty), stdin and arguments.
func execute(t *testing.T, cfg string, stdin string, args ...string) result {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if cfg != "" {
		require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))
	}
	t.Setenv(config.EnvConfigPath, cfgPath)
	t.Setenv("XDG_STATE_HOME", dir)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := executeArgs(cmd, args)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeInput(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestBannerFirst(t *testing.T) {
	res := execute(t, "color: never\n", "")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "linekit "+Version+"\n"))
	assert.Contains(t, res.stderr, "Settings parsed successfully")
}

func TestFileModeDebug(t *testing.T) {
	path := writeInput(t, "a\nb\nquit\nc\n")
	res := execute(t, "", "never\n", "-d", "--input", path)
	require.NoError(t, res.err)

	assert.Contains(t, res.stderr, "line=a")
	assert.Contains(t, res.stderr, "line=b")
	assert.Contains(t, res.stderr, "line=quit")
	assert.NotContains(t, res.stderr, "line=c")
	assert.NotContains(t, res.stderr, "line=never")
	assert.Contains(t, res.stderr, "settings.input="+path)
}

func TestDefaultVerbosityHidesLines(t *testing.T) {
	res := execute(t, "", "hello\n")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "level=INFO")
	assert.NotContains(t, res.stderr, "line=hello")
}

func TestQuietHidesInfo(t *testing.T) {
	res := execute(t, "", "hello\n", "-q")
	require.NoError(t, res.err)
	assert.NotContains(t, res.stderr, "Settings parsed successfully")
}

func TestInteractiveMode(t *testing.T) {
	res := execute(t, "", "\n\nhello\nquit\nworld\n", "--debug", "unknown-token")
	require.NoError(t, res.err)

	assert.Contains(t, res.stderr, "line=hello")
	assert.Contains(t, res.stderr, "line=quit")
	assert.NotContains(t, res.stderr, "line=world")
	assert.Equal(t, 1, strings.Count(res.stderr, "line=hello"))
	// No prompt when stdin is not a terminal.
	assert.NotContains(t, res.stdout, ">")
}

func TestMissingArgumentExitsCleanly(t *testing.T) {
	res := execute(t, "", "hello\n", "-d", "-i")
	require.NoError(t, res.err)

	assert.Contains(t, res.stderr, "level=ERROR")
	assert.Contains(t, res.stderr, "Error parsing settings")
	assert.Contains(t, res.stderr, "missing filename after -i")
	assert.NotContains(t, res.stderr, "Settings parsed successfully")
	assert.NotContains(t, res.stderr, "line=hello")
}

func TestFileReadErrorExitsCleanly(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	res := execute(t, "", "", "-i", missing)
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Error reading input file")
	assert.Contains(t, res.stderr, missing)
}

func TestExitOnFailure(t *testing.T) {
	res := execute(t, "exit_on_failure: true\n", "", "--input")
	assert.ErrorIs(t, res.err, errFailed)

	missing := filepath.Join(t.TempDir(), "missing.txt")
	res = execute(t, "exit_on_failure: true\n", "", "-i", missing)
	assert.ErrorIs(t, res.err, errFailed)

	res = execute(t, "exit_on_failure: true\n", "quit\n")
	assert.NoError(t, res.err)
}

func TestHelpTokenIsIgnored(t *testing.T) {
	res := execute(t, "", "", "--help")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Settings parsed successfully")
	assert.NotContains(t, res.stdout, "Usage:")
}

func TestCompletionTokenIsIgnored(t *testing.T) {
	for _, tok := range []string{"__complete", "__completeNoDesc"} {
		t.Run(tok, func(t *testing.T) {
			res := execute(t, "color: never\n", "hello\n", tok, "-d")
			require.NoError(t, res.err)
			assert.True(t, strings.HasPrefix(res.stdout, "linekit "+Version+"\n"))
			assert.NotContains(t, res.stdout, ":4")
			assert.Contains(t, res.stderr, "Settings parsed successfully")
			assert.NotContains(t, res.stderr, "Completion ended")
			// -d after the token still applies.
			assert.Contains(t, res.stderr, "line=hello")
		})
	}
}

func TestLeadingDoubleDashIsIgnored(t *testing.T) {
	res := execute(t, "", "hello\n", "--", "-d")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "line=hello")
}

func TestJSONLogFormat(t *testing.T) {
	res := execute(t, "log_format: json\n", "")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, `"msg":"Settings parsed successfully"`)
}

func TestBadConfigWarns(t *testing.T) {
	res := execute(t, "colour: never\n", "")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Ignoring configuration file")
	assert.Contains(t, res.stderr, "Settings parsed successfully")
}

func TestLogFile(t *testing.T) {
	res := execute(t, "log_file: true\n", "", "-q", "-i", filepath.Join(t.TempDir(), "missing.txt"))
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Error reading input file")
}

func TestLongHelpListsFlags(t *testing.T) {
	long := NewRootCmd().Long
	assert.Contains(t, long, "--debug")
	assert.Contains(t, long, "--quiet")
	assert.Contains(t, long, "--input filename")
}
