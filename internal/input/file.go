// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package input

import (
	"os"
	"strings"
)

// SplitLines splits contents on "\n", dropping a trailing "\r" from each line.
// A final terminator does not produce an extra empty line.
func SplitLines(contents string) []string {
	if contents == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(contents, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ReadFile reads the whole file at path and splits it into lines.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}
	return SplitLines(string(data)), nil
}
