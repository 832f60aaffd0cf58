// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package input

import "fmt"

// FileReadError reports an input file that could not be opened or read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read input file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// InputReadError reports a failed read from an interactive stream. End of
// stream is not an error.
type InputReadError struct {
	Err error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("failed to read input: %v", e.Err)
}

func (e *InputReadError) Unwrap() error {
	return e.Err
}
