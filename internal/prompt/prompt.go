// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package prompt reads interactive lines through a small Bubble Tea text
// input, one program run per line.
package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// model is a single-line input that finishes on submit or cancel.
type model struct {
	input     textinput.Model
	value     string
	submitted bool
	closed    bool
}

func newModel(prompt string) model {
	t := textinput.New()
	t.Prompt = promptStyle.Render(prompt)
	t.Placeholder = "type a line, or quit"
	t.CharLimit = 0
	t.Focus()
	return model{input: t}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.closed = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			// Like a terminal, ctrl+d only ends input on an empty line.
			if m.input.Value() == "" {
				m.closed = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	switch {
	case m.submitted:
		// Leave the accepted line on screen.
		return m.input.Prompt + m.value + "\n"
	case m.closed:
		return ""
	}
	return m.input.View() + "\n" + hintStyle.Render("enter to submit • ctrl+d to finish") + "\n"
}

// Reader is an interactive line source. It returns io.EOF when the user
// cancels the prompt.
type Reader struct {
	prompt string
	opts   []tea.ProgramOption
}

// NewReader returns a Reader that shows prompt before each line. in and out
// may be nil to use the terminal.
func NewReader(prompt string, in io.Reader, out io.Writer) *Reader {
	r := &Reader{prompt: prompt}
	if in != nil {
		r.opts = append(r.opts, tea.WithInput(in))
	}
	if out != nil {
		r.opts = append(r.opts, tea.WithOutput(out))
	}
	return r
}

func (r *Reader) ReadLine() (string, error) {
	final, err := tea.NewProgram(newModel(r.prompt), r.opts...).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	m, ok := final.(model)
	if !ok || m.closed {
		return "", io.EOF
	}
	return m.value, nil
}
