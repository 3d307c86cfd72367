// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// replModel is the full-screen form of the REPL: a scrolling transcript
// above a single input line. Commands run through the same session as the
// line-based REPL.
type replModel struct {
	input      textinput.Model
	transcript viewport.Model

	execLine func(line string) bool
	out      *bytes.Buffer // session output, drained after every command
	lines    []string

	ruleStyle lipgloss.Style
	width     int
}

func newReplModel(execLine func(line string) bool, out *bytes.Buffer) replModel {
	ti := textinput.New()
	ti.Prompt = replPrompt
	ti.Placeholder = "add 4 2 5, find 2, walk pre, show, help"
	ti.CharLimit = 1024
	ti.Width = 50
	ti.Focus()

	transcript := viewport.New(80, 20)
	transcript.SetContent("Type help for the list of commands.")

	return replModel{
		input:      ti,
		transcript: transcript,
		execLine:   execLine,
		out:        out,
		ruleStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		width:      80,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "pgup", "pgdown":
			m.transcript, cmd = m.transcript.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.transcript.Width = msg.Width
		m.transcript.Height = max(msg.Height-2, 1)
		m.input.Width = max(msg.Width-len(replPrompt)-1, 10)
		m.transcript.GotoBottom()
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the current input line and appends its output to the transcript.
func (m replModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	quit := m.execLine(line)
	m.lines = append(m.lines, replPrompt+line)
	if text := strings.TrimRight(m.out.String(), "\n"); text != "" {
		m.lines = append(m.lines, text)
	}
	m.out.Reset()

	m.transcript.SetContent(strings.Join(m.lines, "\n"))
	m.transcript.GotoBottom()

	if quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m replModel) View() string {
	rule := m.ruleStyle.Render(strings.Repeat("─", max(m.width, 1)))
	return m.transcript.View() + "\n" + rule + "\n" + m.input.View()
}

func runReplTUI(execLine func(line string) bool, out *bytes.Buffer) error {
	program := tea.NewProgram(
		newReplModel(execLine, out),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
