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
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// disableMouseInput must be called after ui.Init.
func disableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

func newDiagramList(diagram string) *widgets.List {
	l := widgets.NewList()
	l.Title = " AVL tree (q to quit) "
	l.Rows = strings.Split(strings.TrimRight(diagram, "\n"), "\n")
	l.SelectedRow = 0
	l.SelectedRowStyle = ui.NewStyle(ui.ColorBlack, ui.ColorGreen)
	l.BorderStyle = ui.NewStyle(ui.ColorCyan)
	return l
}

// handleViewerKey applies one keyboard event to the list and reports whether
// the viewer should close.
func handleViewerKey(l *widgets.List, id string) bool {
	switch id {
	case "q", "<C-c>", "<Escape>":
		return true
	case "j", "<Down>":
		l.ScrollDown()
	case "k", "<Up>":
		l.ScrollUp()
	case "g", "<Home>":
		l.ScrollTop()
	case "G", "<End>":
		l.ScrollBottom()
	case "<PageDown>":
		l.ScrollPageDown()
	case "<PageUp>":
		l.ScrollPageUp()
	}
	return false
}

// runDiagramViewer shows a rendered diagram in a scrollable full-screen list.
func runDiagramViewer(diagram string) error {
	if err := ui.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize termui")
	}
	disableMouseInput()
	defer ui.Close()

	l := newDiagramList(diagram)
	termWidth, termHeight := ui.TerminalDimensions()
	l.SetRect(0, 0, termWidth, termHeight)
	ui.Render(l)

	for e := range ui.PollEvents() {
		switch e.Type {
		case ui.ResizeEvent:
			payload := e.Payload.(ui.Resize)
			l.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
		case ui.KeyboardEvent:
			if handleViewerKey(l, e.ID) {
				return nil
			}
		}
		ui.Render(l)
	}
	return nil
}
