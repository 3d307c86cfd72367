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
	"testing"

	"github.com/cybrota/avl"
)

func TestDiagramList(t *testing.T) {
	l := newDiagramList(renderDiagram(avl.NewFromSlice([]int{1, 2, 3}), false))
	expected := []string{"    3 (h=1, b=0)", "2 (h=2, b=0)", "    1 (h=1, b=0)"}
	if len(l.Rows) != len(expected) {
		t.Fatalf("Expected %d rows, got %d", len(expected), len(l.Rows))
	}
	for i := range expected {
		if l.Rows[i] != expected[i] {
			t.Errorf("Row %d: expected %q, got %q", i, expected[i], l.Rows[i])
		}
	}
}

func TestHandleViewerKey(t *testing.T) {
	l := newDiagramList("a\nb\nc\n")

	steps := []struct {
		key      string
		selected int
	}{
		{"j", 1},
		{"<Down>", 2},
		{"j", 2}, // stays on the last row
		{"k", 1},
		{"g", 0},
		{"<Up>", 0},
		{"G", 2},
	}
	for _, step := range steps {
		if handleViewerKey(l, step.key) {
			t.Fatalf("key %q closed the viewer", step.key)
		}
		if l.SelectedRow != step.selected {
			t.Errorf("After %q: expected row %d, got %d", step.key, step.selected, l.SelectedRow)
		}
	}

	for _, key := range []string{"q", "<C-c>", "<Escape>"} {
		if !handleViewerKey(l, key) {
			t.Errorf("key %q did not close the viewer", key)
		}
	}
}
