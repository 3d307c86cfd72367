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
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avl"
)

const diagramIndent = "    "

type diagramStyles struct {
	Value     lipgloss.Style
	Meta      lipgloss.Style
	Unbalance lipgloss.Style
}

func newDiagramStyles(color bool) diagramStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return diagramStyles{Value: plain, Meta: plain, Unbalance: plain}
	}
	return diagramStyles{
		Value:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Meta:      lipgloss.NewStyle().Faint(true),
		Unbalance: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// renderDiagram draws the tree sideways: right subtrees above their parent,
// left subtrees below, one node per line with its height and balance.
func renderDiagram[T any](tree *avl.Tree[T], color bool) string {
	if tree.IsEmpty() {
		return "(empty)\n"
	}

	styles := newDiagramStyles(color)
	var sb strings.Builder
	renderNode(&sb, tree.Root(), 0, styles)
	return sb.String()
}

func renderNode[T any](sb *strings.Builder, node *avl.Node[T], depth int, styles diagramStyles) {
	if node == nil {
		return
	}
	renderNode(sb, node.Right(), depth+1, styles)

	meta := styles.Meta
	if node.Balance() != 0 {
		meta = styles.Unbalance
	}
	sb.WriteString(strings.Repeat(diagramIndent, depth))
	sb.WriteString(styles.Value.Render(fmt.Sprint(node.Value())))
	sb.WriteString(" ")
	sb.WriteString(meta.Render(fmt.Sprintf("(h=%d, b=%d)", node.Height(), node.Balance())))
	sb.WriteString("\n")

	renderNode(sb, node.Left(), depth+1, styles)
}
