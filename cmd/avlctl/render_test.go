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
	"github.com/stretchr/testify/assert"
)

func TestRenderDiagram(t *testing.T) {
	tree := avl.NewFromSlice([]int{1, 2, 3})
	expected := "" +
		"    3 (h=1, b=0)\n" +
		"2 (h=2, b=0)\n" +
		"    1 (h=1, b=0)\n"
	assert.Equal(t, expected, renderDiagram(tree, false))
}

func TestRenderDiagramShowsImbalance(t *testing.T) {
	tree := avl.NewFromSlice([]string{"b", "a", "c", "d"})
	expected := "" +
		"        d (h=1, b=0)\n" +
		"    c (h=2, b=-1)\n" +
		"b (h=3, b=-1)\n" +
		"    a (h=1, b=0)\n"
	assert.Equal(t, expected, renderDiagram(tree, false))
}

func TestRenderDiagramEmpty(t *testing.T) {
	assert.Equal(t, "(empty)\n", renderDiagram(avl.New[int](), false))
	assert.Equal(t, "(empty)\n", renderDiagram(avl.New[int](), true))
}

func TestRenderDiagramColorKeepsValues(t *testing.T) {
	out := renderDiagram(avl.NewFromSlice([]int{10, 20}), true)
	assert.Contains(t, out, "10")
	assert.Contains(t, out, "20")
	assert.Contains(t, out, "h=2")
}
