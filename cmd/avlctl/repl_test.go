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
	"testing"

	"github.com/cybrota/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, numeric bool, script ...string) string {
	t.Helper()
	var out bytes.Buffer
	r := newRunner(plainConfig(numeric))
	require.NoError(t, r.repl(strings.NewReader(strings.Join(script, "\n")+"\n"), &out))
	return out.String()
}

func TestReplEditing(t *testing.T) {
	out := runSession(t, true,
		"add 4 2 5 1 3 0",
		"walk",
		"min",
		"max",
		"remove 4 0",
		"walk pre",
		"len",
		"quit",
	)
	assert.Contains(t, out, "0 1 2 3 4 5\n")
	assert.Contains(t, out, "avl> 0\n")
	assert.Contains(t, out, "avl> 5\n")
	// 4 is replaced by its successor 5; no rotation is needed.
	assert.Contains(t, out, "avl> 2 1 5 3\n")
	assert.Contains(t, out, "avl> 4\n")
	assert.NotContains(t, out, "error")
}

func TestReplRemoveRebalances(t *testing.T) {
	out := runSession(t, true,
		"add 1 2 3 4",
		"walk pre",
		"remove 1",
		"walk pre",
		"show",
	)
	assert.Contains(t, out, "avl> 2 1 3 4\n")
	// Removing 1 leaves 2 right-heavy, so 3 is rotated up.
	assert.Contains(t, out, "avl> 3 2 4\n")
	assert.Contains(t, out, "3 (h=2, b=0)\n")
}

func TestReplFindAfterMutation(t *testing.T) {
	out := runSession(t, false,
		"add apple 'big cherry'",
		"find apple \"big cherry\" plum",
		"remove apple",
		"find apple",
		"add apple",
		"find apple",
	)
	assert.Contains(t, out, "apple: found\nbig cherry: found\nplum: absent\n")
	assert.Contains(t, out, "avl> apple: absent\n")
	assert.Equal(t, 2, strings.Count(out, "apple: found"))
}

func TestReplErrors(t *testing.T) {
	out := runSession(t, true,
		"min",
		"add",
		"add x",
		"walk sideways",
		"jump",
		`add "unclosed`,
	)
	assert.Contains(t, out, "error: "+avl.ErrEmptyTree.Error())
	assert.Contains(t, out, "error: at least one value is required")
	assert.Contains(t, out, `"x" is not an integer`)
	assert.Contains(t, out, `unknown traversal order "sideways"`)
	assert.Contains(t, out, `unknown command "jump"`)
	assert.Contains(t, out, "failed to parse line")
}

func TestReplClearAndShow(t *testing.T) {
	out := runSession(t, true, "add 1 2 3", "show", "clear", "len", "show")
	assert.Contains(t, out, "2 (h=2, b=0)\n")
	assert.Contains(t, out, "avl> 0\n")
	assert.Contains(t, out, "(empty)\n")
}

func TestSessionLookupLayers(t *testing.T) {
	tree := avl.NewFromSlice([]int64{1, 2})
	var out bytes.Buffer
	s := newSession(tree, plainConfig(true), &out)

	// Preloaded values are known to the filter.
	assert.True(t, s.seen.TestString("1"))
	assert.True(t, s.contains(1))
	found, ok := getLookup(s.lookups, "1")
	assert.True(t, ok)
	assert.True(t, found)

	// Values never added are rejected before reaching the cache.
	assert.False(t, s.contains(99))
	_, ok = getLookup(s.lookups, "99")
	assert.False(t, ok)

	// Mutations invalidate cached answers.
	s.remove(1)
	_, ok = getLookup(s.lookups, "1")
	assert.False(t, ok)
	assert.False(t, s.contains(1))
	found, ok = getLookup(s.lookups, "1")
	assert.True(t, ok)
	assert.False(t, found)
}
