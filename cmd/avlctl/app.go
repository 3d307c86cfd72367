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
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/cybrota/avl"
	"github.com/pkg/errors"
)

type traversalOrder string

const (
	orderIn   traversalOrder = "in"
	orderPre  traversalOrder = "pre"
	orderPost traversalOrder = "post"
)

func parseOrder(s string) (traversalOrder, error) {
	switch traversalOrder(strings.ToLower(s)) {
	case orderIn, "inorder", "in-order":
		return orderIn, nil
	case orderPre, "preorder", "pre-order":
		return orderPre, nil
	case orderPost, "postorder", "post-order":
		return orderPost, nil
	}
	return "", fmt.Errorf("unknown traversal order %q (want in, pre or post)", s)
}

// runner hides the element type chosen by configuration from the commands.
type runner interface {
	load(r io.Reader) error
	sorted() []string
	walk(order traversalOrder) []string
	stats(w io.Writer)
	find(w io.Writer, queries []string) error
	show(w io.Writer)
	view() error
	repl(in io.Reader, out io.Writer) error
	replTUI() error
}

func newRunner(cfg *Config) runner {
	if cfg.Input.Numeric {
		return newApp[int64](cfg)
	}
	return newApp[string](cfg)
}

type app[T element] struct {
	cfg  *Config
	tree *avl.Tree[T]
}

func newApp[T element](cfg *Config) *app[T] {
	return &app[T]{cfg: cfg, tree: avl.New[T]()}
}

func (a *app[T]) load(r io.Reader) error {
	tokens, err := readTokens(r, a.cfg.Input.Separator)
	if err != nil {
		return err
	}
	values, err := parseTokens[T](tokens)
	if err != nil {
		return err
	}
	for _, v := range values {
		a.tree.Add(v)
	}
	return nil
}

func (a *app[T]) sorted() []string {
	return formatAll(a.tree.All())
}

func (a *app[T]) walk(order traversalOrder) []string {
	switch order {
	case orderPre:
		return formatAll(a.tree.PreOrderSeq())
	case orderPost:
		return formatAll(a.tree.PostOrderSeq())
	default:
		return formatAll(a.tree.All())
	}
}

func formatAll[T any](seq iter.Seq[T]) []string {
	var out []string
	for v := range seq {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

func (a *app[T]) stats(w io.Writer) {
	fmt.Fprintf(w, "count:  %d\n", a.tree.Len())
	fmt.Fprintf(w, "height: %d\n", a.tree.Height())

	minValue, err := a.tree.Min()
	if errors.Is(err, avl.ErrEmptyTree) {
		fmt.Fprintln(w, "empty tree")
		return
	}
	maxValue, _ := a.tree.Max()
	fmt.Fprintf(w, "min:    %v\n", minValue)
	fmt.Fprintf(w, "max:    %v\n", maxValue)
}

func (a *app[T]) find(w io.Writer, queries []string) error {
	for _, q := range queries {
		v, err := parseValue[T](q)
		if err != nil {
			return err
		}
		state := "absent"
		if node := a.tree.Find(v); node != nil {
			state = "found"
		}
		fmt.Fprintf(w, "%s: %s\n", q, state)
	}
	return nil
}

func (a *app[T]) show(w io.Writer) {
	fmt.Fprint(w, renderDiagram(a.tree, a.cfg.Output.Color))
}

func (a *app[T]) view() error {
	return runDiagramViewer(renderDiagram(a.tree, false))
}

func (a *app[T]) repl(in io.Reader, out io.Writer) error {
	return newSession(a.tree, a.cfg, out).run(in)
}

func (a *app[T]) replTUI() error {
	var out bytes.Buffer
	return runReplTUI(newSession(a.tree, a.cfg, &out).execLine, &out)
}
