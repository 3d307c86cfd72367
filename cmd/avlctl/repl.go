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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/avl"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/willf/bloom"
)

const (
	replPrompt = "avl> "

	// Sizing for the filter of values ever added during a session
	seenFilterItems     = 100000
	seenFilterFalseRate = 0.01
)

const replHelp = `commands:
  add VALUE...      insert values
  remove VALUE...   delete values
  find VALUE...     report whether values are present
  min | max         smallest or largest value
  walk [in|pre|post]
  show              draw the tree
  len               number of values
  clear             remove every value
  quit`

// session is an interactive editing loop over one tree.
//
// Lookups go through two layers before the tree: a Bloom filter of every
// value added so far (a negative answer means the value was never added) and
// a cache of answers that is flushed on every mutation.
type session[T element] struct {
	tree    *avl.Tree[T]
	cfg     *Config
	out     io.Writer
	lookups *cache.Cache
	seen    *bloom.BloomFilter
}

func newSession[T element](tree *avl.Tree[T], cfg *Config, out io.Writer) *session[T] {
	s := &session[T]{
		tree:    tree,
		cfg:     cfg,
		out:     out,
		lookups: newLookupCache(cfg.cacheTTL()),
		seen:    bloom.NewWithEstimates(seenFilterItems, seenFilterFalseRate),
	}
	tree.InOrder(func(v T) {
		s.seen.AddString(valueKey(v))
	})
	return s
}

func valueKey[T element](v T) string {
	return fmt.Sprint(v)
}

func (s *session[T]) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(s.out, replPrompt)
	for scanner.Scan() {
		if s.execLine(scanner.Text()) {
			return nil
		}
		fmt.Fprint(s.out, replPrompt)
	}
	fmt.Fprintln(s.out)
	return scanner.Err()
}

// execLine tokenises and runs one input line, writing results and errors to
// the session output. It reports whether the session should end.
func (s *session[T]) execLine(line string) bool {
	args, err := shellwords.Parse(line)
	if err != nil {
		fmt.Fprintf(s.out, "error: failed to parse line: %v\n", err)
		return false
	}

	quit, err := s.exec(args)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	return quit
}

// exec runs one command line and reports whether the session should end.
func (s *session[T]) exec(args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}

	cmd, params := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "add", "insert":
		values, err := s.parseArgs(params)
		if err != nil {
			return false, err
		}
		for _, v := range values {
			s.add(v)
		}
	case "remove", "delete", "rm":
		values, err := s.parseArgs(params)
		if err != nil {
			return false, err
		}
		for _, v := range values {
			s.remove(v)
		}
	case "find", "contains":
		values, err := s.parseArgs(params)
		if err != nil {
			return false, err
		}
		for i, v := range values {
			state := "absent"
			if s.contains(v) {
				state = "found"
			}
			fmt.Fprintf(s.out, "%s: %s\n", params[i], state)
		}
	case "min", "max":
		get := s.tree.Min
		if cmd == "max" {
			get = s.tree.Max
		}
		v, err := get()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, v)
	case "walk":
		order := s.cfg.defaultOrder()
		if len(params) > 0 {
			var err error
			if order, err = parseOrder(params[0]); err != nil {
				return false, err
			}
		}
		a := &app[T]{cfg: s.cfg, tree: s.tree}
		fmt.Fprintln(s.out, strings.Join(a.walk(order), " "))
	case "show":
		fmt.Fprint(s.out, renderDiagram(s.tree, s.cfg.Output.Color))
	case "len":
		fmt.Fprintln(s.out, s.tree.Len())
	case "clear":
		s.tree.Clear()
		s.lookups.Flush()
		s.seen.ClearAll()
	case "help", "?":
		fmt.Fprintln(s.out, replHelp)
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return false, nil
}

func (s *session[T]) parseArgs(params []string) ([]T, error) {
	if len(params) == 0 {
		return nil, errors.New("at least one value is required")
	}
	return parseTokens[T](params)
}

func (s *session[T]) add(v T) {
	s.tree.Add(v)
	s.seen.AddString(valueKey(v))
	s.lookups.Flush()
}

func (s *session[T]) remove(v T) {
	s.tree.Remove(v)
	s.lookups.Flush()
}

func (s *session[T]) contains(v T) bool {
	key := valueKey(v)
	if !s.seen.TestString(key) {
		return false
	}
	if found, ok := getLookup(s.lookups, key); ok {
		return found
	}
	found := s.tree.Contains(v)
	cacheLookup(s.lookups, key, found)
	return found
}
