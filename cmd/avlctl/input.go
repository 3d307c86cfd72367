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
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

// element is the set of value types avlctl can load.
type element interface {
	int64 | string
}

// parseValue converts one input token into an element.
func parseValue[T element](token string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int64:
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return zero, errors.Wrapf(err, "%q is not an integer", token)
		}
		return any(n).(T), nil
	default:
		return any(token).(T), nil
	}
}

// openInput opens path for reading; "" and "-" mean stdin. The returned size
// is -1 when unknown.
func openInput(path string) (io.ReadCloser, int64, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), -1, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("input file %s not found", path)
		}
		return nil, 0, err
	}

	size := int64(-1)
	if stat, err := file.Stat(); err == nil {
		size = stat.Size()
	}
	return file, size, nil
}

// withProgress reports bytes read from r on stderr.
func withProgress(r io.Reader, size int64) io.Reader {
	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Loading values..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
	return io.TeeReader(r, bar)
}

// Separator keywords. A raw newline does not survive a YAML round-trip, so
// the config file names the common cases instead.
const (
	separatorLine       = "line"
	separatorWhitespace = "whitespace"
)

// readTokens splits r on separator and returns the non-empty, trimmed tokens.
// separator is a keyword or a literal; "" and "\n" are accepted as aliases.
func readTokens(r io.Reader, separator string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	// Values can be long lines; allow up to 1 MiB per token
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	switch separator {
	case separatorWhitespace, "":
		scanner.Split(bufio.ScanWords)
	case separatorLine, "\n":
		scanner.Split(bufio.ScanLines)
	default:
		scanner.Split(splitOn([]byte(separator)))
	}

	var tokens []string
	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}
	return tokens, nil
}

func splitOn(sep []byte) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.Index(data, sep); i >= 0 {
			return i + len(sep), data[:i], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}

// parseTokens converts tokens in order, naming the position of the first bad one.
func parseTokens[T element](tokens []string) ([]T, error) {
	values := make([]T, 0, len(tokens))
	for i, token := range tokens {
		v, err := parseValue[T](token)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i+1)
		}
		values = append(values, v)
	}
	return values, nil
}
