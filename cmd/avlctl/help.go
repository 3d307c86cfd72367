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
	"runtime"

	"github.com/charmbracelet/glamour"
)

var version = "dev"

func getHelpMessage() string {
	message := fmt.Sprintf(`
# avlctl %s

Load values into a self-balancing AVL tree and inspect it from the shell.

Built with Go %s

## Commands
* **sort**: print the values in ascending order, duplicates collapsed (`+"`--copy`"+` copies them to the clipboard)
* **walk**: print a pre-order, in-order or post-order traversal
* **stats**: count, height, smallest and largest value
* **find**: report whether each query value is present
* **show**: draw the tree with node heights and balance factors (`+"`--tui`"+` to scroll through it)
* **repl**: edit a tree interactively (add, remove, find, min, max, walk, show); `+"`--tui`"+` for a full-screen session
* **config**: print the settings in ~/.avlctl.yaml

## Input
Values are read from `+"`--input FILE`"+` or stdin, one per line by default.
Use `+"`--separator whitespace`"+` or a literal such as `+"`--separator ,`"+` to split differently.
Use `+"`--numeric`"+` to order values as integers instead of strings.

## Please be aware
* Copy to clipboard on Linux requires 'xclip' or 'xsel' to be installed

## License
Licensed under the Apache License, Version 2.0
`, version, runtime.Version())

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return message
	}
	result, err := renderer.Render(message)
	if err != nil {
		return message
	}
	return result
}
