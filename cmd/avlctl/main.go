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
	"io"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func main() {
	var (
		inputPath    string
		numeric      bool
		separator    string
		showProgress bool
	)

	// loadTree applies flag overrides to the configuration and loads the input.
	loadTree := func(cmd *cobra.Command, required bool) (*Config, runner) {
		cfg := LoadConfig()
		if cmd.Flags().Changed("numeric") {
			cfg.Input.Numeric = numeric
		}
		if cmd.Flags().Changed("separator") {
			cfg.Input.Separator = separator
		}

		r := newRunner(cfg)
		if !required && !cmd.Flags().Changed("input") {
			return cfg, r
		}

		in, size, err := openInput(inputPath)
		if err != nil {
			log.Fatalf("Error opening input: %v", err)
		}
		defer in.Close()

		var src io.Reader = in
		if showProgress && size > 0 {
			src = withProgress(in, size)
		}
		if err := r.load(src); err != nil {
			log.Fatalf("Error loading values: %v", err)
		}
		return cfg, r
	}

	var cmdSort = &cobra.Command{
		Use:   "sort",
		Short: "Print values in ascending order with duplicates collapsed",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, r := loadTree(cmd, true)
			values := r.sorted()
			out := strings.Join(values, "\n")
			if len(values) > 0 {
				fmt.Println(out)
			}

			if copyOut, _ := cmd.Flags().GetBool("copy"); copyOut {
				if err := clipboard.WriteAll(out); err != nil {
					log.Fatalf("Failed to copy to clipboard: %v", err)
				}
				fmt.Fprintf(os.Stderr, "Copied %d values to clipboard.\n", len(values))
			}
		},
	}
	cmdSort.Flags().Bool("copy", false, "copy the sorted values to the clipboard")

	var cmdWalk = &cobra.Command{
		Use:   "walk",
		Short: "Print values in pre-order, in-order or post-order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, r := loadTree(cmd, true)
			order := cfg.defaultOrder()
			if cmd.Flags().Changed("order") {
				var err error
				if order, err = parseOrder(cmd.Flag("order").Value.String()); err != nil {
					log.Fatalf("%v", err)
				}
			}
			if values := r.walk(order); len(values) > 0 {
				fmt.Println(strings.Join(values, "\n"))
			}
		},
	}
	cmdWalk.Flags().String("order", "in", "traversal order: in, pre or post")

	var cmdStats = &cobra.Command{
		Use:   "stats",
		Short: "Print count, height, min and max",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, r := loadTree(cmd, true)
			r.stats(os.Stdout)
		},
	}

	var cmdFind = &cobra.Command{
		Use:   "find VALUE...",
		Short: "Report whether each value is present",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			_, r := loadTree(cmd, true)
			if err := r.find(os.Stdout, args); err != nil {
				log.Fatalf("Error: %v", err)
			}
		},
	}

	var cmdShow = &cobra.Command{
		Use:   "show",
		Short: "Draw the tree with heights and balance factors",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, r := loadTree(cmd, true)
			if useTUI, _ := cmd.Flags().GetBool("tui"); useTUI {
				if err := r.view(); err != nil {
					log.Fatalf("Error running viewer: %v", err)
				}
				return
			}
			r.show(os.Stdout)
		},
	}
	cmdShow.Flags().Bool("tui", false, "browse the diagram in a scrollable full-screen view")

	var cmdRepl = &cobra.Command{
		Use:   "repl",
		Short: "Edit a tree interactively",
		Long:  "Starts an interactive session. With --input the tree is preloaded from the file.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, r := loadTree(cmd, false)
			if useTUI, _ := cmd.Flags().GetBool("tui"); useTUI {
				if err := r.replTUI(); err != nil {
					log.Fatalf("Error running interactive UI: %v", err)
				}
				return
			}
			if err := r.repl(os.Stdin, os.Stdout); err != nil {
				log.Fatalf("Error reading commands: %v", err)
			}
		},
	}
	cmdRepl.Flags().Bool("tui", false, "run the session in a full-screen terminal UI")

	var cmdConfig = &cobra.Command{
		Use:   "config",
		Short: "Show settings from ~/" + configFileName,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(os.Stdout)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlctl usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlctl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlctl",
		Short:   "Sort, inspect and edit values with an AVL tree",
		Version: version,
	}
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "-", "file to read values from (- for stdin)")
	rootCmd.PersistentFlags().BoolVarP(&numeric, "numeric", "n", false, "order values as integers")
	rootCmd.PersistentFlags().StringVarP(&separator, "separator", "s", separatorLine, `value separator: "line", "whitespace" or a literal string`)
	rootCmd.PersistentFlags().BoolVar(&showProgress, "progress", false, "show a progress bar while loading a file")

	rootCmd.AddCommand(cmdSort, cmdWalk, cmdStats, cmdFind, cmdShow, cmdRepl, cmdConfig, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
