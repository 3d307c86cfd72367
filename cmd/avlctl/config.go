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
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avlctl.yaml"

type InputConfig struct {
	Numeric   bool   `yaml:"numeric"`
	Separator string `yaml:"separator"` // "line", "whitespace" or a literal separator
}

type OutputConfig struct {
	Order string `yaml:"order"`
	Color bool   `yaml:"color"`
}

type ReplConfig struct {
	CacheTTL string `yaml:"cache_ttl"`
}

type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Repl   ReplConfig   `yaml:"repl"`
}

var defaultConfig = Config{
	Input: InputConfig{
		Numeric:   false,
		Separator: separatorLine,
	},
	Output: OutputConfig{
		Order: "in",
		Color: true,
	},
	Repl: ReplConfig{
		CacheTTL: "5m",
	},
}

// LoadConfig reads ~/.avlctl.yaml. Any problem with the file yields the
// default configuration.
func LoadConfig() *Config {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) *Config {
	cfg := defaultConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &cfg
	}

	// Keys missing from the file keep their default values
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fallback := defaultConfig
		return &fallback
	}
	if _, err := parseOrder(cfg.Output.Order); err != nil {
		cfg.Output.Order = defaultConfig.Output.Order
	}

	return &cfg
}

// cacheTTL returns the REPL lookup cache lifetime.
func (c *Config) cacheTTL() time.Duration {
	ttl, err := time.ParseDuration(c.Repl.CacheTTL)
	if err != nil || ttl <= 0 {
		return lookupCacheExpiration
	}
	return ttl
}

func (c *Config) defaultOrder() traversalOrder {
	order, err := parseOrder(c.Output.Order)
	if err != nil {
		return orderIn
	}
	return order
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

func displaySettings(w io.Writer) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Fprintf(w, "Failed to get config path: %v\n", err)
		return
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintf(w, "Configuration file not found. Creating default configuration...\n")
		if err := writeDefaultConfig(configPath); err != nil {
			fmt.Fprintf(w, "Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "Created default configuration at: %s\n\n", configPath)
	}

	cfg := loadConfigFrom(configPath)
	fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	fmt.Fprintf(w, "  input.numeric:   %t\n", cfg.Input.Numeric)
	fmt.Fprintf(w, "  input.separator: %q\n", cfg.Input.Separator)
	fmt.Fprintf(w, "  output.order:    %s\n", cfg.defaultOrder())
	fmt.Fprintf(w, "  output.color:    %t\n", cfg.Output.Color)
	fmt.Fprintf(w, "  repl.cache_ttl:  %s\n", cfg.cacheTTL())
}
