// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultFile is looked up in the working directory when no --config is given
const DefaultFile = ".rop.yaml"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config holds defaults for every invocation
type Config struct {
	Protect    []string `json:"protect" yaml:"protect" hcl:"protect,optional"`             // Doublestar globs for names never selected
	IgnoreCase bool     `json:"ignore_case" yaml:"ignore_case" hcl:"ignore_case,optional"` // Case-insensitive patterns
	DryRun     bool     `json:"dry_run" yaml:"dry_run" hcl:"dry_run,optional"`             // Report without mutating
	Summary    bool     `json:"summary" yaml:"summary" hcl:"summary,optional"`             // Print a tally after the run
	Debug      bool     `json:"debug" yaml:"debug" hcl:"debug,optional"`                   // Debug logging
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🎯 LoadOptional is Load, except that a missing file yields an empty config
func LoadOptional(ctx context.Context, path string) (*Config, error) {
	cfg, err := Load(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no configuration file")
		return &Config{}, nil
	}
	return cfg, err
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	for i, glob := range cfg.Protect {
		if glob == "" {
			return errors.Errorf("protect[%d] is empty", i)
		}
		if !doublestar.ValidatePattern(glob) {
			return errors.Errorf("protect[%d]: invalid glob %q", i, glob)
		}
	}
	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("protect=%v ignore_case=%t dry_run=%t summary=%t debug=%t",
		cfg.Protect, cfg.IgnoreCase, cfg.DryRun, cfg.Summary, cfg.Debug)
}
