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

// Package config holds the run options and the optional defaults file.
package config

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Built-in defaults, overridable by the defaults file.
const (
	DefaultPattern      = "*.taf"
	DefaultExtension    = ".taf"
	DefaultUnmatchedDir = "unmatched"
	DefaultConfigFile   = ".tafsort.yaml"
)

// NoLimit disables the entry cap.
const NoLimit = -1

// 📝 Defaults is what the optional config file may override
type Defaults struct {
	Pattern      string `yaml:"pattern" hcl:"pattern,optional"`             // payload glob, e.g. "*.taf"
	Extension    string `yaml:"extension" hcl:"extension,optional"`         // output extension, e.g. ".taf"
	UnmatchedDir string `yaml:"unmatched_dir" hcl:"unmatched_dir,optional"` // subfolder for unmatched entries
	Debug        bool   `yaml:"debug" hcl:"debug,optional"`                 // enable debug logging
}

// 🔧 Options is everything one run needs
type Options struct {
	InputDir     string // root of the per-id folders
	OutputDir    string // flat destination directory
	CSVPath      string // metadata csv, empty in with-id mode
	Pattern      string // payload glob
	Extension    string // output extension
	UnmatchedDir string // subfolder name for unmatched entries
	Limit        int    // max entries to process, NoLimit for all
}

// 🏭 NewOptions creates run options from positional args and defaults
func NewOptions(inputDir, csvPath, outputDir string, limit int, defaults Defaults) Options {
	opts := Options{
		InputDir:     inputDir,
		OutputDir:    outputDir,
		CSVPath:      csvPath,
		Pattern:      DefaultPattern,
		Extension:    DefaultExtension,
		UnmatchedDir: DefaultUnmatchedDir,
		Limit:        limit,
	}
	if defaults.Pattern != "" {
		opts.Pattern = defaults.Pattern
	}
	if defaults.Extension != "" {
		opts.Extension = defaults.Extension
	}
	if defaults.UnmatchedDir != "" {
		opts.UnmatchedDir = defaults.UnmatchedDir
	}
	if opts.Limit < 0 {
		opts.Limit = NoLimit
	}
	return opts
}

// Capped reports whether the entry cap is active.
func (o Options) Capped() bool {
	return o.Limit != NoLimit
}

// ✅ Validate checks the paths a run depends on
//
// Failures here are fatal setup errors: the run never starts.
func Validate(ctx context.Context, opts Options) error {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(opts.InputDir)
	if err != nil {
		return errors.Errorf("input directory %q: %w", opts.InputDir, err)
	}
	if !info.IsDir() {
		return errors.Errorf("input directory %q is not a directory", opts.InputDir)
	}

	if opts.CSVPath != "" {
		info, err := os.Stat(opts.CSVPath)
		if err != nil {
			return errors.Errorf("csv file %q: %w", opts.CSVPath, err)
		}
		if info.IsDir() {
			return errors.Errorf("csv file %q is a directory", opts.CSVPath)
		}
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return errors.Errorf("creating output directory %q: %w", opts.OutputDir, err)
	}

	logger.Debug().
		Str("input", opts.InputDir).
		Str("output", opts.OutputDir).
		Str("pattern", opts.Pattern).
		Msg("options validated")
	return nil
}
