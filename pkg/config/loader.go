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
	"os"

	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for defaults-file parsers
type Parser interface {
	// 📝 Parse parses the defaults from bytes
	Parse(ctx context.Context, data []byte) (*Defaults, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

// 🗺️ parsers is the list of registered parsers
var parsers []Parser

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

// 📥 LoadDefaults reads the optional defaults file
//
// A missing file is not an error: the tool works without one. An
// existing file that cannot be parsed is a fatal setup error.
func LoadDefaults(ctx context.Context, path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Defaults{}, nil
	}
	if err != nil {
		return Defaults{}, errors.Errorf("reading defaults file: %w", err)
	}

	parser := GetParser(path)
	if parser == nil {
		return Defaults{}, errors.Errorf("no parser for defaults file %q", path)
	}

	defaults, err := parser.Parse(ctx, data)
	if err != nil {
		return Defaults{}, errors.Errorf("parsing defaults file %q: %w", path, err)
	}
	return *defaults, nil
}
