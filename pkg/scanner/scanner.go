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

// Package scanner enumerates the per-id source folders under the input root.
package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📦 Entry is one source folder under the input root
type Entry struct {
	ID   string // folder name, used as the file id
	Path string // path to the single payload file
	Err  error  // set when the folder has zero or multiple payload files
}

// 🔍 Scanner lists source folders and locates their payload files
type Scanner struct {
	root    string
	pattern string // glob matched against payload base names, e.g. "*.taf"
}

// 🏭 New creates a scanner over root matching pattern
func New(root, pattern string) *Scanner {
	return &Scanner{root: root, pattern: pattern}
}

// Scan lists the immediate subdirectories of the root in name order and
// locates each one's payload file. Folders with zero or multiple
// matches produce an Entry with Err set; the caller decides whether to
// keep going. A fresh Scan re-reads the directory, so rescanning after
// the tree changed picks up the new state.
func (s *Scanner) Scan(ctx context.Context) ([]Entry, error) {
	logger := zerolog.Ctx(ctx)

	children, err := os.ReadDir(s.root)
	if err != nil {
		return nil, errors.Errorf("reading input directory %s: %w", s.root, err)
	}

	var entries []Entry
	for _, child := range children {
		if !child.IsDir() {
			continue
		}

		entry := Entry{ID: child.Name()}
		path, err := s.locatePayload(filepath.Join(s.root, child.Name()))
		if err != nil {
			logger.Debug().Str("id", entry.ID).Err(err).Msg("folder skipped")
			entry.Err = err
		} else {
			entry.Path = path
		}
		entries = append(entries, entry)
	}

	logger.Debug().Int("count", len(entries)).Str("root", s.root).Msg("scanned input root")
	return entries, nil
}

// locatePayload finds the single file in dir whose base name matches
// the pattern. Nested directories are not descended into.
func (s *Scanner) locatePayload(dir string) (string, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Errorf("reading folder: %w", err)
	}

	var matches []string
	for _, child := range children {
		if child.IsDir() {
			continue
		}
		ok, err := doublestar.Match(strings.ToLower(s.pattern), strings.ToLower(child.Name()))
		if err != nil {
			return "", errors.Errorf("matching pattern %q: %w", s.pattern, err)
		}
		if ok {
			matches = append(matches, filepath.Join(dir, child.Name()))
		}
	}

	switch len(matches) {
	case 0:
		return "", errors.Errorf("no file matching %q", s.pattern)
	case 1:
		return matches[0], nil
	default:
		return "", errors.Errorf("%d files matching %q, want exactly one", len(matches), s.pattern)
	}
}
