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

// Package resolve turns a folder id into a safe, collision-free target path.
package resolve

import (
	"path/filepath"

	"github.com/tbxtools/tafsort/pkg/metadata"
)

// 🎯 Target is the resolved destination for one entry
type Target struct {
	Name      string // sanitized file name, extension included
	Subdir    string // subdirectory under the output root, "" for the root itself
	Unmatched bool   // true when the id had no usable metadata
}

// Path joins the target onto the output root.
func (t Target) Path(outputDir string) string {
	if t.Subdir == "" {
		return filepath.Join(outputDir, t.Name)
	}
	return filepath.Join(outputDir, t.Subdir, t.Name)
}

// 🔌 Strategy decides the target file name for an id
type Strategy interface {
	Resolve(id string) Target
}

// 📄 CSVStrategy renames from the metadata table, routing misses to unmatched/
type CSVStrategy struct {
	table        metadata.Table
	extension    string
	unmatchedDir string
}

// 🏭 NewCSVStrategy creates a strategy backed by the metadata table
func NewCSVStrategy(table metadata.Table, extension, unmatchedDir string) *CSVStrategy {
	return &CSVStrategy{
		table:        table,
		extension:    extension,
		unmatchedDir: unmatchedDir,
	}
}

// Resolve looks the id up case-insensitively. A record with at least
// one of Series/Episode set wins the "<Series> - <Episode>" name in the
// output root; anything else keeps the id and goes to the unmatched
// subdirectory.
func (s *CSVStrategy) Resolve(id string) Target {
	rec, ok := s.table.Lookup(id)
	if ok && rec.HasInformation() {
		return Target{Name: SanitizeStem(rec.Stem()) + s.extension}
	}
	return Target{
		Name:      SanitizeStem(id) + s.extension,
		Subdir:    s.unmatchedDir,
		Unmatched: true,
	}
}

// 🆔 IDStrategy renames every entry to its folder id
type IDStrategy struct {
	extension string
}

// 🏭 NewIDStrategy creates the id-based strategy
func NewIDStrategy(extension string) *IDStrategy {
	return &IDStrategy{extension: extension}
}

func (s *IDStrategy) Resolve(id string) Target {
	return Target{Name: SanitizeStem(id) + s.extension}
}
