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

// Package metadata loads the Name/Series/Episode CSV mapping used to rename files.
package metadata

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Column names expected in the CSV header. Name is mandatory, the
// other two may be present with empty values.
const (
	ColumnName    = "Name"
	ColumnSeries  = "Series"
	ColumnEpisode = "Episode"
)

// 🚨 ErrMissingNameColumn is returned when the CSV header has no Name column
var ErrMissingNameColumn = errors.New("csv header is missing the Name column")

// 📄 Record holds the renaming metadata for a single id
type Record struct {
	Series  string
	Episode string
}

// HasInformation reports whether at least one field carries a usable value.
func (r Record) HasInformation() bool {
	return strings.TrimSpace(r.Series) != "" || strings.TrimSpace(r.Episode) != ""
}

// Stem builds the filename stem from the populated fields, joining
// Series and Episode with " - " and omitting whichever half is blank.
func (r Record) Stem() string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(r.Series); s != "" {
		parts = append(parts, s)
	}
	if e := strings.TrimSpace(r.Episode); e != "" {
		parts = append(parts, e)
	}
	return strings.Join(parts, " - ")
}

// 🗺️ Table maps lowercased ids to their records
type Table map[string]Record

// Lookup folds case before consulting the table.
func (t Table) Lookup(id string) (Record, bool) {
	rec, ok := t[strings.ToLower(strings.TrimSpace(id))]
	return rec, ok
}

// 📥 Load reads the CSV mapping from path
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening csv file: %w", err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, errors.Errorf("parsing %s: %w", path, err)
	}
	return table, nil
}

// 📝 Parse reads the CSV mapping from r
func Parse(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows read as missing cells
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingNameColumn
	}
	if err != nil {
		return nil, errors.Errorf("reading csv header: %w", err)
	}

	columns := indexColumns(header)
	nameIdx, ok := columns[ColumnName]
	if !ok {
		return nil, ErrMissingNameColumn
	}
	seriesIdx := columnIndex(columns, ColumnSeries)
	episodeIdx := columnIndex(columns, ColumnEpisode)

	table := make(Table)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Errorf("reading csv row: %w", err)
		}

		name := strings.TrimSpace(cell(row, nameIdx))
		if name == "" {
			continue
		}

		// Duplicate names: last row wins.
		table[strings.ToLower(name)] = Record{
			Series:  strings.TrimSpace(cell(row, seriesIdx)),
			Episode: strings.TrimSpace(cell(row, episodeIdx)),
		}
	}

	return table, nil
}

// indexColumns maps header names to their positions. Later duplicates
// of a header name do not displace the first occurrence.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	return columns
}

// columnIndex returns the position of name in columns, or -1 when the
// column is absent so that cell lookups read as empty.
func columnIndex(columns map[string]int, name string) int {
	if idx, ok := columns[name]; ok {
		return idx
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
