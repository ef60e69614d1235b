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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tbxtools/tafsort/pkg/metadata"
	"github.com/tbxtools/tafsort/pkg/resolve"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewFromCSVOperation creates the csv-driven rename operation
func NewFromCSVOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &fromCSVOperation{BaseOperation: base}, nil
}

// 📦 fromCSVOperation renames entries from the Name/Series/Episode mapping
type fromCSVOperation struct {
	BaseOperation
}

func (op *fromCSVOperation) Name() string {
	return "from-csv"
}

// 🏃 Execute runs the csv-driven rename
func (op *fromCSVOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	table, err := metadata.Load(op.Config.CSVPath)
	if err != nil {
		return errors.Errorf("loading metadata: %w", err)
	}
	logger.Debug().Int("records", len(table)).Str("csv", op.Config.CSVPath).Msg("metadata loaded")

	lock, err := acquireRunLock(op.Config.OutputDir)
	if err != nil {
		return err
	}
	defer releaseRunLock(lock)

	strategy := resolve.NewCSVStrategy(table, op.Config.Extension, op.Config.UnmatchedDir)
	return op.processEntries(ctx, strategy)
}
