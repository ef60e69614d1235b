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
	"github.com/tbxtools/tafsort/pkg/copier"
	"github.com/tbxtools/tafsort/pkg/resolve"
	"github.com/tbxtools/tafsort/pkg/scanner"
	"github.com/tbxtools/tafsort/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔄 processEntries runs the shared per-entry pipeline
//
// Entry failures are recorded and the loop keeps going; only listing
// the input root can fail the operation as a whole. The cap is checked
// before each entry, so "--test 2" starts at most two entries.
func (op *BaseOperation) processEntries(ctx context.Context, strategy resolve.Strategy) error {
	logger := zerolog.Ctx(ctx)

	entries, err := scanner.New(op.Config.InputDir, op.Config.Pattern).Scan(ctx)
	if err != nil {
		return errors.Errorf("scanning input: %w", err)
	}

	processed := 0
	for _, entry := range entries {
		if op.Config.Capped() && processed >= op.Config.Limit {
			logger.Debug().Int("limit", op.Config.Limit).Msg("entry cap reached")
			break
		}
		processed++

		op.record(op.processEntry(ctx, entry, strategy))
	}

	return nil
}

// 📄 processEntry handles a single scanner entry
func (op *BaseOperation) processEntry(ctx context.Context, entry scanner.Entry, strategy resolve.Strategy) status.Result {
	if entry.Err != nil {
		return status.Result{ID: entry.ID, Outcome: status.OutcomeFailed, Err: entry.Err}
	}

	target := strategy.Resolve(entry.ID)

	dst, err := resolve.UniquePath(target.Path(op.Config.OutputDir))
	if err != nil {
		return status.Result{ID: entry.ID, Outcome: status.OutcomeFailed, Err: errors.Errorf("resolving target: %w", err)}
	}

	if err := copier.Copy(ctx, entry.Path, dst); err != nil {
		return status.Result{ID: entry.ID, Outcome: status.OutcomeFailed, Err: errors.Errorf("copying: %w", err)}
	}

	outcome := status.OutcomeCopied
	if target.Unmatched {
		outcome = status.OutcomeUnmatched
	}
	return status.Result{ID: entry.ID, Outcome: outcome, Destination: dst}
}

// record tracks the result and prints the per-entry line.
func (op *BaseOperation) record(result status.Result) {
	op.Tracker.Add(result)
	op.UserLogger.LogResult(result)
}
