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
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner executes operations synchronously
//
// The pipeline is deliberately single-threaded: the collision resolver
// consults the output directory before each copy, which only stays
// race-free with one entry in flight at a time.
type Runner struct {
	runID string
}

// 🏗️ NewRunner creates a new runner with a fresh run id
func NewRunner() *Runner {
	return &Runner{runID: uuid.NewString()}
}

// RunID returns the id stamped on this runner's log records.
func (r *Runner) RunID() string {
	return r.runID
}

// 🏃 Run executes an operation, timing it and tagging logs with the run id
func (r *Runner) Run(ctx context.Context, op Operation) error {
	logger := zerolog.Ctx(ctx).With().
		Str("run_id", r.runID).
		Str("operation", op.Name()).
		Logger()
	ctx = logger.WithContext(ctx)

	started := time.Now()
	logger.Info().Msg("operation started")

	if err := op.Execute(ctx); err != nil {
		logger.Error().Err(err).Dur("duration", time.Since(started)).Msg("operation failed")
		return errors.Errorf("executing %s: %w", op.Name(), err)
	}

	logger.Info().Dur("duration", time.Since(started)).Msg("operation finished")
	return nil
}
