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

package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbxtools/tafsort/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🧪 TestTracker tests outcome accumulation and counting
func TestTracker(t *testing.T) {
	tracker := status.NewTracker()
	tracker.Add(status.Result{ID: "AAAA0001", Outcome: status.OutcomeCopied, Destination: "out/Fables - Ep1.taf"})
	tracker.Add(status.Result{ID: "BBBB0002", Outcome: status.OutcomeUnmatched, Destination: "out/unmatched/BBBB0002.taf"})
	tracker.Add(status.Result{ID: "CCCC0003", Outcome: status.OutcomeFailed, Err: errors.New("no file matching \"*.taf\"")})
	tracker.Add(status.Result{ID: "DDDD0004", Outcome: status.OutcomeCopied, Destination: "out/Fables - Ep2.taf"})

	assert.Equal(t, 2, tracker.Count(status.OutcomeCopied))
	assert.Equal(t, 1, tracker.Count(status.OutcomeUnmatched))
	assert.Equal(t, 1, tracker.Count(status.OutcomeFailed))

	results := tracker.Results()
	require.Len(t, results, 4)
	assert.Equal(t, "AAAA0001", results[0].ID, "insertion order is preserved")

	failed := tracker.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "CCCC0003", failed[0].ID)
}

// 🧪 TestOutcomeString tests the outcome names used in the summary
func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "copied", status.OutcomeCopied.String())
	assert.Equal(t, "unmatched", status.OutcomeUnmatched.String())
	assert.Equal(t, "failed", status.OutcomeFailed.String())
	assert.Equal(t, "unknown", status.OutcomeUnknown.String())
}

// 🧪 TestRenderSummary tests the summary table contents
func TestRenderSummary(t *testing.T) {
	tracker := status.NewTracker()
	tracker.Add(status.Result{ID: "AAAA0001", Outcome: status.OutcomeCopied, Destination: "out/a.taf"})
	tracker.Add(status.Result{ID: "BBBB0002", Outcome: status.OutcomeFailed, Err: errors.New("copy blew up")})

	out := status.RenderSummary(tracker, "test-run-id")
	assert.Contains(t, out, "copied")
	assert.Contains(t, out, "unmatched")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "Failed entries:")
	assert.Contains(t, out, "BBBB0002: copy blew up")
	assert.Contains(t, out, "test-run-id")
}

// 🧪 TestFormatResultLine tests per-entry line formatting
func TestFormatResultLine(t *testing.T) {
	line := status.FormatResultLine(status.Result{
		ID:          "AAAA0001",
		Outcome:     status.OutcomeCopied,
		Destination: "out/Fables - Ep1.taf",
	})
	assert.Contains(t, line, "AAAA0001")
	assert.Contains(t, line, "Fables - Ep1.taf")

	line = status.FormatResultLine(status.Result{
		ID:      "BBBB0002",
		Outcome: status.OutcomeFailed,
		Err:     errors.New("boom"),
	})
	assert.Contains(t, line, "boom")
}
