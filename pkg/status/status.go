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

// Package status tracks per-entry outcomes and renders the end-of-run summary.
package status

import (
	"sync"
)

// 📊 Outcome represents the result of processing one entry
type Outcome int

const (
	OutcomeUnknown   Outcome = iota
	OutcomeCopied            // renamed from metadata (or id) and copied
	OutcomeUnmatched         // no usable metadata, routed to unmatched/
	OutcomeFailed            // scan or copy error, entry skipped
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeUnmatched:
		return "unmatched"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Result records what happened to a single entry
type Result struct {
	ID          string  // folder id
	Outcome     Outcome // what happened
	Destination string  // final path, empty for failures
	Err         error   // set when Outcome is OutcomeFailed
}

// 🔧 Tracker accumulates entry results in processing order
type Tracker struct {
	mu      sync.Mutex
	results []Result
}

// 🏭 NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Add records one entry result.
func (t *Tracker) Add(result Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results = append(t.results, result)
}

// Results returns the recorded results in insertion order.
func (t *Tracker) Results() []Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Result, len(t.results))
	copy(out, t.results)
	return out
}

// Count returns how many results carry the given outcome.
func (t *Tracker) Count(outcome Outcome) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, r := range t.results {
		if r.Outcome == outcome {
			n++
		}
	}
	return n
}

// Failed returns only the failed results, in insertion order.
func (t *Tracker) Failed() []Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	var failed []Result
	for _, r := range t.results {
		if r.Outcome == OutcomeFailed {
			failed = append(failed, r)
		}
	}
	return failed
}
