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

package status

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// 📊 RenderSummary renders the end-of-run counts as a table, followed by
// the ids of failed entries with their errors.
func RenderSummary(tracker *Tracker, runID string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Outcome", "Count"})
	tw.AppendRows([]table.Row{
		{OutcomeCopied.String(), tracker.Count(OutcomeCopied)},
		{OutcomeUnmatched.String(), tracker.Count(OutcomeUnmatched)},
		{OutcomeFailed.String(), tracker.Count(OutcomeFailed)},
	})
	tw.AppendFooter(table.Row{"total", len(tracker.Results())})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	var b strings.Builder
	b.WriteString(tw.Render())
	b.WriteString("\n")

	if failed := tracker.Failed(); len(failed) > 0 {
		b.WriteString("\nFailed entries:\n")
		for _, r := range failed {
			fmt.Fprintf(&b, "  %s: %v\n", r.ID, r.Err)
		}
	}

	fmt.Fprintf(&b, "\nrun %s\n", runID)
	return b.String()
}
