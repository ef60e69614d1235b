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
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	idWidth = 12 // base width for the folder id column
)

// 📢 UserLogger provides user-friendly per-entry feedback
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// DisableColor turns off colored output globally. It is also applied
// automatically when stdout is not a terminal.
func DisableColor() {
	color.NoColor = true
	pterm.DisableColor()
}

// EnableColorIfTerminal re-enables color only when stdout is a TTY.
func EnableColorIfTerminal() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		DisableColor()
	}
}

// 📝 LogResult prints one entry result with the matching prefix printer
func (u *UserLogger) LogResult(result Result) {
	line := FormatResultLine(result)

	switch result.Outcome {
	case OutcomeCopied:
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✓"}).Println(line)
		u.log.Info().Str("id", result.ID).Str("dst", result.Destination).Msg("entry copied")
	case OutcomeUnmatched:
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠"}).Println(line)
		u.log.Info().Str("id", result.ID).Str("dst", result.Destination).Msg("entry unmatched")
	case OutcomeFailed:
		pterm.Error.WithPrefix(pterm.Prefix{Text: "✗"}).Println(line)
		u.log.Error().Str("id", result.ID).Err(result.Err).Msg("entry failed")
	default:
		pterm.Debug.WithPrefix(pterm.Prefix{Text: "-"}).Println(line)
		u.log.Debug().Str("id", result.ID).Msg("entry in unknown state")
	}
}

// 🎯 FormatResultLine formats a result for display
func FormatResultLine(result Result) string {
	idPart := fmt.Sprintf("%-*s", idWidth, result.ID)

	switch result.Outcome {
	case OutcomeCopied:
		return fmt.Sprintf("%s → %s", idPart, color.GreenString(result.Destination))
	case OutcomeUnmatched:
		return fmt.Sprintf("%s → %s", idPart, color.YellowString(result.Destination))
	case OutcomeFailed:
		return fmt.Sprintf("%s %s", idPart, color.RedString(result.Err.Error()))
	default:
		return idPart
	}
}

// TODO(dr.methodical): 🧪 Add tests for UserLogger print routing
