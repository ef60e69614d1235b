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

// Package operation provides the rename operations and the runner that executes them.
package operation

import (
	"context"

	"github.com/tbxtools/tafsort/pkg/config"
	"github.com/tbxtools/tafsort/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation defines a runnable rename operation
type Operation interface {
	// Name returns the operation name for logging
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies an operation needs
type Options struct {
	// Config is the validated run configuration
	Config config.Options
	// Tracker accumulates per-entry outcomes
	Tracker *status.Tracker
	// UserLogger prints per-entry feedback
	UserLogger *status.UserLogger
}

// validate checks that the required dependencies are present.
func (o Options) validate() error {
	if o.Tracker == nil {
		return errors.Errorf("tracker is required")
	}
	if o.UserLogger == nil {
		return errors.Errorf("user logger is required")
	}
	return nil
}

// 📦 BaseOperation carries the shared operation state
type BaseOperation struct {
	Config     config.Options
	Tracker    *status.Tracker
	UserLogger *status.UserLogger
}

// 🏭 NewBaseOperation creates the shared operation state
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if err := opts.validate(); err != nil {
		return BaseOperation{}, err
	}
	return BaseOperation{
		Config:     opts.Config,
		Tracker:    opts.Tracker,
		UserLogger: opts.UserLogger,
	}, nil
}
