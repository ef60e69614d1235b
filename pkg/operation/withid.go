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

	"github.com/tbxtools/tafsort/pkg/resolve"
)

// 📦 NewWithIDOperation creates the id-based rename operation
func NewWithIDOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &withIDOperation{BaseOperation: base}, nil
}

// 📦 withIDOperation renames every entry to its folder id
type withIDOperation struct {
	BaseOperation
}

func (op *withIDOperation) Name() string {
	return "with-id"
}

// 🏃 Execute runs the id-based rename
func (op *withIDOperation) Execute(ctx context.Context) error {
	lock, err := acquireRunLock(op.Config.OutputDir)
	if err != nil {
		return err
	}
	defer releaseRunLock(lock)

	return op.processEntries(ctx, resolve.NewIDStrategy(op.Config.Extension))
}
