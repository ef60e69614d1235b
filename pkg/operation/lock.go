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
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gitlab.com/tozd/go/errors"
)

// lockFileName sits inside the output directory for the run's duration.
const lockFileName = ".tafsort.lock"

// 🔒 acquireRunLock locks the output directory for this run
//
// Collision resolution reads the output directory's existing-file set
// before each copy; a second concurrent run would race that read, so
// runs are serialized with a non-blocking file lock. A held lock is a
// fatal setup error for the later run, not something to wait out.
func acquireRunLock(outputDir string) (*flock.Flock, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, errors.Errorf("creating output directory: %w", err)
	}

	lock := flock.New(filepath.Join(outputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.Errorf("acquiring run lock: %w", err)
	}
	if !locked {
		return nil, errors.Errorf("output directory %s is locked by another run", outputDir)
	}
	return lock, nil
}

// releaseRunLock unlocks and removes the lock file.
func releaseRunLock(lock *flock.Flock) {
	path := lock.Path()
	_ = lock.Unlock()
	_ = os.Remove(path)
}
