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

package operation_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbxtools/tafsort/pkg/config"
	"github.com/tbxtools/tafsort/pkg/operation"
	"github.com/tbxtools/tafsort/pkg/status"
)

// 🧪 testEnv bundles what an operation test needs
type testEnv struct {
	ctx       context.Context
	inputDir  string
	outputDir string
	csvPath   string
	tracker   *status.Tracker
}

// 🧪 newTestEnv creates an input tree, a csv mapping, and fresh tracking
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	dir := t.TempDir()
	env := &testEnv{
		ctx:       ctx,
		inputDir:  filepath.Join(dir, "input"),
		outputDir: filepath.Join(dir, "output"),
		csvPath:   filepath.Join(dir, "mapping.csv"),
		tracker:   status.NewTracker(),
	}
	require.NoError(t, os.MkdirAll(env.inputDir, 0755))
	return env
}

// addFolder creates one per-id folder containing the given payload files.
func (e *testEnv) addFolder(t *testing.T, id string, payloads ...string) {
	t.Helper()
	dir := filepath.Join(e.inputDir, id)
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, name := range payloads {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("payload of "+id), 0644))
	}
}

func (e *testEnv) writeCSV(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(e.csvPath, []byte(content), 0644))
}

func (e *testEnv) options(t *testing.T, csvPath string, limit int) config.Options {
	t.Helper()
	opts := config.NewOptions(e.inputDir, csvPath, e.outputDir, limit, config.Defaults{})
	require.NoError(t, config.Validate(e.ctx, opts))
	return opts
}

func (e *testEnv) runFromCSV(t *testing.T, limit int) error {
	t.Helper()
	op, err := operation.NewFromCSVOperation(operation.Options{
		Config:     e.options(t, e.csvPath, limit),
		Tracker:    e.tracker,
		UserLogger: status.NewUserLogger(e.ctx),
	})
	require.NoError(t, err)
	return operation.NewRunner().Run(e.ctx, op)
}

func (e *testEnv) runWithID(t *testing.T, limit int) error {
	t.Helper()
	op, err := operation.NewWithIDOperation(operation.Options{
		Config:     e.options(t, "", limit),
		Tracker:    e.tracker,
		UserLogger: status.NewUserLogger(e.ctx),
	})
	require.NoError(t, err)
	return operation.NewRunner().Run(e.ctx, op)
}

// 🧪 TestFromCSVOperation tests the csv-driven end-to-end run
func TestFromCSVOperation(t *testing.T) {
	env := newTestEnv(t)
	env.addFolder(t, "12345678", "track.taf")
	env.addFolder(t, "ABCD0001", "story.taf")
	env.addFolder(t, "NOMETA01", "x.taf")
	env.addFolder(t, "BROKEN01") // no payload at all
	env.writeCSV(t,
		"Name,Series,Episode\n"+
			"12345678,Fables,Ep1\n"+
			"abcd0001,Stories,\n")

	require.NoError(t, env.runFromCSV(t, config.NoLimit))

	// Matched entries land flat in the output root.
	assert.FileExists(t, filepath.Join(env.outputDir, "Fables - Ep1.taf"))
	assert.FileExists(t, filepath.Join(env.outputDir, "Stories.taf"))

	// Ids without a row go to unmatched/.
	assert.FileExists(t, filepath.Join(env.outputDir, "unmatched", "NOMETA01.taf"))

	// The payloadless folder is a recorded failure, not an abort.
	assert.Equal(t, 2, env.tracker.Count(status.OutcomeCopied))
	assert.Equal(t, 1, env.tracker.Count(status.OutcomeUnmatched))
	assert.Equal(t, 1, env.tracker.Count(status.OutcomeFailed))
	require.Len(t, env.tracker.Failed(), 1)
	assert.Equal(t, "BROKEN01", env.tracker.Failed()[0].ID)

	// Sources survive untouched.
	assert.FileExists(t, filepath.Join(env.inputDir, "12345678", "track.taf"))
}

// 🧪 TestFromCSVCopiedBytes tests content fidelity through the pipeline
func TestFromCSVCopiedBytes(t *testing.T) {
	env := newTestEnv(t)
	env.addFolder(t, "12345678", "track.taf")
	env.writeCSV(t, "Name,Series,Episode\n12345678,Fables,Ep1\n")

	require.NoError(t, env.runFromCSV(t, config.NoLimit))

	got, err := os.ReadFile(filepath.Join(env.outputDir, "Fables - Ep1.taf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload of 12345678"), got)
}

// 🧪 TestFromCSVSecondRunNeverOverwrites tests collision suffixing across runs
func TestFromCSVSecondRunNeverOverwrites(t *testing.T) {
	env := newTestEnv(t)
	env.addFolder(t, "12345678", "track.taf")
	env.writeCSV(t, "Name,Series,Episode\n12345678,Fables,Ep1\n")

	require.NoError(t, env.runFromCSV(t, config.NoLimit))
	first, err := os.ReadFile(filepath.Join(env.outputDir, "Fables - Ep1.taf"))
	require.NoError(t, err)

	require.NoError(t, env.runFromCSV(t, config.NoLimit))

	// The first run's file is byte-identical, the second got _1.
	again, err := os.ReadFile(filepath.Join(env.outputDir, "Fables - Ep1.taf"))
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.FileExists(t, filepath.Join(env.outputDir, "Fables - Ep1_1.taf"))
}

// 🧪 TestEntryCap tests the --test N limiting mode
func TestEntryCap(t *testing.T) {
	env := newTestEnv(t)
	for _, id := range []string{"AAAA0001", "BBBB0002", "CCCC0003", "DDDD0004"} {
		env.addFolder(t, id, "track.taf")
	}
	env.writeCSV(t, "Name,Series,Episode\n")

	require.NoError(t, env.runFromCSV(t, 2))
	assert.Len(t, env.tracker.Results(), 2)

	// Cap of zero processes nothing.
	env2 := newTestEnv(t)
	env2.addFolder(t, "AAAA0001", "track.taf")
	env2.writeCSV(t, "Name,Series,Episode\n")
	require.NoError(t, env2.runFromCSV(t, 0))
	assert.Empty(t, env2.tracker.Results())
}

// 🧪 TestWithIDOperation tests the id-based end-to-end run
func TestWithIDOperation(t *testing.T) {
	env := newTestEnv(t)
	env.addFolder(t, "00000001", "x.taf")
	env.addFolder(t, "00000002", "y.taf")

	require.NoError(t, env.runWithID(t, config.NoLimit))

	assert.FileExists(t, filepath.Join(env.outputDir, "00000001.taf"))
	assert.FileExists(t, filepath.Join(env.outputDir, "00000002.taf"))
	assert.Equal(t, 2, env.tracker.Count(status.OutcomeCopied))
	assert.Equal(t, 0, env.tracker.Count(status.OutcomeUnmatched))

	// No unmatched/ folder in with-id mode.
	_, err := os.Stat(filepath.Join(env.outputDir, "unmatched"))
	assert.True(t, os.IsNotExist(err))
}

// 🧪 TestFromCSVBadHeader tests that a malformed csv is fatal
func TestFromCSVBadHeader(t *testing.T) {
	env := newTestEnv(t)
	env.addFolder(t, "12345678", "track.taf")
	env.writeCSV(t, "Series,Episode\nFables,Ep1\n")

	err := env.runFromCSV(t, config.NoLimit)
	require.Error(t, err)
	assert.Empty(t, env.tracker.Results(), "no entries are processed on setup failure")
}
