// Copyright 2026 The slf4d Authors
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

package slf4d

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatingWriter_CreatesMissingDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "logs")
	w, err := NewRotatingWriter(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Write(testRecord(LevelInfo, ""), "first line"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "log_"))
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".log"))
}

func TestRotatingWriter_ResumesMostRecentUnderThresholdFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Now()

	underRecent := filepath.Join(dir, "log_2024-01-01T00-00-00.log")
	overThreshold := filepath.Join(dir, "log_2024-01-02T00-00-00.log")
	underStale := filepath.Join(dir, "log_2024-01-03T00-00-00.log")

	require.NoError(t, os.WriteFile(underRecent, []byte("small\n"), 0o644))
	require.NoError(t, os.WriteFile(overThreshold, make([]byte, 200), 0o644))
	require.NoError(t, os.WriteFile(underStale, []byte("older\n"), 0o644))

	// The under-threshold file with the most recent mtime wins, regardless
	// of the timestamps embedded in the names.
	require.NoError(t, os.Chtimes(underStale, now.Add(-2*time.Hour), now.Add(-2*time.Hour)))
	require.NoError(t, os.Chtimes(overThreshold, now, now))
	require.NoError(t, os.Chtimes(underRecent, now.Add(-time.Minute), now.Add(-time.Minute)))

	w, err := NewRotatingWriter(dir, WithMaxFileSize(100))
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, underRecent, w.Path())

	require.NoError(t, w.Write(testRecord(LevelInfo, ""), "appended"))
	data, err := os.ReadFile(underRecent)
	require.NoError(t, err)
	assert.Equal(t, "small\nappended\n", string(data))
}

func TestRotatingWriter_StartsFreshWhenNoCandidate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// Only an over-threshold file and one with a different prefix exist.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "log_2024-01-01T00-00-00.log"), make([]byte, 200), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other_2024-01-01T00-00-00.log"), []byte("x"), 0o644))

	w, err := NewRotatingWriter(dir, WithMaxFileSize(100))
	require.NoError(t, err)
	defer w.Close()

	name := filepath.Base(w.Path())
	assert.True(t, strings.HasPrefix(name, "log_"))
	assert.NotEqual(t, "log_2024-01-01T00-00-00.log", name)
	assert.NotEqual(t, "other_2024-01-01T00-00-00.log", name)
}

func TestRotatingWriter_RotatesWhenThresholdExceeded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewRotatingWriter(dir, WithMaxFileSize(10))
	require.NoError(t, err)
	defer w.Close()

	first := w.Path()
	require.NoError(t, w.Write(testRecord(LevelInfo, ""), "a line well past the limit"))
	// The size check happens before the write, so the next call rotates.
	require.NoError(t, w.Write(testRecord(LevelInfo, ""), "lands in a new file"))

	second := w.Path()
	assert.NotEqual(t, first, second)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "lands in a new file\n", string(data))
}

func TestRotatingWriter_CompressesRotatedFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewRotatingWriter(dir, WithMaxFileSize(10), WithCompression(), WithPrefix("app"))
	require.NoError(t, err)
	defer w.Close()

	first := w.Path()
	require.NoError(t, w.Write(testRecord(LevelInfo, ""), "a line well past the limit"))
	require.NoError(t, w.Write(testRecord(LevelInfo, ""), "fresh file"))

	// The rotated-out file is replaced by its gzip form.
	_, err = os.Stat(first)
	assert.True(t, os.IsNotExist(err))

	f, err := os.Open(first + ".gz")
	require.NoError(t, err)
	defer f.Close()
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	content, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, "a line well past the limit\n", string(content))
}

func TestRotatingWriter_NeverResumesCompressedFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "log_2024-01-01T00-00-00.log.gz"), []byte("x"), 0o644))

	w, err := NewRotatingWriter(dir, WithMaxFileSize(100))
	require.NoError(t, err)
	defer w.Close()

	assert.False(t, strings.HasSuffix(w.Path(), ".gz"))
}
