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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"
)

// defaultMaxFileSize is the rotation threshold in bytes.
const defaultMaxFileSize int64 = 2_000_000_000

// rotateTimestampLayout names rotated files; colons are avoided for
// filesystem portability.
const rotateTimestampLayout = "2006-01-02T15-04-05"

// RotatingWriter appends records to a "current" file in a directory and, when
// the file's on-disk size exceeds a threshold, closes it and starts a fresh
// one named <prefix>_<timestamp>.log.
//
// On construction, an existing directory is scanned (non-recursively) for
// files carrying the configured prefix that are still under the threshold;
// the most recently modified of those is continued, so restarting a process
// picks up where it left off instead of fragmenting output across files. A
// missing directory is created recursively and a fresh file started.
//
// The size check, rotation, and write all happen under one per-instance lock,
// so writes never interleave and rotations never race. The writer is not safe
// for multiple processes sharing one directory.
type RotatingWriter struct {
	mu       sync.Mutex
	dir      string
	prefix   string
	maxSize  int64
	compress bool
	f        *os.File
	path     string
}

// RotatingOption configures a [RotatingWriter].
type RotatingOption func(*RotatingWriter)

// WithPrefix sets the file name prefix (default "log").
func WithPrefix(prefix string) RotatingOption {
	return func(w *RotatingWriter) {
		if prefix != "" {
			w.prefix = prefix
		}
	}
}

// WithMaxFileSize sets the rotation threshold in bytes (default 2e9).
func WithMaxFileSize(n int64) RotatingOption {
	return func(w *RotatingWriter) {
		if n > 0 {
			w.maxSize = n
		}
	}
}

// WithCompression gzip-compresses each file as it is rotated out. The
// current file is always kept uncompressed so it can be tailed and resumed.
func WithCompression() RotatingOption {
	return func(w *RotatingWriter) {
		w.compress = true
	}
}

// NewRotatingWriter creates a rotating file writer over the given directory.
func NewRotatingWriter(dir string, opts ...RotatingOption) (*RotatingWriter, error) {
	w := &RotatingWriter{
		dir:     dir,
		prefix:  "log",
		maxSize: defaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(w)
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory %s: %w", dir, err)
		}
		if err := w.openFresh(); err != nil {
			return nil, err
		}
		return w, nil
	}

	path, found, err := w.findResumable()
	if err != nil {
		return nil, err
	}
	if found {
		if err := w.openAppend(path); err != nil {
			return nil, err
		}
		return w, nil
	}
	if err := w.openFresh(); err != nil {
		return nil, err
	}
	return w, nil
}

// findResumable scans the directory for the most recently modified
// under-threshold file with the configured prefix. Compressed leftovers are
// never resumed.
func (w *RotatingWriter) findResumable() (string, bool, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return "", false, fmt.Errorf("scanning log directory %s: %w", w.dir, err)
	}
	var (
		best      string
		bestMtime time.Time
		found     bool
	)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, w.prefix) || strings.HasSuffix(name, ".gz") {
			continue
		}
		info, err := e.Info()
		if err != nil || info.Size() >= w.maxSize {
			continue
		}
		if !found || info.ModTime().After(bestMtime) {
			best = filepath.Join(w.dir, name)
			bestMtime = info.ModTime()
			found = true
		}
	}
	return best, found, nil
}

func (w *RotatingWriter) openFresh() error {
	base := fmt.Sprintf("%s_%s", w.prefix, time.Now().Format(rotateTimestampLayout))
	path := filepath.Join(w.dir, base+".log")
	// Rotating twice within one second must not reopen the file just
	// rotated out, nor shadow its compressed form.
	for i := 1; ; i++ {
		_, err := os.Stat(path)
		_, errGz := os.Stat(path + ".gz")
		if os.IsNotExist(err) && os.IsNotExist(errGz) {
			break
		}
		path = filepath.Join(w.dir, fmt.Sprintf("%s_%d.log", base, i))
	}
	return w.openAppend(path)
}

func (w *RotatingWriter) openAppend(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", path, err)
	}
	w.f = f
	w.path = path
	return nil
}

// Write implements [Writer]. The current file is rotated first if its
// on-disk size exceeds the threshold.
func (w *RotatingWriter) Write(_ Record, line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	info, err := w.f.Stat()
	if err != nil {
		return err
	}
	if info.Size() > w.maxSize {
		if err := w.rotate(); err != nil {
			return err
		}
	}
	_, err = w.f.WriteString(line + "\n")
	return err
}

// rotate closes the current file, optionally compresses it, and opens a
// fresh one. Called with the lock held.
func (w *RotatingWriter) rotate() error {
	if err := w.f.Close(); err != nil {
		return err
	}
	if w.compress {
		if err := compressFile(w.path); err != nil {
			// Keep logging into a fresh file even if compression of the old
			// one failed; the uncompressed file simply stays behind.
			fmt.Fprintf(os.Stderr, "slf4d: failed to compress rotated log %s: %v\n", w.path, err)
		}
	}
	return w.openFresh()
}

// compressFile gzips path to path+".gz" and removes the original.
func compressFile(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	gz := gzip.NewWriter(dst)
	if _, err := io.Copy(gz, src); err != nil {
		dst.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}
	return os.Remove(path)
}

// Path returns the file currently being appended to.
func (w *RotatingWriter) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Close closes the current file. Further writes fail.
func (w *RotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.f.Close()
}
