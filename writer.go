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
	"sync"
)

// Writer delivers one serialized record to an output resource. Write is
// called once per record with the record itself (so writers may route by
// level) and its serialized form. Implementations must be safe for
// concurrent invocation.
type Writer interface {
	Write(r Record, line string) error
}

// StdoutWriter writes ERROR-and-above records to the error stream and
// everything else to the standard output stream, one line per record.
//
// Each stream is written under the writer's lock, but no coordination exists
// between the two streams: interleaving of stdout and stderr output is
// possible and accepted.
type StdoutWriter struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

// NewStdoutWriter creates a writer over the process's stdout and stderr.
func NewStdoutWriter() *StdoutWriter {
	return &StdoutWriter{out: os.Stdout, err: os.Stderr}
}

// WithStreams substitutes the output streams, for tests, and returns the
// receiver for chaining.
func (w *StdoutWriter) WithStreams(out, err io.Writer) *StdoutWriter {
	if out == nil || err == nil {
		panic("slf4d: nil stream passed to StdoutWriter")
	}
	w.out = out
	w.err = err
	return w
}

// Write implements [Writer].
func (w *StdoutWriter) Write(r Record, line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	target := w.out
	if r.Level.AtLeast(LevelError) {
		target = w.err
	}
	_, err := io.WriteString(target, line+"\n")
	return err
}

// FileWriter appends every record to one open file, one line per record.
// os.File writes are unbuffered, so each line reaches the operating system
// before Write returns.
type FileWriter struct {
	mu sync.Mutex
	f  *os.File
}

// NewFileWriter opens (or creates) the file at path for appending.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileWriter{f: f}, nil
}

// Write implements [Writer].
func (w *FileWriter) Write(_ Record, line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := w.f.WriteString(line + "\n")
	return err
}

// Close closes the underlying file. Further writes fail.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.f.Close()
}
