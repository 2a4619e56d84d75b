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
)

// Serializer converts a record to its textual representation. Serialize must
// be deterministic given the record and the serializer's own configuration,
// and safe for concurrent calls (stateless or internally synchronized).
type Serializer interface {
	Serialize(r Record) (string, error)
}

// SerializeHandler is the terminal handler of a chain: it serializes each
// record once and delivers the result to one or more [Writer] sinks.
//
// Failure semantics: a serialization error drops the record entirely (no
// partial output); a delivery error on one writer does not prevent delivery
// to the remaining writers. Either way the failure is reported to the
// diagnostic stream and never propagates to the logging call site.
type SerializeHandler struct {
	serializer Serializer
	writers    []Writer
	diag       io.Writer
}

// NewSerializeHandler creates a serializing handler. The serializer and at
// least one writer are required; nil values panic at construction.
func NewSerializeHandler(s Serializer, writers ...Writer) *SerializeHandler {
	if s == nil {
		panic("slf4d: SerializeHandler requires a serializer")
	}
	if len(writers) == 0 {
		panic("slf4d: SerializeHandler requires at least one writer")
	}
	for _, w := range writers {
		if w == nil {
			panic("slf4d: nil writer passed to SerializeHandler")
		}
	}
	return &SerializeHandler{
		serializer: s,
		writers:    writers,
		diag:       os.Stderr,
	}
}

// WithDiagnostics redirects failure reports to w instead of stderr and
// returns the receiver for chaining. Must only be called before the handler
// is in concurrent use.
func (h *SerializeHandler) WithDiagnostics(w io.Writer) *SerializeHandler {
	if w == nil {
		panic("slf4d: nil diagnostic writer")
	}
	h.diag = w
	return h
}

// Handle serializes the record and writes it to every sink.
func (h *SerializeHandler) Handle(r Record) {
	// A log call must never take the application down, even against a
	// misbehaving serializer or writer.
	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintf(h.diag, "slf4d: panic while handling log record from %q: %v\n", r.LoggerName, p)
		}
	}()

	line, err := h.serializer.Serialize(r)
	if err != nil {
		fmt.Fprintf(h.diag, "slf4d: failed to serialize log record from %q: %v\n", r.LoggerName, err)
		return
	}
	for _, w := range h.writers {
		if err := w.Write(r, line); err != nil {
			fmt.Fprintf(h.diag, "slf4d: failed to write log record from %q: %v\n", r.LoggerName, err)
		}
	}
}
