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

// MultiHandler fans each record out to an ordered list of sub-handlers,
// invoking each synchronously on the calling goroutine, in list order.
//
// The handler list is append-only via [MultiHandler.Add] and is not
// synchronized on the hot path: populate it during startup, before the
// multiplexer is used concurrently.
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a multiplexing handler over the given sub-handlers.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Add appends a sub-handler and returns the receiver for chaining. Must only
// be called before the handler is in concurrent use.
func (h *MultiHandler) Add(next Handler) *MultiHandler {
	if next == nil {
		panic("slf4d: nil handler added to MultiHandler")
	}
	h.handlers = append(h.handlers, next)
	return h
}

// Handle forwards the record to every sub-handler in order.
func (h *MultiHandler) Handle(r Record) {
	for _, next := range h.handlers {
		next.Handle(r)
	}
}
