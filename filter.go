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

// Predicate decides whether a [FilterHandler] forwards a record. It must be
// pure and safe for concurrent calls.
type Predicate func(r Record) bool

// FilterHandler forwards only records for which the predicate returns true.
type FilterHandler struct {
	next Handler
	keep Predicate
}

// NewFilterHandler creates a filtering handler. Both arguments are required;
// nil values are a programmer error and panic at construction.
func NewFilterHandler(next Handler, keep Predicate) *FilterHandler {
	if next == nil {
		panic("slf4d: FilterHandler requires a sub-handler")
	}
	if keep == nil {
		panic("slf4d: FilterHandler requires a predicate")
	}
	return &FilterHandler{next: next, keep: keep}
}

// Handle forwards the record iff the predicate admits it.
func (h *FilterHandler) Handle(r Record) {
	if h.keep(r) {
		h.next.Handle(r)
	}
}
