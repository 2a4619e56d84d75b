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

import "sync"

// CacheHandler appends every record it handles to an in-memory ordered
// sequence, for later inspection. It is intended for tests, not production
// sinks: growth is unbounded, and trimming via [CacheHandler.Reset] is the
// caller's responsibility.
//
// Thread-safety: all methods are mutually exclusive under one per-instance
// lock.
type CacheHandler struct {
	mu      sync.Mutex
	records []Record
}

// NewCacheHandler creates an empty cache handler.
func NewCacheHandler() *CacheHandler {
	return &CacheHandler{
		records: make([]Record, 0, 32),
	}
}

// Handle appends the record to the cache.
func (h *CacheHandler) Handle(r Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
}

// Records returns a snapshot copy of all cached records, in handling order.
// The snapshot is independent of later Handle or Reset calls.
func (h *CacheHandler) Records() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Reset discards all cached records.
func (h *CacheHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = h.records[:0]
}

// Count returns the number of cached records.
func (h *CacheHandler) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

// CountAt returns the number of cached records at exactly the given level
// (compared by value, not at-or-above).
func (h *CacheHandler) CountAt(level Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level.Value == level.Value {
			n++
		}
	}
	return n
}

// Empty reports whether no records are cached.
func (h *CacheHandler) Empty() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records) == 0
}
