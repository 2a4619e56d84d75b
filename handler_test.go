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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRecord builds a minimal record for handler tests.
func testRecord(level Level, msg string) Record {
	return Record{
		Level:      level,
		Message:    msg,
		LoggerName: "test",
		Timestamp:  time.Now(),
	}
}

func TestDiscardHandler(t *testing.T) {
	t.Parallel()

	// Must simply not blow up.
	h := NewDiscardHandler()
	h.Handle(testRecord(LevelError, "into the void"))
}

func TestMultiHandler_OrderedFanOut(t *testing.T) {
	t.Parallel()

	a := NewCacheHandler()
	b := NewCacheHandler()
	h := NewMultiHandler(a).Add(b)

	h.Handle(testRecord(LevelInfo, "one"))
	h.Handle(testRecord(LevelWarn, "two"))

	for _, cache := range []*CacheHandler{a, b} {
		records := cache.Records()
		require.Len(t, records, 2)
		assert.Equal(t, "one", records[0].Message)
		assert.Equal(t, "two", records[1].Message)
	}
}

func TestMultiHandler_Empty(t *testing.T) {
	t.Parallel()

	NewMultiHandler().Handle(testRecord(LevelInfo, "nowhere"))
}

func TestMultiHandler_NilAddPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewMultiHandler().Add(nil) })
}

func TestFilterHandler(t *testing.T) {
	t.Parallel()

	cache := NewCacheHandler()
	h := NewFilterHandler(cache, func(r Record) bool {
		return r.LoggerName != "noisy"
	})

	h.Handle(testRecord(LevelInfo, "kept"))
	noisy := testRecord(LevelInfo, "dropped")
	noisy.LoggerName = "noisy"
	h.Handle(noisy)

	records := cache.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0].Message)
}

func TestFilterHandler_NilArgsPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewFilterHandler(nil, func(Record) bool { return true }) })
	assert.Panics(t, func() { NewFilterHandler(NewCacheHandler(), nil) })
}
