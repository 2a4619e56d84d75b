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

	"github.com/stretchr/testify/require"
)

// ResetForTesting clears the process-wide provider state: the next
// [GetProvider] call lazily installs the built-in default again, and the
// next [Configure] call proceeds without a reconfiguration warning.
//
// Test-only. Tests that touch global state should serialize on it and reset
// in cleanup:
//
//	slf4d.ResetForTesting()
//	t.Cleanup(slf4d.ResetForTesting)
func ResetForTesting() {
	configMu.Lock()
	defer configMu.Unlock()
	globalProvider.Store(nil)
	configured.Store(false)
}

// TestHelper captures log output in memory for assertions. It holds a
// [CacheHandler]-backed provider-shaped setup without touching the global
// registry, so parallel tests don't interfere.
type TestHelper struct {
	Cache   *CacheHandler
	Factory *Factory
}

// NewTestHelper creates a helper whose loggers admit everything at or above
// TRACE and record into an in-memory cache.
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()
	cache := NewCacheHandler()
	return &TestHelper{
		Cache:   cache,
		Factory: NewFactory(cache, LevelTrace),
	}
}

// Logger returns a named logger recording into the helper's cache.
func (th *TestHelper) Logger(name string) Logger {
	return th.Factory.GetLogger(name)
}

// Records returns a snapshot of everything captured so far.
func (th *TestHelper) Records() []Record {
	return th.Cache.Records()
}

// ContainsMessage reports whether any captured record carries the message.
func (th *TestHelper) ContainsMessage(msg string) bool {
	for _, r := range th.Cache.Records() {
		if r.Message == msg {
			return true
		}
	}
	return false
}

// Reset clears the captured records.
func (th *TestHelper) Reset() {
	th.Cache.Reset()
}

// AssertLogged fails the test unless a record with the given level and
// message was captured, carrying every attribute in attrs.
func (th *TestHelper) AssertLogged(t *testing.T, level Level, msg string, attrs map[string]string) {
	t.Helper()

	for _, r := range th.Cache.Records() {
		if r.Level.Value != level.Value || r.Message != msg {
			continue
		}
		match := true
		for k, want := range attrs {
			if got, ok := r.Attributes[k]; !ok || got != want {
				match = false
				break
			}
		}
		if match {
			return
		}
	}
	require.Failf(t, "expected log record not found",
		"no %s record with message %q and attributes %v", level.Name, msg, attrs)
}
