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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The global provider tests share process-wide state and must not run in
// parallel with each other.

func resetGlobal(t *testing.T) {
	t.Helper()
	ResetForTesting()
	t.Cleanup(ResetForTesting)
}

func TestGetProvider_LazyDefault(t *testing.T) {
	resetGlobal(t)

	p := GetProvider()
	require.NotNil(t, p)
	// The built-in default resolves loggers at INFO.
	assert.Equal(t, LevelInfo, p.Factory().GetLogger("x").Level())
	// Repeated calls return the same instance.
	assert.Same(t, p, GetProvider())
}

func TestGetProvider_LazyDefaultRace(t *testing.T) {
	resetGlobal(t)

	const goroutines = 16
	providers := make([]Provider, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			providers[n] = GetProvider()
		}(i)
	}
	wg.Wait()

	// Racing first-use callers all observe the same installed provider.
	for _, p := range providers[1:] {
		assert.Same(t, providers[0], p)
	}
}

func TestConfigure_InstallsProvider(t *testing.T) {
	resetGlobal(t)

	cache := NewCacheHandler()
	p := NewProvider(cache, LevelDebug)
	Configure(p)

	assert.Same(t, Provider(p), GetProvider())

	GetLogger("myapp").Debug("through the global entry point")
	assert.Equal(t, 1, cache.Count())
}

func TestConfigure_NilInstallsNoop(t *testing.T) {
	resetGlobal(t)

	Configure(nil)

	log := GetLogger("anything")
	assert.Equal(t, LevelOff, log.Level())
	log.Error("swallowed") // must not panic
}

func TestConfigure_ReconfigureWarnsThroughPreviousProvider(t *testing.T) {
	resetGlobal(t)

	firstCache := NewCacheHandler()
	first := NewProvider(firstCache, LevelTrace)
	second := NewProvider(NewCacheHandler(), LevelTrace)

	Configure(first)
	require.True(t, firstCache.Empty(), "first configuration must not warn")

	Configure(second)

	// Exactly one WARN, emitted through the provider being replaced.
	records := firstCache.Records()
	require.Len(t, records, 1)
	assert.Equal(t, LevelWarn.Value, records[0].Level.Value)
	assert.Contains(t, records[0].Message, "reconfigured")

	// The replacement still takes effect.
	assert.Same(t, Provider(second), GetProvider())
}

func TestConfigure_AfterLazyDefaultDoesNotWarn(t *testing.T) {
	resetGlobal(t)

	// Lazy installation is not "configuration": the subsequent explicit
	// Configure proceeds silently.
	_ = GetProvider()

	cache := NewCacheHandler()
	p := NewProvider(cache, LevelTrace)
	Configure(p)

	assert.Same(t, Provider(p), GetProvider())

	// A second explicit Configure now does warn, through p.
	Configure(NewNoopProvider())
	assert.Equal(t, 1, cache.CountAt(LevelWarn))
}

func TestGlobalLogFunctions(t *testing.T) {
	resetGlobal(t)

	cache := NewCacheHandler()
	Configure(NewProvider(cache, LevelTrace))

	Info("global info")
	Warnf("global %s", "warnf")

	records := cache.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "global info", records[0].Message)
	assert.Equal(t, "global warnf", records[1].Message)
	// The logger name is derived from the caller's package.
	assert.Equal(t, "github.com/andrewlalis/slf4d", records[0].LoggerName)
	assert.Contains(t, records[0].Source.FunctionName, "TestGlobalLogFunctions")
}

func TestNewNoopProvider(t *testing.T) {
	t.Parallel()

	log := NewNoopProvider().Factory().GetLogger("x")
	assert.Equal(t, LevelOff, log.Level())
	assert.False(t, log.Enabled(LevelError))
}
