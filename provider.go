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
	"sync/atomic"
)

// Provider is the pluggable unit supplying logging for an entire process: it
// owns one [LoggerFactory] (and, transitively, one root handler). A provider
// is constructed once at startup and lives until process exit.
type Provider interface {
	Factory() LoggerFactory
}

// DefaultProvider is a [Provider] over a [Factory].
type DefaultProvider struct {
	factory *Factory
}

// NewProvider creates a provider whose factory hands out loggers bound to
// handler with rootLevel as the default threshold.
func NewProvider(handler Handler, rootLevel Level) *DefaultProvider {
	return &DefaultProvider{factory: NewFactory(handler, rootLevel)}
}

// NewNoopProvider creates a provider that discards everything: its loggers
// carry the sentinel [LevelOff] threshold over a discarding handler.
func NewNoopProvider() *DefaultProvider {
	return NewProvider(NewDiscardHandler(), LevelOff)
}

// newDefaultProvider is the built-in fallback installed on first use when
// the application never called [Configure]: colored console text at INFO.
func newDefaultProvider() *DefaultProvider {
	handler := NewSerializeHandler(NewTextSerializer(true), NewStdoutWriter())
	return NewProvider(handler, LevelInfo)
}

// Factory implements [Provider].
func (p *DefaultProvider) Factory() LoggerFactory {
	return p.factory
}

// DefaultFactory returns the provider's concrete [*Factory], for installing
// module-level overrides at startup.
func (p *DefaultProvider) DefaultFactory() *Factory {
	return p.factory
}

// providerRef wraps the interface so it can live in an atomic.Pointer.
type providerRef struct {
	p Provider
}

// Process-wide provider state.
//
// Reads are lock-free pointer loads. configMu serializes Configure against
// itself and against the test-only reset, not against readers.
var (
	globalProvider atomic.Pointer[providerRef]
	configured     atomic.Bool
	configMu       sync.Mutex
)

// Configure installs the process-wide provider. Intended to be called
// exactly once, early in startup, by the top-level application — never by
// library code. A nil provider installs a no-op provider that discards all
// output.
//
// Calling Configure a second time is unsupported but not fatal: a WARN is
// emitted through the provider being replaced, and the new provider takes
// effect anyway. Lazy installation of the built-in default via [GetProvider]
// does not count as configuration and triggers no warning.
func Configure(p Provider) {
	configMu.Lock()
	defer configMu.Unlock()

	if p == nil {
		p = NewNoopProvider()
	}
	if configured.Load() {
		if ref := globalProvider.Load(); ref != nil {
			log := ref.p.Factory().GetLogger("slf4d")
			log.Warn("logging provider is being reconfigured; configuring more than once is unsupported and may cause undefined behavior")
		}
	}
	globalProvider.Store(&providerRef{p: p})
	configured.Store(true)
}

// GetProvider returns the process-wide provider, lazily installing the
// built-in default (console text, INFO root level) if the application never
// configured one. The lazy path does not mark the process as explicitly
// configured, so a later [Configure] call proceeds without a warning.
//
// First use from multiple goroutines is resolved with a compare-and-swap:
// racing callers may each construct a default provider, but exactly one is
// installed and returned to everyone.
func GetProvider() Provider {
	if ref := globalProvider.Load(); ref != nil {
		return ref.p
	}
	fresh := &providerRef{p: newDefaultProvider()}
	if globalProvider.CompareAndSwap(nil, fresh) {
		return fresh.p
	}
	return globalProvider.Load().p
}

// GetLogger resolves a named logger from the process-wide provider.
func GetLogger(name string) Logger {
	return GetProvider().Factory().GetLogger(name)
}
