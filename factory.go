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
	"regexp"
	"sync"
)

// LoggerFactory resolves a logger name to a configured [Logger], applying
// whatever level policy the provider installed.
type LoggerFactory interface {
	GetLogger(name string) Logger
}

type levelOverride struct {
	pattern *regexp.Regexp
	level   Level
}

// Factory is the default [LoggerFactory]: a root severity threshold plus an
// ordered list of regex-pattern overrides.
//
// Thread-safety: override and root-level mutation is rare after startup
// while GetLogger runs on every logger resolution, so a reader/writer lock
// lets concurrent GetLogger calls proceed in parallel and serializes them
// only against configuration changes.
type Factory struct {
	mu        sync.RWMutex
	handler   Handler
	rootLevel Level
	overrides []levelOverride
}

// NewFactory creates a factory handing out loggers bound to the given
// handler, with rootLevel as the default threshold. A nil handler is a
// programmer error and panics.
func NewFactory(handler Handler, rootLevel Level) *Factory {
	if handler == nil {
		panic("slf4d: Factory requires a handler")
	}
	return &Factory{
		handler:   handler,
		rootLevel: rootLevel,
	}
}

// SetRootLevel changes the default threshold applied to names that match no
// override.
func (f *Factory) SetRootLevel(level Level) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rootLevel = level
}

// SetModuleLevel registers a level override for logger names matching the
// given regular expression. The pattern matches anywhere in the name unless
// it anchors itself. Overrides are evaluated in registration order with the
// last match winning, so register broad patterns before narrow ones.
func (f *Factory) SetModuleLevel(pattern string, level Level) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overrides = append(f.overrides, levelOverride{pattern: re, level: level})
	return nil
}

// SetModuleLevelPrefix registers a level override for logger names starting
// with the given literal prefix; dots in the prefix are escaped, not
// wildcards.
func (f *Factory) SetModuleLevelPrefix(prefix string, level Level) {
	re := regexp.MustCompile("^" + regexp.QuoteMeta(prefix))
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overrides = append(f.overrides, levelOverride{pattern: re, level: level})
}

// GetLogger resolves name to a [Logger] bound to the factory's handler. The
// threshold starts at the root level; every matching override, scanned in
// registration order, replaces it, so the last registered match wins.
func (f *Factory) GetLogger(name string) Logger {
	f.mu.RLock()
	defer f.mu.RUnlock()
	level := f.rootLevel
	for _, o := range f.overrides {
		if o.pattern.MatchString(name) {
			level = o.level
		}
	}
	return Logger{
		handler: f.handler,
		level:   level,
		name:    name,
	}
}
