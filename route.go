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

import "math"

// LevelRange is an inclusive band of severity values used by [RouteHandler]
// to decide which sub-handlers receive a record.
type LevelRange struct {
	min, max int
}

// Exactly matches only the given level's value.
func Exactly(l Level) LevelRange {
	return LevelRange{min: l.Value, max: l.Value}
}

// Between matches levels within [a, b] inclusive. Reversed bounds are
// normalized by swapping.
func Between(a, b Level) LevelRange {
	if a.Value > b.Value {
		a, b = b, a
	}
	return LevelRange{min: a.Value, max: b.Value}
}

// AtLeast matches the given level and everything more severe.
func AtLeast(l Level) LevelRange {
	return LevelRange{min: l.Value, max: math.MaxInt}
}

// AtMost matches the given level and everything less severe.
func AtMost(l Level) LevelRange {
	return LevelRange{min: math.MinInt, max: l.Value}
}

// AnyLevel matches unconditionally.
func AnyLevel() LevelRange {
	return LevelRange{min: math.MinInt, max: math.MaxInt}
}

// Contains reports whether the level's value falls inside the range.
func (lr LevelRange) Contains(l Level) bool {
	return l.Value >= lr.min && l.Value <= lr.max
}

type routeMapping struct {
	within LevelRange
	next   Handler
}

// RouteHandler dispatches records by severity band. Every registered mapping
// is evaluated in registration order and the record is forwarded to all
// whose range contains its level — not just the first match — so one record
// may be delivered to zero, one, or many sub-handlers.
//
// Like [MultiHandler], the mapping list is mutation-free after startup and
// unsynchronized on the hot path.
type RouteHandler struct {
	mappings []routeMapping
}

// NewRouteHandler creates a routing handler with no mappings. A record that
// matches no mapping is delivered nowhere.
func NewRouteHandler() *RouteHandler {
	return &RouteHandler{}
}

// Route registers a (range, handler) mapping and returns the receiver for
// chaining. Must only be called before the handler is in concurrent use.
func (h *RouteHandler) Route(within LevelRange, next Handler) *RouteHandler {
	if next == nil {
		panic("slf4d: nil handler routed in RouteHandler")
	}
	h.mappings = append(h.mappings, routeMapping{within: within, next: next})
	return h
}

// Handle forwards the record to every mapping whose range contains its level.
func (h *RouteHandler) Handle(r Record) {
	for _, m := range h.mappings {
		if m.within.Contains(r.Level) {
			m.next.Handle(r)
		}
	}
}
