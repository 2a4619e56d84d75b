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

// Handler processes admitted log records. It is the unit of handler-chain
// composition: implementations discard, capture, fan out, filter, route, or
// serialize and write records.
//
// Handle must never panic or otherwise disrupt the caller; implementations
// with internal failure modes recover and report to a side channel.
// Handlers are shared across goroutines, so any internal mutable state must
// be synchronized by the handler itself.
type Handler interface {
	Handle(r Record)
}

// DiscardHandler drops every record. It backs the no-op provider and
// suppressed loggers.
type DiscardHandler struct{}

// NewDiscardHandler returns a handler that drops everything.
func NewDiscardHandler() DiscardHandler {
	return DiscardHandler{}
}

// Handle implements [Handler] by doing nothing.
func (DiscardHandler) Handle(Record) {}
