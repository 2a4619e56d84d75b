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

import "errors"

// Sentinel errors for [errors.Is] checks.
//
// Only construction-time and configuration errors are ever returned to
// callers; record-handling failures on the hot path are reported to the
// diagnostic stream and never propagate (see [SerializeHandler]).
var (
	// ErrUnknownLevel indicates a level name that [ParseLevel] does not
	// recognize, including empty input.
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrInvalidPattern indicates a module-level override pattern that does
	// not compile as a regular expression.
	ErrInvalidPattern = errors.New("invalid module pattern")

	// ErrInvalidConfig indicates a declarative provider configuration that
	// failed structural validation.
	ErrInvalidConfig = errors.New("invalid logging configuration")
)
