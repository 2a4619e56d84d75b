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
	"math"
	"strings"
)

// Level is a log severity: an integer value paired with a display name.
// Higher values are more severe. Levels compare by Value only; Name is
// display-only, so custom levels are free to reuse or invent names.
type Level struct {
	Value int
	Name  string
}

// Standard levels, in ascending severity.
var (
	LevelTrace = Level{Value: 10, Name: "TRACE"}
	LevelDebug = Level{Value: 20, Name: "DEBUG"}
	LevelInfo  = Level{Value: 30, Name: "INFO"}
	LevelWarn  = Level{Value: 40, Name: "WARN"}
	LevelError = Level{Value: 50, Name: "ERROR"}

	// LevelOff is a sentinel maximal level. A logger whose threshold is
	// LevelOff admits nothing emitted at the standard levels; it is used by
	// the no-op provider to suppress all output.
	LevelOff = Level{Value: math.MaxInt32, Name: "OFF"}
)

// String returns the level's display name.
func (l Level) String() string {
	return l.Name
}

// AtLeast reports whether l is at least as severe as other.
func (l Level) AtLeast(other Level) bool {
	return l.Value >= other.Value
}

// ParseLevel converts a free-text level name to one of the standard levels.
// Matching is case-insensitive and ignores surrounding whitespace. Empty or
// unrecognized input yields an error wrapping [ErrUnknownLevel].
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "OFF":
		return LevelOff, nil
	case "":
		return Level{}, fmt.Errorf("%w: empty level name", ErrUnknownLevel)
	default:
		return Level{}, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
