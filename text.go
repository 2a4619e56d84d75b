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
	"path/filepath"
	"sort"
	"strings"
)

// ANSI escape sequences for console output.
const (
	ansiReset     = "\033[0m"
	ansiRed       = "\033[31m"
	ansiYellow    = "\033[33m"
	ansiBlue      = "\033[34m"
	ansiCyan      = "\033[36m"
	ansiWhite     = "\033[37m"
	ansiUnderline = "\033[4m"
)

// timestampLayout renders a fixed 23-character, zero-padded local timestamp
// with millisecond resolution and no timezone component.
const timestampLayout = "2006-01-02T15:04:05.000"

// defaultNameLimit is the column width reserved for the logger name in
// console output.
const defaultNameLimit = 24

// TextSerializer produces the human-readable console layout: a
// right-justified (and compacted, when too long) logger name, a
// left-justified level, a fixed-width timestamp, and the message, optionally
// followed by an exception block and an attributes block aligned past the
// fixed-width prefix.
//
// Stateless after construction; safe for concurrent use.
type TextSerializer struct {
	nameLimit int
	color     bool
}

// NewTextSerializer creates a console text serializer. ANSI coloring of the
// level is enabled with color.
func NewTextSerializer(color bool) *TextSerializer {
	return &TextSerializer{
		nameLimit: defaultNameLimit,
		color:     color,
	}
}

// WithNameLimit overrides the logger-name column width and returns the
// receiver for chaining. Limits below 4 are clamped to 4 so the "..."
// fallback of the compaction algorithm always has room for at least one
// name character.
func (s *TextSerializer) WithNameLimit(limit int) *TextSerializer {
	if limit < 4 {
		limit = 4
	}
	s.nameLimit = limit
	return s
}

// Serialize implements [Serializer].
func (s *TextSerializer) Serialize(r Record) (string, error) {
	var b strings.Builder

	name := compactName(r.LoggerName, s.nameLimit)
	fmt.Fprintf(&b, "%*s ", s.nameLimit, name)

	level := fmt.Sprintf("%-5s", r.Level.Name)
	if s.color {
		b.WriteString(levelColor(r.Level))
		b.WriteString(level)
		b.WriteString(ansiReset)
	} else {
		b.WriteString(level)
	}
	b.WriteByte(' ')

	b.WriteString(r.Timestamp.Format(timestampLayout))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	// Continuation lines align past the name/level/timestamp prefix.
	indent := strings.Repeat(" ", s.nameLimit+1+5+1+23+1)

	if e := r.Exception; e != nil {
		fmt.Fprintf(&b, "\n%s%s: %s (%s:%d)",
			indent, e.ExceptionClassName, e.Message,
			filepath.Base(e.SourceFileName), e.SourceLineNumber)
		if e.StackTrace != "" {
			for _, line := range strings.Split(strings.TrimRight(e.StackTrace, "\n"), "\n") {
				b.WriteString("\n" + indent + line)
			}
		}
	}

	if len(r.Attributes) > 0 {
		// Attribute order is not significant in the record; sort for a
		// stable rendering.
		keys := make([]string, 0, len(r.Attributes))
		for k := range r.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "\n%s%s=%s", indent, k, r.Attributes[k])
		}
	}

	return b.String(), nil
}

// levelColor returns the ANSI prefix for a level: ERROR red underlined,
// WARN yellow, INFO blue, DEBUG cyan, TRACE white, anything else blue.
func levelColor(l Level) string {
	switch l.Value {
	case LevelError.Value:
		return ansiRed + ansiUnderline
	case LevelWarn.Value:
		return ansiYellow
	case LevelInfo.Value:
		return ansiBlue
	case LevelDebug.Value:
		return ansiCyan
	case LevelTrace.Value:
		return ansiWhite
	default:
		return ansiBlue
	}
}

// compactName squeezes a dot-delimited logger name into limit characters.
//
// Names within the limit pass through unchanged. Names with at least three
// segments are first tried as "first.m.m.last" with each middle segment
// abbreviated to its first character; if still too long, the first segment
// is abbreviated to one character as well. When neither form fits, or the
// name has fewer than three segments, the result is "..." plus the last
// limit-3 characters of the original name.
func compactName(name string, limit int) string {
	if len(name) <= limit {
		return name
	}
	parts := strings.Split(name, ".")
	if len(parts) >= 3 {
		first := parts[0]
		last := parts[len(parts)-1]

		var mid strings.Builder
		for _, m := range parts[1 : len(parts)-1] {
			if m != "" {
				mid.WriteByte(m[0])
			}
			mid.WriteByte('.')
		}

		if c := first + "." + mid.String() + last; len(c) <= limit {
			return c
		}
		if first != "" {
			if c := first[:1] + "." + mid.String() + last; len(c) <= limit {
				return c
			}
		}
	}
	keep := limit - 3
	return "..." + name[len(name)-keep:]
}
