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
	"time"
)

// Logger is a lightweight, copyable value binding a name and severity
// threshold to a shared [Handler]. Obtain one from a factory (or
// [GetLogger]) and keep it in a variable, or fetch it per call site; both
// are cheap. Many loggers may share one handler concurrently.
//
// A Logger is immutable after construction; [Logger.With] derives a new one.
type Logger struct {
	handler Handler
	level   Level
	name    string
	attrs   map[string]string
}

// NewLogger builds a logger directly, bypassing any factory. A nil handler
// is a programmer error and panics.
func NewLogger(handler Handler, level Level, name string) Logger {
	if handler == nil {
		panic("slf4d: Logger requires a handler")
	}
	return Logger{handler: handler, level: level, name: name}
}

// Name returns the logger's name.
func (l Logger) Name() string { return l.name }

// Level returns the logger's severity threshold.
func (l Logger) Level() Level { return l.level }

// Enabled reports whether a record at the given level would be admitted.
// The boundary is inclusive: a level equal to the threshold is admitted.
func (l Logger) Enabled(level Level) bool {
	return level.Value >= l.level.Value
}

// With derives a logger that stamps the given attributes onto every record
// it emits, merged over any attributes already carried.
func (l Logger) With(attrs map[string]string) Logger {
	if len(attrs) == 0 {
		return l
	}
	merged := make(map[string]string, len(l.attrs)+len(attrs))
	for k, v := range l.attrs {
		merged[k] = v
	}
	for k, v := range attrs {
		merged[k] = v
	}
	l.attrs = merged
	return l
}

// log builds and dispatches a record. skip locates the application call site
// for source capture: the number of frames between captureSource and the
// caller of the exported method.
func (l Logger) log(level Level, msg string, err error, skip int) {
	if l.handler == nil || !l.Enabled(level) {
		return
	}
	r := Record{
		Level:      level,
		Message:    msg,
		LoggerName: l.name,
		Timestamp:  time.Now(),
		Source:     captureSource(skip),
		Attributes: l.attrs,
	}
	if err != nil {
		r.Exception = newException(err, skip, level.AtLeast(LevelError))
	}
	l.handler.Handle(r)
}

// Log emits msg at an arbitrary level.
func (l Logger) Log(level Level, msg string) {
	l.log(level, msg, nil, 3)
}

// Logf emits a formatted message at an arbitrary level. Formatting is
// skipped entirely when the level is not admitted.
func (l Logger) Logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	l.log(level, fmt.Sprintf(format, args...), nil, 3)
}

// LogE emits msg at an arbitrary level with an error snapshot attached. A
// stack trace is captured for ERROR and above.
func (l Logger) LogE(level Level, err error, msg string) {
	l.log(level, msg, err, 3)
}

// Trace emits msg at TRACE.
func (l Logger) Trace(msg string) { l.log(LevelTrace, msg, nil, 3) }

// Tracef emits a formatted message at TRACE; formatting is skipped when
// TRACE is not admitted.
func (l Logger) Tracef(format string, args ...any) {
	if !l.Enabled(LevelTrace) {
		return
	}
	l.log(LevelTrace, fmt.Sprintf(format, args...), nil, 3)
}

// TraceE emits msg at TRACE with an error snapshot attached.
func (l Logger) TraceE(err error, msg string) { l.log(LevelTrace, msg, err, 3) }

// Debug emits msg at DEBUG.
func (l Logger) Debug(msg string) { l.log(LevelDebug, msg, nil, 3) }

// Debugf emits a formatted message at DEBUG; formatting is skipped when
// DEBUG is not admitted.
func (l Logger) Debugf(format string, args ...any) {
	if !l.Enabled(LevelDebug) {
		return
	}
	l.log(LevelDebug, fmt.Sprintf(format, args...), nil, 3)
}

// DebugE emits msg at DEBUG with an error snapshot attached.
func (l Logger) DebugE(err error, msg string) { l.log(LevelDebug, msg, err, 3) }

// Info emits msg at INFO.
func (l Logger) Info(msg string) { l.log(LevelInfo, msg, nil, 3) }

// Infof emits a formatted message at INFO; formatting is skipped when INFO
// is not admitted.
func (l Logger) Infof(format string, args ...any) {
	if !l.Enabled(LevelInfo) {
		return
	}
	l.log(LevelInfo, fmt.Sprintf(format, args...), nil, 3)
}

// InfoE emits msg at INFO with an error snapshot attached.
func (l Logger) InfoE(err error, msg string) { l.log(LevelInfo, msg, err, 3) }

// Warn emits msg at WARN.
func (l Logger) Warn(msg string) { l.log(LevelWarn, msg, nil, 3) }

// Warnf emits a formatted message at WARN; formatting is skipped when WARN
// is not admitted.
func (l Logger) Warnf(format string, args ...any) {
	if !l.Enabled(LevelWarn) {
		return
	}
	l.log(LevelWarn, fmt.Sprintf(format, args...), nil, 3)
}

// WarnE emits msg at WARN with an error snapshot attached.
func (l Logger) WarnE(err error, msg string) { l.log(LevelWarn, msg, err, 3) }

// Error emits msg at ERROR.
func (l Logger) Error(msg string) { l.log(LevelError, msg, nil, 3) }

// Errorf emits a formatted message at ERROR; formatting is skipped when
// ERROR is not admitted.
func (l Logger) Errorf(format string, args ...any) {
	if !l.Enabled(LevelError) {
		return
	}
	l.log(LevelError, fmt.Sprintf(format, args...), nil, 3)
}

// ErrorE emits msg at ERROR with an error snapshot attached, including a
// stack trace.
func (l Logger) ErrorE(err error, msg string) { l.log(LevelError, msg, err, 3) }
