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
	"runtime"
)

// Package-level log functions for call sites that don't hold a logger. Each
// resolves a logger named after the caller's package from the process-wide
// provider and delegates; they cost one extra frame lookup per call, so hot
// paths should cache a [Logger] instead.

// callerLogger resolves a logger named after the package of the caller skip
// frames above callerLogger.
func callerLogger(skip int) Logger {
	name := "unknown"
	if pc, _, _, ok := runtime.Caller(skip); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			if pkg, _ := splitFuncName(fn.Name()); pkg != "" {
				name = pkg
			}
		}
	}
	return GetLogger(name)
}

// Trace emits msg at TRACE under the caller's package name.
func Trace(msg string) { l := callerLogger(2); l.log(LevelTrace, msg, nil, 3) }

// Tracef emits a formatted message at TRACE under the caller's package name.
func Tracef(format string, args ...any) {
	l := callerLogger(2)
	if !l.Enabled(LevelTrace) {
		return
	}
	l.log(LevelTrace, fmt.Sprintf(format, args...), nil, 3)
}

// TraceE emits msg at TRACE with an error snapshot attached.
func TraceE(err error, msg string) { l := callerLogger(2); l.log(LevelTrace, msg, err, 3) }

// Debug emits msg at DEBUG under the caller's package name.
func Debug(msg string) { l := callerLogger(2); l.log(LevelDebug, msg, nil, 3) }

// Debugf emits a formatted message at DEBUG under the caller's package name.
func Debugf(format string, args ...any) {
	l := callerLogger(2)
	if !l.Enabled(LevelDebug) {
		return
	}
	l.log(LevelDebug, fmt.Sprintf(format, args...), nil, 3)
}

// DebugE emits msg at DEBUG with an error snapshot attached.
func DebugE(err error, msg string) { l := callerLogger(2); l.log(LevelDebug, msg, err, 3) }

// Info emits msg at INFO under the caller's package name.
func Info(msg string) { l := callerLogger(2); l.log(LevelInfo, msg, nil, 3) }

// Infof emits a formatted message at INFO under the caller's package name.
func Infof(format string, args ...any) {
	l := callerLogger(2)
	if !l.Enabled(LevelInfo) {
		return
	}
	l.log(LevelInfo, fmt.Sprintf(format, args...), nil, 3)
}

// InfoE emits msg at INFO with an error snapshot attached.
func InfoE(err error, msg string) { l := callerLogger(2); l.log(LevelInfo, msg, err, 3) }

// Warn emits msg at WARN under the caller's package name.
func Warn(msg string) { l := callerLogger(2); l.log(LevelWarn, msg, nil, 3) }

// Warnf emits a formatted message at WARN under the caller's package name.
func Warnf(format string, args ...any) {
	l := callerLogger(2)
	if !l.Enabled(LevelWarn) {
		return
	}
	l.log(LevelWarn, fmt.Sprintf(format, args...), nil, 3)
}

// WarnE emits msg at WARN with an error snapshot attached.
func WarnE(err error, msg string) { l := callerLogger(2); l.log(LevelWarn, msg, err, 3) }

// Error emits msg at ERROR under the caller's package name.
func Error(msg string) { l := callerLogger(2); l.log(LevelError, msg, nil, 3) }

// Errorf emits a formatted message at ERROR under the caller's package name.
func Errorf(format string, args ...any) {
	l := callerLogger(2)
	if !l.Enabled(LevelError) {
		return
	}
	l.log(LevelError, fmt.Sprintf(format, args...), nil, 3)
}

// ErrorE emits msg at ERROR with an error snapshot attached, including a
// stack trace.
func ErrorE(err error, msg string) { l := callerLogger(2); l.log(LevelError, msg, err, 3) }
