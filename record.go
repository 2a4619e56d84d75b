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
	"strings"
	"time"
)

// Record is one emitted log event with full context.
//
// A Record is built once per admitted log call and never mutated afterward;
// handlers on any goroutine may read it without synchronization. The
// Attributes map must not be modified after the record is handed to a
// handler.
type Record struct {
	Level      Level
	Message    string
	LoggerName string
	Timestamp  time.Time
	Exception  *ExceptionInfo
	Source     SourceContext
	Attributes map[string]string
}

// SourceContext identifies the call site that produced a record. It is
// captured at the log call, not at the handler boundary.
type SourceContext struct {
	ModuleName   string
	FunctionName string
	FileName     string
	LineNumber   int
}

// ExceptionInfo is an eager snapshot of an error attached to a record.
//
// The snapshot is taken at log time because the original error value may be
// transient; handlers must never need to reach back to it.
type ExceptionInfo struct {
	Message            string
	SourceFileName     string
	SourceLineNumber   int
	ExceptionClassName string
	StackTrace         string
}

// ExceptionFrom snapshots err for attachment to a [Record], capturing the
// caller's file and line. Returns nil for a nil error. No stack trace is
// recorded; the logger's error-variant methods capture one automatically.
func ExceptionFrom(err error) *ExceptionInfo {
	return newException(err, 2, false)
}

// newException builds an ExceptionInfo where skip frames above newException
// locate the owning call site.
func newException(err error, skip int, withStack bool) *ExceptionInfo {
	if err == nil {
		return nil
	}
	info := &ExceptionInfo{
		Message:            err.Error(),
		ExceptionClassName: fmt.Sprintf("%T", err),
	}
	if _, file, line, ok := runtime.Caller(skip); ok {
		info.SourceFileName = file
		info.SourceLineNumber = line
	}
	if withStack {
		info.StackTrace = captureStack(skip + 1)
	}
	return info
}

// captureStack renders the calling goroutine's stack, skipping the given
// number of frames above captureStack itself.
func captureStack(skip int) string {
	var buf strings.Builder
	pcs := make([]uintptr, 16)
	n := runtime.Callers(skip+1, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		fmt.Fprintf(&buf, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return buf.String()
}

// captureSource resolves the call site skip frames above captureSource.
// The zero SourceContext is returned when frame information is unavailable
// (stripped binaries).
func captureSource(skip int) SourceContext {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return SourceContext{}
	}
	src := SourceContext{
		FileName:   file,
		LineNumber: line,
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		src.ModuleName, src.FunctionName = splitFuncName(fn.Name())
	}
	return src
}

// splitFuncName splits a runtime function name such as
// "github.com/acme/app/orders.(*Service).Place" into its package path and
// bare function name.
func splitFuncName(full string) (pkg, fn string) {
	slash := strings.LastIndexByte(full, '/')
	dot := strings.IndexByte(full[slash+1:], '.')
	if dot < 0 {
		return "", full
	}
	dot += slash + 1
	return full[:dot], full[dot+1:]
}
