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
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Attribute keys for trace correlation.
const (
	attrTraceID = "trace_id"
	attrSpanID  = "span_id"
)

// WithTraceContext derives a logger that stamps the OpenTelemetry trace and
// span IDs from ctx onto every record, so log output can be correlated with
// distributed traces. If the context carries no valid span, the logger is
// returned unchanged.
//
// Typical use is per request:
//
//	log := slf4d.WithTraceContext(ctx, slf4d.GetLogger("myapp.http"))
//	log.Info("request received")
func WithTraceContext(ctx context.Context, l Logger) Logger {
	span := trace.SpanFromContext(ctx)
	sc := span.SpanContext()
	if !sc.IsValid() {
		return l
	}
	return l.With(map[string]string{
		attrTraceID: sc.TraceID().String(),
		attrSpanID:  sc.SpanID().String(),
	})
}
