package telemetry

import (
	"time"

	"go.uber.org/zap"
)

const (
	FieldTool       = "tool"
	FieldStatus     = "status"
	FieldDurationMs = "duration_ms"
	FieldRequestID  = "request_id"
	FieldTraceID    = "trace_id"
	FieldSpanID     = "span_id"
)

func DurationField(d time.Duration) zap.Field {
	return zap.Int64(FieldDurationMs, d.Milliseconds())
}
