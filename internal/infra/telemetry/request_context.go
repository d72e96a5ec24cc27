package telemetry

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type requestContextKey struct{}

// RequestMeta correlates diagnostic log lines of one invocation.
type RequestMeta struct {
	RequestID string
	TraceID   string
	SpanID    string
}

func (m RequestMeta) IsZero() bool {
	return m.RequestID == "" && m.TraceID == "" && m.SpanID == ""
}

func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	if meta.IsZero() {
		return ctx
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestContextKey{}, meta)
}

func RequestMetaFromContext(ctx context.Context) (RequestMeta, bool) {
	if ctx == nil {
		return RequestMeta{}, false
	}
	meta, ok := ctx.Value(requestContextKey{}).(RequestMeta)
	return meta, ok && !meta.IsZero()
}

func NewRequestID() string {
	return uuid.NewString()
}

// NewRequestMeta builds fresh metadata for an inbound invocation, picking up
// any trace/span already recorded on the context.
func NewRequestMeta(ctx context.Context) RequestMeta {
	traceID, spanID := TraceSpanFromContext(ctx)
	return RequestMeta{
		RequestID: NewRequestID(),
		TraceID:   traceID,
		SpanID:    spanID,
	}
}

func TraceSpanFromContext(ctx context.Context) (string, string) {
	if ctx == nil {
		return "", ""
	}
	spanCtx := trace.SpanFromContext(ctx).SpanContext()
	if !spanCtx.IsValid() {
		return "", ""
	}
	return spanCtx.TraceID().String(), spanCtx.SpanID().String()
}

// RequestFields renders the request metadata on the context as zap fields.
func RequestFields(ctx context.Context) []zap.Field {
	meta, ok := RequestMetaFromContext(ctx)
	if !ok {
		return nil
	}
	fields := make([]zap.Field, 0, 3)
	if meta.RequestID != "" {
		fields = append(fields, zap.String(FieldRequestID, meta.RequestID))
	}
	if meta.TraceID != "" {
		fields = append(fields, zap.String(FieldTraceID, meta.TraceID))
	}
	if meta.SpanID != "" {
		fields = append(fields, zap.String(FieldSpanID, meta.SpanID))
	}
	return fields
}
