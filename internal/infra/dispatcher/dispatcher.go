// Package dispatcher routes tool invocations to their handlers. All
// per-invocation failures are converted to failure envelopes here; nothing
// escapes Invoke as a raised error.
package dispatcher

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"timemcp/internal/domain"
	"timemcp/internal/infra/clock"
	"timemcp/internal/infra/telemetry"
)

type handlerFunc func(snap clock.Snapshot, args map[string]string) (string, error)

// Config carries the dispatcher's collaborators. Zero values are usable:
// logging is disabled, metrics are dropped, and time comes from the wall
// clock.
type Config struct {
	Logger  *zap.Logger
	Metrics domain.Metrics
	Now     func() time.Time
}

type Dispatcher struct {
	logger   *zap.Logger
	metrics  domain.Metrics
	now      func() time.Time
	catalog  []domain.ToolDescriptor
	byName   map[string]domain.ToolDescriptor
	handlers map[string]handlerFunc
}

func New(cfg Config) *Dispatcher {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	d := &Dispatcher{
		logger:  logger.Named("dispatcher"),
		metrics: cfg.Metrics,
		now:     now,
		catalog: Catalog(),
	}
	d.byName = make(map[string]domain.ToolDescriptor, len(d.catalog))
	for _, desc := range d.catalog {
		d.byName[desc.Name] = desc
	}
	d.handlers = map[string]handlerFunc{
		"get_current_time": d.currentTime,
		"get_time_info":    d.timeInfo,
	}
	return d
}

// Tools returns the catalog backing this dispatcher.
func (d *Dispatcher) Tools() []domain.ToolDescriptor {
	return Catalog()
}

// Invoke runs the named tool with the loosely-typed argument bag and always
// returns a well-formed envelope.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) (env domain.Envelope) {
	start := time.Now()
	logger := d.logger.With(telemetry.RequestFields(ctx)...).With(zap.String(telemetry.FieldTool, name))

	defer func() {
		if r := recover(); r != nil {
			env = domain.FailureEnvelope(fmt.Sprintf("Error: %v", r))
			logger.Error("handler panicked", zap.Any("panic", r))
		}
		d.observe(name, env, time.Since(start))
	}()

	desc, ok := d.byName[name]
	if !ok {
		logger.Warn("unknown tool requested")
		return domain.FailureEnvelope(fmt.Sprintf("Error: Unknown tool: %s", name))
	}

	resolved := resolveArguments(desc.Parameters, args)
	snap := clock.At(d.now())

	text, err := d.handlers[name](snap, resolved)
	if err != nil {
		logger.Warn("invocation failed", zap.Error(err))
		return domain.FailureEnvelope(fmt.Sprintf("Error: %s", err.Error()))
	}

	logger.Debug("invocation completed", telemetry.DurationField(time.Since(start)))
	return domain.Envelope{Text: text}
}

func (d *Dispatcher) observe(name string, env domain.Envelope, duration time.Duration) {
	if d.metrics == nil {
		return
	}
	status := domain.InvocationStatusSuccess
	if env.IsError {
		status = domain.InvocationStatusError
	}
	d.metrics.ObserveInvocation(name, status, duration)
}

// resolveArguments substitutes declared defaults for missing, non-string, or
// empty arguments. No other coercion happens; handlers only ever see
// strings.
func resolveArguments(params []domain.ParameterSpec, args map[string]any) map[string]string {
	resolved := make(map[string]string, len(params))
	for _, p := range params {
		value := p.Default
		if raw, ok := args[p.Name]; ok {
			if s, ok := raw.(string); ok && s != "" {
				value = s
			}
		}
		resolved[p.Name] = value
	}
	return resolved
}
