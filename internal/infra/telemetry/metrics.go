package telemetry

import (
	"time"

	"timemcp/internal/domain"
)

type NoopMetrics struct{}

func NewNoopMetrics() *NoopMetrics {
	return &NoopMetrics{}
}

func (n *NoopMetrics) ObserveInvocation(_ string, _ domain.InvocationStatus, _ time.Duration) {}

var _ domain.Metrics = (*NoopMetrics)(nil)
