package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"timemcp/internal/domain"
)

type PrometheusMetrics struct {
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		invocations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "timemcp_invocations_total",
				Help: "Total number of tool invocations",
			},
			[]string{"tool", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "timemcp_invocation_duration_seconds",
				Help:    "Duration of tool invocations in seconds",
				Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
			},
			[]string{"tool", "status"},
		),
	}
}

func (p *PrometheusMetrics) ObserveInvocation(tool string, status domain.InvocationStatus, duration time.Duration) {
	p.invocations.WithLabelValues(tool, string(status)).Inc()
	p.duration.WithLabelValues(tool, string(status)).Observe(duration.Seconds())
}

var _ domain.Metrics = (*PrometheusMetrics)(nil)
