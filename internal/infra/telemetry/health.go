package telemetry

import "sync"

// HealthReport is the payload served on /healthz.
type HealthReport struct {
	Status     string          `json:"status"`
	Components map[string]bool `json:"components,omitempty"`
}

// HealthTracker aggregates per-component readiness into a single report.
type HealthTracker struct {
	mu         sync.Mutex
	components map[string]bool
}

func NewHealthTracker() *HealthTracker {
	return &HealthTracker{components: make(map[string]bool)}
}

func (t *HealthTracker) SetReady(component string, ready bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.components[component] = ready
}

func (t *HealthTracker) Report() HealthReport {
	t.mu.Lock()
	defer t.mu.Unlock()

	report := HealthReport{
		Status:     "ok",
		Components: make(map[string]bool, len(t.components)),
	}
	for name, ready := range t.components {
		report.Components[name] = ready
		if !ready {
			report.Status = "degraded"
		}
	}
	return report
}
