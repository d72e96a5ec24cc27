package domain

import "time"

// InvocationStatus labels the outcome of a tool invocation.
type InvocationStatus string

const (
	// InvocationStatusSuccess indicates the invocation produced a success envelope.
	InvocationStatusSuccess InvocationStatus = "success"
	// InvocationStatusError indicates the invocation produced a failure envelope.
	InvocationStatusError InvocationStatus = "error"
)

// Metrics receives per-invocation observations. Implementations must be
// safe for concurrent use.
type Metrics interface {
	ObserveInvocation(tool string, status InvocationStatus, duration time.Duration)
}
