// Package recovery catches panics in goroutines that run outside any
// request/response cycle a standard recover-in-middleware pattern
// would cover — here, the per-connection goroutines demo.Fanout
// spawns to drive many independent encoders concurrently. A panic in
// one simulated connection must not take the rest of the fan-out run
// down with it.
package recovery

import (
	"runtime/debug"

	"go.uber.org/zap"
)

// Recoverer logs and optionally reports panics recovered at a known
// call site, rather than letting them propagate past the goroutine
// boundary that launched the work.
type Recoverer struct {
	logger  *zap.Logger
	metrics MetricsCollector
}

// MetricsCollector receives a notification for every panic a Recoverer
// catches. Passing nil to NewRecoverer disables reporting.
type MetricsCollector interface {
	RecordPanic(location string, panicValue interface{})
}

// NewRecoverer creates a Recoverer. A nil metrics collector is valid:
// panics are still logged, just not reported anywhere else.
func NewRecoverer(logger *zap.Logger, metrics MetricsCollector) *Recoverer {
	return &Recoverer{
		logger:  logger,
		metrics: metrics,
	}
}

// RecoverWithCallback must be called via defer. If the deferred call
// stack is unwinding from a panic, it logs the panic value and stack,
// reports it to the metrics collector if one is set, and invokes
// callback with the recovered value so the caller can record its own
// failure state (e.g. a FanoutResult's Err field) before the goroutine
// exits normally.
func (r *Recoverer) RecoverWithCallback(location string, callback func(panicValue interface{})) {
	if p := recover(); p != nil {
		r.logger.Error("panic recovered with callback",
			zap.String("location", location),
			zap.Any("panic", p),
			zap.ByteString("stack", debug.Stack()),
		)

		if r.metrics != nil {
			r.metrics.RecordPanic(location, p)
		}

		if callback != nil {
			callback(p)
		}
	}
}
