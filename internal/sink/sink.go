// Package sink delivers generated datasets to their destinations: a record
// store (push) or a JSON snapshot in blob storage (dump).
package sink

import (
	"repaircore/internal/observability"
)

type options struct {
	log     observability.Logger
	metrics observability.MetricsRecorder
	workers int
}

func defaultOptions() options {
	return options{
		log:     observability.NopLogger{},
		metrics: observability.NopMetricsRecorder{},
		workers: 8,
	}
}

// Option configures a Pusher or Dumper.
type Option func(*options)

// WithLogger wires a structured logger. The default discards records.
func WithLogger(log observability.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithMetrics wires a metrics recorder for per-collection timings.
func WithMetrics(rec observability.MetricsRecorder) Option {
	return func(o *options) {
		if rec != nil {
			o.metrics = rec
		}
	}
}

// WithWorkers caps the number of concurrent inserts inside one dependency
// group. Zero or negative keeps the default.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}
