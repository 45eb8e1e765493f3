package observability

import (
	"expvar"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsRecorder receives timing and outcome signals from the generation
// pipeline and the push sink. Operations are labels such as
// "generate_person" or "push_Order".
type MetricsRecorder interface {
	RecordDuration(operation string, d time.Duration)
	RecordResult(operation, status string)
}

// NopMetricsRecorder ignores all signals.
type NopMetricsRecorder struct{}

func (NopMetricsRecorder) RecordDuration(string, time.Duration) {}
func (NopMetricsRecorder) RecordResult(string, string)          {}

var (
	expvarSeq uint64
	expvarMu  sync.Mutex
)

// ExpvarMetricsRecorder publishes aggregate timing and result counters via
// expvar, for deployments that prefer process-local metrics without external
// dependencies. Totals are kept in milliseconds per operation.
type ExpvarMetricsRecorder struct {
	name      string
	mu        sync.Mutex
	durations map[string]float64
	results   map[string]map[string]int64
}

// ExpvarMetricsSnapshot captures a read-only view of the recorded metrics.
type ExpvarMetricsSnapshot struct {
	DurationsMS map[string]float64          `json:"durations_ms_total"`
	Results     map[string]map[string]int64 `json:"results_total"`
	RecordedAt  time.Time                   `json:"recorded_at"`
}

// NewExpvarMetricsRecorder constructs an expvar-backed recorder published
// under name. When name is empty or already published, a unique suffixed
// name is used instead; expvar.Publish panics on reuse, so the recorder
// never hands it a taken name.
func NewExpvarMetricsRecorder(name string) *ExpvarMetricsRecorder {
	rec := &ExpvarMetricsRecorder{
		durations: make(map[string]float64),
		results:   make(map[string]map[string]int64),
	}
	expvarMu.Lock()
	defer expvarMu.Unlock()
	if name == "" || expvar.Get(name) != nil {
		base := name
		if base == "" {
			base = "datagen_metrics"
		}
		for {
			candidate := fmt.Sprintf("%s_%d", base, atomic.AddUint64(&expvarSeq, 1))
			if expvar.Get(candidate) == nil {
				name = candidate
				break
			}
		}
	}
	rec.name = name
	expvar.Publish(name, expvar.Func(func() any {
		return rec.Snapshot()
	}))
	return rec
}

// Name returns the expvar export name associated with the recorder.
func (r *ExpvarMetricsRecorder) Name() string { return r.name }

// RecordDuration adds d to the operation's running total.
func (r *ExpvarMetricsRecorder) RecordDuration(operation string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.durations[operation] += float64(d.Milliseconds())
}

// RecordResult increments the operation/status counter.
func (r *ExpvarMetricsRecorder) RecordResult(operation, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byStatus, ok := r.results[operation]
	if !ok {
		byStatus = make(map[string]int64)
		r.results[operation] = byStatus
	}
	byStatus[status]++
}

// Snapshot returns an immutable copy of the aggregated metrics.
func (r *ExpvarMetricsRecorder) Snapshot() ExpvarMetricsSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	durations := make(map[string]float64, len(r.durations))
	for op, total := range r.durations {
		durations[op] = total
	}
	results := make(map[string]map[string]int64, len(r.results))
	for op, statusCounts := range r.results {
		cpy := make(map[string]int64, len(statusCounts))
		for status, count := range statusCounts {
			cpy[status] = count
		}
		results[op] = cpy
	}
	return ExpvarMetricsSnapshot{
		DurationsMS: durations,
		Results:     results,
		RecordedAt:  time.Now().UTC(),
	}
}

// PrometheusMetricsRecorder exports operation durations as a histogram and
// results as a counter, both labeled by operation.
type PrometheusMetricsRecorder struct {
	durations *prometheus.HistogramVec
	results   *prometheus.CounterVec
}

// NewPrometheusMetricsRecorder constructs a recorder and registers its
// collectors with reg.
func NewPrometheusMetricsRecorder(reg prometheus.Registerer) (*PrometheusMetricsRecorder, error) {
	rec := &PrometheusMetricsRecorder{
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "datagen",
			Name:      "operation_duration_seconds",
			Help:      "Duration of generation and push operations.",
		}, []string{"operation"}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "datagen",
			Name:      "operation_results_total",
			Help:      "Outcomes of generation and push operations.",
		}, []string{"operation", "status"}),
	}
	if err := reg.Register(rec.durations); err != nil {
		return nil, fmt.Errorf("register duration histogram: %w", err)
	}
	if err := reg.Register(rec.results); err != nil {
		return nil, fmt.Errorf("register result counter: %w", err)
	}
	return rec, nil
}

// RecordDuration observes d for the operation.
func (r *PrometheusMetricsRecorder) RecordDuration(operation string, d time.Duration) {
	r.durations.WithLabelValues(operation).Observe(d.Seconds())
}

// RecordResult increments the operation/status counter.
func (r *PrometheusMetricsRecorder) RecordResult(operation, status string) {
	r.results.WithLabelValues(operation, status).Inc()
}
