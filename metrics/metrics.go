// Package metrics exposes Prometheus counters for playback runs, emitted
// steps and rejected requests.
//
// Each Recorder owns a private registry, so independent recorders (one per
// test, or one per process) never collide. A nil *Recorder is valid and
// records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stepviz"

// Run results used as the "result" label.
const (
	ResultCompleted = "completed"
	ResultCancelled = "cancelled"
)

// Recorder holds the stepviz collectors.
type Recorder struct {
	reg      *prometheus.Registry
	runs     *prometheus.CounterVec
	steps    *prometheus.CounterVec
	rejected *prometheus.CounterVec
	active   prometheus.Gauge
	duration *prometheus.HistogramVec
}

// New registers every collector on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Playback runs that ended, by kind, operation and result.",
		}, []string{"kind", "op", "result"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Steps delivered to listeners, by kind.",
		}, []string{"kind"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_requests_total",
			Help:      "Requests refused before a run started, by kind and reason.",
		}, []string{"kind", "reason"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_runs",
			Help:      "Runs currently running or paused.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock time from start to end of a run.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"kind"}),
	}
	r.reg.MustRegister(r.runs, r.steps, r.rejected, r.active, r.duration)

	return r
}

// RunStarted counts a run as active.
func (r *Recorder) RunStarted() {
	if r == nil {
		return
	}
	r.active.Inc()
}

// RunEnded records a finished run; result is ResultCompleted or
// ResultCancelled.
func (r *Recorder) RunEnded(kind, op, result string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.active.Dec()
	r.runs.WithLabelValues(kind, op, result).Inc()
	r.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// StepEmitted counts one delivered step.
func (r *Recorder) StepEmitted(kind string) {
	if r == nil {
		return
	}
	r.steps.WithLabelValues(kind).Inc()
}

// Rejected counts a refused request.
func (r *Recorder) Rejected(kind, reason string) {
	if r == nil {
		return
	}
	r.rejected.WithLabelValues(kind, reason).Inc()
}

// Registry exposes the private registry, for tests and extra collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{MaxRequestsInFlight: 1})
}
