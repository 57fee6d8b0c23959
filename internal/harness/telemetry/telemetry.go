// Package telemetry exposes low-overhead Prometheus counters for sweep
// progress. Registration is eager; if no metrics endpoint is exposed the
// registration is harmless.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	cellsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shootout_cells_total",
		Help: "Total sweep cells attempted",
	})
	cellsSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shootout_cells_skipped_total",
		Help: "Sweep cells skipped because every trial failed",
	})
	trialsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shootout_trials_total",
		Help: "Total candidate trials attempted",
	})
	trialFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shootout_trial_failures_total",
		Help: "Candidate trials that crashed, timed out, or reported garbage",
	})
	trialRuntime = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "shootout_trial_runtime_seconds",
		Help:    "Runtime reported by successful candidate trials",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 16),
	})
)

func init() {
	prometheus.MustRegister(cellsTotal, cellsSkipped, trialsTotal, trialFailures, trialRuntime)
}

// RecordCell counts one attempted sweep cell.
func RecordCell() { cellsTotal.Inc() }

// RecordSkippedCell counts a cell whose trials all failed.
func RecordSkippedCell() { cellsSkipped.Inc() }

// RecordTrial counts one trial attempt and, when it succeeded, observes its
// reported runtime.
func RecordTrial(ok bool, runtimeSeconds float64) {
	trialsTotal.Inc()
	if ok {
		trialRuntime.Observe(runtimeSeconds)
		return
	}
	trialFailures.Inc()
}

// Serve exposes /metrics on addr in a background goroutine. Pass an empty
// addr to disable. If you already expose Prometheus elsewhere, leave it empty
// and register promhttp yourself.
func Serve(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() { _ = http.ListenAndServe(addr, mux) }()
}
