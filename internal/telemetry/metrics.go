package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	AttemptCounter    = prometheus.NewCounter(prometheus.CounterOpts{Name: "dispatch_attempts_total", Help: "Execution attempts dispatched"})
	SuccessCounter    = prometheus.NewCounter(prometheus.CounterOpts{Name: "dispatch_success_total", Help: "Attempts that completed successfully"})
	RetryCounter      = prometheus.NewCounter(prometheus.CounterOpts{Name: "dispatch_retries_total", Help: "Failed attempts re-admitted for retry"})
	ExhaustedCounter  = prometheus.NewCounter(prometheus.CounterOpts{Name: "dispatch_exhausted_total", Help: "Jobs that failed terminally after exhausting retries"})
	QueueDepthGauge   = prometheus.NewGauge(prometheus.GaugeOpts{Name: "dispatch_queue_depth", Help: "Jobs currently pending in the queue"})
	BackoffSleepGauge = prometheus.NewGauge(prometheus.GaugeOpts{Name: "dispatch_backoff_ms", Help: "Backoff applied before the most recent retry, in milliseconds"})
)

// Handler exposes the /metrics HTTP handler with a singleton registry.
func Handler() http.Handler {
	once.Do(func() {
		prometheus.MustRegister(
			AttemptCounter,
			SuccessCounter,
			RetryCounter,
			ExhaustedCounter,
			QueueDepthGauge,
			BackoffSleepGauge,
		)
	})
	return promhttp.Handler()
}
