package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	routineGeneratedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "chainboard",
		Subsystem: "routine",
		Name:      "tasks_generated_total",
		Help:      "Tasks synthesized by the daily routine generator.",
	})
	routineFailureCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "chainboard",
		Subsystem: "routine",
		Name:      "persist_failures_total",
		Help:      "Synthesized routine tasks that failed to persist.",
	})
	minutesLoggedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "chainboard",
		Subsystem: "learning",
		Name:      "minutes_logged_total",
		Help:      "Watch minutes logged against the learning path.",
	})
	digestSentCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "chainboard",
		Subsystem: "digest",
		Name:      "sent_total",
		Help:      "Daily digest messages delivered.",
	})
)

func init() {
	prometheus.MustRegister(
		routineGeneratedCounter,
		routineFailureCounter,
		minutesLoggedCounter,
		digestSentCounter,
	)
}

// RecordRoutineGenerated counts tasks synthesized for a day.
func RecordRoutineGenerated(n int) {
	if n > 0 {
		routineGeneratedCounter.Add(float64(n))
	}
}

// RecordRoutineFailures counts per-task persistence failures during generation.
func RecordRoutineFailures(n int) {
	if n > 0 {
		routineFailureCounter.Add(float64(n))
	}
}

// RecordMinutesLogged counts watch minutes accepted by the progress tracker.
func RecordMinutesLogged(minutes int) {
	if minutes > 0 {
		minutesLoggedCounter.Add(float64(minutes))
	}
}

// RecordDigestSent counts a delivered daily digest.
func RecordDigestSent() {
	digestSentCounter.Inc()
}

// NewMetricsServer exposes the Prometheus registry on addr.
func NewMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}
