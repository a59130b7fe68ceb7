// Package metrics holds the process Prometheus collectors and the /metrics handler
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lostfound"

var (
	matchRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "matching",
			Name:      "runs_total",
			Help:      "Match runs triggered by found item creation, by result",
		},
		[]string{"result"},
	)

	matchRunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "matching",
			Name:      "run_duration_seconds",
			Help:      "Wall time of one match run including notification fan-out",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	requestsScanned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "matching",
			Name:      "requests_scanned_total",
			Help:      "Active lost requests scored",
		},
	)

	matchScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "matching",
			Name:      "kept_score",
			Help:      "Scores of matches that cleared the threshold",
			Buckets:   prometheus.LinearBuckets(50, 5, 11),
		},
	)

	notices = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "notices_total",
			Help:      "Match notices handed to the dispatcher, by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(matchRuns, matchRunDuration, requestsScanned, matchScores, notices)
}

// ObserveMatchRun records one orchestrator run. failed marks runs whose
// inventory read failed
func ObserveMatchRun(d time.Duration, scanned int, scores []int, failed bool) {
	result := "ok"
	if failed {
		result = "inventory_error"
	}
	matchRuns.WithLabelValues(result).Inc()
	matchRunDuration.Observe(d.Seconds())
	requestsScanned.Add(float64(scanned))
	for _, s := range scores {
		matchScores.Observe(float64(s))
	}
}

// ObserveNotice records one dispatch attempt
func ObserveNotice(err error) {
	if err != nil {
		notices.WithLabelValues("failed").Inc()
		return
	}
	notices.WithLabelValues("sent").Inc()
}

// Handler serves the default registry
func Handler() http.Handler { return promhttp.Handler() }
