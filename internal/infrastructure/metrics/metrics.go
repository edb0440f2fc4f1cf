// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pulseboard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
	voteToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulseboard_vote_toggles_total",
			Help: "Vote toggles by outcome",
		},
		[]string{"result"},
	)
	aiRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulseboard_ai_requests_total",
			Help: "AI-assisted operations by operation and outcome",
		},
		[]string{"operation", "success"},
	)
)

// Recorder records domain events. The zero value is ready to use.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordVoteToggle counts one toggle; result is added, removed or already_voted.
func (Recorder) RecordVoteToggle(result string) {
	voteToggles.WithLabelValues(result).Inc()
}

func (Recorder) RecordAIRequest(operation string, success bool) {
	aiRequests.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

// ObserveHTTPRequest records one request against its route template.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
