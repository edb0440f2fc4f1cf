package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_RecordVoteToggle(t *testing.T) {
	before := testutil.ToFloat64(voteToggles.WithLabelValues("added"))

	r := NewRecorder()
	r.RecordVoteToggle("added")
	r.RecordVoteToggle("added")

	assert.Equal(t, before+2, testutil.ToFloat64(voteToggles.WithLabelValues("added")))
}

func TestRecorder_RecordAIRequest(t *testing.T) {
	before := testutil.ToFloat64(aiRequests.WithLabelValues("summary", "false"))
	NewRecorder().RecordAIRequest("summary", false)
	assert.Equal(t, before+1, testutil.ToFloat64(aiRequests.WithLabelValues("summary", "false")))
}

func TestObserveHTTPRequest(t *testing.T) {
	ObserveHTTPRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(httpRequestDuration, "pulseboard_http_request_duration_seconds"))
}
