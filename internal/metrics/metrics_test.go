package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordEvents(t *testing.T) {
	before := testutil.ToFloat64(eventsRecordedTotal.WithLabelValues("clicked"))

	RecordEvents("clicked", 3)
	RecordEvents("clicked", 0)

	assert.Equal(t, before+3, testutil.ToFloat64(eventsRecordedTotal.WithLabelValues("clicked")))
}

func TestRecordReport(t *testing.T) {
	before := testutil.ToFloat64(reportSkippedEvents)

	RecordReport(20*time.Millisecond, 2)
	RecordReport(10*time.Millisecond, 0)

	assert.Equal(t, before+2, testutil.ToFloat64(reportSkippedEvents))
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordHTTPRequest(http.MethodGet, "/api/v1/analytics/departments", "200", time.Millisecond)
	RecordRateLimited()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(body, "phish_analytics_http_requests_total"))
	assert.True(t, strings.Contains(body, "phish_analytics_rate_limited_total"))
}
