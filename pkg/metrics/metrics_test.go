package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAuth(t *testing.T) {
	before := testutil.ToFloat64(AuthEvents.WithLabelValues(EventLogin, OutcomeFailure))
	RecordAuth(EventLogin, errors.New("invalid credentials"))
	after := testutil.ToFloat64(AuthEvents.WithLabelValues(EventLogin, OutcomeFailure))
	assert.Equal(t, before+1, after)

	before = testutil.ToFloat64(AuthEvents.WithLabelValues(EventLogin, OutcomeSuccess))
	RecordAuth(EventLogin, nil)
	assert.Equal(t, before+1, testutil.ToFloat64(AuthEvents.WithLabelValues(EventLogin, OutcomeSuccess)))
}

func TestHandlerExposesCounters(t *testing.T) {
	ObserveRequest(http.MethodGet, "/api/v1/products", http.StatusOK, 0.01)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "umkm_http_requests_total")
}
