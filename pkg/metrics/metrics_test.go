package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("pricing-test", prometheus.NewRegistry())

	m.IncPriceResolution("court")
	m.IncPriceResolution("court")
	m.IncPriceResolution("fallback")
	m.IncCacheResult("hit")
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/pricing-rules/{ruleId}", http.StatusOK, 10*time.Millisecond)
	m.ObserveDBQuery("select", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.priceResolutions.WithLabelValues("court")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.priceResolutions.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheRequests.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/pricing-rules/{ruleId}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("select")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncPriceResolution("court")
		m.IncCacheResult("miss")
		m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Second)
		m.ObserveDBQuery("select", time.Second, nil)
	})
}
