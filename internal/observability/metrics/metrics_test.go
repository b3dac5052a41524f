package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsObserve(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newHTTPMetrics(registry, Config{ServiceName: "folio-test", Environment: "test"})

	m.Observe("/v1/orders/:id/document", "GET", 200, 25*time.Millisecond)
	m.Observe("/v1/orders/:id/document", "GET", 404, time.Millisecond)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, fam := range families {
		names[fam.GetName()] = true
	}
	assert.True(t, names["folio_http_requests_total"])
	assert.True(t, names["folio_http_request_duration_seconds"])
}

func TestDocumentMetricsRecord(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newDocumentMetrics(registry, Config{})

	m.RecordAssembled("Legal", "Receipt")
	m.RecordFailure("invalid_country_code")

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 2)
}

func TestNilMetricsAreSafe(t *testing.T) {
	var h *HTTPMetrics
	var d *DocumentMetrics
	h.Observe("/health", "GET", 200, 0)
	d.RecordAssembled("form", "invoice")
	d.RecordFailure("none")
}
