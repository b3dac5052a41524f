package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config carries the constant labels stamped on every series.
type Config struct {
	ServiceName string
	Environment string
}

func (c Config) constLabels() prometheus.Labels {
	serviceName := strings.TrimSpace(c.ServiceName)
	if serviceName == "" {
		serviceName = "folio"
	}
	environment := strings.TrimSpace(c.Environment)
	if environment == "" {
		environment = "unknown"
	}
	return prometheus.Labels{"service": serviceName, "environment": environment}
}

// HTTPMetrics captures inbound request health signals.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers HTTP instruments on the default registry.
func NewHTTPMetrics(cfg Config) *HTTPMetrics {
	return newHTTPMetrics(prometheus.DefaultRegisterer, cfg)
}

func newHTTPMetrics(registerer prometheus.Registerer, cfg Config) *HTTPMetrics {
	labels := cfg.constLabels()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "folio_http_requests_total",
		Help:        "Inbound HTTP requests by route and status code.",
		ConstLabels: labels,
	}, []string{"route", "method", "status_code"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "folio_http_request_duration_seconds",
		Help:        "Inbound HTTP request duration.",
		ConstLabels: labels,
		Buckets:     prometheus.DefBuckets,
	}, []string{"route", "method"})

	registerer.MustRegister(requests, duration)

	return &HTTPMetrics{requests: requests, duration: duration}
}

// Observe records one finished request.
func (m *HTTPMetrics) Observe(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// DocumentMetrics counts assembled legal documents.
type DocumentMetrics struct {
	assembled *prometheus.CounterVec
	failures  *prometheus.CounterVec
}

// NewDocumentMetrics registers document instruments on the default registry.
func NewDocumentMetrics(cfg Config) *DocumentMetrics {
	return newDocumentMetrics(prometheus.DefaultRegisterer, cfg)
}

func newDocumentMetrics(registerer prometheus.Registerer, cfg Config) *DocumentMetrics {
	labels := cfg.constLabels()

	assembled := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "folio_documents_assembled_total",
		Help:        "Documents assembled, by render mode and heading.",
		ConstLabels: labels,
	}, []string{"mode", "heading"})

	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "folio_document_failures_total",
		Help:        "Document assembly failures, by reason.",
		ConstLabels: labels,
	}, []string{"reason"})

	registerer.MustRegister(assembled, failures)

	return &DocumentMetrics{assembled: assembled, failures: failures}
}

// RecordAssembled increments the assembled-document count.
func (m *DocumentMetrics) RecordAssembled(mode, heading string) {
	if m == nil {
		return
	}
	m.assembled.WithLabelValues(strings.ToLower(mode), strings.ToLower(heading)).Inc()
}

// RecordFailure increments the assembly-failure count.
func (m *DocumentMetrics) RecordFailure(reason string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(strings.TrimSpace(reason)).Inc()
}
