// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "student_id"

// Metrics owns a private registry so tests can create as many instances as they like.
// All recording methods are safe to call on a nil *Metrics.
type Metrics struct {
	reg *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	chatIntents      *prometheus.CounterVec
	workflowRequests *prometheus.CounterVec
	workflowDuration *prometheus.HistogramVec
	studentsImported *prometheus.CounterVec
	qrCodesGenerated prometheus.Counter
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 3, 5, 10},
		}, []string{"method", "route"}),
		chatIntents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_intents_total",
			Help:      "Admin chat messages by classified intent.",
		}, []string{"intent"}),
		workflowRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_requests_total",
			Help:      "Workflow engine calls by workflow and outcome.",
		}, []string{"workflow", "outcome"}),
		workflowDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "workflow_request_duration_seconds",
			Help:      "Workflow engine call latency.",
			Buckets:   []float64{0.1, 0.3, 0.5, 1, 2, 5, 10, 15},
		}, []string{"workflow"}),
		studentsImported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "students_imported_total",
			Help:      "Student rows processed by bulk import, by result.",
		}, []string{"result"}),
		qrCodesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "qr_codes_generated_total",
			Help:      "QR code images rendered for ID cards.",
		}),
	}

	m.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.chatIntents,
		m.workflowRequests,
		m.workflowDuration,
		m.studentsImported,
		m.qrCodesGenerated,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) IncIntent(intent string) {
	if m == nil {
		return
	}
	m.chatIntents.WithLabelValues(intent).Inc()
}

func (m *Metrics) ObserveWorkflow(workflow, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.workflowRequests.WithLabelValues(workflow, outcome).Inc()
	m.workflowDuration.WithLabelValues(workflow).Observe(elapsed.Seconds())
}

func (m *Metrics) AddImported(inserted, updated, skipped int) {
	if m == nil {
		return
	}
	m.studentsImported.WithLabelValues("inserted").Add(float64(inserted))
	m.studentsImported.WithLabelValues("updated").Add(float64(updated))
	m.studentsImported.WithLabelValues("skipped").Add(float64(skipped))
}

func (m *Metrics) IncQRCodes(n int) {
	if m == nil {
		return
	}
	m.qrCodesGenerated.Add(float64(n))
}
