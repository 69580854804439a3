package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Page metrics
	PageRequests *prometheus.CounterVec
	PageDuration *prometheus.HistogramVec
	PageBytes    *prometheus.HistogramVec

	// Fallback metrics
	Fallbacks *prometheus.CounterVec

	// Worker pool metrics
	WorkerTasksTotal prometheus.Counter
	WorkerQueueDepth prometheus.Gauge
	WorkerBusy       prometheus.Gauge

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		// HTTP metrics
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		ResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),

		// Page metrics
		PageRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_page_requests_total",
				Help: "Total number of internal page requests",
			},
			[]string{"host", "outcome"},
		),
		PageDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_page_duration_seconds",
				Help:    "Internal page assembly duration in seconds",
				Buckets: []float64{.0001, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"host"},
		),
		PageBytes: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_page_bytes",
				Help:    "Internal page response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"host"},
		),

		// Fallback metrics
		Fallbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_page_fallbacks_total",
				Help: "Total number of requests answered with placeholder or bundled fallback content",
			},
			[]string{"host", "reason"},
		),

		// Worker pool metrics
		WorkerTasksTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "backend_worker_tasks_total",
				Help: "Total number of blocking tasks executed by the worker pool",
			},
		),
		WorkerQueueDepth: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "backend_worker_queue_depth",
				Help: "Number of tasks waiting in the worker pool queue",
			},
		),
		WorkerBusy: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "backend_worker_busy",
				Help: "Number of workers currently executing a task",
			},
		),

		// System metrics
		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "backend_uptime_seconds",
				Help: "Backend uptime in seconds",
			},
		),
	}

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))
}

// RecordPageRequest records an internal page request
func (m *Metrics) RecordPageRequest(host, outcome string, duration time.Duration, size int) {
	m.PageRequests.WithLabelValues(host, outcome).Inc()
	m.PageDuration.WithLabelValues(host).Observe(duration.Seconds())
	m.PageBytes.WithLabelValues(host).Observe(float64(size))
}

// RecordFallback records a placeholder or bundled-resource substitution
func (m *Metrics) RecordFallback(host, reason string) {
	m.Fallbacks.WithLabelValues(host, reason).Inc()
}

// IncWorkerTasks increments the executed task counter
func (m *Metrics) IncWorkerTasks() {
	m.WorkerTasksTotal.Inc()
}

// SetWorkerQueueDepth sets the current queue depth
func (m *Metrics) SetWorkerQueueDepth(n int) {
	m.WorkerQueueDepth.Set(float64(n))
}

// WorkerStarted marks a worker as busy
func (m *Metrics) WorkerStarted() {
	m.WorkerBusy.Inc()
}

// WorkerFinished marks a worker as idle
func (m *Metrics) WorkerFinished() {
	m.WorkerBusy.Dec()
}
