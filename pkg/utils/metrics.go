package utils

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	log "github.com/sirupsen/logrus"
)

// Metrics are declared with plain prometheus (not promauto) so InitMetrics
// controls registration.
var (
	// RequestCounter tracks the total number of HTTP requests.
	RequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// ResponseTime measures HTTP response time.
	ResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inventory_http_response_time_seconds",
		Help:    "HTTP response time in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path", "status"})

	// ErrorCounter tracks errors by service and type.
	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_error_total",
		Help: "Total number of errors",
	}, []string{"service", "type"})

	// ServerGauge holds sampled server state (cpu, memory, load, capacity).
	ServerGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "inventory_server_state",
		Help: "Sampled server state by metric name",
	}, []string{"server", "metric"})
)

// InitMetrics registers all metrics with the default registry.
func InitMetrics() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(ResponseTime)
	prometheus.MustRegister(ErrorCounter)
	prometheus.MustRegister(ServerGauge)

	log.Debug("metrics registered")
}

// RecordRequest records one handled HTTP request.
func RecordRequest(method, path string, status int, duration float64) {
	code := strconv.Itoa(status)
	RequestCounter.WithLabelValues(method, path, code).Inc()
	ResponseTime.WithLabelValues(method, path, code).Observe(duration)
}

// RecordError records one error occurrence.
func RecordError(service string, errorType string) {
	ErrorCounter.WithLabelValues(service, errorType).Inc()
}

// UpdateServerMetric sets one sampled server gauge.
func UpdateServerMetric(server, metric string, value float64) {
	ServerGauge.WithLabelValues(server, metric).Set(value)
}

// GetSystemMetrics returns cpu and memory usage as fractions in [0,1].
// Failures fall back to zero; metrics sampling must never break a request.
func GetSystemMetrics() (float64, float64) {
	var cpuUsage float64
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuUsage = percents[0] / 100.0
	}

	var memUsage float64
	if vm, err := mem.VirtualMemory(); err == nil {
		memUsage = vm.UsedPercent / 100.0
	}

	return cpuUsage, memUsage
}
