package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	metricsport "github.com/jbdata/ledger-engine/internal/domain/port/metrics"
)

const namespace = "ledger"

// PrometheusRecorder implements metrics.Recorder and the database pool observer on a private registry
type PrometheusRecorder struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	exports         *prometheus.CounterVec
	ordersClaimed   prometheus.Counter
	deliveryUpdates *prometheus.CounterVec
	analyticsDown   prometheus.Counter
	ingested        *prometheus.CounterVec
	poolOpen        prometheus.Gauge
	poolInUse       prometheus.Gauge
	poolIdle        prometheus.Gauge
}

var _ metricsport.Recorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder registers every ledger collector, plus the Go and process collectors, on a new registry
func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Export runs by result.",
		}, []string{"result"}),
		ordersClaimed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_claimed_total",
			Help:      "Orders moved from pending to processing by exports.",
		}),
		deliveryUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_updates_total",
			Help:      "Committed delivery status updates by target status.",
		}, []string{"status"}),
		analyticsDown: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analytics_degraded_total",
			Help:      "Listings served with degraded analytics.",
		}),
		ingested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_ingested_total",
			Help:      "Ingested payment records by result.",
		}, []string{"result"}),
		poolOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_open_connections",
			Help:      "Open database connections.",
		}),
		poolInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_in_use",
			Help:      "Database connections in use.",
		}),
		poolIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_idle",
			Help:      "Idle database connections.",
		}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests,
		r.httpDuration,
		r.exports,
		r.ordersClaimed,
		r.deliveryUpdates,
		r.analyticsDown,
		r.ingested,
		r.poolOpen,
		r.poolInUse,
		r.poolIdle,
	)

	return r
}

// Handler serves the registry in the Prometheus exposition format
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry returns the underlying registry
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *PrometheusRecorder) ExportCompleted(result string, claimed int) {
	r.exports.WithLabelValues(result).Inc()
	if claimed > 0 {
		r.ordersClaimed.Add(float64(claimed))
	}
}

func (r *PrometheusRecorder) DeliveryUpdated(status string) {
	r.deliveryUpdates.WithLabelValues(status).Inc()
}

func (r *PrometheusRecorder) AnalyticsDegraded() {
	r.analyticsDown.Inc()
}

func (r *PrometheusRecorder) TransactionIngested(result string) {
	r.ingested.WithLabelValues(result).Inc()
}

func (r *PrometheusRecorder) HTTPRequest(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObservePool copies a pool snapshot into the gauges
func (r *PrometheusRecorder) ObservePool(stats sql.DBStats) {
	r.poolOpen.Set(float64(stats.OpenConnections))
	r.poolInUse.Set(float64(stats.InUse))
	r.poolIdle.Set(float64(stats.Idle))
}
