// Package metrics instrumentación Prometheus del API: métricas HTTP por ruta
// y contadores de negocio (pedidos, cambios de estado, ventas, pagos).
//
// Se monta con el middleware HTTP y GET /metrics (ver interfaces/http).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/jprint-vendor-api/internal/application/ports"
)

const namespace = "jprint"

var _ ports.OrderEvents = (*Metrics)(nil)

// Metrics registro propio (no el global de Prometheus) con las métricas del API.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	inFlight        prometheus.Gauge

	ordersCreated  *prometheus.CounterVec
	statusChanges  *prometheus.CounterVec
	salesRecorded  prometheus.Counter
	salesRevenue   prometheus.Counter
	paymentUpdates *prometheus.CounterVec
}

// New crea y registra las métricas. Cada llamada usa un registro nuevo (tests).
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de peticiones HTTP.",
		}, []string{"method", "route", "status"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Peticiones HTTP en curso.",
		}),
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Pedidos creados por vendedor.",
		}, []string{"vendor_id"}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Cambios de estado de pedidos.",
		}, []string{"from", "to"}),
		salesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sales",
			Name:      "recorded_total",
			Help:      "Ventas registradas.",
		}),
		salesRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sales",
			Name:      "revenue_total",
			Help:      "Ingresos acumulados de las ventas registradas (INR).",
		}),
		paymentUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "status_updates_total",
			Help:      "Actualizaciones de estado de pago.",
		}, []string{"status"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration, m.requestTotal, m.inFlight,
		m.ordersCreated, m.statusChanges, m.salesRecorded, m.salesRevenue, m.paymentUpdates,
	)
	return m
}

// Registry registro para exponer o inspeccionar en tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler página /metrics (texto y OpenMetrics).
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// RequestStarted incrementa el gauge de peticiones en curso; llamar a la función devuelta al terminar.
func (m *Metrics) RequestStarted() func() {
	m.inFlight.Inc()
	return m.inFlight.Dec
}

// ObserveRequest registra una petición terminada. route es la plantilla de la ruta
// (/api/orders/:id), no el path real, para acotar la cardinalidad.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
	m.requestTotal.WithLabelValues(method, route, code).Inc()
}

func (m *Metrics) OrderCreated(vendorID string) {
	m.ordersCreated.WithLabelValues(vendorID).Inc()
}

func (m *Metrics) OrderStatusChanged(from, to string) {
	m.statusChanges.WithLabelValues(from, to).Inc()
}

func (m *Metrics) SaleRecorded(amount decimal.Decimal) {
	m.salesRecorded.Inc()
	m.salesRevenue.Add(amount.InexactFloat64())
}

func (m *Metrics) PaymentStatusChanged(status string) {
	m.paymentUpdates.WithLabelValues(status).Inc()
}
