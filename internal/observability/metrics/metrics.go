// Package metrics expone contadores Prometheus de la API y del negocio.
// Los handlers no tocan Prometheus directo: usan los helpers Observe*.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fruittrack_http_requests_total",
		Help: "Total de requests HTTP",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fruittrack_http_request_duration_seconds",
		Help:    "Duración de los requests HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	salesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fruittrack_sales_recorded_total",
		Help: "Ventas registradas con éxito",
	})

	oversellRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fruittrack_oversell_rejections_total",
		Help: "Ventas rechazadas por el invariante de oversell",
	})

	stockMovements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fruittrack_stock_movements_total",
		Help: "Movimientos de stock por dirección y origen",
	}, []string{"direction", "reference_type"})
)

// ObserveHTTPRequest registra un request HTTP completado.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveSaleRecorded incrementa el contador de ventas exitosas.
func ObserveSaleRecorded() {
	salesRecorded.Inc()
}

// ObserveOversellRejection incrementa el contador de rechazos por oversell.
func ObserveOversellRejection() {
	oversellRejections.Inc()
}

// ObserveStockMovement registra un movimiento de stock.
func ObserveStockMovement(direction, referenceType string) {
	stockMovements.WithLabelValues(direction, referenceType).Inc()
}
