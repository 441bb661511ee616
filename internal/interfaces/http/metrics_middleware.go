package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fruit-track/internal/observability/metrics"
)

// MetricsMiddleware registra contador y latencia de cada request.
// Usa la ruta registrada (c.Route().Path) y no la URL cruda, para que los
// parámetros (:id) no exploten la cardinalidad de las labels.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		metrics.ObserveHTTPRequest(c.Method(), c.Route().Path, strconv.Itoa(status), time.Since(start))
		return err
	}
}
