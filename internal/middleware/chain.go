package middleware

import (
	"log/slog"

	"github.com/SscSPs/travel_insurance_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// Global returns the engine-wide middleware in registration order. Metrics
// wraps Recovery so that requests ending in a panic are still counted.
func Global(baseLogger *slog.Logger, m *metrics.Metrics, exposeDetails bool) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		StructuredLoggingMiddleware(baseLogger),
		MetricsMiddleware(m),
		Recovery(exposeDetails),
	}
}
