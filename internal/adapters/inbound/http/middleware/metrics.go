package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/architeacher/inventory/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
)

const (
	httpMethodKey     = "http.method"
	httpRouteKey      = "http.route"
	httpStatusCodeKey = "http.status_code"

	httpRequestTotal    = "http_requests_total"
	httpRequestDuration = "http_request_duration_seconds"
	httpResponseSize    = "http_response_size_bytes"

	unmatchedRoute = "unmatched"
)

type MetricsMiddleware struct {
	metricsClient metrics.Client
}

func NewMetricsMiddleware(metricsClient metrics.Client) *MetricsMiddleware {
	return &MetricsMiddleware{
		metricsClient: metricsClient,
	}
}

// Middleware counts requests per route pattern, so /devices/1 and
// /devices/2 land in the same series.
func (m *MetricsMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := NewStatusRecorder(w)

		next.ServeHTTP(wrapped, r)

		attrs := []attribute.KeyValue{
			attribute.String(httpMethodKey, r.Method),
			attribute.String(httpRouteKey, routePattern(r)),
			attribute.String(httpStatusCodeKey, strconv.Itoa(wrapped.StatusCode())),
		}

		ctx := r.Context()
		m.metricsClient.Inc(ctx, httpRequestTotal, int64(1), attrs...)
		m.metricsClient.Inc(ctx, httpRequestDuration, time.Since(start).Seconds(), attrs...)
		m.metricsClient.Inc(ctx, httpResponseSize, float64(wrapped.BytesWritten()), attrs...)
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}

	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	return unmatchedRoute
}
