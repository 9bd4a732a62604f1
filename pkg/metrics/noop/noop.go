// Package noop provides a no-operation metrics client implementation
// for use in testing or when metrics collection is disabled.
package noop

import (
	"context"
	"net/http"

	"github.com/architeacher/inventory/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
)

var _ metrics.Client = MetricsClient{}

type MetricsClient struct{}

func NewMetricsClient() MetricsClient {
	return MetricsClient{}
}

func (c MetricsClient) Inc(_ context.Context, _ string, _ any, _ ...attribute.KeyValue) {}

// Handler reports that metrics collection is switched off.
func (c MetricsClient) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"metrics collection is disabled"}`))
	})
}

func (c MetricsClient) Shutdown(_ context.Context) error {
	return nil
}
