package otelsdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/architeacher/inventory/pkg/metrics/otelsdk"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestMetricsClient_Inc(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		record        func(c *otelsdk.MetricsClient)
		series        string
		expected      float64
		expectedCount uint64
	}{
		{
			name: "int64 counts add to a counter",
			record: func(c *otelsdk.MetricsClient) {
				c.Inc(context.Background(), "commands.createdevicecommand.success", int64(1))
				c.Inc(context.Background(), "commands.createdevicecommand.success", int64(2))
			},
			series:   "commands.createdevicecommand.success",
			expected: 3,
		},
		{
			name: "attributes are sorted into the series name",
			record: func(c *otelsdk.MetricsClient) {
				c.Inc(context.Background(), "http_requests_total", int64(1),
					attribute.String("http.status_code", "200"),
					attribute.String("http.method", "GET"),
				)
			},
			series:   "http_requests_total{http.method=GET,http.status_code=200}",
			expected: 1,
		},
		{
			name: "float durations are recorded on a histogram",
			record: func(c *otelsdk.MetricsClient) {
				c.Inc(context.Background(), "queries.getdevicequery.duration", 0.25)
				c.Inc(context.Background(), "queries.getdevicequery.duration", 0.5)
			},
			series:        "queries.getdevicequery.duration",
			expected:      0.75,
			expectedCount: 2,
		},
		{
			name: "unsigned sizes add to a counter",
			record: func(c *otelsdk.MetricsClient) {
				c.Inc(context.Background(), "bytes_sent", uint64(512))
			},
			series:   "bytes_sent",
			expected: 512,
		},
		{
			name: "unsupported value types are ignored",
			record: func(c *otelsdk.MetricsClient) {
				c.Inc(context.Background(), "ignored", "one")
			},
			series:   "ignored",
			expected: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := otelsdk.NewMetricsClient()
			tc.record(client)

			require.InDelta(t, tc.expected, client.Value(t.Context(), tc.series), 1e-9)

			samples, err := client.Snapshot(t.Context())
			require.NoError(t, err)

			for _, sample := range samples {
				if sample.Name == tc.series {
					require.Equal(t, tc.expectedCount, sample.Count)
				}
			}
		})
	}
}

func TestMetricsClient_ConcurrentInc(t *testing.T) {
	t.Parallel()

	client := otelsdk.NewMetricsClient()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client.Inc(context.Background(), "hits", int64(1))
		}()
	}
	wg.Wait()

	require.InDelta(t, 50, client.Value(t.Context(), "hits"), 1e-9)
}

func TestMetricsClient_Handler(t *testing.T) {
	t.Parallel()

	client := otelsdk.NewMetricsClient()
	client.Inc(context.Background(), "b", int64(2))
	client.Inc(context.Background(), "a", int64(1))

	rec := httptest.NewRecorder()
	client.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Metrics []otelsdk.Sample `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, []otelsdk.Sample{{Name: "a", Value: 1}, {Name: "b", Value: 2}}, body.Metrics)
}

func TestMetricsClient_Shutdown(t *testing.T) {
	t.Parallel()

	client := otelsdk.NewMetricsClient()
	client.Inc(context.Background(), "hits", int64(1))

	require.NoError(t, client.Shutdown(t.Context()))

	_, err := client.Snapshot(t.Context())
	require.Error(t, err)

	rec := httptest.NewRecorder()
	client.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"failed to collect metrics"}`, rec.Body.String())
}
