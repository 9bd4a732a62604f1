// Package otelsdk records metrics on an OpenTelemetry SDK meter provider and
// serves the collected data points as JSON.
package otelsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/architeacher/inventory/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

const meterName = "github.com/architeacher/inventory"

var _ metrics.Client = (*MetricsClient)(nil)

type (
	MetricsClient struct {
		provider *sdkmetric.MeterProvider
		reader   *sdkmetric.ManualReader
		meter    metric.Meter

		mu         sync.Mutex
		counters   map[string]metric.Int64Counter
		histograms map[string]metric.Float64Histogram
	}

	// Sample is one collected data point. Counters report their sum;
	// histograms report the sum and count of recorded values.
	Sample struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
		Count uint64  `json:"count,omitempty"`
	}
)

// NewMetricsClient builds a meter provider read on demand by Handler. opts
// are applied after the manual reader, e.g. sdkmetric.WithResource.
func NewMetricsClient(opts ...sdkmetric.Option) *MetricsClient {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(append([]sdkmetric.Option{sdkmetric.WithReader(reader)}, opts...)...)

	return &MetricsClient{
		provider:   provider,
		reader:     reader,
		meter:      provider.Meter(meterName),
		counters:   make(map[string]metric.Int64Counter),
		histograms: make(map[string]metric.Float64Histogram),
	}
}

func (c *MetricsClient) Inc(ctx context.Context, key string, value any, attributes ...attribute.KeyValue) {
	opt := metric.WithAttributes(attributes...)

	switch v := value.(type) {
	case int:
		c.counter(key).Add(ctx, int64(v), opt)
	case int64:
		c.counter(key).Add(ctx, v, opt)
	case uint64:
		c.counter(key).Add(ctx, int64(v), opt)
	case float64:
		c.histogram(key).Record(ctx, v, opt)
	}
}

func (c *MetricsClient) counter(key string) metric.Int64Counter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if counter, ok := c.counters[key]; ok {
		return counter
	}

	counter, err := metrics.RegisterInt64Counter(c.meter, describe(key), key)
	if err != nil {
		counter = metricnoop.Int64Counter{}
	}

	c.counters[key] = counter

	return counter
}

func (c *MetricsClient) histogram(key string) metric.Float64Histogram {
	c.mu.Lock()
	defer c.mu.Unlock()

	if histogram, ok := c.histograms[key]; ok {
		return histogram
	}

	histogram, err := metrics.RegisterFloat64Histogram(c.meter, describe(key), key)
	if err != nil {
		histogram = metricnoop.Float64Histogram{}
	}

	c.histograms[key] = histogram

	return histogram
}

// Snapshot collects every data point, sorted by series name. A series is
// named key{attr=value,...} with attributes in key order.
func (c *MetricsClient) Snapshot(ctx context.Context) ([]Sample, error) {
	var rm metricdata.ResourceMetrics
	if err := c.reader.Collect(ctx, &rm); err != nil {
		return nil, err
	}

	samples := make([]Sample, 0)

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					samples = append(samples, Sample{
						Name:  seriesName(m.Name, dp.Attributes),
						Value: float64(dp.Value),
					})
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					samples = append(samples, Sample{
						Name:  seriesName(m.Name, dp.Attributes),
						Value: dp.Sum,
						Count: dp.Count,
					})
				}
			}
		}
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Name < samples[j].Name
	})

	return samples, nil
}

// Value returns the collected value of one series, or zero when absent.
func (c *MetricsClient) Value(ctx context.Context, name string) float64 {
	samples, err := c.Snapshot(ctx)
	if err != nil {
		return 0
	}

	for _, sample := range samples {
		if sample.Name == name {
			return sample.Value
		}
	}

	return 0
}

func (c *MetricsClient) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		samples, err := c.Snapshot(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "failed to collect metrics"})

			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{"metrics": samples})
	})
}

func (c *MetricsClient) Shutdown(ctx context.Context) error {
	return c.provider.Shutdown(ctx)
}

func describe(key string) metrics.Descriptor {
	switch {
	case strings.HasSuffix(key, "_seconds"), strings.HasSuffix(key, ".duration"):
		return metrics.Descriptor{Unit: "s"}
	case strings.HasSuffix(key, "_bytes"):
		return metrics.Descriptor{Unit: "By"}
	default:
		return metrics.Descriptor{Unit: "1"}
	}
}

func seriesName(key string, set attribute.Set) string {
	if set.Len() == 0 {
		return key
	}

	labels := make([]string, 0, set.Len())
	for iter := set.Iter(); iter.Next(); {
		attr := iter.Attribute()
		labels = append(labels, string(attr.Key)+"="+attr.Value.Emit())
	}

	return key + "{" + strings.Join(labels, ",") + "}"
}
