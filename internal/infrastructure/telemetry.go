package infrastructure

import (
	"context"
	"fmt"

	"github.com/architeacher/inventory/internal/config"
	"github.com/architeacher/inventory/pkg/metrics"
	metricsNoop "github.com/architeacher/inventory/pkg/metrics/noop"
	"github.com/architeacher/inventory/pkg/metrics/otelsdk"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.32.0"
	otelTrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type ShutdownFunc func(ctx context.Context) error

// NewTracerProvider exports spans over OTLP/gRPC when traces are enabled and
// an endpoint is configured. Otherwise it returns a noop provider.
func NewTracerProvider(ctx context.Context, cfg config.Telemetry) (otelTrace.TracerProvider, ShutdownFunc, error) {
	if !cfg.Enabled || !cfg.Traces.Enabled || cfg.OTLPEndpoint == "" {
		return NewNoopTracerProvider(), func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("creating OTLP trace exporter: %w", err)
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.Traces.SamplerRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, tp.Shutdown, nil
}

func NewNoopTracerProvider() otelTrace.TracerProvider {
	return noop.NewTracerProvider()
}

// NewMetricsClient records on an SDK meter provider when metrics are enabled
// and on a noop client otherwise.
func NewMetricsClient(ctx context.Context, cfg config.Telemetry) (metrics.Client, error) {
	if !cfg.Metrics.Enabled {
		return metricsNoop.NewMetricsClient(), nil
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return otelsdk.NewMetricsClient(sdkmetric.WithResource(res)), nil
}

func newResource(ctx context.Context, cfg config.Telemetry) (*resource.Resource, error) {
	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	return res, nil
}
