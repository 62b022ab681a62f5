// Package tracing configures OpenTelemetry trace and metric export over
// OTLP/gRPC and provides instrumented HTTP clients for outbound provider
// calls.
package tracing

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/donaldgifford/card-ledger/internal/config"
)

// ShutdownFunc flushes and stops the installed providers.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup installs a global tracer provider exporting to cfg.Endpoint, plus a
// meter provider when cfg.ExportMetrics is set. When tracing is disabled the
// global no-op providers are left in place.
func Setup(ctx context.Context, cfg config.TracingConfig, version string) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return noopShutdown, nil
	}

	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(exporterOptions(cfg, version)...))
	if err != nil {
		return nil, fmt.Errorf("creating OTLP trace exporter: %w", err)
	}

	tp := NewProvider(sdktrace.WithBatcher(exporter), cfg, version)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.ExportMetrics {
		return tp.Shutdown, nil
	}

	metricExporter, err := otlpmetricgrpc.New(ctx, metricExporterOptions(cfg, version)...)
	if err != nil {
		return nil, errors.Join(
			fmt.Errorf("creating OTLP metric exporter: %w", err),
			tp.Shutdown(ctx),
		)
	}
	mp := NewMeterProvider(sdkmetric.NewPeriodicReader(metricExporter), cfg, version)
	otel.SetMeterProvider(mp)

	return func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}

// exporterOptions configures the gRPC connection to the collector. TLS is
// used unless the endpoint is marked insecure.
func exporterOptions(cfg config.TracingConfig, version string) []otlptracegrpc.Option {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithDialOption(grpc.WithUserAgent(cfg.ServiceName + "/" + version)),
	}
	if cfg.Insecure {
		return append(opts, otlptracegrpc.WithInsecure())
	}
	return append(opts, otlptracegrpc.WithTLSCredentials(
		credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12}),
	))
}

func metricExporterOptions(cfg config.TracingConfig, version string) []otlpmetricgrpc.Option {
	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
		otlpmetricgrpc.WithDialOption(grpc.WithUserAgent(cfg.ServiceName + "/" + version)),
	}
	if cfg.Insecure {
		return append(opts, otlpmetricgrpc.WithInsecure())
	}
	return append(opts, otlpmetricgrpc.WithTLSCredentials(
		credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12}),
	))
}

func serviceResource(cfg config.TracingConfig, version string) *resource.Resource {
	return resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", version),
	)
}

// NewMeterProvider builds a meter provider with the service resource that
// collects through reader. Outbound clients from HTTPClient record request
// durations against the global meter provider.
func NewMeterProvider(reader sdkmetric.Reader, cfg config.TracingConfig, version string) *sdkmetric.MeterProvider {
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(serviceResource(cfg, version)),
	)
}

// NewProvider builds a tracer provider with the service resource and a
// parent-based ratio sampler.
func NewProvider(processor sdktrace.TracerProviderOption, cfg config.TracingConfig, version string) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		processor,
		sdktrace.WithResource(serviceResource(cfg, version)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)
}

// HTTPClient returns a client whose requests carry client spans and trace
// context headers. Without options the global provider and propagator apply.
func HTTPClient(timeout time.Duration, opts ...otelhttp.Option) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport, opts...),
	}
}
