package obs

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/dframe/version"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name reported for the embedding service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.Short(),
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the metric instruments recorded per pipeline run.
type Metrics struct {
	runTotal    metric.Int64Counter
	runDuration metric.Float64Histogram
	rowsTotal   metric.Int64Counter
	errorTotal  metric.Int64Counter
}

// NewMetrics creates the engine's metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	runTotal, err := meter.Int64Counter("run.total",
		metric.WithDescription("Total number of pipeline runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating run.total counter: %w", err)
	}

	runDuration, err := meter.Float64Histogram("run.duration",
		metric.WithDescription("Duration of pipeline runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating run.duration histogram: %w", err)
	}

	rowsTotal, err := meter.Int64Counter("run.rows",
		metric.WithDescription("Total rows scanned across runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating run.rows counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("run.errors",
		metric.WithDescription("Total failed runs by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating run.errors counter: %w", err)
	}

	return &Metrics{
		runTotal:    runTotal,
		runDuration: runDuration,
		rowsTotal:   rowsTotal,
		errorTotal:  errorTotal,
	}, nil
}

// RecordRun records a completed or failed pipeline run.
func (m *Metrics) RecordRun(ctx context.Context, status string, rows int64, workers int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("status", status),
		attribute.Int("workers", workers),
	)
	m.runTotal.Add(ctx, 1, attrs)
	m.rowsTotal.Add(ctx, rows, attrs)
	m.runDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordError records a failed run by error code.
func (m *Metrics) RecordError(ctx context.Context, code string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
	))
}
