package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/almanac/errors"
	"github.com/kbukum/almanac/logger"
)

// Instrument names.
const (
	MetricRuns        = "almanac.runs"
	MetricSeeds       = "almanac.seeds"
	MetricSegments    = "almanac.segments"
	MetricErrors      = "almanac.errors"
	MetricRunDuration = "almanac.run.duration"
)

// InitMeter builds a periodic OTLP/HTTP meter provider and installs it
// globally. Callers must Shutdown the returned provider.
func InitMeter(ctx context.Context, cfg Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("component", "metric exporter")
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("component", "resource")
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("meter initialized", logger.Fields(
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))
	return mp, nil
}

// Meter returns the module meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(InstrumentationName)
}

// Metrics holds the solver instruments.
type Metrics struct {
	runs        metric.Int64Counter
	seeds       metric.Int64Counter
	segments    metric.Int64Counter
	errors      metric.Int64Counter
	runDuration metric.Float64Histogram
}

// NewMetrics creates the instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	var (
		m   Metrics
		err error
	)
	if m.runs, err = meter.Int64Counter(MetricRuns,
		metric.WithDescription("Solver runs by mode and status")); err != nil {
		return nil, instrumentErr(MetricRuns, err)
	}
	if m.seeds, err = meter.Int64Counter(MetricSeeds,
		metric.WithDescription("Seed values covered by solved inputs")); err != nil {
		return nil, instrumentErr(MetricSeeds, err)
	}
	if m.segments, err = meter.Int64Counter(MetricSegments,
		metric.WithDescription("Uniform segments produced by range splitting")); err != nil {
		return nil, instrumentErr(MetricSegments, err)
	}
	if m.errors, err = meter.Int64Counter(MetricErrors,
		metric.WithDescription("Failed operations by error code")); err != nil {
		return nil, instrumentErr(MetricErrors, err)
	}
	if m.runDuration, err = meter.Float64Histogram(MetricRunDuration,
		metric.WithDescription("Solver run duration"),
		metric.WithUnit("s")); err != nil {
		return nil, instrumentErr(MetricRunDuration, err)
	}
	return &m, nil
}

// NewNoopMetrics returns instruments that record nothing.
func NewNoopMetrics() *Metrics {
	m, _ := NewMetrics(noop.NewMeterProvider().Meter(InstrumentationName))
	return m
}

func instrumentErr(name string, err error) error {
	return errors.Internal(err).WithDetail("instrument", name)
}

// RecordRun counts a finished run and its duration.
func (m *Metrics) RecordRun(ctx context.Context, mode, status string, d time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("status", status),
	)
	m.runs.Add(ctx, 1, attrs)
	m.runDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("mode", mode)))
}

// RecordSeeds adds n evaluated seeds for part ("points" or "ranges").
func (m *Metrics) RecordSeeds(ctx context.Context, part string, n int64) {
	m.seeds.Add(ctx, n, metric.WithAttributes(attribute.String("part", part)))
}

// RecordSegments adds n produced segments.
func (m *Metrics) RecordSegments(ctx context.Context, n int64) {
	m.segments.Add(ctx, n)
}

// RecordError counts a failure of operation, keyed by the error code.
func (m *Metrics) RecordError(ctx context.Context, operation string, err error) {
	code := string(errors.ErrCodeInternal)
	if appErr, ok := errors.AsAppError(err); ok {
		code = string(appErr.Code)
	}
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("code", code),
	))
}
