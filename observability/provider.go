package observability

import (
	"context"
	stderrors "errors"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Provider bundles the tracer and instruments handed to the solver.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics

	shutdown []func(context.Context) error
}

// NewNoopProvider returns a provider that records nothing.
func NewNoopProvider() *Provider {
	return &Provider{
		Tracer:  noop.NewTracerProvider().Tracer(InstrumentationName),
		Metrics: NewNoopMetrics(),
	}
}

// Setup starts OTLP export when cfg.Enabled and returns the module tracer
// and instruments. With export disabled it returns a no-op provider.
func Setup(ctx context.Context, cfg Config) (*Provider, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Enabled {
		return NewNoopProvider(), nil
	}

	tp, err := InitTracer(ctx, cfg)
	if err != nil {
		return nil, err
	}
	mp, err := InitMeter(ctx, cfg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}
	metrics, err := NewMetrics(mp.Meter(InstrumentationName))
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, err
	}

	return &Provider{
		Tracer:   tp.Tracer(InstrumentationName),
		Metrics:  metrics,
		shutdown: []func(context.Context) error{mp.Shutdown, tp.Shutdown},
	}, nil
}

// Shutdown flushes and stops exporters. Safe on no-op providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range p.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	p.shutdown = nil
	return stderrors.Join(errs...)
}
