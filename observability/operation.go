package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Operation is one traced step of a run, e.g. parsing or part 2.
type Operation struct {
	name    string
	span    trace.Span
	metrics *Metrics
	start   time.Time
	// outermost is set when no other Operation is open in the context.
	outermost bool
}

type operationKey struct{}

// Start opens a span named name on p's tracer. Operations started from the
// returned context are nested inside this one.
func (p *Provider) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, *Operation) {
	_, nested := ctx.Value(operationKey{}).(*Operation)
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	op := &Operation{name: name, span: span, metrics: p.Metrics, start: time.Now(), outermost: !nested}
	return context.WithValue(ctx, operationKey{}, op), op
}

// Span exposes the underlying span for extra attributes.
func (o *Operation) Span() trace.Span { return o.span }

// SetAttributes adds attributes to the span.
func (o *Operation) SetAttributes(attrs ...attribute.KeyValue) {
	o.span.SetAttributes(attrs...)
}

// End closes the span. A non-nil err marks the span failed; only the
// outermost operation counts it, so an error passed up through nested
// operations is recorded once.
func (o *Operation) End(ctx context.Context, err error) {
	if err != nil {
		RecordError(o.span, err)
		if o.outermost && o.metrics != nil {
			o.metrics.RecordError(ctx, o.name, err)
		}
	}
	o.span.End()
}

// Duration returns the elapsed time since Start.
func (o *Operation) Duration() time.Duration {
	return time.Since(o.start)
}
