// Package observability wires OpenTelemetry tracing and metrics for solver
// runs.
//
// Export is off by default; Setup then returns no-op providers. When enabled
// it starts OTLP/HTTP trace and metric exporters:
//
//	p, err := observability.Setup(ctx, cfg.Observability)
//	defer p.Shutdown(ctx)
//
//	ctx, op := p.Start(ctx, observability.SpanPart2)
//	defer op.End(ctx, err)
package observability
