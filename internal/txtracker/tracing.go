package txtracker

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// WithTracer attaches a tracer used to span the sweep performed by every
// GetRequestable call, the same way internal/metamorph.WithTracer hands a
// tracer to a component that otherwise takes no context.Context.
func WithTracer(t trace.Tracer) Option {
	return func(tr *Tracker) { tr.tracer = t }
}

func (t *Tracker) startSweepSpan() trace.Span {
	if t.tracer == nil {
		return nil
	}
	_, span := t.tracer.Start(context.Background(), "txtracker.sweep")
	return span
}

func endSweepSpan(span trace.Span) {
	if span != nil {
		span.End()
	}
}
