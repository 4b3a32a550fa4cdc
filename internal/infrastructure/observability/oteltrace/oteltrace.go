package oteltrace

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"pizzeria-sim/internal/observability"
)

type tracer struct{ t trace.Tracer }

// New returns a tracer backed by the globally installed otel provider.
// Without an exporter configured the spans are no-ops, which is all the
// simulator needs; deployments can install a real provider in main.
func New(name string) observability.Tracer {
	if name == "" {
		name = "pizzeria-sim"
	}
	return &tracer{t: otel.Tracer(name)}
}

func (t *tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.t.Start(ctx, name, trace.WithAttributes(attrs...))
}
