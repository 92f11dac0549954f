package ports

import "context"

// Span is a unit of traced work.
type Span interface {
	// End completes the span.
	End()
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
	// RecordError records err on the span and marks it failed.
	RecordError(err error)
}

// Tracer starts spans around application operations.
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}
