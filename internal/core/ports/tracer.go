package ports

import "context"

// SpanConfig holds configuration applied by SpanOptions.
type SpanConfig struct {
	// Attributes set at span start.
	Attributes map[string]string
}

// SpanOption configures a span at start time.
type SpanOption func(*SpanConfig)

// WithAttribute attaches a key/value attribute at span start.
func WithAttribute(key, value string) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = make(map[string]string)
		}
		c.Attributes[key] = value
	}
}

// Span represents one traced unit of work.
type Span interface {
	// End completes the span.
	End()

	// RecordError records an error against the span and marks it failed.
	RecordError(err error)

	// SetAttribute sets a key/value attribute on the span.
	SetAttribute(key, value string)
}

// Tracer creates spans around operations. The telemetry adapter bridges
// spans to the active progress renderer, so every traced operation is also
// a user-visible progress scope.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start begins a new span and returns the derived context.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}
