package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/AlbaFramework/alba/pkg/router"
)

// Default tracer name for Alba applications.
const defaultTracerName = "alba"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "alba").
	TracerName string

	// Filter determines which routes to trace.
	// Return true to trace the attempt, false to skip.
	// If nil, all attempts are traced.
	Filter func(route *router.RouteDefinition) bool

	// AttributeExtractor extracts custom attributes from the route
	// definition. Called for each traced attempt.
	AttributeExtractor func(route *router.RouteDefinition) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithRouteFilter sets a filter function for routes.
func WithRouteFilter(filter func(route *router.RouteDefinition) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(route *router.RouteDefinition) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// OpenTelemetry creates middleware that traces navigation attempts. The span
// covers the rest of the middleware chain, including the stack mutation when
// the chain proceeds; aborted attempts show up as spans whose duration stops
// at the aborting guard.
//
// The middleware always calls its continuation; it observes, never gates.
func OpenTelemetry(opts ...OTelOption) router.Middleware {
	config := &OTelConfig{
		TracerName: defaultTracerName,
	}
	for _, opt := range opts {
		opt(config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return router.MiddlewareFunc(func(route *router.RouteDefinition, next func(*router.RouteDefinition)) {
		if config.Filter != nil && !config.Filter(route) {
			next(route)
			return
		}

		attrs := []attribute.KeyValue{
			attribute.String("alba.route", route.Path()),
		}
		if config.AttributeExtractor != nil {
			attrs = append(attrs, config.AttributeExtractor(route)...)
		}

		_, span := config.tracer.Start(context.Background(), "router.navigate",
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		next(route)
	})
}
