package router

// PageFactory produces the UI content for a resolved route. The returned
// value is opaque to the router; host adapters decide how to mount and
// render it.
type PageFactory func(route *ActiveRoute) any

// Matcher reports whether a concrete path satisfies a route definition.
// Pattern syntax is the host's concern; the router only consumes the
// boolean answer.
type Matcher func(path string) bool

// MiddlewareFactory builds the middleware list for one navigation attempt.
// It is invoked once per attempt, so middleware instances are never shared
// between attempts and cannot leak state from one navigation to the next.
type MiddlewareFactory func() []Middleware

// Middleware gates a navigation attempt before the stack mutates.
// Calling next hands control to the following middleware, or commits the
// mutation when this middleware is last in the chain. Returning without
// calling next silently abandons the attempt: no error, no event, no
// stack change.
type Middleware interface {
	Handle(route *RouteDefinition, next func(*RouteDefinition))
}

// MiddlewareFunc is a function adapter for Middleware.
type MiddlewareFunc func(route *RouteDefinition, next func(*RouteDefinition))

// Handle implements Middleware.
func (f MiddlewareFunc) Handle(route *RouteDefinition, next func(*RouteDefinition)) {
	f(route, next)
}

// RouteDefinition is a static, registered mapping from a path pattern to
// content and optional middleware. Definitions are immutable after
// construction and shared read-only between the registry and every
// ActiveRoute that references them.
type RouteDefinition struct {
	path       string
	matcher    Matcher
	factory    PageFactory
	middleware MiddlewareFactory
}

// RouteOption configures a RouteDefinition at construction.
type RouteOption func(*RouteDefinition)

// WithMatcher overrides the default exact-equality path matcher.
func WithMatcher(m Matcher) RouteOption {
	return func(d *RouteDefinition) {
		d.matcher = m
	}
}

// WithMiddleware sets the middleware factory for the definition.
func WithMiddleware(factory MiddlewareFactory) RouteOption {
	return func(d *RouteDefinition) {
		d.middleware = factory
	}
}

// NewRouteDefinition creates an immutable route definition.
// Without options the definition matches exactly its own path.
func NewRouteDefinition(path string, factory PageFactory, opts ...RouteOption) *RouteDefinition {
	d := &RouteDefinition{
		path:    path,
		factory: factory,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Path returns the definition's path pattern.
func (d *RouteDefinition) Path() string {
	return d.path
}

// Match reports whether the concrete path satisfies this definition.
func (d *RouteDefinition) Match(path string) bool {
	if d.matcher != nil {
		return d.matcher(path)
	}
	return d.path == path
}

// buildMiddleware instantiates a fresh middleware chain for one attempt.
func (d *RouteDefinition) buildMiddleware() []Middleware {
	if d.middleware == nil {
		return nil
	}
	return d.middleware()
}
