// Package middleware provides observability middleware for Alba routers.
//
// This package includes:
//   - Prometheus metrics for navigation attempts and committed transitions
//   - OpenTelemetry tracing for navigation attempts
//
// # Prometheus
//
// The Prometheus middleware counts navigation attempts and measures chain
// duration per route pattern. Attach it through a shared middleware factory:
//
//	mw := middleware.Prometheus()
//	def := router.NewRouteDefinition("/settings", factory,
//	    router.WithMiddleware(func() []router.Middleware {
//	        return []router.Middleware{mw, authGuard()}
//	    }))
//
// Committed transitions (push/pop/replace) are not visible from inside the
// chain; Transitions observes them from the event stream instead:
//
//	detach := middleware.Transitions(r)
//	defer detach()
//
// # OpenTelemetry
//
// The OpenTelemetry middleware opens a span around the remainder of the
// middleware chain, carrying the route pattern:
//
//	middleware.OpenTelemetry(
//	    middleware.WithTracerName("my-app"),
//	)
package middleware
