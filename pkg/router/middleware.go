package router

// Outcome is the internal result of a middleware pipeline run. Externally an
// aborted attempt is indistinguishable from a no-op; the tagged outcome
// exists so the router (and tests) can observe it without an error value.
type Outcome int

const (
	// Aborted means some middleware returned without calling its
	// continuation; the stack was not touched.
	Aborted Outcome = iota

	// Proceeded means the chain reached its terminal continuation and the
	// mutation was committed.
	Proceeded
)

// String returns the outcome name for logging.
func (o Outcome) String() string {
	if o == Proceeded {
		return "proceeded"
	}
	return "aborted"
}

// compose builds a single continuation from a middleware list and a terminal
// continuation. Middleware executes in order (first to last), with the
// terminal at the end.
func compose(middleware []Middleware, terminal func(*RouteDefinition)) func(*RouteDefinition) {
	chain := terminal
	for i := len(middleware) - 1; i >= 0; i-- {
		m := middleware[i]
		next := chain
		chain = func(d *RouteDefinition) {
			m.Handle(d, next)
		}
	}
	return chain
}

// runChain instantiates the definition's middleware afresh and executes the
// composed chain with onProceed as the terminal continuation. The run is
// fully synchronous: by the time runChain returns, either onProceed has
// executed or the attempt was abandoned.
func runChain(def *RouteDefinition, onProceed func(*RouteDefinition)) Outcome {
	outcome := Aborted
	terminal := func(d *RouteDefinition) {
		outcome = Proceeded
		if onProceed != nil {
			onProceed(d)
		}
	}
	compose(def.buildMiddleware(), terminal)(def)
	return outcome
}

// Chain combines multiple middleware into one, preserving order.
func Chain(middleware ...Middleware) Middleware {
	return MiddlewareFunc(func(route *RouteDefinition, next func(*RouteDefinition)) {
		compose(middleware, next)(route)
	})
}

// Skip runs next directly when condition holds, bypassing mw.
func Skip(condition func(*RouteDefinition) bool, mw Middleware) Middleware {
	return MiddlewareFunc(func(route *RouteDefinition, next func(*RouteDefinition)) {
		if condition(route) {
			next(route)
			return
		}
		mw.Handle(route, next)
	})
}

// Only runs mw solely when condition holds, passing through otherwise.
func Only(condition func(*RouteDefinition) bool, mw Middleware) Middleware {
	return MiddlewareFunc(func(route *RouteDefinition, next func(*RouteDefinition)) {
		if !condition(route) {
			next(route)
			return
		}
		mw.Handle(route, next)
	})
}
