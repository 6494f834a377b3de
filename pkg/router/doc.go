// Package router implements a declarative navigation controller for
// tree-based UIs.
//
// The router maintains an ordered stack of active routes, resolves path
// strings against an ordered list of route definitions, gates every forward
// navigation through a composable middleware chain, and broadcasts a typed
// event after every committed mutation.
//
// # Route Definitions
//
// Routes are registered once, at construction, in priority order. The first
// definition whose matcher accepts a path wins; paths nothing matches resolve
// to the configured not-found definition:
//
//	routes := []*router.RouteDefinition{
//	    router.NewRouteDefinition("/", homeFactory),
//	    router.NewRouteDefinition("/settings", settingsFactory,
//	        router.WithMiddleware(func() []router.Middleware {
//	            return []router.Middleware{authGuard()}
//	        })),
//	    router.NewRouteDefinition("/not-found", notFoundFactory),
//	}
//
//	r, err := router.New(&router.Config{
//	    Routes:       routes,
//	    NotFoundPath: "/not-found",
//	})
//
// # Middleware
//
// Middleware is a guard, not an error reporter. Each middleware receives the
// resolved definition and a continuation; invoking the continuation hands
// control to the next middleware (or commits the mutation when it is last),
// while returning without invoking it abandons the attempt with no error, no
// event and no stack change.
//
// # Events
//
// Committed mutations emit PushEvent, PopEvent or ReplaceEvent on a hot
// replay-latest stream. Delivery is deferred through a FrameScheduler so
// subscribers observe a settled tree; hosts with a render loop install a
// FrameQueue and call Flush once per frame.
//
// # Restoration
//
// The stack can be projected to a list of RestorablePageInformation records
// and rebuilt from one after a process restart. Restoration re-resolves each
// recorded path, preserves indices and ids, resynchronizes the index counter,
// and runs no middleware and emits no events.
package router
