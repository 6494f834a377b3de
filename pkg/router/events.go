package router

// RouterEvent is a notification of a committed stack mutation. It is a
// sealed union over *PushEvent, *PopEvent and *ReplaceEvent; consumers
// dispatch with an exhaustive type switch:
//
//	switch ev := ev.(type) {
//	case *router.PushEvent:
//	case *router.PopEvent:
//	case *router.ReplaceEvent:
//	}
type RouterEvent interface {
	// AffectedRoute returns the entry the mutation acted on: the appended
	// entry for a push or replace, the removed entry for a pop.
	AffectedRoute() *ActiveRoute

	routerEvent()
}

// PushEvent reports a new entry appended to the stack.
type PushEvent struct {
	Route *ActiveRoute
}

// PopEvent reports an entry removed by pop, carrying the result value the
// popping caller handed back.
type PopEvent struct {
	Route  *ActiveRoute
	Result any
}

// ReplaceEvent reports the top entry swapped for a new one.
type ReplaceEvent struct {
	Route    *ActiveRoute
	Previous *ActiveRoute
}

func (e *PushEvent) AffectedRoute() *ActiveRoute    { return e.Route }
func (e *PopEvent) AffectedRoute() *ActiveRoute     { return e.Route }
func (e *ReplaceEvent) AffectedRoute() *ActiveRoute { return e.Route }

func (*PushEvent) routerEvent()    {}
func (*PopEvent) routerEvent()     {}
func (*ReplaceEvent) routerEvent() {}
