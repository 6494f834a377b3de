package router

// Listener receives committed navigation events for routes it watches.
// An event matches when the affected route's concrete path equals one of
// Paths, or its id equals one of IDs. A listener with no Paths and no IDs
// watches every route.
//
// Callbacks run at event-delivery time, after the frame the mutation
// happened in has committed. Nil callbacks are skipped.
type Listener struct {
	Paths []string
	IDs   []string

	OnPush    func(*PushEvent)
	OnPop     func(*PopEvent)
	OnReplace func(*ReplaceEvent)
}

func (l *Listener) matches(route *ActiveRoute) bool {
	if len(l.Paths) == 0 && len(l.IDs) == 0 {
		return true
	}
	for _, p := range l.Paths {
		if route.Path() == p {
			return true
		}
	}
	if route.ID() == "" {
		return false
	}
	for _, id := range l.IDs {
		if route.ID() == id {
			return true
		}
	}
	return false
}

func (l *Listener) notify(ev RouterEvent) {
	if !l.matches(ev.AffectedRoute()) {
		return
	}
	switch ev := ev.(type) {
	case *PushEvent:
		if l.OnPush != nil {
			l.OnPush(ev)
		}
	case *PopEvent:
		if l.OnPop != nil {
			l.OnPop(ev)
		}
	case *ReplaceEvent:
		if l.OnReplace != nil {
			l.OnReplace(ev)
		}
	}
}
