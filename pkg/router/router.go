package router

import (
	"log/slog"
	"sync"
)

// Config configures a Router. Routes and NotFoundPath are required;
// everything else has a sensible default.
type Config struct {
	// Routes are the route definitions in priority order. Earlier
	// definitions win when patterns overlap.
	Routes []*RouteDefinition

	// NotFoundPath is resolved whenever no definition matches a requested
	// path. It must itself resolve to one of Routes; construction fails
	// otherwise.
	NotFoundPath string

	// InitialPath supplies the first path pushed at construction.
	// Default: "/".
	InitialPath func() string

	// Scheduler defers event delivery to the host's frame boundary.
	// Default: deliver immediately after each commit.
	Scheduler FrameScheduler

	// HostExit is invoked when a pop would empty the stack; the stack is
	// left untouched and the host decides how to leave the application.
	// Default: no-op.
	HostExit func()

	// Logger receives debug/warn output. Default: no logging.
	Logger *slog.Logger

	// EventBuffer is the per-subscriber event channel buffer.
	// Default: 16.
	EventBuffer int
}

// Router is the navigation state machine. It owns the active route stack
// and the index counter; every mutation goes through one of the exported
// operations, which gate forward navigation through the route's middleware
// chain and emit a RouterEvent after each committed change.
//
// The execution model is cooperative and synchronous: a mutation runs to
// completion before returning. The internal lock exists for read-side
// consumers on other goroutines (inspectors, host bridges), not to support
// concurrent mutation.
type Router struct {
	registry *registry
	notifier *notifier
	hostExit func()
	logger   *slog.Logger

	mu        sync.RWMutex
	stack     routeStack
	nextIndex int

	closeOnce sync.Once
}

// New creates a router, validates its configuration and pushes the initial
// path through the regular gated push. An unresolvable not-found path is a
// configuration error.
func New(cfg *Config) (*Router, error) {
	reg, err := newRegistry(cfg.Routes, cfg.NotFoundPath)
	if err != nil {
		return nil, err
	}

	scheduler := cfg.Scheduler
	if scheduler == nil {
		scheduler = immediateScheduler{}
	}
	hostExit := cfg.HostExit
	if hostExit == nil {
		hostExit = func() {}
	}

	r := &Router{
		registry: reg,
		notifier: newNotifier(scheduler, cfg.Logger, cfg.EventBuffer),
		hostExit: hostExit,
		logger:   cfg.Logger,
	}

	initial := "/"
	if cfg.InitialPath != nil {
		initial = cfg.InitialPath()
	}
	if outcome := r.push(initial, ""); outcome == Aborted && r.logger != nil {
		r.logger.Warn("initial navigation aborted by middleware; stack is empty",
			"path", initial)
	}
	return r, nil
}

// Push resolves path, runs the route's middleware chain and, when the chain
// proceeds, appends a new entry with a freshly allocated index. id is an
// optional listener-matching identity; pass "" for none.
func (r *Router) Push(path, id string) {
	r.push(path, id)
}

func (r *Router) push(path, id string) Outcome {
	def := r.registry.resolve(path)
	outcome := runChain(def, func(d *RouteDefinition) {
		r.mu.Lock()
		route := r.newEntryLocked(d, path, id)
		r.stack.push(route)
		r.mu.Unlock()
		r.committed("push", route)
		r.notifier.emit(&PushEvent{Route: route})
	})
	if outcome == Aborted {
		r.aborted("push", path)
	}
	return outcome
}

// Replace swaps the current top entry for a new one resolved from path; the
// stack length is unchanged. The stack must be non-empty: calling Replace on
// an empty stack is a caller error and panics.
func (r *Router) Replace(path, id string) {
	def := r.registry.resolve(path)
	outcome := runChain(def, func(d *RouteDefinition) {
		r.mu.Lock()
		if r.stack.len() == 0 {
			r.mu.Unlock()
			panic("router: replace on empty stack")
		}
		old := r.stack.removeTop()
		route := r.newEntryLocked(d, path, id)
		r.stack.push(route)
		r.mu.Unlock()
		r.committed("replace", route)
		r.notifier.emit(&ReplaceEvent{Route: route, Previous: old})
	})
	if outcome == Aborted {
		r.aborted("replace", path)
	}
}

// RemoveAllAndPush clears the whole stack and pushes a new entry as the
// sole element. The removals are silent; only the final push is observable
// as an event.
func (r *Router) RemoveAllAndPush(path, id string) {
	r.RemoveUntilAndPush(func(*ActiveRoute) bool { return false }, path, id)
}

// RemoveUntilAndPush removes entries from the top until predicate accepts
// one (that entry stays) or the stack is exhausted, then pushes a new entry
// resolved from path. The removals are silent; only the final push is
// observable as an event.
func (r *Router) RemoveUntilAndPush(predicate func(*ActiveRoute) bool, path, id string) {
	def := r.registry.resolve(path)
	outcome := runChain(def, func(d *RouteDefinition) {
		r.mu.Lock()
		r.stack.removeWhile(predicate)
		route := r.newEntryLocked(d, path, id)
		r.stack.push(route)
		r.mu.Unlock()
		r.committed("push", route)
		r.notifier.emit(&PushEvent{Route: route})
	})
	if outcome == Aborted {
		r.aborted("push", path)
	}
}

// Pop removes the top entry and emits a PopEvent carrying result. Pop is
// not gated by middleware: only forward navigation is guarded. When the top
// entry is the only one, the stack is left untouched, no event fires and
// the configured HostExit hook runs instead — the stack is never emptied by
// a pop. Calling Pop on an empty stack is a caller error and panics.
func (r *Router) Pop(result any) {
	r.mu.Lock()
	switch r.stack.len() {
	case 0:
		r.mu.Unlock()
		panic("router: pop on empty stack")
	case 1:
		r.mu.Unlock()
		r.hostExit()
		return
	}
	removed := r.stack.removeTop()
	r.mu.Unlock()
	r.committed("pop", removed)
	r.notifier.emit(&PopEvent{Route: removed, Result: result})
}

// PopByHostReference bridges a host navigator's imperative back-gesture
// into the stack. name is matched against concrete paths, newest first;
// the matched entry is then popped with Pop semantics (sole entry means
// HostExit, otherwise removal plus a PopEvent). Unknown names are ignored.
func (r *Router) PopByHostReference(name string, result any) {
	r.mu.Lock()
	i, entry := r.stack.findByPath(name)
	if entry == nil {
		r.mu.Unlock()
		if r.logger != nil {
			r.logger.Warn("host pop reference matches no active route", "name", name)
		}
		return
	}
	if r.stack.len() == 1 {
		r.mu.Unlock()
		r.hostExit()
		return
	}
	removed := r.stack.removeAt(i)
	r.mu.Unlock()
	r.committed("pop", removed)
	r.notifier.emit(&PopEvent{Route: removed, Result: result})
}

// Remove deletes the most recent entry whose concrete path equals path,
// regardless of its position. This is a direct administrative edit: no
// middleware runs and no event fires. Nothing happens when no entry
// matches.
func (r *Router) Remove(path string) {
	r.mu.Lock()
	i, entry := r.stack.findByPath(path)
	if entry == nil {
		r.mu.Unlock()
		if r.logger != nil {
			r.logger.Debug("remove matches no active route", "path", path)
		}
		return
	}
	r.stack.removeAt(i)
	r.mu.Unlock()
	if r.logger != nil {
		r.logger.Debug("route removed", "path", path, "index", entry.Index())
	}
}

// newEntryLocked allocates the next index and builds the stack entry.
func (r *Router) newEntryLocked(def *RouteDefinition, path, id string) *ActiveRoute {
	index := r.nextIndex
	r.nextIndex++
	return newActiveRoute(def, path, index, id)
}

// Top returns the most recent entry, or nil when the stack is empty.
func (r *Router) Top() *ActiveRoute {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stack.top()
}

// CurrentPath answers the host navigator's "what is on top" question.
// Returns "" when the stack is empty.
func (r *Router) CurrentPath() string {
	if top := r.Top(); top != nil {
		return top.Path()
	}
	return ""
}

// Depth returns the number of entries on the stack.
func (r *Router) Depth() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stack.len()
}

// ActiveRoutes returns a copy of the stack, oldest entry first.
func (r *Router) ActiveRoutes() []*ActiveRoute {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stack.all()
}

// Definitions returns the registered route definitions in priority order.
func (r *Router) Definitions() []*RouteDefinition {
	out := make([]*RouteDefinition, len(r.registry.definitions))
	copy(out, r.registry.definitions)
	return out
}

// Subscribe registers an event channel on the router's event stream. The
// channel observes the most recently delivered event immediately when one
// exists. The cancel func detaches the channel; Close detaches every
// subscriber.
func (r *Router) Subscribe() (<-chan RouterEvent, func()) {
	return r.notifier.subscribe()
}

// AddListener attaches a callback listener and returns its detach func.
func (r *Router) AddListener(l *Listener) func() {
	return r.notifier.addListener(l)
}

// Close tears the router down, permanently closing the event stream.
// Close is idempotent; mutation operations must not be called afterwards.
func (r *Router) Close() {
	r.closeOnce.Do(func() {
		r.notifier.close()
		if r.logger != nil {
			r.logger.Debug("router closed")
		}
	})
}

func (r *Router) committed(op string, route *ActiveRoute) {
	if r.logger != nil {
		r.logger.Debug("navigation committed",
			"op", op, "path", route.Path(), "index", route.Index())
	}
}

func (r *Router) aborted(op, path string) {
	if r.logger != nil {
		r.logger.Debug("navigation aborted by middleware", "op", op, "path", path)
	}
}
