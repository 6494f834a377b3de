package router

import (
	"errors"
	"testing"
)

// contentFor returns a PageFactory producing a recognizable marker value.
func contentFor(name string) PageFactory {
	return func(*ActiveRoute) any { return name }
}

// blockingMiddleware never calls its continuation.
func blockingMiddleware() Middleware {
	return MiddlewareFunc(func(*RouteDefinition, func(*RouteDefinition)) {})
}

// passMiddleware calls its continuation and counts invocations.
type passMiddleware struct {
	calls int
}

func (m *passMiddleware) Handle(route *RouteDefinition, next func(*RouteDefinition)) {
	m.calls++
	next(route)
}

func testConfig() *Config {
	return &Config{
		Routes: []*RouteDefinition{
			NewRouteDefinition("/", contentFor("home")),
			NewRouteDefinition("/a", contentFor("a")),
			NewRouteDefinition("/b", contentFor("b")),
			NewRouteDefinition("/c", contentFor("c")),
			NewRouteDefinition("/not-found", contentFor("not-found")),
		},
		NotFoundPath: "/not-found",
	}
}

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	r, err := New(testConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(r.Close)
	return r
}

func paths(r *Router) []string {
	var out []string
	for _, entry := range r.ActiveRoutes() {
		out = append(out, entry.Path())
	}
	return out
}

func TestNewPushesInitialPath(t *testing.T) {
	r := newTestRouter(t)

	if got := r.Depth(); got != 1 {
		t.Fatalf("Depth() = %d, want 1", got)
	}
	top := r.Top()
	if top.Path() != "/" {
		t.Errorf("Top().Path() = %q, want %q", top.Path(), "/")
	}
	if top.Index() != 0 {
		t.Errorf("Top().Index() = %d, want 0", top.Index())
	}
	if top.Content() != "home" {
		t.Errorf("Top().Content() = %v, want %q", top.Content(), "home")
	}
}

func TestNewCustomInitialPath(t *testing.T) {
	cfg := testConfig()
	cfg.InitialPath = func() string { return "/a" }
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer r.Close()

	if got := r.CurrentPath(); got != "/a" {
		t.Errorf("CurrentPath() = %q, want %q", got, "/a")
	}
}

func TestNewRejectsUnresolvableNotFound(t *testing.T) {
	_, err := New(&Config{
		Routes: []*RouteDefinition{
			NewRouteDefinition("/", contentFor("home")),
		},
		NotFoundPath: "/missing",
	})
	if err == nil {
		t.Fatal("New() error = nil, want configuration error")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("New() error = %v, want *ConfigError", err)
	}
	if cfgErr.Field != "NotFoundPath" {
		t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, "NotFoundPath")
	}
}

func TestNewRejectsEmptyRoutes(t *testing.T) {
	_, err := New(&Config{NotFoundPath: "/not-found"})
	if err == nil {
		t.Fatal("New() error = nil, want configuration error")
	}
}

func TestPushAppendsWithIncreasingIndex(t *testing.T) {
	r := newTestRouter(t)

	r.Push("/a", "")
	r.Push("/b", "")

	got := paths(r)
	want := []string{"/", "/a", "/b"}
	if !equalStrings(got, want) {
		t.Fatalf("stack = %v, want %v", got, want)
	}
	routes := r.ActiveRoutes()
	for i := 1; i < len(routes); i++ {
		if routes[i].Index() <= routes[i-1].Index() {
			t.Errorf("index at %d = %d, not greater than %d",
				i, routes[i].Index(), routes[i-1].Index())
		}
	}
}

func TestPushUnknownPathResolvesToNotFound(t *testing.T) {
	r := newTestRouter(t)

	r.Push("/nope", "")

	top := r.Top()
	if top.Definition().Path() != "/not-found" {
		t.Errorf("Top().Definition().Path() = %q, want %q", top.Definition().Path(), "/not-found")
	}
	// The concrete path keeps what the caller asked for.
	if top.Path() != "/nope" {
		t.Errorf("Top().Path() = %q, want %q", top.Path(), "/nope")
	}
}

func TestPushBlockedByMiddlewareLeavesStackUnchanged(t *testing.T) {
	cfg := testConfig()
	cfg.Routes = append(cfg.Routes,
		NewRouteDefinition("/guarded", contentFor("guarded"),
			WithMiddleware(func() []Middleware {
				return []Middleware{blockingMiddleware()}
			})))
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer r.Close()

	before := r.Depth()
	top := r.Top()

	r.Push("/guarded", "")

	if r.Depth() != before {
		t.Errorf("Depth() = %d, want %d", r.Depth(), before)
	}
	if r.Top() != top {
		t.Error("top entry changed by an aborted push")
	}

	// The index counter must be untouched as well: the next successful
	// push gets the next sequential index.
	r.Push("/a", "")
	if got := r.Top().Index(); got != top.Index()+1 {
		t.Errorf("next index = %d, want %d", got, top.Index()+1)
	}
}

func TestReplaceKeepsStackLength(t *testing.T) {
	r := newTestRouter(t)
	r.Push("/a", "")

	r.Replace("/b", "")

	got := paths(r)
	want := []string{"/", "/b"}
	if !equalStrings(got, want) {
		t.Fatalf("stack = %v, want %v", got, want)
	}
}

func TestRemoveAllAndPushLeavesSingleEntry(t *testing.T) {
	r := newTestRouter(t)
	r.Push("/a", "")
	r.Push("/b", "")

	r.RemoveAllAndPush("/c", "")

	got := paths(r)
	want := []string{"/c"}
	if !equalStrings(got, want) {
		t.Fatalf("stack = %v, want %v", got, want)
	}
}

func TestRemoveUntilAndPush(t *testing.T) {
	r := newTestRouter(t)
	r.Push("/a", "")
	r.Push("/b", "")

	r.RemoveUntilAndPush(func(e *ActiveRoute) bool { return e.Path() == "/" }, "/c", "")

	got := paths(r)
	want := []string{"/", "/c"}
	if !equalStrings(got, want) {
		t.Fatalf("stack = %v, want %v", got, want)
	}
}

func TestRemoveUntilAndPushExhaustsStack(t *testing.T) {
	r := newTestRouter(t)
	r.Push("/a", "")

	r.RemoveUntilAndPush(func(*ActiveRoute) bool { return false }, "/c", "")

	got := paths(r)
	want := []string{"/c"}
	if !equalStrings(got, want) {
		t.Fatalf("stack = %v, want %v", got, want)
	}
}

func TestPopRemovesTop(t *testing.T) {
	r := newTestRouter(t)
	r.Push("/a", "")

	r.Pop(nil)

	got := paths(r)
	want := []string{"/"}
	if !equalStrings(got, want) {
		t.Fatalf("stack = %v, want %v", got, want)
	}
}

func TestPopOnRootDelegatesToHostExit(t *testing.T) {
	exited := false
	cfg := testConfig()
	cfg.HostExit = func() { exited = true }
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer r.Close()

	events, cancel := r.Subscribe()
	defer cancel()
	drain(events) // replayed initial push

	r.Pop(nil)

	if !exited {
		t.Error("HostExit was not invoked")
	}
	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", r.Depth())
	}
	if n := len(drain(events)); n != 0 {
		t.Errorf("pop on root emitted %d events, want 0", n)
	}
}

func TestPopByHostReference(t *testing.T) {
	r := newTestRouter(t)
	r.Push("/a", "")
	r.Push("/b", "")

	r.PopByHostReference("/a", nil)

	got := paths(r)
	want := []string{"/", "/b"}
	if !equalStrings(got, want) {
		t.Fatalf("stack = %v, want %v", got, want)
	}
}

func TestPopByHostReferenceUnknownNameIsIgnored(t *testing.T) {
	r := newTestRouter(t)
	r.Push("/a", "")

	r.PopByHostReference("/zzz", nil)

	if r.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", r.Depth())
	}
}

func TestRemoveDeletesMostRecentMatch(t *testing.T) {
	r := newTestRouter(t)
	r.Push("/a", "")
	r.Push("/b", "")
	r.Push("/a", "")

	events, cancel := r.Subscribe()
	defer cancel()
	drain(events)

	r.Remove("/a")

	got := paths(r)
	want := []string{"/", "/a", "/b"}
	if !equalStrings(got, want) {
		t.Fatalf("stack = %v, want %v", got, want)
	}
	if n := len(drain(events)); n != 0 {
		t.Errorf("Remove emitted %d events, want 0", n)
	}
}

func TestRemoveCanDeleteNonTopEntry(t *testing.T) {
	r := newTestRouter(t)
	r.Push("/a", "")
	r.Push("/b", "")

	r.Remove("/a")

	got := paths(r)
	want := []string{"/", "/b"}
	if !equalStrings(got, want) {
		t.Fatalf("stack = %v, want %v", got, want)
	}
}

func TestCurrentPathOnEmptyRouter(t *testing.T) {
	// A router whose initial navigation was blocked has an empty stack.
	cfg := &Config{
		Routes: []*RouteDefinition{
			NewRouteDefinition("/", contentFor("home"),
				WithMiddleware(func() []Middleware {
					return []Middleware{blockingMiddleware()}
				})),
			NewRouteDefinition("/not-found", contentFor("not-found")),
		},
		NotFoundPath: "/not-found",
	}
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer r.Close()

	if got := r.CurrentPath(); got != "" {
		t.Errorf("CurrentPath() = %q, want empty", got)
	}
	if r.Top() != nil {
		t.Error("Top() != nil on empty stack")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	r := newTestRouter(t)
	r.Close()
	r.Close()
}

// drain reads all immediately available events from ch.
func drain(ch <-chan RouterEvent) []RouterEvent {
	var out []RouterEvent
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
