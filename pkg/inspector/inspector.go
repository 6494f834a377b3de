// Package inspector exposes a read-only HTTP surface over a running router
// for development tooling: the registered route patterns, the current
// restorable stack, and a WebSocket feed of navigation events.
//
// The inspector never mutates the router. Mount its handler wherever the
// host serves HTTP, or run it standalone:
//
//	insp := inspector.New(r, inspector.WithAddr(":6060"))
//	go insp.Start()
//	defer insp.Shutdown(context.Background())
package inspector

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/AlbaFramework/alba/pkg/router"
)

const writeTimeout = 10 * time.Second

// EventMessage is the JSON frame sent to inspector clients for each
// navigation event.
type EventMessage struct {
	// Type is "push", "pop" or "replace".
	Type string `json:"type"`

	// Path, Index and ID identify the affected route.
	Path  string `json:"path"`
	Index int    `json:"index"`
	ID    string `json:"id,omitempty"`

	// Result carries the pop result, when JSON-encodable.
	Result any `json:"result,omitempty"`

	// PreviousPath is the replaced route's path for replace events.
	PreviousPath string `json:"previous_path,omitempty"`
}

// NewEventMessage converts a RouterEvent to its wire form.
func NewEventMessage(ev router.RouterEvent) EventMessage {
	route := ev.AffectedRoute()
	msg := EventMessage{
		Path:  route.Path(),
		Index: route.Index(),
		ID:    route.ID(),
	}
	switch ev := ev.(type) {
	case *router.PushEvent:
		msg.Type = "push"
	case *router.PopEvent:
		msg.Type = "pop"
		msg.Result = ev.Result
	case *router.ReplaceEvent:
		msg.Type = "replace"
		msg.PreviousPath = ev.Previous.Path()
	}
	return msg
}

// Server serves the inspector endpoints for one router.
type Server struct {
	router   *router.Router
	logger   *slog.Logger
	addr     string
	upgrader websocket.Upgrader

	mu      sync.Mutex
	httpSrv *http.Server
}

// Option configures the inspector server.
type Option func(*Server)

// WithAddr sets the listen address for Start. Default ":6060".
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithLogger sets the logger. Default: no logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates an inspector server for r.
func New(r *router.Router, opts ...Option) *Server {
	s := &Server{
		router: r,
		addr:   ":6060",
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Dev tooling; not exposed to production traffic.
			},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the inspector's HTTP handler:
//
//	GET /routes  — registered route patterns, priority order
//	GET /stack   — current stack as restorable records
//	GET /events  — WebSocket feed of navigation events
func (s *Server) Handler() http.Handler {
	mux := chi.NewRouter()
	mux.Get("/routes", s.handleRoutes)
	mux.Get("/stack", s.handleStack)
	mux.Get("/events", s.handleEvents)
	return mux
}

// Start serves the handler on the configured address, blocking until
// Shutdown or a listener error.
func (s *Server) Start() error {
	s.mu.Lock()
	s.httpSrv = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}
	srv := s.httpSrv
	s.mu.Unlock()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops a server started with Start.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpSrv
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	defs := s.router.Definitions()
	patterns := make([]string, 0, len(defs))
	for _, d := range defs {
		patterns = append(patterns, d.Path())
	}
	writeJSON(w, map[string]any{"routes": patterns})
}

func (s *Server) handleStack(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"pages": s.router.RestorableStack()})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("inspector upgrade failed", "error", err)
		}
		return
	}

	clientID := uuid.NewString()
	if s.logger != nil {
		s.logger.Debug("inspector client connected", "client", clientID, "remote", conn.RemoteAddr())
	}

	events, cancel := s.router.Subscribe()
	defer cancel()
	defer conn.Close()

	// Reader only consumes control frames; any read error means the client
	// went away and the write loop should stop.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				// Router closed; tell the client and stop.
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "router closed"),
					time.Now().Add(writeTimeout))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(NewEventMessage(ev)); err != nil {
				if s.logger != nil {
					s.logger.Debug("inspector client write failed", "client", clientID, "error", err)
				}
				return
			}
		case <-done:
			if s.logger != nil {
				s.logger.Debug("inspector client disconnected", "client", clientID)
			}
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
