package router

import (
	"log/slog"
	"sync"
)

// defaultEventBuffer is the per-subscriber channel buffer size.
const defaultEventBuffer = 16

// notifier is the hot broadcast stream of RouterEvents. It caches the most
// recently delivered event so late subscribers still observe it
// (replay-latest), and defers every delivery through the frame scheduler.
type notifier struct {
	scheduler FrameScheduler
	logger    *slog.Logger
	buffer    int

	mu          sync.Mutex
	subscribers map[int]chan RouterEvent
	listeners   map[int]*Listener
	nextID      int
	last        RouterEvent
	closed      bool
}

func newNotifier(scheduler FrameScheduler, logger *slog.Logger, buffer int) *notifier {
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}
	return &notifier{
		scheduler:   scheduler,
		logger:      logger,
		buffer:      buffer,
		subscribers: make(map[int]chan RouterEvent),
		listeners:   make(map[int]*Listener),
	}
}

// subscribe registers a new event channel. When an event has already been
// delivered, the channel is primed with it so widgets mounted after the
// fact still see the latest transition. The returned cancel func is safe to
// call more than once.
func (n *notifier) subscribe() (<-chan RouterEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan RouterEvent, n.buffer)
	if n.closed {
		close(ch)
		return ch, func() {}
	}

	id := n.nextID
	n.nextID++
	n.subscribers[id] = ch
	if n.last != nil {
		ch <- n.last
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if _, ok := n.subscribers[id]; ok {
				delete(n.subscribers, id)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// addListener registers a callback listener dispatched at delivery time.
func (n *notifier) addListener(l *Listener) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return func() {}
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.listeners, id)
		})
	}
}

// emit schedules delivery of ev at the next frame boundary. Mutations
// committed within one frame each schedule independently, so deliveries
// fire in commit order when the frame flushes.
func (n *notifier) emit(ev RouterEvent) {
	n.scheduler.PostFrame(func() {
		n.deliver(ev)
	})
}

func (n *notifier) deliver(ev RouterEvent) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.last = ev

	for _, ch := range n.subscribers {
		select {
		case ch <- ev:
		default:
			if n.logger != nil {
				n.logger.Warn("router event dropped: subscriber buffer full",
					"path", ev.AffectedRoute().Path())
			}
		}
	}
	listeners := make([]*Listener, 0, len(n.listeners))
	for _, l := range n.listeners {
		listeners = append(listeners, l)
	}
	n.mu.Unlock()

	// Callbacks run outside the lock so a listener may subscribe,
	// unsubscribe or navigate again.
	for _, l := range listeners {
		l.notify(ev)
	}
}

// close permanently shuts the stream. Subscriber channels are closed and no
// further emissions occur; deliveries already scheduled become no-ops.
func (n *notifier) close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true
	for id, ch := range n.subscribers {
		delete(n.subscribers, id)
		close(ch)
	}
	n.listeners = make(map[int]*Listener)
}
