package router

import "sync"

// FrameScheduler defers work past the host's current render pass. Event
// delivery goes through the scheduler so listeners observe a settled UI
// tree rather than one mid-mutation.
type FrameScheduler interface {
	// PostFrame schedules fn to run after the current render pass commits.
	// Callbacks scheduled within one frame run in scheduling order.
	PostFrame(fn func())
}

// immediateScheduler runs callbacks synchronously: every commit is its own
// degenerate frame. It is the default when no scheduler is configured.
type immediateScheduler struct{}

func (immediateScheduler) PostFrame(fn func()) {
	fn()
}

// FrameQueue is an explicit deferred-task queue for hosts with a render
// loop. Mutations enqueue their event deliveries; the host calls Flush once
// per render cycle, after the frame commits. Tasks enqueued during a flush
// run in the next flush.
type FrameQueue struct {
	mu    sync.Mutex
	tasks []func()
}

// NewFrameQueue creates an empty frame queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// PostFrame implements FrameScheduler.
func (q *FrameQueue) PostFrame(fn func()) {
	q.mu.Lock()
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()
}

// Flush runs all tasks queued up to this point, in scheduling order.
func (q *FrameQueue) Flush() {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for _, fn := range tasks {
		fn()
	}
}

// Len returns the number of pending tasks.
func (q *FrameQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}
