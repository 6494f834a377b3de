package router

// routeStack is the ordered navigation history, oldest entry first.
// It is not safe for concurrent use; the Router serializes access.
type routeStack struct {
	entries []*ActiveRoute
}

func (s *routeStack) push(r *ActiveRoute) {
	s.entries = append(s.entries, r)
}

func (s *routeStack) len() int {
	return len(s.entries)
}

// top returns the most recent entry, or nil when the stack is empty.
func (s *routeStack) top() *ActiveRoute {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// removeTop removes and returns the most recent entry.
// Callers must ensure the stack is non-empty.
func (s *routeStack) removeTop() *ActiveRoute {
	entry := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return entry
}

// removeAt removes and returns the entry at position i.
func (s *routeStack) removeAt(i int) *ActiveRoute {
	entry := s.entries[i]
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return entry
}

func (s *routeStack) clear() {
	s.entries = nil
}

// replaceAll swaps the whole history for the given entries, preserving
// their order. Used by restoration.
func (s *routeStack) replaceAll(entries []*ActiveRoute) {
	s.entries = entries
}

// findByPath returns the position and entry of the most recent route whose
// concrete path equals path. Searching newest-first favors the freshest
// instance when the same path appears more than once.
func (s *routeStack) findByPath(path string) (int, *ActiveRoute) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Path() == path {
			return i, s.entries[i]
		}
	}
	return -1, nil
}

// removeWhile removes entries from the top until pred accepts the new top
// or the stack is exhausted. The removed entries are discarded silently.
func (s *routeStack) removeWhile(pred func(*ActiveRoute) bool) {
	for len(s.entries) > 0 && !pred(s.top()) {
		s.removeTop()
	}
}

// all returns a copy of the history, oldest first.
func (s *routeStack) all() []*ActiveRoute {
	out := make([]*ActiveRoute, len(s.entries))
	copy(out, s.entries)
	return out
}
