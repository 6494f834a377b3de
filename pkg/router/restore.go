package router

import (
	"encoding/json"
	"fmt"
)

// RestorableStack projects the current stack into its serializable form,
// oldest entry first. The record order is the stack order a later Restore
// reproduces.
func (r *Router) RestorableStack() []RestorablePageInformation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]RestorablePageInformation, 0, r.stack.len())
	for _, entry := range r.stack.entries {
		records = append(records, entry.RestorableInfo())
	}
	return records
}

// Restore replaces the whole stack with entries rebuilt from records,
// preserving each record's path, index and id and the record order. Paths
// are re-resolved against the registry with the usual not-found fallback;
// content is rebuilt from the resolved definition's factory. Restoration is
// trusted internal data, not user navigation: no middleware runs and no
// events fire. Afterwards the index counter is resynchronized to one past
// the maximum restored index so future pushes cannot collide.
//
// An empty record list leaves the router untouched.
func (r *Router) Restore(records []RestorablePageInformation) {
	if len(records) == 0 {
		return
	}

	entries := make([]*ActiveRoute, 0, len(records))
	maxIndex := 0
	for _, rec := range records {
		def := r.registry.resolve(rec.Path)
		entry := &ActiveRoute{
			definition: def,
			path:       rec.Path,
			index:      rec.Index,
			id:         rec.ID,
		}
		if def.factory != nil {
			entry.content = def.factory(entry)
		}
		entries = append(entries, entry)
		if rec.Index > maxIndex {
			maxIndex = rec.Index
		}
	}

	r.mu.Lock()
	r.stack.replaceAll(entries)
	r.nextIndex = maxIndex + 1
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Debug("stack restored", "entries", len(entries), "next_index", maxIndex+1)
	}
}

// snapshotVersion is the current restoration snapshot format version.
// Increment on breaking changes to the record encoding.
const snapshotVersion = 1

// snapshot is the JSON envelope around a restorable record list.
type snapshot struct {
	Version int                         `json:"version"`
	Pages   []RestorablePageInformation `json:"pages"`
}

// EncodeSnapshot serializes a restorable record list for an external
// persistence collaborator. The transport and storage of the bytes are the
// collaborator's responsibility.
func EncodeSnapshot(records []RestorablePageInformation) ([]byte, error) {
	return json.Marshal(snapshot{
		Version: snapshotVersion,
		Pages:   records,
	})
}

// DecodeSnapshot deserializes a record list produced by EncodeSnapshot.
// Unknown format versions are rejected.
func DecodeSnapshot(data []byte) ([]RestorablePageInformation, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("router: decode snapshot: %w", err)
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, s.Version)
	}
	return s.Pages, nil
}
