package logbuf

import (
	"sync"

	"github.com/ajsharma/app_tail/internal/events"
)

// Ring is a fixed-capacity FIFO of console entries. Once full, each
// append evicts the oldest entry. Reads are non-destructive; entries
// persist until evicted by capacity or cleared on session reset.
type Ring struct {
	mu       sync.Mutex
	capacity int
	entries  []events.ConsoleEntry
}

// NewRing creates an empty ring with the given capacity.
func NewRing(capacity int) *Ring {
	return &Ring{capacity: capacity}
}

// Append adds an entry, evicting the oldest if the ring is full.
func (r *Ring) Append(entry events.ConsoleEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[len(r.entries)-r.capacity:]
	}
}

// Tail returns a copy of the most recent n entries, oldest first.
// If fewer than n entries are held, all of them are returned.
func (r *Ring) Tail(n int) []events.ConsoleEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n > len(r.entries) {
		n = len(r.entries)
	}
	if n == 0 {
		return nil
	}

	tail := make([]events.ConsoleEntry, n)
	copy(tail, r.entries[len(r.entries)-n:])
	return tail
}

// Clear removes all entries.
func (r *Ring) Clear() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}

// Len returns the number of held entries.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
