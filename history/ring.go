// Package history keeps the most recent served computations in a
// fixed-capacity array-backed ring, so a freshly connected client can be
// brought up to date without touching the database.
package history

import (
	"sync"

	"sousvide/model"
)

// Ring is a bounded buffer of cook records. Once full, adding evicts the
// oldest entry. Safe for concurrent use.
type Ring struct {
	mu    sync.Mutex
	items []model.CookRecord
	head  int // index of the oldest entry
	size  int
}

// New creates a ring holding up to capacity records. A non-positive
// capacity falls back to 1.
func New(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{items: make([]model.CookRecord, capacity)}
}

// Add appends a record, evicting the oldest when full.
func (r *Ring) Add(rec model.CookRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tail := (r.head + r.size) % len(r.items)
	r.items[tail] = rec
	if r.size < len(r.items) {
		r.size++
	} else {
		r.head = (r.head + 1) % len(r.items)
	}
}

// Items returns the buffered records ordered oldest to newest. The returned
// slice is a copy.
func (r *Ring) Items() []model.CookRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.CookRecord, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.items[(r.head+i)%len(r.items)]
	}
	return out
}

// Len reports how many records are buffered.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}
