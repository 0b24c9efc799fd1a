package session

import "artichat/internal/domain"

// History is the ordered room log. With a zero limit it grows without bound;
// otherwise it keeps the newest limit entries in a ring.
type History struct {
	limit   int
	entries []domain.HistoryEntry
	start   int
}

// NewHistory returns an empty history. limit <= 0 means unbounded.
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Append adds e, evicting the oldest entry when the ring is full.
func (h *History) Append(e domain.HistoryEntry) {
	if h.limit == 0 || len(h.entries) < h.limit {
		h.entries = append(h.entries, e)
		return
	}
	h.entries[h.start] = e
	h.start = (h.start + 1) % h.limit
}

// Len reports the number of retained entries.
func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy of the retained entries, oldest first.
func (h *History) Entries() []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, 0, len(h.entries))
	out = append(out, h.entries[h.start:]...)
	return append(out, h.entries[:h.start]...)
}
