package model

import "sync"

// History records moves in insertion order.
type History struct {
	mu    sync.RWMutex
	moves []Move
}

func NewHistory() *History {
	return &History{moves: make([]Move, 0)}
}

func (h *History) Append(m Move) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.moves = append(h.moves, m)
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.moves)
}

// Moves returns a copy of the recorded moves.
func (h *History) Moves() []Move {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Move, len(h.moves))
	copy(out, h.moves)
	return out
}

func (h *History) Contains(m Move) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.indexOf(m) >= 0
}

// Remove drops the first recorded move equal to m and reports whether one
// was found.
func (h *History) Remove(m Move) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	i := h.indexOf(m)
	if i < 0 {
		return false
	}
	h.moves = append(h.moves[:i], h.moves[i+1:]...)
	return true
}

func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.moves = h.moves[:0]
}

func (h *History) indexOf(m Move) int {
	for i, recorded := range h.moves {
		if recorded.Equal(m) {
			return i
		}
	}
	return -1
}
