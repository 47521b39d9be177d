package game

import (
	"slices"
	"sync"
)

// Run is one completed session: how long it lasted and what it scored.
type Run struct {
	Time  float64 // Seconds of play
	Score int
}

// Better reports whether r ranks above o: higher score first, then the
// shorter time.
func (r Run) Better(o Run) bool {
	if r.Score != o.Score {
		return r.Score > o.Score
	}
	return r.Time < o.Time
}

// History records completed runs. Implementations keep results in memory
// only.
type History interface {
	Append(run Run) error
	Runs() ([]Run, error)
}

// MemoryHistory is an unbounded, unordered slice of runs.
type MemoryHistory struct {
	mu   sync.Mutex
	runs []Run
}

// NewMemoryHistory creates an empty history.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

// Append records a run. It never fails.
func (h *MemoryHistory) Append(run Run) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.runs = append(h.runs, run)
	return nil
}

// Runs returns a copy of all runs in insertion order.
func (h *MemoryHistory) Runs() ([]Run, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.runs), nil
}

// Best returns the top-ranked run, or false when there are none.
func Best(runs []Run) (Run, bool) {
	var best Run
	found := false
	for _, r := range runs {
		if !found || r.Better(best) {
			best = r
			found = true
		}
	}
	return best, found
}

// Ranked returns up to limit runs sorted best first. limit <= 0 means all.
func Ranked(runs []Run, limit int) []Run {
	sorted := slices.Clone(runs)
	slices.SortStableFunc(sorted, func(a, b Run) int {
		switch {
		case a.Better(b):
			return -1
		case b.Better(a):
			return 1
		default:
			return 0
		}
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
