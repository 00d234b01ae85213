package strategy

import "github.com/mireval/rampart/internal/models"

// Tracker accumulates the coordinates where the opponent scored on the
// agent. It is append-only and owned solely by this type; nothing else in
// the core consumes it yet beyond the decision replay.
type Tracker struct {
	history []models.Coordinate
}

// NewTracker creates an empty breach tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// OnBreach records an opponent-owned breach. Self-owned breaches (the agent
// scoring on the opponent) are ignored.
func (t *Tracker) OnBreach(at models.Coordinate, owner models.Owner) {
	if owner != models.OwnerOpponent {
		return
	}
	t.history = append(t.history, at)
}

// Len returns the number of recorded breaches.
func (t *Tracker) Len() int {
	return len(t.history)
}

// History returns a copy of the breach coordinates in append order.
func (t *Tracker) History() []models.Coordinate {
	out := make([]models.Coordinate, len(t.history))
	copy(out, t.history)
	return out
}
