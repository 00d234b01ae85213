package engine

import (
	"encoding/json"
	"fmt"

	"github.com/mireval/rampart/internal/models"
)

// State message kinds carried in turnInfo[0].
const (
	stateTurnStart = 0
	stateFrame     = 1
	stateGameEnd   = 2
)

// Snapshot slot layout: p1Units/p2Units hold one list per unit slot in
// models.AllUnitClasses order, then a pending-removals list and an
// upgrades list. Slot 7 marks upgraded structures.
const slotUpgrade = 7

// rawState mirrors one state message on the engine session.
type rawState struct {
	TurnInfo []float64                    `json:"turnInfo"` // [stateType, turnNumber, frameNumber]
	P1Stats  []float64                    `json:"p1Stats"`  // [health, structurePts, spawnPts, elapsedMs]
	P2Stats  []float64                    `json:"p2Stats"`
	P1Units  [][][]float64                `json:"p1Units"`
	P2Units  [][][]float64                `json:"p2Units"`
	Events   map[string][]json.RawMessage `json:"events"`
}

// BreachEvent is one scoring breach reported in an action frame: a mobile
// unit reached the defending side's edge. Owner identifies who owned the
// breaching unit; OwnerOpponent means the agent got scored on.
type BreachEvent struct {
	At    models.Coordinate
	Owner models.Owner
}

func parseState(line []byte) (*rawState, error) {
	var st rawState
	if err := json.Unmarshal(line, &st); err != nil {
		return nil, fmt.Errorf("failed to parse state message: %w", err)
	}
	if len(st.TurnInfo) < 2 {
		return nil, fmt.Errorf("state message has short turnInfo (%d fields)", len(st.TurnInfo))
	}
	return &st, nil
}

func (st *rawState) stateType() int  { return int(st.TurnInfo[0]) }
func (st *rawState) turnNumber() int { return int(st.TurnInfo[1]) }

// pool returns the agent's authoritative balance for a pool kind. The engine
// is the sole source of truth for balances; these values replace any local
// prediction from the previous turn.
func (st *rawState) pool(kind models.PoolKind) float64 {
	if len(st.P1Stats) < 3 {
		return 0
	}
	switch kind {
	case models.PoolStructure:
		return st.P1Stats[1]
	case models.PoolSpawn:
		return st.P1Stats[2]
	default:
		return 0
	}
}

// breachEvents extracts the breach list from an action frame, in delivery
// order. Each raw breach entry is a positional array: index 0 is the
// [x, y] location and index 4 is the owner flag (1 self, 2 opponent).
func (st *rawState) breachEvents() ([]BreachEvent, error) {
	raw, ok := st.Events["breach"]
	if !ok {
		return nil, nil
	}

	events := make([]BreachEvent, 0, len(raw))
	for _, entry := range raw {
		var fields []json.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil {
			return nil, fmt.Errorf("failed to parse breach entry: %w", err)
		}
		if len(fields) < 5 {
			return nil, fmt.Errorf("breach entry has %d fields, need 5", len(fields))
		}

		var loc [2]int
		if err := json.Unmarshal(fields[0], &loc); err != nil {
			return nil, fmt.Errorf("failed to parse breach location: %w", err)
		}
		var ownerFlag int
		if err := json.Unmarshal(fields[4], &ownerFlag); err != nil {
			return nil, fmt.Errorf("failed to parse breach owner: %w", err)
		}

		owner := models.OwnerSelf
		if ownerFlag != 1 {
			owner = models.OwnerOpponent
		}
		events = append(events, BreachEvent{
			At:    models.Coordinate{X: loc[0], Y: loc[1]},
			Owner: owner,
		})
	}
	return events, nil
}
