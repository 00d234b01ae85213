package strategy

import "github.com/mireval/rampart/internal/models"

// Game is the per-turn engine contract the strategy consumes. The engine is
// authoritative for every balance: components re-read via GetResource after
// each spend instead of carrying a locally predicted value across decisions.
type Game interface {
	// TurnNumber returns the current turn.
	TurnNumber() int
	// GetResource returns the current balance of a pool.
	GetResource(kind models.PoolKind) float64
	// AttemptSpawn places up to quantity units, capping at whatever the
	// balance allows, and returns the number placed. Occupied or invalid
	// placements are harmless no-ops returning zero.
	AttemptSpawn(class models.UnitClass, at models.Coordinate, quantity int) int
	// AttemptUpgrade upgrades the structure at the coordinate; no-op when
	// absent or already upgraded. Returns the number of upgrades issued.
	AttemptUpgrade(at models.Coordinate) int
	// ContainsStationaryUnit reports whether a structure occupies the cell.
	ContainsStationaryUnit(at models.Coordinate) bool
	// FindPathToEdge returns a unit's route to the opposing edge, empty if
	// unreachable.
	FindPathToEdge(at models.Coordinate) []models.Coordinate
	// GetAttackers counts stationary threats owned by owner able to strike
	// the cell.
	GetAttackers(at models.Coordinate, owner models.Owner) int
	// CanSpawn reports whether the engine would accept the placement.
	CanSpawn(class models.UnitClass, at models.Coordinate, quantity int) bool
}
