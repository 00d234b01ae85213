package engine

import "github.com/mireval/rampart/internal/models"

// Unit is one stationary or mobile unit parsed from a snapshot.
type Unit struct {
	Class    models.UnitClass
	Owner    models.Owner
	At       models.Coordinate
	Health   float64
	Upgraded bool
}

// Board indexes the units of one snapshot by coordinate. It is rebuilt from
// every turn snapshot and never mutated by the decision pass; orders stacked
// during a turn are tracked separately by GameState.
type Board struct {
	cells   map[models.Coordinate][]*Unit
	turrets map[models.Owner][]*Unit
}

func newBoard() *Board {
	return &Board{
		cells:   make(map[models.Coordinate][]*Unit),
		turrets: make(map[models.Owner][]*Unit),
	}
}

// parseBoard builds the board from the two per-player unit lists.
func parseBoard(st *rawState) *Board {
	b := newBoard()
	b.addPlayerUnits(st.P1Units, models.OwnerSelf)
	b.addPlayerUnits(st.P2Units, models.OwnerOpponent)
	return b
}

func (b *Board) addPlayerUnits(slots [][][]float64, owner models.Owner) {
	classes := models.AllUnitClasses()
	for slot, list := range slots {
		if slot >= len(classes) {
			break // upgrade slot handled below; pending removals are not tracked
		}
		class := classes[slot]
		for _, fields := range list {
			if len(fields) < 3 {
				continue
			}
			b.add(&Unit{
				Class:  class,
				Owner:  owner,
				At:     models.Coordinate{X: int(fields[0]), Y: int(fields[1])},
				Health: fields[2],
			})
		}
	}

	// The upgrade slot lists coordinates whose structure is upgraded.
	if len(slots) > slotUpgrade {
		for _, fields := range slots[slotUpgrade] {
			if len(fields) < 2 {
				continue
			}
			at := models.Coordinate{X: int(fields[0]), Y: int(fields[1])}
			if u, ok := b.StructureAt(at); ok && u.Owner == owner {
				u.Upgraded = true
			}
		}
	}
}

func (b *Board) add(u *Unit) {
	b.cells[u.At] = append(b.cells[u.At], u)
	if u.Class == models.UnitTurret {
		b.turrets[u.Owner] = append(b.turrets[u.Owner], u)
	}
}

// ContainsStationary reports whether a structure occupies the coordinate.
func (b *Board) ContainsStationary(at models.Coordinate) bool {
	_, ok := b.StructureAt(at)
	return ok
}

// StructureAt returns the structure at the coordinate, if any. Mobile units
// stack freely and never block placement, so they are skipped.
func (b *Board) StructureAt(at models.Coordinate) (*Unit, bool) {
	for _, u := range b.cells[at] {
		if u.Class.Stationary() {
			return u, true
		}
	}
	return nil, false
}

// Attackers counts the stationary threats owned by owner capable of striking
// the given coordinate, using each turret's own attack range.
func (b *Board) Attackers(at models.Coordinate, owner models.Owner, cfg *models.GameConfig) int {
	baseRange := cfg.Unit(models.UnitTurret).AttackRange
	count := 0
	for _, t := range b.turrets[owner] {
		r := baseRange
		if t.Upgraded {
			r++ // upgraded turrets strike one cell further
		}
		dx := float64(t.At.X - at.X)
		dy := float64(t.At.Y - at.Y)
		if dx*dx+dy*dy <= r*r {
			count++
		}
	}
	return count
}
