package strategy

import "github.com/mireval/rampart/internal/models"

// PlanEntry is one placement plan slot: a coordinate annotated with the
// structure role that fills it and the priority tier it belongs to.
type PlanEntry struct {
	At              models.Coordinate
	Role            models.StructureRole
	Tier            models.Tier
	RequiresUpgrade bool
}

// PlacementPlan is the ordered, static defensive build plan. It is declared
// once at startup and never mutated at runtime. Within a tier, declaration
// order is authoritative for spend priority; ties are never broken by any
// other criterion.
type PlacementPlan struct {
	entries   []PlanEntry
	mustExist []models.Coordinate
}

// Entries returns every plan entry in declaration order.
func (p *PlacementPlan) Entries() []PlanEntry {
	return p.entries
}

// Tier returns the entries of one tier in declaration order.
func (p *PlacementPlan) Tier(t models.Tier) []PlanEntry {
	var out []PlanEntry
	for _, e := range p.entries {
		if e.Tier == t {
			out = append(out, e)
		}
	}
	return out
}

// MustExist returns the coordinates that must all hold a structure before
// any reinforcement pass beyond the secondary tier begins.
func (p *PlacementPlan) MustExist() []models.Coordinate {
	return p.mustExist
}

// initialAnchors are the reinforced barriers that anchor the defense; they
// are rebuilt unconditionally every turn and double as the must-exist set
// gating the reinforcement passes.
var initialAnchors = []models.Coordinate{
	{X: 3, Y: 12}, {X: 24, Y: 12}, {X: 13, Y: 3}, {X: 14, Y: 3},
}

// diagonalLine is the secondary barrier wall, funneling attackers outward.
// Each barrier is only built if its upgrade is also affordable.
var diagonalLine = []models.Coordinate{
	{X: 5, Y: 11}, {X: 22, Y: 11},
	{X: 6, Y: 10}, {X: 21, Y: 10},
	{X: 7, Y: 9}, {X: 20, Y: 9},
	{X: 8, Y: 8}, {X: 19, Y: 8},
	{X: 9, Y: 7}, {X: 18, Y: 7},
	{X: 10, Y: 6}, {X: 17, Y: 6},
}

// cornerWalls seal the outermost edge cells once the anchors stand.
var cornerWalls = []models.Coordinate{
	{X: 0, Y: 13}, {X: 27, Y: 13}, {X: 1, Y: 12}, {X: 26, Y: 12},
}

// DefaultPlan builds the reference placement plan. The tertiary support
// positions are derived from the left-half diagonal barriers: each base
// coordinate is mirrored across the vertical centerline and offset inward by
// one column, and anything inside the protected central corridor is excluded
// so mobile units keep a clear path.
func DefaultPlan(tuning models.Tuning) *PlacementPlan {
	p := &PlacementPlan{mustExist: initialAnchors}

	for _, at := range initialAnchors {
		p.entries = append(p.entries, PlanEntry{
			At:   at,
			Role: models.RoleReinforcedBarrier,
			Tier: models.TierInitial,
		})
	}
	for _, at := range diagonalLine {
		p.entries = append(p.entries, PlanEntry{
			At:              at,
			Role:            models.RoleBarrier,
			Tier:            models.TierSecondary,
			RequiresUpgrade: true,
		})
	}
	for _, base := range diagonalLine {
		if base.X >= models.HalfBoard {
			continue
		}
		at := mirrorInward(base)
		if at.X >= tuning.CorridorMinX && at.X <= tuning.CorridorMaxX {
			continue
		}
		p.entries = append(p.entries, PlanEntry{
			At:   at,
			Role: models.RoleSupport,
			Tier: models.TierTertiary,
		})
	}
	for _, at := range cornerWalls {
		p.entries = append(p.entries, PlanEntry{
			At:              at,
			Role:            models.RoleBarrier,
			Tier:            models.TierCorner,
			RequiresUpgrade: true,
		})
	}
	return p
}

// mirrorInward reflects a coordinate across the vertical centerline and
// shifts it one column toward the center.
func mirrorInward(c models.Coordinate) models.Coordinate {
	m := c.MirrorX()
	if m.X < models.HalfBoard {
		m.X++
	} else {
		m.X--
	}
	return m
}

// DefaultLaunchCandidates is the fixed set of friendly edge cells evaluated
// for mobile-unit launches.
func DefaultLaunchCandidates() []models.Coordinate {
	return []models.Coordinate{
		{X: 13, Y: 0}, {X: 14, Y: 0},
		{X: 10, Y: 3}, {X: 17, Y: 3},
		{X: 6, Y: 7}, {X: 21, Y: 7},
	}
}
