package strategy

import (
	"go.uber.org/zap"

	"github.com/mireval/rampart/internal/models"
)

// Allocator walks the placement plan in priority order each turn, spending
// the structure currency greedily. Build-then-upgrade pairs are atomic
// decision units, and the walk stops advancing the instant the currency is
// exhausted. Running out of currency is the normal terminal condition for a
// turn's allocation, not an error.
type Allocator struct {
	cfg  *models.GameConfig
	plan *PlacementPlan
	log  *zap.Logger
}

// NewAllocator creates an allocator over a static placement plan.
func NewAllocator(cfg *models.GameConfig, plan *PlacementPlan, log *zap.Logger) *Allocator {
	return &Allocator{cfg: cfg, plan: plan, log: log}
}

// Allocate runs one defensive pass and returns the orders the engine
// accepted this turn, in issue order.
func (a *Allocator) Allocate(g Game) []models.Order {
	var orders []models.Order

	// Initial tier is (re)issued unconditionally every turn. Building onto
	// an already-occupied cell is a harmless no-op, so this is idempotent.
	for _, e := range a.plan.Tier(models.TierInitial) {
		if n := g.AttemptSpawn(e.Role.UnitClass(), e.At, 1); n > 0 {
			orders = append(orders, models.Order{
				Kind: models.OrderBuild, Unit: e.Role.UnitClass(), At: e.At, Quantity: n,
			})
		}
	}

	// Secondary tier, in declared order. The affordability gate covers the
	// combined build+upgrade cost: a barrier we cannot also upgrade is not
	// placed, and hitting the gate ends the allocation for this and all
	// later tiers this turn.
	for _, e := range a.plan.Tier(models.TierSecondary) {
		if g.GetResource(models.PoolStructure) < a.cfg.PairCost(e.Role) {
			return orders
		}
		orders = append(orders, a.buildPair(g, e)...)
	}

	// With the line in place, reinforce the anchors.
	for _, e := range a.plan.Tier(models.TierInitial) {
		if g.GetResource(models.PoolStructure) < a.cfg.Unit(e.Role.UnitClass()).UpgradeCost {
			return orders
		}
		if n := g.AttemptUpgrade(e.At); n > 0 {
			orders = append(orders, models.Order{Kind: models.OrderUpgrade, At: e.At})
		}
	}

	// Reinforcement passes only begin once every must-exist coordinate holds
	// a structure. The check fails open: if any anchor is missing, the passes
	// are skipped entirely this turn, not retried partially.
	if !a.anchorsStanding(g) {
		a.log.Debug("anchors missing, skipping reinforcement passes")
		return orders
	}

	for _, tier := range []models.Tier{models.TierTertiary, models.TierCorner} {
		for _, e := range a.plan.Tier(tier) {
			gate := a.cfg.Unit(e.Role.UnitClass()).BuildCost
			if e.RequiresUpgrade {
				gate = a.cfg.PairCost(e.Role)
			}
			if g.GetResource(models.PoolStructure) < gate {
				return orders
			}
			orders = append(orders, a.buildPair(g, e)...)
		}
	}
	return orders
}

// buildPair issues the build order and, when the entry requires it, the
// upgrade order for the same coordinate immediately after.
func (a *Allocator) buildPair(g Game, e PlanEntry) []models.Order {
	var orders []models.Order
	class := e.Role.UnitClass()
	if n := g.AttemptSpawn(class, e.At, 1); n > 0 {
		orders = append(orders, models.Order{Kind: models.OrderBuild, Unit: class, At: e.At, Quantity: n})
	}
	if e.RequiresUpgrade {
		if n := g.AttemptUpgrade(e.At); n > 0 {
			orders = append(orders, models.Order{Kind: models.OrderUpgrade, At: e.At})
		}
	}
	return orders
}

// anchorsStanding is the tier-completion predicate: true when every
// coordinate in the must-exist set currently holds a structure.
func (a *Allocator) anchorsStanding(g Game) bool {
	for _, at := range a.plan.MustExist() {
		if !g.ContainsStationaryUnit(at) {
			return false
		}
	}
	return true
}
