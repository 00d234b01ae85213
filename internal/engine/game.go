package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"go.uber.org/zap"

	"github.com/mireval/rampart/internal/models"
)

// upgradeShorthand marks an upgrade entry on the build wire format.
const upgradeShorthand = "UP"

// Tolerated gap between the locally predicted balance and the engine's
// authoritative one. The engine occasionally reports balances that differ by
// rounding/accounting artifacts; a gap inside this band is not an error.
const accountingTolerance = 0.01

// GameState is the agent-facing view of one turn snapshot plus the order
// batch accumulated during the decision pass. Balances are re-derived from
// the snapshot every turn: the engine is authoritative, and the local
// decrements below are per-turn predictions only, needed to cap quantities
// before the batch is submitted.
type GameState struct {
	cfg    *models.GameConfig
	log    *zap.Logger
	pather PathFinder
	out    io.Writer

	turn  int
	board *Board
	pools map[models.PoolKind]float64

	buildStack  [][3]any
	deployStack [][3]any
	placed      map[models.Coordinate]models.UnitClass
	upgraded    map[models.Coordinate]bool
	submitted   bool
}

func newGameState(cfg *models.GameConfig, st *rawState, pather PathFinder, out io.Writer, log *zap.Logger) *GameState {
	return &GameState{
		cfg:    cfg,
		log:    log,
		pather: pather,
		out:    out,
		turn:   st.turnNumber(),
		board:  parseBoard(st),
		pools: map[models.PoolKind]float64{
			models.PoolStructure: st.pool(models.PoolStructure),
			models.PoolSpawn:     st.pool(models.PoolSpawn),
		},
		placed:   make(map[models.Coordinate]models.UnitClass),
		upgraded: make(map[models.Coordinate]bool),
	}
}

// TurnNumber returns the turn this snapshot belongs to.
func (g *GameState) TurnNumber() int { return g.turn }

// GetResource returns the current balance of a pool. Callers must re-read
// after every spend instead of caching a predicted value.
func (g *GameState) GetResource(kind models.PoolKind) float64 {
	return g.pools[kind]
}

// ContainsStationaryUnit reports whether a structure occupies the coordinate,
// counting structures stacked for build earlier in this same turn.
func (g *GameState) ContainsStationaryUnit(at models.Coordinate) bool {
	if _, ok := g.placed[at]; ok {
		return true
	}
	return g.board.ContainsStationary(at)
}

// GetAttackers counts stationary threats owned by owner that can strike the
// coordinate.
func (g *GameState) GetAttackers(at models.Coordinate, owner models.Owner) int {
	return g.board.Attackers(at, owner, g.cfg)
}

// FindPathToEdge returns the route a mobile unit spawned at the coordinate
// would take to the opposing edge. Empty if unreachable.
func (g *GameState) FindPathToEdge(at models.Coordinate) []models.Coordinate {
	return g.pather.PathToEdge(at, func(c models.Coordinate) bool {
		return g.ContainsStationaryUnit(c)
	})
}

// CanSpawn reports whether the engine would accept placing quantity units of
// the class at the coordinate right now.
func (g *GameState) CanSpawn(class models.UnitClass, at models.Coordinate, quantity int) bool {
	if quantity < 1 {
		return false
	}
	if class.Stationary() {
		if quantity != 1 || !at.OnFriendlySide() || g.ContainsStationaryUnit(at) {
			return false
		}
		return g.pools[models.PoolStructure]+accountingTolerance >= g.cfg.Unit(class).BuildCost
	}
	if !at.OnFriendlyEdge() || g.ContainsStationaryUnit(at) {
		return false
	}
	return g.pools[models.PoolSpawn]+accountingTolerance >= g.cfg.Unit(class).SpawnCost*float64(quantity)
}

// AttemptSpawn stacks build/deploy orders for up to quantity units at the
// coordinate, capping at whatever the balance allows, and returns the number
// actually placed. Asking for an occupied or invalid placement is a harmless
// no-op returning zero, never an error.
func (g *GameState) AttemptSpawn(class models.UnitClass, at models.Coordinate, quantity int) int {
	if quantity < 1 {
		return 0
	}
	spec := g.cfg.Unit(class)

	if class.Stationary() {
		if !g.CanSpawn(class, at, 1) {
			return 0
		}
		g.buildStack = append(g.buildStack, [3]any{spec.Shorthand, at.X, at.Y})
		g.placed[at] = class
		g.spend(models.PoolStructure, spec.BuildCost)
		return 1
	}

	affordable := int(math.Floor((g.pools[models.PoolSpawn] + accountingTolerance) / spec.SpawnCost))
	n := quantity
	if affordable < n {
		n = affordable
	}
	if n < 1 || !g.CanSpawn(class, at, n) {
		return 0
	}
	for i := 0; i < n; i++ {
		g.deployStack = append(g.deployStack, [3]any{spec.Shorthand, at.X, at.Y})
	}
	g.spend(models.PoolSpawn, spec.SpawnCost*float64(n))
	return n
}

// AttemptUpgrade stacks an upgrade order for the structure at the coordinate.
// It is a no-op returning zero when no structure is present, the structure is
// already upgraded, or the upgrade is unaffordable.
func (g *GameState) AttemptUpgrade(at models.Coordinate) int {
	if g.upgraded[at] {
		return 0
	}

	var class models.UnitClass
	if c, ok := g.placed[at]; ok {
		class = c
	} else if u, ok := g.board.StructureAt(at); ok && u.Owner == models.OwnerSelf && !u.Upgraded {
		class = u.Class
	} else {
		return 0
	}

	cost := g.cfg.Unit(class).UpgradeCost
	if g.pools[models.PoolStructure]+accountingTolerance < cost {
		return 0
	}
	g.buildStack = append(g.buildStack, [3]any{upgradeShorthand, at.X, at.Y})
	g.upgraded[at] = true
	g.spend(models.PoolStructure, cost)
	return 1
}

func (g *GameState) spend(kind models.PoolKind, amount float64) {
	g.pools[kind] -= amount
	if g.pools[kind] < 0 {
		// Inside the tolerance band this is an accounting artifact, not a bug.
		if g.pools[kind] < -accountingTolerance {
			g.log.Warn("predicted balance went negative",
				zap.Stringer("pool", kind),
				zap.Float64("balance", g.pools[kind]))
		}
		g.pools[kind] = 0
	}
}

// SubmitTurn transmits the accumulated order batch as a single atomic
// submission: the build stack line followed by the deploy stack line.
// It is called exactly once per turn, after the decision pass completes.
func (g *GameState) SubmitTurn() error {
	if g.submitted {
		return fmt.Errorf("turn %d already submitted", g.turn)
	}
	g.submitted = true

	if err := g.writeStack(g.buildStack); err != nil {
		return fmt.Errorf("failed to submit build stack: %w", err)
	}
	if err := g.writeStack(g.deployStack); err != nil {
		return fmt.Errorf("failed to submit deploy stack: %w", err)
	}
	return nil
}

func (g *GameState) writeStack(stack [][3]any) error {
	if stack == nil {
		stack = [][3]any{}
	}
	data, err := json.Marshal(stack)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = g.out.Write(data)
	return err
}
