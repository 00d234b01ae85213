package strategy

import (
	"math"

	"go.uber.org/zap"

	"github.com/mireval/rampart/internal/models"
)

// fakeGame is a scripted engine double for the strategy tests. It enforces
// the same affordability and occupancy rules the engine contract promises.
type fakeGame struct {
	cfg   *models.GameConfig
	turn  int
	pools map[models.PoolKind]float64

	structures map[models.Coordinate]models.UnitClass
	upgraded   map[models.Coordinate]bool
	blocked    map[models.Coordinate]bool
	attackers  map[models.Coordinate]int
	paths      map[models.Coordinate][]models.Coordinate

	refuseSpawn bool // forces CanSpawn to fail for mobile units

	orders        []models.Order
	spawnAttempts []models.Coordinate
}

func newFakeGame(turn int, structure, spawn float64) *fakeGame {
	return &fakeGame{
		cfg:        models.DefaultGameConfig(),
		turn:       turn,
		pools:      map[models.PoolKind]float64{models.PoolStructure: structure, models.PoolSpawn: spawn},
		structures: make(map[models.Coordinate]models.UnitClass),
		upgraded:   make(map[models.Coordinate]bool),
		blocked:    make(map[models.Coordinate]bool),
		attackers:  make(map[models.Coordinate]int),
		paths:      make(map[models.Coordinate][]models.Coordinate),
	}
}

func (f *fakeGame) prebuild(class models.UnitClass, coords ...models.Coordinate) {
	for _, at := range coords {
		f.structures[at] = class
	}
}

func (f *fakeGame) preupgrade(coords ...models.Coordinate) {
	for _, at := range coords {
		f.upgraded[at] = true
	}
}

func (f *fakeGame) TurnNumber() int { return f.turn }

func (f *fakeGame) GetResource(kind models.PoolKind) float64 { return f.pools[kind] }

func (f *fakeGame) ContainsStationaryUnit(at models.Coordinate) bool {
	_, ok := f.structures[at]
	return ok
}

func (f *fakeGame) FindPathToEdge(at models.Coordinate) []models.Coordinate {
	return f.paths[at]
}

func (f *fakeGame) GetAttackers(at models.Coordinate, owner models.Owner) int {
	if owner != models.OwnerOpponent {
		return 0
	}
	return f.attackers[at]
}

func (f *fakeGame) CanSpawn(class models.UnitClass, at models.Coordinate, quantity int) bool {
	if quantity < 1 {
		return false
	}
	if class.Stationary() {
		return !f.ContainsStationaryUnit(at) && !f.blocked[at] &&
			f.pools[models.PoolStructure] >= f.cfg.Unit(class).BuildCost
	}
	if f.refuseSpawn {
		return false
	}
	return f.pools[models.PoolSpawn] >= f.cfg.Unit(class).SpawnCost*float64(quantity)
}

func (f *fakeGame) AttemptSpawn(class models.UnitClass, at models.Coordinate, quantity int) int {
	f.spawnAttempts = append(f.spawnAttempts, at)

	if class.Stationary() {
		if !f.CanSpawn(class, at, 1) {
			return 0
		}
		f.structures[at] = class
		f.pools[models.PoolStructure] -= f.cfg.Unit(class).BuildCost
		f.orders = append(f.orders, models.Order{Kind: models.OrderBuild, Unit: class, At: at, Quantity: 1})
		return 1
	}

	cost := f.cfg.Unit(class).SpawnCost
	n := quantity
	if affordable := int(math.Floor(f.pools[models.PoolSpawn] / cost)); affordable < n {
		n = affordable
	}
	if n < 1 || !f.CanSpawn(class, at, n) {
		return 0
	}
	f.pools[models.PoolSpawn] -= cost * float64(n)
	f.orders = append(f.orders, models.Order{Kind: models.OrderDeploy, Unit: class, At: at, Quantity: n})
	return n
}

func (f *fakeGame) AttemptUpgrade(at models.Coordinate) int {
	class, ok := f.structures[at]
	if !ok || f.upgraded[at] {
		return 0
	}
	cost := f.cfg.Unit(class).UpgradeCost
	if f.pools[models.PoolStructure] < cost {
		return 0
	}
	f.pools[models.PoolStructure] -= cost
	f.upgraded[at] = true
	f.orders = append(f.orders, models.Order{Kind: models.OrderUpgrade, At: at, Quantity: 1})
	return 1
}

func testLogger() *zap.Logger { return zap.NewNop() }
