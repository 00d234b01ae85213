package strategy

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/mireval/rampart/internal/models"
)

// Strategy is the selector's discrete per-game choice of offensive posture.
type Strategy int

const (
	// StrategyUndecided is the initial state; it executes as a no-op.
	StrategyUndecided Strategy = iota
	// StrategyHoldFast banks spawn currency and deploys nothing.
	StrategyHoldFast
	// StrategyScoutRush mass-deploys the cheap fast unit at the safest
	// launch point.
	StrategyScoutRush
	// StrategyDemolisherLine mass-deploys the burst unit at the safest
	// launch point.
	StrategyDemolisherLine
)

// String returns a string representation of the strategy
func (s Strategy) String() string {
	switch s {
	case StrategyHoldFast:
		return "hold_fast"
	case StrategyScoutRush:
		return "scout_rush"
	case StrategyDemolisherLine:
		return "demolisher_line"
	default:
		return "undecided"
	}
}

// actionableStrategies is the enumeration the selector redraws from after
// every executed strategy.
var actionableStrategies = []Strategy{
	StrategyHoldFast, StrategyScoutRush, StrategyDemolisherLine,
}

// SpawnThresholdForTurn is the step function the selector uses to recompute
// its minimum spawn threshold after an executed strategy. It is
// non-decreasing in turn number: the economically efficient batch size to
// justify a launch grows over the game.
func SpawnThresholdForTurn(turn int) float64 {
	switch {
	case turn <= 5:
		return 5
	case turn <= 9:
		return 10
	case turn <= 15:
		return 15
	default:
		return 20
	}
}

// Decision is the outcome of one launch evaluation, kept for logging and the
// decision replay.
type Decision struct {
	Executed        Strategy
	ThresholdBefore float64
	ThresholdAfter  float64
	Risks           []float64
	Order           *models.Order
}

// Selector owns the per-game offensive state: the current strategy and the
// minimum spawn threshold gating its execution. The random source is
// injected so tests can fix the seed; randomizing the strategy redraw and
// the launch point avoids a deterministic pattern an adversary could read.
type Selector struct {
	cfg        *models.GameConfig
	tuning     models.Tuning
	candidates []models.Coordinate
	rng        *rand.Rand
	log        *zap.Logger

	current           Strategy
	minSpawnThreshold float64
}

// NewSelector creates a selector in the undecided state.
func NewSelector(cfg *models.GameConfig, tuning models.Tuning, candidates []models.Coordinate, rng *rand.Rand, log *zap.Logger) *Selector {
	return &Selector{
		cfg:               cfg,
		tuning:            tuning,
		candidates:        candidates,
		rng:               rng,
		log:               log,
		current:           StrategyUndecided,
		minSpawnThreshold: tuning.InitialSpawnThreshold,
	}
}

// Current returns the strategy that will execute next.
func (s *Selector) Current() Strategy { return s.current }

// Candidates returns the fixed launch coordinate set, in evaluation order.
func (s *Selector) Candidates() []models.Coordinate { return s.candidates }

// MinSpawnThreshold returns the spawn-currency floor gating execution.
func (s *Selector) MinSpawnThreshold() float64 { return s.minSpawnThreshold }

// Decide runs one launch evaluation. When the available spawn currency is
// below the threshold, nothing executes and nothing is redrawn: the same
// strategy is retried next turn. Otherwise the current strategy executes
// (possibly as a no-op), a new strategy is drawn uniformly at random, and
// the threshold is recomputed from the current turn number.
func (s *Selector) Decide(g Game) *Decision {
	if g.GetResource(models.PoolSpawn) < s.minSpawnThreshold {
		return nil
	}

	dec := &Decision{
		Executed:        s.current,
		ThresholdBefore: s.minSpawnThreshold,
	}

	switch s.current {
	case StrategyScoutRush:
		dec.Order, dec.Risks = s.launch(g, models.UnitScout)
	case StrategyDemolisherLine:
		dec.Order, dec.Risks = s.launch(g, models.UnitDemolisher)
	default:
		// Undecided and hold-fast bank the currency.
	}

	s.current = actionableStrategies[s.rng.Intn(len(actionableStrategies))]
	s.minSpawnThreshold = SpawnThresholdForTurn(g.TurnNumber())
	dec.ThresholdAfter = s.minSpawnThreshold
	return dec
}

// launch picks a launch point inside the relative-tolerance band and spawns
// the maximum affordable quantity of the unit class there. The CanSpawn
// pre-check is a hard precondition: if an earlier accounting discrepancy
// made the predicted quantity wrong, a failed check aborts this turn's
// launch without crashing.
func (s *Selector) launch(g Game, class models.UnitClass) (*models.Order, []float64) {
	if len(s.candidates) == 0 {
		return nil, nil
	}

	risks := EstimateRisks(g, s.cfg, s.candidates)

	minRisk := risks[0]
	for _, r := range risks[1:] {
		if r < minRisk {
			minRisk = r
		}
	}

	// Every candidate within the tolerance band of the minimum stays
	// eligible, so several near-optimal launch points can remain in play.
	var eligible []int
	for i, r := range risks {
		if r <= s.tuning.LaunchTolerance*minRisk {
			eligible = append(eligible, i)
		}
	}
	at := s.candidates[eligible[s.rng.Intn(len(eligible))]]

	cost := s.cfg.Unit(class).SpawnCost
	if cost <= 0 {
		return nil, risks
	}
	quantity := int(g.GetResource(models.PoolSpawn) / cost)
	if quantity < 1 {
		return nil, risks
	}

	if !g.CanSpawn(class, at, quantity) {
		s.log.Warn("launch pre-check refused placement, aborting launch",
			zap.String("unit", string(class)),
			zap.Int("x", at.X), zap.Int("y", at.Y),
			zap.Int("quantity", quantity))
		return nil, risks
	}

	placed := g.AttemptSpawn(class, at, quantity)
	if placed < 1 {
		return nil, risks
	}
	return &models.Order{
		Kind:     models.OrderDeploy,
		Unit:     class,
		At:       at,
		Quantity: placed,
	}, risks
}
