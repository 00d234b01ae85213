package strategy

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/mireval/rampart/internal/engine"
	"github.com/mireval/rampart/internal/models"
	"github.com/mireval/rampart/internal/replay"
)

// Agent wires the decision components together and implements the engine
// session hooks. Control flow per turn: defense allocation spends the
// structure currency, then the launch selector spends the spawn currency,
// then the session submits the whole batch at once.
type Agent struct {
	tuning models.Tuning
	log    *zap.Logger
	rec    *replay.Recorder // nil disables the decision log

	cfg     *models.GameConfig
	plan    *PlacementPlan
	alloc   *Allocator
	sel     *Selector
	tracker *Tracker
}

// New creates an agent. rec may be nil.
func New(tuning models.Tuning, rec *replay.Recorder, log *zap.Logger) *Agent {
	return &Agent{
		tuning:  tuning,
		log:     log,
		rec:     rec,
		tracker: NewTracker(),
	}
}

// OnGameStart resolves the per-game components from the immutable config.
func (a *Agent) OnGameStart(cfg *models.GameConfig) error {
	seed := a.tuning.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.log.Info("starting game", zap.Int64("seed", seed))

	a.cfg = cfg
	a.plan = DefaultPlan(a.tuning)
	a.alloc = NewAllocator(cfg, a.plan, a.log)
	a.sel = NewSelector(cfg, a.tuning, DefaultLaunchCandidates(), rand.New(rand.NewSource(seed)), a.log)
	return nil
}

// OnTurn runs the decision pass for one turn snapshot.
func (a *Agent) OnTurn(g *engine.GameState) error {
	orders := a.alloc.Allocate(g)
	dec := a.sel.Decide(g)

	if dec != nil && dec.Order != nil {
		orders = append(orders, *dec.Order)
	}

	a.log.Info("turn decided",
		zap.Int("turn", g.TurnNumber()),
		zap.Stringer("strategy", a.sel.Current()),
		zap.Float64("spawnThreshold", a.sel.MinSpawnThreshold()),
		zap.Int("orders", len(orders)))

	a.record(g, orders, dec)
	return nil
}

// OnActionFrame feeds breach events to the tracker in delivery order.
func (a *Agent) OnActionFrame(turn int, events []engine.BreachEvent) {
	for _, ev := range events {
		if ev.Owner == models.OwnerOpponent {
			a.log.Debug("got scored on",
				zap.Int("turn", turn),
				zap.Int("x", ev.At.X), zap.Int("y", ev.At.Y))
		}
		a.tracker.OnBreach(ev.At, ev.Owner)
	}
}

// Tracker exposes the breach history accumulator.
func (a *Agent) Tracker() *Tracker {
	return a.tracker
}

func (a *Agent) record(g *engine.GameState, orders []models.Order, dec *Decision) {
	if a.rec == nil {
		return
	}

	rec := replay.TurnRecord{
		GameID:   a.rec.GameID(),
		Turn:     g.TurnNumber(),
		Orders:   orders,
		Breaches: a.tracker.Len(),
	}
	if dec != nil {
		rec.Strategy = dec.Executed.String()
		rec.ThresholdBefore = dec.ThresholdBefore
		rec.ThresholdAfter = dec.ThresholdAfter
		candidates := a.sel.Candidates()
		for i, r := range dec.Risks {
			rec.Risks = append(rec.Risks, replay.RiskSample{At: candidates[i], Risk: r})
		}
	}

	if err := a.rec.Write(rec); err != nil {
		// The decision log is observability only; losing a record never
		// affects the turn.
		a.log.Warn("failed to write decision record", zap.Error(err))
	}
}
