package strategy

import (
	"math/rand"
	"testing"

	"github.com/mireval/rampart/internal/models"
)

func newTestSelector(seed int64, candidates []models.Coordinate) *Selector {
	return NewSelector(models.DefaultGameConfig(), models.DefaultTuning(), candidates, rand.New(rand.NewSource(seed)), testLogger())
}

func TestSpawnThresholdStepFunction(t *testing.T) {
	cases := []struct {
		turn int
		want float64
	}{
		{0, 5}, {3, 5}, {5, 5},
		{6, 10}, {9, 10},
		{10, 15}, {15, 15},
		{16, 20}, {40, 20},
	}
	for _, c := range cases {
		if got := SpawnThresholdForTurn(c.turn); got != c.want {
			t.Errorf("SpawnThresholdForTurn(%d) = %v, want %v", c.turn, got, c.want)
		}
	}

	// Non-decreasing in turn number.
	prev := SpawnThresholdForTurn(0)
	for turn := 1; turn <= 30; turn++ {
		cur := SpawnThresholdForTurn(turn)
		if cur < prev {
			t.Fatalf("threshold decreased: turn %d gives %v after %v", turn, cur, prev)
		}
		prev = cur
	}
}

// TestSelectorToleranceBand verifies the selector never launches from a
// candidate whose risk exceeds 1.5x the minimum of the set.
func TestSelectorToleranceBand(t *testing.T) {
	candidates := []models.Coordinate{
		{X: 13, Y: 0}, {X: 14, Y: 0}, {X: 10, Y: 3},
	}
	perHit := models.DefaultGameConfig().Unit(models.UnitTurret).Damage

	script := func() *fakeGame {
		g := newFakeGame(2, 0, 20)
		// Risks: 2, 3 and 8 threat-hits. Band at 1.5x min keeps the first two.
		for i, hits := range []int{2, 3, 8} {
			tile := models.Coordinate{X: i, Y: 20}
			g.paths[candidates[i]] = []models.Coordinate{tile}
			g.attackers[tile] = hits
		}
		return g
	}

	for seed := int64(1); seed <= 50; seed++ {
		sel := newTestSelector(seed, candidates)
		sel.current = StrategyScoutRush

		g := script()
		dec := sel.Decide(g)
		if dec == nil || dec.Order == nil {
			t.Fatalf("seed %d: expected a launch, got %+v", seed, dec)
		}
		if dec.Order.At == candidates[2] {
			t.Fatalf("seed %d: launched from out-of-band candidate (risk %v > 1.5 x %v)",
				seed, 8*float64(perHit), 2*perHit)
		}
	}
}

// TestSelectorEndToEnd covers the reference scenario: spawn currency 12 at
// turn 3 with all candidate risks equal launches the full affordable batch
// at a uniformly chosen candidate and recomputes the threshold to 5.
func TestSelectorEndToEnd(t *testing.T) {
	candidates := DefaultLaunchCandidates()
	sel := newTestSelector(7, candidates)
	sel.current = StrategyScoutRush

	g := newFakeGame(3, 0, 12)
	// No scripted paths: every candidate is unreachable, so all risks are 0.

	dec := sel.Decide(g)
	if dec == nil || dec.Order == nil {
		t.Fatalf("expected a launch, got %+v", dec)
	}
	if dec.Order.Unit != models.UnitScout {
		t.Errorf("unit = %s, want %s", dec.Order.Unit, models.UnitScout)
	}
	if dec.Order.Quantity != 12 {
		t.Errorf("quantity = %d, want 12 (full spawn budget at cost 1)", dec.Order.Quantity)
	}
	found := false
	for _, c := range candidates {
		if dec.Order.At == c {
			found = true
		}
	}
	if !found {
		t.Errorf("launch point %v not in candidate set", dec.Order.At)
	}
	if got := sel.MinSpawnThreshold(); got != 5 {
		t.Errorf("threshold after turn 3 = %v, want 5", got)
	}
	if got := g.GetResource(models.PoolSpawn); got != 0 {
		t.Errorf("spawn currency after launch = %v, want 0", got)
	}
}

// TestSelectorBelowThresholdRetries verifies that insufficient currency
// skips execution without redrawing the strategy.
func TestSelectorBelowThresholdRetries(t *testing.T) {
	sel := newTestSelector(1, DefaultLaunchCandidates())
	sel.current = StrategyScoutRush

	g := newFakeGame(4, 0, 3) // below the initial threshold of 5
	if dec := sel.Decide(g); dec != nil {
		t.Fatalf("expected no decision below threshold, got %+v", dec)
	}
	if sel.Current() != StrategyScoutRush {
		t.Errorf("strategy redrawn while skipping: %s", sel.Current())
	}
	if got := sel.MinSpawnThreshold(); got != 5 {
		t.Errorf("threshold changed while skipping: %v", got)
	}
}

// TestSelectorPrecheckAborts verifies the engine pre-check is a hard
// precondition: a refused placement aborts the launch for this turn but the
// strategy still redraws and the threshold is still recomputed.
func TestSelectorPrecheckAborts(t *testing.T) {
	sel := newTestSelector(1, DefaultLaunchCandidates())
	sel.current = StrategyScoutRush

	g := newFakeGame(12, 0, 20)
	g.refuseSpawn = true

	dec := sel.Decide(g)
	if dec == nil {
		t.Fatal("expected an executed decision")
	}
	if dec.Order != nil {
		t.Fatalf("expected aborted launch, got order %+v", dec.Order)
	}
	if got := sel.MinSpawnThreshold(); got != SpawnThresholdForTurn(12) {
		t.Errorf("threshold = %v, want %v", got, SpawnThresholdForTurn(12))
	}
	if got := g.GetResource(models.PoolSpawn); got != 20 {
		t.Errorf("currency spent despite aborted launch: %v", got)
	}
}

// TestSelectorDeterminism verifies two selectors with the same seed make
// identical choices over a full game's worth of decisions.
func TestSelectorDeterminism(t *testing.T) {
	run := func(seed int64) ([]Strategy, []models.Coordinate) {
		sel := newTestSelector(seed, DefaultLaunchCandidates())
		var strategies []Strategy
		var points []models.Coordinate
		for turn := 1; turn <= 30; turn++ {
			g := newFakeGame(turn, 0, 50)
			dec := sel.Decide(g)
			if dec == nil {
				continue
			}
			strategies = append(strategies, dec.Executed)
			if dec.Order != nil {
				points = append(points, dec.Order.At)
			}
		}
		return strategies, points
	}

	s1, p1 := run(42)
	s2, p2 := run(42)

	if len(s1) != len(s2) || len(p1) != len(p2) {
		t.Fatalf("decision counts differ: %d/%d strategies, %d/%d launches", len(s1), len(s2), len(p1), len(p2))
	}
	for i := range s1 {
		if s1[i] != s2[i] {
			t.Errorf("decision %d: strategy %s vs %s", i, s1[i], s2[i])
		}
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("launch %d: point %v vs %v", i, p1[i], p2[i])
		}
	}
}
