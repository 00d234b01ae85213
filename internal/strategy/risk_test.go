package strategy

import (
	"testing"

	"github.com/mireval/rampart/internal/models"
)

func TestEstimateRisksOrderAndSum(t *testing.T) {
	g := newFakeGame(1, 0, 0)

	a := models.Coordinate{X: 13, Y: 0}
	b := models.Coordinate{X: 14, Y: 0}
	c := models.Coordinate{X: 6, Y: 7} // unreachable: no scripted path

	g.paths[a] = []models.Coordinate{{X: 13, Y: 0}, {X: 13, Y: 1}, {X: 13, Y: 2}}
	g.attackers[models.Coordinate{X: 13, Y: 1}] = 1
	g.attackers[models.Coordinate{X: 13, Y: 2}] = 2

	g.paths[b] = []models.Coordinate{{X: 14, Y: 0}}

	risks := EstimateRisks(g, g.cfg, []models.Coordinate{a, b, c})
	if len(risks) != 3 {
		t.Fatalf("got %d scores, want 3", len(risks))
	}

	perHit := g.cfg.Unit(models.UnitTurret).Damage
	if want := 3 * perHit; risks[0] != want {
		t.Errorf("risk[0] = %v, want %v", risks[0], want)
	}
	if risks[1] != 0 {
		t.Errorf("risk[1] = %v, want 0 (no threats on route)", risks[1])
	}
	if risks[2] != 0 {
		t.Errorf("risk[2] = %v, want 0 (unreachable candidate)", risks[2])
	}
}

func TestEstimateRisksNoCandidates(t *testing.T) {
	g := newFakeGame(1, 0, 0)
	if risks := EstimateRisks(g, g.cfg, nil); len(risks) != 0 {
		t.Fatalf("got %d scores for no candidates, want 0", len(risks))
	}
}
