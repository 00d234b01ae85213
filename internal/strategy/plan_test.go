package strategy

import (
	"testing"

	"github.com/mireval/rampart/internal/models"
)

func TestDefaultPlanTierOrder(t *testing.T) {
	plan := DefaultPlan(models.DefaultTuning())

	secondary := plan.Tier(models.TierSecondary)
	if len(secondary) != len(diagonalLine) {
		t.Fatalf("secondary tier has %d entries, want %d", len(secondary), len(diagonalLine))
	}
	for i, e := range secondary {
		if e.At != diagonalLine[i] {
			t.Errorf("secondary[%d] = %v, want declaration-order %v", i, e.At, diagonalLine[i])
		}
		if !e.RequiresUpgrade {
			t.Errorf("secondary[%d] should require upgrade", i)
		}
		if e.Role != models.RoleBarrier {
			t.Errorf("secondary[%d] role = %s, want %s", i, e.Role, models.RoleBarrier)
		}
	}

	if got := plan.MustExist(); len(got) != len(initialAnchors) {
		t.Fatalf("must-exist set has %d coordinates, want %d", len(got), len(initialAnchors))
	}
}

func TestDefaultPlanMirrorsTertiaryInward(t *testing.T) {
	plan := DefaultPlan(models.DefaultTuning())

	want := []models.Coordinate{
		{X: 21, Y: 11}, {X: 20, Y: 10}, {X: 19, Y: 9}, {X: 18, Y: 8}, {X: 17, Y: 7},
	}
	tertiary := plan.Tier(models.TierTertiary)
	if len(tertiary) != len(want) {
		t.Fatalf("tertiary tier has %d entries, want %d", len(tertiary), len(want))
	}
	for i, e := range tertiary {
		if e.At != want[i] {
			t.Errorf("tertiary[%d] = %v, want %v", i, e.At, want[i])
		}
		if e.Role != models.RoleSupport {
			t.Errorf("tertiary[%d] role = %s, want %s", i, e.Role, models.RoleSupport)
		}
	}
}

// TestDefaultPlanProtectsCorridor verifies no mirrored reinforcement lands
// inside the protected central corridor.
func TestDefaultPlanProtectsCorridor(t *testing.T) {
	tuning := models.DefaultTuning()
	plan := DefaultPlan(tuning)

	for _, e := range plan.Tier(models.TierTertiary) {
		if e.At.X >= tuning.CorridorMinX && e.At.X <= tuning.CorridorMaxX {
			t.Errorf("tertiary entry %v inside protected corridor [%d, %d]",
				e.At, tuning.CorridorMinX, tuning.CorridorMaxX)
		}
	}
}

func TestMirrorInward(t *testing.T) {
	cases := []struct {
		in, want models.Coordinate
	}{
		{models.Coordinate{X: 5, Y: 11}, models.Coordinate{X: 21, Y: 11}},
		{models.Coordinate{X: 10, Y: 6}, models.Coordinate{X: 16, Y: 6}},
		{models.Coordinate{X: 22, Y: 11}, models.Coordinate{X: 6, Y: 11}},
	}
	for _, c := range cases {
		if got := mirrorInward(c.in); got != c.want {
			t.Errorf("mirrorInward(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDefaultLaunchCandidatesOnFriendlyEdges(t *testing.T) {
	for _, c := range DefaultLaunchCandidates() {
		if !c.OnFriendlyEdge() {
			t.Errorf("candidate %v is not on a friendly spawn edge", c)
		}
	}
}
