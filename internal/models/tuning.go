package models

import "fmt"

// Tuning holds the agent's strategy knobs. All fields have sane defaults so
// the agent runs without a tuning file.
type Tuning struct {
	// Seed for the injected pseudorandom source. Zero means seed from the
	// clock at startup (the chosen seed is logged either way).
	Seed int64 `yaml:"seed"`

	// LaunchTolerance is the relative tolerance band for launch points: a
	// candidate stays eligible while its risk is at most LaunchTolerance
	// times the minimum risk of the candidate set.
	LaunchTolerance float64 `yaml:"launch_tolerance"`

	// InitialSpawnThreshold is the spawn-currency floor before the first
	// executed strategy; later thresholds come from the turn step function.
	InitialSpawnThreshold float64 `yaml:"initial_spawn_threshold"`

	// CorridorMinX and CorridorMaxX bound (inclusive) the protected central
	// corridor that never receives structures, preserving a clear path for
	// mobile units.
	CorridorMinX int `yaml:"corridor_min_x"`
	CorridorMaxX int `yaml:"corridor_max_x"`

	// ReplayDir, when non-empty, enables the per-game decision log.
	ReplayDir string `yaml:"replay_dir"`
}

// DefaultTuning returns the reference tuning values.
func DefaultTuning() Tuning {
	return Tuning{
		LaunchTolerance:       1.5,
		InitialSpawnThreshold: 5,
		CorridorMinX:          11,
		CorridorMaxX:          16,
	}
}

// Validate checks the tuning for values the strategy cannot work with.
func (t Tuning) Validate() error {
	if t.LaunchTolerance < 1 {
		return fmt.Errorf("launch_tolerance must be >= 1, got %g", t.LaunchTolerance)
	}
	if t.InitialSpawnThreshold < 0 {
		return fmt.Errorf("initial_spawn_threshold must be >= 0, got %g", t.InitialSpawnThreshold)
	}
	if t.CorridorMinX > t.CorridorMaxX {
		return fmt.Errorf("corridor bounds inverted: [%d, %d]", t.CorridorMinX, t.CorridorMaxX)
	}
	if t.CorridorMinX < 0 || t.CorridorMaxX >= BoardSize {
		return fmt.Errorf("corridor bounds outside board: [%d, %d]", t.CorridorMinX, t.CorridorMaxX)
	}
	return nil
}
