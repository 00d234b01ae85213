package models

import "fmt"

// RawUnitInfo is one entry of the engine's unitInformation config array.
type RawUnitInfo struct {
	Shorthand    string  `json:"shorthand"`
	BuildCost    float64 `json:"cost1"`
	SpawnCost    float64 `json:"cost2"`
	UpgradeCost  float64 `json:"upgradeCost"`
	AttackRange  float64 `json:"attackRange"`
	AttackDamage float64 `json:"attackDamageWalker"`
	StartHealth  float64 `json:"startHealth"`
}

// RawGameConfig mirrors the configuration message the engine delivers as the
// first message of a game session.
type RawGameConfig struct {
	UnitInformation []RawUnitInfo `json:"unitInformation"`
}

// UnitSpec describes one unit type resolved from the engine config.
type UnitSpec struct {
	Class       UnitClass
	Shorthand   string
	BuildCost   float64 // structure currency, stationary classes only
	SpawnCost   float64 // spawn currency, mobile classes only
	UpgradeCost float64
	AttackRange float64
	Damage      float64
	Health      float64
}

// GameConfig is the immutable per-game configuration: unit identifiers and
// cost tables resolved once at initialization and threaded through every
// component that needs them. It is never mutated after ResolveGameConfig.
type GameConfig struct {
	units map[UnitClass]UnitSpec
}

// ResolveGameConfig binds the engine's positional unitInformation array to
// typed unit specs. The array index order is the engine's slot order.
func ResolveGameConfig(raw *RawGameConfig) (*GameConfig, error) {
	classes := AllUnitClasses()
	if len(raw.UnitInformation) < len(classes) {
		return nil, fmt.Errorf("config has %d unit entries, need %d", len(raw.UnitInformation), len(classes))
	}

	units := make(map[UnitClass]UnitSpec, len(classes))
	for i, class := range classes {
		info := raw.UnitInformation[i]
		if info.Shorthand == "" {
			return nil, fmt.Errorf("unit slot %d (%s) has no shorthand", i, class)
		}
		units[class] = UnitSpec{
			Class:       class,
			Shorthand:   info.Shorthand,
			BuildCost:   info.BuildCost,
			SpawnCost:   info.SpawnCost,
			UpgradeCost: info.UpgradeCost,
			AttackRange: info.AttackRange,
			Damage:      info.AttackDamage,
			Health:      info.StartHealth,
		}
	}
	return &GameConfig{units: units}, nil
}

// Unit returns the spec for a unit class.
func (c *GameConfig) Unit(class UnitClass) UnitSpec {
	return c.units[class]
}

// Shorthand returns the engine identifier for a unit class.
func (c *GameConfig) Shorthand(class UnitClass) string {
	return c.units[class].Shorthand
}

// ClassForShorthand resolves an engine identifier back to a unit class.
func (c *GameConfig) ClassForShorthand(shorthand string) (UnitClass, bool) {
	for _, class := range AllUnitClasses() {
		if c.units[class].Shorthand == shorthand {
			return class, true
		}
	}
	return "", false
}

// PairCost returns the combined build+upgrade cost for a structure role.
// A build+upgrade pair is an atomic decision unit: an entry is only built if
// its upgrade is also affordable.
func (c *GameConfig) PairCost(role StructureRole) float64 {
	spec := c.units[role.UnitClass()]
	return spec.BuildCost + spec.UpgradeCost
}

// DefaultGameConfig returns the reference cost tables used when no engine
// config is available (plan previews and tests).
func DefaultGameConfig() *GameConfig {
	cfg, err := ResolveGameConfig(&RawGameConfig{
		UnitInformation: []RawUnitInfo{
			{Shorthand: "FF", BuildCost: 1, UpgradeCost: 1, StartHealth: 60},
			{Shorthand: "EF", BuildCost: 4, UpgradeCost: 4, StartHealth: 30},
			{Shorthand: "DF", BuildCost: 2, UpgradeCost: 4, AttackRange: 2.5, AttackDamage: 5, StartHealth: 75},
			{Shorthand: "PI", SpawnCost: 1, StartHealth: 15},
			{Shorthand: "EI", SpawnCost: 3, AttackRange: 4.5, AttackDamage: 8, StartHealth: 5},
			{Shorthand: "SI", SpawnCost: 1, AttackRange: 4.5, AttackDamage: 20, StartHealth: 40},
		},
	})
	if err != nil {
		panic(err) // static table, cannot fail
	}
	return cfg
}
