package models

// Arena geometry. The board is a BoardSize x BoardSize diamond; a cell is
// valid when it falls inside all four diagonal boundaries.
const (
	BoardSize = 28
	HalfBoard = BoardSize / 2
)

// Coordinate is a position on the diamond-shaped arena grid.
// It is immutable and usable as a map key.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InArena reports whether the coordinate lies on a valid arena cell.
func (c Coordinate) InArena() bool {
	return c.X+c.Y >= HalfBoard-1 &&
		c.X+c.Y <= 3*HalfBoard-1 &&
		c.X-c.Y <= HalfBoard &&
		c.Y-c.X <= HalfBoard
}

// OnFriendlySide reports whether the coordinate lies on the agent's half.
func (c Coordinate) OnFriendlySide() bool {
	return c.InArena() && c.Y < HalfBoard
}

// OnFriendlyEdge reports whether mobile units can be deployed here, i.e. the
// coordinate sits on one of the agent's two diagonal spawn edges.
func (c Coordinate) OnFriendlyEdge() bool {
	if !c.InArena() {
		return false
	}
	return c.X+c.Y == HalfBoard-1 || c.X-c.Y == HalfBoard
}

// MirrorX reflects the coordinate across the board's vertical centerline.
func (c Coordinate) MirrorX() Coordinate {
	return Coordinate{X: BoardSize - 1 - c.X, Y: c.Y}
}

// PoolKind identifies one of the two economic resource pools.
type PoolKind int

const (
	// PoolStructure is the slow-regenerating currency spent on stationary
	// builds and upgrades.
	PoolStructure PoolKind = iota
	// PoolSpawn is the turn-granted currency spent on mobile unit batches.
	PoolSpawn
)

// String returns a string representation of the pool kind
func (p PoolKind) String() string {
	switch p {
	case PoolStructure:
		return "structure"
	case PoolSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// Owner distinguishes the agent's units from the opponent's.
type Owner int

const (
	OwnerSelf Owner = iota
	OwnerOpponent
)

// String returns a string representation of the owner
func (o Owner) String() string {
	if o == OwnerOpponent {
		return "opponent"
	}
	return "self"
}

// UnitClass represents the different unit types in the game
type UnitClass string

const (
	UnitWall        UnitClass = "wall"
	UnitSupport     UnitClass = "support"
	UnitTurret      UnitClass = "turret"
	UnitScout       UnitClass = "scout"
	UnitDemolisher  UnitClass = "demolisher"
	UnitInterceptor UnitClass = "interceptor"
)

// AllUnitClasses returns all unit classes in the engine's slot order.
// The order is authoritative: the engine config and snapshot unit lists are
// indexed by it.
func AllUnitClasses() []UnitClass {
	return []UnitClass{
		UnitWall, UnitSupport, UnitTurret,
		UnitScout, UnitDemolisher, UnitInterceptor,
	}
}

// Stationary reports whether the class is a structure rather than a mobile unit.
func (u UnitClass) Stationary() bool {
	switch u {
	case UnitWall, UnitSupport, UnitTurret:
		return true
	default:
		return false
	}
}

// StructureRole is the defensive role a placement plan entry fills.
type StructureRole string

const (
	RoleBarrier           StructureRole = "barrier"
	RoleReinforcedBarrier StructureRole = "reinforced_barrier"
	RoleSupport           StructureRole = "support"
)

// UnitClass maps the role to the structure class that fills it.
func (r StructureRole) UnitClass() UnitClass {
	switch r {
	case RoleReinforcedBarrier:
		return UnitTurret
	case RoleSupport:
		return UnitSupport
	default:
		return UnitWall
	}
}

// Tier is a named priority bucket in the placement plan. Lower tiers are
// spent on first; within a tier, declaration order is authoritative.
type Tier int

const (
	TierInitial Tier = iota
	TierSecondary
	TierTertiary
	TierCorner
)

// String returns a string representation of the tier
func (t Tier) String() string {
	switch t {
	case TierInitial:
		return "initial"
	case TierSecondary:
		return "secondary"
	case TierTertiary:
		return "tertiary"
	case TierCorner:
		return "corner"
	default:
		return "unknown"
	}
}

// AllTiers returns the tiers in spend-priority order.
func AllTiers() []Tier {
	return []Tier{TierInitial, TierSecondary, TierTertiary, TierCorner}
}

// OrderKind represents the kind of an emitted order
type OrderKind string

const (
	OrderBuild   OrderKind = "build"
	OrderUpgrade OrderKind = "upgrade"
	OrderDeploy  OrderKind = "deploy"
)

// Order is one build, upgrade or deploy instruction emitted during a turn.
type Order struct {
	Kind     OrderKind  `json:"kind"`
	Unit     UnitClass  `json:"unit,omitempty"`
	At       Coordinate `json:"at"`
	Quantity int        `json:"quantity,omitempty"`
}
