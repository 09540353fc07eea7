package model

// MoveCategory decides which stats a move uses, or that it deals no damage at all.
type MoveCategory int8

const (
	CategoryPhysical MoveCategory = iota
	CategorySpecial
	CategoryStats // stat-modifying, never goes through damage resolution
)

func (c MoveCategory) String() string {
	switch c {
	case CategoryPhysical:
		return "physical"
	case CategorySpecial:
		return "special"
	case CategoryStats:
		return "stats"
	default:
		return "invalid"
	}
}

// ParseMoveCategory resolves "physical", "special" or "stats".
func ParseMoveCategory(s string) (MoveCategory, bool) {
	switch s {
	case "physical":
		return CategoryPhysical, true
	case "special":
		return CategorySpecial, true
	case "stats":
		return CategoryStats, true
	}
	return CategoryPhysical, false
}

// MoveTarget selects who receives a move effect.
type MoveTarget int8

const (
	TargetOther MoveTarget = iota
	TargetSelf
)

// ParseMoveTarget resolves "self" or "other". Empty maps to TargetOther.
func ParseMoveTarget(s string) (MoveTarget, bool) {
	switch s {
	case "", "other":
		return TargetOther, true
	case "self":
		return TargetSelf, true
	}
	return TargetOther, false
}

// Stat names a stage-modifiable battle stat.
type Stat int8

const (
	StatAttack Stat = iota
	StatDefense
	StatSpAttack
	StatSpDefense
	StatSpeed

	StatCount
)

var statNames = [StatCount]string{"attack", "defense", "sp_attack", "sp_defense", "speed"}

func (s Stat) String() string {
	if s < 0 || s >= StatCount {
		return "invalid"
	}
	return statNames[s]
}

// DisplayName returns the stat name as shown in battle messages.
func (s Stat) DisplayName() string {
	switch s {
	case StatAttack:
		return "Attack"
	case StatDefense:
		return "Defense"
	case StatSpAttack:
		return "Sp. Attack"
	case StatSpDefense:
		return "Sp. Defense"
	case StatSpeed:
		return "Speed"
	default:
		return "invalid"
	}
}

// ParseStat resolves a stat key such as "sp_attack".
func ParseStat(s string) (Stat, bool) {
	for i, name := range statNames {
		if name == s {
			return Stat(i), true
		}
	}
	return StatAttack, false
}

// StatBoost changes one stat stage by Delta (negative lowers it).
type StatBoost struct {
	Stat  Stat
	Delta int
}

// MoveEffect is the non-damage payload of a move.
type MoveEffect struct {
	Boosts []StatBoost
	Status StatusID
}

// IsEmpty reports whether the effect does nothing.
func (e MoveEffect) IsEmpty() bool {
	return len(e.Boosts) == 0 && e.Status == StatusNone
}

// SecondaryEffect is a chance-gated effect rolled after the move lands.
type SecondaryEffect struct {
	Chance int // percent, 0..100
	Target MoveTarget
	Effect MoveEffect
}

// MoveTemplate is the immutable definition of a move, shared by every Move instance.
type MoveTemplate struct {
	Name        string
	Description string
	Type        ElementType
	Category    MoveCategory
	Power       int
	Accuracy    int
	AlwaysHits  bool
	PP          int
	Priority    int
	Effect      MoveEffect
	Secondary   []SecondaryEffect
	Target      MoveTarget
}

// IsDamaging reports whether the move goes through damage resolution.
func (t *MoveTemplate) IsDamaging() bool {
	return t.Category != CategoryStats
}
