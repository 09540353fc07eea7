package model

// GrowthRate selects the experience curve of a species.
type GrowthRate int8

const (
	GrowthMediumFast GrowthRate = iota
	GrowthErratic
	GrowthFluctuating
	GrowthMediumSlow
	GrowthFast
	GrowthSlow
)

var growthKeys = map[string]GrowthRate{
	"medium_fast": GrowthMediumFast,
	"erratic":     GrowthErratic,
	"fluctuating": GrowthFluctuating,
	"medium_slow": GrowthMediumSlow,
	"fast":        GrowthFast,
	"slow":        GrowthSlow,
}

// ParseGrowthRate resolves a growth rate key. Empty maps to GrowthMediumFast.
func ParseGrowthRate(s string) (GrowthRate, bool) {
	if s == "" {
		return GrowthMediumFast, true
	}
	g, ok := growthKeys[s]
	return g, ok
}

// BaseStats are the per-species base values fed into DeriveStats.
type BaseStats struct {
	HP        int
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int
}

// LearnableMove unlocks Move when a creature reaches Level.
type LearnableMove struct {
	Move  *MoveTemplate
	Level int
}

// Species is the immutable definition of a creature kind.
// Loaded once into the catalog and shared by all combatants of that kind.
type Species struct {
	ID          int32
	Name        string
	Description string
	Type1       ElementType
	Type2       ElementType
	Base        BaseStats
	CatchRate   int
	ExpBase     int
	GrowthRate  GrowthRate
	Learnset    []LearnableMove
}

// MovesAtLevel returns the templates a creature of this species knows at level:
// the last MaxMoves learnset entries unlocked at or below level, in learnset order.
func (s *Species) MovesAtLevel(level int) []*MoveTemplate {
	var known []*MoveTemplate
	for _, lm := range s.Learnset {
		if lm.Level <= level {
			known = append(known, lm.Move)
		}
	}
	if len(known) > MaxMoves {
		known = known[len(known)-MaxMoves:]
	}
	return known
}
