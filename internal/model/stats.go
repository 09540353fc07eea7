package model

// MaxStatStage bounds stat stages in both directions.
const MaxStatStage = 6

// Stats are the effective battle stats of a combatant at a given level.
type Stats struct {
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int
	MaxHP     int
}

// DeriveStats computes battle stats from base stats and level.
// The additive offsets keep low-level stats above zero.
func DeriveStats(s *Species, level int) Stats {
	if s == nil {
		panic("model: DeriveStats with nil species")
	}
	b := s.Base
	return Stats{
		Attack:    b.Attack*level/100 + 1,
		Defense:   b.Defense*level/100 + 2,
		SpAttack:  b.SpAttack*level/100 + 2,
		SpDefense: b.SpDefense*level/100 + 2,
		Speed:     b.Speed*level/100 + 3,
		MaxHP:     b.HP*level/20 + 10,
	}
}

// Get returns the value of a stage-modifiable stat.
func (st Stats) Get(stat Stat) int {
	switch stat {
	case StatAttack:
		return st.Attack
	case StatDefense:
		return st.Defense
	case StatSpAttack:
		return st.SpAttack
	case StatSpDefense:
		return st.SpDefense
	case StatSpeed:
		return st.Speed
	}
	panic("model: unknown stat")
}

// StageMultiplier converts a stat stage into a multiplier:
// +1 → 1.5, +2 → 2 ... +6 → 4; -1 → 2/3 ... -6 → 1/4.
func StageMultiplier(stage int) float64 {
	stage = clampStage(stage)
	if stage >= 0 {
		return float64(2+stage) / 2
	}
	return 2 / float64(2-stage)
}

func clampStage(stage int) int {
	if stage > MaxStatStage {
		return MaxStatStage
	}
	if stage < -MaxStatStage {
		return -MaxStatStage
	}
	return stage
}
