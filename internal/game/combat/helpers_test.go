package combat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/monbattle/internal/model"
)

// scriptedSource replays fixed draws. Once a script runs out it falls back to
// values that never trigger a critical hit or a secondary effect.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return n - 1
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

// noCritFullRoll fixes variance to 1.0 and forbids a critical hit.
func noCritFullRoll() *scriptedSource {
	return &scriptedSource{floats: []float64{1.0, 0.99}}
}

var (
	tackle = &model.MoveTemplate{Name: "Tackle", Type: model.TypeNormal, Category: model.CategoryPhysical, Power: 40, Accuracy: 100, PP: 35}
	ember  = &model.MoveTemplate{
		Name: "Ember", Type: model.TypeFire, Category: model.CategorySpecial, Power: 40, Accuracy: 100, PP: 25,
		Secondary: []model.SecondaryEffect{{Chance: 10, Target: model.TargetOther, Effect: model.MoveEffect{Status: model.StatusBurn}}},
	}
	growl = &model.MoveTemplate{
		Name: "Growl", Type: model.TypeNormal, Category: model.CategoryStats, Accuracy: 100, PP: 40,
		Effect: model.MoveEffect{Boosts: []model.StatBoost{{Stat: model.StatAttack, Delta: -1}}},
	}
	swordsDance = &model.MoveTemplate{
		Name: "Swords Dance", Type: model.TypeNormal, Category: model.CategoryStats, PP: 20, Target: model.TargetSelf,
		Effect: model.MoveEffect{Boosts: []model.StatBoost{{Stat: model.StatAttack, Delta: 2}}},
	}
	toxic = &model.MoveTemplate{
		Name: "Toxic", Type: model.TypePoison, Category: model.CategoryStats, PP: 10,
		Effect: model.MoveEffect{Status: model.StatusPoison},
	}
)

func newTestSpecies(name string, t1, t2 model.ElementType, base model.BaseStats) *model.Species {
	return &model.Species{Name: name, Type1: t1, Type2: t2, Base: base, ExpBase: 64, GrowthRate: model.GrowthMediumFast}
}

func uniformBase(v int) model.BaseStats {
	return model.BaseStats{HP: v, Attack: v, Defense: v, SpAttack: v, SpDefense: v, Speed: v}
}

func newTestCombatant(t *testing.T, sp *model.Species, level int, moves ...*model.MoveTemplate) *model.Combatant {
	t.Helper()
	c, err := model.NewCombatant(sp, level, moves)
	require.NoError(t, err)
	return c
}
