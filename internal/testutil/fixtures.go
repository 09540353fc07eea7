package testutil

import (
	"testing"

	"github.com/udisondev/monbattle/internal/model"
)

// Fixtures содержит общие определения приёмов для тестов.
var Fixtures = struct {
	Tackle *model.MoveTemplate
	Ember  *model.MoveTemplate
	Growl  *model.MoveTemplate
}{
	Tackle: &model.MoveTemplate{
		Name: "Tackle", Type: model.TypeNormal, Category: model.CategoryPhysical,
		Power: 40, Accuracy: 100, PP: 35,
	},
	Ember: &model.MoveTemplate{
		Name: "Ember", Type: model.TypeFire, Category: model.CategorySpecial,
		Power: 40, Accuracy: 100, PP: 25,
	},
	Growl: &model.MoveTemplate{
		Name: "Growl", Type: model.TypeNormal, Category: model.CategoryStats, Accuracy: 100, PP: 40,
		Effect: model.MoveEffect{Boosts: []model.StatBoost{{Stat: model.StatAttack, Delta: -1}}},
	},
}

// NewSpecies создаёт вид с одинаковыми базовыми статами и learnset из moves (все с 1 уровня).
func NewSpecies(name string, t1 model.ElementType, base int, moves ...*model.MoveTemplate) *model.Species {
	learnset := make([]model.LearnableMove, 0, len(moves))
	for _, m := range moves {
		learnset = append(learnset, model.LearnableMove{Move: m, Level: 1})
	}
	return &model.Species{
		Name:       name,
		Type1:      t1,
		Base:       model.BaseStats{HP: base, Attack: base, Defense: base, SpAttack: base, SpDefense: base, Speed: base},
		ExpBase:    64,
		GrowthRate: model.GrowthMediumFast,
		Learnset:   learnset,
	}
}

// NewCombatant создаёт бойца, проваливая тест при ошибке.
func NewCombatant(tb testing.TB, sp *model.Species, level int) *model.Combatant {
	tb.Helper()
	c, err := model.NewCombatant(sp, level, sp.MovesAtLevel(level))
	if err != nil {
		tb.Fatalf("NewCombatant(%s, %d): %v", sp.Name, level, err)
	}
	return c
}
