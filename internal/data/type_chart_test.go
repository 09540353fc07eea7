package data

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/monbattle/internal/model"
)

func TestEffectiveness_NoneIsNeutral(t *testing.T) {
	for et := model.TypeNone; et < model.ElementCount; et++ {
		assert.Equal(t, 1.0, Effectiveness(model.TypeNone, et), "none vs %s", et)
		assert.Equal(t, 1.0, Effectiveness(et, model.TypeNone), "%s vs none", et)
	}
}

func TestEffectiveness_KnownMatchups(t *testing.T) {
	tests := []struct {
		attack, defense model.ElementType
		want            float64
	}{
		{model.TypeFire, model.TypeGrass, 2},
		{model.TypeFire, model.TypeWater, 0.5},
		{model.TypeWater, model.TypeFire, 2},
		{model.TypeElectric, model.TypeGround, 0},
		{model.TypeNormal, model.TypeGhost, 0},
		{model.TypeGhost, model.TypeNormal, 0},
		{model.TypeDragon, model.TypeFairy, 0},
		{model.TypeFighting, model.TypeDark, 2},
		{model.TypeNormal, model.TypeNormal, 1},
		{model.TypeIce, model.TypeDragon, 2},
		{model.TypeSteel, model.TypeFairy, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Effectiveness(tt.attack, tt.defense), "%s vs %s", tt.attack, tt.defense)
	}
}

func TestEffectiveness_ValuesInDomain(t *testing.T) {
	for a := model.TypeNone; a < model.ElementCount; a++ {
		for d := model.TypeNone; d < model.ElementCount; d++ {
			assert.Contains(t, []float64{0, 0.5, 1, 2}, Effectiveness(a, d))
		}
	}
}

func TestDualEffectiveness(t *testing.T) {
	// fire vs water/ice: 0.5 * 2
	assert.Equal(t, 1.0, DualEffectiveness(model.TypeFire, model.TypeWater, model.TypeIce))
	// electric vs water/flying: 2 * 2
	assert.Equal(t, 4.0, DualEffectiveness(model.TypeElectric, model.TypeWater, model.TypeFlying))
	// electric vs rock/ground: 1 * 0
	assert.Equal(t, 0.0, DualEffectiveness(model.TypeElectric, model.TypeRock, model.TypeGround))

	for a := model.TypeNone; a < model.ElementCount; a++ {
		for d := model.TypeNone; d < model.ElementCount; d++ {
			assert.Equal(t, Effectiveness(a, d), DualEffectiveness(a, d, model.TypeNone))
			for d2 := model.TypeNone; d2 < model.ElementCount; d2++ {
				assert.Equal(t, Effectiveness(a, d)*Effectiveness(a, d2), DualEffectiveness(a, d, d2))
			}
		}
	}
}

func TestEffectiveness_InvalidPanics(t *testing.T) {
	assert.Panics(t, func() { Effectiveness(model.ElementCount, model.TypeFire) })
	assert.Panics(t, func() { Effectiveness(model.TypeFire, model.ElementType(-1)) })
}
