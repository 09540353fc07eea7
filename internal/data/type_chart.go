package data

import (
	"fmt"

	"github.com/udisondev/monbattle/internal/model"
)

const typedCount = int(model.ElementCount) - 1

// typeChart[attacker-1][defender-1] is the damage multiplier.
// Row/column order follows model.ElementType starting at TypeNormal.
var typeChart = [typedCount][typedCount]float64{
	//         NOR  FIR  WAT  ELE  GRA  ICE  FIG  POI  GRO  FLY  PSY  BUG  ROC  GHO  DRA  DAR  STE  FAI
	/* NOR */ {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, .5, 0, 1, 1, .5, 1},
	/* FIR */ {1, .5, .5, 1, 2, 2, 1, 1, 1, 1, 1, 2, .5, 1, .5, 1, 2, 1},
	/* WAT */ {1, 2, .5, 1, .5, 1, 1, 1, 2, 1, 1, 1, 2, 1, .5, 1, 1, 1},
	/* ELE */ {1, 1, 2, .5, .5, 1, 1, 1, 0, 2, 1, 1, 1, 1, .5, 1, 1, 1},
	/* GRA */ {1, .5, 2, 1, .5, 1, 1, .5, 2, .5, 1, .5, 2, 1, .5, 1, .5, 1},
	/* ICE */ {1, .5, .5, 1, 2, .5, 1, 1, 2, 2, 1, 1, 1, 1, 2, 1, .5, 1},
	/* FIG */ {2, 1, 1, 1, 1, 2, 1, .5, 1, .5, .5, .5, 2, 0, 1, 2, 2, .5},
	/* POI */ {1, 1, 1, 1, 2, 1, 1, .5, .5, 1, 1, 1, .5, .5, 1, 1, 0, 2},
	/* GRO */ {1, 2, 1, 2, .5, 1, 1, 2, 1, 0, 1, .5, 2, 1, 1, 1, 2, 1},
	/* FLY */ {1, 1, 1, .5, 2, 1, 2, 1, 1, 1, 1, 2, .5, 1, 1, 1, .5, 1},
	/* PSY */ {1, 1, 1, 1, 1, 1, 2, 2, 1, 1, .5, 1, 1, 1, 1, 0, .5, 1},
	/* BUG */ {1, .5, 1, 1, 2, 1, .5, .5, 1, .5, 2, 1, 1, .5, 1, 2, .5, .5},
	/* ROC */ {1, 2, 1, 1, 1, 2, .5, 1, .5, 2, 1, 2, 1, 1, 1, 1, .5, 1},
	/* GHO */ {0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 2, 1, .5, 1, 1},
	/* DRA */ {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1, .5, 0},
	/* DAR */ {1, 1, 1, 1, 1, 1, .5, 1, 1, 1, 2, 1, 1, 2, 1, .5, 1, .5},
	/* STE */ {1, .5, .5, .5, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1, 1, 1, .5, 2},
	/* FAI */ {1, .5, 1, 1, 1, 1, 2, .5, 1, 1, 1, 1, 1, 1, 2, 2, .5, 1},
}

// Effectiveness returns the damage multiplier of an attack type against one defending type.
// TypeNone on either side is neutral. Panics on values outside the enum.
func Effectiveness(attack, defense model.ElementType) float64 {
	if !attack.Valid() || !defense.Valid() {
		panic(fmt.Sprintf("data: effectiveness lookup with invalid types %d vs %d", attack, defense))
	}
	if attack == model.TypeNone || defense == model.TypeNone {
		return 1
	}
	return typeChart[attack-1][defense-1]
}

// DualEffectiveness multiplies the effectiveness against both defending types.
func DualEffectiveness(attack, type1, type2 model.ElementType) float64 {
	return Effectiveness(attack, type1) * Effectiveness(attack, type2)
}
