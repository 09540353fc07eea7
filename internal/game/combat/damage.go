package combat

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/udisondev/monbattle/internal/data"
	"github.com/udisondev/monbattle/internal/game/status"
	"github.com/udisondev/monbattle/internal/model"
)

// Params tunes the random modifiers of damage resolution.
type Params struct {
	CritChance  float64 // probability in [0, 1]
	VarianceMin float64
	VarianceMax float64
}

// DefaultParams: 6% critical chance, damage variance 0.85..1.00.
func DefaultParams() Params {
	return Params{
		CritChance:  0.06,
		VarianceMin: 0.85,
		VarianceMax: 1.00,
	}
}

// DamageOutcome describes a single resolved attack.
type DamageOutcome struct {
	Damage   int     // HP actually computed by the formula (before clamping to defender HP)
	Critical float64 // 1 or 2
	Type     float64 // product of effectiveness against both defender types
	Fainted  bool
}

// IsSuperEffective reports a type multiplier above neutral.
func (o DamageOutcome) IsSuperEffective() bool { return o.Type > 1 }

// IsNotVeryEffective reports a type multiplier below neutral but not immune.
func (o DamageOutcome) IsNotVeryEffective() bool { return o.Type > 0 && o.Type < 1 }

// Resolver applies moves between combatants.
// Stateless apart from its parameters, so one Resolver can serve many battles.
type Resolver struct {
	params   Params
	statuses *status.Registry
}

// NewResolver creates a resolver. A nil registry selects status.Default().
func NewResolver(params Params, statuses *status.Registry) *Resolver {
	if statuses == nil {
		statuses = status.Default()
	}
	if params.VarianceMax < params.VarianceMin {
		panic(fmt.Sprintf("combat: variance range [%v, %v] is inverted", params.VarianceMin, params.VarianceMax))
	}
	return &Resolver{params: params, statuses: statuses}
}

// Statuses returns the status registry used by the resolver.
func (r *Resolver) Statuses() *status.Registry { return r.statuses }

// ResolveAttack uses a damaging move of attacker against defender.
//
// Consumes one PP, then computes:
//
//	base  = ((2*L/5 + 2) * power * (atk/def)) / 50 + 2
//	total = floor(base * variance * type * crit)
//
// Special moves use SpAttack/SpDefense, others Attack/Defense.
// The variance draw is applied unconditionally; accuracy does not gate the hit.
// variance = VarianceMin + (VarianceMax-VarianceMin)*src.Float64(): with a
// math/rand source the draw is in [0, 1), so VarianceMax is approached but only
// reached by sources that can return exactly 1.
//
// Secondary effects are skipped when the defender is immune (type multiplier 0).
// Callers should not target a fainted defender: the move still spends PP, deals
// nothing and the faint message is not repeated.
// Returns ErrNotDamaging for stat moves and ErrNoPP for depleted moves, without mutating anything.
func (r *Resolver) ResolveAttack(attacker, defender *model.Combatant, move *model.Move, src Source) (DamageOutcome, error) {
	if attacker == nil || defender == nil || move == nil {
		panic("combat: ResolveAttack with nil argument")
	}
	tmpl := move.Template()
	if !tmpl.IsDamaging() {
		return DamageOutcome{}, fmt.Errorf("resolving %s: %w", tmpl.Name, model.ErrNotDamaging)
	}
	if err := move.Use(); err != nil {
		return DamageOutcome{}, err
	}

	variance := r.params.VarianceMin + (r.params.VarianceMax-r.params.VarianceMin)*src.Float64()

	defSpecies := defender.Species()
	typeMul := data.DualEffectiveness(tmpl.Type, defSpecies.Type1, defSpecies.Type2)

	critical := 1.0
	if src.Float64() < r.params.CritChance {
		critical = 2.0
	}

	modifiers := variance * typeMul * critical

	atkStat, defStat := model.StatAttack, model.StatDefense
	if tmpl.Category == model.CategorySpecial {
		atkStat, defStat = model.StatSpAttack, model.StatSpDefense
	}
	attack := attacker.EffectiveStat(atkStat)
	defense := defender.EffectiveStat(defStat)

	level := float64(attacker.Level())
	base := ((2*level/5+2)*float64(tmpl.Power)*(attack/defense))/50 + 2
	total := int(math.Floor(base * modifiers))

	wasFainted := defender.IsFainted()
	defender.ReduceCurrentHP(total)

	outcome := DamageOutcome{
		Damage:   total,
		Critical: critical,
		Type:     typeMul,
		Fainted:  defender.IsFainted(),
	}

	slog.Debug("attack resolved",
		"attacker", attacker.Name(),
		"defender", defender.Name(),
		"move", tmpl.Name,
		"damage", total,
		"crit", critical,
		"type", typeMul,
		"hp", defender.CurrentHP())

	if outcome.Fainted && !wasFainted {
		defender.EnqueueMessage(fmt.Sprintf(model.FaintMessage, defender.Name()))
	}

	if typeMul > 0 {
		r.applySecondary(attacker, defender, tmpl, src)
	}

	return outcome, nil
}

// UseMove dispatches a move: damaging moves go through ResolveAttack,
// stat moves through UseStatusMove (with a neutral outcome).
func (r *Resolver) UseMove(attacker, defender *model.Combatant, move *model.Move, src Source) (DamageOutcome, error) {
	if move.Template().IsDamaging() {
		return r.ResolveAttack(attacker, defender, move, src)
	}
	if err := r.UseStatusMove(attacker, defender, move, src); err != nil {
		return DamageOutcome{}, err
	}
	return DamageOutcome{Critical: 1, Type: 1, Fainted: defender.IsFainted()}, nil
}
