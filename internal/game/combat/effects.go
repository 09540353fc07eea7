package combat

import (
	"fmt"

	"github.com/udisondev/monbattle/internal/model"
)

// UseStatusMove uses a stat-modifying move: consumes one PP, applies the primary
// effect to the move target, then rolls secondary effects.
func (r *Resolver) UseStatusMove(attacker, defender *model.Combatant, move *model.Move, src Source) error {
	if attacker == nil || defender == nil || move == nil {
		panic("combat: UseStatusMove with nil argument")
	}
	tmpl := move.Template()
	if tmpl.IsDamaging() {
		return fmt.Errorf("using %s as status move: it deals damage", tmpl.Name)
	}
	if err := move.Use(); err != nil {
		return err
	}

	r.ApplyMoveEffect(pickTarget(tmpl.Target, attacker, defender), tmpl.Effect)
	r.applySecondary(attacker, defender, tmpl, src)
	return nil
}

// ApplyMoveEffect applies stat boosts and status of effect to target.
// Fainted targets are left untouched.
func (r *Resolver) ApplyMoveEffect(target *model.Combatant, effect model.MoveEffect) {
	if target.IsFainted() || effect.IsEmpty() {
		return
	}
	for _, b := range effect.Boosts {
		applied := target.ChangeStatStage(b.Stat, b.Delta)
		target.EnqueueMessage(boostMessage(target.Name(), b, applied))
	}
	if effect.Status != model.StatusNone {
		r.statuses.Inflict(target, effect.Status)
	}
}

// applySecondary rolls each secondary effect of tmpl once.
func (r *Resolver) applySecondary(attacker, defender *model.Combatant, tmpl *model.MoveTemplate, src Source) {
	for _, sec := range tmpl.Secondary {
		if sec.Chance <= 0 || src.IntN(100) >= sec.Chance {
			continue
		}
		r.ApplyMoveEffect(pickTarget(sec.Target, attacker, defender), sec.Effect)
	}
}

func pickTarget(t model.MoveTarget, attacker, defender *model.Combatant) *model.Combatant {
	if t == model.TargetSelf {
		return attacker
	}
	return defender
}

func boostMessage(name string, b model.StatBoost, applied int) string {
	stat := b.Stat.DisplayName()
	switch {
	case applied == 0 && b.Delta > 0:
		return fmt.Sprintf("%s's %s won't go any higher", name, stat)
	case applied == 0:
		return fmt.Sprintf("%s's %s won't go any lower", name, stat)
	case applied >= 2:
		return fmt.Sprintf("%s's %s rose sharply", name, stat)
	case applied > 0:
		return fmt.Sprintf("%s's %s rose", name, stat)
	case applied <= -2:
		return fmt.Sprintf("%s's %s fell harshly", name, stat)
	default:
		return fmt.Sprintf("%s's %s fell", name, stat)
	}
}
