// Package duel runs a single-creature battle to completion.
// Turn order: move priority, then effective speed, then a coin flip.
package duel

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/monbattle/internal/game/combat"
	"github.com/udisondev/monbattle/internal/model"
)

// Result represents the outcome of a duel.
type Result int

const (
	ResultSideAWin Result = iota
	ResultSideBWin
	// ResultTimeout: max turns reached with both sides standing.
	ResultTimeout
	// ResultStalled: neither side has PP left.
	ResultStalled
)

func (r Result) String() string {
	switch r {
	case ResultSideAWin:
		return "side_a_win"
	case ResultSideBWin:
		return "side_b_win"
	case ResultTimeout:
		return "timeout"
	case ResultStalled:
		return "stalled"
	default:
		return "unknown"
	}
}

// Outcome summarizes a finished duel.
type Outcome struct {
	Result Result
	Turns  int
	Log    []string // all messages in display order
}

// Duel pits two combatants against each other. Each side picks random usable moves.
type Duel struct {
	resolver *combat.Resolver
	maxTurns int
	a, b     *model.Combatant
	log      []string
}

// New creates a duel. Combatants must not be shared with any other running duel.
func New(resolver *combat.Resolver, a, b *model.Combatant, maxTurns int) *Duel {
	if a == nil || b == nil || a == b {
		panic("duel: two distinct combatants required")
	}
	return &Duel{resolver: resolver, maxTurns: max(maxTurns, 1), a: a, b: b}
}

// Run plays turns until one side faints, both run out of PP, or maxTurns pass.
func (d *Duel) Run(src combat.Source) (Outcome, error) {
	for turn := 1; turn <= d.maxTurns; turn++ {
		moveA, okA := combat.SelectRandomUsableMove(d.a, src)
		moveB, okB := combat.SelectRandomUsableMove(d.b, src)
		if !okA && !okB {
			return d.finish(ResultStalled, turn-1), nil
		}

		first, second := d.order(moveA, moveB, src)
		for _, act := range []action{first, second} {
			if act.user.IsFainted() {
				continue
			}
			if act.move == nil {
				act.user.EnqueueMessage(fmt.Sprintf("%s has no moves left", act.user.Name()))
				d.collect(act.user)
				continue
			}
			if err := d.act(act, src); err != nil {
				return Outcome{}, err
			}
			d.collect(act.user, act.target)
			if act.target.IsFainted() {
				break
			}
		}

		for _, c := range []*model.Combatant{first.user, second.user} {
			d.resolver.Statuses().ApplyTurnEnd(c)
			d.collect(c)
		}

		switch {
		case d.b.IsFainted() && !d.a.IsFainted():
			return d.win(ResultSideAWin, turn), nil
		case d.a.IsFainted() && !d.b.IsFainted():
			return d.win(ResultSideBWin, turn), nil
		case d.a.IsFainted() && d.b.IsFainted():
			// Both fell to residual damage the same turn: the faster side wins.
			if d.a.EffectiveStat(model.StatSpeed) >= d.b.EffectiveStat(model.StatSpeed) {
				return d.win(ResultSideAWin, turn), nil
			}
			return d.win(ResultSideBWin, turn), nil
		}
	}
	return d.finish(ResultTimeout, d.maxTurns), nil
}

type action struct {
	user, target *model.Combatant
	move         *model.Move
}

func (d *Duel) order(moveA, moveB *model.Move, src combat.Source) (action, action) {
	actA := action{user: d.a, target: d.b, move: moveA}
	actB := action{user: d.b, target: d.a, move: moveB}

	prioA, prioB := priority(moveA), priority(moveB)
	if prioA != prioB {
		if prioA > prioB {
			return actA, actB
		}
		return actB, actA
	}

	speedA, speedB := d.a.EffectiveStat(model.StatSpeed), d.b.EffectiveStat(model.StatSpeed)
	switch {
	case speedA > speedB:
		return actA, actB
	case speedB > speedA:
		return actB, actA
	case src.IntN(2) == 0:
		return actA, actB
	default:
		return actB, actA
	}
}

func priority(m *model.Move) int {
	if m == nil {
		return 0
	}
	return m.Template().Priority
}

func (d *Duel) act(act action, src combat.Source) error {
	tmpl := act.move.Template()
	act.user.EnqueueMessage(fmt.Sprintf("%s used %s", act.user.Name(), tmpl.Name))

	out, err := d.resolver.UseMove(act.user, act.target, act.move, src)
	if err != nil {
		if errors.Is(err, model.ErrNoPP) {
			return nil
		}
		return fmt.Errorf("%s using %s: %w", act.user.Name(), tmpl.Name, err)
	}
	if !tmpl.IsDamaging() {
		return nil
	}
	if out.Critical > 1 {
		act.user.EnqueueMessage("A critical hit!")
	}
	switch {
	case out.Type == 0:
		act.user.EnqueueMessage(fmt.Sprintf("It doesn't affect %s", act.target.Name()))
	case out.IsSuperEffective():
		act.user.EnqueueMessage("It's super effective!")
	case out.IsNotVeryEffective():
		act.user.EnqueueMessage("It's not very effective...")
	}
	return nil
}

// win awards experience to the standing winner and closes the duel.
func (d *Duel) win(r Result, turns int) Outcome {
	winner, loser := d.a, d.b
	if r == ResultSideBWin {
		winner, loser = d.b, d.a
	}
	d.collect(d.a, d.b)
	if !winner.IsFainted() {
		combat.AwardExperience(winner, combat.ExperienceYield(loser))
	}
	return d.finish(r, turns)
}

// collect drains the given queues into the duel log, in argument order.
func (d *Duel) collect(cs ...*model.Combatant) {
	for _, c := range cs {
		d.log = append(d.log, c.DrainMessages()...)
	}
}

func (d *Duel) finish(r Result, turns int) Outcome {
	d.collect(d.a, d.b)
	slog.Debug("duel finished",
		"a", d.a.Name(),
		"b", d.b.Name(),
		"result", r.String(),
		"turns", turns)
	return Outcome{Result: r, Turns: turns, Log: d.log}
}
