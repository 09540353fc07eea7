package model

import "fmt"

// MaxLevel is the level cap of any combatant.
const MaxLevel = 100

// FaintMessage is enqueued when a combatant's HP reaches zero.
const FaintMessage = "%s has fainted"

// Combatant is a creature taking part in a battle.
// It exclusively owns its moves and message queue; the species is shared.
// Not safe for concurrent use: a battle mutates its combatants from a single goroutine.
type Combatant struct {
	species    *Species
	level      int
	currentHP  int
	experience int
	moves      []*Move
	status     StatusID
	stages     [StatCount]int
	messages   []string
}

// NewCombatant creates a combatant at full HP with fresh instances of the given moves.
func NewCombatant(species *Species, level int, moves []*MoveTemplate) (*Combatant, error) {
	if species == nil {
		panic("model: NewCombatant with nil species")
	}
	if len(moves) > MaxMoves {
		return nil, fmt.Errorf("creating %s with %d moves: %w", species.Name, len(moves), ErrTooManyMoves)
	}
	level = min(max(level, 1), MaxLevel)

	c := &Combatant{
		species: species,
		level:   level,
		moves:   make([]*Move, 0, len(moves)),
	}
	for _, t := range moves {
		c.moves = append(c.moves, NewMove(t))
	}
	c.currentHP = c.MaxHP()
	return c, nil
}

// NewWildCombatant creates a combatant knowing the latest moves of its learnset at level.
func NewWildCombatant(species *Species, level int) *Combatant {
	if species == nil {
		panic("model: NewWildCombatant with nil species")
	}
	c, err := NewCombatant(species, level, species.MovesAtLevel(level))
	if err != nil {
		// MovesAtLevel never returns more than MaxMoves.
		panic(err)
	}
	return c
}

func (c *Combatant) Species() *Species { return c.species }
func (c *Combatant) Name() string      { return c.species.Name }
func (c *Combatant) Level() int        { return c.level }

// Stats returns the derived stats for the current level.
func (c *Combatant) Stats() Stats { return DeriveStats(c.species, c.level) }

// MaxHP returns the maximum HP for the current level.
func (c *Combatant) MaxHP() int { return c.Stats().MaxHP }

// CurrentHP returns current HP.
func (c *Combatant) CurrentHP() int { return c.currentHP }

// SetCurrentHP sets HP clamped to [0, MaxHP].
func (c *Combatant) SetCurrentHP(hp int) {
	c.currentHP = min(max(hp, 0), c.MaxHP())
}

// ReduceCurrentHP subtracts amount, never going below zero.
// Returns the HP actually removed.
func (c *Combatant) ReduceCurrentHP(amount int) int {
	if amount <= 0 {
		return 0
	}
	removed := min(amount, c.currentHP)
	c.currentHP -= removed
	return removed
}

// IsFainted reports whether HP reached zero.
func (c *Combatant) IsFainted() bool { return c.currentHP == 0 }

// Moves returns the combatant's move instances. The slice must not be modified.
func (c *Combatant) Moves() []*Move { return c.moves }

// KnowsMove reports whether c already has an instance of t.
func (c *Combatant) KnowsMove(t *MoveTemplate) bool {
	for _, m := range c.moves {
		if m.template == t {
			return true
		}
	}
	return false
}

// LearnMove appends a fresh instance of t. Already-known moves are a no-op.
// Returns ErrTooManyMoves when c knows MaxMoves moves.
func (c *Combatant) LearnMove(t *MoveTemplate) error {
	if c.KnowsMove(t) {
		return nil
	}
	if len(c.moves) >= MaxMoves {
		return fmt.Errorf("%s learning %s: %w", c.Name(), t.Name, ErrTooManyMoves)
	}
	c.moves = append(c.moves, NewMove(t))
	return nil
}

// Status returns the active status condition.
func (c *Combatant) Status() StatusID { return c.status }

// SetStatus replaces the active status condition.
func (c *Combatant) SetStatus(s StatusID) { c.status = s }

// StatStage returns the current stage of stat.
func (c *Combatant) StatStage(stat Stat) int { return c.stages[stat] }

// ChangeStatStage adds delta to a stat stage, clamped to ±MaxStatStage.
// Returns the stage change actually applied.
func (c *Combatant) ChangeStatStage(stat Stat, delta int) int {
	before := c.stages[stat]
	c.stages[stat] = clampStage(before + delta)
	return c.stages[stat] - before
}

// ResetStatStages clears all stages, as when leaving battle.
func (c *Combatant) ResetStatStages() { c.stages = [StatCount]int{} }

// EffectiveStat returns a derived stat scaled by its current stage.
func (c *Combatant) EffectiveStat(stat Stat) float64 {
	return float64(c.Stats().Get(stat)) * StageMultiplier(c.stages[stat])
}

// Experience returns total experience points.
func (c *Combatant) Experience() int { return c.experience }

// SetExperience overwrites total experience points.
func (c *Combatant) SetExperience(exp int) { c.experience = max(exp, 0) }

// SetLevel changes the level and keeps the missing-HP amount constant,
// so a level-up heals by the MaxHP increase.
func (c *Combatant) SetLevel(level int) {
	level = min(max(level, 1), MaxLevel)
	before := c.MaxHP()
	c.level = level
	if c.currentHP > 0 {
		c.SetCurrentHP(c.currentHP + c.MaxHP() - before)
	}
}

// EnqueueMessage appends a display message.
func (c *Combatant) EnqueueMessage(msg string) {
	c.messages = append(c.messages, msg)
}

// PendingMessages returns the number of queued messages.
func (c *Combatant) PendingMessages() int { return len(c.messages) }

// DrainMessages returns all queued messages in enqueue order and empties the queue.
func (c *Combatant) DrainMessages() []string {
	out := c.messages
	c.messages = nil
	return out
}
