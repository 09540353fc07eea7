package model

import "fmt"

// MaxMoves is how many moves a combatant can know at once.
const MaxMoves = 4

// Move is a per-battle instance of a move template with its own PP counter.
type Move struct {
	template *MoveTemplate
	pp       int
}

// NewMove creates a move instance with full PP.
func NewMove(t *MoveTemplate) *Move {
	if t == nil {
		panic("model: NewMove with nil template")
	}
	return &Move{template: t, pp: t.PP}
}

// Template returns the shared definition.
func (m *Move) Template() *MoveTemplate { return m.template }

// PP returns remaining power points.
func (m *Move) PP() int { return m.pp }

// MaxPP returns the PP capacity of the template.
func (m *Move) MaxPP() int { return m.template.PP }

// IsUsable reports whether the move has PP left.
func (m *Move) IsUsable() bool { return m.pp > 0 }

// Use consumes one PP. Returns ErrNoPP (and changes nothing) if the move is depleted.
func (m *Move) Use() error {
	if m.pp <= 0 {
		return fmt.Errorf("using %s: %w", m.template.Name, ErrNoPP)
	}
	m.pp--
	return nil
}

// RestorePP adds amount PP, capped at MaxPP.
func (m *Move) RestorePP(amount int) {
	if amount <= 0 {
		return
	}
	m.pp = min(m.pp+amount, m.template.PP)
}
