package model

import "errors"

var (
	// ErrNoPP is returned when a move with no remaining power points is used.
	ErrNoPP = errors.New("move has no power points left")

	// ErrNotDamaging is returned when a stat-modifying move is sent through damage resolution.
	ErrNotDamaging = errors.New("move does not deal damage")

	// ErrTooManyMoves is returned when a combatant is given more than MaxMoves moves.
	ErrTooManyMoves = errors.New("too many moves")
)
