package combat

import "github.com/udisondev/monbattle/internal/model"

// SelectRandomUsableMove picks uniformly among moves with PP left.
// Returns false when every move is depleted (or the combatant knows none).
func SelectRandomUsableMove(c *model.Combatant, src Source) (*model.Move, bool) {
	usable := make([]*model.Move, 0, model.MaxMoves)
	for _, m := range c.Moves() {
		if m.IsUsable() {
			usable = append(usable, m)
		}
	}
	if len(usable) == 0 {
		return nil, false
	}
	return usable[src.IntN(len(usable))], true
}
