package status

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/monbattle/internal/model"
)

func builtinEntries() []Entry {
	return []Entry{
		{
			ID:           model.StatusPoison,
			Name:         "Poison",
			Description:  "Loses an eighth of max HP at the end of every turn",
			StartMessage: "%s has been poisoned",
			OnTurnEnd:    residualDamage(8, "%s suffers from poison"),
		},
		{
			ID:           model.StatusBurn,
			Name:         "Burn",
			Description:  "Loses a fifteenth of max HP at the end of every turn",
			StartMessage: "%s has been burned",
			OnTurnEnd:    residualDamage(15, "%s suffers from the burn"),
		},
		// Freeze, paralysis and sleep act before a move, not at turn end.
		{
			ID:           model.StatusFreeze,
			Name:         "Freeze",
			Description:  "Frozen solid",
			StartMessage: "%s has been frozen",
			OnTurnEnd:    noEffect,
		},
		{
			ID:           model.StatusParalysis,
			Name:         "Paralysis",
			Description:  "Paralyzed",
			StartMessage: "%s has been paralyzed",
			OnTurnEnd:    noEffect,
		},
		{
			ID:           model.StatusSleep,
			Name:         "Sleep",
			Description:  "Fast asleep",
			StartMessage: "%s has fallen asleep",
			OnTurnEnd:    noEffect,
		},
	}
}

// residualDamage removes ceil(MaxHP/divisor) HP, clamped at zero.
func residualDamage(divisor int, msg string) TurnEndFunc {
	return func(c *model.Combatant) {
		maxHP := c.MaxHP()
		damage := (maxHP + divisor - 1) / divisor
		dealt := c.ReduceCurrentHP(damage)
		c.EnqueueMessage(fmt.Sprintf(msg, c.Name()))
		if dealt > 0 && c.IsFainted() {
			c.EnqueueMessage(fmt.Sprintf(model.FaintMessage, c.Name()))
		}

		slog.Debug("status tick",
			"combatant", c.Name(),
			"status", c.Status().String(),
			"damage", dealt,
			"hp", c.CurrentHP())
	}
}

func noEffect(*model.Combatant) {}
