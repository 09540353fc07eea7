package combat

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/monbattle/internal/data"
	"github.com/udisondev/monbattle/internal/model"
)

// ExperienceYield returns the experience awarded for defeating c: ExpBase*level/7.
func ExperienceYield(defeated *model.Combatant) int {
	return defeated.Species().ExpBase * defeated.Level() / 7
}

// AwardExperience adds points to c, raising its level along its growth curve.
// Moves unlocked at new levels are learned while there is room.
// Returns the number of levels gained.
func AwardExperience(c *model.Combatant, points int) int {
	if points <= 0 {
		return 0
	}
	sp := c.Species()
	c.SetExperience(c.Experience() + points)
	c.EnqueueMessage(fmt.Sprintf("%s gained %d experience points", c.Name(), points))

	oldLevel := c.Level()
	newLevel := data.LevelForExperience(sp.GrowthRate, c.Experience())
	if newLevel <= oldLevel {
		return 0
	}

	for level := oldLevel + 1; level <= newLevel; level++ {
		c.SetLevel(level)
		c.EnqueueMessage(fmt.Sprintf("%s grew to level %d", c.Name(), level))
		for _, lm := range sp.Learnset {
			if lm.Level != level || c.KnowsMove(lm.Move) {
				continue
			}
			if err := c.LearnMove(lm.Move); err != nil {
				c.EnqueueMessage(fmt.Sprintf("%s could not learn %s", c.Name(), lm.Move.Name))
				continue
			}
			c.EnqueueMessage(fmt.Sprintf("%s learned %s", c.Name(), lm.Move.Name))
		}
	}

	slog.Debug("level up", "combatant", c.Name(), "from", oldLevel, "to", newLevel)
	return newLevel - oldLevel
}
