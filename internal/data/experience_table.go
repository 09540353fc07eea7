package data

import "github.com/udisondev/monbattle/internal/model"

// ExperienceForLevel returns the total experience needed to reach level on a growth curve.
// Level 1 and below require 0.
func ExperienceForLevel(growth model.GrowthRate, level int) int {
	if level <= 1 {
		return 0
	}
	level = min(level, model.MaxLevel)
	n := level
	n3 := n * n * n

	switch growth {
	case model.GrowthFast:
		return 4 * n3 / 5
	case model.GrowthMediumSlow:
		return 6*n3/5 - 15*n*n + 100*n - 140
	case model.GrowthSlow:
		return 5 * n3 / 4
	case model.GrowthErratic:
		switch {
		case n < 50:
			return n3 * (100 - n) / 50
		case n < 68:
			return n3 * (150 - n) / 100
		case n < 98:
			return n3 * ((1911 - 10*n) / 3) / 500
		default:
			return n3 * (160 - n) / 100
		}
	case model.GrowthFluctuating:
		switch {
		case n < 15:
			return n3 * ((n+1)/3 + 24) / 50
		case n < 36:
			return n3 * (n + 14) / 50
		default:
			return n3 * (n/2 + 32) / 50
		}
	default:
		return n3
	}
}

// LevelForExperience returns the highest level whose threshold is <= exp.
func LevelForExperience(growth model.GrowthRate, exp int) int {
	level := 1
	for level < model.MaxLevel && ExperienceForLevel(growth, level+1) <= exp {
		level++
	}
	return level
}
