package duel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/monbattle/internal/game/combat"
	"github.com/udisondev/monbattle/internal/model"
	"github.com/udisondev/monbattle/internal/testutil"
)

func newResolver() *combat.Resolver {
	return combat.NewResolver(combat.DefaultParams(), nil)
}

func TestRun_StrongSideWins(t *testing.T) {
	strong := testutil.NewCombatant(t, testutil.NewSpecies("Titan", model.TypeNormal, 100, testutil.Fixtures.Tackle), 50)
	weak := testutil.NewCombatant(t, testutil.NewSpecies("Mite", model.TypeNormal, 10, testutil.Fixtures.Tackle), 5)

	out, err := New(newResolver(), strong, weak, 10).Run(combat.NewSource(1))
	require.NoError(t, err)

	assert.Equal(t, ResultSideAWin, out.Result)
	assert.Equal(t, 1, out.Turns)
	assert.True(t, weak.IsFainted())
	require.NotEmpty(t, out.Log)
	assert.Equal(t, "Titan used Tackle", out.Log[0])
	assert.Contains(t, out.Log, "Mite has fainted")
	assert.NotContains(t, out.Log, "Mite used Tackle", "fainted side must not act")
}

func TestRun_WinnerGainsExperience(t *testing.T) {
	strong := testutil.NewCombatant(t, testutil.NewSpecies("Titan", model.TypeNormal, 100, testutil.Fixtures.Tackle), 50)
	weak := testutil.NewCombatant(t, testutil.NewSpecies("Mite", model.TypeNormal, 10, testutil.Fixtures.Tackle), 5)
	want := combat.ExperienceYield(weak)

	out, err := New(newResolver(), weak, strong, 10).Run(combat.NewSource(2))
	require.NoError(t, err)

	assert.Equal(t, ResultSideBWin, out.Result)
	assert.Equal(t, want, strong.Experience())
	assert.Zero(t, weak.Experience())
	assert.Contains(t, out.Log, "Titan gained 45 experience points")
}

func TestRun_Deterministic(t *testing.T) {
	play := func() Outcome {
		a := testutil.NewCombatant(t, testutil.NewSpecies("Ember", model.TypeFire, 45, testutil.Fixtures.Ember, testutil.Fixtures.Growl), 12)
		b := testutil.NewCombatant(t, testutil.NewSpecies("Leaf", model.TypeGrass, 50, testutil.Fixtures.Tackle, testutil.Fixtures.Growl), 12)
		out, err := New(newResolver(), a, b, 100).Run(combat.NewSource(42))
		require.NoError(t, err)
		return out
	}

	first, second := play(), play()
	assert.Equal(t, first, second)
}

func TestRun_Stalled(t *testing.T) {
	harden := &model.MoveTemplate{
		Name: "Harden", Type: model.TypeNormal, Category: model.CategoryStats, PP: 1,
		Target: model.TargetSelf,
		Effect: model.MoveEffect{Boosts: []model.StatBoost{{Stat: model.StatDefense, Delta: 1}}},
	}
	a := testutil.NewCombatant(t, testutil.NewSpecies("Shell", model.TypeWater, 50, harden), 10)
	b := testutil.NewCombatant(t, testutil.NewSpecies("Stone", model.TypeRock, 50, harden), 10)

	out, err := New(newResolver(), a, b, 10).Run(combat.NewSource(3))
	require.NoError(t, err)

	assert.Equal(t, ResultStalled, out.Result)
	assert.Equal(t, 1, out.Turns)
	assert.Equal(t, 1, a.StatStage(model.StatDefense))
	assert.Equal(t, 1, b.StatStage(model.StatDefense))
}

func TestRun_Timeout(t *testing.T) {
	a := testutil.NewCombatant(t, testutil.NewSpecies("Wall", model.TypeNormal, 255, testutil.Fixtures.Tackle), 100)
	b := testutil.NewCombatant(t, testutil.NewSpecies("Fort", model.TypeNormal, 255, testutil.Fixtures.Tackle), 100)

	out, err := New(newResolver(), a, b, 1).Run(combat.NewSource(4))
	require.NoError(t, err)

	assert.Equal(t, ResultTimeout, out.Result)
	assert.Equal(t, 1, out.Turns)
	assert.False(t, a.IsFainted())
	assert.False(t, b.IsFainted())
	assert.Less(t, a.CurrentHP(), a.MaxHP())
	assert.Less(t, b.CurrentHP(), b.MaxHP())
}

func TestRun_PriorityBeatsSpeed(t *testing.T) {
	quick := &model.MoveTemplate{
		Name: "Quick Attack", Type: model.TypeNormal, Category: model.CategoryPhysical,
		Power: 40, Accuracy: 100, PP: 30, Priority: 1,
	}
	slow := testutil.NewCombatant(t, testutil.NewSpecies("Snail", model.TypeNormal, 20, quick), 10)
	fast := testutil.NewCombatant(t, testutil.NewSpecies("Hare", model.TypeNormal, 90, testutil.Fixtures.Tackle), 10)

	out, err := New(newResolver(), fast, slow, 1).Run(combat.NewSource(5))
	require.NoError(t, err)
	require.NotEmpty(t, out.Log)
	assert.Equal(t, "Snail used Quick Attack", out.Log[0])
}

func TestRun_LogHasNoEmptyLines(t *testing.T) {
	a := testutil.NewCombatant(t, testutil.NewSpecies("Ember", model.TypeFire, 45, testutil.Fixtures.Ember), 15)
	b := testutil.NewCombatant(t, testutil.NewSpecies("Leaf", model.TypeGrass, 45, testutil.Fixtures.Tackle), 15)

	out, err := New(newResolver(), a, b, 100).Run(combat.NewSource(6))
	require.NoError(t, err)

	for _, line := range out.Log {
		assert.NotEmpty(t, strings.TrimSpace(line))
	}
	assert.Contains(t, out.Log, "It's super effective!")
	assert.Zero(t, a.PendingMessages())
	assert.Zero(t, b.PendingMessages())
}

func TestNew_Panics(t *testing.T) {
	c := testutil.NewCombatant(t, testutil.NewSpecies("Solo", model.TypeNormal, 50, testutil.Fixtures.Tackle), 10)

	assert.Panics(t, func() { New(newResolver(), c, c, 10) })
	assert.Panics(t, func() { New(newResolver(), c, nil, 10) })
}

func TestResult_String(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{ResultSideAWin, "side_a_win"},
		{ResultSideBWin, "side_b_win"},
		{ResultTimeout, "timeout"},
		{ResultStalled, "stalled"},
		{Result(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.r.String())
	}
}
