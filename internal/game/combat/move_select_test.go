package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/monbattle/internal/model"
)

func drainPP(t *testing.T, m *model.Move) {
	t.Helper()
	for m.IsUsable() {
		require.NoError(t, m.Use())
	}
}

func TestSelectRandomUsableMove_AllDepleted(t *testing.T) {
	c := newTestCombatant(t, newTestSpecies("A", model.TypeNormal, model.TypeNone, uniformBase(50)), 10, tackle, growl)
	for _, m := range c.Moves() {
		drainPP(t, m)
	}

	m, ok := SelectRandomUsableMove(c, NewSource(1))
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestSelectRandomUsableMove_NoMoves(t *testing.T) {
	c := newTestCombatant(t, newTestSpecies("A", model.TypeNormal, model.TypeNone, uniformBase(50)), 10)
	_, ok := SelectRandomUsableMove(c, NewSource(1))
	assert.False(t, ok)
}

func TestSelectRandomUsableMove_SingleUsable(t *testing.T) {
	c := newTestCombatant(t, newTestSpecies("A", model.TypeNormal, model.TypeNone, uniformBase(50)), 10, tackle, growl, ember, toxic)
	for i, m := range c.Moves() {
		if i != 2 {
			drainPP(t, m)
		}
	}

	src := NewSource(99)
	for range 500 {
		m, ok := SelectRandomUsableMove(c, src)
		require.True(t, ok)
		assert.Same(t, c.Moves()[2], m)
	}
}

func TestSelectRandomUsableMove_Uniform(t *testing.T) {
	c := newTestCombatant(t, newTestSpecies("A", model.TypeNormal, model.TypeNone, uniformBase(50)), 10, tackle, growl, ember)
	drainPP(t, c.Moves()[1])

	src := NewSource(SeedFromID("uniform"))
	counts := map[*model.Move]int{}
	const draws = 20_000
	for range draws {
		m, ok := SelectRandomUsableMove(c, src)
		require.True(t, ok)
		counts[m]++
	}

	assert.Zero(t, counts[c.Moves()[1]])
	assert.InDelta(t, 0.5, float64(counts[c.Moves()[0]])/draws, 0.02)
	assert.InDelta(t, 0.5, float64(counts[c.Moves()[2]])/draws, 0.02)
}
