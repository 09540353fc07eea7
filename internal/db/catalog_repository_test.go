package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/monbattle/internal/data"
	"github.com/udisondev/monbattle/internal/db"
	"github.com/udisondev/monbattle/internal/model"
	"github.com/udisondev/monbattle/internal/testutil"
)

func TestCatalogRepository_SaveAndLoad(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewCatalogRepository(pool)
	ctx := context.Background()

	moves, species, err := data.DefaultDefs()
	require.NoError(t, err)
	require.NoError(t, repo.SaveDefs(ctx, moves, species))

	got, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)

	want := data.DefaultCatalog()
	assert.Equal(t, want.SpeciesCount(), got.SpeciesCount())
	assert.Equal(t, want.MoveCount(), got.MoveCount())

	ember, ok := got.Move("Ember")
	require.True(t, ok)
	require.Len(t, ember.Secondary, 1)
	assert.Equal(t, model.StatusBurn, ember.Secondary[0].Effect.Status)

	withdraw, ok := got.Move("Withdraw")
	require.True(t, ok)
	assert.Equal(t, model.TargetSelf, withdraw.Target)
	assert.Equal(t, []model.StatBoost{{Stat: model.StatDefense, Delta: 1}}, withdraw.Effect.Boosts)

	for _, sp := range want.AllSpecies() {
		loaded, ok := got.Species(sp.Name)
		require.True(t, ok, sp.Name)
		assert.Equal(t, sp.Base, loaded.Base)
		assert.Equal(t, sp.Type1, loaded.Type1)
		assert.Equal(t, sp.Type2, loaded.Type2)
		assert.Equal(t, sp.GrowthRate, loaded.GrowthRate)
		require.Len(t, loaded.Learnset, len(sp.Learnset))
		for i := range sp.Learnset {
			assert.Equal(t, sp.Learnset[i].Level, loaded.Learnset[i].Level)
			assert.Equal(t, sp.Learnset[i].Move.Name, loaded.Learnset[i].Move.Name)
		}
	}
}

func TestCatalogRepository_KeepsLearnsetOrderWithinLevel(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewCatalogRepository(pool)
	ctx := context.Background()

	moves, _, err := data.DefaultDefs()
	require.NoError(t, err)
	species := []data.SpeciesDef{{
		ID: 52, Name: "Meowth", Type1: "normal",
		Base: data.BaseStatsDef{HP: 40, Attack: 45, Defense: 35, SpAttack: 40, SpDefense: 40, Speed: 90},
		Learnset: []data.LearnDef{
			{Move: "Quick Attack", Level: 5},
			{Move: "Water Gun", Level: 1},
			{Move: "Tackle", Level: 1},
			{Move: "Scratch", Level: 1},
			{Move: "Growl", Level: 1},
			{Move: "Ember", Level: 1},
		},
	}}
	want, err := data.BuildCatalog(moves, species)
	require.NoError(t, err)
	require.NoError(t, repo.SaveDefs(ctx, moves, species))

	got, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)

	names := func(c *data.Catalog, level int) []string {
		sp, ok := c.Species("Meowth")
		require.True(t, ok)
		var out []string
		for _, mt := range sp.MovesAtLevel(level) {
			out = append(out, mt.Name)
		}
		return out
	}
	assert.Equal(t, []string{"Tackle", "Scratch", "Growl", "Ember"}, names(want, 1))
	assert.Equal(t, names(want, 1), names(got, 1))
	assert.Equal(t, names(want, 5), names(got, 5))
}

func TestCatalogRepository_SaveOverwrites(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewCatalogRepository(pool)
	ctx := context.Background()

	moves, species, err := data.DefaultDefs()
	require.NoError(t, err)
	require.NoError(t, repo.SaveDefs(ctx, moves, species))

	small := []data.MoveDef{{Name: "Tackle", Type: "normal", Category: "physical", Power: 40, PP: 35}}
	smallSpecies := []data.SpeciesDef{{
		ID: 19, Name: "Rattata", Type1: "normal",
		Base:     data.BaseStatsDef{HP: 30, Attack: 56, Defense: 35, SpAttack: 25, SpDefense: 35, Speed: 72},
		Learnset: []data.LearnDef{{Move: "Tackle", Level: 1}},
	}}
	require.NoError(t, repo.SaveDefs(ctx, small, smallSpecies))

	got, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got.MoveCount())
	assert.Equal(t, 1, got.SpeciesCount())
	_, ok := got.Species("Bulbasaur")
	assert.False(t, ok)
}

func TestCatalogRepository_SaveRollsBackOnError(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewCatalogRepository(pool)
	ctx := context.Background()

	moves, species, err := data.DefaultDefs()
	require.NoError(t, err)
	require.NoError(t, repo.SaveDefs(ctx, moves, species))

	broken := []data.SpeciesDef{{
		ID: 1, Name: "Ghost", Type1: "ghost",
		Learnset: []data.LearnDef{{Move: "Missing", Level: 1}},
	}}
	require.Error(t, repo.SaveDefs(ctx, nil, broken))

	got, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.DefaultCatalog().SpeciesCount(), got.SpeciesCount())
}
