package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/axiego/internal/data"
	"github.com/udisondev/axiego/internal/model"
)

func testAxie(id int64) *model.Axie {
	return &model.Axie{
		ID:         id,
		GeneHex:    "0x0000000000000000000000000000000000000000000000000000000000000000",
		Class:      "beast",
		BreedCount: 1,
		Stage:      4,
		MatronID:   10,
		SireID:     11,
	}
}

func TestAxieRepositoryUpsertGet(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewAxieRepository(pool)
	ctx := context.Background()

	a := testAxie(1)
	require.NoError(t, repo.Upsert(ctx, a))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.GeneHex, got.GeneHex)
	assert.Equal(t, a.Class, got.Class)
	assert.Equal(t, a.BreedCount, got.BreedCount)
	assert.Equal(t, a.MatronID, got.MatronID)
	assert.False(t, got.UpdatedAt.IsZero())

	// Upsert again with changed breed count: replaces, not duplicates.
	a.BreedCount = 2
	require.NoError(t, repo.Upsert(ctx, a))

	got, err = repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got.BreedCount)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestAxieRepositoryGetMissing(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewAxieRepository(pool)

	got, err := repo.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAxieRepositoryListGenesPaging(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewAxieRepository(pool)
	ctx := context.Background()

	for id := int64(1); id <= 5; id++ {
		require.NoError(t, repo.Upsert(ctx, testAxie(id)))
	}

	page1, err := repo.ListGenes(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.EqualValues(t, 1, page1[0].ID)
	assert.EqualValues(t, 2, page1[1].ID)

	page2, err := repo.ListGenes(ctx, page1[len(page1)-1].ID, 10)
	require.NoError(t, err)
	require.Len(t, page2, 3)
	assert.EqualValues(t, 3, page2[0].ID)
	assert.EqualValues(t, 5, page2[2].ID)

	empty, err := repo.ListGenes(ctx, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAxieRepositoryUpdateStats(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewAxieRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testAxie(1)))

	stats := data.Stats{HP: 31, Speed: 41, Skill: 31, Morale: 61}
	require.NoError(t, repo.UpdateStats(ctx, 1, "beast", stats, 100))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 31, got.HP)
	assert.Equal(t, 41, got.Speed)
	assert.Equal(t, 31, got.Skill)
	assert.Equal(t, 61, got.Morale)
	assert.Equal(t, 100.0, got.Purity)

	// Unknown id is an error, not a silent no-op.
	assert.Error(t, repo.UpdateStats(ctx, 999, "beast", stats, 0))
}
