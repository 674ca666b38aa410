package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriapp/nutricli/internal/client/models"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db)
}

func sampleMeals() []models.Meal {
	return []models.Meal{
		{
			ID:             "m1",
			UserID:         "u1",
			CreatedAt:      models.Timestamp{Time: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)},
			ImageURL:       "https://img.example/m1.jpg",
			Recommendation: "more greens",
			TotalCalories:  700,
			TotalProteinG:  30,
		},
		{
			ID:            "m2",
			UserID:        "u1",
			CreatedAt:     models.Timestamp{Time: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
			TotalCalories: 500,
		},
	}
}

func TestReplaceAndAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	syncedAt := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Replace(ctx, sampleMeals(), syncedAt))

	got, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m1", got[0].ID)
	assert.Equal(t, "m2", got[1].ID)
	assert.Equal(t, 700.0, got[0].TotalCalories.Float64())
	assert.Equal(t, "more greens", got[0].Recommendation)
	assert.True(t, got[0].CreatedAt.Equal(time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)))

	at, err := repo.SyncedAt(ctx)
	require.NoError(t, err)
	assert.True(t, at.Equal(syncedAt))
}

func TestReplaceIsWholesale(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, sampleMeals(), time.Now()))
	require.NoError(t, repo.Replace(ctx, sampleMeals()[:1], time.Now()))

	got, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m1", got[0].ID)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, sampleMeals(), time.Now()))
	require.NoError(t, repo.Delete(ctx, "m1"))
	// Unknown ids are tolerated.
	require.NoError(t, repo.Delete(ctx, "nope"))

	got, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m2", got[0].ID)
}

func TestSyncedAtNeverSynced(t *testing.T) {
	repo := newTestRepo(t)
	at, err := repo.SyncedAt(context.Background())
	require.NoError(t, err)
	assert.True(t, at.IsZero())
}
