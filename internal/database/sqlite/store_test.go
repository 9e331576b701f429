package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/repository"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "data", "ascendant.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpen_MigratesTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ascendant.db")

	first, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(context.Background(), path)
	require.NoError(t, err)
	assert.NoError(t, second.Ping(context.Background()))
	require.NoError(t, second.Close())
}

func TestItemRepository_CRUD(t *testing.T) {
	repo := openTestStore(t).Repository()
	ctx := context.Background()

	mission := domain.Mission{
		WorkItem: domain.WorkItem{
			ID: "m-1", Title: "Pushups", Category: domain.CategoryPhysical,
			Difficulty: domain.DifficultyEasy, ExpReward: 10,
			CreatedAt: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		},
		Rank:  domain.RankF,
		Count: 3,
	}

	_, err := repo.Missions.Create(ctx, mission)
	require.NoError(t, err)

	_, err = repo.Missions.Create(ctx, mission)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	mission.CompletedTaskIndices = []int{0, 2}
	_, err = repo.Missions.Update(ctx, mission.ID, mission)
	require.NoError(t, err)

	loaded, err := repo.Missions.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, []int{0, 2}, loaded[0].CompletedTaskIndices)

	tasks, err := repo.Tasks.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = repo.Tasks.Update(ctx, mission.ID, domain.Task{})
	assert.ErrorIs(t, err, domain.ErrItemNotFound, "update is scoped to the item kind")

	require.NoError(t, repo.Missions.Delete(ctx, mission.ID))
	assert.ErrorIs(t, repo.Missions.Delete(ctx, mission.ID), domain.ErrItemNotFound)
}

func TestProfileRepository_RoundTripAndStaleWrite(t *testing.T) {
	repo := openTestStore(t).Repository()
	ctx := context.Background()

	p, err := repo.Profile.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, p)

	until := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	saved := domain.Profile{
		Version:    7,
		User:       domain.User{Level: 4, Exp: 12, Gold: 30},
		Punishment: domain.PunishmentState{IsCursed: true, LockedSideQuestsUntil: &until},
	}
	require.NoError(t, repo.Profile.Save(ctx, saved))
	require.NoError(t, repo.Profile.Save(ctx, domain.Profile{Version: 6}))

	p, err = repo.Profile.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, uint64(7), p.Version)
	assert.Equal(t, 4, p.User.Level)
	assert.True(t, p.Punishment.IsCursed)
	require.NotNil(t, p.Punishment.LockedSideQuestsUntil)
	assert.True(t, p.Punishment.LockedSideQuestsUntil.Equal(until))
}

func TestLoadState_FromSQLite(t *testing.T) {
	repo := openTestStore(t).Repository()
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"t-2", "t-1"} {
		_, err := repo.Tasks.Create(ctx, domain.Task{WorkItem: domain.WorkItem{
			ID: id, Title: id, Category: domain.CategorySocial,
			Difficulty: domain.DifficultyEasy, CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}})
		require.NoError(t, err)
	}
	require.NoError(t, repo.Profile.Save(ctx, domain.Profile{Version: 2, User: domain.User{Level: 1}}))

	state, err := repository.LoadState(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), state.Version)
	require.Len(t, state.Tasks, 2)
	assert.Equal(t, "t-2", state.Tasks[0].ID)
}
