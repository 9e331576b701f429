package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/repository"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers when docker is absent
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	ctx := context.Background()
	store, err := Open(ctx, Options{
		URL:         testDBConnString,
		MaxConns:    4,
		MaxIdleTime: time.Minute,
		MaxLifetime: 5 * time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = store.db.Exec(ctx, "TRUNCATE work_items, profiles")
		_ = store.Close()
	})
	return store
}

func TestItemRepository_CRUD(t *testing.T) {
	store := openTestStore(t)
	repo := store.Repository()
	ctx := context.Background()

	created := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	task := domain.Task{WorkItem: domain.WorkItem{
		ID: "t-1", Title: "Read", Category: domain.CategoryIntelligence,
		Difficulty: domain.DifficultyNormal, ExpReward: 20, CreatedAt: created,
	}}

	_, err := repo.Tasks.Create(ctx, task)
	require.NoError(t, err)

	_, err = repo.Tasks.Create(ctx, task)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	task.Completed = true
	_, err = repo.Tasks.Update(ctx, task.ID, task)
	require.NoError(t, err)

	tasks, err := repo.Tasks.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)
	assert.True(t, tasks[0].CreatedAt.Equal(created))

	quests, err := repo.Quests.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, quests, "kinds must not leak into each other")

	require.NoError(t, repo.Tasks.Delete(ctx, task.ID))
	assert.ErrorIs(t, repo.Tasks.Delete(ctx, task.ID), domain.ErrItemNotFound)

	_, err = repo.Tasks.Update(ctx, "missing", task)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestProfileRepository_IgnoresStaleVersions(t *testing.T) {
	store := openTestStore(t)
	repo := store.Repository()
	ctx := context.Background()

	loaded, err := repo.Profile.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	newer := domain.Profile{Version: 5, User: domain.User{Level: 3, Exp: 40}}
	require.NoError(t, repo.Profile.Save(ctx, newer))

	stale := domain.Profile{Version: 4, User: domain.User{Level: 2}}
	require.NoError(t, repo.Profile.Save(ctx, stale))

	loaded, err = repo.Profile.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, uint64(5), loaded.Version)
	assert.Equal(t, 3, loaded.User.Level)
}

func TestLoadState_OrdersByCreation(t *testing.T) {
	store := openTestStore(t)
	repo := store.Repository()
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"q-b", "q-a", "q-c"} {
		q := domain.Quest{WorkItem: domain.WorkItem{
			ID: id, Title: id, Category: domain.CategoryPhysical,
			Difficulty: domain.DifficultyEasy, CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}}
		_, err := repo.Quests.Create(ctx, q)
		require.NoError(t, err)
	}

	state, err := repository.LoadState(ctx, repo)
	require.NoError(t, err)
	require.Len(t, state.Quests, 3)
	assert.Equal(t, "q-b", state.Quests[0].ID)
	assert.Equal(t, "q-c", state.Quests[2].ID)
}
