package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/Ascendant_Go/internal/domain"
)

// LoadState reads every store and assembles the engine state.
// Items come back ordered by creation time, then id.
func LoadState(ctx context.Context, repo *Repository) (domain.State, error) {
	var state domain.State

	profile, err := repo.Profile.Load(ctx)
	if err != nil {
		return state, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile != nil {
		state.User = profile.User
		state.Punishment = profile.Punishment
		state.Version = profile.Version
	}

	if state.Tasks, err = loadSorted(ctx, repo.Tasks); err != nil {
		return state, fmt.Errorf("failed to load tasks: %w", err)
	}
	if state.Quests, err = loadSorted(ctx, repo.Quests); err != nil {
		return state, fmt.Errorf("failed to load quests: %w", err)
	}
	if state.Missions, err = loadSorted(ctx, repo.Missions); err != nil {
		return state, fmt.Errorf("failed to load missions: %w", err)
	}
	return state, nil
}

func loadSorted[T domain.Item](ctx context.Context, store ItemStore[T]) ([]T, error) {
	items, err := store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].GetCreatedAt(), items[j].GetCreatedAt()
		if !a.Equal(b) {
			return a.Before(b)
		}
		return items[i].GetID() < items[j].GetID()
	})
	return items, nil
}
