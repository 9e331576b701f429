// Package memory provides a process-local backend used when no database is configured
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/repository"
)

// Store keeps every record in maps guarded by one mutex
type Store struct {
	mu       sync.RWMutex
	items    map[domain.ItemKind]map[string][]byte
	profile  []byte
	version  uint64
	hasSaved bool
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		items: map[domain.ItemKind]map[string][]byte{
			domain.KindTask:    {},
			domain.KindQuest:   {},
			domain.KindMission: {},
		},
	}
}

// Repository returns the engine-facing stores
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Tasks:    &itemStore[domain.Task]{store: s, kind: domain.KindTask},
		Quests:   &itemStore[domain.Quest]{store: s, kind: domain.KindQuest},
		Missions: &itemStore[domain.Mission]{store: s, kind: domain.KindMission},
		Profile:  &profileStore{store: s},
	}
}

// Ping always succeeds
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op
func (s *Store) Close() error { return nil }

// Items are kept encoded so callers never share memory with the store.
type itemStore[T domain.Item] struct {
	store *Store
	kind  domain.ItemKind
}

func (r *itemStore[T]) LoadAll(ctx context.Context) ([]T, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]T, 0, len(r.store.items[r.kind]))
	for id, raw := range r.store.items[r.kind] {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", r.kind, id, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *itemStore[T]) Create(ctx context.Context, item T) (T, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return item, fmt.Errorf("encode %s: %w", r.kind, err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.items[r.kind][item.GetID()]; exists {
		return item, fmt.Errorf("%w: duplicate %s id %s", domain.ErrInvalidInput, r.kind, item.GetID())
	}
	r.store.items[r.kind][item.GetID()] = raw
	return item, nil
}

func (r *itemStore[T]) Update(ctx context.Context, id string, item T) (T, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return item, fmt.Errorf("encode %s: %w", r.kind, err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.items[r.kind][id]; !exists {
		return item, fmt.Errorf("%w: %s %s", domain.ErrItemNotFound, r.kind, id)
	}
	r.store.items[r.kind][id] = raw
	return item, nil
}

func (r *itemStore[T]) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.items[r.kind][id]; !exists {
		return fmt.Errorf("%w: %s %s", domain.ErrItemNotFound, r.kind, id)
	}
	delete(r.store.items[r.kind], id)
	return nil
}

type profileStore struct {
	store *Store
}

func (r *profileStore) Load(ctx context.Context) (*domain.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if !r.store.hasSaved {
		return nil, nil
	}
	var p domain.Profile
	if err := json.Unmarshal(r.store.profile, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

func (r *profileStore) Save(ctx context.Context, profile domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.hasSaved && profile.Version < r.store.version {
		return nil
	}
	r.store.profile = raw
	r.store.version = profile.Version
	r.store.hasSaved = true
	return nil
}
