package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/repository"
)

// Store implements repository.Backend for PostgreSQL
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a new Store over an already migrated pool
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Repository returns the engine-facing stores
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Tasks:    &ItemRepository[domain.Task]{db: s.db, kind: domain.KindTask},
		Quests:   &ItemRepository[domain.Quest]{db: s.db, kind: domain.KindQuest},
		Missions: &ItemRepository[domain.Mission]{db: s.db, kind: domain.KindMission},
		Profile:  &ProfileRepository{db: s.db},
	}
}

// Ping checks connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the pool
func (s *Store) Close() error {
	s.db.Close()
	return nil
}

// ItemRepository stores one kind of work item as a JSONB document
type ItemRepository[T domain.Item] struct {
	db   *pgxpool.Pool
	kind domain.ItemKind
}

// LoadAll returns every stored item of this kind
func (r *ItemRepository[T]) LoadAll(ctx context.Context) ([]T, error) {
	rows, err := r.db.Query(ctx, queryLoadItems, string(r.kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s items: %w", r.kind, err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan %s item: %w", r.kind, err)
		}
		var item T
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, fmt.Errorf("failed to decode %s item: %w", r.kind, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s items: %w", r.kind, err)
	}
	return items, nil
}

// Create inserts a new item; duplicate ids are rejected
func (r *ItemRepository[T]) Create(ctx context.Context, item T) (T, error) {
	payload, err := json.Marshal(item)
	if err != nil {
		return item, fmt.Errorf("failed to encode %s item: %w", r.kind, err)
	}

	_, err = r.db.Exec(ctx, queryInsertItem, item.GetID(), string(r.kind), payload, item.GetCreatedAt())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return item, fmt.Errorf("%w: duplicate %s id %s", domain.ErrInvalidInput, r.kind, item.GetID())
		}
		return item, fmt.Errorf("failed to insert %s item: %w", r.kind, err)
	}
	return item, nil
}

// Update replaces the stored document for id
func (r *ItemRepository[T]) Update(ctx context.Context, id string, item T) (T, error) {
	payload, err := json.Marshal(item)
	if err != nil {
		return item, fmt.Errorf("failed to encode %s item: %w", r.kind, err)
	}

	tag, err := r.db.Exec(ctx, queryUpdateItem, string(r.kind), id, payload)
	if err != nil {
		return item, fmt.Errorf("failed to update %s item: %w", r.kind, err)
	}
	if tag.RowsAffected() == 0 {
		return item, fmt.Errorf("%w: %s %s", domain.ErrItemNotFound, r.kind, id)
	}
	return item, nil
}

// Delete removes the item with id
func (r *ItemRepository[T]) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, queryDeleteItem, string(r.kind), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s item: %w", r.kind, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %s", domain.ErrItemNotFound, r.kind, id)
	}
	return nil
}

// ProfileRepository stores the user and punishment singleton
type ProfileRepository struct {
	db *pgxpool.Pool
}

// Load returns the saved profile or nil when none exists
func (r *ProfileRepository) Load(ctx context.Context) (*domain.Profile, error) {
	var payload []byte
	var version int64
	err := r.db.QueryRow(ctx, queryLoadProfile, ProfileKey).Scan(&payload, &version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	profile.Version = uint64(version)
	return &profile, nil
}

// Save upserts the profile unless a newer version is already stored
func (r *ProfileRepository) Save(ctx context.Context, profile domain.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if _, err := r.db.Exec(ctx, queryUpsertProfile, ProfileKey, payload, int64(profile.Version)); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
