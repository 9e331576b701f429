package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/osse101/Ascendant_Go/internal/database"
	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/repository"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// ProfileKey identifies the singleton profile row
const ProfileKey = "default"

const timeLayout = time.RFC3339Nano

const (
	queryLoadItems = `
		SELECT payload FROM work_items
		WHERE kind = ?
		ORDER BY created_at, id`

	queryInsertItem = `
		INSERT INTO work_items (id, kind, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`

	queryUpdateItem = `
		UPDATE work_items SET payload = ?, updated_at = ?
		WHERE kind = ? AND id = ?`

	queryDeleteItem = `DELETE FROM work_items WHERE kind = ? AND id = ?`

	queryLoadProfile = `SELECT payload, version FROM profiles WHERE key = ?`

	queryUpsertProfile = `
		INSERT INTO profiles (key, payload, version, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE
		SET payload = excluded.payload, version = excluded.version, updated_at = excluded.updated_at
		WHERE profiles.version <= excluded.version`
)

// Store implements repository.Backend on a local SQLite file
type Store struct {
	db *sql.DB
}

// Open creates the database file if missing, migrates it and returns a Store
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := database.Migrate(ctx, db, database.DialectSQLite); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: %w", err)
	}
	return &Store{db: db}, nil
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

// Ping checks the database handle
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// ItemRepository stores one kind of work item as a JSON document
type ItemRepository[T domain.Item] struct {
	db   *sql.DB
	kind domain.ItemKind
}

// LoadAll returns every stored item of this kind
func (r *ItemRepository[T]) LoadAll(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, queryLoadItems, string(r.kind))
	if err != nil {
		return nil, fmt.Errorf("query %s items: %w", r.kind, err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan %s item: %w", r.kind, err)
		}
		var item T
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			return nil, fmt.Errorf("decode %s item: %w", r.kind, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s items: %w", r.kind, err)
	}
	return items, nil
}

// Create inserts a new item; duplicate ids are rejected
func (r *ItemRepository[T]) Create(ctx context.Context, item T) (T, error) {
	payload, err := json.Marshal(item)
	if err != nil {
		return item, fmt.Errorf("encode %s item: %w", r.kind, err)
	}
	now := time.Now().UTC().Format(timeLayout)
	created := item.GetCreatedAt().UTC().Format(timeLayout)

	res, err := r.db.ExecContext(ctx, queryInsertItem, item.GetID(), string(r.kind), string(payload), created, now)
	if err != nil {
		return item, fmt.Errorf("insert %s item: %w", r.kind, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return item, fmt.Errorf("%w: duplicate %s id %s", domain.ErrInvalidInput, r.kind, item.GetID())
	}
	return item, nil
}

// Update replaces the stored document for id
func (r *ItemRepository[T]) Update(ctx context.Context, id string, item T) (T, error) {
	payload, err := json.Marshal(item)
	if err != nil {
		return item, fmt.Errorf("encode %s item: %w", r.kind, err)
	}
	now := time.Now().UTC().Format(timeLayout)

	res, err := r.db.ExecContext(ctx, queryUpdateItem, string(payload), now, string(r.kind), id)
	if err != nil {
		return item, fmt.Errorf("update %s item: %w", r.kind, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return item, fmt.Errorf("%w: %s %s", domain.ErrItemNotFound, r.kind, id)
	}
	return item, nil
}

// Delete removes the item with id
func (r *ItemRepository[T]) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, queryDeleteItem, string(r.kind), id)
	if err != nil {
		return fmt.Errorf("delete %s item: %w", r.kind, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s %s", domain.ErrItemNotFound, r.kind, id)
	}
	return nil
}

// ProfileRepository stores the user and punishment singleton
type ProfileRepository struct {
	db *sql.DB
}

// Load returns the saved profile or nil when none exists
func (r *ProfileRepository) Load(ctx context.Context) (*domain.Profile, error) {
	var payload string
	var version int64
	err := r.db.QueryRowContext(ctx, queryLoadProfile, ProfileKey).Scan(&payload, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	profile.Version = uint64(version)
	return &profile, nil
}

// Save upserts the profile unless a newer version is already stored
func (r *ProfileRepository) Save(ctx context.Context, profile domain.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	now := time.Now().UTC().Format(timeLayout)
	if _, err := r.db.ExecContext(ctx, queryUpsertProfile, ProfileKey, string(payload), int64(profile.Version), now); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
