package repository

import (
	"context"

	"github.com/osse101/Ascendant_Go/internal/domain"
)

// ItemStore defines the interface for work item persistence.
// Implementations return domain.ErrItemNotFound when Update or Delete
// target an unknown id.
type ItemStore[T domain.Item] interface {
	LoadAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

// ProfileStore defines the interface for the singleton user/punishment record.
// Load returns (nil, nil) when nothing has been saved yet.
type ProfileStore interface {
	Load(ctx context.Context) (*domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
}

// Repository bundles every store the engine persists through
type Repository struct {
	Tasks    ItemStore[domain.Task]
	Quests   ItemStore[domain.Quest]
	Missions ItemStore[domain.Mission]
	Profile  ProfileStore
}

// Backend is implemented by each storage driver
type Backend interface {
	Repository() *Repository
	Ping(ctx context.Context) error
	Close() error
}
