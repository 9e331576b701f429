package engine

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/event"
)

// MockItemStore is a hand-written mock for repository.ItemStore
type MockItemStore[T domain.Item] struct {
	mock.Mock
}

func (m *MockItemStore[T]) LoadAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]T)
	return items, args.Error(1)
}

func (m *MockItemStore[T]) Create(ctx context.Context, item T) (T, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(T), args.Error(1)
}

func (m *MockItemStore[T]) Update(ctx context.Context, id string, item T) (T, error) {
	args := m.Called(ctx, id, item)
	return args.Get(0).(T), args.Error(1)
}

func (m *MockItemStore[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileStore is a hand-written mock for repository.ProfileStore
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) Load(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	profile, _ := args.Get(0).(*domain.Profile)
	return profile, args.Error(1)
}

func (m *MockProfileStore) Save(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// fakeClock is a settable time source
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// recorder collects every event published on the bus
type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recorder) handle(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *recorder) count(t domain.NotificationType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, evt := range r.events {
		if evt.Type == event.Type(t) {
			n++
		}
	}
	return n
}

func (r *recorder) last(t domain.NotificationType) (event.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == event.Type(t) {
			return r.events[i], true
		}
	}
	return event.Event{}, false
}

func (r *recorder) types() []domain.NotificationType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.NotificationType, 0, len(r.events))
	for _, evt := range r.events {
		out = append(out, domain.NotificationType(evt.Type))
	}
	return out
}
