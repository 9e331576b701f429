package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/engine"
	"github.com/osse101/Ascendant_Go/internal/journal"
)

// MockService mocks engine.Service
type MockService struct {
	mock.Mock
}

var _ engine.Service = (*MockService)(nil)

func (m *MockService) Load(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockService) Reconcile(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockService) ReconcileAt(ctx context.Context, now time.Time) (engine.ReconcileResult, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(engine.ReconcileResult), args.Error(1)
}

func (m *MockService) Snapshot() domain.State {
	return m.Called().Get(0).(domain.State)
}

func (m *MockService) Status(ctx context.Context) (domain.Status, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Status), args.Error(1)
}

func (m *MockService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockService) ListQuests(ctx context.Context) ([]domain.Quest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockService) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mission), args.Error(1)
}

func (m *MockService) DailyJournal(ctx context.Context, date time.Time) (journal.DailyReport, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(journal.DailyReport), args.Error(1)
}

func (m *MockService) WeeklyJournal(ctx context.Context, weekStart time.Time) (journal.WeeklyReport, error) {
	args := m.Called(ctx, weekStart)
	return args.Get(0).(journal.WeeklyReport), args.Error(1)
}

func (m *MockService) CreateTask(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *MockService) CreateQuest(ctx context.Context, in domain.CreateQuestInput) (domain.Quest, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Quest), args.Error(1)
}

func (m *MockService) CreateQuestFromCatalog(ctx context.Context, templateID string, deadline *time.Time) (domain.Quest, error) {
	args := m.Called(ctx, templateID, deadline)
	return args.Get(0).(domain.Quest), args.Error(1)
}

func (m *MockService) CreateMission(ctx context.Context, in domain.CreateMissionInput) (domain.Mission, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Mission), args.Error(1)
}

func (m *MockService) CreateMissionFromCatalog(ctx context.Context, day int, deadline *time.Time) (domain.Mission, error) {
	args := m.Called(ctx, day, deadline)
	return args.Get(0).(domain.Mission), args.Error(1)
}

func (m *MockService) AddSubTask(ctx context.Context, questID, title string) (domain.Task, error) {
	args := m.Called(ctx, questID, title)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *MockService) DeleteItem(ctx context.Context, kind domain.ItemKind, id string) error {
	return m.Called(ctx, kind, id).Error(0)
}

func (m *MockService) StartQuest(ctx context.Context, id string) (domain.Quest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Quest), args.Error(1)
}

func (m *MockService) StartMission(ctx context.Context, id string) (domain.Mission, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Mission), args.Error(1)
}

func (m *MockService) CompleteTask(ctx context.Context, id string) (domain.Outcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Outcome), args.Error(1)
}

func (m *MockService) CompleteSubTask(ctx context.Context, questID, taskID string) (domain.Outcome, error) {
	args := m.Called(ctx, questID, taskID)
	return args.Get(0).(domain.Outcome), args.Error(1)
}

func (m *MockService) CompleteQuest(ctx context.Context, id string) (domain.Outcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Outcome), args.Error(1)
}

func (m *MockService) CompleteMissionStep(ctx context.Context, id string, index int) (domain.Mission, error) {
	args := m.Called(ctx, id, index)
	return args.Get(0).(domain.Mission), args.Error(1)
}

func (m *MockService) CompleteMission(ctx context.Context, id string) (domain.Outcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Outcome), args.Error(1)
}

func (m *MockService) StartRedemption(ctx context.Context) ([]domain.Quest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockService) AbandonRedemption(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockService) AttemptRedemption(ctx context.Context, passed bool) (domain.Status, error) {
	args := m.Called(ctx, passed)
	return args.Get(0).(domain.Status), args.Error(1)
}

// MockPinger mocks the storage ping used by /readyz
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// withURLParams attaches chi route parameters to a request
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
