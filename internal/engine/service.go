// Package engine owns the versioned progression state. Every operation runs
// as one serialized transaction: reconcile time-based transitions, run a
// reducer on a clone, commit the clone, then hand the returned effects to the
// write-behind persistence queue and the event bus.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Ascendant_Go/internal/catalog"
	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/event"
	"github.com/osse101/Ascendant_Go/internal/journal"
	"github.com/osse101/Ascendant_Go/internal/lifecycle"
	"github.com/osse101/Ascendant_Go/internal/logger"
	"github.com/osse101/Ascendant_Go/internal/metrics"
	"github.com/osse101/Ascendant_Go/internal/progression"
	"github.com/osse101/Ascendant_Go/internal/quota"
	"github.com/osse101/Ascendant_Go/internal/repository"
	"github.com/osse101/Ascendant_Go/internal/worker"
)

// Service is the progression and penalty engine
type Service interface {
	// Lifecycle
	Load(ctx context.Context) error
	Shutdown(ctx context.Context) error

	// Time-based transitions
	Reconcile(ctx context.Context) error
	ReconcileAt(ctx context.Context, now time.Time) (ReconcileResult, error)

	// Read models
	Snapshot() domain.State
	Status(ctx context.Context) (domain.Status, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	ListQuests(ctx context.Context) ([]domain.Quest, error)
	ListMissions(ctx context.Context) ([]domain.Mission, error)
	DailyJournal(ctx context.Context, date time.Time) (journal.DailyReport, error)
	WeeklyJournal(ctx context.Context, weekStart time.Time) (journal.WeeklyReport, error)

	// Creation
	CreateTask(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error)
	CreateQuest(ctx context.Context, in domain.CreateQuestInput) (domain.Quest, error)
	CreateQuestFromCatalog(ctx context.Context, templateID string, deadline *time.Time) (domain.Quest, error)
	CreateMission(ctx context.Context, in domain.CreateMissionInput) (domain.Mission, error)
	CreateMissionFromCatalog(ctx context.Context, day int, deadline *time.Time) (domain.Mission, error)
	AddSubTask(ctx context.Context, questID, title string) (domain.Task, error)
	DeleteItem(ctx context.Context, kind domain.ItemKind, id string) error

	// Transitions
	StartQuest(ctx context.Context, id string) (domain.Quest, error)
	StartMission(ctx context.Context, id string) (domain.Mission, error)
	CompleteTask(ctx context.Context, id string) (domain.Outcome, error)
	CompleteSubTask(ctx context.Context, questID, taskID string) (domain.Outcome, error)
	CompleteQuest(ctx context.Context, id string) (domain.Outcome, error)
	CompleteMissionStep(ctx context.Context, id string, index int) (domain.Mission, error)
	CompleteMission(ctx context.Context, id string) (domain.Outcome, error)

	// Redemption
	StartRedemption(ctx context.Context) ([]domain.Quest, error)
	AbandonRedemption(ctx context.Context) error
	AttemptRedemption(ctx context.Context, passed bool) (domain.Status, error)
}

// Options tunes the rules and injects the clock and id source
type Options struct {
	Quota    quota.Table
	Journal  journal.Requirements
	Location *time.Location
	Now      func() time.Time
	NewID    func() string
}

// ReconcileResult reports what a reconciliation changed
type ReconcileResult struct {
	Version       uint64                 `json:"version"`
	Missed        []lifecycle.MissedItem `json:"missed,omitempty"`
	Notifications []domain.Notification  `json:"notifications,omitempty"`
}

type reducer func(st *domain.State, now time.Time) ([]domain.Effect, error)

type service struct {
	repo    *repository.Repository
	bus     event.Bus
	catalog *catalog.Catalog
	quota   quota.Table
	journal journal.Requirements
	loc     *time.Location
	clock   func() time.Time
	newID   func() string

	persistQueue *worker.Pool
	journalCache *expirable.LRU[string, any]

	mu    sync.Mutex
	state domain.State
}

// NewService creates the engine. The state starts as a fresh level 1 user until Load runs.
func NewService(repo *repository.Repository, bus event.Bus, cat *catalog.Catalog, opts Options) Service {
	if opts.Quota == nil {
		opts.Quota = quota.DefaultTable()
	}
	if opts.Journal == (journal.Requirements{}) {
		opts.Journal = journal.DefaultRequirements()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	pool := worker.NewPool(1, PersistQueueSize)
	pool.Start()

	return &service{
		repo:         repo,
		bus:          bus,
		catalog:      cat,
		quota:        opts.Quota,
		journal:      opts.Journal,
		loc:          opts.Location,
		clock:        opts.Now,
		newID:        opts.NewID,
		persistQueue: pool,
		journalCache: expirable.NewLRU[string, any](JournalCacheSize, nil, JournalCacheTTL),
		state:        domain.State{User: progression.NewUser()},
	}
}

func (s *service) now() time.Time {
	return s.clock().In(s.loc)
}

// Load replaces the in-memory state with the stored one. On failure the engine
// keeps running on defaults and the error is returned for the caller to log.
func (s *service) Load(ctx context.Context) (err error) {
	started := time.Now()
	defer func() { metrics.ObserveOperation(OpLoad, started, err) }()
	log := logger.FromContext(ctx)

	st, loadErr := repository.LoadState(ctx, s.repo)
	if loadErr != nil {
		metrics.PersistenceFailures.WithLabelValues(OpLoad).Inc()
		log.Error(LogMsgLoadFailed, "error", loadErr)
		st = domain.State{}
		err = fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, loadErr)
	}
	if st.User.Level == 0 {
		st.User = progression.NewUser()
	}
	progression.Normalize(&st.User)

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	s.journalCache.Purge()

	metrics.ObserveCommit(st.Version, st.User.Level)
	log.Info(LogMsgStateLoaded,
		"version", st.Version,
		"level", st.User.Level,
		"tasks", len(st.Tasks),
		"quests", len(st.Quests),
		"missions", len(st.Missions))
	return err
}

// Snapshot returns a deep copy of the committed state without reconciling
func (s *service) Snapshot() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Shutdown drains queued persistence writes
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShutdown)

	done := make(chan struct{})
	go func() {
		log.Info(LogMsgPersistQueueDrain)
		s.persistQueue.Stop()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("engine shutdown: %w", ctx.Err())
	}
}

// transact serializes one operation: reconcile at now, run fn on a clone and
// commit the clone when fn returns effects. An error leaves the committed
// state as it was after reconciliation.
func (s *service) transact(ctx context.Context, op string, now time.Time, fn reducer) error {
	_, err := s.run(ctx, op, now, fn)
	return err
}

func (s *service) run(ctx context.Context, op string, now time.Time, fn reducer) (res ReconcileResult, err error) {
	started := time.Now()
	defer func() { metrics.ObserveOperation(op, started, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	res = s.reconcileLocked(ctx, now)

	next := s.state.Clone()
	effects, err := fn(&next, now)
	if err != nil {
		s.reportRejection(ctx, err, now)
		return res, err
	}
	if len(effects) > 0 {
		s.commit(ctx, op, next, effects)
	}
	res.Version = s.state.Version
	return res, nil
}

// view reconciles and then reads the state
func (s *service) view(ctx context.Context, op string, fn func(st *domain.State, now time.Time) error) error {
	return s.transact(ctx, op, s.now(), func(st *domain.State, now time.Time) ([]domain.Effect, error) {
		return nil, fn(st, now)
	})
}

func (s *service) commit(ctx context.Context, op string, next domain.State, effects []domain.Effect) {
	next.Version = s.state.Version + 1
	s.state = next

	metrics.ObserveCommit(next.Version, next.User.Level)
	logger.FromContext(ctx).Debug(LogMsgCommitted,
		"operation", op,
		"version", next.Version,
		"effects", len(effects))

	s.persist(ctx, &s.state, effects)
	s.publish(ctx, next.Version, domain.Notifications(effects))
}

func (s *service) publish(ctx context.Context, version uint64, notifications []domain.Notification) {
	if s.bus == nil {
		return
	}
	for _, n := range notifications {
		if err := s.bus.Publish(ctx, event.NewNotificationEvent(n, version)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", n.Type, "error", err)
		}
	}
}

// reportRejection turns a quota error into a quota.rejected notification.
// Nothing is committed, so the event carries the current version.
func (s *service) reportRejection(ctx context.Context, err error, now time.Time) {
	var qe *domain.QuotaError
	if !errors.As(err, &qe) {
		return
	}

	kind := domain.KindQuest
	if qe.Kind == domain.QuotaKindMission {
		kind = domain.KindMission
	}
	logger.FromContext(ctx).Info(LogMsgQuotaRejected, "kind", qe.Kind, "reason", qe.Reason)
	s.publish(ctx, s.state.Version, []domain.Notification{{
		Type:     domain.NotificationQuotaRejected,
		Message:  fmt.Sprintf(MsgQuotaRejected, qe.Reason),
		ItemKind: kind,
		Rank:     qe.Rank,
		Until:    qe.Until,
		At:       now,
	}})
}
