package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/lifecycle"
	"github.com/osse101/Ascendant_Go/internal/penalty"
	"github.com/osse101/Ascendant_Go/internal/quota"
)

func notFound(kind domain.ItemKind, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrItemNotFound, kind, id)
}

// CreateTask adds a standalone task
func (s *service) CreateTask(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	var created domain.Task
	err := s.transact(ctx, OpCreateTask, s.now(), func(st *domain.State, now time.Time) ([]domain.Effect, error) {
		t, err := lifecycle.NewTask(s.newID(), in, now)
		if err != nil {
			return nil, err
		}
		st.Tasks = append(st.Tasks, t)
		created = t.Clone()
		return []domain.Effect{domain.SaveItem(domain.KindTask, t.ID)}, nil
	})
	return created, err
}

// CreateQuest adds a quest with its sub-tasks. Recovery quests are only
// created by StartRedemption.
func (s *service) CreateQuest(ctx context.Context, in domain.CreateQuestInput) (domain.Quest, error) {
	in.Recovery = false
	return s.createQuest(ctx, OpCreateQuest, in)
}

// CreateQuestFromCatalog adds a predefined main or side quest
func (s *service) CreateQuestFromCatalog(ctx context.Context, templateID string, deadline *time.Time) (domain.Quest, error) {
	tpl, err := s.catalog.QuestTemplate(templateID)
	if err != nil {
		return domain.Quest{}, err
	}
	return s.createQuest(ctx, OpCreateQuest, domain.CreateQuestInput{
		Title:       tpl.Title,
		Description: tpl.Description,
		Category:    tpl.Category,
		Difficulty:  tpl.Difficulty,
		ExpReward:   tpl.ExpReward,
		IsMainQuest: tpl.IsMainQuest,
		Deadline:    deadline,
		Tasks:       tpl.Tasks,
		TemplateID:  tpl.ID,
	})
}

func (s *service) createQuest(ctx context.Context, op string, in domain.CreateQuestInput) (domain.Quest, error) {
	var created domain.Quest
	err := s.transact(ctx, op, s.now(), func(st *domain.State, now time.Time) ([]domain.Effect, error) {
		q, err := lifecycle.NewQuest(s.newID(), in, s.newID, now)
		if err != nil {
			return nil, err
		}
		st.Quests = append(st.Quests, q)
		created = q.Clone()
		return []domain.Effect{domain.SaveItem(domain.KindQuest, q.ID)}, nil
	})
	return created, err
}

// CreateMission adds a mission of in.Count steps
func (s *service) CreateMission(ctx context.Context, in domain.CreateMissionInput) (domain.Mission, error) {
	var created domain.Mission
	err := s.transact(ctx, OpCreateMission, s.now(), func(st *domain.State, now time.Time) ([]domain.Effect, error) {
		m, err := lifecycle.NewMission(s.newID(), in, now)
		if err != nil {
			return nil, err
		}
		st.Missions = append(st.Missions, m)
		created = m.Clone()
		return []domain.Effect{domain.SaveItem(domain.KindMission, m.ID)}, nil
	})
	return created, err
}

// CreateMissionFromCatalog adds the catalog mission for the user's rank and day
func (s *service) CreateMissionFromCatalog(ctx context.Context, day int, deadline *time.Time) (domain.Mission, error) {
	var created domain.Mission
	err := s.transact(ctx, OpCreateMission, s.now(), func(st *domain.State, now time.Time) ([]domain.Effect, error) {
		tpl, err := s.catalog.MissionFor(st.User.Rank, day)
		if err != nil {
			return nil, err
		}
		m, err := lifecycle.NewMission(s.newID(), domain.CreateMissionInput{
			Title:       tpl.Title,
			Description: tpl.Description,
			Category:    tpl.Category,
			Difficulty:  tpl.Difficulty,
			ExpReward:   tpl.ExpReward,
			Rank:        tpl.Rank,
			Day:         day,
			Count:       tpl.Count,
			Deadline:    deadline,
			TemplateID:  tpl.ID,
		}, now)
		if err != nil {
			return nil, err
		}
		st.Missions = append(st.Missions, m)
		created = m.Clone()
		return []domain.Effect{domain.SaveItem(domain.KindMission, m.ID)}, nil
	})
	return created, err
}

// AddSubTask appends a checklist task to a quest
func (s *service) AddSubTask(ctx context.Context, questID, title string) (domain.Task, error) {
	var created domain.Task
	err := s.transact(ctx, OpAddSubTask, s.now(), func(st *domain.State, now time.Time) ([]domain.Effect, error) {
		q := st.Quest(questID)
		if q == nil {
			return nil, notFound(domain.KindQuest, questID)
		}
		t, err := lifecycle.AddSubTask(q, s.newID(), title, now)
		if err != nil {
			return nil, err
		}
		created = t.Clone()
		return []domain.Effect{domain.SaveItem(domain.KindQuest, q.ID)}, nil
	})
	return created, err
}

// DeleteItem removes an item. EXP already granted is kept. Quests in a
// pending redemption batch cannot be deleted; abandon the redemption instead.
func (s *service) DeleteItem(ctx context.Context, kind domain.ItemKind, id string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown item kind %q", domain.ErrInvalidInput, kind)
	}
	return s.transact(ctx, OpDeleteItem, s.now(), func(st *domain.State, _ time.Time) ([]domain.Effect, error) {
		if kind == domain.KindQuest && penalty.IsActiveRecoveryQuest(st.Punishment, id) {
			return nil, fmt.Errorf("%w: quest %s belongs to the pending redemption", domain.ErrInvalidTransition, id)
		}
		if !st.Remove(kind, id) {
			return nil, notFound(kind, id)
		}
		return []domain.Effect{domain.DeleteItem(kind, id)}, nil
	})
}

// StartQuest marks a quest started, charging the rank quota
func (s *service) StartQuest(ctx context.Context, id string) (domain.Quest, error) {
	var started domain.Quest
	err := s.transact(ctx, OpStartQuest, s.now(), func(st *domain.State, now time.Time) ([]domain.Effect, error) {
		q := st.Quest(id)
		if q == nil {
			return nil, notFound(domain.KindQuest, id)
		}
		w := q.WorkItem
		if err := lifecycle.Start(&w, now); err != nil {
			return nil, err
		}
		if err := quota.CheckQuest(s.quota, st, q, now); err != nil {
			return nil, err
		}
		q.WorkItem = w
		started = q.Clone()
		return []domain.Effect{domain.SaveItem(domain.KindQuest, q.ID)}, nil
	})
	return started, err
}

// StartMission marks a mission started, charging the rank quota
func (s *service) StartMission(ctx context.Context, id string) (domain.Mission, error) {
	var started domain.Mission
	err := s.transact(ctx, OpStartMission, s.now(), func(st *domain.State, now time.Time) ([]domain.Effect, error) {
		m := st.Mission(id)
		if m == nil {
			return nil, notFound(domain.KindMission, id)
		}
		w := m.WorkItem
		if err := lifecycle.Start(&w, now); err != nil {
			return nil, err
		}
		if err := quota.CheckMission(s.quota, st, m, now); err != nil {
			return nil, err
		}
		m.WorkItem = w
		started = m.Clone()
		return []domain.Effect{domain.SaveItem(domain.KindMission, m.ID)}, nil
	})
	return started, err
}

// CompleteMissionStep records one mission step. Recording a step twice is a no-op.
func (s *service) CompleteMissionStep(ctx context.Context, id string, index int) (domain.Mission, error) {
	var out domain.Mission
	err := s.transact(ctx, OpCompleteMissionStep, s.now(), func(st *domain.State, _ time.Time) ([]domain.Effect, error) {
		m := st.Mission(id)
		if m == nil {
			return nil, notFound(domain.KindMission, id)
		}
		changed, err := lifecycle.RecordStep(m, index)
		if err != nil {
			return nil, err
		}
		out = m.Clone()
		if !changed {
			return nil, nil
		}
		return []domain.Effect{domain.SaveItem(domain.KindMission, m.ID)}, nil
	})
	return out, err
}

// ListTasks returns every task in creation order. view hands out a private
// clone, so the slices are safe to return.
func (s *service) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var out []domain.Task
	err := s.view(ctx, OpList, func(st *domain.State, _ time.Time) error {
		out = st.Tasks
		return nil
	})
	return out, err
}

// ListQuests returns every quest in creation order
func (s *service) ListQuests(ctx context.Context) ([]domain.Quest, error) {
	var out []domain.Quest
	err := s.view(ctx, OpList, func(st *domain.State, _ time.Time) error {
		out = st.Quests
		return nil
	})
	return out, err
}

// ListMissions returns every mission in creation order
func (s *service) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	var out []domain.Mission
	err := s.view(ctx, OpList, func(st *domain.State, _ time.Time) error {
		out = st.Missions
		return nil
	})
	return out, err
}
