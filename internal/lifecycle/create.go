package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/progression"
)

func newWorkItem(id, title, description string, category domain.Category, difficulty domain.Difficulty,
	reward int64, deadline *time.Time, now time.Time) domain.WorkItem {
	return domain.WorkItem{
		ID:          id,
		Title:       strings.TrimSpace(title),
		Description: description,
		Category:    category,
		Difficulty:  difficulty.Normalize(),
		ExpReward:   reward,
		Deadline:    deadline,
		CreatedAt:   now,
	}
}

// NewTask builds a standalone task with its reward snapshotted from difficulty
func NewTask(id string, in domain.CreateTaskInput, now time.Time) (domain.Task, error) {
	if err := validateCommon(in.Title, in.Category, in.Difficulty); err != nil {
		return domain.Task{}, err
	}
	reward := progression.BaseExpForDifficulty(in.Difficulty)
	return domain.Task{
		WorkItem: newWorkItem(id, in.Title, in.Description, in.Category, in.Difficulty, reward, in.Deadline, now),
	}, nil
}

// NewQuest builds a quest and its sub-tasks. newID supplies sub-task ids.
func NewQuest(id string, in domain.CreateQuestInput, newID func() string, now time.Time) (domain.Quest, error) {
	if err := validateCommon(in.Title, in.Category, in.Difficulty); err != nil {
		return domain.Quest{}, err
	}
	if in.ExpReward < 0 || in.GoldReward < 0 {
		return domain.Quest{}, fmt.Errorf("%w: rewards must not be negative", domain.ErrInvalidInput)
	}

	reward := in.ExpReward
	if reward == 0 {
		reward = progression.BaseExpForDifficulty(in.Difficulty)
	}
	gold := in.GoldReward
	if gold == 0 {
		gold = progression.GoldForDifficulty(in.Difficulty)
	}

	q := domain.Quest{
		WorkItem:        newWorkItem(id, in.Title, in.Description, in.Category, in.Difficulty, reward, in.Deadline, now),
		IsMainQuest:     in.IsMainQuest && !in.Recovery,
		IsDaily:         in.IsDaily && !in.Recovery,
		IsRecoveryQuest: in.Recovery,
		GoldReward:      gold,
		TemplateID:      in.TemplateID,
	}
	for _, title := range in.Tasks {
		if _, err := AddSubTask(&q, newID(), title, now); err != nil {
			return domain.Quest{}, err
		}
	}
	return q, nil
}

// AddSubTask appends a child task sized from the parent's reward.
// Sub-tasks of recovery quests are checklist steps and carry no reward.
func AddSubTask(q *domain.Quest, id, title string, now time.Time) (*domain.Task, error) {
	if q.Completed {
		return nil, fmt.Errorf("%w: %s %s", domain.ErrInvalidTransition, q.ID, domain.ErrMsgAlreadyCompleted)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	var reward int64
	if !q.IsRecoveryQuest {
		reward = progression.SubTaskReward(q.ExpReward)
	}
	task := domain.Task{
		WorkItem: newWorkItem(id, title, "", q.Category, q.Difficulty, reward, nil, now),
		QuestID:  q.ID,
	}
	q.Tasks = append(q.Tasks, task)
	return &q.Tasks[len(q.Tasks)-1], nil
}

// SubTask returns a pointer to the child task, or ErrItemNotFound
func SubTask(q *domain.Quest, taskID string) (*domain.Task, error) {
	for i := range q.Tasks {
		if q.Tasks[i].ID == taskID {
			return &q.Tasks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: sub-task %s of quest %s", domain.ErrItemNotFound, taskID, q.ID)
}

// NewMission builds a mission of Count steps
func NewMission(id string, in domain.CreateMissionInput, now time.Time) (domain.Mission, error) {
	if err := validateCommon(in.Title, in.Category, in.Difficulty); err != nil {
		return domain.Mission{}, err
	}
	if !in.Rank.Valid() {
		return domain.Mission{}, fmt.Errorf("%w: unknown rank %q", domain.ErrInvalidInput, in.Rank)
	}
	if in.Count < 1 {
		return domain.Mission{}, fmt.Errorf("%w: mission needs at least one step", domain.ErrInvalidInput)
	}
	if in.ExpReward < 0 {
		return domain.Mission{}, fmt.Errorf("%w: rewards must not be negative", domain.ErrInvalidInput)
	}

	reward := in.ExpReward
	if reward == 0 {
		reward = progression.BaseExpForDifficulty(in.Difficulty)
	}
	return domain.Mission{
		WorkItem:             newWorkItem(id, in.Title, in.Description, in.Category, in.Difficulty, reward, in.Deadline, now),
		Rank:                 in.Rank,
		Day:                  in.Day,
		Count:                in.Count,
		CompletedTaskIndices: []int{},
		GoldReward:           progression.GoldForDifficulty(in.Difficulty),
		TemplateID:           in.TemplateID,
	}, nil
}
