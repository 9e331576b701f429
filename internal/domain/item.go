package domain

import "time"

// ItemKind identifies the collection a work item belongs to
type ItemKind string

const (
	KindTask    ItemKind = "task"
	KindQuest   ItemKind = "quest"
	KindMission ItemKind = "mission"
)

// Valid reports whether k names a known collection
func (k ItemKind) Valid() bool {
	switch k {
	case KindTask, KindQuest, KindMission:
		return true
	}
	return false
}

// Difficulty is ordered easy < medium < hard < boss
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyNormal Difficulty = "normal" // alias of medium
	DifficultyHard   Difficulty = "hard"
	DifficultyBoss   Difficulty = "boss"
)

// Normalize folds the "normal" alias into medium
func (d Difficulty) Normalize() Difficulty {
	if d == DifficultyNormal {
		return DifficultyMedium
	}
	return d
}

// Valid reports whether d is a known difficulty
func (d Difficulty) Valid() bool {
	switch d.Normalize() {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyBoss:
		return true
	}
	return false
}

// WorkItem is the shape shared by tasks, quests and missions.
// ExpReward is snapshotted at creation and never recomputed.
type WorkItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    Category   `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	ExpReward   int64      `json:"exp_reward"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Started     bool       `json:"started,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	Missed      bool       `json:"missed"`
	MissedAt    *time.Time `json:"missed_at,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// GetID returns the item identifier
func (w WorkItem) GetID() string { return w.ID }

// GetCreatedAt returns the creation time used for stable ordering
func (w WorkItem) GetCreatedAt() time.Time { return w.CreatedAt }

// Overdue reports whether the deadline has elapsed at now
func (w WorkItem) Overdue(now time.Time) bool {
	return w.Deadline != nil && now.After(*w.Deadline)
}

func (w WorkItem) clone() WorkItem {
	w.CompletedAt = cloneTime(w.CompletedAt)
	w.StartedAt = cloneTime(w.StartedAt)
	w.MissedAt = cloneTime(w.MissedAt)
	w.Deadline = cloneTime(w.Deadline)
	return w
}

// Task is a single checklist item, standalone or owned by a quest
type Task struct {
	WorkItem
	QuestID string `json:"quest_id,omitempty"`
}

// Kind implements Item
func (Task) Kind() ItemKind { return KindTask }

// Clone returns a deep copy
func (t Task) Clone() Task {
	t.WorkItem = t.WorkItem.clone()
	return t
}

// Quest is a larger unit of work with optional ordered sub-tasks
type Quest struct {
	WorkItem
	IsMainQuest     bool   `json:"is_main_quest"`
	IsDaily         bool   `json:"is_daily"`
	IsRecoveryQuest bool   `json:"is_recovery_quest"`
	GoldReward      int64  `json:"gold_reward"`
	TemplateID      string `json:"template_id,omitempty"`
	Tasks           []Task `json:"tasks,omitempty"`
}

// Kind implements Item
func (Quest) Kind() ItemKind { return KindQuest }

// IsSideQuest reports whether q counts against the side-quest quota
func (q Quest) IsSideQuest() bool {
	return !q.IsMainQuest && !q.IsDaily && !q.IsRecoveryQuest
}

// QuotaExempt reports whether q bypasses the rank quota
func (q Quest) QuotaExempt() bool {
	return q.IsDaily || q.IsRecoveryQuest
}

// AllTasksCompleted reports whether every sub-task is done
func (q Quest) AllTasksCompleted() bool {
	for _, t := range q.Tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}

// Clone returns a deep copy
func (q Quest) Clone() Quest {
	q.WorkItem = q.WorkItem.clone()
	if q.Tasks != nil {
		tasks := make([]Task, len(q.Tasks))
		for i, t := range q.Tasks {
			tasks[i] = t.Clone()
		}
		q.Tasks = tasks
	}
	return q
}

// Mission is a rank and day gated item made of Count steps
type Mission struct {
	WorkItem
	Rank                 Rank   `json:"rank"`
	Day                  int    `json:"day"`
	Count                int    `json:"count"`
	CompletedTaskIndices []int  `json:"completed_task_indices"`
	GoldReward           int64  `json:"gold_reward"`
	TemplateID           string `json:"template_id,omitempty"`
}

// Kind implements Item
func (Mission) Kind() ItemKind { return KindMission }

// StepDone reports whether step index i has been recorded
func (m Mission) StepDone(i int) bool {
	for _, idx := range m.CompletedTaskIndices {
		if idx == i {
			return true
		}
	}
	return false
}

// AllStepsDone reports whether every step has been recorded
func (m Mission) AllStepsDone() bool {
	return len(m.CompletedTaskIndices) >= m.Count
}

// Clone returns a deep copy
func (m Mission) Clone() Mission {
	m.WorkItem = m.WorkItem.clone()
	if m.CompletedTaskIndices != nil {
		m.CompletedTaskIndices = append([]int(nil), m.CompletedTaskIndices...)
	}
	return m
}

// Item is implemented by Task, Quest and Mission
type Item interface {
	Task | Quest | Mission
	GetID() string
	GetCreatedAt() time.Time
	Kind() ItemKind
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
