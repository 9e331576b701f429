// Package lifecycle holds the Task, Quest and Mission state transitions.
//
// Every function mutates only the item it is given; callers run them on a cloned
// state so a returned error leaves committed state untouched.
package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/progression"
)

// Completion describes the path a completion took
type Completion struct {
	// Late is set when the item went through the missed path
	Late bool
	// NewlyMissed is set when this completion is what set the missed flag
	NewlyMissed bool
}

// Reward sizes the EXP for a completion. The missed path ignores the general modifier.
func Reward(w domain.WorkItem, c Completion, modifier float64, rank domain.Rank) int64 {
	if c.Late {
		return progression.MissedReward(w.ExpReward)
	}
	return progression.ModifiedReward(w.ExpReward, modifier, rank)
}

// Start moves a quest or mission into the started state
func Start(w *domain.WorkItem, now time.Time) error {
	if w.Completed {
		return fmt.Errorf("%w: %s %s", domain.ErrInvalidTransition, w.ID, domain.ErrMsgAlreadyCompleted)
	}
	if w.Started {
		return fmt.Errorf("%w: %s %s", domain.ErrInvalidTransition, w.ID, domain.ErrMsgAlreadyStarted)
	}
	w.Started = true
	w.StartedAt = &now
	return nil
}

// Complete flips completed exactly once. An item past its deadline, or already
// swept as missed, completes through the missed path.
func Complete(w *domain.WorkItem, now time.Time) (Completion, error) {
	if w.Completed {
		return Completion{}, fmt.Errorf("%w: %s %s", domain.ErrInvalidTransition, w.ID, domain.ErrMsgAlreadyCompleted)
	}

	var c Completion
	switch {
	case w.Missed:
		c.Late = true
	case w.Overdue(now):
		c.Late = true
		c.NewlyMissed = true
		w.Missed = true
		w.MissedAt = &now
	}

	w.Completed = true
	w.CompletedAt = &now
	return c, nil
}

// MarkMissed flags an incomplete overdue item. It reports whether anything changed.
func MarkMissed(w *domain.WorkItem, now time.Time) bool {
	if w.Completed || w.Missed || !w.Overdue(now) {
		return false
	}
	w.Missed = true
	w.MissedAt = &now
	return true
}

// ForceFail leaves an item completed and missed without any reward. An item
// that was already completed keeps its reward and completion time but is
// flagged missed as well. It reports whether anything changed.
func ForceFail(w *domain.WorkItem, now time.Time) bool {
	if w.Completed && w.Missed {
		return false
	}
	if !w.Missed {
		w.Missed = true
		w.MissedAt = &now
	}
	if !w.Completed {
		w.Completed = true
		w.CompletedAt = &now
	}
	return true
}

// CheckQuestReady rejects completing a quest whose sub-tasks are still open
func CheckQuestReady(q *domain.Quest) error {
	if q.Completed {
		return fmt.Errorf("%w: %s %s", domain.ErrInvalidTransition, q.ID, domain.ErrMsgAlreadyCompleted)
	}
	if !q.AllTasksCompleted() {
		return fmt.Errorf("%w: %s %s", domain.ErrInvalidTransition, q.ID, domain.ErrMsgSubTasksPending)
	}
	return nil
}

// CheckMissionReady rejects completing a mission with unrecorded steps
func CheckMissionReady(m *domain.Mission) error {
	if m.Completed {
		return fmt.Errorf("%w: %s %s", domain.ErrInvalidTransition, m.ID, domain.ErrMsgAlreadyCompleted)
	}
	if !m.AllStepsDone() {
		return fmt.Errorf("%w: %s %s (%d/%d)", domain.ErrInvalidTransition, m.ID, domain.ErrMsgStepsPending,
			len(m.CompletedTaskIndices), m.Count)
	}
	return nil
}

// RecordStep marks mission step index as done. Recording a step twice is a no-op.
func RecordStep(m *domain.Mission, index int) (bool, error) {
	if m.Completed {
		return false, fmt.Errorf("%w: %s %s", domain.ErrInvalidTransition, m.ID, domain.ErrMsgAlreadyCompleted)
	}
	if index < 0 || index >= m.Count {
		return false, fmt.Errorf("%w: %s %d", domain.ErrInvalidInput, domain.ErrMsgStepOutOfRange, index)
	}
	if m.StepDone(index) {
		return false, nil
	}
	m.CompletedTaskIndices = append(m.CompletedTaskIndices, index)
	return true, nil
}

func validateCommon(title string, category domain.Category, difficulty domain.Difficulty) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if !category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}
	if !difficulty.Valid() {
		return fmt.Errorf("%w: unknown difficulty %q", domain.ErrInvalidInput, difficulty)
	}
	return nil
}
